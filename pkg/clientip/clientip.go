// Package clientip resolves the address of the visitor behind a request.
//
// Forwarding headers are only honored when listed as trusted, since any
// client can set them. Behind a proxy that sets X-Forwarded-For, trust that
// header; when serving directly, trust none and RemoteAddr is used:
//
//	r.Use(clientip.Middleware(clientip.NewResolver(cfg.TrustedHeaders...)))
//	...
//	ip := clientip.GetIP(r)
package clientip

import (
	"context"
	"net"
	"net/http"
	"net/textproto"
	"strings"
)

// Resolver extracts client IPs from requests.
type Resolver struct {
	headers []string
}

// NewResolver trusts the given headers, checked in order, before falling
// back to RemoteAddr.
func NewResolver(trustedHeaders ...string) *Resolver {
	headers := make([]string, 0, len(trustedHeaders))
	for _, h := range trustedHeaders {
		if h = strings.TrimSpace(h); h != "" {
			headers = append(headers, textproto.CanonicalMIMEHeaderKey(h))
		}
	}
	return &Resolver{headers: headers}
}

// Resolve returns the normalized client IP, "" if none is valid.
// Headers holding a list (X-Forwarded-For) yield their first valid entry.
func (res *Resolver) Resolve(r *http.Request) string {
	for _, h := range res.headers {
		for _, v := range r.Header.Values(h) {
			for ip := range strings.SplitSeq(v, ",") {
				if parsed := parseIP(ip); parsed != "" {
					return parsed
				}
			}
		}
	}
	return remoteIP(r)
}

type contextKey struct{}

// WithContext returns a copy of ctx carrying ip.
func WithContext(ctx context.Context, ip string) context.Context {
	return context.WithValue(ctx, contextKey{}, ip)
}

// FromContext returns the IP stored in ctx, "" if none.
func FromContext(ctx context.Context) string {
	ip, _ := ctx.Value(contextKey{}).(string)
	return ip
}

// Middleware resolves the client IP once and stores it in the request context.
func Middleware(res *Resolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(WithContext(r.Context(), res.Resolve(r))))
		})
	}
}

// GetIP returns the IP resolved by Middleware, or the RemoteAddr host when
// the middleware did not run.
func GetIP(r *http.Request) string {
	if ip := FromContext(r.Context()); ip != "" {
		return ip
	}
	return remoteIP(r)
}

func remoteIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return parseIP(r.RemoteAddr)
	}
	return parseIP(host)
}

func parseIP(s string) string {
	ip := net.ParseIP(strings.TrimSpace(s))
	if ip == nil {
		return ""
	}
	return ip.String()
}
