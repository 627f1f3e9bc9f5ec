package binder

import "net/http"

// Query creates a binder for URL query parameters using the `query` tag.
//
//	type PageRequest struct {
//		Preview bool `query:"preview"`
//	}
func Query() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		return bindValues(v, "query", anyField, r.URL.Query(), ErrInvalidQuery)
	}
}
