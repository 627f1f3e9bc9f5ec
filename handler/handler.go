package handler

import (
	"errors"
	"net/http"

	"github.com/vivircondiabetes/sitio/pkg/binder"
)

// HandlerFunc handles a request already bound into R.
type HandlerFunc[R any] func(ctx Context, req R) Response

// Response writes itself to w. A returned error goes to the ErrorHandler,
// so implementations must not write anything before failing.
type Response interface {
	Render(w http.ResponseWriter, r *http.Request) error
}

// ResponseFunc adapts a function to Response.
type ResponseFunc func(w http.ResponseWriter, r *http.Request) error

func (f ResponseFunc) Render(w http.ResponseWriter, r *http.Request) error { return f(w, r) }

// Bind fills v from r. Returning binder.ErrBinderNotApplicable skips it.
type Bind func(r *http.Request, v any) error

// ErrorHandler answers a request that failed to bind or render.
type ErrorHandler func(ctx Context, err error)

// Option configures Wrap.
type Option[R any] func(*route[R])

type route[R any] struct {
	binders []Bind
	onError ErrorHandler
}

// WithBinders appends binders, run in order on every request.
//
//	handler.Wrap(validateField, handler.WithBinders[FieldRequest](
//		binder.Path(chi.URLParam),
//		binder.Form(),
//	))
func WithBinders[R any](binders ...Bind) Option[R] {
	return func(rt *route[R]) {
		rt.binders = append(rt.binders, binders...)
	}
}

// WithErrorHandler replaces the plain-text default. Nil is ignored.
func WithErrorHandler[R any](h ErrorHandler) Option[R] {
	return func(rt *route[R]) {
		if h != nil {
			rt.onError = h
		}
	}
}

// plainError answers with the status from Classify and a text body.
func plainError(ctx Context, err error) {
	p := Classify(err)
	http.Error(ctx.ResponseWriter(), p.Message, p.Status)
}

// Wrap builds the http.HandlerFunc for h.
func Wrap[R any](h HandlerFunc[R], opts ...Option[R]) http.HandlerFunc {
	rt := &route[R]{onError: plainError}
	for _, opt := range opts {
		opt(rt)
	}

	return func(w http.ResponseWriter, r *http.Request) {
		ctx := NewContext(w, r)
		if err := rt.serve(ctx, h); err != nil {
			rt.onError(ctx, err)
		}
	}
}

func (rt *route[R]) serve(ctx Context, h HandlerFunc[R]) error {
	var req R
	for _, bind := range rt.binders {
		err := bind(ctx.Request(), &req)
		if errors.Is(err, binder.ErrBinderNotApplicable) {
			continue
		}
		if err != nil {
			return err
		}
	}

	resp := h(ctx, req)
	if resp == nil {
		return ErrNilResponse
	}
	return resp.Render(ctx.ResponseWriter(), ctx.Request())
}
