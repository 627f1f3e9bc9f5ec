package binder

import "errors"

// Common binding errors
var (
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrMissingContentType   = errors.New("missing content type")
	ErrInvalidForm          = errors.New("failed to parse form data")
	ErrInvalidJSON          = errors.New("failed to parse JSON request body")
	ErrInvalidQuery         = errors.New("failed to parse query parameters")
	ErrInvalidPath          = errors.New("failed to parse path parameters")

	// ErrBinderNotApplicable is returned when a binder has nothing to read
	// from the request, e.g. a body binder on a GET or a form binder on a
	// JSON request. Handlers skip it and try the next binder.
	ErrBinderNotApplicable = errors.New("binder not applicable")
)

// IsBindingError reports whether err was produced by a binder and should be
// answered with 400 Bad Request.
func IsBindingError(err error) bool {
	if err == nil || errors.Is(err, ErrBinderNotApplicable) {
		return false
	}
	return errors.Is(err, ErrUnsupportedMediaType) ||
		errors.Is(err, ErrMissingContentType) ||
		errors.Is(err, ErrInvalidForm) ||
		errors.Is(err, ErrInvalidJSON) ||
		errors.Is(err, ErrInvalidQuery) ||
		errors.Is(err, ErrInvalidPath)
}
