// Package binder binds HTTP request data to Go structs.
//
// Each binder is a func(r *http.Request, v any) error and is meant to be
// passed to handler.WithBinders. Binders are applied in order; a binder
// with nothing to read returns ErrBinderNotApplicable and is skipped.
//
// # Available Binders
//
//   - Form(): urlencoded and multipart form bodies, `form` tag
//   - JSON(): JSON bodies, `json` tag, unknown fields rejected
//   - Query(): URL query parameters, `query` tag
//   - Path(extractor): router path parameters, `path` tag
//
// # Usage
//
//	type Submission struct {
//		Nombre  string `form:"nombre"`
//		Email   string `form:"email"`
//		Mensaje string `form:"mensaje"`
//	}
//
//	r.Post("/contacto", handler.Wrap(submit,
//		handler.WithBinders[Submission](binder.Form()),
//	))
//
// # Error Handling
//
// All binding failures wrap one of the package sentinel errors. Use
// IsBindingError to map them to 400 Bad Request.
package binder
