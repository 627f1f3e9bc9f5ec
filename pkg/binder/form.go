package binder

import (
	"fmt"
	"net/http"
)

// DefaultMaxMemory is the default maximum memory used for parsing multipart forms (10MB).
const DefaultMaxMemory = 10 << 20 // 10 MB

// Form creates a binder for application/x-www-form-urlencoded and
// multipart/form-data bodies.
//
// Supported struct tags:
//   - `form:"name"` - binds to form field "name"
//   - `form:"-"`    - skips the field
//
// Supported types: string, int*, uint*, float*, bool, slices of those and
// pointers for optional fields. Fields without a form tag bind to their
// lowercased name. Embedded structs are walked.
//
// The binder is not applicable to requests without a body or with a JSON
// body, so it can be combined with JSON() on the same route.
//
//	type Submission struct {
//		Nombre string `form:"nombre"`
//		Acepto string `form:"acepto"` // "on" when the checkbox is checked
//	}
//
//	r.Post("/contacto", handler.Wrap(submit,
//		handler.WithBinders[Submission](binder.Form()),
//	))
func Form() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		if !hasBody(r) {
			return ErrBinderNotApplicable
		}

		mt, params, err := mediaType(r)
		if err != nil {
			return fmt.Errorf("%w: expected %s or %s", err, mediaTypeForm, mediaTypeMultipart)
		}

		switch mt {
		case mediaTypeForm:
			if err := r.ParseForm(); err != nil {
				return fmt.Errorf("%w: %v", ErrInvalidForm, err)
			}
			return bindValues(v, "form", anyField, r.PostForm, ErrInvalidForm)

		case mediaTypeMultipart:
			if params["boundary"] == "" {
				return fmt.Errorf("%w: missing boundary in content type", ErrInvalidForm)
			}
			if err := r.ParseMultipartForm(DefaultMaxMemory); err != nil {
				return fmt.Errorf("%w: %v", ErrInvalidForm, err)
			}
			values := map[string][]string{}
			if r.MultipartForm != nil {
				values = r.MultipartForm.Value
			}
			return bindValues(v, "form", anyField, values, ErrInvalidForm)

		case mediaTypeJSON:
			return ErrBinderNotApplicable

		default:
			return fmt.Errorf("%w: got %s, expected %s or %s", ErrUnsupportedMediaType, mt, mediaTypeForm, mediaTypeMultipart)
		}
	}
}
