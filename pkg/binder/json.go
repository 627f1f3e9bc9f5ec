package binder

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// DefaultMaxJSONSize is the default maximum size for JSON request bodies (1MB).
const DefaultMaxJSONSize = 1 << 20 // 1 MB

// JSON creates a JSON body binder. Unknown fields are rejected.
// It is not applicable to requests without a body or with a form body,
// so it can be combined with Form() on the same route.
//
//	r.Post("/contacto/campos/{field}", handler.Wrap(validateField,
//		handler.WithBinders[FieldRequest](
//			binder.Path(chi.URLParam),
//			binder.Form(),
//			binder.JSON(),
//		),
//	))
func JSON() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		if !hasBody(r) {
			return ErrBinderNotApplicable
		}

		select {
		case <-r.Context().Done():
			return fmt.Errorf("%w: %v", ErrInvalidJSON, r.Context().Err())
		default:
		}

		mt, _, err := mediaType(r)
		if err != nil {
			return fmt.Errorf("%w: expected %s", err, mediaTypeJSON)
		}
		if isFormMediaType(mt) {
			return ErrBinderNotApplicable
		}
		if mt != mediaTypeJSON {
			return fmt.Errorf("%w: got %s, expected %s", ErrUnsupportedMediaType, mt, mediaTypeJSON)
		}

		body, err := io.ReadAll(io.LimitReader(r.Body, DefaultMaxJSONSize+1))
		if err != nil {
			return fmt.Errorf("%w: failed to read request body: %v", ErrInvalidJSON, err)
		}
		if len(body) > DefaultMaxJSONSize {
			return fmt.Errorf("%w: request body too large (max %d bytes)", ErrInvalidJSON, DefaultMaxJSONSize)
		}

		decoder := json.NewDecoder(bytes.NewReader(body))
		decoder.DisallowUnknownFields()

		if err := decoder.Decode(v); err != nil {
			if errors.Is(err, io.EOF) {
				return fmt.Errorf("%w: empty body", ErrInvalidJSON)
			}
			return fmt.Errorf("%w: %v", ErrInvalidJSON, err)
		}

		var extra json.RawMessage
		if err := decoder.Decode(&extra); !errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: unexpected data after JSON object", ErrInvalidJSON)
		}

		return nil
	}
}
