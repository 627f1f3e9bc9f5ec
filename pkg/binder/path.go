package binder

import (
	"fmt"
	"net/http"
	"reflect"
)

// PathExtractor returns the value of a named path parameter.
// chi.URLParam satisfies it.
type PathExtractor func(r *http.Request, name string) string

// Path creates a binder for path parameters. Only fields with a `path` tag
// are bound; empty parameters leave the field untouched.
//
//	type FieldRequest struct {
//		Field string `path:"field"`
//	}
//
//	binder.Path(chi.URLParam)
func Path(extract PathExtractor) func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		if extract == nil {
			return fmt.Errorf("%w: nil path extractor", ErrInvalidPath)
		}

		rv := reflect.ValueOf(v)
		if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
			return fmt.Errorf("%w: target must be a non-nil pointer to struct", ErrInvalidPath)
		}

		values := make(map[string][]string)
		_ = eachField(rv.Elem(), "path", taggedOnly, func(_ reflect.Value, _ reflect.StructField, key string) error {
			if value := extract(r, key); value != "" {
				values[key] = []string{value}
			}
			return nil
		})

		return bindValues(v, "path", taggedOnly, values, ErrInvalidPath)
	}
}
