package binder

import (
	"fmt"
	"mime"
	"net/http"
	"strings"
)

const (
	mediaTypeForm      = "application/x-www-form-urlencoded"
	mediaTypeMultipart = "multipart/form-data"
	mediaTypeJSON      = "application/json"
)

// hasBody reports whether the request method carries a body worth binding.
func hasBody(r *http.Request) bool {
	switch r.Method {
	case http.MethodGet, http.MethodHead, http.MethodOptions, http.MethodDelete:
		return false
	}
	return true
}

// mediaType returns the request media type without parameters.
func mediaType(r *http.Request) (string, map[string]string, error) {
	contentType := r.Header.Get("Content-Type")
	if contentType == "" {
		return "", nil, ErrMissingContentType
	}
	mt, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %q", ErrUnsupportedMediaType, contentType)
	}
	return strings.ToLower(mt), params, nil
}

func isFormMediaType(mt string) bool {
	return mt == mediaTypeForm || mt == mediaTypeMultipart
}
