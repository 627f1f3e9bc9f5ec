package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vivircondiabetes/sitio/handler"
	"github.com/vivircondiabetes/sitio/pkg/binder"
	"github.com/vivircondiabetes/sitio/pkg/requestid"
	"github.com/vivircondiabetes/sitio/pkg/validator"
)

func errorPage(p handler.PageError) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, "Error %d: %s [%s] %s", p.StatusCode, p.Error, p.RequestID, p.RetryURL)
		return err
	})
}

func notice(n handler.Notice) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, "<p>%s: %s</p>", n.Severity, n.Message)
		return err
	})
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		err     error
		status  int
		level   slog.Level
		message string
	}{
		{"generic", errors.New("db down"), http.StatusInternalServerError, slog.LevelError, "Internal Server Error"},
		{"http error", handler.ErrTooManyRequests, http.StatusTooManyRequests, slog.LevelWarn, "Too Many Requests"},
		{"wrapped http error", fmt.Errorf("page: %w", handler.ErrNotFound), http.StatusNotFound, slog.LevelWarn, "Not Found"},
		{"binding error", fmt.Errorf("%w: bad", binder.ErrInvalidForm), http.StatusBadRequest, slog.LevelWarn, "Bad Request"},
		{"validation errors", validator.ValidationErrors{{Field: "email", Message: "x"}, {Field: "nombre", Message: "y"}}, http.StatusUnprocessableEntity, slog.LevelWarn, "email, nombre"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := handler.Classify(tt.err)
			assert.Equal(t, tt.status, c.Status)
			assert.Equal(t, tt.level, c.Level)
			assert.Equal(t, tt.message, c.Message)
		})
	}
}

func TestNewErrorHandler(t *testing.T) {
	t.Parallel()

	eh := handler.NewErrorHandler(quietLogger(), handler.ErrorHandlerConfig{
		Page:   errorPage,
		Notice: notice,
	})

	t.Run("plain request renders the error page", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/nada", nil)
		req = req.WithContext(requestid.WithContext(req.Context(), "req-1"))
		w := httptest.NewRecorder()

		eh(handler.NewContext(w, req), handler.ErrNotFound)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Error 404: not_found [req-1] /nada", w.Body.String())
	})

	t.Run("datastar request patches the notice", func(t *testing.T) {
		t.Parallel()
		w := httptest.NewRecorder()

		eh(handler.NewContext(w, datastarRequest(http.MethodPost, "/contacto")), handler.ErrTooManyRequests)

		assert.Equal(t, http.StatusOK, w.Code)
		body := w.Body.String()
		assert.Contains(t, body, "datastar-patch-elements")
		assert.Contains(t, body, "<p>warning: Too Many Requests</p>")
		assert.Contains(t, body, "selector #form-status")
	})

	t.Run("datastar request without notice view writes nothing", func(t *testing.T) {
		t.Parallel()
		pageOnly := handler.NewErrorHandler(quietLogger(), handler.ErrorHandlerConfig{Page: errorPage})
		w := httptest.NewRecorder()

		pageOnly(handler.NewContext(w, datastarRequest(http.MethodPost, "/contacto")), errors.New("boom"))

		assert.Empty(t, w.Body.String())
	})

	t.Run("json client gets the error envelope", func(t *testing.T) {
		t.Parallel()
		tests := []struct {
			err    error
			status int
			code   string
		}{
			{handler.ErrTooManyRequests, http.StatusTooManyRequests, "too_many_requests"},
			{handler.ErrServiceUnavailable, http.StatusServiceUnavailable, "service_unavailable"},
			{handler.ErrNotFound, http.StatusNotFound, "not_found"},
			{fmt.Errorf("%w: bad", binder.ErrInvalidJSON), http.StatusBadRequest, "bad_request"},
		}
		for _, tt := range tests {
			req := httptest.NewRequest(http.MethodPost, "/contacto", nil)
			req.Header.Set("Accept", "application/json")
			w := httptest.NewRecorder()

			eh(handler.NewContext(w, req), tt.err)

			assert.Equal(t, tt.status, w.Code)
			assert.Contains(t, w.Header().Get("Content-Type"), "application/json")
			var env handler.Envelope
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
			require.NotNil(t, env.Error)
			assert.Equal(t, tt.code, env.Error.Code)
		}
	})

	t.Run("plain text without views", func(t *testing.T) {
		t.Parallel()
		plain := handler.NewErrorHandler(nil, handler.ErrorHandlerConfig{})
		w := httptest.NewRecorder()

		plain(handler.NewContext(w, httptest.NewRequest(http.MethodGet, "/", nil)), errors.New("boom"))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "Internal Server Error")
	})
}
