package handler_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vivircondiabetes/sitio/handler"
	"github.com/vivircondiabetes/sitio/pkg/binder"
)

type fieldRequest struct {
	Field string `path:"field" form:"-" json:"-"`
	Value string `form:"value" json:"value"`
}

func echoField(_ handler.Context, req fieldRequest) handler.Response {
	return handler.JSON(map[string]string{"field": req.Field, "value": req.Value})
}

func fieldRouter() http.Handler {
	r := chi.NewRouter()
	r.Post("/campos/{field}", handler.Wrap(echoField,
		handler.WithBinders[fieldRequest](
			binder.Path(chi.URLParam),
			binder.Form(),
			binder.JSON(),
		),
	))
	return r
}

func datastarRequest(method, target string) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	req.Header.Set("Datastar-Request", "true")
	return req
}

func TestWrap(t *testing.T) {
	t.Parallel()

	t.Run("binds path and form", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/campos/email", strings.NewReader(url.Values{"value": {"a@b.co"}}.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		w := httptest.NewRecorder()

		fieldRouter().ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"data":{"field":"email","value":"a@b.co"}}`, w.Body.String())
	})

	t.Run("binds path and json", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/campos/nombre", strings.NewReader(`{"value":"Ana"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		fieldRouter().ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"data":{"field":"nombre","value":"Ana"}}`, w.Body.String())
	})

	t.Run("binding error is 400", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/campos/nombre", strings.NewReader(`{"valor":"Ana"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		fieldRouter().ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("error response uses status of http error", func(t *testing.T) {
		t.Parallel()
		h := handler.Wrap(func(handler.Context, struct{}) handler.Response {
			return handler.Error(handler.ErrNotFound)
		})
		w := httptest.NewRecorder()

		h(w, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "Not Found")
	})

	t.Run("nil response reaches error handler", func(t *testing.T) {
		t.Parallel()
		var got error
		h := handler.Wrap(
			func(handler.Context, struct{}) handler.Response { return nil },
			handler.WithErrorHandler[struct{}](func(_ handler.Context, err error) { got = err }),
		)

		h(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

		assert.ErrorIs(t, got, handler.ErrNilResponse)
	})

	t.Run("nil error handler keeps default", func(t *testing.T) {
		t.Parallel()
		h := handler.Wrap(
			func(handler.Context, struct{}) handler.Response { return handler.Error(errors.New("boom")) },
			handler.WithErrorHandler[struct{}](nil),
		)
		w := httptest.NewRecorder()

		h(w, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

type ctxKey struct{}

func TestNewContext(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(context.WithValue(req.Context(), ctxKey{}, "valor"))
	w := httptest.NewRecorder()

	ctx := handler.NewContext(w, req)

	require.Same(t, req, ctx.Request())
	assert.Equal(t, w, ctx.ResponseWriter())
	assert.Equal(t, "valor", ctx.Value(ctxKey{}))
	assert.NoError(t, ctx.Err())
}

func TestIsDataStar(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		target string
		header map[string]string
		want   bool
	}{
		{name: "plain request", target: "/", want: false},
		{name: "datastar header", target: "/", header: map[string]string{"Datastar-Request": "true"}, want: true},
		{name: "event stream accept", target: "/", header: map[string]string{"Accept": "text/event-stream"}, want: true},
		{name: "signals in query", target: "/?datastar=%7B%7D", want: true},
		{name: "html accept", target: "/", header: map[string]string{"Accept": "text/html"}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			for k, v := range tt.header {
				req.Header.Set(k, v)
			}
			assert.Equal(t, tt.want, handler.IsDataStar(req))
		})
	}
}
