package binder_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vivircondiabetes/sitio/pkg/binder"
)

type submission struct {
	Nombre  string   `form:"nombre"`
	Email   string   `form:"email"`
	Acepto  bool     `form:"acepto"`
	Edad    *int     `form:"edad"`
	Temas   []string `form:"temas"`
	Interno string   `form:"-"`
	Mensaje string
}

func postForm(values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/contacto", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestForm(t *testing.T) {
	t.Parallel()

	t.Run("urlencoded body", func(t *testing.T) {
		t.Parallel()
		req := postForm(url.Values{
			"nombre":  {"Ana"},
			"email":   {"ana@example.com"},
			"acepto":  {"on"},
			"edad":    {"34"},
			"temas":   {"dieta", "insulina"},
			"Interno": {"x"},
			"mensaje": {"Hola, quería consultar"},
		})

		var got submission
		require.NoError(t, binder.Form()(req, &got))

		assert.Equal(t, "Ana", got.Nombre)
		assert.Equal(t, "ana@example.com", got.Email)
		assert.True(t, got.Acepto)
		require.NotNil(t, got.Edad)
		assert.Equal(t, 34, *got.Edad)
		assert.Equal(t, []string{"dieta", "insulina"}, got.Temas)
		assert.Empty(t, got.Interno)
		assert.Equal(t, "Hola, quería consultar", got.Mensaje)
	})

	t.Run("query string is not form data", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/contacto?nombre=Query", strings.NewReader("email=a%40b.co"))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		var got submission
		require.NoError(t, binder.Form()(req, &got))
		assert.Empty(t, got.Nombre)
		assert.Equal(t, "a@b.co", got.Email)
	})

	t.Run("multipart body", func(t *testing.T) {
		t.Parallel()
		var body bytes.Buffer
		mw := multipart.NewWriter(&body)
		require.NoError(t, mw.WriteField("nombre", "Luis"))
		require.NoError(t, mw.WriteField("acepto", "true"))
		require.NoError(t, mw.Close())

		req := httptest.NewRequest(http.MethodPost, "/contacto", &body)
		req.Header.Set("Content-Type", mw.FormDataContentType())

		var got submission
		require.NoError(t, binder.Form()(req, &got))
		assert.Equal(t, "Luis", got.Nombre)
		assert.True(t, got.Acepto)
	})

	t.Run("not applicable without body", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/contacto", nil)

		var got submission
		err := binder.Form()(req, &got)
		assert.ErrorIs(t, err, binder.ErrBinderNotApplicable)
		assert.False(t, binder.IsBindingError(err))
	})

	t.Run("not applicable to json", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/contacto", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")

		var got submission
		assert.ErrorIs(t, binder.Form()(req, &got), binder.ErrBinderNotApplicable)
	})

	t.Run("missing content type", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/contacto", strings.NewReader("nombre=Ana"))

		var got submission
		err := binder.Form()(req, &got)
		assert.ErrorIs(t, err, binder.ErrMissingContentType)
		assert.True(t, binder.IsBindingError(err))
	})

	t.Run("unsupported media type", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/contacto", strings.NewReader("nombre"))
		req.Header.Set("Content-Type", "text/plain")

		var got submission
		assert.ErrorIs(t, binder.Form()(req, &got), binder.ErrUnsupportedMediaType)
	})

	t.Run("multipart without boundary", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/contacto", strings.NewReader(""))
		req.Header.Set("Content-Type", "multipart/form-data")

		var got submission
		assert.ErrorIs(t, binder.Form()(req, &got), binder.ErrInvalidForm)
	})

	t.Run("invalid number", func(t *testing.T) {
		t.Parallel()
		req := postForm(url.Values{"edad": {"treinta"}})

		var got submission
		err := binder.Form()(req, &got)
		require.ErrorIs(t, err, binder.ErrInvalidForm)
		assert.Contains(t, err.Error(), "Edad")
	})

	t.Run("target must be pointer to struct", func(t *testing.T) {
		t.Parallel()
		var s string
		assert.ErrorIs(t, binder.Form()(postForm(url.Values{}), &s), binder.ErrInvalidForm)
		assert.ErrorIs(t, binder.Form()(postForm(url.Values{}), submission{}), binder.ErrInvalidForm)
	})

	t.Run("embedded structs", func(t *testing.T) {
		t.Parallel()
		type Meta struct {
			Origen string `form:"origen"`
		}
		type request struct {
			Meta
			Nombre string `form:"nombre"`
		}

		var got request
		require.NoError(t, binder.Form()(postForm(url.Values{"nombre": {"Ana"}, "origen": {"web"}}), &got))
		assert.Equal(t, "Ana", got.Nombre)
		assert.Equal(t, "web", got.Origen)
	})
}
