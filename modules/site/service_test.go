package site_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"

	"github.com/vivircondiabetes/sitio/modules/site"
	"github.com/vivircondiabetes/sitio/pkg/enhance"
	"github.com/vivircondiabetes/sitio/pkg/pages"
)

const indexPage = `<!doctype html><html><head><title>Inicio</title></head><body>
<a class="skip-link" href="#contenido">Saltar</a>
<main id="contenido"><section id="que-es"><h2>¿Qué es?</h2></section></main>
</body></html>`

func newStore() *pages.Store {
	return pages.New(fstest.MapFS{
		"index.html":   {Data: []byte(indexPage)},
		"gracias.html": {Data: []byte(`<html><body><h1>Gracias</h1></body></html>`)},
	}, pages.WithEnhancers(enhance.Default()...))
}

func newHandler() http.Handler {
	static := fstest.MapFS{
		"css/site.css": {Data: []byte(":root{}")},
	}
	return site.NewService(newStore(), site.WithStatic(static)).Handle()
}

func TestServicePages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		path     string
		code     int
		contains string
	}{
		{"index", "/", http.StatusOK, `tabindex="-1"`},
		{"named page", "/gracias", http.StatusOK, "Gracias"},
		{"unknown page", "/nada", http.StatusNotFound, "No encontramos esta página"},
		{"nested path", "/a/b", http.StatusNotFound, "No encontramos esta página"},
		{"static asset", "/static/css/site.css", http.StatusOK, ":root{}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			w := httptest.NewRecorder()
			newHandler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, tt.code, w.Code)
			assert.Contains(t, w.Body.String(), tt.contains)
		})
	}

	t.Run("index is enhanced", func(t *testing.T) {
		t.Parallel()
		w := httptest.NewRecorder()
		newHandler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		body := w.Body.String()
		assert.Contains(t, body, "--header-h: 72px")
		assert.Contains(t, body, "scroll-margin-top")
	})

	t.Run("index path redirects to root", func(t *testing.T) {
		t.Parallel()
		w := httptest.NewRecorder()
		newHandler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/index", nil))

		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/", w.Header().Get("Location"))
	})
}

type stubService struct{ body string }

func (s stubService) Handle() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(s.body))
	})
}

func TestRouter(t *testing.T) {
	t.Parallel()

	r := site.Router(site.RouterOptions{
		Contact: stubService{body: "contacto"},
		Pages:   site.NewService(newStore()),
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/contacto", nil))
	assert.Equal(t, "contacto", w.Body.String())

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/gracias", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Gracias")
}
