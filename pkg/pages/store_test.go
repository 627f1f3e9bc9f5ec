package pages_test

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vivircondiabetes/sitio/pkg/enhance"
	"github.com/vivircondiabetes/sitio/pkg/pages"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"index.html":    {Data: []byte(`<html><body><main id="contenido"><h2 id="inicio">Inicio</h2></main></body></html>`)},
		"contacto.html": {Data: []byte(`<html><body><form id="contact-form"></form></body></html>`)},
		"styles.css":    {Data: []byte(`body{}`)},
		"static/x.html": {Data: []byte(`nested`)},
	}
}

func TestStore_Names(t *testing.T) {
	t.Parallel()

	names, err := pages.New(testFS()).Names()
	require.NoError(t, err)
	assert.Equal(t, []string{"contacto", "index"}, names)
}

func TestStore_Document(t *testing.T) {
	t.Parallel()

	t.Run("parses and enhances", func(t *testing.T) {
		t.Parallel()
		s := pages.New(testFS(), pages.WithEnhancers(enhance.ScrollMargin()))

		doc, err := s.Document(context.Background(), "index")
		require.NoError(t, err)
		style, _ := doc.ByID("inicio").Attr("style")
		assert.Contains(t, style, "scroll-margin-top")
	})

	t.Run("each call returns a fresh document", func(t *testing.T) {
		t.Parallel()
		s := pages.New(testFS())
		ctx := context.Background()

		first, err := s.Document(ctx, "contacto")
		require.NoError(t, err)
		first.ByID("contact-form").SetAttr("data-dirty", "1")

		second, err := s.Document(ctx, "contacto")
		require.NoError(t, err)
		assert.False(t, second.ByID("contact-form").HasAttr("data-dirty"))
	})

	t.Run("missing page", func(t *testing.T) {
		t.Parallel()
		_, err := pages.New(testFS()).Document(context.Background(), "nada")
		assert.ErrorIs(t, err, pages.ErrPageNotFound)
	})

	t.Run("invalid names", func(t *testing.T) {
		t.Parallel()
		s := pages.New(testFS())
		for _, name := range []string{"", ".", "../index", "static/x", "index.html", `a\b`} {
			_, err := s.Document(context.Background(), name)
			assert.ErrorIs(t, err, pages.ErrInvalidName, name)
		}
	})

	t.Run("cancelled context", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := pages.New(testFS()).Document(ctx, "index")
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestStore_Invalidate(t *testing.T) {
	t.Parallel()

	fsys := testFS()
	s := pages.New(fsys)

	src, err := s.Source("index")
	require.NoError(t, err)
	assert.True(t, s.Cached("index"))

	fsys["index.html"] = &fstest.MapFile{Data: []byte(`<p>nuevo</p>`)}

	cached, err := s.Source("index")
	require.NoError(t, err)
	assert.Equal(t, src, cached)

	s.Invalidate("index")
	assert.False(t, s.Cached("index"))

	fresh, err := s.Source("index")
	require.NoError(t, err)
	assert.Equal(t, `<p>nuevo</p>`, string(fresh))

	_, err = s.Source("contacto")
	require.NoError(t, err)
	s.Invalidate()
	assert.False(t, s.Cached("index"))
	assert.False(t, s.Cached("contacto"))
}

func TestStore_CacheSize(t *testing.T) {
	t.Parallel()

	s := pages.New(testFS(), pages.WithCacheSize(1))

	_, err := s.Source("index")
	require.NoError(t, err)
	_, err = s.Source("contacto")
	require.NoError(t, err)

	assert.False(t, s.Cached("index"))
	assert.True(t, s.Cached("contacto"))
}
