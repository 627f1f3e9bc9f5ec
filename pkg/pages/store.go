package pages

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/vivircondiabetes/sitio/pkg/cache"
	"github.com/vivircondiabetes/sitio/pkg/dom"
	"github.com/vivircondiabetes/sitio/pkg/enhance"
	"github.com/vivircondiabetes/sitio/pkg/logger"
)

// Ext is the extension of page files.
const Ext = ".html"

// DefaultCacheSize is how many page sources a Store keeps by default.
const DefaultCacheSize = 64

// Store reads pages from a file system and caches their sources.
// It is safe for concurrent use.
type Store struct {
	fsys      fs.FS
	enhancers []enhance.Enhancer
	debounce  time.Duration
	cacheSize int
	log       *slog.Logger

	cache *cache.LRU[string, []byte]
}

// Option configures a Store.
type Option func(*Store)

// WithEnhancers sets the enhancers applied to every document.
func WithEnhancers(e ...enhance.Enhancer) Option {
	return func(s *Store) {
		s.enhancers = e
	}
}

// WithDebounce sets the window Watch waits for file events to settle.
func WithDebounce(d time.Duration) Option {
	return func(s *Store) {
		if d > 0 {
			s.debounce = d
		}
	}
}

// WithCacheSize bounds the number of cached page sources.
func WithCacheSize(n int) Option {
	return func(s *Store) {
		if n > 0 {
			s.cacheSize = n
		}
	}
}

// WithLogger sets the store logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.log = l
		}
	}
}

// New creates a Store over fsys. Pages are the *.html files at its root.
func New(fsys fs.FS, opts ...Option) *Store {
	s := &Store{
		fsys:      fsys,
		debounce:  DefaultDebounce,
		cacheSize: DefaultCacheSize,
		log:       slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With(logger.Component("pages"))
	s.cache = cache.NewLRU[string, []byte](s.cacheSize)
	return s
}

// FS returns the underlying file system.
func (s *Store) FS() fs.FS { return s.fsys }

// Names lists the available pages, without extension, sorted.
func (s *Store) Names() ([]string, error) {
	matches, err := fs.Glob(s.fsys, "*"+Ext)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, strings.TrimSuffix(m, Ext))
	}
	sort.Strings(names)
	return names, nil
}

// Source returns the raw page source, reading it on first use.
func (s *Store) Source(name string) ([]byte, error) {
	if err := validName(name); err != nil {
		return nil, err
	}

	if src, ok := s.cache.Get(name); ok {
		return src, nil
	}

	src, err := fs.ReadFile(s.fsys, name+Ext)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrPageNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("read page %s: %w", name, err)
	}

	s.cache.Put(name, src)
	return src, nil
}

// Document parses a fresh copy of the page and applies the enhancers.
func (s *Store) Document(ctx context.Context, name string) (*dom.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	src, err := s.Source(name)
	if err != nil {
		return nil, err
	}
	doc, err := dom.Parse(bytes.NewReader(src))
	if err != nil {
		return nil, fmt.Errorf("page %s: %w", name, err)
	}
	enhance.Apply(doc, s.enhancers...)
	return doc, nil
}

// Invalidate drops cached sources. Without names the whole cache is cleared.
func (s *Store) Invalidate(names ...string) {
	if len(names) == 0 {
		s.cache.Clear()
		return
	}
	for _, name := range names {
		s.cache.Remove(name)
	}
}

// Cached reports whether the page source is cached.
func (s *Store) Cached(name string) bool {
	return s.cache.Contains(name)
}

func validName(name string) error {
	if name == "" || name == "." || strings.ContainsAny(name, `/\`) || !fs.ValidPath(name) || path.Ext(name) != "" {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return nil
}
