package site

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vivircondiabetes/sitio/handler"
	"github.com/vivircondiabetes/sitio/pkg/binder"
	"github.com/vivircondiabetes/sitio/pkg/dom"
	"github.com/vivircondiabetes/sitio/pkg/logger"
	"github.com/vivircondiabetes/sitio/pkg/pages"
)

// IndexPage is served at /.
const IndexPage = "index"

// PageStore provides enhanced page documents.
type PageStore interface {
	Names() ([]string, error)
	Document(ctx context.Context, name string) (*dom.Document, error)
}

// Service serves the site's pages and static assets.
type Service struct {
	pages        PageStore
	static       fs.FS
	log          *slog.Logger
	errorHandler handler.ErrorHandler
}

// Option configures a Service.
type Option func(*Service)

// WithStatic serves files from fsys under /static/.
func WithStatic(fsys fs.FS) Option {
	return func(s *Service) {
		s.static = fsys
	}
}

// WithLogger sets the service logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

// WithErrorHandler sets the handler for errors raised by routes.
func WithErrorHandler(h handler.ErrorHandler) Option {
	return func(s *Service) {
		if h != nil {
			s.errorHandler = h
		}
	}
}

// NewService creates the site service.
func NewService(store PageStore, opts ...Option) *Service {
	s := &Service{
		pages: store,
		log:   slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.errorHandler == nil {
		s.errorHandler = handler.NewErrorHandler(s.log, handler.ErrorHandlerConfig{Page: ErrorPage})
	}
	s.log = s.log.With(logger.Component("site"))
	return s
}

// PageRequest names the requested page.
type PageRequest struct {
	Page string `path:"page"`
}

// Handle returns the site routes.
func (s *Service) Handle() http.Handler {
	r := chi.NewRouter()

	if s.static != nil {
		r.Handle("/static/*", http.StripPrefix("/static/", http.FileServerFS(s.static)))
	}

	page := handler.Wrap(s.page,
		handler.WithBinders[PageRequest](binder.Path(chi.URLParam)),
		handler.WithErrorHandler[PageRequest](s.errorHandler),
	)
	r.Get("/", page)
	r.Get("/{page}", page)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		s.errorHandler(handler.NewContext(w, r), handler.ErrNotFound)
	})

	return r
}

func (s *Service) page(ctx handler.Context, req PageRequest) handler.Response {
	name := req.Page
	if name == "" {
		name = IndexPage
	}
	// The index is only reachable at /.
	if req.Page == IndexPage {
		return handler.Redirect("/")
	}

	doc, err := s.pages.Document(ctx, name)
	if errors.Is(err, pages.ErrPageNotFound) || errors.Is(err, pages.ErrInvalidName) {
		return handler.Error(handler.ErrNotFound)
	}
	if err != nil {
		return handler.Error(err)
	}

	return handler.HTML(handler.Fragment(doc))
}
