package contact

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/vivircondiabetes/sitio/handler"
	"github.com/vivircondiabetes/sitio/pkg/binder"
	"github.com/vivircondiabetes/sitio/pkg/clientip"
	"github.com/vivircondiabetes/sitio/pkg/dom"
	"github.com/vivircondiabetes/sitio/pkg/logger"
	"github.com/vivircondiabetes/sitio/pkg/ratelimiter"
)

// PageSource returns a freshly parsed, ready to serve copy of a page.
// Each call must return a document the caller may mutate.
type PageSource interface {
	Document(ctx context.Context, name string) (*dom.Document, error)
}

// Service serves the contact page and validates submissions.
type Service struct {
	cfg          Config
	pages        PageSource
	limiter      ratelimiter.RateLimiter
	log          *slog.Logger
	errorHandler handler.ErrorHandler
}

// Option configures a Service.
type Option func(*Service)

// WithRateLimiter limits submissions per client IP.
func WithRateLimiter(l ratelimiter.RateLimiter) Option {
	return func(s *Service) {
		s.limiter = l
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

// NewService creates the contact service.
func NewService(cfg Config, pages PageSource, opts ...Option) *Service {
	s := &Service{
		cfg:   cfg,
		pages: pages,
		log:   slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.errorHandler == nil {
		s.errorHandler = handler.NewErrorHandler(s.log, handler.ErrorHandlerConfig{})
	}
	s.log = s.log.With(logger.Component("contact"))
	return s
}

// Handle returns the service routes, meant to be mounted at /contacto.
//
//	GET  /                 contact page
//	POST /                 submit
//	POST /campos/{field}   live validation of one field
func (s *Service) Handle() http.Handler {
	r := chi.NewRouter()

	r.Get("/", handler.Wrap(s.show,
		handler.WithErrorHandler[struct{}](s.errorHandler),
	))

	submit := handler.Wrap(s.submit,
		handler.WithBinders[Submission](
			binder.Form(),
			binder.JSON(),
		),
		handler.WithErrorHandler[Submission](s.errorHandler),
	)
	if s.limiter != nil {
		r.With(ratelimiter.Middleware(s.limiter, clientip.GetIP,
			ratelimiter.WithKeyPrefix("contacto:"),
			ratelimiter.WithDeniedHandler(s.rateLimited),
			ratelimiter.WithStoreErrorHandler(s.limiterFailed),
		)).Post("/", submit)
	} else {
		r.Post("/", submit)
	}

	r.With(s.knownField).Post("/campos/{field}", handler.Wrap(s.validateField,
		handler.WithBinders[FieldRequest](
			binder.Path(chi.URLParam),
			binder.Form(),
			binder.JSON(),
		),
		handler.WithErrorHandler[FieldRequest](s.errorHandler),
	))

	return r
}

// knownField answers 404 for fields the form does not validate, before the
// body is bound.
func (s *Service) knownField(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !IsField(chi.URLParam(r, "field")) {
			s.errorHandler(handler.NewContext(w, r), handler.ErrNotFound)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Service) rateLimited(w http.ResponseWriter, r *http.Request, res *ratelimiter.Result) {
	s.log.WarnContext(r.Context(), "contact submission rate limited",
		slog.String("ip", clientip.GetIP(r)),
		slog.String("retry_after", strconv.Itoa(int(res.RetryAfter().Seconds()))),
		logger.Event("rate_limited"),
	)
	s.errorHandler(handler.NewContext(w, r), handler.ErrTooManyRequests)
}

func (s *Service) limiterFailed(w http.ResponseWriter, r *http.Request, err error) {
	s.log.ErrorContext(r.Context(), "rate limiter unavailable", logger.Error(err))
	s.errorHandler(handler.NewContext(w, r), handler.ErrServiceUnavailable)
}

// validator parses the contact page and builds a validator for it.
func (s *Service) validator(ctx context.Context) (*Validator, error) {
	doc, err := s.pages.Document(ctx, s.cfg.Page)
	if err != nil {
		return nil, fmt.Errorf("contact page %q: %w", s.cfg.Page, err)
	}
	return New(doc)
}

func (s *Service) show(ctx handler.Context, _ struct{}) handler.Response {
	doc, err := s.pages.Document(ctx, s.cfg.Page)
	if err != nil {
		return handler.Error(err)
	}
	return handler.HTML(handler.Fragment(doc))
}

func (s *Service) submit(ctx handler.Context, req Submission) handler.Response {
	v, err := s.validator(ctx)
	if errors.Is(err, ErrFormNotFound) {
		s.log.WarnContext(ctx, "contact page has no form, submission ignored", logger.Event("form_missing"))
		return s.show(ctx, struct{}{})
	}
	if err != nil {
		return handler.Error(err)
	}

	v.Bind(req)
	out := v.Submit()

	if out.Prevented {
		s.log.InfoContext(ctx, "contact submission rejected",
			slog.Any("fields", out.Errors.Fields()),
			slog.String("focus", out.Focus),
			logger.Event("submit_rejected"),
		)
		if handler.WantsJSON(ctx.Request()) {
			return handler.JSON(out.Errors)
		}
		return rejectedResponse{v: v, out: out}
	}

	location, code := s.forwardTarget(v)
	s.log.InfoContext(ctx, "contact submission accepted",
		slog.String("location", location),
		slog.Int("status", code),
		logger.Event("submit_accepted"),
	)
	if handler.WantsJSON(ctx.Request()) {
		return handler.JSON(map[string]string{"status": out.Status, "location": location})
	}
	return forwardResponse{v: v, location: location, code: code}
}

// forwardTarget picks where a valid submission goes. A configured or
// declared endpoint gets a 307 so the browser re-posts the same body.
func (s *Service) forwardTarget(v *Validator) (string, int) {
	if s.cfg.Endpoint != "" {
		return s.cfg.Endpoint, http.StatusTemporaryRedirect
	}
	if ep := v.Endpoint(); ep != "" {
		return ep, http.StatusTemporaryRedirect
	}
	return s.cfg.ThanksPath, http.StatusSeeOther
}

func (s *Service) validateField(ctx handler.Context, req FieldRequest) handler.Response {
	if !IsField(req.Field) {
		return handler.Error(handler.ErrNotFound)
	}

	v, err := s.validator(ctx)
	if errors.Is(err, ErrFormNotFound) {
		return handler.Error(handler.ErrNotFound)
	}
	if err != nil {
		return handler.Error(err)
	}

	if err := v.SetField(req.Field, req.Value()); err != nil {
		return handler.Error(err)
	}
	valid, err := v.ValidateField(req.Field)
	if err != nil {
		return handler.Error(err)
	}

	f := v.Field(req.Field)
	if !handler.IsDataStar(ctx.Request()) {
		res := FieldResult{Field: req.Field, Valid: valid}
		if f != nil {
			res.Message = f.Message()
		}
		return handler.JSON(res)
	}

	var patches []handler.Patch
	if f != nil {
		patches = append(patches, handler.Patch{Component: handler.Fragment(f.Element())})
		if f.ErrorElement() != nil {
			patches = append(patches, handler.Patch{Component: handler.Fragment(f.ErrorElement())})
		}
	}
	return handler.Patches(patches...)
}
