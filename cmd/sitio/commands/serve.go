package commands

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/vivircondiabetes/sitio/handler"
	"github.com/vivircondiabetes/sitio/modules/contact"
	"github.com/vivircondiabetes/sitio/modules/site"
	"github.com/vivircondiabetes/sitio/pkg/clientip"
	"github.com/vivircondiabetes/sitio/pkg/environment"
	"github.com/vivircondiabetes/sitio/pkg/httpserver"
	"github.com/vivircondiabetes/sitio/pkg/logger"
	"github.com/vivircondiabetes/sitio/pkg/ratelimiter"
	"github.com/vivircondiabetes/sitio/pkg/redis"
	"github.com/vivircondiabetes/sitio/pkg/requestid"
)

func (a *app) serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the site",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return a.serve(ctx)
		},
	}
}

func (a *app) serve(ctx context.Context) error {
	cfg := a.cfg
	store := a.store()
	_, static := cfg.Site.files()

	if cfg.Site.Watch && cfg.Site.Dir != "" {
		go func() {
			if err := store.Watch(ctx, cfg.Site.Dir); err != nil && !errors.Is(err, context.Canceled) {
				a.log.ErrorContext(ctx, "page watcher stopped", logger.Error(err), logger.Event("watch_failed"))
			}
		}()
	}

	var (
		limiterStore ratelimiter.Store
		checks       []httpserver.Check
	)
	if cfg.Redis.Enabled() {
		client, err := redis.Connect(ctx, cfg.Redis)
		if err != nil {
			return err
		}
		defer client.Close()
		limiterStore = ratelimiter.NewRedisStore(client)
		checks = append(checks, httpserver.Check{Name: "redis", Fn: redis.Healthcheck(client)})
	} else {
		mem := ratelimiter.NewMemoryStore()
		defer mem.Close()
		limiterStore = mem
	}

	limiter, err := ratelimiter.NewBucket(limiterStore, cfg.Contact.RateLimit())
	if err != nil {
		return err
	}

	errorHandler := handler.NewErrorHandler(a.log, handler.ErrorHandlerConfig{
		Page:   site.ErrorPage,
		Notice: site.ErrorToast,
	})

	contactSvc := contact.NewService(cfg.Contact, store,
		contact.WithRateLimiter(limiter),
		contact.WithLogger(a.log),
		contact.WithErrorHandler(errorHandler),
	)
	siteSvc := site.NewService(store,
		site.WithStatic(static),
		site.WithLogger(a.log),
		site.WithErrorHandler(errorHandler),
	)

	r := chi.NewRouter()
	r.Use(
		requestid.Middleware,
		clientip.Middleware(clientip.NewResolver(cfg.TrustedIPHeaders...)),
		environment.Middleware(cfg.Env),
		accessLog(a.log),
		middleware.Recoverer,
		middleware.Compress(5),
	)
	r.Get("/health/live", httpserver.Live())
	r.Get("/health/ready", httpserver.Ready(a.log, checks...))
	r.Mount("/", site.Router(site.RouterOptions{
		Contact: contactSvc,
		Pages:   siteSvc,
	}))

	return httpserver.New(cfg.HTTP, httpserver.WithLogger(a.log)).Run(ctx, r)
}

// accessLog logs one line per request.
func accessLog(log *slog.Logger) func(http.Handler) http.Handler {
	log = log.With(logger.Component("http"))
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			log.InfoContext(r.Context(), "request",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", ww.Status()),
				slog.Int("bytes", ww.BytesWritten()),
				slog.String("ip", clientip.GetIP(r)),
				logger.Duration(time.Since(start)),
			)
		})
	}
}
