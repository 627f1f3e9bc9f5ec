// Package httpserver runs an http.Server until its context is canceled and
// then shuts it down gracefully. It also provides the liveness and
// readiness probe handlers.
//
//	srv := httpserver.New(cfg.HTTP, httpserver.WithLogger(log))
//	r.Get("/health/live", httpserver.Live())
//	r.Get("/health/ready", httpserver.Ready(log, httpserver.Check{Name: "redis", Fn: redis.Healthcheck(client)}))
//	if err := srv.Run(ctx, r); err != nil {
//		return err
//	}
package httpserver
