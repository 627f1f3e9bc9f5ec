// Package logger builds the *slog.Logger used across the site.
//
// New returns a logger configured through functional options: output
// format (JSON or text), minimum level and static attributes. Context
// extractors add request scoped attributes, such as the request id, to
// every record logged with a context:
//
//	log := logger.New(
//		logger.WithEnvironment(cfg.Env, cfg.Name),
//		logger.WithLevelName(cfg.LogLevel),
//		logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	log.InfoContext(r.Context(), "page served", logger.Page("contacto"))
//
// Attribute helpers (Error, Component, Event, ...) keep key names uniform
// so records can be filtered the same way everywhere.
package logger
