package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/a-h/templ"
	"github.com/starfederation/datastar-go/datastar"

	"github.com/vivircondiabetes/sitio/pkg/binder"
	"github.com/vivircondiabetes/sitio/pkg/logger"
	"github.com/vivircondiabetes/sitio/pkg/requestid"
	"github.com/vivircondiabetes/sitio/pkg/validator"
)

// PageError is what an error page gets to show.
type PageError struct {
	Error      string
	StatusCode int
	RequestID  string
	RetryURL   string
}

// Notice is what a patched error notice gets to show.
type Notice struct {
	Message   string
	Severity  string // "error" or "warning"
	RequestID string
}

// ErrorHandlerConfig holds the views used by NewErrorHandler.
type ErrorHandlerConfig struct {
	// Page renders the whole document for plain requests.
	Page func(PageError) templ.Component
	// Notice is patched into NoticeTarget for DataStar requests.
	Notice       func(Notice) templ.Component
	NoticeTarget string // "#form-status" when empty
	NoticeMode   datastar.ElementPatchMode
}

// Classification is how an error is reported.
type Classification struct {
	Status   int
	Message  string
	Severity string
	Level    slog.Level
}

// Classify maps err to a status, a visitor-facing message and a log level.
// 4xx are warnings, everything else is an error.
func Classify(err error) Classification {
	status := http.StatusInternalServerError
	message := ""

	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		status = httpErr.Code
	} else if binder.IsBindingError(err) {
		status = http.StatusBadRequest
	}
	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
		status = http.StatusUnprocessableEntity
		message = strings.Join(verrs.Fields(), ", ")
	}
	if message == "" {
		message = http.StatusText(status)
	}

	if status < http.StatusInternalServerError {
		return Classification{Status: status, Message: message, Severity: "warning", Level: slog.LevelWarn}
	}
	return Classification{Status: status, Message: message, Severity: "error", Level: slog.LevelError}
}

// NewErrorHandler returns the ErrorHandler shared by the site's routes.
// Clients accepting JSON get the error envelope. Without views the rest
// fall back to a plain-text answer.
func NewErrorHandler(log *slog.Logger, cfg ErrorHandlerConfig) ErrorHandler {
	if log == nil {
		log = slog.Default()
	}
	log = log.With(logger.Component("error_handler"))
	if cfg.NoticeTarget == "" {
		cfg.NoticeTarget = "#form-status"
	}
	if cfg.NoticeMode == "" {
		cfg.NoticeMode = PatchInner
	}

	return func(ctx Context, err error) {
		r := ctx.Request()
		c := Classify(err)
		id := requestid.FromContext(r.Context())
		datastarReq := IsDataStar(r)

		log.LogAttrs(r.Context(), c.Level, "request failed",
			logger.RequestID(id),
			logger.Error(err),
			slog.Int("status_code", c.Status),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Bool("datastar", datastarReq),
		)

		var resp Response
		switch {
		case !datastarReq && WantsJSON(r):
			resp = JSON(err)
		case datastarReq && cfg.Notice != nil:
			resp = HTML(cfg.Notice(Notice{Message: c.Message, Severity: c.Severity, RequestID: id}),
				Into(cfg.NoticeTarget), Mode(cfg.NoticeMode))
		case datastarReq:
			log.WarnContext(r.Context(), "no notice view for datastar request", logger.RequestID(id))
			return
		case cfg.Page != nil:
			resp = WithStatus(c.Status, HTML(cfg.Page(PageError{
				Error:      err.Error(),
				StatusCode: c.Status,
				RequestID:  id,
				RetryURL:   r.URL.Path,
			})))
		default:
			http.Error(ctx.ResponseWriter(), c.Message, c.Status)
			return
		}

		if rerr := resp.Render(ctx.ResponseWriter(), r); rerr != nil {
			log.ErrorContext(r.Context(), "render error view", logger.RequestID(id), logger.Error(rerr))
		}
	}
}
