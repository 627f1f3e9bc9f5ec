package logger

import (
	"log/slog"
	"time"
)

// Error records err under "error". A nil error yields an empty attribute.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// RequestID records the request id under "request_id".
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

// Component names the package or service emitting the record.
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Event names what happened, in snake_case.
func Event(name string) slog.Attr {
	return slog.String("event", name)
}

// Page records a page name.
func Page(name string) slog.Attr {
	return slog.String("page", name)
}

// Duration records d in milliseconds under "duration_ms".
func Duration(d time.Duration) slog.Attr {
	return slog.Int64("duration_ms", d.Milliseconds())
}
