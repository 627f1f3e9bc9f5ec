package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vivircondiabetes/sitio/pkg/environment"
	"github.com/vivircondiabetes/sitio/pkg/logger"
)

func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("json by default", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		logger.New(logger.WithOutput(buf)).Info("hola")

		entry := decode(t, buf)
		assert.Equal(t, "INFO", entry["level"])
		assert.Equal(t, "hola", entry["msg"])
	})

	t.Run("level name", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithLevelName("warn"))

		log.Info("ignorado")
		assert.Empty(t, buf.String())
		log.Warn("visible")
		assert.Contains(t, buf.String(), "visible")
	})

	t.Run("unknown level name keeps default", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithLevelName("verbose"))

		log.Info("visible")
		assert.Contains(t, buf.String(), "visible")
	})

	t.Run("development is text at debug", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithEnvironment(environment.Development, "sitio"))

		log.Debug("detalle")
		out := buf.String()
		assert.Contains(t, out, "level=DEBUG")
		assert.Contains(t, out, "service=sitio")
		assert.Contains(t, out, "env=development")
	})

	t.Run("production is json", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithEnvironment(environment.Production, "sitio"))

		log.Debug("ignorado")
		assert.Empty(t, buf.String())
		log.Info("listo")
		entry := decode(t, buf)
		assert.Equal(t, "production", entry["env"])
	})

	t.Run("invalid format panics", func(t *testing.T) {
		t.Parallel()
		assert.Panics(t, func() { logger.New(logger.WithFormat("xml")) })
	})
}

type ctxKey struct{}

func TestContextExtractors(t *testing.T) {
	t.Parallel()

	extractor := func(ctx context.Context) (slog.Attr, bool) {
		id, ok := ctx.Value(ctxKey{}).(string)
		if !ok {
			return slog.Attr{}, false
		}
		return logger.RequestID(id), true
	}

	buf := &bytes.Buffer{}
	log := logger.New(
		logger.WithOutput(buf),
		logger.WithContextExtractors(extractor, nil),
	).With(logger.Component("contact"))

	ctx := context.WithValue(context.Background(), ctxKey{}, "req-1")
	log.InfoContext(ctx, "envío recibido", logger.Event("submit"))

	entry := decode(t, buf)
	assert.Equal(t, "req-1", entry["request_id"])
	assert.Equal(t, "contact", entry["component"])
	assert.Equal(t, "submit", entry["event"])
}

func TestAttrs(t *testing.T) {
	t.Parallel()

	assert.True(t, logger.Error(nil).Equal(slog.Attr{}))
	assert.Equal(t, "boom", logger.Error(errors.New("boom")).Value.Any().(error).Error())
	assert.True(t, logger.RequestID("").Equal(slog.Attr{}))
	assert.Equal(t, "contacto", logger.Page("contacto").Value.String())
	assert.Equal(t, int64(1500), logger.Duration(1500*time.Millisecond).Value.Int64())
}
