package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"log/slog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formbind/pkg/logger"
)

func TestNew(t *testing.T) {
	t.Run("defaults to JSON at info level", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf))

		log.Debug("hidden")
		log.Info("shown")

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "shown", entry["msg"])
	})

	t.Run("development preset uses text and debug", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(
			logger.WithDevelopment("forms"),
			logger.WithOutput(buf),
		)

		log.Debug("msg")
		output := buf.String()
		assert.Contains(t, output, "DEBUG")
		assert.Contains(t, output, "service=forms")
		assert.Contains(t, output, "env=development")
	})

	t.Run("production preset emits service attribute", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(
			logger.WithProduction("forms"),
			logger.WithOutput(buf),
		)

		log.Info("msg")
		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "forms", entry["service"])
		assert.Equal(t, "production", entry["env"])
	})

	t.Run("invalid format panics", func(t *testing.T) {
		assert.Panics(t, func() {
			logger.New(logger.WithFormat("yaml"))
		})
	})

	t.Run("context extractors inject per-record attributes", func(t *testing.T) {
		type key struct{}

		buf := &bytes.Buffer{}
		log := logger.New(
			logger.WithOutput(buf),
			logger.WithContextExtractors(func(ctx context.Context) (slog.Attr, bool) {
				if v, ok := ctx.Value(key{}).(string); ok {
					return slog.String("form_id", v), true
				}
				return slog.Attr{}, false
			}),
		)

		ctx := context.WithValue(context.Background(), key{}, "signup")
		log.InfoContext(ctx, "msg")

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "signup", entry["form_id"])
	})
}

func TestAttrs(t *testing.T) {
	t.Run("error attr is empty for nil error", func(t *testing.T) {
		assert.Equal(t, slog.Attr{}, logger.Error(nil))
		assert.Equal(t, "error", logger.Error(errors.New("boom")).Key)
	})

	t.Run("domain attrs use stable keys", func(t *testing.T) {
		assert.Equal(t, "field", logger.Field("email").Key)
		assert.Equal(t, "rule", logger.Rule("required|email").Key)
		assert.Equal(t, "valid", logger.Valid(true).Key)
		assert.Equal(t, "component", logger.Component("binder").Key)
	})
}
