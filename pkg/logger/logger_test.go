package logger_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/giftchain/giftchain-go/pkg/logger"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("json format with attributes", func(t *testing.T) {
		var buf bytes.Buffer
		log := logger.New(
			logger.WithOutput(&buf),
			logger.WithComponent("test-suite"),
			logger.WithAttr(slog.String("version", "1.2.3")),
		)

		log.Info("hello", slog.Int("n", 7))

		var record map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
		assert.Equal(t, "hello", record["msg"])
		assert.Equal(t, "test-suite", record["component"])
		assert.Equal(t, "1.2.3", record["version"])
		assert.Equal(t, float64(7), record["n"])
	})

	t.Run("text format", func(t *testing.T) {
		var buf bytes.Buffer
		log := logger.New(
			logger.WithOutput(&buf),
			logger.WithFormat(logger.FormatText),
		)

		log.Info("hello")
		assert.Contains(t, buf.String(), "msg=hello")
	})

	t.Run("level filters records", func(t *testing.T) {
		var buf bytes.Buffer
		log := logger.New(
			logger.WithOutput(&buf),
			logger.WithLevel(slog.LevelWarn),
		)

		log.Info("dropped")
		log.Warn("kept")

		out := buf.String()
		assert.NotContains(t, out, "dropped")
		assert.Contains(t, out, "kept")
		assert.Equal(t, 1, strings.Count(out, "\n"))
	})

	t.Run("invalid format panics", func(t *testing.T) {
		assert.Panics(t, func() {
			logger.New(logger.WithFormat("xml"))
		})
	})

	t.Run("discard logger stays silent", func(t *testing.T) {
		assert.NotPanics(t, func() {
			logger.NewDiscard().Error("nobody sees this")
		})
	})
}
