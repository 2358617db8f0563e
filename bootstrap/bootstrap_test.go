package bootstrap

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prior-it/customers/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateLogger(t *testing.T) {
	previous := slog.Default()
	t.Cleanup(func() { slog.SetDefault(previous) })

	t.Run("ok: json format", func(t *testing.T) {
		var buf bytes.Buffer
		logger := createLogger(&config.Config{Log: config.LogConfig{
			Format: config.LogFormatJSON,
			Level:  config.LogLevelInfo,
		}}, &buf)
		logger.Debug("hidden")
		logger.Info("shown", "customer_id", 7)

		var line map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
		assert.Equal(t, "shown", line["msg"])
		assert.InDelta(t, 7, line["customer_id"], 0)
	})

	t.Run("ok: plaintext format", func(t *testing.T) {
		var buf bytes.Buffer
		logger := createLogger(&config.Config{Log: config.LogConfig{
			Format: config.LogFormatPlaintext,
			Level:  config.LogLevelDebug,
		}}, &buf)
		logger.Debug("visible", "city", "Utrecht")
		assert.Contains(t, buf.String(), "visible")
		assert.Contains(t, buf.String(), "Utrecht")
	})
}

func TestFull(t *testing.T) {
	previous := slog.Default()
	t.Cleanup(func() { slog.SetDefault(previous) })

	t.Run("ok: in-memory server is seeded", func(t *testing.T) {
		cfg := &config.Config{
			App:  config.AppConfig{Name: "test", RequestTimeout: 5},
			Log:  config.LogConfig{Format: config.LogFormatJSON, Level: config.LogLevelError},
			Seed: config.SeedConfig{Enabled: true},
		}
		s, err := Full(context.Background(), cfg)
		require.NoError(t, err)

		recorder := httptest.NewRecorder()
		s.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/customers", nil))
		require.Equal(t, http.StatusOK, recorder.Code)

		var customers []map[string]any
		require.NoError(t, json.NewDecoder(recorder.Body).Decode(&customers))
		require.Len(t, customers, 2)
		assert.Equal(t, "userFirstName1", customers[0]["firstName"])
	})
}
