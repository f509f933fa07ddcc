package logs

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"planner/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{in: "debug", want: slog.LevelDebug},
		{in: "INFO", want: slog.LevelInfo},
		{in: "", want: slog.LevelInfo},
		{in: "warn", want: slog.LevelWarn},
		{in: "error", want: slog.LevelError},
		{in: "verbose", want: slog.LevelInfo, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseLogLevel(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewLogger_JSONWithServiceName(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.ServiceName = "planner"
	cfg.Env.Log.Level = "info"

	var buf bytes.Buffer
	logger, err := newLogger(&buf, cfg)
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("visible", slog.String("userId", "CUS001"))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "visible", entry["msg"])
	assert.Equal(t, "planner", entry["service"])
	assert.Equal(t, "CUS001", entry["userId"])
}

func TestNewLogger_RedactsSensitiveAttrs(t *testing.T) {
	cfg := &config.Config{}

	var buf bytes.Buffer
	logger, err := newLogger(&buf, cfg)
	require.NoError(t, err)

	logger.Info("card payment",
		slog.String("cardNumber", "4111111111111111"),
		slog.Group("req", slog.String("password", "hunter2")),
		slog.String("P_ID", "PAY001"),
	)

	out := buf.String()
	assert.NotContains(t, out, "4111111111111111")
	assert.NotContains(t, out, "hunter2")
	assert.Contains(t, out, `"P_ID":"PAY001"`)
	assert.Contains(t, out, `"cardNumber":"[REDACTED]"`)
}
