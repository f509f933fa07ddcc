package context

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestValidRequestID(t *testing.T) {
	assert.True(t, ValidRequestID("3f2b-AB_09"))
	assert.False(t, ValidRequestID(""))
	assert.False(t, ValidRequestID("bad id"))
	assert.False(t, ValidRequestID("line\nbreak"))
	assert.False(t, ValidRequestID(strings.Repeat("a", maxRequestIDLength+1)))
}

func TestEnrichLogger(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&buf, nil))

	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	EnrichLogger(c, base, slog.String("user_id", "CUS01"))

	GetLoggerOrDefault(c.Request().Context(), nil).Info("hello")
	assert.Contains(t, buf.String(), `"user_id":"CUS01"`)
}

func TestGetLoggerOrDefault_Fallback(t *testing.T) {
	fallback := slog.Default()
	assert.Same(t, fallback, GetLoggerOrDefault(context.Background(), fallback))
}
