package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"planner/config"
	deliverycontext "planner/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newEcho(buf *bytes.Buffer) *echo.Echo {
	logger := slog.New(slog.NewJSONHandler(buf, nil))
	cfg := &config.Config{}
	cfg.Env.Debug = true

	e := echo.New()
	e.Use(NewRequestIDMiddleware(logger).Process)
	e.Use(NewLoggerMiddleware(logger, cfg).Handle)
	e.GET("/api/v1/events/:id", func(c echo.Context) error {
		deliverycontext.GetLoggerOrDefault(c.Request().Context(), nil).Info("in handler")
		return c.NoContent(http.StatusOK)
	})

	return e
}

func TestRequestID_ReusesWellFormedHeader(t *testing.T) {
	var buf bytes.Buffer
	e := newEcho(&buf)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/events/EV001", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "client-42")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, "client-42", rec.Header().Get(deliverycontext.HeaderXRequestID))
	assert.Contains(t, buf.String(), `"msg":"in handler","request_id":"client-42"`)
	assert.Contains(t, buf.String(), `"route":"/api/v1/events/:id"`)
}

func TestRequestID_ReplacesMalformedHeader(t *testing.T) {
	var buf bytes.Buffer
	e := newEcho(&buf)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/events/EV001", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "bad id\n")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	got := rec.Header().Get(deliverycontext.HeaderXRequestID)
	assert.NotEqual(t, "bad id\n", got)
	assert.True(t, deliverycontext.ValidRequestID(got))
}
