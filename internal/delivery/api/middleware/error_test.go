package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "planner/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type errorBody struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details any    `json:"details"`
	} `json:"error"`
}

func handle(t *testing.T, err error) (int, errorBody) {
	t.Helper()

	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	m.HandleHTTPError(err, c)

	var body errorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return rec.Code, body
}

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	t.Run("wrapped domain error keeps code and details", func(t *testing.T) {
		code, body := handle(t, errors.Wrap(domainerrors.ErrEventNotFound.WithDetails("EV404"), "create payment"))

		assert.Equal(t, http.StatusNotFound, code)
		assert.Equal(t, "EVENT_NOT_FOUND", body.Error.Code)
		assert.Equal(t, "EV404", body.Error.Details)
	})

	t.Run("validation failure lists fields", func(t *testing.T) {
		code, body := handle(t, domainerrors.ErrValidationFailed.WithFields("p_amount", "reference"))

		assert.Equal(t, http.StatusBadRequest, code)
		assert.Equal(t, map[string]any{"fields": []any{"p_amount", "reference"}}, body.Error.Details)
	})

	t.Run("server errors hide details", func(t *testing.T) {
		code, body := handle(t, domainerrors.ErrTransactionAborted.WithDetails("connection reset"))

		assert.Equal(t, http.StatusInternalServerError, code)
		assert.Nil(t, body.Error.Details)
	})

	t.Run("echo not found", func(t *testing.T) {
		code, body := handle(t, echo.ErrNotFound)

		assert.Equal(t, http.StatusNotFound, code)
		assert.Equal(t, "ROUTE_NOT_FOUND", body.Error.Code)
		assert.Equal(t, "Not Found", body.Error.Message)
	})

	t.Run("body limit", func(t *testing.T) {
		code, body := handle(t, echo.ErrStatusRequestEntityTooLarge)

		assert.Equal(t, http.StatusRequestEntityTooLarge, code)
		assert.Equal(t, "PAYLOAD_TOO_LARGE", body.Error.Code)
	})

	t.Run("other echo error", func(t *testing.T) {
		code, body := handle(t, echo.NewHTTPError(http.StatusTeapot, "short and stout"))

		assert.Equal(t, http.StatusTeapot, code)
		assert.Equal(t, "HTTP_ERROR", body.Error.Code)
		assert.Equal(t, "short and stout", body.Error.Message)
	})

	t.Run("unknown error", func(t *testing.T) {
		code, body := handle(t, errors.New("boom"))

		assert.Equal(t, http.StatusInternalServerError, code)
		assert.Equal(t, "INTERNAL_ERROR", body.Error.Code)
	})
}
