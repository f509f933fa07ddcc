package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "planner/internal/delivery/context"
	domainerrors "planner/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext() (echo.Context, *httptest.ResponseRecorder) {
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	deliverycontext.SetRequestID(c, "req-7")

	return c, rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func TestCreated(t *testing.T) {
	c, rec := newContext()
	require.NoError(t, Created(c, map[string]string{"P_ID": "PAY001"}))

	assert.Equal(t, http.StatusCreated, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, map[string]any{"P_ID": "PAY001"}, body["data"])
	assert.Equal(t, map[string]any{"request_id": "req-7"}, body["meta"])
}

func TestBindingError(t *testing.T) {
	c, rec := newContext()
	require.NoError(t, BindingError(c, "payment"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, map[string]any{"code": "INVALID_INPUT", "message": "Invalid payment input"}, body["error"])
}

func TestHandleAppError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody map[string]any
	}{
		{
			name:     "validation lists fields",
			err:      errors.Wrap(domainerrors.ErrValidationFailed.WithFields("p_amount", "cardNumber"), "create payment"),
			wantCode: http.StatusBadRequest,
			wantBody: map[string]any{
				"code":    "VALIDATION_FAILED",
				"message": "input validation failed",
				"details": map[string]any{"fields": []any{"p_amount", "cardNumber"}},
			},
		},
		{
			name:     "state conflict keeps text details",
			err:      domainerrors.ErrInvalidStateTransition.WithDetails("payment is refunded"),
			wantCode: http.StatusConflict,
			wantBody: map[string]any{
				"code":    "INVALID_STATE_TRANSITION",
				"message": "payment status does not allow this operation",
				"details": "payment is refunded",
			},
		},
		{
			name:     "forbidden hides details",
			err:      domainerrors.ErrForbidden.WithDetails("not the owner"),
			wantCode: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newContext()
			require.NoError(t, HandleAppError(c, tt.err))

			assert.Equal(t, tt.wantCode, rec.Code)
			body := decode(t, rec)
			if tt.wantBody != nil {
				assert.Equal(t, tt.wantBody, body["error"])
			} else {
				assert.NotContains(t, body["error"], "details")
			}
		})
	}
}

func TestHandleAppError_PassesThroughUnknownErrors(t *testing.T) {
	c, rec := newContext()
	boom := errors.New("disk full")

	err := HandleAppError(c, boom)
	assert.ErrorIs(t, err, boom)
	assert.Zero(t, rec.Body.Len())
}
