package handler

import (
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"planner/internal/delivery/api/middleware"
	"planner/internal/delivery/api/response"
	domainerrors "planner/internal/domain/errors"
	"planner/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// bankSlipField is the multipart field carrying the bank slip image.
const bankSlipField = "bankSlip"

// PaymentHandlerParams holds dependencies for PaymentHandler, injected by Fx.
type PaymentHandlerParams struct {
	fx.In

	PaymentUC usecase.PaymentUsecase
	Logger    *slog.Logger
}

// PaymentHandler serves Card and Portal payments.
type PaymentHandler struct {
	paymentUC usecase.PaymentUsecase
	logger    *slog.Logger
}

// NewPaymentHandler is the constructor for PaymentHandler.
func NewPaymentHandler(params PaymentHandlerParams) *PaymentHandler {
	return &PaymentHandler{
		paymentUC: params.PaymentUC,
		logger:    params.Logger,
	}
}

// PaymentBaseRequest holds the fields shared by both payment kinds.
// customerId may be omitted by customers, who always pay for themselves.
type PaymentBaseRequest struct {
	CustomerID string  `json:"customerId" form:"customerId"`
	EventID    string  `json:"eventId" form:"eventId" validate:"required"`
	PackageID  string  `json:"packageId" form:"packageId" validate:"required"`
	Amount     float64 `json:"p_amount" form:"p_amount" validate:"gt=0"`
	Date       string  `json:"p_date" form:"p_date"`
}

// CreateCardPaymentRequest is the card payment body.
type CreateCardPaymentRequest struct {
	PaymentBaseRequest
	CardType       string `json:"c_type" validate:"required"`
	Description    string `json:"c_description"`
	CardNumber     string `json:"cardNumber" validate:"required"`
	CardholderName string `json:"cardholderName" validate:"required"`
	ExpiryDate     string `json:"expiryDate" validate:"required"`
}

// CreatePortalPaymentRequest is the bank transfer body. It is sent as
// multipart/form-data with a bankSlip file, or as JSON with bankSlipUrl.
type CreatePortalPaymentRequest struct {
	PaymentBaseRequest
	Description string `json:"p_description" form:"p_description"`
	Reference   string `json:"reference" form:"reference" validate:"required"`
	BankSlipURL string `json:"bankSlipUrl" form:"bankSlipUrl"`
}

// UpdatePaymentRequest carries the mutable fields. description applies to
// the payment's own kind.
type UpdatePaymentRequest struct {
	Amount      *float64 `json:"p_amount" form:"p_amount" validate:"omitempty,gt=0"`
	Description *string  `json:"description" form:"description"`
}

// CreateCardPayment records a card payment.
func (h *PaymentHandler) CreateCardPayment(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Authentication required")
	}

	var req CreateCardPaymentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "payment")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	base, err := req.toInput()
	if err != nil {
		return response.HandleAppError(c, err)
	}

	payment, err := h.paymentUC.CreateCardPayment(c.Request().Context(), actor, &usecase.CreateCardPaymentInput{
		PaymentBaseInput: base,
		CardType:         req.CardType,
		Description:      req.Description,
		CardNumber:       req.CardNumber,
		CardholderName:   req.CardholderName,
		ExpiryDate:       req.ExpiryDate,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, newPaymentView(payment))
}

// CreatePortalPayment records a bank transfer, storing an uploaded slip when present.
func (h *PaymentHandler) CreatePortalPayment(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Authentication required")
	}

	var req CreatePortalPaymentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "payment")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	base, err := req.toInput()
	if err != nil {
		return response.HandleAppError(c, err)
	}

	slip, err := readUpload(c, bankSlipField)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	payment, err := h.paymentUC.CreatePortalPayment(c.Request().Context(), actor, &usecase.CreatePortalPaymentInput{
		PaymentBaseInput: base,
		Description:      req.Description,
		Reference:        req.Reference,
		BankSlipURL:      req.BankSlipURL,
		BankSlip:         slip,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, newPaymentView(payment))
}

// ListPayments returns payments newest first, optionally for ?customerId=.
func (h *PaymentHandler) ListPayments(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Authentication required")
	}

	payments, err := h.paymentUC.ListPayments(c.Request().Context(), actor, c.QueryParam("customerId"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, mapViews(payments, newPaymentView))
}

// GetPayment returns one payment by P_ID.
func (h *PaymentHandler) GetPayment(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Authentication required")
	}

	payment, err := h.paymentUC.GetPayment(c.Request().Context(), actor, c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, newPaymentView(payment))
}

// UpdatePayment changes the amount, description or bank slip of a payment.
func (h *PaymentHandler) UpdatePayment(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Authentication required")
	}

	var req UpdatePaymentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "payment")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	slip, err := readUpload(c, bankSlipField)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	payment, err := h.paymentUC.UpdatePayment(c.Request().Context(), actor, c.Param("id"), &usecase.UpdatePaymentInput{
		Amount:      req.Amount,
		Description: req.Description,
		BankSlip:    slip,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, newPaymentView(payment))
}

// RefundPayment moves a confirmed payment to refunded.
func (h *PaymentHandler) RefundPayment(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Authentication required")
	}

	payment, err := h.paymentUC.RefundPayment(c.Request().Context(), actor, c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, newPaymentView(payment))
}

// CancelPayment lets the paying customer cancel a confirmed payment.
func (h *PaymentHandler) CancelPayment(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Authentication required")
	}

	payment, err := h.paymentUC.CancelPayment(c.Request().Context(), c.Param("id"), actor.UserID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, newPaymentView(payment))
}

// DeletePayment hard-deletes a payment.
func (h *PaymentHandler) DeletePayment(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Authentication required")
	}

	if err := h.paymentUC.DeletePayment(c.Request().Context(), actor, c.Param("id")); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (r *PaymentBaseRequest) toInput() (usecase.PaymentBaseInput, error) {
	in := usecase.PaymentBaseInput{
		CustomerID: r.CustomerID,
		EventID:    r.EventID,
		PackageID:  r.PackageID,
		Amount:     r.Amount,
	}
	if r.Date == "" {
		return in, nil
	}

	date, err := parseDate(r.Date)
	if err != nil {
		return in, domainerrors.ErrValidationFailed.WithFields("p_date")
	}
	in.Date = &date

	return in, nil
}

// parseDate accepts RFC 3339 timestamps and plain dates.
func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}

	t, err := time.Parse(time.DateOnly, value)

	return t, errors.WithStack(err)
}

// readUpload returns the named multipart file, or nil when the request
// carries none.
func readUpload(c echo.Context, field string) (*usecase.Upload, error) {
	if !strings.HasPrefix(c.Request().Header.Get(echo.HeaderContentType), echo.MIMEMultipartForm) {
		return nil, nil
	}

	fh, err := c.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithFields(field)
	}

	file, err := fh.Open()
	if err != nil {
		return nil, errors.Wrap(err, "open uploaded file")
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, errors.Wrap(err, "read uploaded file")
	}

	return &usecase.Upload{
		Data:        data,
		ContentType: fh.Header.Get(echo.HeaderContentType),
	}, nil
}
