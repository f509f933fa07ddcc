package usecase

import (
	"context"
	"time"

	"planner/internal/domain/entity"
)

// Upload is an uploaded file held in memory.
type Upload struct {
	Data        []byte
	ContentType string
}

// PaymentBaseInput holds the fields shared by both payment kinds.
type PaymentBaseInput struct {
	CustomerID string
	EventID    string
	PackageID  string
	Amount     float64
	Date       *time.Time
}

// CreateCardPaymentInput defines a card payment.
type CreateCardPaymentInput struct {
	PaymentBaseInput
	CardType       string
	Description    string
	CardNumber     string
	CardholderName string
	ExpiryDate     string
}

// CreatePortalPaymentInput defines a bank transfer payment. The slip is
// either uploaded with the request or given as an existing URL.
type CreatePortalPaymentInput struct {
	PaymentBaseInput
	Description string
	Reference   string
	BankSlipURL string
	BankSlip    *Upload
}

// UpdatePaymentInput carries the mutable fields. Description maps to the
// variant's own description field. BankSlip applies to Portal payments only.
type UpdatePaymentInput struct {
	Amount      *float64
	Description *string
	BankSlip    *Upload
}

// PaymentUsecase defines operations on Card and Portal payments.
type PaymentUsecase interface {
	CreateCardPayment(ctx context.Context, actor entity.Actor, input *CreateCardPaymentInput) (*entity.Payment, error)
	CreatePortalPayment(ctx context.Context, actor entity.Actor, input *CreatePortalPaymentInput) (*entity.Payment, error)
	GetPayment(ctx context.Context, actor entity.Actor, paymentID string) (*entity.Payment, error)

	// ListPayments returns payments newest first. Customers only see their own.
	ListPayments(ctx context.Context, actor entity.Actor, customerID string) ([]*entity.Payment, error)

	UpdatePayment(ctx context.Context, actor entity.Actor, paymentID string, input *UpdatePaymentInput) (*entity.Payment, error)
	RefundPayment(ctx context.Context, actor entity.Actor, paymentID string) (*entity.Payment, error)
	CancelPayment(ctx context.Context, paymentID, requestingCustomerID string) (*entity.Payment, error)
	DeletePayment(ctx context.Context, actor entity.Actor, paymentID string) error
}
