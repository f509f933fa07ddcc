package repository

import (
	"context"
	"errors"

	"planner/internal/domain/entity"
)

// ErrPaymentNotFound is returned when a payment does not exist.
var ErrPaymentNotFound = errors.New("payment not found")

// PaymentFilter narrows a payment listing. Zero values mean "any".
type PaymentFilter struct {
	CustomerID string
}

// PaymentRepository defines persistence for Card and Portal payments,
// which share one table and are told apart by a discriminator column.
type PaymentRepository interface {
	FindByPID(ctx context.Context, pid string) (*entity.Payment, error)

	// List returns payments in descending payment date order.
	List(ctx context.Context, filter PaymentFilter) ([]*entity.Payment, error)

	Create(ctx context.Context, payment *entity.Payment) error

	// Update saves the amount, variant description and bank slip URL.
	// The discriminator is never written.
	Update(ctx context.Context, payment *entity.Payment) error

	// TransitionStatus moves a payment from one status to another in a single
	// conditional write. It reports whether a row was changed.
	TransitionStatus(ctx context.Context, pid string, from, to entity.PaymentStatus) (bool, error)

	DeleteByPID(ctx context.Context, pid string) error
}
