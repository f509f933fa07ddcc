package repository

import (
	"context"
	"errors"

	"planner/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrFeedbackNotFound is returned when a feedback record does not exist.
var ErrFeedbackNotFound = errors.New("feedback not found")

// FeedbackRepository defines persistence for customer feedback.
type FeedbackRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Feedback, error)

	// FindFirstByCustomerID returns the oldest feedback row of the customer.
	FindFirstByCustomerID(ctx context.Context, customerID string) (*entity.Feedback, error)

	// ListByCustomerID returns the customer's feedback, or all feedback when customerID is empty.
	ListByCustomerID(ctx context.Context, customerID string) ([]*entity.Feedback, error)

	Create(ctx context.Context, feedback *entity.Feedback) error
	DeleteByID(ctx context.Context, id uuid.UUID) error

	// DeleteByCustomerID removes every feedback row of the customer and returns the count.
	DeleteByCustomerID(ctx context.Context, customerID string) (int64, error)
}
