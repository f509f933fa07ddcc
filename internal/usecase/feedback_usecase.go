package usecase

import (
	"context"

	"planner/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateFeedbackInput defines a customer's feedback.
type CreateFeedbackInput struct {
	Message string
	Rating  *int
	EventID string
}

// FeedbackUsecase manages customer feedback.
type FeedbackUsecase interface {
	CreateFeedback(ctx context.Context, actor entity.Actor, input *CreateFeedbackInput) (*entity.Feedback, error)
	ListFeedback(ctx context.Context, actor entity.Actor, customerID string) ([]*entity.Feedback, error)
	DeleteFeedback(ctx context.Context, actor entity.Actor, id uuid.UUID) error
}
