package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "planner/internal/delivery/context"
	"planner/internal/domain/entity"
	domainerrors "planner/internal/domain/errors"
	"planner/internal/domain/repository"
	"planner/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type feedbackService struct {
	feedbackRepo repository.FeedbackRepository
	eventRepo    repository.EventRepository
	logger       *slog.Logger
}

// FeedbackServiceParams holds dependencies for FeedbackService, injected by Fx.
type FeedbackServiceParams struct {
	fx.In

	FeedbackRepo repository.FeedbackRepository
	EventRepo    repository.EventRepository
	Logger       *slog.Logger
}

// NewFeedbackService is the constructor for feedbackService.
func NewFeedbackService(params FeedbackServiceParams) usecase.FeedbackUsecase {
	return &feedbackService{
		feedbackRepo: params.FeedbackRepo,
		eventRepo:    params.EventRepo,
		logger:       params.Logger,
	}
}

func (srv *feedbackService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateFeedback stores feedback authored by the acting customer.
func (srv *feedbackService) CreateFeedback(ctx context.Context, actor entity.Actor, input *usecase.CreateFeedbackInput) (*entity.Feedback, error) {
	if actor.Role != entity.RoleCustomer || actor.UserID == "" {
		return nil, domainerrors.ErrForbidden.WithDetails("only customers leave feedback")
	}

	var invalid []string
	if strings.TrimSpace(input.Message) == "" {
		invalid = append(invalid, "message")
	}
	if input.Rating != nil && (*input.Rating < entity.MinRating || *input.Rating > entity.MaxRating) {
		invalid = append(invalid, "rating")
	}
	if len(invalid) > 0 {
		return nil, domainerrors.ErrValidationFailed.WithFields(invalid...)
	}

	if input.EventID != "" {
		if _, err := srv.eventRepo.FindByEID(ctx, input.EventID); err != nil {
			if errors.Is(err, repository.ErrEventNotFound) {
				return nil, domainerrors.ErrEventNotFound.WithDetails(input.EventID)
			}

			return nil, errors.Wrap(err, "failed to find event")
		}
	}

	feedback := &entity.Feedback{
		CustomerID: actor.UserID,
		EventID:    input.EventID,
		Message:    input.Message,
		Rating:     input.Rating,
	}
	if err := srv.feedbackRepo.Create(ctx, feedback); err != nil {
		return nil, errors.Wrap(err, "failed to create feedback")
	}

	srv.log(ctx).Info("Feedback created", slog.String("customerId", actor.UserID), slog.String("feedbackId", feedback.ID.String()))

	return feedback, nil
}

// ListFeedback lists feedback. Customers only see their own.
func (srv *feedbackService) ListFeedback(ctx context.Context, actor entity.Actor, customerID string) ([]*entity.Feedback, error) {
	if !actor.IsAdmin() {
		if actor.UserID == "" || (customerID != "" && customerID != actor.UserID) {
			return nil, domainerrors.ErrForbidden
		}
		customerID = actor.UserID
	}

	feedback, err := srv.feedbackRepo.ListByCustomerID(ctx, customerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list feedback")
	}

	return feedback, nil
}

// DeleteFeedback removes feedback on behalf of its author or an admin.
func (srv *feedbackService) DeleteFeedback(ctx context.Context, actor entity.Actor, id uuid.UUID) error {
	feedback, err := srv.feedbackRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrFeedbackNotFound) {
		return domainerrors.ErrFeedbackNotFound.WithDetails(id.String())
	}
	if err != nil {
		return errors.Wrap(err, "failed to find feedback")
	}

	if !actor.IsAdmin() && !actor.Owns(feedback.CustomerID) {
		return domainerrors.ErrForbidden
	}

	if err := srv.feedbackRepo.DeleteByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrFeedbackNotFound) {
			return domainerrors.ErrFeedbackNotFound.WithDetails(id.String())
		}

		return errors.Wrap(err, "failed to delete feedback")
	}

	return nil
}
