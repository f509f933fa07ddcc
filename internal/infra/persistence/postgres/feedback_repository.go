package postgres

import (
	"context"

	"planner/internal/domain/entity"
	domainerrors "planner/internal/domain/errors"
	"planner/internal/domain/repository"
	"planner/internal/errors"
	"planner/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type feedbackRepository struct {
	db *gorm.DB
}

// NewFeedbackRepository creates a GORM-backed feedback repository.
func NewFeedbackRepository(db *gorm.DB) repository.FeedbackRepository {
	return &feedbackRepository{db: db}
}

func (repo *feedbackRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Feedback, error) {
	var feedbackM model.FeedbackModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&feedbackM).Error; err != nil {
		return nil, errors.Translate(err, gorm.ErrRecordNotFound, repository.ErrFeedbackNotFound, "failed to find feedback")
	}

	return toFeedbackDomain(&feedbackM), nil
}

// FindFirstByCustomerID returns the customer's oldest feedback.
func (repo *feedbackRepository) FindFirstByCustomerID(ctx context.Context, customerID string) (*entity.Feedback, error) {
	var feedbackM model.FeedbackModel
	err := repo.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("created_at, id").
		First(&feedbackM).Error
	if err != nil {
		return nil, errors.Translate(err, gorm.ErrRecordNotFound, repository.ErrFeedbackNotFound, "failed to find feedback by customer")
	}

	return toFeedbackDomain(&feedbackM), nil
}

func (repo *feedbackRepository) ListByCustomerID(ctx context.Context, customerID string) ([]*entity.Feedback, error) {
	tx := repo.db.WithContext(ctx).Order("created_at DESC, id")
	if customerID != "" {
		tx = tx.Where("customer_id = ?", customerID)
	}

	var feedbackMs []*model.FeedbackModel
	if err := tx.Find(&feedbackMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list feedback")
	}

	feedback := make([]*entity.Feedback, 0, len(feedbackMs))
	for _, feedbackM := range feedbackMs {
		feedback = append(feedback, toFeedbackDomain(feedbackM))
	}

	return feedback, nil
}

func (repo *feedbackRepository) Create(ctx context.Context, feedback *entity.Feedback) error {
	feedbackM := fromFeedbackDomain(feedback)
	if feedbackM.ID == uuid.Nil {
		feedbackM.ID = uuid.New()
	}

	if err := repo.db.WithContext(ctx).Create(feedbackM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create feedback")
	}

	feedback.ID = feedbackM.ID
	feedback.CreatedAt = feedbackM.CreatedAt
	feedback.UpdatedAt = feedbackM.UpdatedAt

	return nil
}

func (repo *feedbackRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.FeedbackModel{})
	if err := result.Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete feedback")
	}
	if result.RowsAffected == 0 {
		return repository.ErrFeedbackNotFound
	}

	return nil
}

func (repo *feedbackRepository) DeleteByCustomerID(ctx context.Context, customerID string) (int64, error) {
	result := repo.db.WithContext(ctx).Where("customer_id = ?", customerID).Delete(&model.FeedbackModel{})
	if err := result.Error; err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to delete customer feedback")
	}

	return result.RowsAffected, nil
}

func toFeedbackDomain(data *model.FeedbackModel) *entity.Feedback {
	if data == nil {
		return nil
	}

	return &entity.Feedback{
		ID:         data.ID,
		CustomerID: data.CustomerID,
		EventID:    data.EventID,
		Message:    data.Message,
		Rating:     data.Rating,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

func fromFeedbackDomain(data *entity.Feedback) *model.FeedbackModel {
	if data == nil {
		return nil
	}

	return &model.FeedbackModel{
		ID:         data.ID,
		CustomerID: data.CustomerID,
		EventID:    data.EventID,
		Message:    data.Message,
		Rating:     data.Rating,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}
