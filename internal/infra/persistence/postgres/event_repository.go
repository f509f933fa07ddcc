package postgres

import (
	"context"
	"time"

	"planner/internal/domain/entity"
	domainerrors "planner/internal/domain/errors"
	"planner/internal/domain/repository"
	"planner/internal/errors"
	"planner/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type eventRepository struct {
	db *gorm.DB
}

// NewEventRepository creates a GORM-backed event repository.
func NewEventRepository(db *gorm.DB) repository.EventRepository {
	return &eventRepository{db: db}
}

func (repo *eventRepository) FindByEID(ctx context.Context, eid string) (*entity.Event, error) {
	var eventM model.EventModel
	if err := repo.db.WithContext(ctx).Where("e_id = ?", eid).First(&eventM).Error; err != nil {
		return nil, errors.Translate(err, gorm.ErrRecordNotFound, repository.ErrEventNotFound, "failed to find event")
	}

	return toEventDomain(&eventM), nil
}

func (repo *eventRepository) List(ctx context.Context) ([]*entity.Event, error) {
	var eventMs []*model.EventModel
	if err := repo.db.WithContext(ctx).Order("LENGTH(e_id), e_id").Find(&eventMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list events")
	}

	events := make([]*entity.Event, 0, len(eventMs))
	for _, eventM := range eventMs {
		events = append(events, toEventDomain(eventM))
	}

	return events, nil
}

func (repo *eventRepository) Create(ctx context.Context, event *entity.Event) error {
	eventM := fromEventDomain(event)
	if eventM.ID == uuid.Nil {
		eventM.ID = uuid.New()
	}

	if err := repo.db.WithContext(ctx).Create(eventM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("event id already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create event")
	}

	event.ID = eventM.ID
	event.CreatedAt = eventM.CreatedAt
	event.UpdatedAt = eventM.UpdatedAt

	return nil
}

func (repo *eventRepository) Update(ctx context.Context, event *entity.Event) error {
	now := time.Now()
	result := repo.db.WithContext(ctx).
		Model(&model.EventModel{}).
		Where("e_id = ?", event.EID).
		Updates(map[string]any{
			"name":        event.Name,
			"description": event.Description,
			"status":      event.Status,
			"updated_at":  now,
		})
	if err := result.Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update event")
	}
	if result.RowsAffected == 0 {
		return repository.ErrEventNotFound
	}
	event.UpdatedAt = now

	return nil
}

func toEventDomain(data *model.EventModel) *entity.Event {
	if data == nil {
		return nil
	}

	return &entity.Event{
		ID:          data.ID,
		EID:         data.EID,
		Name:        data.Name,
		Description: data.Description,
		Status:      data.Status,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromEventDomain(data *entity.Event) *model.EventModel {
	if data == nil {
		return nil
	}

	return &model.EventModel{
		ID:          data.ID,
		EID:         data.EID,
		Name:        data.Name,
		Description: data.Description,
		Status:      data.Status,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
