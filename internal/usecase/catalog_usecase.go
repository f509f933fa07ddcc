package usecase

import (
	"context"

	"planner/internal/domain/entity"
)

// CreateEventInput defines a new event. An empty EID is generated.
type CreateEventInput struct {
	EID         string
	Name        string
	Description string
	Status      string
}

// UpdateEventInput carries a partial event update.
type UpdateEventInput struct {
	Name        *string
	Description *string
	Status      *string
}

// CreatePackageInput defines a new package of an existing event.
type CreatePackageInput struct {
	PgID    string
	Price   float64
	EventID string
}

// CatalogUsecase manages events and their packages.
type CatalogUsecase interface {
	CreateEvent(ctx context.Context, input *CreateEventInput) (*entity.Event, error)
	GetEvent(ctx context.Context, eventID string) (*entity.Event, error)
	ListEvents(ctx context.Context) ([]*entity.Event, error)
	UpdateEvent(ctx context.Context, eventID string, input *UpdateEventInput) (*entity.Event, error)

	CreatePackage(ctx context.Context, input *CreatePackageInput) (*entity.Package, error)
	GetPackage(ctx context.Context, packageID string) (*entity.Package, error)
	ListPackages(ctx context.Context, eventID string) ([]*entity.Package, error)
}
