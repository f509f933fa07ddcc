package repository

import (
	"context"
	"errors"

	"planner/internal/domain/entity"
)

// Domain-specific errors for catalog persistence.
var (
	// ErrEventNotFound is returned when an event does not exist.
	ErrEventNotFound = errors.New("event not found")
	// ErrPackageNotFound is returned when a package does not exist.
	ErrPackageNotFound = errors.New("package not found")
)

// EventRepository defines persistence for events.
type EventRepository interface {
	FindByEID(ctx context.Context, eid string) (*entity.Event, error)
	List(ctx context.Context) ([]*entity.Event, error)
	Create(ctx context.Context, event *entity.Event) error
	Update(ctx context.Context, event *entity.Event) error
}

// PackageRepository defines persistence for packages.
type PackageRepository interface {
	FindByPgID(ctx context.Context, pgID string) (*entity.Package, error)

	// ListByEvent returns packages of one event, or all packages when eventID is empty.
	ListByEvent(ctx context.Context, eventID string) ([]*entity.Package, error)

	Create(ctx context.Context, pkg *entity.Package) error
}
