// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"planner/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines persistence for the unified users table.
type UserRepository interface {
	// FindByUserID retrieves a user by business key.
	FindByUserID(ctx context.Context, userID string) (*entity.User, error)

	// FindByCredential retrieves the user whose userId or userName equals value.
	FindByCredential(ctx context.Context, value string) (*entity.User, error)

	// FindByUserIDOrUserName retrieves a user matching either field.
	FindByUserIDOrUserName(ctx context.Context, userID, userName string) (*entity.User, error)

	// List returns users ordered by userId. An empty role lists every user.
	List(ctx context.Context, role entity.Role) ([]*entity.User, error)

	// Create persists a new user. Key collisions return ErrUserAlreadyExists.
	Create(ctx context.Context, user *entity.User) error

	// Update saves every mutable field of an existing user.
	Update(ctx context.Context, user *entity.User) error

	// DeleteByUserID hard-deletes the user row.
	DeleteByUserID(ctx context.Context, userID string) error
}
