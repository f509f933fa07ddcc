// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"planner/internal/domain/entity"
)

// --- Input DTOs ---

// CreateUserInput defines the data required to create an account.
// An empty UserID is generated from the role's key family.
type CreateUserInput struct {
	Role      entity.Role
	UserID    string
	UserName  string
	Password  string
	PhoneNo   string
	FirstName string
	LastName  string
}

// UpdateUserInput carries a partial profile update. Nil fields are left unchanged.
// Name is the single-field name sent by older clients; it is split into first
// and last name when neither of those is given.
type UpdateUserInput struct {
	UserName  *string
	Password  *string
	PhoneNo   *string
	FirstName *string
	LastName  *string
	Name      *string
}

// LoginInput defines the data required to log in. Credential is a user name or user id.
type LoginInput struct {
	Credential string
	Password   string
}

// --- Output DTOs ---

// LoginOutput returns the signed token and the resolved identity.
type LoginOutput struct {
	Token    string
	Identity *entity.Identity
}

// DeleteUserOutput reports what a delete removed.
type DeleteUserOutput struct {
	UserID          string
	Role            entity.Role
	DeletedFeedback int64
}

// IdentityUsecase defines account operations over the unified and legacy stores.
type IdentityUsecase interface {
	// FindUserByCredential resolves a user name or id, unified store first,
	// then legacy customers, then legacy admins.
	FindUserByCredential(ctx context.Context, credential string) (*entity.Identity, error)
	GetUser(ctx context.Context, userID string) (*entity.Identity, error)
	ListUsers(ctx context.Context, role entity.Role) ([]*entity.Identity, error)
	CreateUser(ctx context.Context, input *CreateUserInput) (*entity.User, error)
	UpdateUser(ctx context.Context, userID string, input *UpdateUserInput) (*entity.User, error)

	// DeleteUser removes a customer together with their feedback in one
	// transaction. Admin accounts are removed without cascade.
	DeleteUser(ctx context.Context, userID string) (*DeleteUserOutput, error)

	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
}
