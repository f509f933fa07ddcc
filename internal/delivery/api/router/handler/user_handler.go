package handler

import (
	"log/slog"

	"planner/internal/delivery/api/middleware"
	"planner/internal/delivery/api/response"
	"planner/internal/domain/entity"
	"planner/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	IdentityUC usecase.IdentityUsecase
	Logger     *slog.Logger
}

// UserHandler serves account management endpoints.
type UserHandler struct {
	identityUC usecase.IdentityUsecase
	logger     *slog.Logger
}

// NewUserHandler is the constructor for UserHandler.
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		identityUC: params.IdentityUC,
		logger:     params.Logger,
	}
}

// CreateUserRequest is the admin-side account creation body.
type CreateUserRequest struct {
	UserID    string      `json:"userId"`
	UserName  string      `json:"userName" validate:"required"`
	Password  string      `json:"password" validate:"required,min=6"`
	PhoneNo   string      `json:"phoneNo"`
	Role      entity.Role `json:"role" validate:"required,oneof=customer admin"`
	FirstName string      `json:"firstName"`
	LastName  string      `json:"lastName"`
}

// UpdateUserRequest is a partial profile update.
type UpdateUserRequest struct {
	UserName  *string `json:"userName" validate:"omitempty,min=1"`
	Password  *string `json:"password" validate:"omitempty,min=6"`
	PhoneNo   *string `json:"phoneNo"`
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Name      *string `json:"name"`
}

// DeleteUserResponse reports a completed delete.
type DeleteUserResponse struct {
	UserID          string      `json:"userId"`
	Role            entity.Role `json:"role"`
	DeletedFeedback int64       `json:"deletedFeedback"`
}

// Me returns the caller's identity.
func (h *UserHandler) Me(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Authentication required")
	}

	identity, err := h.identityUC.GetUser(c.Request().Context(), actor.UserID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, identity)
}

// ListUsers lists accounts, optionally filtered by ?role=.
func (h *UserHandler) ListUsers(c echo.Context) error {
	role := entity.Role(c.QueryParam("role"))
	if role != "" && !role.IsValid() {
		return response.BadRequest(c, "INVALID_ROLE", "role must be customer or admin")
	}

	users, err := h.identityUC.ListUsers(c.Request().Context(), role)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, users)
}

// GetUser returns one account. Customers may only read their own.
func (h *UserHandler) GetUser(c echo.Context) error {
	userID := c.Param("id")
	if !selfOrAdmin(c, userID) {
		return response.Forbidden(c, "FORBIDDEN", "Permission denied")
	}

	identity, err := h.identityUC.GetUser(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, identity)
}

// CreateUser creates a customer or admin account.
func (h *UserHandler) CreateUser(c echo.Context) error {
	var req CreateUserRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "user")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	user, err := h.identityUC.CreateUser(c.Request().Context(), &usecase.CreateUserInput{
		Role:      req.Role,
		UserID:    req.UserID,
		UserName:  req.UserName,
		Password:  req.Password,
		PhoneNo:   req.PhoneNo,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, newUserView(user))
}

// UpdateUser applies a partial update. Customers may only update their own account.
func (h *UserHandler) UpdateUser(c echo.Context) error {
	userID := c.Param("id")
	if !selfOrAdmin(c, userID) {
		return response.Forbidden(c, "FORBIDDEN", "Permission denied")
	}

	var req UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "user")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	user, err := h.identityUC.UpdateUser(c.Request().Context(), userID, &usecase.UpdateUserInput{
		UserName:  req.UserName,
		Password:  req.Password,
		PhoneNo:   req.PhoneNo,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Name:      req.Name,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, newUserView(user))
}

// DeleteUser removes an account and, for customers, their feedback.
func (h *UserHandler) DeleteUser(c echo.Context) error {
	out, err := h.identityUC.DeleteUser(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, DeleteUserResponse{
		UserID:          out.UserID,
		Role:            out.Role,
		DeletedFeedback: out.DeletedFeedback,
	})
}

func selfOrAdmin(c echo.Context, userID string) bool {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return false
	}

	return actor.IsAdmin() || actor.UserID == userID
}
