package handler

import (
	"log/slog"

	"planner/internal/delivery/api/response"
	"planner/internal/domain/entity"
	"planner/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	IdentityUC usecase.IdentityUsecase
	Logger     *slog.Logger
}

// AuthHandler serves the public registration and login endpoints.
type AuthHandler struct {
	identityUC usecase.IdentityUsecase
	logger     *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler.
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		identityUC: params.IdentityUC,
		logger:     params.Logger,
	}
}

// RegisterRequest is the self-registration body. It always creates a customer.
type RegisterRequest struct {
	UserName  string `json:"userName" validate:"required"`
	Password  string `json:"password" validate:"required,min=6"`
	PhoneNo   string `json:"phoneNo"`
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
}

// LoginRequest accepts a user name or a user id as credential.
type LoginRequest struct {
	Credential string `json:"credential" validate:"required"`
	Password   string `json:"password" validate:"required"`
}

// LoginResponse carries the bearer token and the resolved identity.
type LoginResponse struct {
	Token string           `json:"token"`
	User  *entity.Identity `json:"user"`
}

// Register creates a customer account.
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "registration")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	user, err := h.identityUC.CreateUser(c.Request().Context(), &usecase.CreateUserInput{
		Role:      entity.RoleCustomer,
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

// Login verifies the credential and issues a token.
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "login")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	out, err := h.identityUC.Login(c.Request().Context(), &usecase.LoginInput{
		Credential: req.Credential,
		Password:   req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, LoginResponse{Token: out.Token, User: out.Identity})
}
