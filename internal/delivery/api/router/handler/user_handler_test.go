package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"planner/internal/domain/entity"
	domainerrors "planner/internal/domain/errors"
	mockUsecase "planner/internal/mocks/usecase"
	"planner/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAuthHandler_Register(t *testing.T) {
	uc := mockUsecase.NewMockIdentityUsecase(t)
	h := NewAuthHandler(AuthHandlerParams{IdentityUC: uc, Logger: discardLogger()})

	body := `{"userName":"alice","password":"secret1","firstName":"Alice","lastName":"Liddell","role":"admin"}`
	c, rec := newContext(http.MethodPost, "/auth/register", body, nil)

	uc.EXPECT().
		CreateUser(mock.Anything, mock.MatchedBy(func(in *usecase.CreateUserInput) bool {
			return in.Role == entity.RoleCustomer && in.UserName == "alice" && in.UserID == ""
		})).
		Return(&entity.User{UserID: "CUS01", UserName: "alice", Password: "$2a$hash", Role: entity.RoleCustomer}, nil)

	require.NoError(t, h.Register(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.NotContains(t, rec.Body.String(), "$2a$hash")
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		uc := mockUsecase.NewMockIdentityUsecase(t)
		h := NewAuthHandler(AuthHandlerParams{IdentityUC: uc, Logger: discardLogger()})
		c, rec := newContext(http.MethodPost, "/auth/login", `{"credential":"CUS01","password":"pw"}`, nil)

		uc.EXPECT().Login(mock.Anything, &usecase.LoginInput{Credential: "CUS01", Password: "pw"}).
			Return(&usecase.LoginOutput{
				Token:    "jwt",
				Identity: &entity.Identity{UserID: "CUS01", Role: entity.RoleCustomer, Source: entity.IdentitySourceLegacyCustomer},
			}, nil)

		require.NoError(t, h.Login(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var out LoginResponse
		require.NoError(t, json.Unmarshal(decode(t, rec).Data, &out))
		assert.Equal(t, "jwt", out.Token)
		assert.Equal(t, entity.IdentitySourceLegacyCustomer, out.User.Source)
	})

	t.Run("wrong password", func(t *testing.T) {
		uc := mockUsecase.NewMockIdentityUsecase(t)
		h := NewAuthHandler(AuthHandlerParams{IdentityUC: uc, Logger: discardLogger()})
		c, rec := newContext(http.MethodPost, "/auth/login", `{"credential":"alice","password":"nope"}`, nil)

		uc.EXPECT().Login(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrInvalidCredentials)

		require.NoError(t, h.Login(c))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestUserHandler_GetUser_OtherCustomerForbidden(t *testing.T) {
	uc := mockUsecase.NewMockIdentityUsecase(t)
	h := NewUserHandler(UserHandlerParams{IdentityUC: uc, Logger: discardLogger()})

	c, rec := newContext(http.MethodGet, "/api/v1/users/CUS02", "", &customerActor)
	c.SetParamNames("id")
	c.SetParamValues("CUS02")

	require.NoError(t, h.GetUser(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestUserHandler_UpdateUser_Self(t *testing.T) {
	uc := mockUsecase.NewMockIdentityUsecase(t)
	h := NewUserHandler(UserHandlerParams{IdentityUC: uc, Logger: discardLogger()})

	c, rec := newContext(http.MethodPut, "/api/v1/users/CUS01", `{"name":"Alice Liddell"}`, &customerActor)
	c.SetParamNames("id")
	c.SetParamValues("CUS01")

	uc.EXPECT().
		UpdateUser(mock.Anything, "CUS01", mock.MatchedBy(func(in *usecase.UpdateUserInput) bool {
			return in.Name != nil && *in.Name == "Alice Liddell" && in.Password == nil
		})).
		Return(&entity.User{UserID: "CUS01", FirstName: "Alice", LastName: "Liddell", Role: entity.RoleCustomer}, nil)

	require.NoError(t, h.UpdateUser(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUserHandler_DeleteUser(t *testing.T) {
	t.Run("reports cascaded feedback", func(t *testing.T) {
		uc := mockUsecase.NewMockIdentityUsecase(t)
		h := NewUserHandler(UserHandlerParams{IdentityUC: uc, Logger: discardLogger()})
		c, rec := newContext(http.MethodDelete, "/api/v1/users/CUS01", "", &adminActor)
		c.SetParamNames("id")
		c.SetParamValues("CUS01")

		uc.EXPECT().DeleteUser(mock.Anything, "CUS01").
			Return(&usecase.DeleteUserOutput{UserID: "CUS01", Role: entity.RoleCustomer, DeletedFeedback: 3}, nil)

		require.NoError(t, h.DeleteUser(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"userId":"CUS01","role":"customer","deletedFeedback":3}`, string(decode(t, rec).Data))
	})

	t.Run("rolled back", func(t *testing.T) {
		uc := mockUsecase.NewMockIdentityUsecase(t)
		h := NewUserHandler(UserHandlerParams{IdentityUC: uc, Logger: discardLogger()})
		c, rec := newContext(http.MethodDelete, "/api/v1/users/CUS01", "", &adminActor)
		c.SetParamNames("id")
		c.SetParamValues("CUS01")

		uc.EXPECT().DeleteUser(mock.Anything, "CUS01").Return(nil, domainerrors.ErrTransactionAborted)

		require.NoError(t, h.DeleteUser(c))
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestUserHandler_ListUsers_InvalidRole(t *testing.T) {
	uc := mockUsecase.NewMockIdentityUsecase(t)
	h := NewUserHandler(UserHandlerParams{IdentityUC: uc, Logger: discardLogger()})

	c, rec := newContext(http.MethodGet, "/api/v1/users?role=owner", "", &adminActor)

	require.NoError(t, h.ListUsers(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
