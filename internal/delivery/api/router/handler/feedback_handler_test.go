package handler

import (
	"net/http"
	"testing"

	"planner/internal/domain/entity"
	domainerrors "planner/internal/domain/errors"
	mockUsecase "planner/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestFeedbackHandler_CreateFeedback_RatingOutOfRange(t *testing.T) {
	uc := mockUsecase.NewMockFeedbackUsecase(t)
	h := NewFeedbackHandler(FeedbackHandlerParams{FeedbackUC: uc, Logger: discardLogger()})

	c, rec := newContext(http.MethodPost, "/api/v1/feedback", `{"message":"great","rating":9}`, &customerActor)

	require.NoError(t, h.CreateFeedback(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestFeedbackHandler_DeleteFeedback(t *testing.T) {
	id := uuid.New()

	t.Run("bad id", func(t *testing.T) {
		uc := mockUsecase.NewMockFeedbackUsecase(t)
		h := NewFeedbackHandler(FeedbackHandlerParams{FeedbackUC: uc, Logger: discardLogger()})
		c, rec := newContext(http.MethodDelete, "/api/v1/feedback/x", "", &customerActor)
		c.SetParamNames("id")
		c.SetParamValues("x")

		require.NoError(t, h.DeleteFeedback(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("not the author", func(t *testing.T) {
		uc := mockUsecase.NewMockFeedbackUsecase(t)
		h := NewFeedbackHandler(FeedbackHandlerParams{FeedbackUC: uc, Logger: discardLogger()})
		c, rec := newContext(http.MethodDelete, "/api/v1/feedback/"+id.String(), "", &customerActor)
		c.SetParamNames("id")
		c.SetParamValues(id.String())

		uc.EXPECT().DeleteFeedback(mock.Anything, customerActor, id).Return(domainerrors.ErrForbidden)

		require.NoError(t, h.DeleteFeedback(c))
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestPurchaseHandler_ListPurchases(t *testing.T) {
	uc := mockUsecase.NewMockPurchaseUsecase(t)
	h := NewPurchaseHandler(PurchaseHandlerParams{PurchaseUC: uc, Logger: discardLogger()})

	c, rec := newContext(http.MethodGet, "/api/v1/purchases?customerId=CUS01", "", &adminActor)

	uc.EXPECT().ListPurchases(mock.Anything, adminActor, "CUS01").Return([]*entity.PurchaseRecord{{
		Customer: entity.PurchaseCustomer{ID: "CUS01", Name: "Alice Liddell"},
		Payment:  entity.PurchasePayment{ID: "PAY001", Amount: 10, Status: entity.PaymentStatusConfirmed},
	}}, nil)

	require.NoError(t, h.ListPurchases(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(decode(t, rec).Data), `"feedback":null`)
}
