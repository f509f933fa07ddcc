package handler

import (
	"log/slog"

	"planner/internal/delivery/api/middleware"
	"planner/internal/delivery/api/response"
	"planner/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PurchaseHandlerParams holds dependencies for PurchaseHandler, injected by Fx.
type PurchaseHandlerParams struct {
	fx.In

	PurchaseUC usecase.PurchaseUsecase
	Logger     *slog.Logger
}

// PurchaseHandler serves the purchase history.
type PurchaseHandler struct {
	purchaseUC usecase.PurchaseUsecase
	logger     *slog.Logger
}

// NewPurchaseHandler is the constructor for PurchaseHandler.
func NewPurchaseHandler(params PurchaseHandlerParams) *PurchaseHandler {
	return &PurchaseHandler{
		purchaseUC: params.PurchaseUC,
		logger:     params.Logger,
	}
}

// ListPurchases returns the joined purchase records, optionally for ?customerId=.
func (h *PurchaseHandler) ListPurchases(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Authentication required")
	}

	records, err := h.purchaseUC.ListPurchases(c.Request().Context(), actor, c.QueryParam("customerId"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, records)
}
