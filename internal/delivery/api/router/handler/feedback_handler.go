package handler

import (
	"log/slog"
	"net/http"

	"planner/internal/delivery/api/middleware"
	"planner/internal/delivery/api/response"
	"planner/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// FeedbackHandlerParams holds dependencies for FeedbackHandler, injected by Fx.
type FeedbackHandlerParams struct {
	fx.In

	FeedbackUC usecase.FeedbackUsecase
	Logger     *slog.Logger
}

// FeedbackHandler serves customer feedback.
type FeedbackHandler struct {
	feedbackUC usecase.FeedbackUsecase
	logger     *slog.Logger
}

// NewFeedbackHandler is the constructor for FeedbackHandler.
func NewFeedbackHandler(params FeedbackHandlerParams) *FeedbackHandler {
	return &FeedbackHandler{
		feedbackUC: params.FeedbackUC,
		logger:     params.Logger,
	}
}

// CreateFeedbackRequest is the feedback body. rating is optional.
type CreateFeedbackRequest struct {
	Message string `json:"message" validate:"required"`
	Rating  *int   `json:"rating" validate:"omitempty,min=0,max=5"`
	EventID string `json:"eventId"`
}

// CreateFeedback records feedback from the calling customer.
func (h *FeedbackHandler) CreateFeedback(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Authentication required")
	}

	var req CreateFeedbackRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "feedback")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	feedback, err := h.feedbackUC.CreateFeedback(c.Request().Context(), actor, &usecase.CreateFeedbackInput{
		Message: req.Message,
		Rating:  req.Rating,
		EventID: req.EventID,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, newFeedbackView(feedback))
}

// ListFeedback returns feedback, optionally for ?customerId=.
func (h *FeedbackHandler) ListFeedback(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Authentication required")
	}

	items, err := h.feedbackUC.ListFeedback(c.Request().Context(), actor, c.QueryParam("customerId"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, mapViews(items, newFeedbackView))
}

// DeleteFeedback removes one feedback entry.
func (h *FeedbackHandler) DeleteFeedback(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Authentication required")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid feedback ID format")
	}

	if err := h.feedbackUC.DeleteFeedback(c.Request().Context(), actor, id); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
