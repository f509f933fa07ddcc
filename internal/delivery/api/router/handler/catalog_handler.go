package handler

import (
	"log/slog"

	"planner/internal/delivery/api/response"
	"planner/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CatalogHandlerParams holds dependencies for CatalogHandler, injected by Fx.
type CatalogHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	Logger    *slog.Logger
}

// CatalogHandler serves events and packages.
type CatalogHandler struct {
	catalogUC usecase.CatalogUsecase
	logger    *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler.
func NewCatalogHandler(params CatalogHandlerParams) *CatalogHandler {
	return &CatalogHandler{
		catalogUC: params.CatalogUC,
		logger:    params.Logger,
	}
}

// CreateEventRequest defines a new event. E_ID is generated when empty.
type CreateEventRequest struct {
	EID         string `json:"E_ID"`
	Name        string `json:"E_name" validate:"required"`
	Description string `json:"E_description"`
	Status      string `json:"status"`
}

// UpdateEventRequest is a partial event update.
type UpdateEventRequest struct {
	Name        *string `json:"E_name" validate:"omitempty,min=1"`
	Description *string `json:"E_description"`
	Status      *string `json:"status" validate:"omitempty,min=1"`
}

// CreatePackageRequest defines a new package. Pg_ID is generated when empty.
type CreatePackageRequest struct {
	PgID    string  `json:"Pg_ID"`
	Price   float64 `json:"Pg_price" validate:"gte=0"`
	EventID string  `json:"event" validate:"required"`
}

// ListEvents returns every event.
func (h *CatalogHandler) ListEvents(c echo.Context) error {
	events, err := h.catalogUC.ListEvents(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, mapViews(events, newEventView))
}

// GetEvent returns one event by E_ID.
func (h *CatalogHandler) GetEvent(c echo.Context) error {
	event, err := h.catalogUC.GetEvent(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, newEventView(event))
}

// CreateEvent adds an event to the catalog.
func (h *CatalogHandler) CreateEvent(c echo.Context) error {
	var req CreateEventRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "event")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	event, err := h.catalogUC.CreateEvent(c.Request().Context(), &usecase.CreateEventInput{
		EID:         req.EID,
		Name:        req.Name,
		Description: req.Description,
		Status:      req.Status,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, newEventView(event))
}

// UpdateEvent applies a partial update to an event.
func (h *CatalogHandler) UpdateEvent(c echo.Context) error {
	var req UpdateEventRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "event")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	event, err := h.catalogUC.UpdateEvent(c.Request().Context(), c.Param("id"), &usecase.UpdateEventInput{
		Name:        req.Name,
		Description: req.Description,
		Status:      req.Status,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, newEventView(event))
}

// ListEventPackages returns the packages of one event.
func (h *CatalogHandler) ListEventPackages(c echo.Context) error {
	return h.listPackages(c, c.Param("id"))
}

// ListPackages returns all packages, or those of ?eventId=.
func (h *CatalogHandler) ListPackages(c echo.Context) error {
	return h.listPackages(c, c.QueryParam("eventId"))
}

func (h *CatalogHandler) listPackages(c echo.Context, eventID string) error {
	packages, err := h.catalogUC.ListPackages(c.Request().Context(), eventID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, mapViews(packages, newPackageView))
}

// GetPackage returns one package by Pg_ID.
func (h *CatalogHandler) GetPackage(c echo.Context) error {
	pkg, err := h.catalogUC.GetPackage(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, newPackageView(pkg))
}

// CreatePackage adds a package to an existing event.
func (h *CatalogHandler) CreatePackage(c echo.Context) error {
	var req CreatePackageRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "package")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	pkg, err := h.catalogUC.CreatePackage(c.Request().Context(), &usecase.CreatePackageInput{
		PgID:    req.PgID,
		Price:   req.Price,
		EventID: req.EventID,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, newPackageView(pkg))
}
