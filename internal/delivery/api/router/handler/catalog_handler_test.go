package handler

import (
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

func TestCatalogHandler_CreateEvent(t *testing.T) {
	uc := mockUsecase.NewMockCatalogUsecase(t)
	h := NewCatalogHandler(CatalogHandlerParams{CatalogUC: uc, Logger: discardLogger()})

	c, rec := newContext(http.MethodPost, "/api/v1/events", `{"E_name":"Gala"}`, &adminActor)

	uc.EXPECT().CreateEvent(mock.Anything, &usecase.CreateEventInput{Name: "Gala"}).
		Return(&entity.Event{EID: "EV001", Name: "Gala", Status: entity.DefaultEventStatus}, nil)

	require.NoError(t, h.CreateEvent(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, string(decode(t, rec).Data), `"E_ID":"EV001"`)
}

func TestCatalogHandler_CreatePackage_MissingEvent(t *testing.T) {
	uc := mockUsecase.NewMockCatalogUsecase(t)
	h := NewCatalogHandler(CatalogHandlerParams{CatalogUC: uc, Logger: discardLogger()})

	c, rec := newContext(http.MethodPost, "/api/v1/packages", `{"Pg_price":50,"event":"EV404"}`, &adminActor)

	uc.EXPECT().CreatePackage(mock.Anything, &usecase.CreatePackageInput{Price: 50, EventID: "EV404"}).
		Return(nil, domainerrors.ErrEventNotFound.WithDetails("EV404"))

	require.NoError(t, h.CreatePackage(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "EV404", decode(t, rec).Error.Details)
}

func TestCatalogHandler_ListEventPackages(t *testing.T) {
	uc := mockUsecase.NewMockCatalogUsecase(t)
	h := NewCatalogHandler(CatalogHandlerParams{CatalogUC: uc, Logger: discardLogger()})

	c, rec := newContext(http.MethodGet, "/api/v1/events/EV001/packages", "", &customerActor)
	c.SetParamNames("id")
	c.SetParamValues("EV001")

	uc.EXPECT().ListPackages(mock.Anything, "EV001").
		Return([]*entity.Package{{PgID: "PKG001", Price: 10, EventID: "EV001"}}, nil)

	require.NoError(t, h.ListEventPackages(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t,
		`[{"Pg_ID":"PKG001","Pg_price":10,"event":"EV001","createdAt":"0001-01-01T00:00:00Z","updatedAt":"0001-01-01T00:00:00Z"}]`,
		string(decode(t, rec).Data))
}
