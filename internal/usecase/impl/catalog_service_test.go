package impl

import (
	"context"
	"testing"

	"planner/internal/domain/entity"
	domainerrors "planner/internal/domain/errors"
	"planner/internal/domain/repository"
	mockRepo "planner/internal/mocks/repository"
	mockSvc "planner/internal/mocks/service"
	"planner/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type catalogServiceFixtures struct {
	service     usecase.CatalogUsecase
	eventRepo   *mockRepo.MockEventRepository
	packageRepo *mockRepo.MockPackageRepository
	ids         *mockSvc.MockIDGenerator
}

func createTestCatalogService(t *testing.T) catalogServiceFixtures {
	fx := catalogServiceFixtures{
		eventRepo:   mockRepo.NewMockEventRepository(t),
		packageRepo: mockRepo.NewMockPackageRepository(t),
		ids:         mockSvc.NewMockIDGenerator(t),
	}
	fx.service = NewCatalogService(CatalogServiceParams{
		EventRepo:   fx.eventRepo,
		PackageRepo: fx.packageRepo,
		IDGenerator: fx.ids,
		Config:      testConfig(true),
		Logger:      discardLogger(),
	})

	return fx
}

func TestCatalogService_CreateEvent_DefaultsStatus(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	fx.ids.EXPECT().Next(ctx, entity.IDKindEvent).Return("EV001", nil)
	fx.eventRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(e *entity.Event) bool { return e.EID == "EV001" && e.Status == "active" })).
		Return(nil)

	event, err := fx.service.CreateEvent(ctx, &usecase.CreateEventInput{Name: "Gala"})

	require.NoError(t, err)
	assert.Equal(t, entity.DefaultEventStatus, event.Status)
}

func TestCatalogService_CreateEvent_RequiresName(t *testing.T) {
	fx := createTestCatalogService(t)

	_, err := fx.service.CreateEvent(context.Background(), &usecase.CreateEventInput{Name: "  "})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestCatalogService_CreatePackage(t *testing.T) {
	ctx := context.Background()

	t.Run("event must exist", func(t *testing.T) {
		fx := createTestCatalogService(t)
		fx.eventRepo.EXPECT().FindByEID(ctx, "EV404").Return(nil, repository.ErrEventNotFound)

		_, err := fx.service.CreatePackage(ctx, &usecase.CreatePackageInput{Price: 99, EventID: "EV404"})

		require.ErrorIs(t, err, domainerrors.ErrEventNotFound)
		assert.Contains(t, err.Error(), "EV404")
	})

	t.Run("explicit id is kept", func(t *testing.T) {
		fx := createTestCatalogService(t)
		fx.eventRepo.EXPECT().FindByEID(ctx, "EV001").Return(&entity.Event{EID: "EV001"}, nil)
		fx.packageRepo.EXPECT().
			Create(ctx, mock.MatchedBy(func(p *entity.Package) bool { return p.PgID == "PKG010" })).
			Return(nil)

		pkg, err := fx.service.CreatePackage(ctx, &usecase.CreatePackageInput{PgID: "PKG010", Price: 99, EventID: "EV001"})

		require.NoError(t, err)
		assert.Equal(t, "EV001", pkg.EventID)
	})

	t.Run("explicit id conflict is not retried", func(t *testing.T) {
		fx := createTestCatalogService(t)
		fx.eventRepo.EXPECT().FindByEID(ctx, "EV001").Return(&entity.Event{EID: "EV001"}, nil)
		fx.packageRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Package")).
			Return(domainerrors.ErrConflict.WrapMessage("package id already exists")).Once()

		_, err := fx.service.CreatePackage(ctx, &usecase.CreatePackageInput{PgID: "PKG001", Price: 10, EventID: "EV001"})

		assert.ErrorIs(t, err, domainerrors.ErrConflict)
	})
}

func TestCatalogService_UpdateEvent(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	fx.eventRepo.EXPECT().FindByEID(ctx, "EV001").Return(&entity.Event{EID: "EV001", Name: "Gala", Status: "active"}, nil)
	fx.eventRepo.EXPECT().
		Update(ctx, mock.MatchedBy(func(e *entity.Event) bool { return e.Status == "closed" && e.Name == "Gala" })).
		Return(nil)

	event, err := fx.service.UpdateEvent(ctx, "EV001", &usecase.UpdateEventInput{Status: strPtr("closed")})

	require.NoError(t, err)
	assert.Equal(t, "closed", event.Status)
}
