package impl

import (
	"context"
	"testing"
	"time"

	"planner/internal/domain/entity"
	domainerrors "planner/internal/domain/errors"
	"planner/internal/domain/repository"
	mockRepo "planner/internal/mocks/repository"
	mockSvc "planner/internal/mocks/service"
	"planner/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type purchaseServiceFixtures struct {
	service         usecase.PurchaseUsecase
	paymentRepo     *mockRepo.MockPaymentRepository
	eventRepo       *mockRepo.MockEventRepository
	packageRepo     *mockRepo.MockPackageRepository
	userRepo        *mockRepo.MockUserRepository
	legacyCustomers *mockRepo.MockLegacyCustomerRepository
	feedbackRepo    *mockRepo.MockFeedbackRepository
	metrics         *mockSvc.MockMetricsRecorder
}

func createTestPurchaseService(t *testing.T, fallback bool) purchaseServiceFixtures {
	fx := purchaseServiceFixtures{
		paymentRepo:     mockRepo.NewMockPaymentRepository(t),
		eventRepo:       mockRepo.NewMockEventRepository(t),
		packageRepo:     mockRepo.NewMockPackageRepository(t),
		userRepo:        mockRepo.NewMockUserRepository(t),
		legacyCustomers: mockRepo.NewMockLegacyCustomerRepository(t),
		feedbackRepo:    mockRepo.NewMockFeedbackRepository(t),
		metrics:         mockSvc.NewMockMetricsRecorder(t),
	}

	fx.service = NewPurchaseService(PurchaseServiceParams{
		PaymentRepo:     fx.paymentRepo,
		EventRepo:       fx.eventRepo,
		PackageRepo:     fx.packageRepo,
		UserRepo:        fx.userRepo,
		LegacyCustomers: fx.legacyCustomers,
		FeedbackRepo:    fx.feedbackRepo,
		Metrics:         fx.metrics,
		Config:          testConfig(fallback),
		Logger:          discardLogger(),
	})

	return fx
}

func purchasePayment(pid, customerID, eventID, packageID string, day int) *entity.Payment {
	return &entity.Payment{
		PID:        pid,
		Amount:     100,
		Date:       time.Date(2024, 5, day, 0, 0, 0, 0, time.UTC),
		CustomerID: customerID,
		EventID:    eventID,
		PackageID:  packageID,
		Status:     entity.PaymentStatusConfirmed,
		Kind:       entity.PaymentKindPortal,
		Portal:     &entity.PortalDetails{Reference: "R", BankSlipURL: "u"},
	}
}

func TestPurchaseService_ListPurchases_SkipPolicy(t *testing.T) {
	fx := createTestPurchaseService(t, true)
	ctx := context.Background()
	rating := 4

	fx.paymentRepo.EXPECT().List(ctx, repository.PaymentFilter{}).Return([]*entity.Payment{
		purchasePayment("PAY005", "CUS01", "EV001", "PKG001", 5),
		purchasePayment("PAY004", "CUS05", "EV001", "PKG001", 4),
		purchasePayment("PAY003", "CUS01", "EV404", "PKG001", 3),
		purchasePayment("PAY002", "CUS01", "EV001", "PKG404", 2),
		purchasePayment("PAY001", "CUS99", "EV001", "PKG001", 1),
	}, nil)

	fx.eventRepo.EXPECT().FindByEID(ctx, "EV001").Return(&entity.Event{EID: "EV001", Name: "Gala"}, nil).Once()
	fx.eventRepo.EXPECT().FindByEID(ctx, "EV404").Return(nil, repository.ErrEventNotFound).Once()
	fx.packageRepo.EXPECT().FindByPgID(ctx, "PKG001").Return(&entity.Package{PgID: "PKG001", Price: 100}, nil).Once()
	fx.packageRepo.EXPECT().FindByPgID(ctx, "PKG404").Return(nil, repository.ErrPackageNotFound).Once()

	fx.userRepo.EXPECT().FindByUserID(ctx, "CUS01").
		Return(&entity.User{UserID: "CUS01", Role: entity.RoleCustomer, FirstName: "Alice", LastName: "Liddell"}, nil).Once()
	fx.userRepo.EXPECT().FindByUserID(ctx, "CUS05").Return(nil, repository.ErrUserNotFound).Once()
	fx.legacyCustomers.EXPECT().FindByCID(ctx, "CUS05").Return(&entity.LegacyCustomer{CID: "CUS05", Name: "Bob Marley"}, nil).Once()
	fx.userRepo.EXPECT().FindByUserID(ctx, "CUS99").Return(nil, repository.ErrUserNotFound).Once()
	fx.legacyCustomers.EXPECT().FindByCID(ctx, "CUS99").Return(nil, repository.ErrLegacyRecordNotFound).Once()

	fx.feedbackRepo.EXPECT().FindFirstByCustomerID(ctx, "CUS01").
		Return(&entity.Feedback{CustomerID: "CUS01", Message: "lovely", Rating: &rating}, nil).Once()
	fx.feedbackRepo.EXPECT().FindFirstByCustomerID(ctx, "CUS05").Return(nil, repository.ErrFeedbackNotFound).Once()

	fx.metrics.EXPECT().PurchaseSkipped(skipEventMissing).Once()
	fx.metrics.EXPECT().PurchaseSkipped(skipPackageMissing).Once()
	fx.metrics.EXPECT().PurchaseSkipped(skipCustomerMissing).Once()

	records, err := fx.service.ListPurchases(ctx, adminActor, "")

	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "PAY005", records[0].Payment.ID)
	assert.Equal(t, "Alice Liddell", records[0].Customer.Name)
	require.NotNil(t, records[0].Feedback)
	assert.Equal(t, "lovely", records[0].Feedback.Comment)

	assert.Equal(t, "PAY004", records[1].Payment.ID)
	assert.Equal(t, "Bob Marley", records[1].Customer.Name)
	assert.Nil(t, records[1].Feedback)
}

func TestPurchaseService_ListPurchases_NoFallbackSkipsLegacyCustomers(t *testing.T) {
	fx := createTestPurchaseService(t, false)
	ctx := context.Background()

	fx.paymentRepo.EXPECT().List(ctx, repository.PaymentFilter{}).Return([]*entity.Payment{
		purchasePayment("PAY001", "CUS05", "EV001", "PKG001", 1),
	}, nil)
	fx.eventRepo.EXPECT().FindByEID(ctx, "EV001").Return(&entity.Event{EID: "EV001"}, nil)
	fx.packageRepo.EXPECT().FindByPgID(ctx, "PKG001").Return(&entity.Package{PgID: "PKG001"}, nil)
	fx.userRepo.EXPECT().FindByUserID(ctx, "CUS05").Return(nil, repository.ErrUserNotFound)
	fx.metrics.EXPECT().PurchaseSkipped(skipCustomerMissing)

	records, err := fx.service.ListPurchases(ctx, adminActor, "")

	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestPurchaseService_ListPurchases_RecordErrorDoesNotAbort(t *testing.T) {
	fx := createTestPurchaseService(t, true)
	ctx := context.Background()

	fx.paymentRepo.EXPECT().List(ctx, repository.PaymentFilter{CustomerID: "CUS01"}).Return([]*entity.Payment{
		purchasePayment("PAY002", "CUS01", "EV002", "PKG001", 2),
		purchasePayment("PAY001", "CUS01", "EV001", "PKG001", 1),
	}, nil)
	fx.eventRepo.EXPECT().FindByEID(ctx, "EV002").Return(nil, errors.New("decode failure"))
	fx.eventRepo.EXPECT().FindByEID(ctx, "EV001").Return(&entity.Event{EID: "EV001"}, nil)
	fx.packageRepo.EXPECT().FindByPgID(ctx, "PKG001").Return(&entity.Package{PgID: "PKG001"}, nil)
	fx.userRepo.EXPECT().FindByUserID(ctx, "CUS01").Return(&entity.User{UserID: "CUS01", Role: entity.RoleCustomer}, nil)
	fx.feedbackRepo.EXPECT().FindFirstByCustomerID(ctx, "CUS01").Return(nil, repository.ErrFeedbackNotFound)
	fx.metrics.EXPECT().PurchaseSkipped(skipError)

	records, err := fx.service.ListPurchases(ctx, customerActor, "")

	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "PAY001", records[0].Payment.ID)
	assert.Equal(t, entity.UnknownName, records[0].Customer.Name)
}

func TestPurchaseService_ListPurchases_CustomerScope(t *testing.T) {
	fx := createTestPurchaseService(t, true)

	_, err := fx.service.ListPurchases(context.Background(), customerActor, "CUS02")

	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}
