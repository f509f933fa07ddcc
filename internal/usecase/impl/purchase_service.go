package impl

import (
	"context"
	"log/slog"

	"planner/config"
	deliverycontext "planner/internal/delivery/context"
	"planner/internal/domain/entity"
	domainerrors "planner/internal/domain/errors"
	"planner/internal/domain/repository"
	"planner/internal/domain/service"
	"planner/internal/errors"
	"planner/internal/usecase"

	"go.uber.org/fx"
)

// Reasons a payment is left out of the purchase listing.
const (
	skipEventMissing    = "event_missing"
	skipPackageMissing  = "package_missing"
	skipCustomerMissing = "customer_missing"
	skipError           = "error"
)

type purchaseService struct {
	paymentRepo     repository.PaymentRepository
	eventRepo       repository.EventRepository
	packageRepo     repository.PackageRepository
	userRepo        repository.UserRepository
	legacyCustomers repository.LegacyCustomerRepository
	feedbackRepo    repository.FeedbackRepository
	metrics         service.MetricsRecorder
	fallbackEnabled bool
	logger          *slog.Logger
}

// PurchaseServiceParams holds dependencies for PurchaseService, injected by Fx.
type PurchaseServiceParams struct {
	fx.In

	PaymentRepo     repository.PaymentRepository
	EventRepo       repository.EventRepository
	PackageRepo     repository.PackageRepository
	UserRepo        repository.UserRepository
	LegacyCustomers repository.LegacyCustomerRepository
	FeedbackRepo    repository.FeedbackRepository
	Metrics         service.MetricsRecorder
	Config          *config.Config
	Logger          *slog.Logger
}

// NewPurchaseService is the constructor for purchaseService.
func NewPurchaseService(params PurchaseServiceParams) usecase.PurchaseUsecase {
	return &purchaseService{
		paymentRepo:     params.PaymentRepo,
		eventRepo:       params.EventRepo,
		packageRepo:     params.PackageRepo,
		userRepo:        params.UserRepo,
		legacyCustomers: params.LegacyCustomers,
		feedbackRepo:    params.FeedbackRepo,
		metrics:         params.Metrics,
		fallbackEnabled: legacyFallbackEnabled(params.Config),
		logger:          params.Logger,
	}
}

func (srv *purchaseService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// purchaseLookup memoizes the reads of one listing. A nil entry records a miss.
type purchaseLookup struct {
	events    map[string]*entity.Event
	packages  map[string]*entity.Package
	customers map[string]*entity.Identity
	feedback  map[string]*entity.Feedback
}

func newPurchaseLookup() *purchaseLookup {
	return &purchaseLookup{
		events:    map[string]*entity.Event{},
		packages:  map[string]*entity.Package{},
		customers: map[string]*entity.Identity{},
		feedback:  map[string]*entity.Feedback{},
	}
}

// ListPurchases builds the purchase listing in payment date order, newest first.
func (srv *purchaseService) ListPurchases(ctx context.Context, actor entity.Actor, customerID string) ([]*entity.PurchaseRecord, error) {
	if !actor.IsAdmin() {
		if actor.UserID == "" || (customerID != "" && customerID != actor.UserID) {
			return nil, domainerrors.ErrForbidden
		}
		customerID = actor.UserID
	}

	payments, err := srv.paymentRepo.List(ctx, repository.PaymentFilter{CustomerID: customerID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list payments")
	}

	lookup := newPurchaseLookup()
	records := make([]*entity.PurchaseRecord, 0, len(payments))
	for _, payment := range payments {
		record, reason, err := srv.assemble(ctx, lookup, payment)
		if err != nil {
			srv.log(ctx).Error("Failed to assemble purchase", slog.String("paymentId", payment.PID), slog.Any("error", err))
			srv.metrics.PurchaseSkipped(skipError)

			continue
		}
		if record == nil {
			srv.log(ctx).Debug("Purchase skipped", slog.String("paymentId", payment.PID), slog.String("reason", reason))
			srv.metrics.PurchaseSkipped(reason)

			continue
		}
		records = append(records, record)
	}

	return records, nil
}

// assemble returns a nil record and a reason when a reference does not resolve.
func (srv *purchaseService) assemble(ctx context.Context, lookup *purchaseLookup, payment *entity.Payment) (*entity.PurchaseRecord, string, error) {
	event, err := srv.event(ctx, lookup, payment.EventID)
	if err != nil {
		return nil, "", err
	}
	if event == nil {
		return nil, skipEventMissing, nil
	}

	pkg, err := srv.pkg(ctx, lookup, payment.PackageID)
	if err != nil {
		return nil, "", err
	}
	if pkg == nil {
		return nil, skipPackageMissing, nil
	}

	customer, err := srv.customer(ctx, lookup, payment.CustomerID)
	if err != nil {
		return nil, "", err
	}
	if customer == nil {
		return nil, skipCustomerMissing, nil
	}

	feedback, err := srv.firstFeedback(ctx, lookup, payment.CustomerID)
	if err != nil {
		return nil, "", err
	}

	record := &entity.PurchaseRecord{
		Customer: entity.PurchaseCustomer{ID: customer.UserID, Name: customer.DisplayName()},
		Event:    entity.PurchaseEvent{ID: event.EID, Name: event.Name},
		Payment: entity.PurchasePayment{
			ID:     payment.PID,
			Amount: payment.Amount,
			Date:   payment.Date,
			Status: payment.Status,
		},
		Package: entity.PurchasePackage{ID: pkg.PgID, Price: pkg.Price},
	}
	if feedback != nil {
		record.Feedback = &entity.PurchaseFeedback{Rating: feedback.Rating, Comment: feedback.Message}
	}

	return record, "", nil
}

func (srv *purchaseService) event(ctx context.Context, lookup *purchaseLookup, eventID string) (*entity.Event, error) {
	if event, ok := lookup.events[eventID]; ok {
		return event, nil
	}

	event, err := srv.eventRepo.FindByEID(ctx, eventID)
	if err := errors.Optional(err, repository.ErrEventNotFound, "failed to find event"); err != nil {
		return nil, err
	}
	lookup.events[eventID] = event

	return event, nil
}

func (srv *purchaseService) pkg(ctx context.Context, lookup *purchaseLookup, packageID string) (*entity.Package, error) {
	if pkg, ok := lookup.packages[packageID]; ok {
		return pkg, nil
	}

	pkg, err := srv.packageRepo.FindByPgID(ctx, packageID)
	if err := errors.Optional(err, repository.ErrPackageNotFound, "failed to find package"); err != nil {
		return nil, err
	}
	lookup.packages[packageID] = pkg

	return pkg, nil
}

// customer resolves the unified user first, then the legacy customer.
func (srv *purchaseService) customer(ctx context.Context, lookup *purchaseLookup, customerID string) (*entity.Identity, error) {
	if identity, ok := lookup.customers[customerID]; ok {
		return identity, nil
	}

	var identity *entity.Identity
	user, err := srv.userRepo.FindByUserID(ctx, customerID)
	switch {
	case err == nil:
		identity = entity.IdentityFromUser(user)
	case !errors.Is(err, repository.ErrUserNotFound):
		return nil, errors.Wrap(err, "failed to find customer")
	case srv.fallbackEnabled:
		legacy, err := srv.legacyCustomers.FindByCID(ctx, customerID)
		if err := errors.Optional(err, repository.ErrLegacyRecordNotFound, "failed to find legacy customer"); err != nil {
			return nil, err
		}
		if legacy != nil {
			identity = entity.IdentityFromLegacyCustomer(legacy)
		}
	}
	lookup.customers[customerID] = identity

	return identity, nil
}

// firstFeedback attaches the customer's oldest feedback to each of their purchases.
func (srv *purchaseService) firstFeedback(ctx context.Context, lookup *purchaseLookup, customerID string) (*entity.Feedback, error) {
	if feedback, ok := lookup.feedback[customerID]; ok {
		return feedback, nil
	}

	feedback, err := srv.feedbackRepo.FindFirstByCustomerID(ctx, customerID)
	if err := errors.Optional(err, repository.ErrFeedbackNotFound, "failed to find feedback"); err != nil {
		return nil, err
	}
	lookup.feedback[customerID] = feedback

	return feedback, nil
}
