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
	"planner/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// paymentService implements the PaymentUsecase interface.
type paymentService struct {
	paymentRepo repository.PaymentRepository
	eventRepo   repository.EventRepository
	packageRepo repository.PackageRepository
	blobStore   service.BlobStore
	keys        keyIssuer
	logger      *slog.Logger
}

// PaymentServiceParams holds dependencies for PaymentService, injected by Fx.
type PaymentServiceParams struct {
	fx.In

	PaymentRepo repository.PaymentRepository
	EventRepo   repository.EventRepository
	PackageRepo repository.PackageRepository
	BlobStore   service.BlobStore
	IDGenerator service.IDGenerator
	Config      *config.Config
	Logger      *slog.Logger
}

// NewPaymentService is the constructor for paymentService.
func NewPaymentService(params PaymentServiceParams) usecase.PaymentUsecase {
	return &paymentService{
		paymentRepo: params.PaymentRepo,
		eventRepo:   params.EventRepo,
		packageRepo: params.PackageRepo,
		blobStore:   params.BlobStore,
		keys:        newKeyIssuer(params.IDGenerator, params.Config),
		logger:      params.Logger,
	}
}

func (srv *paymentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateCardPayment records a card payment. The card number is masked before it reaches storage.
func (srv *paymentService) CreateCardPayment(ctx context.Context, actor entity.Actor, input *usecase.CreateCardPaymentInput) (*entity.Payment, error) {
	customerID, err := payingCustomer(actor, input.CustomerID)
	if err != nil {
		return nil, err
	}

	payment := entity.NewCardPayment(customerID, input.EventID, input.PackageID, input.Amount, entity.CardDetails{
		Type:           input.CardType,
		Description:    input.Description,
		CardNumber:     input.CardNumber,
		CardholderName: input.CardholderName,
		ExpiryDate:     input.ExpiryDate,
	})
	if input.Date != nil {
		payment.Date = *input.Date
	}

	if missing := payment.Validate(); len(missing) > 0 {
		return nil, domainerrors.ErrValidationFailed.WithFields(missing...)
	}

	return srv.persist(ctx, payment)
}

// CreatePortalPayment records a bank transfer. An uploaded slip is stored first
// and its URL kept on the payment.
func (srv *paymentService) CreatePortalPayment(ctx context.Context, actor entity.Actor, input *usecase.CreatePortalPaymentInput) (*entity.Payment, error) {
	customerID, err := payingCustomer(actor, input.CustomerID)
	if err != nil {
		return nil, err
	}

	payment := entity.NewPortalPayment(customerID, input.EventID, input.PackageID, input.Amount, entity.PortalDetails{
		Description: input.Description,
		Reference:   input.Reference,
		BankSlipURL: input.BankSlipURL,
	})
	if input.Date != nil {
		payment.Date = *input.Date
	}

	missing := payment.Validate()
	if input.BankSlip != nil {
		missing = without(missing, "bankSlipUrl")
	}
	if len(missing) > 0 {
		return nil, domainerrors.ErrValidationFailed.WithFields(missing...)
	}

	if err := srv.checkReferences(ctx, payment); err != nil {
		return nil, err
	}

	if input.BankSlip != nil {
		url, err := srv.blobStore.StoreImage(ctx, input.BankSlip.Data, input.BankSlip.ContentType)
		if err != nil {
			return nil, errors.Wrap(err, "failed to store bank slip")
		}
		payment.Portal.BankSlipURL = url
	}

	return srv.insert(ctx, payment)
}

// payingCustomer decides whose payment is being recorded. Customers always pay for themselves.
func payingCustomer(actor entity.Actor, requested string) (string, error) {
	if actor.IsAdmin() {
		return requested, nil
	}
	if actor.Role != entity.RoleCustomer || actor.UserID == "" {
		return "", domainerrors.ErrForbidden
	}
	if requested != "" && requested != actor.UserID {
		return "", domainerrors.ErrForbidden.WithDetails("customers may only pay for themselves")
	}

	return actor.UserID, nil
}

func (srv *paymentService) persist(ctx context.Context, payment *entity.Payment) (*entity.Payment, error) {
	if err := srv.checkReferences(ctx, payment); err != nil {
		return nil, err
	}

	return srv.insert(ctx, payment)
}

// checkReferences verifies the event and the package exist.
func (srv *paymentService) checkReferences(ctx context.Context, payment *entity.Payment) error {
	if _, err := srv.eventRepo.FindByEID(ctx, payment.EventID); err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return domainerrors.ErrEventNotFound.WithDetails(payment.EventID)
		}

		return errors.Wrap(err, "failed to find event")
	}

	if _, err := srv.packageRepo.FindByPgID(ctx, payment.PackageID); err != nil {
		if errors.Is(err, repository.ErrPackageNotFound) {
			return domainerrors.ErrPackageNotFound.WithDetails(payment.PackageID)
		}

		return errors.Wrap(err, "failed to find package")
	}

	return nil
}

func (srv *paymentService) insert(ctx context.Context, payment *entity.Payment) (*entity.Payment, error) {
	pid, err := srv.keys.create(ctx, entity.IDKindPayment, "", domainerrors.ErrConflict, func(key string) error {
		payment.PID = key

		return srv.paymentRepo.Create(ctx, payment)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create payment")
	}

	srv.log(ctx).Info("Payment recorded",
		slog.String("paymentId", pid),
		slog.String("kind", string(payment.Kind)),
		slog.String("customerId", payment.CustomerID),
	)

	return payment, nil
}

// GetPayment returns a payment visible to the actor.
func (srv *paymentService) GetPayment(ctx context.Context, actor entity.Actor, paymentID string) (*entity.Payment, error) {
	payment, err := srv.find(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	if !actor.IsAdmin() && !actor.Owns(payment.CustomerID) {
		return nil, domainerrors.ErrForbidden
	}

	return payment, nil
}

// ListPayments lists payments newest first.
func (srv *paymentService) ListPayments(ctx context.Context, actor entity.Actor, customerID string) ([]*entity.Payment, error) {
	filter := repository.PaymentFilter{CustomerID: customerID}
	if !actor.IsAdmin() {
		if actor.UserID == "" || (customerID != "" && customerID != actor.UserID) {
			return nil, domainerrors.ErrForbidden
		}
		filter.CustomerID = actor.UserID
	}

	payments, err := srv.paymentRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list payments")
	}

	return payments, nil
}

// UpdatePayment changes the fields the stored kind allows. The kind itself never changes.
func (srv *paymentService) UpdatePayment(ctx context.Context, actor entity.Actor, paymentID string, input *usecase.UpdatePaymentInput) (*entity.Payment, error) {
	payment, err := srv.find(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	if !actor.IsAdmin() && !actor.Owns(payment.CustomerID) {
		return nil, domainerrors.ErrForbidden
	}

	if input.Amount != nil {
		if *input.Amount <= 0 {
			return nil, domainerrors.ErrValidationFailed.WithFields("p_amount")
		}
		payment.Amount = *input.Amount
	}

	switch payment.Kind {
	case entity.PaymentKindCard:
		if input.BankSlip != nil {
			return nil, domainerrors.ErrValidationFailed.WithFields("bankSlip")
		}
		if input.Description != nil {
			payment.Card.Description = *input.Description
		}
	case entity.PaymentKindPortal:
		if input.Description != nil {
			payment.Portal.Description = *input.Description
		}
		if input.BankSlip != nil {
			url, err := srv.blobStore.StoreImage(ctx, input.BankSlip.Data, input.BankSlip.ContentType)
			if err != nil {
				return nil, errors.Wrap(err, "failed to store bank slip")
			}
			payment.Portal.BankSlipURL = url
		}
	default:
		return nil, errors.Errorf("payment %s has unknown kind %q", paymentID, payment.Kind)
	}

	if err := srv.paymentRepo.Update(ctx, payment); err != nil {
		if errors.Is(err, repository.ErrPaymentNotFound) {
			return nil, domainerrors.ErrPaymentNotFound.WithDetails(paymentID)
		}

		return nil, errors.Wrap(err, "failed to update payment")
	}

	return payment, nil
}

// RefundPayment moves a confirmed payment to refunded. Customers may refund their own payments only.
func (srv *paymentService) RefundPayment(ctx context.Context, actor entity.Actor, paymentID string) (*entity.Payment, error) {
	payment, err := srv.find(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	if !actor.IsAdmin() && !actor.Owns(payment.CustomerID) {
		return nil, domainerrors.ErrForbidden
	}

	return srv.transition(ctx, payment, entity.PaymentStatusRefunded)
}

// CancelPayment moves a confirmed payment to cancelled on behalf of its owner.
func (srv *paymentService) CancelPayment(ctx context.Context, paymentID, requestingCustomerID string) (*entity.Payment, error) {
	payment, err := srv.find(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	if requestingCustomerID == "" || payment.CustomerID != requestingCustomerID {
		return nil, domainerrors.ErrForbidden.WithDetails("payment belongs to another customer")
	}

	return srv.transition(ctx, payment, entity.PaymentStatusCancelled)
}

// transition applies a status change with a conditional write on the current status.
func (srv *paymentService) transition(ctx context.Context, payment *entity.Payment, to entity.PaymentStatus) (*entity.Payment, error) {
	if !payment.Status.CanTransitionTo(to) {
		return nil, invalidTransition(payment.Status, to)
	}

	applied, err := srv.paymentRepo.TransitionStatus(ctx, payment.PID, entity.PaymentStatusConfirmed, to)
	if err != nil {
		return nil, errors.Wrap(err, "failed to update payment status")
	}
	if !applied {
		// Changed or removed since it was read.
		current, err := srv.find(ctx, payment.PID)
		if err != nil {
			return nil, err
		}

		return nil, invalidTransition(current.Status, to)
	}

	srv.log(ctx).Info("Payment status changed",
		slog.String("paymentId", payment.PID),
		slog.String("from", string(payment.Status)),
		slog.String("to", string(to)),
	)
	payment.Status = to

	return payment, nil
}

func invalidTransition(from, to entity.PaymentStatus) error {
	return domainerrors.ErrInvalidStateTransition.WithDetails(string(from) + " -> " + string(to))
}

// DeletePayment hard-deletes a payment. Admins only.
func (srv *paymentService) DeletePayment(ctx context.Context, actor entity.Actor, paymentID string) error {
	if !actor.IsAdmin() {
		return domainerrors.ErrForbidden
	}

	if err := srv.paymentRepo.DeleteByPID(ctx, paymentID); err != nil {
		if errors.Is(err, repository.ErrPaymentNotFound) {
			return domainerrors.ErrPaymentNotFound.WithDetails(paymentID)
		}

		return errors.Wrap(err, "failed to delete payment")
	}

	srv.log(ctx).Info("Payment deleted", slog.String("paymentId", paymentID), slog.String("by", actor.UserID))

	return nil
}

func (srv *paymentService) find(ctx context.Context, paymentID string) (*entity.Payment, error) {
	payment, err := srv.paymentRepo.FindByPID(ctx, paymentID)
	if errors.Is(err, repository.ErrPaymentNotFound) {
		return nil, domainerrors.ErrPaymentNotFound.WithDetails(paymentID)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find payment")
	}

	return payment, nil
}

func without(fields []string, drop string) []string {
	out := fields[:0]
	for _, f := range fields {
		if f != drop {
			out = append(out, f)
		}
	}

	return out
}
