package postgres

import (
	"context"
	"time"

	"planner/internal/domain/entity"
	domainerrors "planner/internal/domain/errors"
	"planner/internal/domain/repository"
	"planner/internal/errors"
	"planner/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// paymentRepository stores both payment variants in one table.
type paymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository creates a GORM-backed payment repository.
func NewPaymentRepository(db *gorm.DB) repository.PaymentRepository {
	return &paymentRepository{db: db}
}

func (repo *paymentRepository) FindByPID(ctx context.Context, pid string) (*entity.Payment, error) {
	var paymentM model.PaymentModel
	if err := repo.db.WithContext(ctx).Where("p_id = ?", pid).First(&paymentM).Error; err != nil {
		return nil, errors.Translate(err, gorm.ErrRecordNotFound, repository.ErrPaymentNotFound, "failed to find payment")
	}

	return toPaymentDomain(&paymentM), nil
}

func (repo *paymentRepository) List(ctx context.Context, filter repository.PaymentFilter) ([]*entity.Payment, error) {
	tx := repo.db.WithContext(ctx).Order("p_date DESC, LENGTH(p_id) DESC, p_id DESC")
	if filter.CustomerID != "" {
		tx = tx.Where("customer_id = ?", filter.CustomerID)
	}

	var paymentMs []*model.PaymentModel
	if err := tx.Find(&paymentMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list payments")
	}

	payments := make([]*entity.Payment, 0, len(paymentMs))
	for _, paymentM := range paymentMs {
		payments = append(payments, toPaymentDomain(paymentM))
	}

	return payments, nil
}

func (repo *paymentRepository) Create(ctx context.Context, payment *entity.Payment) error {
	paymentM := fromPaymentDomain(payment)
	if paymentM.ID == uuid.Nil {
		paymentM.ID = uuid.New()
	}
	if paymentM.Date.IsZero() {
		paymentM.Date = time.Now()
	}

	if err := repo.db.WithContext(ctx).Create(paymentM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("payment id already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required payment information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create payment")
	}

	payment.ID = paymentM.ID
	payment.Date = paymentM.Date
	payment.CreatedAt = paymentM.CreatedAt
	payment.UpdatedAt = paymentM.UpdatedAt

	return nil
}

func (repo *paymentRepository) Update(ctx context.Context, payment *entity.Payment) error {
	now := time.Now()
	fields := map[string]any{
		"p_amount":   payment.Amount,
		"updated_at": now,
	}
	switch payment.Kind {
	case entity.PaymentKindCard:
		if payment.Card != nil {
			fields["c_description"] = payment.Card.Description
		}
	case entity.PaymentKindPortal:
		if payment.Portal != nil {
			fields["p_description"] = payment.Portal.Description
			fields["bank_slip_url"] = payment.Portal.BankSlipURL
		}
	}

	result := repo.db.WithContext(ctx).
		Model(&model.PaymentModel{}).
		Where("p_id = ?", payment.PID).
		Updates(fields)
	if err := result.Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update payment")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPaymentNotFound
	}
	payment.UpdatedAt = now

	return nil
}

// TransitionStatus applies the status change only while the row still holds from.
func (repo *paymentRepository) TransitionStatus(ctx context.Context, pid string, from, to entity.PaymentStatus) (bool, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.PaymentModel{}).
		Where("p_id = ? AND status = ?", pid, string(from)).
		Updates(map[string]any{
			"status":     string(to),
			"updated_at": time.Now(),
		})
	if err := result.Error; err != nil {
		return false, domainerrors.NewDatabaseExecuteError(err, "failed to update payment status")
	}

	return result.RowsAffected > 0, nil
}

func (repo *paymentRepository) DeleteByPID(ctx context.Context, pid string) error {
	result := repo.db.WithContext(ctx).Where("p_id = ?", pid).Delete(&model.PaymentModel{})
	if err := result.Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete payment")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPaymentNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toPaymentDomain rebuilds the variant selected by the discriminator.
// Columns of the other variant are ignored even if populated.
func toPaymentDomain(data *model.PaymentModel) *entity.Payment {
	if data == nil {
		return nil
	}

	payment := &entity.Payment{
		ID:         data.ID,
		PID:        data.PID,
		Amount:     data.Amount,
		Date:       data.Date,
		CustomerID: data.CustomerID,
		EventID:    data.EventID,
		PackageID:  data.PackageID,
		Status:     entity.PaymentStatus(data.Status),
		Kind:       entity.PaymentKind(data.Kind),
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}

	switch payment.Kind {
	case entity.PaymentKindCard:
		payment.Card = &entity.CardDetails{
			Type:           deref(data.CardType),
			Description:    deref(data.CardDescription),
			CardNumber:     deref(data.CardNumber),
			CardholderName: deref(data.CardholderName),
			ExpiryDate:     deref(data.ExpiryDate),
		}
	case entity.PaymentKindPortal:
		payment.Portal = &entity.PortalDetails{
			Description: deref(data.PortalDescription),
			Reference:   deref(data.Reference),
			BankSlipURL: deref(data.BankSlipURL),
		}
	}

	return payment
}

// fromPaymentDomain writes only the columns of the payment's own variant.
// The card number is masked again here so no write path can store it in clear.
func fromPaymentDomain(data *entity.Payment) *model.PaymentModel {
	if data == nil {
		return nil
	}

	paymentM := &model.PaymentModel{
		ID:         data.ID,
		PID:        data.PID,
		Amount:     data.Amount,
		Date:       data.Date,
		CustomerID: data.CustomerID,
		EventID:    data.EventID,
		PackageID:  data.PackageID,
		Status:     string(data.Status),
		Kind:       string(data.Kind),
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}

	switch {
	case data.Kind == entity.PaymentKindCard && data.Card != nil:
		paymentM.CardType = ptr(data.Card.Type)
		paymentM.CardDescription = ptr(data.Card.Description)
		paymentM.CardNumber = ptr(entity.MaskCardNumber(data.Card.CardNumber))
		paymentM.CardholderName = ptr(data.Card.CardholderName)
		paymentM.ExpiryDate = ptr(data.Card.ExpiryDate)
	case data.Kind == entity.PaymentKindPortal && data.Portal != nil:
		paymentM.PortalDescription = ptr(data.Portal.Description)
		paymentM.Reference = ptr(data.Portal.Reference)
		paymentM.BankSlipURL = ptr(data.Portal.BankSlipURL)
	}

	return paymentM
}

func ptr(s string) *string {
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}
