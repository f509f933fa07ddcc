package postgres

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"planner/internal/domain/entity"
	domainerrors "planner/internal/domain/errors"
	"planner/internal/domain/repository"
	"planner/internal/infra/persistence/model"

	"github.com/glebarez/sqlite"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "planner.db")), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, AutoMigrate(db))

	return db
}

func seedCustomer(t *testing.T, repo repository.UserRepository, userID, userName string) *entity.User {
	t.Helper()

	user := &entity.User{
		UserID:    userID,
		UserName:  userName,
		Password:  "$2a$10$abcdefghijklmnopqrstuv",
		Role:      entity.RoleCustomer,
		FirstName: "Ana",
		LastName:  "Lopez",
	}
	require.NoError(t, repo.Create(context.Background(), user))

	return user
}

func TestUserRepository_CreateAndFind(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(newTestDB(t))

	created := seedCustomer(t, repo, "CUS01", "ana")
	assert.NotZero(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	byID, err := repo.FindByUserID(ctx, "CUS01")
	require.NoError(t, err)
	assert.Equal(t, "ana", byID.UserName)
	assert.Equal(t, entity.RoleCustomer, byID.Role)

	byName, err := repo.FindByCredential(ctx, "ana")
	require.NoError(t, err)
	assert.Equal(t, "CUS01", byName.UserID)

	byKey, err := repo.FindByCredential(ctx, "CUS01")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byKey.ID)

	_, err = repo.FindByUserID(ctx, "CUS99")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestUserRepository_CreateRejectsDuplicateKeys(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(newTestDB(t))
	seedCustomer(t, repo, "CUS01", "ana")

	dupID := &entity.User{UserID: "CUS01", UserName: "other", Password: "x", Role: entity.RoleAdmin}
	err := repo.Create(ctx, dupID)
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)

	dupName := &entity.User{UserID: "AD01", UserName: "ana", Password: "x", Role: entity.RoleAdmin}
	err = repo.Create(ctx, dupName)
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestUserRepository_ListOrdersNaturally(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(newTestDB(t))
	seedCustomer(t, repo, "CUS10", "c10")
	seedCustomer(t, repo, "CUS09", "c09")
	seedCustomer(t, repo, "CUS100", "c100")
	require.NoError(t, repo.Create(ctx, &entity.User{UserID: "AD01", UserName: "root", Password: "x", Role: entity.RoleAdmin}))

	customers, err := repo.List(ctx, entity.RoleCustomer)
	require.NoError(t, err)
	ids := make([]string, 0, len(customers))
	for _, u := range customers {
		ids = append(ids, u.UserID)
	}
	assert.Equal(t, []string{"CUS09", "CUS10", "CUS100"}, ids)

	all, err := repo.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 4)
}

func TestUserRepository_UpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(newTestDB(t))
	user := seedCustomer(t, repo, "CUS01", "ana")

	user.PhoneNo = "0711111111"
	user.LastName = "Garcia"
	require.NoError(t, repo.Update(ctx, user))

	reloaded, err := repo.FindByUserID(ctx, "CUS01")
	require.NoError(t, err)
	assert.Equal(t, "0711111111", reloaded.PhoneNo)
	assert.Equal(t, "Garcia", reloaded.LastName)

	err = repo.Update(ctx, &entity.User{UserID: "CUS77", UserName: "ghost"})
	assert.ErrorIs(t, err, repository.ErrUserNotFound)

	require.NoError(t, repo.DeleteByUserID(ctx, "CUS01"))
	assert.ErrorIs(t, repo.DeleteByUserID(ctx, "CUS01"), repository.ErrUserNotFound)
}

func TestPaymentRepository_DiscriminatedVariants(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewPaymentRepository(db)

	card := entity.NewCardPayment("CUS01", "EV001", "PKG001", 120, entity.CardDetails{
		Type:           "visa",
		Description:    "deposit",
		CardNumber:     "4111 1111 1111 1234",
		CardholderName: "Ana Lopez",
		ExpiryDate:     "12/29",
	})
	card.PID = "PAY001"
	require.NoError(t, repo.Create(ctx, card))

	portal := entity.NewPortalPayment("CUS01", "EV001", "PKG001", 80, entity.PortalDetails{
		Reference:   "TRX-9",
		BankSlipURL: "http://slips/1.png",
	})
	portal.PID = "PAY002"
	require.NoError(t, repo.Create(ctx, portal))

	gotCard, err := repo.FindByPID(ctx, "PAY001")
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentKindCard, gotCard.Kind)
	require.NotNil(t, gotCard.Card)
	assert.Nil(t, gotCard.Portal)
	assert.Equal(t, "************1234", gotCard.Card.CardNumber)

	gotPortal, err := repo.FindByPID(ctx, "PAY002")
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentKindPortal, gotPortal.Kind)
	assert.Nil(t, gotPortal.Card)
	require.NotNil(t, gotPortal.Portal)
	assert.Equal(t, "TRX-9", gotPortal.Portal.Reference)

	// Card columns of a portal row stay NULL.
	var row model.PaymentModel
	require.NoError(t, db.Where("p_id = ?", "PAY002").First(&row).Error)
	assert.Nil(t, row.CardNumber)
	assert.Nil(t, row.CardType)
}

func TestPaymentRepository_CreateMasksUnmaskedCardNumber(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewPaymentRepository(db)

	// Built without the constructor, so the number arrives in clear.
	payment := &entity.Payment{
		PID: "PAY001", Amount: 10, CustomerID: "CUS01", EventID: "EV001", PackageID: "PKG001",
		Status: entity.PaymentStatusConfirmed, Kind: entity.PaymentKindCard,
		Card: &entity.CardDetails{Type: "visa", CardNumber: "4111111111119876", CardholderName: "A", ExpiryDate: "01/30"},
	}
	require.NoError(t, repo.Create(ctx, payment))

	var row model.PaymentModel
	require.NoError(t, db.Where("p_id = ?", "PAY001").First(&row).Error)
	require.NotNil(t, row.CardNumber)
	assert.Equal(t, "************9876", *row.CardNumber)
}

func TestPaymentRepository_NeverStoresFullNumber(t *testing.T) {
	ctx := context.Background()
	repo := NewPaymentRepository(newTestDB(t))

	inputs := []string{"4111111111111111*", "4111 1111 1111 *111", "4111-1111-1111-1111"}
	for i, in := range inputs {
		payment := entity.NewCardPayment("CUS01", "EV001", "PKG001", 10, entity.CardDetails{
			Type: "visa", CardNumber: in, CardholderName: "A", ExpiryDate: "01/30",
		})
		payment.PID = fmt.Sprintf("PAY%03d", i+1)
		require.NoError(t, repo.Create(ctx, payment))

		got, err := repo.FindByPID(ctx, payment.PID)
		require.NoError(t, err)
		assert.Regexp(t, `^\*+1111$`, got.Card.CardNumber, in)
	}
}

func TestPaymentRepository_FindByPIDNotFound(t *testing.T) {
	_, err := NewPaymentRepository(newTestDB(t)).FindByPID(context.Background(), "PAY404")
	assert.ErrorIs(t, err, repository.ErrPaymentNotFound)
}

func TestPaymentRepository_TransitionStatusIsConditional(t *testing.T) {
	ctx := context.Background()
	repo := NewPaymentRepository(newTestDB(t))

	payment := entity.NewPortalPayment("CUS01", "EV001", "PKG001", 50, entity.PortalDetails{Reference: "R", BankSlipURL: "u"})
	payment.PID = "PAY001"
	require.NoError(t, repo.Create(ctx, payment))

	applied, err := repo.TransitionStatus(ctx, "PAY001", entity.PaymentStatusConfirmed, entity.PaymentStatusRefunded)
	require.NoError(t, err)
	assert.True(t, applied)

	applied, err = repo.TransitionStatus(ctx, "PAY001", entity.PaymentStatusConfirmed, entity.PaymentStatusCancelled)
	require.NoError(t, err)
	assert.False(t, applied)

	got, err := repo.FindByPID(ctx, "PAY001")
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentStatusRefunded, got.Status)
}

func TestPaymentRepository_UpdateKeepsKind(t *testing.T) {
	ctx := context.Background()
	repo := NewPaymentRepository(newTestDB(t))

	payment := entity.NewCardPayment("CUS01", "EV001", "PKG001", 10, entity.CardDetails{
		Type: "visa", CardNumber: "4111111111111111", CardholderName: "A", ExpiryDate: "01/30",
	})
	payment.PID = "PAY001"
	require.NoError(t, repo.Create(ctx, payment))

	payment.Amount = 25
	payment.Card.Description = "balance"
	require.NoError(t, repo.Update(ctx, payment))

	got, err := repo.FindByPID(ctx, "PAY001")
	require.NoError(t, err)
	assert.Equal(t, 25.0, got.Amount)
	assert.Equal(t, "balance", got.Card.Description)
	assert.Equal(t, entity.PaymentKindCard, got.Kind)

	assert.ErrorIs(t, repo.Update(ctx, &entity.Payment{PID: "PAY404", Kind: entity.PaymentKindCard}), repository.ErrPaymentNotFound)
}

func TestPaymentRepository_ListNewestFirst(t *testing.T) {
	ctx := context.Background()
	repo := NewPaymentRepository(newTestDB(t))
	base := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	for i, customer := range []string{"CUS01", "CUS02", "CUS01"} {
		p := entity.NewPortalPayment(customer, "EV001", "PKG001", 10, entity.PortalDetails{Reference: "R", BankSlipURL: "u"})
		p.PID = entity.IDFormat{Prefix: "PAY", Width: 3}.Format(int64(i + 1))
		p.Date = base.Add(time.Duration(i) * time.Hour)
		require.NoError(t, repo.Create(ctx, p))
	}

	all, err := repo.List(ctx, repository.PaymentFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []string{"PAY003", "PAY002", "PAY001"}, []string{all[0].PID, all[1].PID, all[2].PID})

	mine, err := repo.List(ctx, repository.PaymentFilter{CustomerID: "CUS01"})
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, "PAY003", mine[0].PID)
}

func TestSequenceRepository_MaxBusinessID(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	seq := NewSequenceRepository(db)
	payments := NewPaymentRepository(db)
	users := NewUserRepository(db)

	maxID, err := seq.MaxBusinessID(ctx, entity.IDKindPayment)
	require.NoError(t, err)
	assert.Empty(t, maxID)

	for _, pid := range []string{"PAY998", "PAY1000", "PAY999"} {
		p := entity.NewPortalPayment("CUS01", "EV001", "PKG001", 10, entity.PortalDetails{Reference: "R", BankSlipURL: "u"})
		p.PID = pid
		require.NoError(t, payments.Create(ctx, p))
	}

	maxID, err = seq.MaxBusinessID(ctx, entity.IDKindPayment)
	require.NoError(t, err)
	assert.Equal(t, "PAY1000", maxID)

	// Customers and admins share the table but not the prefix.
	seedCustomer(t, users, "CUS07", "c7")
	require.NoError(t, users.Create(ctx, &entity.User{UserID: "AD03", UserName: "root", Password: "x", Role: entity.RoleAdmin}))

	maxID, err = seq.MaxBusinessID(ctx, entity.IDKindCustomer)
	require.NoError(t, err)
	assert.Equal(t, "CUS07", maxID)

	maxID, err = seq.MaxBusinessID(ctx, entity.IDKindAdmin)
	require.NoError(t, err)
	assert.Equal(t, "AD03", maxID)
}

func TestCatalogRepositories(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	events := NewEventRepository(db)
	packages := NewPackageRepository(db)

	event := &entity.Event{EID: "EV001", Name: "Gala", Status: entity.DefaultEventStatus}
	require.NoError(t, events.Create(ctx, event))
	assert.ErrorIs(t, events.Create(ctx, &entity.Event{EID: "EV001", Name: "Dup", Status: "active"}), domainerrors.ErrConflict)

	event.Name = "Winter Gala"
	require.NoError(t, events.Update(ctx, event))
	got, err := events.FindByEID(ctx, "EV001")
	require.NoError(t, err)
	assert.Equal(t, "Winter Gala", got.Name)

	_, err = events.FindByEID(ctx, "EV404")
	assert.ErrorIs(t, err, repository.ErrEventNotFound)

	require.NoError(t, packages.Create(ctx, &entity.Package{PgID: "PKG001", Price: 99.5, EventID: "EV001"}))
	require.NoError(t, packages.Create(ctx, &entity.Package{PgID: "PKG002", Price: 10, EventID: "EV002"}))

	forEvent, err := packages.ListByEvent(ctx, "EV001")
	require.NoError(t, err)
	require.Len(t, forEvent, 1)
	assert.Equal(t, 99.5, forEvent[0].Price)

	_, err = packages.FindByPgID(ctx, "PKG404")
	assert.ErrorIs(t, err, repository.ErrPackageNotFound)
}

func TestFeedbackRepository_FirstByCustomer(t *testing.T) {
	ctx := context.Background()
	repo := NewFeedbackRepository(newTestDB(t))
	rating := 4

	first := &entity.Feedback{CustomerID: "CUS01", Message: "great", Rating: &rating, CreatedAt: time.Now().Add(-time.Hour)}
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, &entity.Feedback{CustomerID: "CUS01", Message: "later"}))

	got, err := repo.FindFirstByCustomerID(ctx, "CUS01")
	require.NoError(t, err)
	assert.Equal(t, "great", got.Message)
	require.NotNil(t, got.Rating)
	assert.Equal(t, 4, *got.Rating)

	_, err = repo.FindFirstByCustomerID(ctx, "CUS02")
	assert.ErrorIs(t, err, repository.ErrFeedbackNotFound)

	deleted, err := repo.DeleteByCustomerID(ctx, "CUS01")
	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)
}

func TestTransactionManager_RollsBackCascade(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	users := NewUserRepository(db)
	feedback := NewFeedbackRepository(db)
	seedCustomer(t, users, "CUS01", "ana")
	require.NoError(t, feedback.Create(ctx, &entity.Feedback{CustomerID: "CUS01", Message: "a"}))
	require.NoError(t, feedback.Create(ctx, &entity.Feedback{CustomerID: "CUS01", Message: "b"}))

	txManager := NewTransactionManager(db)
	injected := errors.New("injected failure")

	err := txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		if _, err := f.FeedbackRepo().DeleteByCustomerID(ctx, "CUS01"); err != nil {
			return err
		}

		return injected
	})
	require.ErrorIs(t, err, injected)

	remaining, err := feedback.ListByCustomerID(ctx, "CUS01")
	require.NoError(t, err)
	assert.Len(t, remaining, 2)
	_, err = users.FindByUserID(ctx, "CUS01")
	assert.NoError(t, err)
}

func TestTransactionManager_CommitsCascade(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	users := NewUserRepository(db)
	feedback := NewFeedbackRepository(db)
	seedCustomer(t, users, "CUS01", "ana")
	require.NoError(t, feedback.Create(ctx, &entity.Feedback{CustomerID: "CUS01", Message: "a"}))

	var deleted int64
	err := NewTransactionManager(db).Execute(ctx, func(f repository.RepositoryFactory) error {
		n, err := f.FeedbackRepo().DeleteByCustomerID(ctx, "CUS01")
		if err != nil {
			return err
		}
		deleted = n

		return f.UserRepo().DeleteByUserID(ctx, "CUS01")
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	_, err = users.FindByUserID(ctx, "CUS01")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestTransactionManager_RollsBackOnPanic(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	users := NewUserRepository(db)
	feedback := NewFeedbackRepository(db)
	seedCustomer(t, users, "CUS01", "ana")
	require.NoError(t, feedback.Create(ctx, &entity.Feedback{CustomerID: "CUS01", Message: "a"}))

	assert.Panics(t, func() {
		_ = NewTransactionManager(db).Execute(ctx, func(f repository.RepositoryFactory) error {
			if _, err := f.FeedbackRepo().DeleteByCustomerID(ctx, "CUS01"); err != nil {
				return err
			}
			panic("boom")
		})
	})

	remaining, err := feedback.ListByCustomerID(ctx, "CUS01")
	require.NoError(t, err)
	assert.Len(t, remaining, 1)
}
