package impl

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"

	"planner/config"
	"planner/internal/domain/entity"
	"planner/internal/domain/service"
	"planner/internal/infra/idgen"
	"planner/internal/infra/persistence/postgres"
	mockSvc "planner/internal/mocks/service"
	"planner/internal/usecase"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const concurrentCreators = 8

func newSQLiteDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "planner.db")), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, postgres.AutoMigrate(db))

	// One connection serializes statements without SQLITE_BUSY while the
	// goroutines still interleave between the max read and the insert.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	return db
}

// lockstepGenerator holds the first n key reads until all n have happened,
// so every creator starts from the same maximum and all but one collide.
type lockstepGenerator struct {
	next  service.IDGenerator
	n     int32
	calls atomic.Int32
	ready sync.WaitGroup
}

func newLockstepGenerator(next service.IDGenerator, n int) *lockstepGenerator {
	g := &lockstepGenerator{next: next, n: int32(n)}
	g.ready.Add(n)

	return g
}

func (g *lockstepGenerator) Next(ctx context.Context, kind entity.IDKind) (string, error) {
	id, err := g.next.Next(ctx, kind)
	if g.calls.Add(1) <= g.n {
		g.ready.Done()
		g.ready.Wait()
	}

	return id, err
}

func raceConfig() *config.Config {
	return &config.Config{
		IDs: &config.IDsConfig{Strategy: config.IDStrategyMax, MaxAttempts: concurrentCreators + 1},
	}
}

func TestIdentityService_CreateUser_ConcurrentKeysAreUnique(t *testing.T) {
	ctx := context.Background()
	db := newSQLiteDB(t)
	ids := newLockstepGenerator(idgen.NewMaxGenerator(postgres.NewSequenceRepository(db)), concurrentCreators)
	hasher := mockSvc.NewMockPasswordHasher(t)
	hasher.EXPECT().IsHashed(mock.Anything).Return(true)

	srv := NewIdentityService(IdentityServiceParams{
		TxManager:   postgres.NewTransactionManager(db),
		UserRepo:    postgres.NewUserRepository(db),
		Hasher:      hasher,
		IDGenerator: ids,
		Config:      raceConfig(),
		Logger:      discardLogger(),
	})

	userIDs := make([]string, concurrentCreators)
	errs := make([]error, concurrentCreators)
	var wg sync.WaitGroup
	for i := range concurrentCreators {
		wg.Add(1)
		go func() {
			defer wg.Done()
			user, err := srv.CreateUser(ctx, &usecase.CreateUserInput{
				Role:      entity.RoleCustomer,
				UserName:  fmt.Sprintf("racer%d", i),
				Password:  "$2a$10$alreadyhashed",
				FirstName: "Race",
				LastName:  fmt.Sprintf("Runner%d", i),
			})
			errs[i] = err
			if err == nil {
				userIDs[i] = user.UserID
			}
		}()
	}
	wg.Wait()

	for _, err := range errs {
		require.NoError(t, err)
	}
	assert.ElementsMatch(t, []string{"CUS01", "CUS02", "CUS03", "CUS04", "CUS05", "CUS06", "CUS07", "CUS08"}, userIDs)
	assert.GreaterOrEqual(t, ids.calls.Load(), int32(2*concurrentCreators-1))
}

func TestPaymentService_CreateCardPayment_ConcurrentKeysAreUnique(t *testing.T) {
	ctx := context.Background()
	db := newSQLiteDB(t)
	require.NoError(t, postgres.NewEventRepository(db).Create(ctx, &entity.Event{EID: "EV001", Name: "Gala"}))
	require.NoError(t, postgres.NewPackageRepository(db).Create(ctx, &entity.Package{PgID: "PKG001", Price: 500, EventID: "EV001"}))
	ids := newLockstepGenerator(idgen.NewMaxGenerator(postgres.NewSequenceRepository(db)), concurrentCreators)

	srv := NewPaymentService(PaymentServiceParams{
		PaymentRepo: postgres.NewPaymentRepository(db),
		EventRepo:   postgres.NewEventRepository(db),
		PackageRepo: postgres.NewPackageRepository(db),
		IDGenerator: ids,
		Config:      raceConfig(),
		Logger:      discardLogger(),
	})
	actor := entity.Actor{UserID: "CUS01", Role: entity.RoleCustomer}

	pids := make([]string, concurrentCreators)
	errs := make([]error, concurrentCreators)
	var wg sync.WaitGroup
	for i := range concurrentCreators {
		wg.Add(1)
		go func() {
			defer wg.Done()
			payment, err := srv.CreateCardPayment(ctx, actor, &usecase.CreateCardPaymentInput{
				PaymentBaseInput: usecase.PaymentBaseInput{EventID: "EV001", PackageID: "PKG001", Amount: 500},
				CardType:         "visa",
				CardNumber:       "4111111111111111",
				CardholderName:   "Race Runner",
				ExpiryDate:       "12/30",
			})
			errs[i] = err
			if err == nil {
				pids[i] = payment.PID
			}
		}()
	}
	wg.Wait()

	for _, err := range errs {
		require.NoError(t, err)
	}
	assert.ElementsMatch(t, []string{"PAY001", "PAY002", "PAY003", "PAY004", "PAY005", "PAY006", "PAY007", "PAY008"}, pids)
	assert.GreaterOrEqual(t, ids.calls.Load(), int32(2*concurrentCreators-1))
}
