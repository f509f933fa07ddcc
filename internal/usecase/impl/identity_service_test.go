package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"planner/config"
	"planner/internal/domain/entity"
	domainerrors "planner/internal/domain/errors"
	"planner/internal/domain/repository"
	mockRepo "planner/internal/mocks/repository"
	mockSvc "planner/internal/mocks/service"
	"planner/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testHash = "$2a$10$abcdefghijklmnopqrstuuJ1fG2H3i4J5k6L7m8N9o0P1q2R3s4T5u"

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig(fallback bool) *config.Config {
	return &config.Config{
		Legacy: &config.LegacyConfig{FallbackEnabled: fallback},
		IDs:    &config.IDsConfig{Strategy: config.IDStrategyMax, MaxAttempts: 3},
	}
}

func strPtr(s string) *string { return &s }

// identityServiceFixtures holds all test dependencies for identity service tests.
type identityServiceFixtures struct {
	service         usecase.IdentityUsecase
	txManager       *mockRepo.MockTransactionManager
	userRepo        *mockRepo.MockUserRepository
	legacyCustomers *mockRepo.MockLegacyCustomerRepository
	legacyAdmins    *mockRepo.MockLegacyAdminRepository
	hasher          *mockSvc.MockPasswordHasher
	tokenService    *mockSvc.MockTokenService
	ids             *mockSvc.MockIDGenerator
}

func createTestIdentityService(t *testing.T, fallback bool) identityServiceFixtures {
	fx := identityServiceFixtures{
		txManager:       mockRepo.NewMockTransactionManager(t),
		userRepo:        mockRepo.NewMockUserRepository(t),
		legacyCustomers: mockRepo.NewMockLegacyCustomerRepository(t),
		legacyAdmins:    mockRepo.NewMockLegacyAdminRepository(t),
		hasher:          mockSvc.NewMockPasswordHasher(t),
		tokenService:    mockSvc.NewMockTokenService(t),
		ids:             mockSvc.NewMockIDGenerator(t),
	}

	fx.service = NewIdentityService(IdentityServiceParams{
		TxManager:       fx.txManager,
		UserRepo:        fx.userRepo,
		LegacyCustomers: fx.legacyCustomers,
		LegacyAdmins:    fx.legacyAdmins,
		Hasher:          fx.hasher,
		TokenService:    fx.tokenService,
		IDGenerator:     fx.ids,
		Config:          testConfig(fallback),
		Logger:          discardLogger(),
	})

	return fx
}

func TestIdentityService_FindUserByCredential(t *testing.T) {
	ctx := context.Background()

	t.Run("unified user wins", func(t *testing.T) {
		fx := createTestIdentityService(t, true)
		fx.userRepo.EXPECT().FindByCredential(ctx, "alice").Return(&entity.User{
			UserID: "CUS01", UserName: "alice", Role: entity.RoleCustomer, FirstName: "Alice", LastName: "Liddell",
		}, nil)

		identity, err := fx.service.FindUserByCredential(ctx, "alice")

		require.NoError(t, err)
		assert.Equal(t, "CUS01", identity.UserID)
		assert.Equal(t, entity.IdentitySourceUnified, identity.Source)
	})

	t.Run("falls back to legacy customer", func(t *testing.T) {
		fx := createTestIdentityService(t, true)
		fx.userRepo.EXPECT().FindByCredential(ctx, "CUS05").Return(nil, repository.ErrUserNotFound)
		fx.legacyCustomers.EXPECT().FindByCredential(ctx, "CUS05").Return(&entity.LegacyCustomer{
			CID: "CUS05", UserName: "bob", Name: "Bob Marley",
		}, nil)

		identity, err := fx.service.FindUserByCredential(ctx, "CUS05")

		require.NoError(t, err)
		assert.Equal(t, entity.RoleCustomer, identity.Role)
		assert.Equal(t, entity.IdentitySourceLegacyCustomer, identity.Source)
		assert.Equal(t, "Bob Marley", identity.DisplayName())
	})

	t.Run("falls back to legacy admin after customers", func(t *testing.T) {
		fx := createTestIdentityService(t, true)
		fx.userRepo.EXPECT().FindByCredential(ctx, "root").Return(nil, repository.ErrUserNotFound)
		fx.legacyCustomers.EXPECT().FindByCredential(ctx, "root").Return(nil, repository.ErrLegacyRecordNotFound)
		fx.legacyAdmins.EXPECT().FindByCredential(ctx, "root").Return(&entity.LegacyAdmin{AID: "AD01", UserName: "root"}, nil)

		identity, err := fx.service.FindUserByCredential(ctx, "root")

		require.NoError(t, err)
		assert.Equal(t, entity.RoleAdmin, identity.Role)
		assert.Equal(t, "AD01", identity.UserID)
	})

	t.Run("no match anywhere", func(t *testing.T) {
		fx := createTestIdentityService(t, true)
		fx.userRepo.EXPECT().FindByCredential(ctx, "ghost").Return(nil, repository.ErrUserNotFound)
		fx.legacyCustomers.EXPECT().FindByCredential(ctx, "ghost").Return(nil, repository.ErrLegacyRecordNotFound)
		fx.legacyAdmins.EXPECT().FindByCredential(ctx, "ghost").Return(nil, repository.ErrLegacyRecordNotFound)

		_, err := fx.service.FindUserByCredential(ctx, "ghost")

		assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
	})

	t.Run("legacy store untouched once fallback is off", func(t *testing.T) {
		fx := createTestIdentityService(t, false)
		fx.userRepo.EXPECT().FindByCredential(ctx, "CUS05").Return(nil, repository.ErrUserNotFound)

		_, err := fx.service.FindUserByCredential(ctx, "CUS05")

		assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
	})

	t.Run("store failure is not reported as not found", func(t *testing.T) {
		fx := createTestIdentityService(t, true)
		fx.userRepo.EXPECT().FindByCredential(ctx, "alice").Return(nil, errors.New("connection reset"))

		_, err := fx.service.FindUserByCredential(ctx, "alice")

		require.Error(t, err)
		assert.NotErrorIs(t, err, domainerrors.ErrUserNotFound)
	})
}

func TestIdentityService_CreateUser_GeneratesCustomerID(t *testing.T) {
	fx := createTestIdentityService(t, true)
	ctx := context.Background()
	input := &usecase.CreateUserInput{
		Role: entity.RoleCustomer, UserName: "alice", Password: "secret", FirstName: "Alice", LastName: "Liddell",
	}

	fx.userRepo.EXPECT().FindByUserIDOrUserName(ctx, "", "alice").Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().IsHashed("secret").Return(false)
	fx.hasher.EXPECT().Hash("secret").Return(testHash, nil)
	fx.ids.EXPECT().Next(ctx, entity.IDKindCustomer).Return("CUS01", nil)
	fx.userRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).Return(nil)

	user, err := fx.service.CreateUser(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "CUS01", user.UserID)
	assert.Equal(t, testHash, user.Password)
}

func TestIdentityService_CreateUser_AdminWithoutNames(t *testing.T) {
	fx := createTestIdentityService(t, true)
	ctx := context.Background()
	input := &usecase.CreateUserInput{Role: entity.RoleAdmin, UserID: "AD07", UserName: "ops", Password: testHash}

	fx.userRepo.EXPECT().FindByUserIDOrUserName(ctx, "AD07", "ops").Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().IsHashed(testHash).Return(true)
	fx.userRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(u *entity.User) bool {
			return u.UserID == "AD07" && u.Password == testHash && u.FirstName == ""
		})).
		Return(nil)

	user, err := fx.service.CreateUser(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, user.Role)
}

func TestIdentityService_CreateUser_CustomerNeedsNames(t *testing.T) {
	fx := createTestIdentityService(t, true)

	_, err := fx.service.CreateUser(context.Background(), &usecase.CreateUserInput{
		Role: entity.RoleCustomer, UserName: "alice", Password: "secret",
	})

	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	var appErr *domainerrors.BaseError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "firstName,lastName", appErr.Details())
}

func TestIdentityService_CreateUser_UserNameTaken(t *testing.T) {
	fx := createTestIdentityService(t, true)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByUserIDOrUserName(ctx, "", "alice").
		Return(&entity.User{UserID: "CUS01", UserName: "alice"}, nil)

	_, err := fx.service.CreateUser(ctx, &usecase.CreateUserInput{
		Role: entity.RoleCustomer, UserName: "alice", Password: "secret", FirstName: "A", LastName: "B",
	})

	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestIdentityService_CreateUser_RetriesGeneratedIDConflict(t *testing.T) {
	fx := createTestIdentityService(t, true)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByUserIDOrUserName(ctx, "", "carol").Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().IsHashed("pw").Return(false)
	fx.hasher.EXPECT().Hash("pw").Return(testHash, nil)
	fx.ids.EXPECT().Next(ctx, entity.IDKindCustomer).Return("CUS02", nil).Once()
	fx.ids.EXPECT().Next(ctx, entity.IDKindCustomer).Return("CUS03", nil).Once()
	fx.userRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(u *entity.User) bool { return u.UserID == "CUS02" })).
		Return(domainerrors.ErrUserAlreadyExists.WrapMessage("user id or user name already exists")).Once()
	fx.userRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(u *entity.User) bool { return u.UserID == "CUS03" })).
		Return(nil).Once()

	user, err := fx.service.CreateUser(ctx, &usecase.CreateUserInput{
		Role: entity.RoleCustomer, UserName: "carol", Password: "pw", FirstName: "Carol", LastName: "King",
	})

	require.NoError(t, err)
	assert.Equal(t, "CUS03", user.UserID)
}

func TestIdentityService_UpdateUser(t *testing.T) {
	ctx := context.Background()

	t.Run("splits legacy name and hashes new plaintext password", func(t *testing.T) {
		fx := createTestIdentityService(t, true)
		fx.userRepo.EXPECT().FindByUserID(ctx, "CUS01").Return(&entity.User{
			UserID: "CUS01", UserName: "alice", Password: testHash, Role: entity.RoleCustomer, FirstName: "A", LastName: "L",
		}, nil)
		fx.hasher.EXPECT().IsHashed("new-secret").Return(false)
		fx.hasher.EXPECT().Hash("new-secret").Return("$2a$10$rehashed", nil)
		fx.userRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.User")).Return(nil)

		user, err := fx.service.UpdateUser(ctx, "CUS01", &usecase.UpdateUserInput{
			Name:     strPtr("Alice Pleasance Liddell"),
			Password: strPtr("new-secret"),
		})

		require.NoError(t, err)
		assert.Equal(t, "Alice", user.FirstName)
		assert.Equal(t, "Pleasance Liddell", user.LastName)
		assert.Equal(t, "$2a$10$rehashed", user.Password)
	})

	t.Run("keeps an incoming hash as is", func(t *testing.T) {
		fx := createTestIdentityService(t, true)
		fx.userRepo.EXPECT().FindByUserID(ctx, "AD01").Return(&entity.User{
			UserID: "AD01", UserName: "root", Password: "old", Role: entity.RoleAdmin,
		}, nil)
		fx.hasher.EXPECT().IsHashed(testHash).Return(true)
		fx.userRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.User")).Return(nil)

		user, err := fx.service.UpdateUser(ctx, "AD01", &usecase.UpdateUserInput{Password: strPtr(testHash)})

		require.NoError(t, err)
		assert.Equal(t, testHash, user.Password)
	})

	t.Run("unknown user", func(t *testing.T) {
		fx := createTestIdentityService(t, true)
		fx.userRepo.EXPECT().FindByUserID(ctx, "CUS99").Return(nil, repository.ErrUserNotFound)

		_, err := fx.service.UpdateUser(ctx, "CUS99", &usecase.UpdateUserInput{})

		assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
	})
}

// runInTx makes the transaction mock invoke fn with factory and return its error.
func runInTx(fx identityServiceFixtures, ctx context.Context, factory repository.RepositoryFactory) {
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

func TestIdentityService_DeleteUser_CascadesCustomerFeedback(t *testing.T) {
	fx := createTestIdentityService(t, true)
	ctx := context.Background()

	factory := mockRepo.NewMockRepositoryFactory(t)
	txUsers := mockRepo.NewMockUserRepository(t)
	txFeedback := mockRepo.NewMockFeedbackRepository(t)
	factory.EXPECT().UserRepo().Return(txUsers)
	factory.EXPECT().FeedbackRepo().Return(txFeedback)

	txUsers.EXPECT().FindByUserID(ctx, "CUS09").Return(&entity.User{UserID: "CUS09", Role: entity.RoleCustomer}, nil)
	txFeedback.EXPECT().DeleteByCustomerID(ctx, "CUS09").Return(3, nil)
	txUsers.EXPECT().DeleteByUserID(ctx, "CUS09").Return(nil)
	runInTx(fx, ctx, factory)

	out, err := fx.service.DeleteUser(ctx, "CUS09")

	require.NoError(t, err)
	assert.Equal(t, int64(3), out.DeletedFeedback)
	assert.Equal(t, entity.RoleCustomer, out.Role)
}

func TestIdentityService_DeleteUser_AbortsWhenFeedbackDeleteFails(t *testing.T) {
	fx := createTestIdentityService(t, true)
	ctx := context.Background()

	factory := mockRepo.NewMockRepositoryFactory(t)
	txUsers := mockRepo.NewMockUserRepository(t)
	txFeedback := mockRepo.NewMockFeedbackRepository(t)
	factory.EXPECT().UserRepo().Return(txUsers)
	factory.EXPECT().FeedbackRepo().Return(txFeedback)

	txUsers.EXPECT().FindByUserID(ctx, "CUS09").Return(&entity.User{UserID: "CUS09", Role: entity.RoleCustomer}, nil)
	txFeedback.EXPECT().DeleteByCustomerID(ctx, "CUS09").Return(0, errors.New("lock timeout"))
	runInTx(fx, ctx, factory)

	_, err := fx.service.DeleteUser(ctx, "CUS09")

	assert.ErrorIs(t, err, domainerrors.ErrTransactionAborted)
}

func TestIdentityService_DeleteUser_AdminSkipsFeedback(t *testing.T) {
	fx := createTestIdentityService(t, true)
	ctx := context.Background()

	factory := mockRepo.NewMockRepositoryFactory(t)
	txUsers := mockRepo.NewMockUserRepository(t)
	factory.EXPECT().UserRepo().Return(txUsers)

	txUsers.EXPECT().FindByUserID(ctx, "AD01").Return(&entity.User{UserID: "AD01", Role: entity.RoleAdmin}, nil)
	txUsers.EXPECT().DeleteByUserID(ctx, "AD01").Return(nil)
	runInTx(fx, ctx, factory)

	out, err := fx.service.DeleteUser(ctx, "AD01")

	require.NoError(t, err)
	assert.Zero(t, out.DeletedFeedback)
}

func TestIdentityService_DeleteUser_NotFound(t *testing.T) {
	fx := createTestIdentityService(t, true)
	ctx := context.Background()

	factory := mockRepo.NewMockRepositoryFactory(t)
	txUsers := mockRepo.NewMockUserRepository(t)
	factory.EXPECT().UserRepo().Return(txUsers)
	txUsers.EXPECT().FindByUserID(ctx, "CUS09").Return(nil, repository.ErrUserNotFound)
	runInTx(fx, ctx, factory)

	_, err := fx.service.DeleteUser(ctx, "CUS09")

	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
	assert.NotErrorIs(t, err, domainerrors.ErrTransactionAborted)
}

func TestIdentityService_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("hashed password", func(t *testing.T) {
		fx := createTestIdentityService(t, true)
		fx.userRepo.EXPECT().FindByCredential(ctx, "alice").Return(&entity.User{
			UserID: "CUS01", UserName: "alice", Password: testHash, Role: entity.RoleCustomer,
		}, nil)
		fx.hasher.EXPECT().IsHashed(testHash).Return(true)
		fx.hasher.EXPECT().Check("secret", testHash).Return(true)
		fx.tokenService.EXPECT().IssueToken("CUS01", "alice", entity.RoleCustomer).Return("signed", nil)

		out, err := fx.service.Login(ctx, &usecase.LoginInput{Credential: "alice", Password: "secret"})

		require.NoError(t, err)
		assert.Equal(t, "signed", out.Token)
		assert.Equal(t, "CUS01", out.Identity.UserID)
	})

	t.Run("legacy plaintext password compares verbatim", func(t *testing.T) {
		fx := createTestIdentityService(t, true)
		fx.userRepo.EXPECT().FindByCredential(ctx, "root").Return(nil, repository.ErrUserNotFound)
		fx.legacyCustomers.EXPECT().FindByCredential(ctx, "root").Return(nil, repository.ErrLegacyRecordNotFound)
		fx.legacyAdmins.EXPECT().FindByCredential(ctx, "root").Return(&entity.LegacyAdmin{
			AID: "AD01", UserName: "root", Password: "toor",
		}, nil)
		fx.hasher.EXPECT().IsHashed("toor").Return(false)
		fx.tokenService.EXPECT().IssueToken("AD01", "root", entity.RoleAdmin).Return("signed", nil)

		out, err := fx.service.Login(ctx, &usecase.LoginInput{Credential: "root", Password: "toor"})

		require.NoError(t, err)
		assert.Equal(t, entity.RoleAdmin, out.Identity.Role)
	})

	t.Run("wrong password and unknown user look the same", func(t *testing.T) {
		fx := createTestIdentityService(t, false)
		fx.userRepo.EXPECT().FindByCredential(ctx, "alice").Return(&entity.User{
			UserID: "CUS01", UserName: "alice", Password: testHash, Role: entity.RoleCustomer,
		}, nil)
		fx.hasher.EXPECT().IsHashed(testHash).Return(true)
		fx.hasher.EXPECT().Check("nope", testHash).Return(false)
		fx.userRepo.EXPECT().FindByCredential(ctx, "ghost").Return(nil, repository.ErrUserNotFound)

		_, wrongPassword := fx.service.Login(ctx, &usecase.LoginInput{Credential: "alice", Password: "nope"})
		_, unknownUser := fx.service.Login(ctx, &usecase.LoginInput{Credential: "ghost", Password: "nope"})

		require.ErrorIs(t, wrongPassword, domainerrors.ErrInvalidCredentials)
		require.ErrorIs(t, unknownUser, domainerrors.ErrInvalidCredentials)
		assert.Equal(t, wrongPassword.Error(), unknownUser.Error())
	})
}
