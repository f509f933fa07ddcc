// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"crypto/subtle"
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

// identityService implements the IdentityUsecase interface.
type identityService struct {
	txManager       repository.TransactionManager
	userRepo        repository.UserRepository
	legacyCustomers repository.LegacyCustomerRepository
	legacyAdmins    repository.LegacyAdminRepository
	hasher          service.PasswordHasher
	tokenService    service.TokenService
	keys            keyIssuer
	fallbackEnabled bool
	logger          *slog.Logger
}

// IdentityServiceParams holds dependencies for IdentityService, injected by Fx.
type IdentityServiceParams struct {
	fx.In

	TxManager       repository.TransactionManager
	UserRepo        repository.UserRepository
	LegacyCustomers repository.LegacyCustomerRepository
	LegacyAdmins    repository.LegacyAdminRepository
	Hasher          service.PasswordHasher
	TokenService    service.TokenService
	IDGenerator     service.IDGenerator
	Config          *config.Config
	Logger          *slog.Logger
}

// NewIdentityService is the constructor for identityService.
func NewIdentityService(params IdentityServiceParams) usecase.IdentityUsecase {
	return &identityService{
		txManager:       params.TxManager,
		userRepo:        params.UserRepo,
		legacyCustomers: params.LegacyCustomers,
		legacyAdmins:    params.LegacyAdmins,
		hasher:          params.Hasher,
		tokenService:    params.TokenService,
		keys:            newKeyIssuer(params.IDGenerator, params.Config),
		fallbackEnabled: legacyFallbackEnabled(params.Config),
		logger:          params.Logger,
	}
}

func legacyFallbackEnabled(cfg *config.Config) bool {
	return cfg != nil && cfg.Legacy != nil && cfg.Legacy.FallbackEnabled
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *identityService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// account is a resolved identity together with its stored password value.
type account struct {
	identity *entity.Identity
	password string
}

// resolve walks the lookup chain: unified users, legacy customers, legacy admins.
// A user id present in both legacy collections resolves to the customer.
func (srv *identityService) resolve(ctx context.Context, credential string) (*account, error) {
	user, err := srv.userRepo.FindByCredential(ctx, credential)
	if err == nil {
		return &account{identity: entity.IdentityFromUser(user), password: user.Password}, nil
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to find unified user")
	}

	if !srv.fallbackEnabled {
		return nil, domainerrors.ErrUserNotFound
	}

	customer, err := srv.legacyCustomers.FindByCredential(ctx, credential)
	if err == nil {
		srv.log(ctx).Debug("Resolved identity from legacy customers", slog.String("userId", customer.CID))

		return &account{identity: entity.IdentityFromLegacyCustomer(customer), password: customer.Password}, nil
	}
	if !errors.Is(err, repository.ErrLegacyRecordNotFound) {
		return nil, errors.Wrap(err, "failed to find legacy customer")
	}

	admin, err := srv.legacyAdmins.FindByCredential(ctx, credential)
	if err == nil {
		srv.log(ctx).Debug("Resolved identity from legacy admins", slog.String("userId", admin.AID))

		return &account{identity: entity.IdentityFromLegacyAdmin(admin), password: admin.Password}, nil
	}
	if !errors.Is(err, repository.ErrLegacyRecordNotFound) {
		return nil, errors.Wrap(err, "failed to find legacy admin")
	}

	return nil, domainerrors.ErrUserNotFound
}

// FindUserByCredential resolves a user name or user id across every identity store.
func (srv *identityService) FindUserByCredential(ctx context.Context, credential string) (*entity.Identity, error) {
	acc, err := srv.resolve(ctx, credential)
	if err != nil {
		return nil, err
	}

	return acc.identity, nil
}

// GetUser resolves a user id, falling back to the legacy customers.
func (srv *identityService) GetUser(ctx context.Context, userID string) (*entity.Identity, error) {
	user, err := srv.userRepo.FindByUserID(ctx, userID)
	if err == nil {
		return entity.IdentityFromUser(user), nil
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to find user")
	}

	if srv.fallbackEnabled {
		customer, err := srv.legacyCustomers.FindByCID(ctx, userID)
		if err == nil {
			return entity.IdentityFromLegacyCustomer(customer), nil
		}
		if !errors.Is(err, repository.ErrLegacyRecordNotFound) {
			return nil, errors.Wrap(err, "failed to find legacy customer")
		}
	}

	return nil, domainerrors.ErrUserNotFound.WithDetails(userID)
}

// ListUsers lists unified users. Legacy records are only listed through the migration.
func (srv *identityService) ListUsers(ctx context.Context, role entity.Role) ([]*entity.Identity, error) {
	if role != "" && !role.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithFields("role")
	}

	users, err := srv.userRepo.List(ctx, role)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	identities := make([]*entity.Identity, 0, len(users))
	for _, user := range users {
		identities = append(identities, entity.IdentityFromUser(user))
	}

	return identities, nil
}

// CreateUser validates, hashes and persists a new unified user.
func (srv *identityService) CreateUser(ctx context.Context, input *usecase.CreateUserInput) (*entity.User, error) {
	if !input.Role.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithFields("role")
	}

	user := &entity.User{
		UserID:    input.UserID,
		UserName:  input.UserName,
		Password:  input.Password,
		PhoneNo:   input.PhoneNo,
		Role:      input.Role,
		FirstName: input.FirstName,
		LastName:  input.LastName,
	}

	missing := user.Validate()
	if input.UserID == "" {
		missing = without(missing, "userId")
	}
	if len(missing) > 0 {
		return nil, domainerrors.ErrValidationFailed.WithFields(missing...)
	}

	existing, err := srv.userRepo.FindByUserIDOrUserName(ctx, input.UserID, input.UserName)
	if err == nil {
		return nil, conflictFor(existing, input.UserID, input.UserName)
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to check user uniqueness")
	}

	if err := srv.hashIfPlain(user); err != nil {
		return nil, err
	}

	userID, err := srv.keys.create(ctx, entity.IDKindForRole(user.Role), input.UserID, domainerrors.ErrUserAlreadyExists,
		func(key string) error {
			user.UserID = key

			return srv.userRepo.Create(ctx, user)
		})
	if err != nil {
		srv.log(ctx).Warn("Failed to create user", slog.String("userName", input.UserName), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create user")
	}

	srv.log(ctx).Info("User created", slog.String("userId", userID), slog.String("role", user.Role.String()))

	return user, nil
}

func conflictFor(existing *entity.User, userID, userName string) error {
	if userID != "" && existing.UserID == userID {
		return domainerrors.ErrUserAlreadyExists.WithFields("userId")
	}

	return domainerrors.ErrUserAlreadyExists.WithFields("userName")
}

// hashIfPlain hashes the password unless it already is a hash.
func (srv *identityService) hashIfPlain(user *entity.User) error {
	if srv.hasher.IsHashed(user.Password) {
		return nil
	}

	hashed, err := srv.hasher.Hash(user.Password)
	if err != nil {
		return errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}
	user.Password = hashed

	return nil
}

// UpdateUser applies a partial update to a unified user.
func (srv *identityService) UpdateUser(ctx context.Context, userID string, input *usecase.UpdateUserInput) (*entity.User, error) {
	user, err := srv.userRepo.FindByUserID(ctx, userID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrUserNotFound.WithDetails(userID)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user for update")
	}

	if input.FirstName == nil && input.LastName == nil && input.Name != nil {
		user.FirstName, user.LastName = entity.SplitLegacyName(*input.Name)
	}
	if input.FirstName != nil {
		user.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		user.LastName = *input.LastName
	}
	if input.UserName != nil {
		user.UserName = *input.UserName
	}
	if input.PhoneNo != nil {
		user.PhoneNo = *input.PhoneNo
	}
	if input.Password != nil && *input.Password != "" {
		user.Password = *input.Password
		if err := srv.hashIfPlain(user); err != nil {
			return nil, err
		}
	}

	if missing := user.Validate(); len(missing) > 0 {
		return nil, domainerrors.ErrValidationFailed.WithFields(missing...)
	}

	if err := srv.userRepo.Update(ctx, user); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WithDetails(userID)
		}

		return nil, errors.Wrap(err, "failed to update user")
	}

	return user, nil
}

// DeleteUser removes a user. For customers the feedback rows go in the same transaction.
func (srv *identityService) DeleteUser(ctx context.Context, userID string) (*usecase.DeleteUserOutput, error) {
	output := &usecase.DeleteUserOutput{UserID: userID}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := userRepo.FindByUserID(ctx, userID)
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound.WithDetails(userID)
		}
		if err != nil {
			return errors.Wrap(err, "failed to find user for delete")
		}
		output.Role = user.Role

		if user.Role == entity.RoleCustomer {
			deleted, err := repoFactory.FeedbackRepo().DeleteByCustomerID(ctx, userID)
			if err != nil {
				return errors.Wrap(err, "failed to delete customer feedback")
			}
			output.DeletedFeedback = deleted
		}

		if err := userRepo.DeleteByUserID(ctx, userID); err != nil {
			return errors.Wrap(err, "failed to delete user")
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrUserNotFound) {
			return nil, err
		}
		srv.log(ctx).Error("Delete user transaction rolled back", slog.String("userId", userID), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrTransactionAborted, err.Error())
	}

	srv.log(ctx).Info("User deleted",
		slog.String("userId", userID),
		slog.String("role", output.Role.String()),
		slog.Int64("deletedFeedback", output.DeletedFeedback),
	)

	return output, nil
}

// Login verifies the credential and issues a token. Unknown users and wrong
// passwords fail with the same error.
func (srv *identityService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	acc, err := srv.resolve(ctx, input.Credential)
	if errors.Is(err, domainerrors.ErrUserNotFound) {
		srv.log(ctx).Info("Login with unknown credential")

		return nil, domainerrors.ErrInvalidCredentials
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve login credential")
	}

	if !srv.passwordMatches(input.Password, acc.password) {
		srv.log(ctx).Info("Login with wrong password", slog.String("userId", acc.identity.UserID))

		return nil, domainerrors.ErrInvalidCredentials
	}

	token, err := srv.tokenService.IssueToken(acc.identity.UserID, acc.identity.UserName, acc.identity.Role)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue token")
	}

	return &usecase.LoginOutput{Token: token, Identity: acc.identity}, nil
}

// passwordMatches compares against a hash, or verbatim for legacy plaintext.
func (srv *identityService) passwordMatches(password, stored string) bool {
	if stored == "" {
		return false
	}
	if srv.hasher.IsHashed(stored) {
		return srv.hasher.Check(password, stored)
	}

	return subtle.ConstantTimeCompare([]byte(password), []byte(stored)) == 1
}
