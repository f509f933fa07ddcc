package impl

import (
	"context"
	"log/slog"

	"planner/internal/domain/entity"
	"planner/internal/domain/repository"
	"planner/internal/domain/service"
	"planner/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Migration sources, also used as metric labels.
const (
	sourceCustomers = "customers"
	sourceAdmins    = "admins"
)

type migrationService struct {
	userRepo        repository.UserRepository
	legacyCustomers repository.LegacyCustomerRepository
	legacyAdmins    repository.LegacyAdminRepository
	hasher          service.PasswordHasher
	metrics         service.MetricsRecorder
	logger          *slog.Logger
}

// MigrationServiceParams holds dependencies for MigrationService, injected by Fx.
type MigrationServiceParams struct {
	fx.In

	UserRepo        repository.UserRepository
	LegacyCustomers repository.LegacyCustomerRepository
	LegacyAdmins    repository.LegacyAdminRepository
	Hasher          service.PasswordHasher
	Metrics         service.MetricsRecorder
	Logger          *slog.Logger
}

// NewMigrationService is the constructor for migrationService.
func NewMigrationService(params MigrationServiceParams) usecase.MigrationUsecase {
	return &migrationService{
		userRepo:        params.UserRepo,
		legacyCustomers: params.LegacyCustomers,
		legacyAdmins:    params.LegacyAdmins,
		hasher:          params.Hasher,
		metrics:         params.Metrics,
		logger:          params.Logger,
	}
}

// legacyRecord is one legacy account awaiting import.
type legacyRecord struct {
	id       string
	userName string
	toUser   func() *entity.User
}

// Run imports legacy customers, then legacy admins.
func (srv *migrationService) Run(ctx context.Context) (*usecase.MigrationReport, error) {
	report := &usecase.MigrationReport{}

	customers, undecodable, err := srv.legacyCustomers.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list legacy customers")
	}
	records := make([]legacyRecord, 0, len(customers))
	for _, c := range customers {
		records = append(records, legacyRecord{id: c.CID, userName: c.UserName, toUser: c.ToUser})
	}
	report.Customers = srv.pass(ctx, sourceCustomers, records, undecodable)

	admins, undecodable, err := srv.legacyAdmins.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list legacy admins")
	}
	records = make([]legacyRecord, 0, len(admins))
	for _, a := range admins {
		records = append(records, legacyRecord{id: a.AID, userName: a.UserName, toUser: a.ToUser})
	}
	report.Admins = srv.pass(ctx, sourceAdmins, records, undecodable)

	srv.logger.InfoContext(ctx, "Migration completed",
		slog.Any("customers", report.Customers),
		slog.Any("admins", report.Admins),
	)

	return report, nil
}

// pass imports records one by one. Documents the legacy store could not
// decode count as failed records of the pass.
func (srv *migrationService) pass(
	ctx context.Context,
	source string,
	records []legacyRecord,
	undecodable []repository.UndecodableRecord,
) usecase.MigrationPass {
	result := usecase.MigrationPass{Total: len(records) + len(undecodable)}

	for _, u := range undecodable {
		srv.logger.WarnContext(ctx, "Legacy record not migrated",
			slog.String("source", source),
			slog.String("legacyId", u.ID),
			slog.Any("error", u.Err),
		)
		result.Failed++
		srv.metrics.MigrationRecord(source, service.MigrationFailed)
	}

	for _, record := range records {
		logger := srv.logger.With(slog.String("source", source), slog.String("legacyId", record.id))

		created, err := srv.importRecord(ctx, record)
		switch {
		case err != nil:
			logger.WarnContext(ctx, "Legacy record not migrated", slog.Any("error", err))
			result.Failed++
			srv.metrics.MigrationRecord(source, service.MigrationFailed)
		case created:
			logger.InfoContext(ctx, "Legacy record migrated")
			result.Created++
			srv.metrics.MigrationRecord(source, service.MigrationCreated)
		default:
			logger.InfoContext(ctx, "Legacy record already present, skipping")
			result.Skipped++
			srv.metrics.MigrationRecord(source, service.MigrationSkipped)
		}
	}

	return result
}

// importRecord creates the unified user unless one already holds the id or the user name.
func (srv *migrationService) importRecord(ctx context.Context, record legacyRecord) (bool, error) {
	_, err := srv.userRepo.FindByUserIDOrUserName(ctx, record.id, record.userName)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return false, errors.Wrap(err, "failed to look up unified user")
	}

	user := record.toUser()
	if missing := user.Validate(); len(missing) > 0 {
		return false, errors.Errorf("legacy record is missing %v", missing)
	}

	if !srv.hasher.IsHashed(user.Password) {
		hashed, err := srv.hasher.Hash(user.Password)
		if err != nil {
			return false, errors.Wrap(err, "failed to hash legacy password")
		}
		user.Password = hashed
	}

	if err := srv.userRepo.Create(ctx, user); err != nil {
		return false, errors.Wrap(err, "failed to create unified user")
	}

	return true, nil
}
