package impl

import (
	"context"
	"log/slog"
	"strings"

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

type catalogService struct {
	eventRepo   repository.EventRepository
	packageRepo repository.PackageRepository
	keys        keyIssuer
	logger      *slog.Logger
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	EventRepo   repository.EventRepository
	PackageRepo repository.PackageRepository
	IDGenerator service.IDGenerator
	Config      *config.Config
	Logger      *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		eventRepo:   params.EventRepo,
		packageRepo: params.PackageRepo,
		keys:        newKeyIssuer(params.IDGenerator, params.Config),
		logger:      params.Logger,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *catalogService) CreateEvent(ctx context.Context, input *usecase.CreateEventInput) (*entity.Event, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, domainerrors.ErrValidationFailed.WithFields("E_name")
	}

	event := &entity.Event{
		Name:        input.Name,
		Description: input.Description,
		Status:      input.Status,
	}
	if event.Status == "" {
		event.Status = entity.DefaultEventStatus
	}

	eid, err := srv.keys.create(ctx, entity.IDKindEvent, input.EID, domainerrors.ErrConflict, func(key string) error {
		event.EID = key

		return srv.eventRepo.Create(ctx, event)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create event")
	}

	srv.log(ctx).Info("Event created", slog.String("eventId", eid))

	return event, nil
}

func (srv *catalogService) GetEvent(ctx context.Context, eventID string) (*entity.Event, error) {
	event, err := srv.eventRepo.FindByEID(ctx, eventID)
	if errors.Is(err, repository.ErrEventNotFound) {
		return nil, domainerrors.ErrEventNotFound.WithDetails(eventID)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find event")
	}

	return event, nil
}

func (srv *catalogService) ListEvents(ctx context.Context) ([]*entity.Event, error) {
	events, err := srv.eventRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list events")
	}

	return events, nil
}

func (srv *catalogService) UpdateEvent(ctx context.Context, eventID string, input *usecase.UpdateEventInput) (*entity.Event, error) {
	event, err := srv.GetEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		if strings.TrimSpace(*input.Name) == "" {
			return nil, domainerrors.ErrValidationFailed.WithFields("E_name")
		}
		event.Name = *input.Name
	}
	if input.Description != nil {
		event.Description = *input.Description
	}
	if input.Status != nil {
		event.Status = *input.Status
		if event.Status == "" {
			event.Status = entity.DefaultEventStatus
		}
	}

	if err := srv.eventRepo.Update(ctx, event); err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return nil, domainerrors.ErrEventNotFound.WithDetails(eventID)
		}

		return nil, errors.Wrap(err, "failed to update event")
	}

	return event, nil
}

// CreatePackage adds a package to an existing event.
func (srv *catalogService) CreatePackage(ctx context.Context, input *usecase.CreatePackageInput) (*entity.Package, error) {
	var missing []string
	if input.Price < 0 {
		missing = append(missing, "Pg_price")
	}
	if strings.TrimSpace(input.EventID) == "" {
		missing = append(missing, "event")
	}
	if len(missing) > 0 {
		return nil, domainerrors.ErrValidationFailed.WithFields(missing...)
	}

	if _, err := srv.GetEvent(ctx, input.EventID); err != nil {
		return nil, err
	}

	pkg := &entity.Package{Price: input.Price, EventID: input.EventID}
	pgID, err := srv.keys.create(ctx, entity.IDKindPackage, input.PgID, domainerrors.ErrConflict, func(key string) error {
		pkg.PgID = key

		return srv.packageRepo.Create(ctx, pkg)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create package")
	}

	srv.log(ctx).Info("Package created", slog.String("packageId", pgID), slog.String("eventId", input.EventID))

	return pkg, nil
}

func (srv *catalogService) GetPackage(ctx context.Context, packageID string) (*entity.Package, error) {
	pkg, err := srv.packageRepo.FindByPgID(ctx, packageID)
	if errors.Is(err, repository.ErrPackageNotFound) {
		return nil, domainerrors.ErrPackageNotFound.WithDetails(packageID)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find package")
	}

	return pkg, nil
}

func (srv *catalogService) ListPackages(ctx context.Context, eventID string) ([]*entity.Package, error) {
	pkgs, err := srv.packageRepo.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list packages")
	}

	return pkgs, nil
}
