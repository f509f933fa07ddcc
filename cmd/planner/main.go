package main

import (
	"context"
	"log/slog"
	"os"

	"planner/config"
	"planner/internal/delivery"
	"planner/internal/delivery/api"
	"planner/internal/delivery/api/middleware"
	"planner/internal/delivery/api/router/handler"
	"planner/internal/domain/service"
	"planner/internal/errors"
	"planner/internal/infra/auth"
	"planner/internal/infra/blob"
	"planner/internal/infra/idgen"
	logs "planner/internal/infra/log"
	"planner/internal/infra/metrics"
	"planner/internal/infra/persistence/mongostore"
	"planner/internal/infra/persistence/postgres"
	"planner/internal/usecase/impl"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			migrateSchema,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		metrics.New,
		postgres.New,
		mongostore.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewEventRepository,
			postgres.NewPackageRepository,
			postgres.NewPaymentRepository,
			postgres.NewFeedbackRepository,
			postgres.NewSequenceRepository,
			postgres.NewTransactionManager,
			mongostore.NewLegacyCustomerRepository,
			mongostore.NewLegacyAdminRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			idgen.New,
			blob.New,
			newMetricsRecorder,
		),
	)
}

// newMetricsRecorder exposes the Prometheus metrics to the use cases.
func newMetricsRecorder(m *metrics.Metrics) service.MetricsRecorder {
	return m
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewIdentityService,
			impl.NewCatalogService,
			impl.NewPaymentService,
			impl.NewFeedbackService,
			impl.NewPurchaseService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewMetricsMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewUserHandler,
			handler.NewCatalogHandler,
			handler.NewPaymentHandler,
			handler.NewPurchaseHandler,
			handler.NewFeedbackHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// migrateSchema creates or updates the unified tables before serving.
func migrateSchema(lc fx.Lifecycle, db *gorm.DB) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return errors.Wrap(postgres.AutoMigrate(db.WithContext(ctx)), "failed to migrate schema")
		},
	})
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
