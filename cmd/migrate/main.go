// Command migrate copies legacy customers and admins into the unified users
// table and exits. Running it again is safe.
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"planner/config"
	"planner/internal/domain/service"
	"planner/internal/infra/auth"
	logs "planner/internal/infra/log"
	"planner/internal/infra/metrics"
	"planner/internal/infra/persistence/mongostore"
	"planner/internal/infra/persistence/postgres"
	"planner/internal/usecase"
	"planner/internal/usecase/impl"
	"planner/internal/util"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

type runParams struct {
	fx.In

	Lifecycle  fx.Lifecycle
	Shutdowner fx.Shutdowner
	DB         *gorm.DB
	Migration  usecase.MigrationUsecase
	Logger     *slog.Logger
}

func main() {
	app := fx.New(
		fx.Provide(
			config.New,
			logs.New,
			metrics.New,
			postgres.New,
			mongostore.New,
			postgres.NewUserRepository,
			mongostore.NewLegacyCustomerRepository,
			mongostore.NewLegacyAdminRepository,
			auth.NewBcryptHasher,
			func(m *metrics.Metrics) service.MetricsRecorder { return m },
			impl.NewMigrationService,
		),
		fx.Invoke(run),
	)

	if err := app.Err(); err != nil {
		slog.Error("Failed to build migration", slog.Any("error", err))
		os.Exit(1)
	}

	app.Run()
}

// run migrates the schema, then the legacy records, then stops the app with
// a non-zero exit code on failure.
func run(params runParams) {
	params.Lifecycle.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				code := 0
				if err := migrate(context.Background(), params); err != nil {
					params.Logger.Error("Migration failed", slog.Any("error", err))
					code = 1
				}
				_ = params.Shutdowner.Shutdown(fx.ExitCode(code))
			}()

			return nil
		},
	})
}

func migrate(ctx context.Context, params runParams) error {
	start := time.Now()

	if err := postgres.AutoMigrate(params.DB.WithContext(ctx)); err != nil {
		return err
	}

	report, err := params.Migration.Run(ctx)
	if err != nil {
		return err
	}

	params.Logger.Info("Migration finished",
		slog.Any("customers", report.Customers),
		slog.Any("admins", report.Admins),
		slog.String("elapsed", util.FormatDuration(time.Since(start))),
	)

	return nil
}
