// Package mongostore reads the legacy customers and admins collections.
//
// The collections are kept read-only: they feed the one-off migration into the
// unified users table and the transitional lookup fallback.
package mongostore

import (
	"context"
	"log/slog"
	"time"

	"planner/config"
	"planner/internal/domain/lifecycle"
	"planner/internal/errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.uber.org/fx"
)

// Collection names of the legacy store.
const (
	ColCustomers = "customers"
	ColAdmins    = "admins"
)

const disconnectTimeout = 5 * time.Second

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// Store wraps the legacy database handle. A Store without a database
// behaves as an empty legacy store.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
	logger *slog.Logger
}

// New connects to the legacy store. When no URI is configured it returns an
// empty Store so that deployments without legacy data need no MongoDB.
func New(params Params) (*Store, error) {
	cfg := params.Config.Mongo
	if cfg == nil || cfg.URI == "" {
		params.Logger.Info("Legacy store not configured, legacy lookups disabled")

		return &Store{logger: params.Logger}, nil
	}

	client, err := mongo.Connect(options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create MongoDB client")
	}

	store := &Store{
		client: client,
		db:     client.Database(cfg.Database),
		logger: params.Logger,
	}

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			return store.Ping(ctx)
		},
		OnStop: func(_ context.Context) error {
			return store.Close()
		},
	})

	return store, nil
}

// NewStoreFromDatabase wraps an existing database handle.
func NewStoreFromDatabase(db *mongo.Database, logger *slog.Logger) *Store {
	return &Store{db: db, logger: logger}
}

// Enabled reports whether a legacy database is attached.
func (s *Store) Enabled() bool {
	return s != nil && s.db != nil
}

// Ping verifies connectivity and ensures the lookup indexes exist.
func (s *Store) Ping(ctx context.Context) error {
	if !s.Enabled() {
		return nil
	}

	if err := s.client.Ping(ctx, nil); err != nil {
		return errors.Wrap(err, "failed to ping MongoDB")
	}

	// Index creation failure only slows lookups down.
	if err := s.ensureIndexes(ctx); err != nil {
		s.logger.WarnContext(ctx, "Failed to ensure legacy indexes", slog.Any("error", err))
	}

	return nil
}

// Close disconnects from MongoDB.
func (s *Store) Close() error {
	if s.client == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), disconnectTimeout)
	defer cancel()

	return s.client.Disconnect(ctx)
}

func (s *Store) col(name string) *mongo.Collection {
	return s.db.Collection(name)
}

// ensureIndexes creates the non-unique lookup indexes. Legacy data may hold
// duplicates, so uniqueness is enforced only in the unified store.
func (s *Store) ensureIndexes(ctx context.Context) error {
	type idx struct {
		col  string
		keys bson.D
	}

	indexes := []idx{
		{ColCustomers, bson.D{{Key: fieldCustomerID, Value: 1}}},
		{ColCustomers, bson.D{{Key: fieldUserName, Value: 1}}},
		{ColAdmins, bson.D{{Key: fieldAdminID, Value: 1}}},
		{ColAdmins, bson.D{{Key: fieldUserName, Value: 1}}},
	}

	for _, ix := range indexes {
		model := mongo.IndexModel{Keys: ix.keys}
		if _, err := s.col(ix.col).Indexes().CreateOne(ctx, model); err != nil {
			return errors.Wrapf(err, "create index on %s", ix.col)
		}
	}

	return nil
}
