// Package idgen issues human-readable business keys such as CUS01 or PAY001.
package idgen

import (
	"context"
	"log/slog"

	"planner/config"
	"planner/internal/domain/entity"
	"planner/internal/domain/lifecycle"
	"planner/internal/domain/repository"
	"planner/internal/domain/service"
	"planner/internal/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config    *config.Config
	Logger    *slog.Logger
	Sequences repository.SequenceRepository
}

// New selects the generator configured by ids.strategy.
func New(params Params) (service.IDGenerator, error) {
	strategy := config.IDStrategyMax
	if params.Config.IDs != nil && params.Config.IDs.Strategy != "" {
		strategy = params.Config.IDs.Strategy
	}

	switch strategy {
	case config.IDStrategyMax:
		return NewMaxGenerator(params.Sequences), nil
	case config.IDStrategyCounter:
		if params.Config.Redis == nil || params.Config.Redis.Addr == "" {
			return nil, errors.New("redis.addr is required for the counter id strategy")
		}

		client := redis.NewClient(&redis.Options{
			Addr:     params.Config.Redis.Addr,
			Password: params.Config.Redis.Password,
			DB:       params.Config.Redis.DB,
		})

		params.Append(fx.Hook{
			OnStart: func(startCtx context.Context) error {
				ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
				defer cancel()

				if err := client.Ping(ctx).Err(); err != nil {
					return errors.Wrap(err, "failed to ping Redis")
				}
				params.Logger.Info("Counter id strategy enabled", slog.String("addr", params.Config.Redis.Addr))

				return nil
			},
			OnStop: func(_ context.Context) error {
				return client.Close()
			},
		})

		return NewCounterGenerator(client, params.Sequences, params.Config.Redis.KeyPrefix), nil
	default:
		return nil, errors.Errorf("unknown id strategy %q", strategy)
	}
}

// maxGenerator derives the next key from the current maximum. Two concurrent
// callers can read the same maximum; the unique index rejects the loser,
// which then retries.
type maxGenerator struct {
	sequences repository.SequenceRepository
}

// NewMaxGenerator creates a read-max generator.
func NewMaxGenerator(sequences repository.SequenceRepository) service.IDGenerator {
	return &maxGenerator{sequences: sequences}
}

func (g *maxGenerator) Next(ctx context.Context, kind entity.IDKind) (string, error) {
	format, ok := kind.Format()
	if !ok {
		return "", errors.Errorf("unknown id kind %q", kind)
	}

	current, err := g.sequences.MaxBusinessID(ctx, kind)
	if err != nil {
		return "", err
	}

	next, err := format.Next(current)
	if err != nil {
		return "", errors.Wrapf(err, "failed to derive next %s id", kind)
	}

	return next, nil
}

const (
	defaultKeyPrefix = "planner:ids"
)

// counterGenerator hands out keys from a redis INCR counter per kind. The
// counter is seeded once from the table maximum so it continues existing data.
type counterGenerator struct {
	client    redis.UniversalClient
	sequences repository.SequenceRepository
	keyPrefix string
}

// NewCounterGenerator creates an atomic counter generator.
func NewCounterGenerator(client redis.UniversalClient, sequences repository.SequenceRepository, keyPrefix string) service.IDGenerator {
	if keyPrefix == "" {
		keyPrefix = defaultKeyPrefix
	}

	return &counterGenerator{client: client, sequences: sequences, keyPrefix: keyPrefix}
}

func (g *counterGenerator) Next(ctx context.Context, kind entity.IDKind) (string, error) {
	format, ok := kind.Format()
	if !ok {
		return "", errors.Errorf("unknown id kind %q", kind)
	}

	key := g.keyPrefix + ":" + string(kind)

	if err := g.seed(ctx, key, kind, format); err != nil {
		return "", err
	}

	n, err := g.client.Incr(ctx, key).Result()
	if err != nil {
		return "", errors.Wrapf(err, "failed to increment %s counter", kind)
	}

	return format.Format(n), nil
}

// seed initializes a missing counter with the numeric suffix of the table maximum.
// SETNX lets exactly one concurrent caller win.
func (g *counterGenerator) seed(ctx context.Context, key string, kind entity.IDKind, format entity.IDFormat) error {
	exists, err := g.client.Exists(ctx, key).Result()
	if err != nil {
		return errors.Wrapf(err, "failed to check %s counter", kind)
	}
	if exists > 0 {
		return nil
	}

	current, err := g.sequences.MaxBusinessID(ctx, kind)
	if err != nil {
		return err
	}

	var start int64
	if current != "" {
		if start, err = format.Parse(current); err != nil {
			return errors.Wrapf(err, "failed to seed %s counter", kind)
		}
	}

	if err := g.client.SetNX(ctx, key, start, 0).Err(); err != nil {
		return errors.Wrapf(err, "failed to seed %s counter", kind)
	}

	return nil
}
