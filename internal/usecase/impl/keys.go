package impl

import (
	"context"

	"planner/config"
	"planner/internal/domain/entity"
	domainerrors "planner/internal/domain/errors"
	"planner/internal/domain/service"

	"github.com/pkg/errors"
)

const defaultKeyAttempts = 3

// keyIssuer assigns business keys and retries creates that lose a key race
// against a concurrent writer.
type keyIssuer struct {
	ids         service.IDGenerator
	maxAttempts int
}

func newKeyIssuer(ids service.IDGenerator, cfg *config.Config) keyIssuer {
	attempts := defaultKeyAttempts
	if cfg != nil && cfg.IDs != nil && cfg.IDs.MaxAttempts > 0 {
		attempts = cfg.IDs.MaxAttempts
	}

	return keyIssuer{ids: ids, maxAttempts: attempts}
}

// create calls fn with explicit when it is set, otherwise with freshly
// generated keys until fn stops failing with conflict.
func (k keyIssuer) create(
	ctx context.Context,
	kind entity.IDKind,
	explicit string,
	conflict *domainerrors.BaseError,
	fn func(key string) error,
) (string, error) {
	if explicit != "" {
		return explicit, fn(explicit)
	}

	var err error
	for range k.maxAttempts {
		key, genErr := k.ids.Next(ctx, kind)
		if genErr != nil {
			return "", errors.Wrapf(genErr, "failed to generate %s id", kind)
		}

		err = fn(key)
		if err == nil || !errors.Is(err, conflict) {
			return key, err
		}
	}

	return "", errors.Wrapf(err, "no free %s id after %d attempts", kind, k.maxAttempts)
}
