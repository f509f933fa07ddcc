package service

import (
	"context"

	"planner/internal/domain/entity"
)

// IDGenerator issues the next human-readable business key of a family.
type IDGenerator interface {
	Next(ctx context.Context, kind entity.IDKind) (string, error)
}
