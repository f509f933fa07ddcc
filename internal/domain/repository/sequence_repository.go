package repository

import (
	"context"

	"planner/internal/domain/entity"
)

// SequenceRepository reads the current highest business key of a family.
type SequenceRepository interface {
	// MaxBusinessID returns the highest existing key of the kind, or "" when none exist.
	// Keys are compared by length first, then lexically, so "PAY1000" sorts after "PAY999".
	MaxBusinessID(ctx context.Context, kind entity.IDKind) (string, error)
}
