package postgres

import (
	"context"

	"planner/internal/domain/entity"
	"planner/internal/domain/repository"
	"planner/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// sequenceColumn locates the business key column of a key family.
type sequenceColumn struct {
	model  any
	column string
}

var sequenceColumns = map[entity.IDKind]sequenceColumn{
	entity.IDKindCustomer: {model: &model.UserModel{}, column: "user_id"},
	entity.IDKindAdmin:    {model: &model.UserModel{}, column: "user_id"},
	entity.IDKindEvent:    {model: &model.EventModel{}, column: "e_id"},
	entity.IDKindPackage:  {model: &model.PackageModel{}, column: "pg_id"},
	entity.IDKindPayment:  {model: &model.PaymentModel{}, column: "p_id"},
}

type sequenceRepository struct {
	db *gorm.DB
}

// NewSequenceRepository creates a repository reading the highest business keys.
func NewSequenceRepository(db *gorm.DB) repository.SequenceRepository {
	return &sequenceRepository{db: db}
}

// MaxBusinessID orders by length then value so that numeric suffixes compare correctly.
func (repo *sequenceRepository) MaxBusinessID(ctx context.Context, kind entity.IDKind) (string, error) {
	format, ok := kind.Format()
	if !ok {
		return "", errors.Errorf("unknown id kind %q", kind)
	}
	col, ok := sequenceColumns[kind]
	if !ok {
		return "", errors.Errorf("no sequence column for id kind %q", kind)
	}

	var ids []string
	err := repo.db.WithContext(ctx).
		Model(col.model).
		Where(col.column+" LIKE ?", format.Prefix+"%").
		Order("LENGTH("+col.column+") DESC, "+col.column+" DESC").
		Limit(1).
		Pluck(col.column, &ids).Error
	if err != nil {
		return "", errors.Wrapf(err, "failed to read max %s id", kind)
	}
	if len(ids) == 0 {
		return "", nil
	}

	return ids[0], nil
}
