package postgres

import (
	"context"

	"planner/internal/domain/entity"
	domainerrors "planner/internal/domain/errors"
	"planner/internal/domain/repository"
	"planner/internal/errors"
	"planner/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type packageRepository struct {
	db *gorm.DB
}

// NewPackageRepository creates a GORM-backed package repository.
func NewPackageRepository(db *gorm.DB) repository.PackageRepository {
	return &packageRepository{db: db}
}

func (repo *packageRepository) FindByPgID(ctx context.Context, pgID string) (*entity.Package, error) {
	var pkgM model.PackageModel
	if err := repo.db.WithContext(ctx).Where("pg_id = ?", pgID).First(&pkgM).Error; err != nil {
		return nil, errors.Translate(err, gorm.ErrRecordNotFound, repository.ErrPackageNotFound, "failed to find package")
	}

	return toPackageDomain(&pkgM), nil
}

func (repo *packageRepository) ListByEvent(ctx context.Context, eventID string) ([]*entity.Package, error) {
	tx := repo.db.WithContext(ctx).Order("LENGTH(pg_id), pg_id")
	if eventID != "" {
		tx = tx.Where("event_id = ?", eventID)
	}

	var pkgMs []*model.PackageModel
	if err := tx.Find(&pkgMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list packages")
	}

	pkgs := make([]*entity.Package, 0, len(pkgMs))
	for _, pkgM := range pkgMs {
		pkgs = append(pkgs, toPackageDomain(pkgM))
	}

	return pkgs, nil
}

func (repo *packageRepository) Create(ctx context.Context, pkg *entity.Package) error {
	pkgM := fromPackageDomain(pkg)
	if pkgM.ID == uuid.Nil {
		pkgM.ID = uuid.New()
	}

	if err := repo.db.WithContext(ctx).Create(pkgM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("package id already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create package")
	}

	pkg.ID = pkgM.ID
	pkg.CreatedAt = pkgM.CreatedAt
	pkg.UpdatedAt = pkgM.UpdatedAt

	return nil
}

func toPackageDomain(data *model.PackageModel) *entity.Package {
	if data == nil {
		return nil
	}

	return &entity.Package{
		ID:        data.ID,
		PgID:      data.PgID,
		Price:     data.Price,
		EventID:   data.EventID,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromPackageDomain(data *entity.Package) *model.PackageModel {
	if data == nil {
		return nil
	}

	return &model.PackageModel{
		ID:        data.ID,
		PgID:      data.PgID,
		Price:     data.Price,
		EventID:   data.EventID,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
