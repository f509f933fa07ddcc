package mongostore

import (
	"context"

	"planner/internal/domain/entity"
	"planner/internal/domain/repository"
	"planner/internal/errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type legacyCustomerRepository struct {
	store *Store
}

// NewLegacyCustomerRepository creates a read-only repository over the customers collection.
func NewLegacyCustomerRepository(store *Store) repository.LegacyCustomerRepository {
	return &legacyCustomerRepository{store: store}
}

func (repo *legacyCustomerRepository) FindByCID(ctx context.Context, cid string) (*entity.LegacyCustomer, error) {
	return repo.findOne(ctx, bson.D{{Key: fieldCustomerID, Value: cid}})
}

func (repo *legacyCustomerRepository) FindByCredential(ctx context.Context, value string) (*entity.LegacyCustomer, error) {
	return repo.findOne(ctx, credentialFilter(fieldCustomerID, value))
}

func (repo *legacyCustomerRepository) findOne(ctx context.Context, filter bson.D) (*entity.LegacyCustomer, error) {
	if !repo.store.Enabled() {
		return nil, repository.ErrLegacyRecordNotFound
	}

	doc, err := findOne[legacyCustomerDocument](ctx, repo.store.col(ColCustomers), filter,
		options.FindOne().SetSort(insertionOrder()))
	if err != nil {
		return nil, errors.Wrap(err, "failed to find legacy customer")
	}
	if doc == nil {
		return nil, repository.ErrLegacyRecordNotFound
	}

	return doc.toDomain(), nil
}

func (repo *legacyCustomerRepository) List(ctx context.Context) ([]*entity.LegacyCustomer, []repository.UndecodableRecord, error) {
	if !repo.store.Enabled() {
		return []*entity.LegacyCustomer{}, nil, nil
	}

	docs, undecodable, err := findMany[legacyCustomerDocument](ctx, repo.store.col(ColCustomers), bson.D{}, fieldCustomerID,
		options.Find().SetSort(insertionOrder()))
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to list legacy customers")
	}

	customers := make([]*entity.LegacyCustomer, 0, len(docs))
	for _, doc := range docs {
		customers = append(customers, doc.toDomain())
	}

	return customers, undecodable, nil
}

type legacyAdminRepository struct {
	store *Store
}

// NewLegacyAdminRepository creates a read-only repository over the admins collection.
func NewLegacyAdminRepository(store *Store) repository.LegacyAdminRepository {
	return &legacyAdminRepository{store: store}
}

func (repo *legacyAdminRepository) FindByCredential(ctx context.Context, value string) (*entity.LegacyAdmin, error) {
	if !repo.store.Enabled() {
		return nil, repository.ErrLegacyRecordNotFound
	}

	doc, err := findOne[legacyAdminDocument](ctx, repo.store.col(ColAdmins), credentialFilter(fieldAdminID, value),
		options.FindOne().SetSort(insertionOrder()))
	if err != nil {
		return nil, errors.Wrap(err, "failed to find legacy admin")
	}
	if doc == nil {
		return nil, repository.ErrLegacyRecordNotFound
	}

	return doc.toDomain(), nil
}

func (repo *legacyAdminRepository) List(ctx context.Context) ([]*entity.LegacyAdmin, []repository.UndecodableRecord, error) {
	if !repo.store.Enabled() {
		return []*entity.LegacyAdmin{}, nil, nil
	}

	docs, undecodable, err := findMany[legacyAdminDocument](ctx, repo.store.col(ColAdmins), bson.D{}, fieldAdminID,
		options.Find().SetSort(insertionOrder()))
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to list legacy admins")
	}

	admins := make([]*entity.LegacyAdmin, 0, len(docs))
	for _, doc := range docs {
		admins = append(admins, doc.toDomain())
	}

	return admins, undecodable, nil
}
