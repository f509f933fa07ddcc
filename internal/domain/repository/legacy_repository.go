package repository

import (
	"context"
	"errors"

	"planner/internal/domain/entity"
)

// ErrLegacyRecordNotFound is returned when a legacy customer or admin does not exist.
var ErrLegacyRecordNotFound = errors.New("legacy record not found")

// UndecodableRecord is a legacy document that could not be read into its
// domain shape, e.g. a phoneNo stored as a number.
type UndecodableRecord struct {
	// ID is the legacy business id when readable, otherwise the document _id.
	ID  string
	Err error
}

// LegacyCustomerRepository reads the deprecated customers collection.
// It is used only by the migration and the transitional fallback lookups.
type LegacyCustomerRepository interface {
	// FindByCID retrieves a legacy customer by C_ID.
	FindByCID(ctx context.Context, cid string) (*entity.LegacyCustomer, error)

	// FindByCredential retrieves the legacy customer whose C_ID or userName equals value.
	FindByCredential(ctx context.Context, value string) (*entity.LegacyCustomer, error)

	// List returns every legacy customer in insertion order. Documents that
	// fail to decode are reported separately and do not fail the listing.
	List(ctx context.Context) ([]*entity.LegacyCustomer, []UndecodableRecord, error)
}

// LegacyAdminRepository reads the deprecated admins collection.
type LegacyAdminRepository interface {
	// FindByCredential retrieves the legacy admin whose A_ID or userName equals value.
	FindByCredential(ctx context.Context, value string) (*entity.LegacyAdmin, error)

	// List returns every legacy admin in insertion order. Documents that
	// fail to decode are reported separately and do not fail the listing.
	List(ctx context.Context) ([]*entity.LegacyAdmin, []UndecodableRecord, error)
}
