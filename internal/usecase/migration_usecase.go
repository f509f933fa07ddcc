package usecase

import "context"

// MigrationPass counts the outcome of one legacy collection.
type MigrationPass struct {
	Total   int `json:"total"`
	Created int `json:"created"`
	Skipped int `json:"skipped"`
	Failed  int `json:"failed"`
}

// MigrationReport summarizes a migration run.
type MigrationReport struct {
	Customers MigrationPass `json:"customers"`
	Admins    MigrationPass `json:"admins"`
}

// MigrationUsecase copies legacy customers and admins into the unified users table.
type MigrationUsecase interface {
	// Run is idempotent. Per-record failures are logged and counted; only
	// failures to read a legacy collection are returned.
	Run(ctx context.Context) (*MigrationReport, error)
}
