package service

// Outcome labels for migration records.
const (
	MigrationCreated = "created"
	MigrationSkipped = "skipped"
	MigrationFailed  = "failed"
)

// MetricsRecorder counts batch job outcomes.
type MetricsRecorder interface {
	// MigrationRecord counts one legacy record processed by the migration.
	MigrationRecord(source, outcome string)

	// PurchaseSkipped counts one payment dropped from a purchase listing.
	PurchaseSkipped(reason string)
}

// NopMetrics discards everything.
type NopMetrics struct{}

func (NopMetrics) MigrationRecord(string, string) {}
func (NopMetrics) PurchaseSkipped(string)         {}
