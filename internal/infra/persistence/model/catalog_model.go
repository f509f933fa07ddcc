package model

import (
	"time"

	"github.com/google/uuid"
)

// EventModel mirrors the 'events' table.
type EventModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	EID         string    `gorm:"column:e_id;type:varchar(32);uniqueIndex;not null"`
	Name        string    `gorm:"type:varchar(200);not null"`
	Description string    `gorm:"type:text"`
	Status      string    `gorm:"type:varchar(32);not null;default:active"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (EventModel) TableName() string {
	return "events"
}

// PackageModel mirrors the 'packages' table. EventID holds the event business key.
type PackageModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	PgID      string    `gorm:"column:pg_id;type:varchar(32);uniqueIndex;not null"`
	Price     float64   `gorm:"not null"`
	EventID   string    `gorm:"column:event_id;type:varchar(32);index;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (PackageModel) TableName() string {
	return "packages"
}
