package model

import (
	"time"

	"github.com/google/uuid"
)

// FeedbackModel mirrors the 'feedback' table. CustomerID holds the customer business key.
type FeedbackModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID string    `gorm:"column:customer_id;type:varchar(32);index;not null"`
	EventID    string    `gorm:"column:event_id;type:varchar(32)"`
	Message    string    `gorm:"type:text"`
	Rating     *int
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (FeedbackModel) TableName() string {
	return "feedback"
}
