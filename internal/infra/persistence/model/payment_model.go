package model

import (
	"time"

	"github.com/google/uuid"
)

// PaymentModel mirrors the single 'payments' table shared by both payment variants.
// Kind is the discriminator; the variant columns of the other kind stay NULL.
type PaymentModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	PID        string    `gorm:"column:p_id;type:varchar(32);uniqueIndex;not null"`
	Amount     float64   `gorm:"column:p_amount;not null"`
	Date       time.Time `gorm:"column:p_date;index;not null"`
	CustomerID string    `gorm:"column:customer_id;type:varchar(32);index;not null"`
	EventID    string    `gorm:"column:event_id;type:varchar(32);not null"`
	PackageID  string    `gorm:"column:package_id;type:varchar(32);not null"`
	Status     string    `gorm:"type:varchar(16);index;not null"`
	Kind       string    `gorm:"type:varchar(16);not null"`

	// Card columns.
	CardType        *string `gorm:"column:c_type;type:varchar(32)"`
	CardDescription *string `gorm:"column:c_description;type:text"`
	CardNumber      *string `gorm:"column:card_number;type:varchar(32)"`
	CardholderName  *string `gorm:"column:cardholder_name;type:varchar(100)"`
	ExpiryDate      *string `gorm:"column:expiry_date;type:varchar(16)"`

	// Portal columns.
	PortalDescription *string `gorm:"column:p_description;type:text"`
	Reference         *string `gorm:"type:varchar(100)"`
	BankSlipURL       *string `gorm:"column:bank_slip_url;type:varchar(512)"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (PaymentModel) TableName() string {
	return "payments"
}
