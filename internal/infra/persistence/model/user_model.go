package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the unified 'users' table. Both customers and admins live here,
// told apart by Role. UserID and UserName are unique business keys.
type UserModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    string    `gorm:"column:user_id;type:varchar(32);uniqueIndex;not null"`
	UserName  string    `gorm:"column:user_name;type:varchar(100);uniqueIndex;not null"`
	Password  string    `gorm:"type:varchar(255);not null"`
	PhoneNo   string    `gorm:"column:phone_no;type:varchar(32)"`
	Role      string    `gorm:"type:varchar(16);index;not null"`
	FirstName string    `gorm:"column:first_name;type:varchar(100)"`
	LastName  string    `gorm:"column:last_name;type:varchar(100)"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
