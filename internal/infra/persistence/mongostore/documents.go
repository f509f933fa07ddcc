package mongostore

import (
	"time"

	"planner/internal/domain/entity"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Field names as written by the legacy application.
const (
	fieldCustomerID = "C_ID"
	fieldAdminID    = "A_ID"
	fieldUserName   = "userName"
)

type legacyCustomerDocument struct {
	ObjectID  bson.ObjectID `bson:"_id,omitempty"`
	CID       string        `bson:"C_ID"`
	FirstName string        `bson:"firstName,omitempty"`
	LastName  string        `bson:"lastName,omitempty"`
	Name      string        `bson:"name,omitempty"`
	UserName  string        `bson:"userName"`
	Password  string        `bson:"password"`
	PhoneNo   string        `bson:"phoneNo,omitempty"`
	CreatedAt time.Time     `bson:"createdAt,omitempty"`
	UpdatedAt time.Time     `bson:"updatedAt,omitempty"`
}

type legacyAdminDocument struct {
	ObjectID  bson.ObjectID `bson:"_id,omitempty"`
	AID       string        `bson:"A_ID"`
	UserName  string        `bson:"userName"`
	Password  string        `bson:"password"`
	PhoneNo   string        `bson:"phoneNo,omitempty"`
	CreatedAt time.Time     `bson:"createdAt,omitempty"`
	UpdatedAt time.Time     `bson:"updatedAt,omitempty"`
}

func (d *legacyCustomerDocument) toDomain() *entity.LegacyCustomer {
	return &entity.LegacyCustomer{
		CID:       d.CID,
		FirstName: d.FirstName,
		LastName:  d.LastName,
		Name:      d.Name,
		UserName:  d.UserName,
		Password:  d.Password,
		PhoneNo:   d.PhoneNo,
		CreatedAt: createdAt(d.CreatedAt, d.ObjectID),
		UpdatedAt: d.UpdatedAt,
	}
}

func (d *legacyAdminDocument) toDomain() *entity.LegacyAdmin {
	return &entity.LegacyAdmin{
		AID:       d.AID,
		UserName:  d.UserName,
		Password:  d.Password,
		PhoneNo:   d.PhoneNo,
		CreatedAt: createdAt(d.CreatedAt, d.ObjectID),
		UpdatedAt: d.UpdatedAt,
	}
}

// createdAt falls back to the ObjectID timestamp for documents written
// before the legacy application recorded timestamps.
func createdAt(recorded time.Time, id bson.ObjectID) time.Time {
	if !recorded.IsZero() || id.IsZero() {
		return recorded
	}

	return id.Timestamp()
}
