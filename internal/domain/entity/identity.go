package entity

import "time"

// IdentitySource records which store an identity was resolved from.
type IdentitySource string

const (
	IdentitySourceUnified        IdentitySource = "unified"
	IdentitySourceLegacyCustomer IdentitySource = "legacy_customer"
	IdentitySourceLegacyAdmin    IdentitySource = "legacy_admin"
)

// LegacyCustomer is a record of the deprecated customers collection.
// Its C_ID corresponds to User.UserID and the role is implicitly customer.
type LegacyCustomer struct {
	CID       string
	FirstName string
	LastName  string
	Name      string // Single-field name written by older clients.
	UserName  string
	Password  string // Plaintext on this path.
	PhoneNo   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// LegacyAdmin is a record of the deprecated admins collection.
type LegacyAdmin struct {
	AID       string
	UserName  string
	Password  string
	PhoneNo   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Identity is the normalized account shape returned regardless of the
// store the account was found in.
type Identity struct {
	UserID    string         `json:"userId"`
	Role      Role           `json:"role"`
	FirstName string         `json:"firstName,omitempty"`
	LastName  string         `json:"lastName,omitempty"`
	UserName  string         `json:"userName"`
	PhoneNo   string         `json:"phoneNo"`
	Source    IdentitySource `json:"source"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`

	name string
}

// DisplayName is "first last", then the legacy single name, then "Unknown".
func (i *Identity) DisplayName() string {
	return displayName(i.FirstName, i.LastName, i.name)
}

// IdentityFromUser normalizes a unified user.
func IdentityFromUser(u *User) *Identity {
	return &Identity{
		UserID:    u.UserID,
		Role:      u.Role,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		UserName:  u.UserName,
		PhoneNo:   u.PhoneNo,
		Source:    IdentitySourceUnified,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// IdentityFromLegacyCustomer normalizes a legacy customer.
func IdentityFromLegacyCustomer(c *LegacyCustomer) *Identity {
	return &Identity{
		UserID:    c.CID,
		Role:      RoleCustomer,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		UserName:  c.UserName,
		PhoneNo:   c.PhoneNo,
		Source:    IdentitySourceLegacyCustomer,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
		name:      c.Name,
	}
}

// IdentityFromLegacyAdmin normalizes a legacy admin.
func IdentityFromLegacyAdmin(a *LegacyAdmin) *Identity {
	return &Identity{
		UserID:    a.AID,
		Role:      RoleAdmin,
		UserName:  a.UserName,
		PhoneNo:   a.PhoneNo,
		Source:    IdentitySourceLegacyAdmin,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

// ToUser converts a legacy customer into a unified customer. The password
// value is copied as-is.
func (c *LegacyCustomer) ToUser() *User {
	first, last := c.FirstName, c.LastName
	if first == "" && last == "" && c.Name != "" {
		first, last = SplitLegacyName(c.Name)
	}

	return &User{
		UserID:    c.CID,
		UserName:  c.UserName,
		Password:  c.Password,
		PhoneNo:   c.PhoneNo,
		Role:      RoleCustomer,
		FirstName: first,
		LastName:  last,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// ToUser converts a legacy admin into a unified admin.
func (a *LegacyAdmin) ToUser() *User {
	return &User{
		UserID:    a.AID,
		UserName:  a.UserName,
		Password:  a.Password,
		PhoneNo:   a.PhoneNo,
		Role:      RoleAdmin,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}
