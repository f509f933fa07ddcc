package entity

// Role discriminates the two kinds of account stored in the unified users table.
type Role string

const (
	// RoleCustomer is a paying customer. Customers must carry a first and last name.
	RoleCustomer Role = "customer"
	// RoleAdmin is a back-office operator. Name fields are optional.
	RoleAdmin Role = "admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleCustomer, RoleAdmin:
		return true
	default:
		return false
	}
}

// Actor is the authenticated caller of an operation, passed explicitly
// instead of being read from ambient session state.
type Actor struct {
	UserID   string
	UserName string
	Role     Role
}

// IsAdmin reports whether the actor holds the admin role.
func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}

// Owns reports whether the actor is the customer identified by customerID.
func (a Actor) Owns(customerID string) bool {
	return a.Role == RoleCustomer && a.UserID != "" && a.UserID == customerID
}
