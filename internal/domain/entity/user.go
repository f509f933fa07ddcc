// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// User is the unified account record. Customers and admins share one table
// and are told apart by Role.
type User struct {
	ID        uuid.UUID // Row identifier, never shown to users.
	UserID    string    // Business key, e.g. "CUS01" or "AD01". Unique across roles.
	UserName  string    // Login name. Unique across roles.
	Password  string    // bcrypt hash, or a legacy plaintext value not yet upgraded.
	PhoneNo   string
	Role      Role
	FirstName string // Required for customers only.
	LastName  string // Required for customers only.
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate checks the role-conditioned required fields and returns the
// names of the offending fields. Admins without name fields are valid.
func (u *User) Validate() []string {
	var missing []string
	if strings.TrimSpace(u.UserID) == "" {
		missing = append(missing, "userId")
	}
	if strings.TrimSpace(u.UserName) == "" {
		missing = append(missing, "userName")
	}
	if u.Password == "" {
		missing = append(missing, "password")
	}
	if !u.Role.IsValid() {
		missing = append(missing, "role")
	}
	if u.Role == RoleCustomer {
		if strings.TrimSpace(u.FirstName) == "" {
			missing = append(missing, "firstName")
		}
		if strings.TrimSpace(u.LastName) == "" {
			missing = append(missing, "lastName")
		}
	}

	return missing
}

// DisplayName joins first and last name, falling back to "Unknown".
func (u *User) DisplayName() string {
	return displayName(u.FirstName, u.LastName, "")
}

// SplitLegacyName splits a single legacy "name" value into first and last
// name. Everything after the first word becomes the last name.
func SplitLegacyName(name string) (first, last string) {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return "", ""
	}

	return fields[0], strings.Join(fields[1:], " ")
}

// UnknownName is the display name used when no name data is available.
const UnknownName = "Unknown"

func displayName(first, last, name string) string {
	full := strings.TrimSpace(strings.TrimSpace(first) + " " + strings.TrimSpace(last))
	if full != "" {
		return full
	}
	if n := strings.TrimSpace(name); n != "" {
		return n
	}

	return UnknownName
}
