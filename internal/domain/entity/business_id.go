package entity

import (
	"fmt"
	"strconv"
	"strings"
)

// IDKind names a family of human-readable business keys.
type IDKind string

const (
	IDKindCustomer IDKind = "customer"
	IDKindAdmin    IDKind = "admin"
	IDKindEvent    IDKind = "event"
	IDKindPackage  IDKind = "package"
	IDKindPayment  IDKind = "payment"
)

// IDFormat is the prefix and minimum digit width of a business key family.
type IDFormat struct {
	Prefix string
	Width  int
}

var idFormats = map[IDKind]IDFormat{
	IDKindCustomer: {Prefix: "CUS", Width: 2},
	IDKindAdmin:    {Prefix: "AD", Width: 2},
	IDKindEvent:    {Prefix: "EV", Width: 3},
	IDKindPackage:  {Prefix: "PKG", Width: 3},
	IDKindPayment:  {Prefix: "PAY", Width: 3},
}

// Format returns the key format of the kind.
func (k IDKind) Format() (IDFormat, bool) {
	f, ok := idFormats[k]

	return f, ok
}

// IDKindForRole maps a user role to its key family.
func IDKindForRole(role Role) IDKind {
	if role == RoleAdmin {
		return IDKindAdmin
	}

	return IDKindCustomer
}

// First returns the first key of the family, e.g. "CUS01".
func (f IDFormat) First() string {
	return f.Format(1)
}

// Format renders n with the family prefix and zero padding.
func (f IDFormat) Format(n int64) string {
	return fmt.Sprintf("%s%0*d", f.Prefix, f.Width, n)
}

// Parse extracts the numeric suffix of a key of this family.
func (f IDFormat) Parse(id string) (int64, error) {
	digits, ok := strings.CutPrefix(id, f.Prefix)
	if !ok || digits == "" {
		return 0, fmt.Errorf("id %q does not carry prefix %q", id, f.Prefix)
	}

	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("id %q has a non-numeric suffix: %w", id, err)
	}

	return n, nil
}

// Next returns the key following current. The padding width of current is
// kept when it is wider than the family minimum. An empty current yields
// the first key.
func (f IDFormat) Next(current string) (string, error) {
	if current == "" {
		return f.First(), nil
	}

	n, err := f.Parse(current)
	if err != nil {
		return "", err
	}

	width := max(len(current)-len(f.Prefix), f.Width)

	return fmt.Sprintf("%s%0*d", f.Prefix, width, n+1), nil
}
