package entity

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// PaymentKind is the discriminator stored with every payment row.
type PaymentKind string

const (
	PaymentKindCard   PaymentKind = "Card"
	PaymentKindPortal PaymentKind = "Portal"
)

// IsValid checks if the PaymentKind is a valid value.
func (k PaymentKind) IsValid() bool {
	switch k {
	case PaymentKindCard, PaymentKindPortal:
		return true
	default:
		return false
	}
}

// PaymentStatus is the lifecycle state of a payment.
type PaymentStatus string

const (
	PaymentStatusConfirmed PaymentStatus = "confirmed"
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusRefunded  PaymentStatus = "refunded"
	PaymentStatusCancelled PaymentStatus = "cancelled"
)

// IsValid checks if the PaymentStatus is a valid value.
func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentStatusConfirmed, PaymentStatusPending, PaymentStatusRefunded, PaymentStatusCancelled:
		return true
	default:
		return false
	}
}

// CanTransitionTo reports whether the status may move to next.
// Only confirmed payments can be refunded or cancelled.
func (s PaymentStatus) CanTransitionTo(next PaymentStatus) bool {
	switch next {
	case PaymentStatusRefunded, PaymentStatusCancelled:
		return s == PaymentStatusConfirmed
	default:
		return false
	}
}

// CardDetails holds the Card-only fields. CardNumber is always masked.
type CardDetails struct {
	Type           string
	Description    string
	CardNumber     string
	CardholderName string
	ExpiryDate     string
}

// PortalDetails holds the Portal-only (bank transfer) fields.
type PortalDetails struct {
	Description string
	Reference   string // Proof-of-transfer code.
	BankSlipURL string
}

// Payment is the shared base record plus exactly one variant, selected by Kind.
type Payment struct {
	ID         uuid.UUID
	PID        string // Business key, e.g. "PAY001".
	Amount     float64
	Date       time.Time
	CustomerID string
	EventID    string
	PackageID  string
	Status     PaymentStatus
	Kind       PaymentKind
	Card       *CardDetails
	Portal     *PortalDetails
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewCardPayment builds a Card payment. The card number is masked here so
// that no write path can persist the full number.
func NewCardPayment(customerID, eventID, packageID string, amount float64, card CardDetails) *Payment {
	card.CardNumber = MaskCardNumber(card.CardNumber)

	return &Payment{
		Amount:     amount,
		CustomerID: customerID,
		EventID:    eventID,
		PackageID:  packageID,
		Status:     PaymentStatusConfirmed,
		Kind:       PaymentKindCard,
		Card:       &card,
	}
}

// NewPortalPayment builds a Portal payment.
func NewPortalPayment(customerID, eventID, packageID string, amount float64, portal PortalDetails) *Payment {
	return &Payment{
		Amount:     amount,
		CustomerID: customerID,
		EventID:    eventID,
		PackageID:  packageID,
		Status:     PaymentStatusConfirmed,
		Kind:       PaymentKindPortal,
		Portal:     &portal,
	}
}

// Validate checks the shared fields and that the populated variant matches
// Kind. It returns the names of offending fields.
func (p *Payment) Validate() []string {
	var invalid []string
	if p.Amount <= 0 {
		invalid = append(invalid, "p_amount")
	}
	if strings.TrimSpace(p.CustomerID) == "" {
		invalid = append(invalid, "customerId")
	}
	if strings.TrimSpace(p.EventID) == "" {
		invalid = append(invalid, "eventId")
	}
	if strings.TrimSpace(p.PackageID) == "" {
		invalid = append(invalid, "packageId")
	}
	if p.Status != "" && !p.Status.IsValid() {
		invalid = append(invalid, "status")
	}

	switch p.Kind {
	case PaymentKindCard:
		if p.Portal != nil {
			invalid = append(invalid, "portal")
		}
		if p.Card == nil {
			return append(invalid, "c_type", "cardNumber", "cardholderName", "expiryDate")
		}
		invalid = append(invalid, p.Card.missing()...)
	case PaymentKindPortal:
		if p.Card != nil {
			invalid = append(invalid, "card")
		}
		if p.Portal == nil {
			return append(invalid, "reference", "bankSlipUrl")
		}
		invalid = append(invalid, p.Portal.missing()...)
	default:
		invalid = append(invalid, "kind")
	}

	return invalid
}

func (c *CardDetails) missing() []string {
	var fields []string
	if strings.TrimSpace(c.Type) == "" {
		fields = append(fields, "c_type")
	}
	if strings.TrimSpace(c.CardNumber) == "" {
		fields = append(fields, "cardNumber")
	}
	if strings.TrimSpace(c.CardholderName) == "" {
		fields = append(fields, "cardholderName")
	}
	if strings.TrimSpace(c.ExpiryDate) == "" {
		fields = append(fields, "expiryDate")
	}

	return fields
}

func (p *PortalDetails) missing() []string {
	var fields []string
	if strings.TrimSpace(p.Reference) == "" {
		fields = append(fields, "reference")
	}
	if strings.TrimSpace(p.BankSlipURL) == "" {
		fields = append(fields, "bankSlipUrl")
	}

	return fields
}

// maskedCardNumber matches the stored form: stars followed by at most four digits.
var maskedCardNumber = regexp.MustCompile(`^\*+[0-9]{0,4}$`)

// MaskCardNumber keeps only the last four digits of a card number and
// drops every other character. Values already in masked form are returned
// unchanged.
func MaskCardNumber(number string) string {
	if maskedCardNumber.MatchString(number) {
		return number
	}

	digits := make([]rune, 0, len(number))
	for _, r := range number {
		if r >= '0' && r <= '9' {
			digits = append(digits, r)
		}
	}
	if len(digits) <= 4 {
		return string(digits)
	}

	return strings.Repeat("*", len(digits)-4) + string(digits[len(digits)-4:])
}
