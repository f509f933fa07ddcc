package entity

import (
	"time"

	"github.com/google/uuid"
)

// Feedback rating bounds.
const (
	MinRating = 0
	MaxRating = 5
)

// Feedback is a customer's comment, optionally rated and tied to an event.
// It is linked to its author by CustomerID only, not to a specific payment.
type Feedback struct {
	ID         uuid.UUID
	CustomerID string
	EventID    string // Optional.
	Message    string
	Rating     *int // Optional, 0-5.
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// PurchaseRecord is one row of the denormalized purchase listing.
type PurchaseRecord struct {
	Customer PurchaseCustomer  `json:"customer"`
	Event    PurchaseEvent     `json:"event"`
	Payment  PurchasePayment   `json:"payment"`
	Package  PurchasePackage   `json:"package"`
	Feedback *PurchaseFeedback `json:"feedback"`
}

type PurchaseCustomer struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type PurchaseEvent struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type PurchasePayment struct {
	ID     string        `json:"id"`
	Amount float64       `json:"amount"`
	Date   time.Time     `json:"date"`
	Status PaymentStatus `json:"status"`
}

type PurchasePackage struct {
	ID    string  `json:"id"`
	Price float64 `json:"price"`
}

type PurchaseFeedback struct {
	Rating  *int   `json:"rating"`
	Comment string `json:"comment"`
}
