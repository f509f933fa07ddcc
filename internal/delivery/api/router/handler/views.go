package handler

import (
	"time"

	"planner/internal/domain/entity"
)

// EventView is the wire shape of an event.
type EventView struct {
	EID         string    `json:"E_ID"`
	Name        string    `json:"E_name"`
	Description string    `json:"E_description"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func newEventView(e *entity.Event) *EventView {
	return &EventView{
		EID:         e.EID,
		Name:        e.Name,
		Description: e.Description,
		Status:      e.Status,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

// PackageView is the wire shape of a package.
type PackageView struct {
	PgID      string    `json:"Pg_ID"`
	Price     float64   `json:"Pg_price"`
	EventID   string    `json:"event"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func newPackageView(p *entity.Package) *PackageView {
	return &PackageView{
		PgID:      p.PgID,
		Price:     p.Price,
		EventID:   p.EventID,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

// PaymentView is the wire shape of a payment. Only the fields of its own
// kind are populated.
type PaymentView struct {
	PID        string               `json:"P_ID"`
	Kind       entity.PaymentKind   `json:"kind"`
	Amount     float64              `json:"p_amount"`
	Date       time.Time            `json:"p_date"`
	CustomerID string               `json:"customerId"`
	EventID    string               `json:"eventId"`
	PackageID  string               `json:"packageId"`
	Status     entity.PaymentStatus `json:"status"`

	CardType       string `json:"c_type,omitempty"`
	CardDesc       string `json:"c_description,omitempty"`
	CardNumber     string `json:"cardNumber,omitempty"`
	CardholderName string `json:"cardholderName,omitempty"`
	ExpiryDate     string `json:"expiryDate,omitempty"`

	PortalDesc  string `json:"p_description,omitempty"`
	Reference   string `json:"reference,omitempty"`
	BankSlipURL string `json:"bankSlipUrl,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func newPaymentView(p *entity.Payment) *PaymentView {
	v := &PaymentView{
		PID:        p.PID,
		Kind:       p.Kind,
		Amount:     p.Amount,
		Date:       p.Date,
		CustomerID: p.CustomerID,
		EventID:    p.EventID,
		PackageID:  p.PackageID,
		Status:     p.Status,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
	if p.Card != nil {
		v.CardType = p.Card.Type
		v.CardDesc = p.Card.Description
		v.CardNumber = p.Card.CardNumber
		v.CardholderName = p.Card.CardholderName
		v.ExpiryDate = p.Card.ExpiryDate
	}
	if p.Portal != nil {
		v.PortalDesc = p.Portal.Description
		v.Reference = p.Portal.Reference
		v.BankSlipURL = p.Portal.BankSlipURL
	}

	return v
}

// UserView is the wire shape of a unified user. The password is never sent.
type UserView struct {
	UserID    string      `json:"userId"`
	UserName  string      `json:"userName"`
	Role      entity.Role `json:"role"`
	FirstName string      `json:"firstName,omitempty"`
	LastName  string      `json:"lastName,omitempty"`
	PhoneNo   string      `json:"phoneNo"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

func newUserView(u *entity.User) *UserView {
	return &UserView{
		UserID:    u.UserID,
		UserName:  u.UserName,
		Role:      u.Role,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		PhoneNo:   u.PhoneNo,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// FeedbackView is the wire shape of a feedback entry.
type FeedbackView struct {
	ID         string    `json:"id"`
	CustomerID string    `json:"customerId"`
	EventID    string    `json:"eventId,omitempty"`
	Message    string    `json:"message"`
	Rating     *int      `json:"rating"`
	CreatedAt  time.Time `json:"createdAt"`
}

func newFeedbackView(f *entity.Feedback) *FeedbackView {
	return &FeedbackView{
		ID:         f.ID.String(),
		CustomerID: f.CustomerID,
		EventID:    f.EventID,
		Message:    f.Message,
		Rating:     f.Rating,
		CreatedAt:  f.CreatedAt,
	}
}

func mapViews[T, V any](items []T, view func(T) V) []V {
	out := make([]V, 0, len(items))
	for _, item := range items {
		out = append(out, view(item))
	}

	return out
}
