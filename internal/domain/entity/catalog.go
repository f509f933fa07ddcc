package entity

import (
	"time"

	"github.com/google/uuid"
)

// DefaultEventStatus is assigned to events created without a status.
const DefaultEventStatus = "active"

// Event is a bookable event in the catalog.
type Event struct {
	ID          uuid.UUID
	EID         string // Business key, e.g. "EV001".
	Name        string
	Description string
	Status      string // Free-form, defaults to "active".
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Package is a priced offer attached to an event by its business key.
type Package struct {
	ID        uuid.UUID
	PgID      string // Business key, e.g. "PKG001".
	Price     float64
	EventID   string // References Event.EID; checked by the writer, not the store.
	CreatedAt time.Time
	UpdatedAt time.Time
}
