package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Restaurant is a bookable dining venue. OwnerUserID, when set, references a
// registry user with a partner role and scopes partner write access.
type Restaurant struct {
	ID          uuid.UUID
	Slug        string // URL-safe unique identifier, e.g. "trattoria-rosa".
	Name        string
	Description string
	OwnerUserID *uuid.UUID
	City        string
	Area        string
	Address     string
	Phone       string
	Latitude    float64
	Longitude   float64

	// Menu is an opaque client-owned payload, stored and returned verbatim.
	Menu json.RawMessage

	BookingEnabled     bool
	AvgDurationMinutes int
	IsActive           bool
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// Defaults applied when a restaurant is created without explicit values.
const (
	DefaultBookingEnabled     = true
	DefaultAvgDurationMinutes = 90
)
