package entity

import (
	"time"

	"github.com/google/uuid"
)

// Store is a retail venue. Payment and CatalogueItems are sub-resources that
// are cascade-removed when the store row is hard-deleted.
type Store struct {
	ID          uuid.UUID
	Slug        string
	Name        string
	Category    string
	Subcategory string
	Tags        []string // Unordered set of labels, e.g. "vegan", "halal".
	OwnerUserID *uuid.UUID
	IsActive    bool
	IsFeatured  bool
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Loaded only when explicitly requested via include=payment,catalogue.
	Payment        *StorePayment
	CatalogueItems []*StoreCatalogueItem
}

// HasTag reports whether the store's tag set contains the given tag.
func (s *Store) HasTag(tag string) bool {
	for _, t := range s.Tags {
		if t == tag {
			return true
		}
	}

	return false
}

// StorePayment holds the store's payout details (1:1 with Store).
type StorePayment struct {
	StoreID       uuid.UUID
	AccountHolder string
	IBAN          string
	BankName      string
	UpdatedAt     time.Time
}

// StoreCatalogueItem is a single sellable item of a store (1:N with Store).
type StoreCatalogueItem struct {
	ID        uuid.UUID
	StoreID   uuid.UUID
	Name      string
	Price     float64
	ImageURL  string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
