package repository

import (
	"context"
	"errors"

	"bistro/internal/domain/entity"
)

// ErrOfferNotFound is returned when no hero offer matches the given id.
var ErrOfferNotFound = errors.New("hero offer not found")

// ErrSpotlightNotFound is returned when no spotlight item matches the given id.
var ErrSpotlightNotFound = errors.New("spotlight item not found")

// HeroOfferRepository defines persistence operations for home hero offers.
type HeroOfferRepository interface {
	// ListActive returns active offers ordered by priority ascending.
	ListActive(ctx context.Context) ([]*entity.HomeHeroOffer, error)

	// Create persists a new offer.
	Create(ctx context.Context, offer *entity.HomeHeroOffer) error

	// Delete removes an offer permanently by numeric id.
	Delete(ctx context.Context, id int64) error
}

// SpotlightRepository defines persistence operations for spotlight items.
type SpotlightRepository interface {
	// ListActive returns active items for a module ordered by order_index
	// ascending. Empty moduleType means all modules.
	ListActive(ctx context.Context, moduleType string) ([]*entity.SpotlightItem, error)

	// FindByID retrieves a single item regardless of active state.
	FindByID(ctx context.Context, id int64) (*entity.SpotlightItem, error)

	// Create persists a new item.
	Create(ctx context.Context, item *entity.SpotlightItem) error

	// Update modifies an existing item.
	Update(ctx context.Context, item *entity.SpotlightItem) error

	// SoftDelete flips is_active to false.
	SoftDelete(ctx context.Context, id int64) error

	// UpdateOrderIndex sets the order index of a single item.
	UpdateOrderIndex(ctx context.Context, id int64, orderIndex int) error
}
