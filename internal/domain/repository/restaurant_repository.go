package repository

import (
	"context"
	"errors"

	"bistro/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrRestaurantNotFound is returned when no restaurant matches the given id.
var ErrRestaurantNotFound = errors.New("restaurant not found")

// ErrDuplicateSlug is returned when a create or update collides with an
// existing slug.
var ErrDuplicateSlug = errors.New("slug already exists")

// RestaurantSortKey enumerates the allowed sort columns for restaurant lists.
type RestaurantSortKey string

const (
	RestaurantSortCreatedAt RestaurantSortKey = "created_at"
	RestaurantSortName      RestaurantSortKey = "name"
	RestaurantSortCity      RestaurantSortKey = "city"
)

// RestaurantFilter narrows a restaurant list query. Zero values mean "no
// filter". Limit/Offset are validated at the boundary before they get here.
type RestaurantFilter struct {
	Search          string // ORed substring match over name, description, city, area.
	City            string
	Area            string
	IncludeInactive bool
	Limit           int
	Offset          int
	SortBy          RestaurantSortKey
	Descending      bool
}

// RestaurantRepository defines persistence operations for restaurants.
type RestaurantRepository interface {
	// List returns one page of restaurants plus the total count of matches.
	List(ctx context.Context, filter RestaurantFilter) ([]*entity.Restaurant, int64, error)

	// FindByID retrieves a single restaurant regardless of active state.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Restaurant, error)

	// Create persists a new restaurant.
	Create(ctx context.Context, restaurant *entity.Restaurant) error

	// Update modifies an existing restaurant.
	Update(ctx context.Context, restaurant *entity.Restaurant) error

	// SoftDelete flips is_active to false, keeping the row retrievable.
	SoftDelete(ctx context.Context, id uuid.UUID) error

	// HardDelete removes the row permanently.
	HardDelete(ctx context.Context, id uuid.UUID) error
}
