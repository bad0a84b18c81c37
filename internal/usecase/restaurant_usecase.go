package usecase

import (
	"context"
	"encoding/json"

	"bistro/internal/domain/entity"
	"bistro/internal/domain/repository"

	"github.com/google/uuid"
)

// Deletion modes reported by Delete.
const (
	DeletedHard = "hard"
	DeletedSoft = "soft"
)

// --- Input DTOs ---

// ListRestaurantsInput narrows and pages a restaurant list query. Limit and
// Offset arrive already validated by the delivery layer.
type ListRestaurantsInput struct {
	Search          string
	City            string
	Area            string
	IncludeInactive bool
	Limit           int
	Offset          int
	SortBy          repository.RestaurantSortKey
	Descending      bool
}

// CreateRestaurantInput defines the data required to create a restaurant.
// Nil pointers take the documented defaults.
type CreateRestaurantInput struct {
	Slug               string
	Name               string
	Description        string
	OwnerUserID        *uuid.UUID
	City               string
	Area               string
	Address            string
	Phone              string
	Latitude           float64
	Longitude          float64
	Menu               json.RawMessage
	BookingEnabled     *bool
	AvgDurationMinutes *int
	IsActive           *bool
}

// UpdateRestaurantInput is a partial update; nil fields are left unchanged.
type UpdateRestaurantInput struct {
	Slug               *string
	Name               *string
	Description        *string
	OwnerUserID        *uuid.UUID
	City               *string
	Area               *string
	Address            *string
	Phone              *string
	Latitude           *float64
	Longitude          *float64
	Menu               json.RawMessage
	BookingEnabled     *bool
	AvgDurationMinutes *int
	IsActive           *bool
}

// --- Output DTOs ---

// RestaurantPage is one page of restaurants plus pagination metadata.
type RestaurantPage struct {
	Items  []*entity.Restaurant
	Total  int64
	Limit  int
	Offset int
}

// RestaurantUsecase defines the interface for restaurant business operations.
type RestaurantUsecase interface {
	List(ctx context.Context, input *ListRestaurantsInput) (*RestaurantPage, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.Restaurant, error)

	// Create is admin-only; the handler guards the role before calling.
	Create(ctx context.Context, input *CreateRestaurantInput) (*entity.Restaurant, error)

	// Update requires the actor to be an admin or the owning partner.
	Update(ctx context.Context, actor Actor, id uuid.UUID, input *UpdateRestaurantInput) (*entity.Restaurant, error)

	// Delete removes the restaurant, hard or soft, and reports which mode
	// applied. Same ownership rule as Update.
	Delete(ctx context.Context, actor Actor, id uuid.UUID, hard bool) (string, error)
}
