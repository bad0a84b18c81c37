package repository

import (
	"context"
	"errors"

	"bistro/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrStoreNotFound is returned when no store matches the given id.
var ErrStoreNotFound = errors.New("store not found")

// StoreFilter narrows a store list query.
type StoreFilter struct {
	Search          string // ORed substring match over name, category, subcategory.
	Category        string
	Subcategory     string
	Tag             string // Set containment on the tags column.
	FeaturedOnly    bool
	IncludeInactive bool
	Limit           int
	Offset          int
}

// StoreInclude selects which sub-resources FindByID loads alongside the row.
type StoreInclude struct {
	Payment   bool
	Catalogue bool
}

// StoreRepository defines persistence operations for stores and their
// sub-resources. Hard deletion relies on the store's cascade rules for
// payment and catalogue rows.
type StoreRepository interface {
	// List returns one page of stores plus the total count of matches,
	// ordered by creation time descending.
	List(ctx context.Context, filter StoreFilter) ([]*entity.Store, int64, error)

	// FindByID retrieves a single store, optionally expanding sub-resources.
	FindByID(ctx context.Context, id uuid.UUID, include StoreInclude) (*entity.Store, error)

	// SoftDelete flips is_active to false.
	SoftDelete(ctx context.Context, id uuid.UUID) error

	// HardDelete removes the store row; payment and catalogue rows go with it.
	HardDelete(ctx context.Context, id uuid.UUID) error
}
