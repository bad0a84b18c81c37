package usecase

import (
	"context"

	"bistro/internal/domain/entity"
	"bistro/internal/domain/repository"

	"github.com/google/uuid"
)

// ListStoresInput narrows and pages a store list query.
type ListStoresInput struct {
	Search          string
	Category        string
	Subcategory     string
	Tag             string
	FeaturedOnly    bool
	IncludeInactive bool
	Limit           int
	Offset          int
}

// StorePage is one page of stores plus pagination metadata.
type StorePage struct {
	Items  []*entity.Store
	Total  int64
	Limit  int
	Offset int
}

// StoreUsecase defines the interface for store business operations.
type StoreUsecase interface {
	List(ctx context.Context, input *ListStoresInput) (*StorePage, error)

	// Get retrieves one store, expanding the requested sub-resources.
	Get(ctx context.Context, id uuid.UUID, include repository.StoreInclude) (*entity.Store, error)

	// Delete removes the store, hard or soft, and reports which mode
	// applied. Requires the actor to be an admin or the owning partner.
	Delete(ctx context.Context, actor Actor, id uuid.UUID, hard bool) (string, error)
}
