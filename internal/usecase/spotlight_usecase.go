package usecase

import (
	"context"

	"bistro/internal/domain/entity"
)

// MaxConcurrentReorderUpdates bounds the parallelism of a bulk reorder.
const MaxConcurrentReorderUpdates = 8

// CreateSpotlightInput defines the data required to create a spotlight item.
// A non-nil Media is uploaded first and its URL wins over MediaURL.
type CreateSpotlightInput struct {
	Title      string
	ModuleType string
	MediaURL   string
	OrderIndex int
	IsActive   *bool
	Media      *MediaUpload
}

// UpdateSpotlightInput is a partial update; nil fields are left unchanged.
type UpdateSpotlightInput struct {
	Title      *string
	ModuleType *string
	MediaURL   *string
	OrderIndex *int
	IsActive   *bool
	Media      *MediaUpload
}

// SpotlightUsecase defines the interface for spotlight media operations.
// Writes are admin-only; the handler guards the role before calling.
type SpotlightUsecase interface {
	// ListActive returns active items ordered by order index ascending,
	// optionally narrowed to one module.
	ListActive(ctx context.Context, moduleType string) ([]*entity.SpotlightItem, error)

	Create(ctx context.Context, input *CreateSpotlightInput) (*entity.SpotlightItem, error)
	Update(ctx context.Context, id int64, input *UpdateSpotlightInput) (*entity.SpotlightItem, error)

	// SoftDelete flips the item inactive; its order index is untouched.
	SoftDelete(ctx context.Context, id int64) error

	// Reorder applies the given order indexes as independent updates with
	// bounded parallelism. A missing id fails that update without rolling
	// back the others.
	Reorder(ctx context.Context, orders []entity.SpotlightOrder) error
}
