package usecase

import (
	"context"
	"io"

	"bistro/internal/domain/entity"
)

// MediaUpload is one uploaded file destined for the platform bucket.
type MediaUpload struct {
	Filename    string
	ContentType string
	Content     io.Reader
}

// CreateHeroOfferInput defines the data required to create a home hero offer.
type CreateHeroOfferInput struct {
	Title    string
	MediaURL string
	Priority int
	IsActive *bool
}

// HeroOfferUsecase defines the interface for home hero offer operations.
// Writes are admin-only; the handler guards the role before calling.
type HeroOfferUsecase interface {
	// ListActive returns active offers ordered by priority ascending.
	ListActive(ctx context.Context) ([]*entity.HomeHeroOffer, error)

	Create(ctx context.Context, input *CreateHeroOfferInput) (*entity.HomeHeroOffer, error)

	// UploadMedia stores the file in the platform bucket and returns its
	// public URL.
	UploadMedia(ctx context.Context, upload *MediaUpload) (string, error)

	// Delete removes an offer permanently by numeric id.
	Delete(ctx context.Context, id int64) error
}
