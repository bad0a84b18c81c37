package impl

import (
	"context"
	"log/slog"

	deliverycontext "bistro/internal/delivery/context"
	"bistro/internal/domain/entity"
	domainerrors "bistro/internal/domain/errors"
	"bistro/internal/domain/repository"
	"bistro/internal/domain/service"
	"bistro/internal/usecase"

	"github.com/pkg/errors"
)

// heroOfferService implements the HeroOfferUsecase interface.
type heroOfferService struct {
	offerRepo repository.HeroOfferRepository
	media     service.MediaStorage
	logger    *slog.Logger
}

// NewHeroOfferService is the constructor for heroOfferService. media may be
// nil when no bucket is configured; uploads then fail with a clear error.
func NewHeroOfferService(
	offerRepo repository.HeroOfferRepository,
	media service.MediaStorage,
	logger *slog.Logger,
) usecase.HeroOfferUsecase {
	return &heroOfferService{
		offerRepo: offerRepo,
		media:     media,
		logger:    logger,
	}
}

func (srv *heroOfferService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListActive returns active offers ordered by priority ascending.
func (srv *heroOfferService) ListActive(ctx context.Context) ([]*entity.HomeHeroOffer, error) {
	offers, err := srv.offerRepo.ListActive(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list hero offers")
	}

	return offers, nil
}

// Create persists a new offer; it is active unless the caller says otherwise.
func (srv *heroOfferService) Create(ctx context.Context, input *usecase.CreateHeroOfferInput) (*entity.HomeHeroOffer, error) {
	srv.log(ctx).Info("Creating hero offer", slog.String("title", input.Title))

	offer := &entity.HomeHeroOffer{
		Title:    input.Title,
		MediaURL: input.MediaURL,
		Priority: input.Priority,
		IsActive: true,
	}
	if input.IsActive != nil {
		offer.IsActive = *input.IsActive
	}

	if err := srv.offerRepo.Create(ctx, offer); err != nil {
		return nil, errors.Wrap(err, "failed to create hero offer")
	}

	return offer, nil
}

// UploadMedia stores the file in the platform bucket and returns its public URL.
func (srv *heroOfferService) UploadMedia(ctx context.Context, upload *usecase.MediaUpload) (string, error) {
	if srv.media == nil {
		return "", errors.Wrap(domainerrors.ErrInternalError, "media storage is not configured")
	}

	srv.log(ctx).Info("Uploading hero media", slog.String("filename", upload.Filename))

	url, err := srv.media.Save(ctx, upload.Filename, upload.ContentType, upload.Content)
	if err != nil {
		return "", errors.Wrap(err, "failed to store hero media")
	}

	return url, nil
}

// Delete removes an offer permanently by numeric id.
func (srv *heroOfferService) Delete(ctx context.Context, id int64) error {
	srv.log(ctx).Info("Deleting hero offer", slog.Int64("id", id))

	if err := srv.offerRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrOfferNotFound) {
			return errors.Wrap(domainerrors.ErrOfferNotFound, "hero offer not found")
		}

		return errors.Wrap(err, "failed to delete hero offer")
	}

	return nil
}
