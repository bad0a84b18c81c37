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
	"golang.org/x/sync/errgroup"
)

// spotlightService implements the SpotlightUsecase interface.
type spotlightService struct {
	spotlightRepo repository.SpotlightRepository
	media         service.MediaStorage
	logger        *slog.Logger
}

// NewSpotlightService is the constructor for spotlightService. media may be
// nil when no bucket is configured; uploads then fail with a clear error.
func NewSpotlightService(
	spotlightRepo repository.SpotlightRepository,
	media service.MediaStorage,
	logger *slog.Logger,
) usecase.SpotlightUsecase {
	return &spotlightService{
		spotlightRepo: spotlightRepo,
		media:         media,
		logger:        logger,
	}
}

func (srv *spotlightService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListActive returns active items for a module ordered by order index.
func (srv *spotlightService) ListActive(ctx context.Context, moduleType string) ([]*entity.SpotlightItem, error) {
	items, err := srv.spotlightRepo.ListActive(ctx, moduleType)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list spotlight items")
	}

	return items, nil
}

// Create persists a new item, uploading the attached file first when present.
func (srv *spotlightService) Create(ctx context.Context, input *usecase.CreateSpotlightInput) (*entity.SpotlightItem, error) {
	srv.log(ctx).Info("Creating spotlight item", slog.String("title", input.Title), slog.String("moduleType", input.ModuleType))

	mediaURL := input.MediaURL
	if input.Media != nil {
		url, err := srv.uploadMedia(ctx, input.Media)
		if err != nil {
			return nil, err
		}
		mediaURL = url
	}

	item := &entity.SpotlightItem{
		Title:      input.Title,
		ModuleType: input.ModuleType,
		MediaURL:   mediaURL,
		OrderIndex: input.OrderIndex,
		IsActive:   true,
	}
	if input.IsActive != nil {
		item.IsActive = *input.IsActive
	}

	if err := srv.spotlightRepo.Create(ctx, item); err != nil {
		return nil, errors.Wrap(err, "failed to create spotlight item")
	}

	return item, nil
}

// Update applies a partial update, uploading the attached file first when
// present.
func (srv *spotlightService) Update(ctx context.Context, id int64, input *usecase.UpdateSpotlightInput) (*entity.SpotlightItem, error) {
	srv.log(ctx).Info("Updating spotlight item", slog.Int64("id", id))

	item, err := srv.spotlightRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrSpotlightNotFound) {
			return nil, errors.Wrap(domainerrors.ErrSpotlightNotFound, "spotlight item not found")
		}

		return nil, errors.Wrap(err, "failed to find spotlight item")
	}

	if input.Title != nil {
		item.Title = *input.Title
	}
	if input.ModuleType != nil {
		item.ModuleType = *input.ModuleType
	}
	if input.MediaURL != nil {
		item.MediaURL = *input.MediaURL
	}
	if input.OrderIndex != nil {
		item.OrderIndex = *input.OrderIndex
	}
	if input.IsActive != nil {
		item.IsActive = *input.IsActive
	}
	if input.Media != nil {
		url, err := srv.uploadMedia(ctx, input.Media)
		if err != nil {
			return nil, err
		}
		item.MediaURL = url
	}

	if err := srv.spotlightRepo.Update(ctx, item); err != nil {
		if errors.Is(err, repository.ErrSpotlightNotFound) {
			return nil, errors.Wrap(domainerrors.ErrSpotlightNotFound, "spotlight item not found")
		}

		return nil, errors.Wrap(err, "failed to update spotlight item")
	}

	return item, nil
}

// SoftDelete flips the item inactive.
func (srv *spotlightService) SoftDelete(ctx context.Context, id int64) error {
	srv.log(ctx).Info("Soft deleting spotlight item", slog.Int64("id", id))

	if err := srv.spotlightRepo.SoftDelete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrSpotlightNotFound) {
			return errors.Wrap(domainerrors.ErrSpotlightNotFound, "spotlight item not found")
		}

		return errors.Wrap(err, "failed to soft delete spotlight item")
	}

	return nil
}

// Reorder applies the order indexes as independent updates with bounded
// parallelism. The first failure is returned; completed updates stay applied.
func (srv *spotlightService) Reorder(ctx context.Context, orders []entity.SpotlightOrder) error {
	if len(orders) == 0 {
		return errors.Wrap(domainerrors.ErrValidationFailed, "no order entries")
	}

	srv.log(ctx).Info("Reordering spotlight items", slog.Int("count", len(orders)))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(usecase.MaxConcurrentReorderUpdates)

	for _, order := range orders {
		group.Go(func() error {
			if err := srv.spotlightRepo.UpdateOrderIndex(groupCtx, order.ID, order.OrderIndex); err != nil {
				if errors.Is(err, repository.ErrSpotlightNotFound) {
					return errors.Wrapf(domainerrors.ErrSpotlightNotFound, "spotlight item %d not found", order.ID)
				}

				return errors.Wrapf(err, "failed to reorder spotlight item %d", order.ID)
			}

			return nil
		})
	}

	return group.Wait()
}

func (srv *spotlightService) uploadMedia(ctx context.Context, upload *usecase.MediaUpload) (string, error) {
	if srv.media == nil {
		return "", errors.Wrap(domainerrors.ErrInternalError, "media storage is not configured")
	}

	url, err := srv.media.Save(ctx, upload.Filename, upload.ContentType, upload.Content)
	if err != nil {
		return "", errors.Wrap(err, "failed to store spotlight media")
	}

	return url, nil
}
