package impl

import (
	"context"
	"log/slog"

	deliverycontext "bistro/internal/delivery/context"
	"bistro/internal/domain/entity"
	domainerrors "bistro/internal/domain/errors"
	"bistro/internal/domain/repository"
	"bistro/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// storeService implements the StoreUsecase interface.
type storeService struct {
	storeRepo repository.StoreRepository
	logger    *slog.Logger
}

// NewStoreService is the constructor for storeService.
func NewStoreService(
	storeRepo repository.StoreRepository,
	logger *slog.Logger,
) usecase.StoreUsecase {
	return &storeService{
		storeRepo: storeRepo,
		logger:    logger,
	}
}

func (srv *storeService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// List returns one page of stores matching the filter.
func (srv *storeService) List(ctx context.Context, input *usecase.ListStoresInput) (*usecase.StorePage, error) {
	filter := repository.StoreFilter{
		Search:          input.Search,
		Category:        input.Category,
		Subcategory:     input.Subcategory,
		Tag:             input.Tag,
		FeaturedOnly:    input.FeaturedOnly,
		IncludeInactive: input.IncludeInactive,
		Limit:           input.Limit,
		Offset:          input.Offset,
	}

	items, total, err := srv.storeRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list stores")
	}

	return &usecase.StorePage{
		Items:  items,
		Total:  total,
		Limit:  input.Limit,
		Offset: input.Offset,
	}, nil
}

// Get retrieves a single store, expanding the requested sub-resources.
func (srv *storeService) Get(ctx context.Context, id uuid.UUID, include repository.StoreInclude) (*entity.Store, error) {
	store, err := srv.storeRepo.FindByID(ctx, id, include)
	if err != nil {
		if errors.Is(err, repository.ErrStoreNotFound) {
			return nil, errors.Wrap(domainerrors.ErrStoreNotFound, "store not found")
		}

		return nil, errors.Wrap(err, "failed to find store")
	}

	return store, nil
}

// Delete removes a store the actor may modify, hard or soft, and reports
// which mode applied. Hard deletion cascades to payment and catalogue rows.
func (srv *storeService) Delete(ctx context.Context, actor usecase.Actor, id uuid.UUID, hard bool) (string, error) {
	srv.log(ctx).Info("Deleting store", slog.Any("id", id), slog.Bool("hard", hard))

	store, err := srv.storeRepo.FindByID(ctx, id, repository.StoreInclude{})
	if err != nil {
		if errors.Is(err, repository.ErrStoreNotFound) {
			return "", errors.Wrap(domainerrors.ErrStoreNotFound, "store not found")
		}

		return "", errors.Wrap(err, "failed to find store")
	}

	if err := ensureOwnerOrAdmin(actor, store.OwnerUserID); err != nil {
		return "", err
	}

	if hard {
		if err := srv.storeRepo.HardDelete(ctx, id); err != nil {
			return "", errors.Wrap(err, "failed to hard delete store")
		}

		return usecase.DeletedHard, nil
	}

	if err := srv.storeRepo.SoftDelete(ctx, id); err != nil {
		return "", errors.Wrap(err, "failed to soft delete store")
	}

	return usecase.DeletedSoft, nil
}
