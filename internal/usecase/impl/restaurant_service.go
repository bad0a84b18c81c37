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

// restaurantService implements the RestaurantUsecase interface.
type restaurantService struct {
	restaurantRepo repository.RestaurantRepository
	logger         *slog.Logger
}

// NewRestaurantService is the constructor for restaurantService.
func NewRestaurantService(
	restaurantRepo repository.RestaurantRepository,
	logger *slog.Logger,
) usecase.RestaurantUsecase {
	return &restaurantService{
		restaurantRepo: restaurantRepo,
		logger:         logger,
	}
}

func (srv *restaurantService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// List returns one page of restaurants matching the filter.
func (srv *restaurantService) List(ctx context.Context, input *usecase.ListRestaurantsInput) (*usecase.RestaurantPage, error) {
	filter := repository.RestaurantFilter{
		Search:          input.Search,
		City:            input.City,
		Area:            input.Area,
		IncludeInactive: input.IncludeInactive,
		Limit:           input.Limit,
		Offset:          input.Offset,
		SortBy:          input.SortBy,
		Descending:      input.Descending,
	}

	items, total, err := srv.restaurantRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list restaurants")
	}

	return &usecase.RestaurantPage{
		Items:  items,
		Total:  total,
		Limit:  input.Limit,
		Offset: input.Offset,
	}, nil
}

// Get retrieves a single restaurant by id.
func (srv *restaurantService) Get(ctx context.Context, id uuid.UUID) (*entity.Restaurant, error) {
	restaurant, err := srv.restaurantRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrRestaurantNotFound) {
			return nil, errors.Wrap(domainerrors.ErrRestaurantNotFound, "restaurant not found")
		}

		return nil, errors.Wrap(err, "failed to find restaurant")
	}

	return restaurant, nil
}

// Create persists a new restaurant, applying the documented defaults for
// fields the caller left unset.
func (srv *restaurantService) Create(ctx context.Context, input *usecase.CreateRestaurantInput) (*entity.Restaurant, error) {
	srv.log(ctx).Info("Creating restaurant", slog.String("slug", input.Slug))

	restaurant := &entity.Restaurant{
		Slug:               input.Slug,
		Name:               input.Name,
		Description:        input.Description,
		OwnerUserID:        input.OwnerUserID,
		City:               input.City,
		Area:               input.Area,
		Address:            input.Address,
		Phone:              input.Phone,
		Latitude:           input.Latitude,
		Longitude:          input.Longitude,
		Menu:               input.Menu,
		BookingEnabled:     entity.DefaultBookingEnabled,
		AvgDurationMinutes: entity.DefaultAvgDurationMinutes,
		IsActive:           true,
	}
	if input.BookingEnabled != nil {
		restaurant.BookingEnabled = *input.BookingEnabled
	}
	if input.AvgDurationMinutes != nil {
		restaurant.AvgDurationMinutes = *input.AvgDurationMinutes
	}
	if input.IsActive != nil {
		restaurant.IsActive = *input.IsActive
	}

	if err := srv.restaurantRepo.Create(ctx, restaurant); err != nil {
		if errors.Is(err, repository.ErrDuplicateSlug) {
			return nil, errors.Wrap(domainerrors.ErrDuplicateSlug, "restaurant slug collision")
		}

		return nil, errors.Wrap(err, "failed to create restaurant")
	}

	return restaurant, nil
}

// Update applies a partial update to a restaurant the actor may modify.
func (srv *restaurantService) Update(ctx context.Context, actor usecase.Actor, id uuid.UUID, input *usecase.UpdateRestaurantInput) (*entity.Restaurant, error) {
	srv.log(ctx).Info("Updating restaurant", slog.Any("id", id), slog.Any("actor", actor.UserID))

	restaurant, err := srv.restaurantRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrRestaurantNotFound) {
			return nil, errors.Wrap(domainerrors.ErrRestaurantNotFound, "restaurant not found")
		}

		return nil, errors.Wrap(err, "failed to find restaurant")
	}

	if err := ensureOwnerOrAdmin(actor, restaurant.OwnerUserID); err != nil {
		return nil, err
	}

	applyRestaurantUpdate(restaurant, input)

	if err := srv.restaurantRepo.Update(ctx, restaurant); err != nil {
		if errors.Is(err, repository.ErrDuplicateSlug) {
			return nil, errors.Wrap(domainerrors.ErrDuplicateSlug, "restaurant slug collision")
		}

		return nil, errors.Wrap(err, "failed to update restaurant")
	}

	return restaurant, nil
}

// Delete removes a restaurant the actor may modify, hard or soft, and
// reports which mode applied.
func (srv *restaurantService) Delete(ctx context.Context, actor usecase.Actor, id uuid.UUID, hard bool) (string, error) {
	srv.log(ctx).Info("Deleting restaurant", slog.Any("id", id), slog.Bool("hard", hard))

	restaurant, err := srv.restaurantRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrRestaurantNotFound) {
			return "", errors.Wrap(domainerrors.ErrRestaurantNotFound, "restaurant not found")
		}

		return "", errors.Wrap(err, "failed to find restaurant")
	}

	if err := ensureOwnerOrAdmin(actor, restaurant.OwnerUserID); err != nil {
		return "", err
	}

	if hard {
		if err := srv.restaurantRepo.HardDelete(ctx, id); err != nil {
			return "", errors.Wrap(err, "failed to hard delete restaurant")
		}

		return usecase.DeletedHard, nil
	}

	if err := srv.restaurantRepo.SoftDelete(ctx, id); err != nil {
		return "", errors.Wrap(err, "failed to soft delete restaurant")
	}

	return usecase.DeletedSoft, nil
}

// applyRestaurantUpdate copies the non-nil fields of the input onto the entity.
func applyRestaurantUpdate(restaurant *entity.Restaurant, input *usecase.UpdateRestaurantInput) {
	if input.Slug != nil {
		restaurant.Slug = *input.Slug
	}
	if input.Name != nil {
		restaurant.Name = *input.Name
	}
	if input.Description != nil {
		restaurant.Description = *input.Description
	}
	if input.OwnerUserID != nil {
		restaurant.OwnerUserID = input.OwnerUserID
	}
	if input.City != nil {
		restaurant.City = *input.City
	}
	if input.Area != nil {
		restaurant.Area = *input.Area
	}
	if input.Address != nil {
		restaurant.Address = *input.Address
	}
	if input.Phone != nil {
		restaurant.Phone = *input.Phone
	}
	if input.Latitude != nil {
		restaurant.Latitude = *input.Latitude
	}
	if input.Longitude != nil {
		restaurant.Longitude = *input.Longitude
	}
	if len(input.Menu) > 0 {
		restaurant.Menu = input.Menu
	}
	if input.BookingEnabled != nil {
		restaurant.BookingEnabled = *input.BookingEnabled
	}
	if input.AvgDurationMinutes != nil {
		restaurant.AvgDurationMinutes = *input.AvgDurationMinutes
	}
	if input.IsActive != nil {
		restaurant.IsActive = *input.IsActive
	}
}
