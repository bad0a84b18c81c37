package postgres

import (
	"context"

	"bistro/internal/domain/entity"
	domainerrors "bistro/internal/domain/errors"
	"bistro/internal/domain/repository"
	"bistro/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// restaurantRepository implements the repository.RestaurantRepository interface.
type restaurantRepository struct {
	db *gorm.DB
}

// NewRestaurantRepository is the constructor for restaurantRepository.
func NewRestaurantRepository(db *gorm.DB) repository.RestaurantRepository {
	return &restaurantRepository{db: db}
}

// List returns one page of restaurants plus the total count of matches.
func (repo *restaurantRepository) List(ctx context.Context, filter repository.RestaurantFilter) ([]*entity.Restaurant, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.RestaurantModel{})

	if !filter.IncludeInactive {
		query = query.Where("is_active = ?", true)
	}
	if filter.City != "" {
		query = query.Where("city ILIKE ?", "%"+filter.City+"%")
	}
	if filter.Area != "" {
		query = query.Where("area ILIKE ?", "%"+filter.Area+"%")
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where(
			"name ILIKE ? OR description ILIKE ? OR city ILIKE ? OR area ILIKE ?",
			pattern, pattern, pattern, pattern,
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count restaurants")
	}

	sortKey := filter.SortBy
	if sortKey == "" {
		sortKey = repository.RestaurantSortCreatedAt
	}
	direction := "ASC"
	if filter.Descending {
		direction = "DESC"
	}

	var restaurantModels []*model.RestaurantModel
	if err := query.
		Order(string(sortKey) + " " + direction).
		Limit(filter.Limit).
		Offset(filter.Offset).
		Find(&restaurantModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list restaurants")
	}

	restaurants := make([]*entity.Restaurant, 0, len(restaurantModels))
	for _, restaurantM := range restaurantModels {
		restaurants = append(restaurants, toRestaurantDomain(restaurantM))
	}

	return restaurants, total, nil
}

// FindByID retrieves a single restaurant regardless of active state.
func (repo *restaurantRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Restaurant, error) {
	var restaurantM model.RestaurantModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&restaurantM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRestaurantNotFound
		}

		return nil, errors.Wrap(err, "failed to find restaurant by id")
	}

	return toRestaurantDomain(&restaurantM), nil
}

// Create persists a new restaurant. A slug collision surfaces as the
// domain's duplicate-slug error rather than a generic backend failure.
func (repo *restaurantRepository) Create(ctx context.Context, restaurant *entity.Restaurant) error {
	restaurantM := fromRestaurantDomain(restaurant)

	if err := repo.db.WithContext(ctx).Create(restaurantM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateSlug
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "invalid owner reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create restaurant")
	}

	restaurant.ID = restaurantM.ID
	restaurant.CreatedAt = restaurantM.CreatedAt
	restaurant.UpdatedAt = restaurantM.UpdatedAt

	return nil
}

// Update modifies an existing restaurant. Select("*") forces zero-valued
// columns (cleared text, explicit false, zero coordinates) into the
// statement, which a struct Updates would otherwise skip.
func (repo *restaurantRepository) Update(ctx context.Context, restaurant *entity.Restaurant) error {
	restaurantM := fromRestaurantDomain(restaurant)
	restaurantM.ID = restaurant.ID

	result := repo.db.WithContext(ctx).
		Model(&model.RestaurantModel{}).
		Where("id = ?", restaurant.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(restaurantM)

	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrDuplicateSlug
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update restaurant")
	}

	if result.RowsAffected == 0 {
		return repository.ErrRestaurantNotFound
	}

	return nil
}

// SoftDelete flips is_active to false, keeping the row retrievable.
func (repo *restaurantRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.RestaurantModel{}).
		Where("id = ?", id).
		Update("is_active", false)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to soft delete restaurant")
	}

	if result.RowsAffected == 0 {
		return repository.ErrRestaurantNotFound
	}

	return nil
}

// HardDelete removes the row permanently.
func (repo *restaurantRepository) HardDelete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.RestaurantModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to hard delete restaurant")
	}

	if result.RowsAffected == 0 {
		return repository.ErrRestaurantNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toRestaurantDomain converts a GORM RestaurantModel to a domain Restaurant entity.
func toRestaurantDomain(data *model.RestaurantModel) *entity.Restaurant {
	if data == nil {
		return nil
	}

	return &entity.Restaurant{
		ID:                 data.ID,
		Slug:               data.Slug,
		Name:               data.Name,
		Description:        data.Description,
		OwnerUserID:        data.OwnerUserID,
		City:               data.City,
		Area:               data.Area,
		Address:            data.Address,
		Phone:              data.Phone,
		Latitude:           data.Latitude,
		Longitude:          data.Longitude,
		Menu:               []byte(data.Menu),
		BookingEnabled:     boolValue(data.BookingEnabled),
		AvgDurationMinutes: data.AvgDurationMinutes,
		IsActive:           boolValue(data.IsActive),
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}

// fromRestaurantDomain converts a domain Restaurant entity to a GORM RestaurantModel.
func fromRestaurantDomain(data *entity.Restaurant) *model.RestaurantModel {
	if data == nil {
		return nil
	}

	return &model.RestaurantModel{
		ID:                 data.ID,
		Slug:               data.Slug,
		Name:               data.Name,
		Description:        data.Description,
		OwnerUserID:        data.OwnerUserID,
		City:               data.City,
		Area:               data.Area,
		Address:            data.Address,
		Phone:              data.Phone,
		Latitude:           data.Latitude,
		Longitude:          data.Longitude,
		Menu:               []byte(data.Menu),
		BookingEnabled:     &data.BookingEnabled,
		AvgDurationMinutes: data.AvgDurationMinutes,
		IsActive:           &data.IsActive,
	}
}

// boolValue unwraps a model bool column. The columns are not null, so nil
// only appears on a model that never came from a row.
func boolValue(b *bool) bool {
	return b != nil && *b
}
