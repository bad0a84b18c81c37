package postgres

import (
	"context"

	"bistro/internal/domain/entity"
	"bistro/internal/domain/repository"
	"bistro/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// heroOfferRepository implements the repository.HeroOfferRepository interface.
type heroOfferRepository struct {
	db *gorm.DB
}

// NewHeroOfferRepository is the constructor for heroOfferRepository.
func NewHeroOfferRepository(db *gorm.DB) repository.HeroOfferRepository {
	return &heroOfferRepository{db: db}
}

// ListActive returns active offers ordered by priority ascending.
func (repo *heroOfferRepository) ListActive(ctx context.Context) ([]*entity.HomeHeroOffer, error) {
	var offerModels []*model.HomeHeroOfferModel

	if err := repo.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("priority ASC").
		Find(&offerModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list hero offers")
	}

	offers := make([]*entity.HomeHeroOffer, 0, len(offerModels))
	for _, offerM := range offerModels {
		offers = append(offers, toHeroOfferDomain(offerM))
	}

	return offers, nil
}

// Create persists a new offer.
func (repo *heroOfferRepository) Create(ctx context.Context, offer *entity.HomeHeroOffer) error {
	offerM := fromHeroOfferDomain(offer)

	if err := repo.db.WithContext(ctx).Create(offerM).Error; err != nil {
		return errors.Wrap(err, "failed to create hero offer")
	}

	offer.ID = offerM.ID
	offer.CreatedAt = offerM.CreatedAt
	offer.UpdatedAt = offerM.UpdatedAt

	return nil
}

// Delete removes an offer permanently by numeric id.
func (repo *heroOfferRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.HomeHeroOfferModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete hero offer")
	}

	if result.RowsAffected == 0 {
		return repository.ErrOfferNotFound
	}

	return nil
}

// spotlightRepository implements the repository.SpotlightRepository interface.
type spotlightRepository struct {
	db *gorm.DB
}

// NewSpotlightRepository is the constructor for spotlightRepository.
func NewSpotlightRepository(db *gorm.DB) repository.SpotlightRepository {
	return &spotlightRepository{db: db}
}

// ListActive returns active items for a module ordered by order_index ascending.
func (repo *spotlightRepository) ListActive(ctx context.Context, moduleType string) ([]*entity.SpotlightItem, error) {
	query := repo.db.WithContext(ctx).Where("is_active = ?", true)
	if moduleType != "" {
		query = query.Where("module_type = ?", moduleType)
	}

	var itemModels []*model.SpotlightItemModel
	if err := query.
		Order("order_index ASC").
		Find(&itemModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list spotlight items")
	}

	items := make([]*entity.SpotlightItem, 0, len(itemModels))
	for _, itemM := range itemModels {
		items = append(items, toSpotlightDomain(itemM))
	}

	return items, nil
}

// FindByID retrieves a single item regardless of active state.
func (repo *spotlightRepository) FindByID(ctx context.Context, id int64) (*entity.SpotlightItem, error) {
	var itemM model.SpotlightItemModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&itemM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSpotlightNotFound
		}

		return nil, errors.Wrap(err, "failed to find spotlight item by id")
	}

	return toSpotlightDomain(&itemM), nil
}

// Create persists a new item.
func (repo *spotlightRepository) Create(ctx context.Context, item *entity.SpotlightItem) error {
	itemM := fromSpotlightDomain(item)

	if err := repo.db.WithContext(ctx).Create(itemM).Error; err != nil {
		return errors.Wrap(err, "failed to create spotlight item")
	}

	item.ID = itemM.ID
	item.CreatedAt = itemM.CreatedAt
	item.UpdatedAt = itemM.UpdatedAt

	return nil
}

// Update modifies an existing item. Select("*") forces zero-valued columns
// (explicit false, order index zero) into the statement, which a struct
// Updates would otherwise skip.
func (repo *spotlightRepository) Update(ctx context.Context, item *entity.SpotlightItem) error {
	itemM := fromSpotlightDomain(item)
	itemM.ID = item.ID

	result := repo.db.WithContext(ctx).
		Model(&model.SpotlightItemModel{}).
		Where("id = ?", item.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(itemM)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update spotlight item")
	}

	if result.RowsAffected == 0 {
		return repository.ErrSpotlightNotFound
	}

	return nil
}

// SoftDelete flips is_active to false.
func (repo *spotlightRepository) SoftDelete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).
		Model(&model.SpotlightItemModel{}).
		Where("id = ?", id).
		Update("is_active", false)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to soft delete spotlight item")
	}

	if result.RowsAffected == 0 {
		return repository.ErrSpotlightNotFound
	}

	return nil
}

// UpdateOrderIndex sets the order index of a single item.
func (repo *spotlightRepository) UpdateOrderIndex(ctx context.Context, id int64, orderIndex int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.SpotlightItemModel{}).
		Where("id = ?", id).
		Update("order_index", orderIndex)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update spotlight order index")
	}

	if result.RowsAffected == 0 {
		return repository.ErrSpotlightNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toHeroOfferDomain(data *model.HomeHeroOfferModel) *entity.HomeHeroOffer {
	if data == nil {
		return nil
	}

	return &entity.HomeHeroOffer{
		ID:        data.ID,
		Title:     data.Title,
		MediaURL:  data.MediaURL,
		Priority:  data.Priority,
		IsActive:  boolValue(data.IsActive),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromHeroOfferDomain(data *entity.HomeHeroOffer) *model.HomeHeroOfferModel {
	if data == nil {
		return nil
	}

	return &model.HomeHeroOfferModel{
		ID:       data.ID,
		Title:    data.Title,
		MediaURL: data.MediaURL,
		Priority: data.Priority,
		IsActive: &data.IsActive,
	}
}

func toSpotlightDomain(data *model.SpotlightItemModel) *entity.SpotlightItem {
	if data == nil {
		return nil
	}

	return &entity.SpotlightItem{
		ID:         data.ID,
		Title:      data.Title,
		ModuleType: data.ModuleType,
		MediaURL:   data.MediaURL,
		OrderIndex: data.OrderIndex,
		IsActive:   boolValue(data.IsActive),
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

func fromSpotlightDomain(data *entity.SpotlightItem) *model.SpotlightItemModel {
	if data == nil {
		return nil
	}

	return &model.SpotlightItemModel{
		ID:         data.ID,
		Title:      data.Title,
		ModuleType: data.ModuleType,
		MediaURL:   data.MediaURL,
		OrderIndex: data.OrderIndex,
		IsActive:   &data.IsActive,
	}
}
