package postgres

import (
	"context"
	"encoding/json"

	"bistro/internal/domain/entity"
	"bistro/internal/domain/repository"
	"bistro/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// storeRepository implements the repository.StoreRepository interface.
type storeRepository struct {
	db *gorm.DB
}

// NewStoreRepository is the constructor for storeRepository.
func NewStoreRepository(db *gorm.DB) repository.StoreRepository {
	return &storeRepository{db: db}
}

// List returns one page of stores plus the total count of matches,
// ordered by creation time descending.
func (repo *storeRepository) List(ctx context.Context, filter repository.StoreFilter) ([]*entity.Store, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.StoreModel{})

	if !filter.IncludeInactive {
		query = query.Where("is_active = ?", true)
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Subcategory != "" {
		query = query.Where("subcategory = ?", filter.Subcategory)
	}
	if filter.FeaturedOnly {
		query = query.Where("is_featured = ?", true)
	}
	if filter.Tag != "" {
		// JSONB set containment on the tags column. Marshal keeps a tag
		// containing quotes or backslashes valid JSON.
		tagJSON, _ := json.Marshal([]string{filter.Tag})
		query = query.Where("tags @> ?", string(tagJSON))
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where(
			"name ILIKE ? OR category ILIKE ? OR subcategory ILIKE ?",
			pattern, pattern, pattern,
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count stores")
	}

	var storeModels []*model.StoreModel
	if err := query.
		Order("created_at DESC").
		Limit(filter.Limit).
		Offset(filter.Offset).
		Find(&storeModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list stores")
	}

	stores := make([]*entity.Store, 0, len(storeModels))
	for _, storeM := range storeModels {
		stores = append(stores, toStoreDomain(storeM))
	}

	return stores, total, nil
}

// FindByID retrieves a single store, optionally expanding sub-resources.
func (repo *storeRepository) FindByID(ctx context.Context, id uuid.UUID, include repository.StoreInclude) (*entity.Store, error) {
	query := repo.db.WithContext(ctx)
	if include.Payment {
		query = query.Preload("Payment")
	}
	if include.Catalogue {
		query = query.Preload("CatalogueItems")
	}

	var storeM model.StoreModel
	if err := query.
		Where("id = ?", id).
		First(&storeM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrStoreNotFound
		}

		return nil, errors.Wrap(err, "failed to find store by id")
	}

	return toStoreDomain(&storeM), nil
}

// SoftDelete flips is_active to false.
func (repo *storeRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.StoreModel{}).
		Where("id = ?", id).
		Update("is_active", false)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to soft delete store")
	}

	if result.RowsAffected == 0 {
		return repository.ErrStoreNotFound
	}

	return nil
}

// HardDelete removes the store row; payment and catalogue rows are removed
// by the database's ON DELETE CASCADE rules.
func (repo *storeRepository) HardDelete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.StoreModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to hard delete store")
	}

	if result.RowsAffected == 0 {
		return repository.ErrStoreNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toStoreDomain converts a GORM StoreModel to a domain Store entity.
func toStoreDomain(data *model.StoreModel) *entity.Store {
	if data == nil {
		return nil
	}

	store := &entity.Store{
		ID:          data.ID,
		Slug:        data.Slug,
		Name:        data.Name,
		Category:    data.Category,
		Subcategory: data.Subcategory,
		Tags:        data.Tags,
		OwnerUserID: data.OwnerUserID,
		IsActive:    data.IsActive,
		IsFeatured:  data.IsFeatured,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}

	if data.Payment != nil {
		store.Payment = &entity.StorePayment{
			StoreID:       data.Payment.StoreID,
			AccountHolder: data.Payment.AccountHolder,
			IBAN:          data.Payment.IBAN,
			BankName:      data.Payment.BankName,
			UpdatedAt:     data.Payment.UpdatedAt,
		}
	}

	if len(data.CatalogueItems) > 0 {
		items := make([]*entity.StoreCatalogueItem, 0, len(data.CatalogueItems))
		for _, itemM := range data.CatalogueItems {
			items = append(items, &entity.StoreCatalogueItem{
				ID:        itemM.ID,
				StoreID:   itemM.StoreID,
				Name:      itemM.Name,
				Price:     itemM.Price,
				ImageURL:  itemM.ImageURL,
				IsActive:  itemM.IsActive,
				CreatedAt: itemM.CreatedAt,
				UpdatedAt: itemM.UpdatedAt,
			})
		}
		store.CatalogueItems = items
	}

	return store
}
