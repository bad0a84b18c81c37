package postgres

import (
	"context"

	"bistro/internal/domain/entity"
	domainerrors "bistro/internal/domain/errors"
	"bistro/internal/domain/repository"
	"bistro/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// corporateRepository implements the repository.CorporateRepository interface.
type corporateRepository struct {
	db *gorm.DB
}

// NewCorporateRepository is the constructor for corporateRepository.
func NewCorporateRepository(db *gorm.DB) repository.CorporateRepository {
	return &corporateRepository{db: db}
}

// FindByID retrieves a single corporate account.
func (repo *corporateRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Corporate, error) {
	var corporateM model.CorporateModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&corporateM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCorporateNotFound
		}

		return nil, errors.Wrap(err, "failed to find corporate by id")
	}

	return toCorporateDomain(&corporateM), nil
}

// Create persists a new corporate account.
func (repo *corporateRepository) Create(ctx context.Context, corporate *entity.Corporate) error {
	corporateM := fromCorporateDomain(corporate)

	if err := repo.db.WithContext(ctx).Create(corporateM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "invalid owner reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "missing required corporate information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create corporate")
	}

	corporate.ID = corporateM.ID
	corporate.CreatedAt = corporateM.CreatedAt
	corporate.UpdatedAt = corporateM.UpdatedAt

	return nil
}

// UpdateEmployees writes back the full employee list of a corporate.
// The merge semantics live in the usecase layer; this is a plain replace
// with no compare-and-swap, so concurrent merges can lose updates.
func (repo *corporateRepository) UpdateEmployees(ctx context.Context, id uuid.UUID, employees []entity.Employee) error {
	records := make([]model.EmployeeRecord, 0, len(employees))
	for _, emp := range employees {
		records = append(records, model.EmployeeRecord(emp))
	}

	result := repo.db.WithContext(ctx).
		Model(&model.CorporateModel{}).
		Where("id = ?", id).
		Update("employees", datatypes.NewJSONSlice(records))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update corporate employees")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCorporateNotFound
	}

	return nil
}

// FindPlanByID resolves a subscription id to its plan.
func (repo *corporateRepository) FindPlanByID(ctx context.Context, id uuid.UUID) (*entity.SubscriptionPlan, error) {
	var planM model.SubscriptionPlanModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&planM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPlanNotFound
		}

		return nil, errors.Wrap(err, "failed to find subscription plan")
	}

	return &entity.SubscriptionPlan{ID: planM.ID, Name: planM.Name}, nil
}

// --- Mapper Functions ---

// toCorporateDomain converts a GORM CorporateModel to a domain Corporate entity.
func toCorporateDomain(data *model.CorporateModel) *entity.Corporate {
	if data == nil {
		return nil
	}

	employees := make([]entity.Employee, 0, len(data.Employees))
	for _, record := range data.Employees {
		employees = append(employees, entity.Employee(record))
	}

	return &entity.Corporate{
		ID:             data.ID,
		Name:           data.Name,
		OwnerUserID:    data.OwnerUserID,
		OwnerEmail:     data.OwnerEmail,
		Seats:          data.Seats,
		Employees:      employees,
		SubscriptionID: data.SubscriptionID,
		PlanName:       data.PlanName,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

// fromCorporateDomain converts a domain Corporate entity to a GORM CorporateModel.
func fromCorporateDomain(data *entity.Corporate) *model.CorporateModel {
	if data == nil {
		return nil
	}

	records := make([]model.EmployeeRecord, 0, len(data.Employees))
	for _, emp := range data.Employees {
		records = append(records, model.EmployeeRecord(emp))
	}

	return &model.CorporateModel{
		ID:             data.ID,
		Name:           data.Name,
		OwnerUserID:    data.OwnerUserID,
		OwnerEmail:     data.OwnerEmail,
		Seats:          data.Seats,
		Employees:      datatypes.NewJSONSlice(records),
		SubscriptionID: data.SubscriptionID,
		PlanName:       data.PlanName,
	}
}
