package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "bistro/internal/delivery/context"
	"bistro/internal/domain/entity"
	domainerrors "bistro/internal/domain/errors"
	"bistro/internal/domain/repository"
	"bistro/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// corporateService implements the CorporateUsecase interface.
type corporateService struct {
	txManager     repository.TransactionManager
	corporateRepo repository.CorporateRepository
	logger        *slog.Logger
}

// NewCorporateService is the constructor for corporateService.
func NewCorporateService(
	txManager repository.TransactionManager,
	corporateRepo repository.CorporateRepository,
	logger *slog.Logger,
) usecase.CorporateUsecase {
	return &corporateService{
		txManager:     txManager,
		corporateRepo: corporateRepo,
		logger:        logger,
	}
}

func (srv *corporateService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Get retrieves a single corporate account.
func (srv *corporateService) Get(ctx context.Context, id uuid.UUID) (*entity.Corporate, error) {
	corporate, err := srv.corporateRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCorporateNotFound) {
			return nil, errors.Wrap(domainerrors.ErrCorporateNotFound, "corporate not found")
		}

		return nil, errors.Wrap(err, "failed to find corporate")
	}

	return corporate, nil
}

// Create validates the owner identity and subscription, then persists the
// corporate account within a single transaction.
func (srv *corporateService) Create(ctx context.Context, input *usecase.CreateCorporateInput) (*entity.Corporate, error) {
	srv.log(ctx).Info("Creating corporate", slog.String("name", input.Name), slog.Any("owner", input.OwnerUserID))

	var created *entity.Corporate

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()
		corporateRepo := repoFactory.NewCorporateRepository()

		owner, err := userRepo.FindByID(ctx, input.OwnerUserID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrValidationFailed, "owner user does not exist")
			}

			return errors.Wrap(err, "failed to find owner user")
		}
		if !entity.EmailMatches(input.OwnerEmail, owner.Email) {
			return errors.Wrap(domainerrors.ErrValidationFailed, "owner email does not match the registry email")
		}

		corporate := &entity.Corporate{
			Name:           input.Name,
			OwnerUserID:    input.OwnerUserID,
			OwnerEmail:     owner.Email,
			Seats:          input.Seats,
			SubscriptionID: input.SubscriptionID,
		}

		if input.SubscriptionID != nil {
			plan, err := corporateRepo.FindPlanByID(ctx, *input.SubscriptionID)
			if err != nil {
				if errors.Is(err, repository.ErrPlanNotFound) {
					return errors.Wrap(domainerrors.ErrPlanNotFound, "subscription does not resolve to a plan")
				}

				return errors.Wrap(err, "failed to resolve subscription plan")
			}
			corporate.PlanName = plan.Name
		}

		if err := corporateRepo.Create(ctx, corporate); err != nil {
			return errors.Wrap(err, "failed to create corporate")
		}

		created = corporate

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to execute corporate creation transaction", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute corporate creation transaction")
	}

	return created, nil
}

// MergeEmployees folds the batch into the corporate's employee list. The
// whole batch is validated before anything is written: every user id must
// exist, every supplied email must match the registry email, and the merged
// list must fit the seat capacity.
func (srv *corporateService) MergeEmployees(ctx context.Context, id uuid.UUID, batch []usecase.EmployeeInput) (*entity.Corporate, error) {
	if len(batch) == 0 {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "no employees to merge")
	}

	srv.log(ctx).Info("Merging corporate employees", slog.Any("id", id), slog.Int("count", len(batch)))

	var updated *entity.Corporate

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()
		corporateRepo := repoFactory.NewCorporateRepository()

		corporate, err := corporateRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrCorporateNotFound) {
				return errors.Wrap(domainerrors.ErrCorporateNotFound, "corporate not found")
			}

			return errors.Wrap(err, "failed to find corporate")
		}

		now := time.Now()
		employees := make([]entity.Employee, 0, len(batch))
		for _, item := range batch {
			user, err := userRepo.FindByID(ctx, item.UserID)
			if err != nil {
				if errors.Is(err, repository.ErrUserNotFound) {
					return errors.Wrapf(domainerrors.ErrUserNotFound, "employee user %s does not exist", item.UserID)
				}

				return errors.Wrap(err, "failed to find employee user")
			}
			if !entity.EmailMatches(item.Email, user.Email) {
				return errors.Wrapf(domainerrors.ErrEmployeeEmailMismatch, "employee %s", item.UserID)
			}

			name := item.Name
			if name == "" {
				name = user.Name
			}
			employees = append(employees, entity.Employee{
				UserID:  user.ID,
				Email:   user.Email,
				Name:    name,
				AddedAt: now,
			})
		}

		merged := entity.MergeEmployees(corporate.Employees, employees)
		if corporate.Seats > 0 && len(merged) > corporate.Seats {
			return errors.Wrapf(domainerrors.ErrSeatLimitExceeded, "%d employees over %d seats", len(merged), corporate.Seats)
		}

		if err := corporateRepo.UpdateEmployees(ctx, id, merged); err != nil {
			return errors.Wrap(err, "failed to update corporate employees")
		}

		corporate.Employees = merged
		updated = corporate

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to execute employee merge transaction", slog.Any("id", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute employee merge transaction")
	}

	return updated, nil
}

// RemoveEmployee removes one employee by user id. Removing an absent id is
// a no-op success.
func (srv *corporateService) RemoveEmployee(ctx context.Context, id uuid.UUID, userID uuid.UUID) (*entity.Corporate, error) {
	srv.log(ctx).Info("Removing corporate employee", slog.Any("id", id), slog.Any("userID", userID))

	var updated *entity.Corporate

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		corporateRepo := repoFactory.NewCorporateRepository()

		corporate, err := corporateRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrCorporateNotFound) {
				return errors.Wrap(domainerrors.ErrCorporateNotFound, "corporate not found")
			}

			return errors.Wrap(err, "failed to find corporate")
		}

		remainder := entity.RemoveEmployee(corporate.Employees, userID)
		if len(remainder) == len(corporate.Employees) {
			// Absent id, nothing to write.
			updated = corporate

			return nil
		}

		if err := corporateRepo.UpdateEmployees(ctx, id, remainder); err != nil {
			return errors.Wrap(err, "failed to update corporate employees")
		}

		corporate.Employees = remainder
		updated = corporate

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to execute employee removal transaction", slog.Any("id", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute employee removal transaction")
	}

	return updated, nil
}
