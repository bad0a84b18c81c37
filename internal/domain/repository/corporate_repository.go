package repository

import (
	"context"
	"errors"

	"bistro/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrCorporateNotFound is returned when no corporate matches the given id.
var ErrCorporateNotFound = errors.New("corporate not found")

// ErrPlanNotFound is returned when a subscription id resolves to no plan.
var ErrPlanNotFound = errors.New("subscription plan not found")

// CorporateRepository defines persistence operations for corporate accounts.
// The employee list is an embedded JSON column; UpdateEmployees replaces it
// wholesale (the merge itself happens in the usecase layer).
type CorporateRepository interface {
	// FindByID retrieves a single corporate account.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Corporate, error)

	// Create persists a new corporate account.
	Create(ctx context.Context, corporate *entity.Corporate) error

	// UpdateEmployees writes back the full employee list of a corporate.
	UpdateEmployees(ctx context.Context, id uuid.UUID, employees []entity.Employee) error

	// FindPlanByID resolves a subscription id to its plan.
	FindPlanByID(ctx context.Context, id uuid.UUID) (*entity.SubscriptionPlan, error)
}
