package usecase

import (
	"context"

	"bistro/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateCorporateInput defines the data required to create a corporate
// account. The owner must exist in the registry with a matching email, and
// SubscriptionID, when set, must resolve to a known plan.
type CreateCorporateInput struct {
	Name           string
	OwnerUserID    uuid.UUID
	OwnerEmail     string
	Seats          int
	SubscriptionID *uuid.UUID
}

// EmployeeInput is one entry of an employee merge batch.
type EmployeeInput struct {
	UserID uuid.UUID
	Email  string
	Name   string
}

// CorporateUsecase defines the interface for corporate account operations.
// All operations are admin-only; the handler guards the role before calling.
type CorporateUsecase interface {
	Get(ctx context.Context, id uuid.UUID) (*entity.Corporate, error)
	Create(ctx context.Context, input *CreateCorporateInput) (*entity.Corporate, error)

	// MergeEmployees folds the batch into the corporate's employee list,
	// last-write-wins per user id. The whole batch is validated before any
	// write: every user must exist, every email must match the registry,
	// and the merged list must fit the seat capacity.
	MergeEmployees(ctx context.Context, id uuid.UUID, batch []EmployeeInput) (*entity.Corporate, error)

	// RemoveEmployee removes one employee by user id. Removing an absent id
	// is a no-op success.
	RemoveEmployee(ctx context.Context, id uuid.UUID, userID uuid.UUID) (*entity.Corporate, error)
}
