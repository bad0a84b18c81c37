package usecase

import (
	"context"

	"bistro/internal/domain/entity"
)

// UpsertDetailsInput defines the profile fields a caller may set on their
// own registry row.
type UpsertDetailsInput struct {
	Name  string
	Phone string
}

// ProfileUsecase defines the interface for profile-related business operations.
type ProfileUsecase interface {
	// UpsertDetails inserts or updates the caller's profile fields keyed by
	// their external identity, and returns the resulting row.
	UpsertDetails(ctx context.Context, actor Actor, input *UpsertDetailsInput) (*entity.User, error)
}
