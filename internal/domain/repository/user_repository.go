// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"bistro/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
// Callers resolving a caller's role treat it as "no role", not as a failure.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for the user registry.
type UserRepository interface {
	// FindByID retrieves a single user by their registry row id.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByAuthID retrieves a single user by their external identity.
	FindByAuthID(ctx context.Context, authID string) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create persists a new registry row.
	Create(ctx context.Context, user *entity.User) error

	// Update modifies an existing registry row.
	Update(ctx context.Context, user *entity.User) error

	// TouchLogin updates the last-login/last-opened timestamps.
	TouchLogin(ctx context.Context, id uuid.UUID) error

	// UpsertDetails inserts or updates the profile fields (name, phone) keyed
	// by external identity, and returns the resulting row.
	UpsertDetails(ctx context.Context, authID, email, name, phone string) (*entity.User, error)
}
