// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"bistro/internal/domain/entity"

	"github.com/google/uuid"
)

// Actor identifies the authenticated caller of an operation. It is resolved
// by the session middleware from the token claims plus the registry row.
// A valid token with no registry row yields a zero UserID and RoleNone.
type Actor struct {
	UserID   uuid.UUID
	Identity string
	Email    string
	Role     entity.Role
}

// IsAdmin reports whether the actor carries administrative write access.
func (a Actor) IsAdmin() bool {
	return a.Role.IsAdmin()
}
