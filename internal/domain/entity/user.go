// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is a row in the user registry. AuthID is the stable external identity
// issued by the authentication provider; it is what session tokens carry and
// what login-or-register is keyed on.
type User struct {
	ID           uuid.UUID  // The unique identifier for the registry row.
	AuthID       string     // External identity from the auth provider, unique.
	Email        string     // The user's primary contact email, unique.
	Name         string     // Display name.
	Phone        string     // Contact phone number, free-form.
	Role         Role       // Drives every authorization decision.
	PasswordHash string     // Bcrypt hash, set only for directly provisioned accounts.
	LastLoginAt  *time.Time // Last successful login through the session issuer.
	LastOpenedAt *time.Time // Last time the client app was opened with this account.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
