package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims are the custom claims embedded in a session token.
// Identity is the caller's stable external identity (the token subject).
type SessionClaims struct {
	Identity string
	Email    string
	Role     string
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and validating session tokens.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// IssueSession creates a signed session token embedding identity, email and role.
	IssueSession(identity, email, role string) (string, error)

	// ValidateSession checks a token string and returns its claims.
	ValidateSession(tokenString string) (*SessionClaims, error)

	// SessionDuration returns the configured session token lifetime.
	SessionDuration() time.Duration
}
