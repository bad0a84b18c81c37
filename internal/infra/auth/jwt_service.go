// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"bistro/config"
	"bistro/internal/domain/service"
)

// sessionTTL is the fixed lifetime of an issued session token.
const sessionTTL = 7 * 24 * time.Hour

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret     string        // Secret key for signing session tokens.
	sessionTTL time.Duration // Time-to-live for session tokens.
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Session == "" {
		return nil, errors.New("session signing secret must be provided")
	}

	return &jwtService{
		secret:     cfg.SecretKey.Session,
		sessionTTL: sessionTTL,
	}, nil
}

// IssueSession creates a signed session token embedding identity, email and role.
func (s *jwtService) IssueSession(identity, email, role string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   identity,
		"email": email,
		"role":  role,
		"iat":   now.Unix(),
		"exp":   now.Add(s.sessionTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(s.secret))
}

// ValidateSession checks the validity of a token string and extracts its claims.
func (s *jwtService) ValidateSession(tokenString string) (*service.SessionClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, jwt.ErrTokenInvalidClaims
	}

	identity, _ := mapClaims["sub"].(string)
	if identity == "" {
		return nil, jwt.ErrTokenInvalidSubject
	}
	email, _ := mapClaims["email"].(string)
	role, _ := mapClaims["role"].(string)

	return &service.SessionClaims{
		Identity: identity,
		Email:    email,
		Role:     role,
	}, nil
}

// SessionDuration returns the configured session token lifetime.
func (s *jwtService) SessionDuration() time.Duration {
	return s.sessionTTL
}
