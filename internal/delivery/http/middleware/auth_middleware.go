package middleware

import (
	"strings"

	deliverycontext "bistro/internal/delivery/context"
	"bistro/internal/delivery/http/response"
	"bistro/internal/domain/entity"
	"bistro/internal/domain/repository"
	"bistro/internal/domain/service"
	"bistro/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthMiddleware resolves session tokens into an Actor on the request context.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	userRepo repository.UserRepository
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, userRepo repository.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, userRepo: userRepo}
}

// Authenticate validates the bearer token and resolves the caller's registry
// row on every request. A valid token whose identity has no registry row
// still passes, with RoleNone; the guards downstream deny it.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "UNAUTHENTICATED", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "UNAUTHENTICATED", "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateSession(tokenString)
		if err != nil {
			return response.Unauthorized(c, "SESSION_EXPIRED", "Invalid or expired session token")
		}

		actor := usecase.Actor{
			Identity: claims.Identity,
			Email:    claims.Email,
			Role:     entity.RoleNone,
		}

		user, err := m.userRepo.FindByAuthID(c.Request().Context(), claims.Identity)
		switch {
		case err == nil:
			actor.UserID = user.ID
			actor.Email = user.Email
			actor.Role = user.Role
		case errors.Is(err, repository.ErrUserNotFound):
			// No registry row is not a failure here.
		default:
			return errors.Wrap(err, "failed to resolve caller registry row")
		}

		deliverycontext.SetActor(c, actor)

		return next(c)
	}
}

// RequireAdmin allows only admin and superadmin callers through.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		actor, ok := deliverycontext.GetActor(c)
		if !ok {
			return response.Forbidden(c, "FORBIDDEN", "Permission denied: caller information missing")
		}

		if !actor.Role.IsAdmin() {
			return response.Forbidden(c, "FORBIDDEN", "Permission denied: administrator role required")
		}

		return next(c)
	}
}
