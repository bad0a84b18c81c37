// Package impl contains the implementation of the application's business logic.
package impl

import (
	domainerrors "bistro/internal/domain/errors"
	"bistro/internal/usecase"

	"github.com/google/uuid"
)

// ensureOwnerOrAdmin enforces the owner-or-admin rule on a fetched resource.
// Admin roles pass unconditionally. Partner roles pass only when the
// resource has an owner and it is the actor. Callers must resolve the
// resource first so that a missing row surfaces as 404, not 403.
func ensureOwnerOrAdmin(actor usecase.Actor, ownerUserID *uuid.UUID) error {
	if actor.Role.IsAdmin() {
		return nil
	}

	if actor.Role.IsPartner() {
		if ownerUserID != nil && *ownerUserID == actor.UserID {
			return nil
		}

		return domainerrors.ErrNotOwner
	}

	return domainerrors.ErrForbidden
}
