package impl

import (
	"testing"

	"bistro/internal/domain/entity"
	domainerrors "bistro/internal/domain/errors"
	"bistro/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureOwnerOrAdmin(t *testing.T) {
	ownerID := uuid.New()

	tests := []struct {
		name    string
		actor   usecase.Actor
		owner   *uuid.UUID
		wantErr error
	}{
		{
			name:  "admin passes without ownership",
			actor: usecase.Actor{UserID: uuid.New(), Role: entity.RoleAdmin},
			owner: &ownerID,
		},
		{
			name:  "superadmin passes without ownership",
			actor: usecase.Actor{UserID: uuid.New(), Role: entity.RoleSuperAdmin},
			owner: nil,
		},
		{
			name:  "owning partner passes",
			actor: usecase.Actor{UserID: ownerID, Role: entity.RoleRestaurantPartner},
			owner: &ownerID,
		},
		{
			name:    "foreign partner denied",
			actor:   usecase.Actor{UserID: uuid.New(), Role: entity.RoleRestaurantPartner},
			owner:   &ownerID,
			wantErr: domainerrors.ErrNotOwner,
		},
		{
			name:    "partner denied on unowned resource",
			actor:   usecase.Actor{UserID: ownerID, Role: entity.RoleStorePartner},
			owner:   nil,
			wantErr: domainerrors.ErrNotOwner,
		},
		{
			name:    "regular user denied even as owner",
			actor:   usecase.Actor{UserID: ownerID, Role: entity.RoleUser},
			owner:   &ownerID,
			wantErr: domainerrors.ErrForbidden,
		},
		{
			name:    "no role denied",
			actor:   usecase.Actor{Role: entity.RoleNone},
			owner:   &ownerID,
			wantErr: domainerrors.ErrForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ensureOwnerOrAdmin(tt.actor, tt.owner)
			if tt.wantErr == nil {
				require.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
