package impl

import (
	"context"
	"log/slog"

	deliverycontext "bistro/internal/delivery/context"
	"bistro/internal/domain/entity"
	"bistro/internal/domain/repository"
	"bistro/internal/usecase"

	"github.com/pkg/errors"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	userRepo repository.UserRepository
	logger   *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(
	userRepo repository.UserRepository,
	logger *slog.Logger,
) usecase.ProfileUsecase {
	return &profileService{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// UpsertDetails writes the caller's profile fields keyed by their external
// identity. A first-time caller gets a fresh registry row.
func (srv *profileService) UpsertDetails(ctx context.Context, actor usecase.Actor, input *usecase.UpsertDetailsInput) (*entity.User, error) {
	srv.log(ctx).Info("Upserting user details", slog.String("identity", actor.Identity))

	user, err := srv.userRepo.UpsertDetails(ctx, actor.Identity, actor.Email, input.Name, input.Phone)
	if err != nil {
		return nil, errors.Wrap(err, "failed to upsert user details")
	}

	return user, nil
}
