package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"bistro/internal/domain/entity"
	domainerrors "bistro/internal/domain/errors"
	"bistro/internal/domain/repository"
	"bistro/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestRestaurantService(t *testing.T) (usecase.RestaurantUsecase, *mockRestaurantRepository) {
	t.Helper()

	repo := &mockRestaurantRepository{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewRestaurantService(repo, logger), repo
}

func adminActor() usecase.Actor {
	return usecase.Actor{UserID: uuid.New(), Role: entity.RoleAdmin}
}

func TestRestaurantService_Create_AppliesDefaults(t *testing.T) {
	service, repo := createTestRestaurantService(t)
	ctx := context.Background()

	repo.On("Create", ctx, mock.AnythingOfType("*entity.Restaurant")).
		Run(func(args mock.Arguments) {
			restaurant := args.Get(1).(*entity.Restaurant)
			restaurant.ID = uuid.New()
		}).
		Return(nil)

	restaurant, err := service.Create(ctx, &usecase.CreateRestaurantInput{
		Slug: "trattoria-rosa",
		Name: "Trattoria Rosa",
	})

	require.NoError(t, err)
	assert.True(t, restaurant.IsActive)
	assert.True(t, restaurant.BookingEnabled)
	assert.Equal(t, entity.DefaultAvgDurationMinutes, restaurant.AvgDurationMinutes)
}

func TestRestaurantService_Create_ExplicitValuesWin(t *testing.T) {
	service, repo := createTestRestaurantService(t)
	ctx := context.Background()

	repo.On("Create", ctx, mock.AnythingOfType("*entity.Restaurant")).Return(nil)

	booking := false
	duration := 45
	restaurant, err := service.Create(ctx, &usecase.CreateRestaurantInput{
		Slug:               "quick-bites",
		Name:               "Quick Bites",
		BookingEnabled:     &booking,
		AvgDurationMinutes: &duration,
	})

	require.NoError(t, err)
	assert.False(t, restaurant.BookingEnabled)
	assert.Equal(t, 45, restaurant.AvgDurationMinutes)
}

func TestRestaurantService_Create_DuplicateSlug(t *testing.T) {
	service, repo := createTestRestaurantService(t)
	ctx := context.Background()

	repo.On("Create", ctx, mock.AnythingOfType("*entity.Restaurant")).
		Return(repository.ErrDuplicateSlug)

	_, err := service.Create(ctx, &usecase.CreateRestaurantInput{Slug: "taken"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrDuplicateSlug))
}

func TestRestaurantService_Get_NotFound(t *testing.T) {
	service, repo := createTestRestaurantService(t)
	ctx := context.Background()
	id := uuid.New()

	repo.On("FindByID", ctx, id).Return(nil, repository.ErrRestaurantNotFound)

	_, err := service.Get(ctx, id)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrRestaurantNotFound))
}

func TestRestaurantService_Update_OwningPartner(t *testing.T) {
	service, repo := createTestRestaurantService(t)
	ctx := context.Background()

	partnerID := uuid.New()
	actor := usecase.Actor{UserID: partnerID, Role: entity.RoleRestaurantPartner}
	id := uuid.New()

	repo.On("FindByID", ctx, id).Return(&entity.Restaurant{
		ID:          id,
		Slug:        "trattoria-rosa",
		OwnerUserID: &partnerID,
	}, nil)
	repo.On("Update", ctx, mock.AnythingOfType("*entity.Restaurant")).Return(nil)

	name := "Renamed"
	restaurant, err := service.Update(ctx, actor, id, &usecase.UpdateRestaurantInput{Name: &name})

	require.NoError(t, err)
	assert.Equal(t, "Renamed", restaurant.Name)
	assert.Equal(t, "trattoria-rosa", restaurant.Slug)
}

func TestRestaurantService_Update_ForeignPartnerDenied(t *testing.T) {
	service, repo := createTestRestaurantService(t)
	ctx := context.Background()

	otherOwner := uuid.New()
	actor := usecase.Actor{UserID: uuid.New(), Role: entity.RoleRestaurantPartner}
	id := uuid.New()

	repo.On("FindByID", ctx, id).Return(&entity.Restaurant{
		ID:          id,
		OwnerUserID: &otherOwner,
	}, nil)

	name := "Hijacked"
	_, err := service.Update(ctx, actor, id, &usecase.UpdateRestaurantInput{Name: &name})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrNotOwner))
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestRestaurantService_Update_MissingResourceIs404BeforeOwnership(t *testing.T) {
	service, repo := createTestRestaurantService(t)
	ctx := context.Background()
	id := uuid.New()

	actor := usecase.Actor{UserID: uuid.New(), Role: entity.RoleRestaurantPartner}
	repo.On("FindByID", ctx, id).Return(nil, repository.ErrRestaurantNotFound)

	name := "Ghost"
	_, err := service.Update(ctx, actor, id, &usecase.UpdateRestaurantInput{Name: &name})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrRestaurantNotFound))
}

func TestRestaurantService_Delete_SoftByDefault(t *testing.T) {
	service, repo := createTestRestaurantService(t)
	ctx := context.Background()
	id := uuid.New()

	repo.On("FindByID", ctx, id).Return(&entity.Restaurant{ID: id}, nil)
	repo.On("SoftDelete", ctx, id).Return(nil)

	deleted, err := service.Delete(ctx, adminActor(), id, false)

	require.NoError(t, err)
	assert.Equal(t, usecase.DeletedSoft, deleted)
	repo.AssertNotCalled(t, "HardDelete", mock.Anything, mock.Anything)
}

func TestRestaurantService_Delete_Hard(t *testing.T) {
	service, repo := createTestRestaurantService(t)
	ctx := context.Background()
	id := uuid.New()

	repo.On("FindByID", ctx, id).Return(&entity.Restaurant{ID: id}, nil)
	repo.On("HardDelete", ctx, id).Return(nil)

	deleted, err := service.Delete(ctx, adminActor(), id, true)

	require.NoError(t, err)
	assert.Equal(t, usecase.DeletedHard, deleted)
	repo.AssertNotCalled(t, "SoftDelete", mock.Anything, mock.Anything)
}

func TestRestaurantService_Delete_RegularUserForbidden(t *testing.T) {
	service, repo := createTestRestaurantService(t)
	ctx := context.Background()
	id := uuid.New()

	repo.On("FindByID", ctx, id).Return(&entity.Restaurant{ID: id}, nil)

	_, err := service.Delete(ctx, usecase.Actor{UserID: uuid.New(), Role: entity.RoleUser}, id, false)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestRestaurantService_List_PassesFilterThrough(t *testing.T) {
	service, repo := createTestRestaurantService(t)
	ctx := context.Background()

	repo.On("List", ctx, repository.RestaurantFilter{
		Search: "pasta",
		City:   "Berlin",
		Limit:  20,
		SortBy: repository.RestaurantSortName,
	}).Return([]*entity.Restaurant{{Name: "Pasta Place"}}, int64(1), nil)

	page, err := service.List(ctx, &usecase.ListRestaurantsInput{
		Search: "pasta",
		City:   "Berlin",
		Limit:  20,
		SortBy: repository.RestaurantSortName,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), page.Total)
	require.Len(t, page.Items, 1)
	assert.Equal(t, 20, page.Limit)
}
