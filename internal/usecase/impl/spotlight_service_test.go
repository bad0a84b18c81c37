package impl

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"bistro/internal/domain/entity"
	domainerrors "bistro/internal/domain/errors"
	"bistro/internal/domain/repository"
	"bistro/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestSpotlightService(t *testing.T) (usecase.SpotlightUsecase, *mockSpotlightRepository, *mockMediaStorage) {
	t.Helper()

	repo := &mockSpotlightRepository{}
	media := &mockMediaStorage{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewSpotlightService(repo, media, logger), repo, media
}

func TestSpotlightService_Create_UploadedFileWinsOverURL(t *testing.T) {
	service, repo, media := createTestSpotlightService(t)
	ctx := context.Background()

	content := strings.NewReader("fake image bytes")
	media.On("Save", ctx, "banner.png", "image/png", content).
		Return("https://cdn.example.com/banner.png", nil)
	repo.On("Create", ctx, mock.AnythingOfType("*entity.SpotlightItem")).
		Run(func(args mock.Arguments) {
			item := args.Get(1).(*entity.SpotlightItem)
			item.ID = 42
		}).
		Return(nil)

	item, err := service.Create(ctx, &usecase.CreateSpotlightInput{
		Title:      "Summer banner",
		ModuleType: "home",
		MediaURL:   "https://stale.example.com/old.png",
		Media: &usecase.MediaUpload{
			Filename:    "banner.png",
			ContentType: "image/png",
			Content:     content,
		},
	})

	require.NoError(t, err)
	assert.Equal(t, int64(42), item.ID)
	assert.Equal(t, "https://cdn.example.com/banner.png", item.MediaURL)
	assert.True(t, item.IsActive)
}

func TestSpotlightService_Create_UploadFailureAborts(t *testing.T) {
	service, repo, media := createTestSpotlightService(t)
	ctx := context.Background()

	media.On("Save", ctx, mock.Anything, mock.Anything, mock.Anything).
		Return("", errors.New("bucket unreachable"))

	_, err := service.Create(ctx, &usecase.CreateSpotlightInput{
		Title: "Broken",
		Media: &usecase.MediaUpload{Filename: "x.png"},
	})

	require.Error(t, err)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSpotlightService_Update_PartialFields(t *testing.T) {
	service, repo, _ := createTestSpotlightService(t)
	ctx := context.Background()

	repo.On("FindByID", ctx, int64(7)).Return(&entity.SpotlightItem{
		ID:         7,
		Title:      "Old title",
		ModuleType: "home",
		OrderIndex: 3,
		IsActive:   true,
	}, nil)
	repo.On("Update", ctx, mock.AnythingOfType("*entity.SpotlightItem")).Return(nil)

	title := "New title"
	item, err := service.Update(ctx, 7, &usecase.UpdateSpotlightInput{Title: &title})

	require.NoError(t, err)
	assert.Equal(t, "New title", item.Title)
	assert.Equal(t, "home", item.ModuleType)
	assert.Equal(t, 3, item.OrderIndex)
}

func TestSpotlightService_Update_NotFound(t *testing.T) {
	service, repo, _ := createTestSpotlightService(t)
	ctx := context.Background()

	repo.On("FindByID", ctx, int64(404)).Return(nil, repository.ErrSpotlightNotFound)

	title := "x"
	_, err := service.Update(ctx, 404, &usecase.UpdateSpotlightInput{Title: &title})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrSpotlightNotFound))
}

func TestSpotlightService_Reorder_AppliesAllEntries(t *testing.T) {
	service, repo, _ := createTestSpotlightService(t)
	ctx := context.Background()

	orders := []entity.SpotlightOrder{
		{ID: 1, OrderIndex: 3},
		{ID: 2, OrderIndex: 1},
		{ID: 3, OrderIndex: 2},
	}
	for _, order := range orders {
		repo.On("UpdateOrderIndex", mock.Anything, order.ID, order.OrderIndex).Return(nil)
	}

	err := service.Reorder(ctx, orders)

	require.NoError(t, err)
	repo.AssertNumberOfCalls(t, "UpdateOrderIndex", 3)
}

func TestSpotlightService_Reorder_MissingIDFails(t *testing.T) {
	service, repo, _ := createTestSpotlightService(t)
	ctx := context.Background()

	repo.On("UpdateOrderIndex", mock.Anything, int64(1), 1).Return(nil)
	repo.On("UpdateOrderIndex", mock.Anything, int64(99), 2).Return(repository.ErrSpotlightNotFound)

	err := service.Reorder(ctx, []entity.SpotlightOrder{
		{ID: 1, OrderIndex: 1},
		{ID: 99, OrderIndex: 2},
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrSpotlightNotFound))
}

func TestSpotlightService_Reorder_EmptyBatchRejected(t *testing.T) {
	service, _, _ := createTestSpotlightService(t)

	err := service.Reorder(context.Background(), nil)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestSpotlightService_ListActive_FiltersByModule(t *testing.T) {
	service, repo, _ := createTestSpotlightService(t)
	ctx := context.Background()

	repo.On("ListActive", ctx, "home").
		Return([]*entity.SpotlightItem{{ID: 1, ModuleType: "home"}}, nil)

	items, err := service.ListActive(ctx, "home")

	require.NoError(t, err)
	require.Len(t, items, 1)
}
