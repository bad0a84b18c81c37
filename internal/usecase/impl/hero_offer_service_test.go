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

func createTestHeroOfferService(t *testing.T) (usecase.HeroOfferUsecase, *mockHeroOfferRepository, *mockMediaStorage) {
	t.Helper()

	repo := &mockHeroOfferRepository{}
	media := &mockMediaStorage{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewHeroOfferService(repo, media, logger), repo, media
}

func TestHeroOfferService_Create_ActiveByDefault(t *testing.T) {
	service, repo, _ := createTestHeroOfferService(t)
	ctx := context.Background()

	repo.On("Create", ctx, mock.AnythingOfType("*entity.HomeHeroOffer")).
		Run(func(args mock.Arguments) {
			offer := args.Get(1).(*entity.HomeHeroOffer)
			offer.ID = 1
		}).
		Return(nil)

	offer, err := service.Create(ctx, &usecase.CreateHeroOfferInput{
		Title:    "Weekend deal",
		MediaURL: "https://cdn.example.com/deal.png",
		Priority: 5,
	})

	require.NoError(t, err)
	assert.True(t, offer.IsActive)
	assert.Equal(t, 5, offer.Priority)
}

func TestHeroOfferService_UploadMedia_ReturnsPublicURL(t *testing.T) {
	service, _, media := createTestHeroOfferService(t)
	ctx := context.Background()

	content := strings.NewReader("bytes")
	media.On("Save", ctx, "deal.png", "image/png", content).
		Return("https://cdn.example.com/deal.png", nil)

	url, err := service.UploadMedia(ctx, &usecase.MediaUpload{
		Filename:    "deal.png",
		ContentType: "image/png",
		Content:     content,
	})

	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/deal.png", url)
}

func TestHeroOfferService_UploadMedia_NoBucketConfigured(t *testing.T) {
	repo := &mockHeroOfferRepository{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := NewHeroOfferService(repo, nil, logger)

	_, err := service.UploadMedia(context.Background(), &usecase.MediaUpload{Filename: "x.png"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInternalError))
}

func TestHeroOfferService_Delete_NotFound(t *testing.T) {
	service, repo, _ := createTestHeroOfferService(t)
	ctx := context.Background()

	repo.On("Delete", ctx, int64(9)).Return(repository.ErrOfferNotFound)

	err := service.Delete(ctx, 9)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrOfferNotFound))
}

func TestHeroOfferService_ListActive(t *testing.T) {
	service, repo, _ := createTestHeroOfferService(t)
	ctx := context.Background()

	repo.On("ListActive", ctx).Return([]*entity.HomeHeroOffer{
		{ID: 1, Priority: 1},
		{ID: 2, Priority: 2},
	}, nil)

	offers, err := service.ListActive(ctx)

	require.NoError(t, err)
	require.Len(t, offers, 2)
}
