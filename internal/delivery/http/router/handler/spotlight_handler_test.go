package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bistro/internal/delivery/http/validator"
	"bistro/internal/domain/entity"
	domainerrors "bistro/internal/domain/errors"
	"bistro/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubSpotlightUsecase records reorder batches; the remaining operations are
// not exercised by these tests.
type stubSpotlightUsecase struct {
	reordered []entity.SpotlightOrder
}

func (s *stubSpotlightUsecase) ListActive(context.Context, string) ([]*entity.SpotlightItem, error) {
	return nil, nil
}

func (s *stubSpotlightUsecase) Create(context.Context, *usecase.CreateSpotlightInput) (*entity.SpotlightItem, error) {
	return nil, nil
}

func (s *stubSpotlightUsecase) Update(context.Context, int64, *usecase.UpdateSpotlightInput) (*entity.SpotlightItem, error) {
	return nil, nil
}

func (s *stubSpotlightUsecase) SoftDelete(context.Context, int64) error { return nil }

func (s *stubSpotlightUsecase) Reorder(_ context.Context, orders []entity.SpotlightOrder) error {
	s.reordered = orders

	return nil
}

func newReorderContext(body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New()

	req := httptest.NewRequest(http.MethodPut, "/api/spotlight/reorder", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestSpotlightHandler_Reorder_RejectsEntryWithoutID(t *testing.T) {
	uc := &stubSpotlightUsecase{}
	handler := NewSpotlightHandler(uc)

	c, _ := newReorderContext(`[{"id":3,"order_index":1},{"order_index":2}]`)

	err := handler.Reorder(c)
	require.Error(t, err)

	var validationErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Empty(t, uc.reordered)
}

func TestSpotlightHandler_Reorder_AppliesValidBatch(t *testing.T) {
	uc := &stubSpotlightUsecase{}
	handler := NewSpotlightHandler(uc)

	c, rec := newReorderContext(`[{"id":3,"order_index":1},{"id":1,"order_index":2}]`)

	err := handler.Reorder(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	require.Len(t, uc.reordered, 2)
	assert.Equal(t, int64(3), uc.reordered[0].ID)
	assert.Equal(t, 1, uc.reordered[0].OrderIndex)
	assert.Equal(t, int64(1), uc.reordered[1].ID)
	assert.Equal(t, 2, uc.reordered[1].OrderIndex)
}
