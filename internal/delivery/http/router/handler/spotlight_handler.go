package handler

import (
	"mime/multipart"
	"net/http"
	"strings"

	"bistro/internal/delivery/http/response"
	"bistro/internal/domain/entity"
	domainerrors "bistro/internal/domain/errors"
	"bistro/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SpotlightHandler holds dependencies for spotlight media handlers.
type SpotlightHandler struct {
	uc usecase.SpotlightUsecase
}

// NewSpotlightHandler is the constructor for SpotlightHandler, injected by Fx.
func NewSpotlightHandler(uc usecase.SpotlightUsecase) *SpotlightHandler {
	return &SpotlightHandler{uc: uc}
}

// List handles GET /api/spotlight.
func (h *SpotlightHandler) List(c echo.Context) error {
	items, err := h.uc.ListActive(c.Request().Context(), c.QueryParam("module_type"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, items, "")
}

// createSpotlightRequest is the payload for spotlight creation. The same
// fields arrive as form values when the request is multipart.
type createSpotlightRequest struct {
	Title      string `json:"title" form:"title" validate:"required"`
	ModuleType string `json:"module_type" form:"module_type" validate:"required"`
	MediaURL   string `json:"media_url" form:"media_url"`
	OrderIndex int    `json:"order_index" form:"order_index"`
	IsActive   *bool  `json:"is_active" form:"is_active"`
}

// Create handles POST /api/spotlight, accepting JSON or multipart with an
// optional "media" file.
func (h *SpotlightHandler) Create(c echo.Context) error {
	var req createSpotlightRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid spotlight payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	media, err := optionalMediaUpload(c)
	if err != nil {
		return err
	}
	if media != nil {
		defer media.close()
	}

	input := &usecase.CreateSpotlightInput{
		Title:      req.Title,
		ModuleType: req.ModuleType,
		MediaURL:   req.MediaURL,
		OrderIndex: req.OrderIndex,
		IsActive:   req.IsActive,
	}
	if media != nil {
		input.Media = media.upload
	}
	if input.Media == nil && req.MediaURL == "" {
		return domainerrors.NewValidationError(domainerrors.FieldViolation{
			Field: "media", Rule: "required", Detail: "either media_url or a media file is required",
		})
	}

	item, err := h.uc.Create(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, item, "Spotlight item created")
}

// updateSpotlightRequest is the payload for a partial spotlight update.
type updateSpotlightRequest struct {
	Title      *string `json:"title" form:"title" validate:"omitempty,min=1"`
	ModuleType *string `json:"module_type" form:"module_type" validate:"omitempty,min=1"`
	MediaURL   *string `json:"media_url" form:"media_url"`
	OrderIndex *int    `json:"order_index" form:"order_index"`
	IsActive   *bool   `json:"is_active" form:"is_active"`
}

// Update handles PUT /api/spotlight/:id with an optional "media" file.
func (h *SpotlightHandler) Update(c echo.Context) error {
	id, err := parseInt64Param(c, "id")
	if err != nil {
		return err
	}

	var req updateSpotlightRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid spotlight payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	media, err := optionalMediaUpload(c)
	if err != nil {
		return err
	}
	if media != nil {
		defer media.close()
	}

	input := &usecase.UpdateSpotlightInput{
		Title:      req.Title,
		ModuleType: req.ModuleType,
		MediaURL:   req.MediaURL,
		OrderIndex: req.OrderIndex,
		IsActive:   req.IsActive,
	}
	if media != nil {
		input.Media = media.upload
	}

	item, err := h.uc.Update(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, item, "Spotlight item updated")
}

// Delete handles DELETE /api/spotlight/:id (soft delete).
func (h *SpotlightHandler) Delete(c echo.Context) error {
	id, err := parseInt64Param(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.SoftDelete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"ok": true, "id": id}, "Spotlight item deleted")
}

// reorderRequest is one entry of the bulk reorder payload.
type reorderRequest struct {
	ID         int64 `json:"id" validate:"required"`
	OrderIndex int   `json:"order_index"`
}

// Reorder handles PUT /api/spotlight/reorder.
func (h *SpotlightHandler) Reorder(c echo.Context) error {
	var req []reorderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid reorder payload")
	}
	for i := range req {
		if err := c.Validate(&req[i]); err != nil {
			return err
		}
	}

	orders := make([]entity.SpotlightOrder, 0, len(req))
	for _, entry := range req {
		orders = append(orders, entity.SpotlightOrder{
			ID:         entry.ID,
			OrderIndex: entry.OrderIndex,
		})
	}

	if err := h.uc.Reorder(c.Request().Context(), orders); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"ok": true, "count": len(orders)}, "Spotlight order updated")
}

// openedUpload pairs a media upload with the file handle backing it.
type openedUpload struct {
	upload *usecase.MediaUpload
	file   multipart.File
}

func (u *openedUpload) close() {
	u.file.Close()
}

// optionalMediaUpload opens the "media" multipart file when the request
// carries one. JSON requests and multipart requests without the field both
// return nil.
func optionalMediaUpload(c echo.Context) (*openedUpload, error) {
	contentType := c.Request().Header.Get(echo.HeaderContentType)
	if !strings.HasPrefix(contentType, echo.MIMEMultipartForm) {
		return nil, nil
	}

	fileHeader, err := c.FormFile("media")
	if err != nil {
		return nil, nil
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, errors.Wrap(err, "failed to open uploaded file")
	}

	return &openedUpload{
		upload: &usecase.MediaUpload{
			Filename:    fileHeader.Filename,
			ContentType: fileHeader.Header.Get(echo.HeaderContentType),
			Content:     file,
		},
		file: file,
	}, nil
}
