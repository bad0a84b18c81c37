package handler

import (
	"mime/multipart"
	"net/http"
	"strconv"

	"bistro/internal/delivery/http/response"
	domainerrors "bistro/internal/domain/errors"
	"bistro/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// HeroOfferHandler holds dependencies for home hero offer handlers.
type HeroOfferHandler struct {
	uc usecase.HeroOfferUsecase
}

// NewHeroOfferHandler is the constructor for HeroOfferHandler, injected by Fx.
func NewHeroOfferHandler(uc usecase.HeroOfferUsecase) *HeroOfferHandler {
	return &HeroOfferHandler{uc: uc}
}

// List handles GET /api/homeherooffers.
func (h *HeroOfferHandler) List(c echo.Context) error {
	offers, err := h.uc.ListActive(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, offers, "")
}

// createHeroOfferRequest is the payload for hero offer creation.
type createHeroOfferRequest struct {
	Title    string `json:"title" validate:"required"`
	MediaURL string `json:"media_url" validate:"required,url"`
	Priority int    `json:"priority"`
	IsActive *bool  `json:"is_active"`
}

// Create handles POST /api/homeherooffers.
func (h *HeroOfferHandler) Create(c echo.Context) error {
	var req createHeroOfferRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid hero offer payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	offer, err := h.uc.Create(c.Request().Context(), &usecase.CreateHeroOfferInput{
		Title:    req.Title,
		MediaURL: req.MediaURL,
		Priority: req.Priority,
		IsActive: req.IsActive,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, offer, "Hero offer created")
}

// Upload handles POST /api/homeherooffers/upload. The multipart field
// "media" goes to the platform bucket; the public URL comes back.
func (h *HeroOfferHandler) Upload(c echo.Context) error {
	fileHeader, err := c.FormFile("media")
	if err != nil {
		return domainerrors.NewValidationError(domainerrors.FieldViolation{
			Field: "media", Rule: "required", Detail: "multipart field media is required",
		})
	}

	url, err := h.uploadFile(c, fileHeader)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]string{"url": url}, "Media uploaded")
}

func (h *HeroOfferHandler) uploadFile(c echo.Context, fileHeader *multipart.FileHeader) (string, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return "", errors.Wrap(err, "failed to open uploaded file")
	}
	defer file.Close()

	return h.uc.UploadMedia(c.Request().Context(), &usecase.MediaUpload{
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get(echo.HeaderContentType),
		Content:     file,
	})
}

// Delete handles DELETE /api/homeherooffers/:id.
func (h *HeroOfferHandler) Delete(c echo.Context) error {
	id, err := parseInt64Param(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"ok": true, "id": id}, "Hero offer deleted")
}

// parseInt64Param reads a path parameter as a numeric id.
func parseInt64Param(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		return 0, domainerrors.NewValidationError(domainerrors.FieldViolation{
			Field: name, Rule: "integer", Detail: name + " must be a numeric id",
		})
	}

	return id, nil
}
