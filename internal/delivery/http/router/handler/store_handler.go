package handler

import (
	"net/http"
	"strings"

	deliverycontext "bistro/internal/delivery/context"
	"bistro/internal/delivery/http/response"
	"bistro/internal/domain/repository"
	"bistro/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// StoreHandler holds dependencies for store-related handlers.
type StoreHandler struct {
	uc usecase.StoreUsecase
}

// NewStoreHandler is the constructor for StoreHandler, injected by Fx.
func NewStoreHandler(uc usecase.StoreUsecase) *StoreHandler {
	return &StoreHandler{uc: uc}
}

// List handles GET /api/stores.
func (h *StoreHandler) List(c echo.Context) error {
	limit, offset, err := parsePagination(c)
	if err != nil {
		return err
	}

	includeInactive, err := parseIncludeInactive(c)
	if err != nil {
		return err
	}

	page, err := h.uc.List(c.Request().Context(), &usecase.ListStoresInput{
		Search:          c.QueryParam("search"),
		Category:        c.QueryParam("category"),
		Subcategory:     c.QueryParam("subcategory"),
		Tag:             c.QueryParam("tag"),
		FeaturedOnly:    parseBoolQuery(c, "featured"),
		IncludeInactive: includeInactive,
		Limit:           limit,
		Offset:          offset,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Page(c, page.Items, response.PageMeta{
		Limit:  page.Limit,
		Offset: page.Offset,
		Total:  page.Total,
	}, "")
}

// Get handles GET /api/stores/:id. The include query parameter selects
// which sub-resources to expand, e.g. include=payment,catalogue.
func (h *StoreHandler) Get(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	include := repository.StoreInclude{}
	for _, part := range strings.Split(c.QueryParam("include"), ",") {
		switch strings.TrimSpace(part) {
		case "payment":
			include.Payment = true
		case "catalogue":
			include.Catalogue = true
		}
	}

	store, err := h.uc.Get(c.Request().Context(), id, include)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, store, "")
}

// Delete handles DELETE /api/stores/:id.
func (h *StoreHandler) Delete(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	actor, _ := deliverycontext.GetActor(c)
	deleted, err := h.uc.Delete(c.Request().Context(), actor, id, parseBoolQuery(c, "hard"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"ok":      true,
		"deleted": deleted,
		"id":      id,
	}, "Store deleted")
}
