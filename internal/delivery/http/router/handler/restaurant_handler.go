package handler

import (
	"encoding/json"
	"net/http"

	deliverycontext "bistro/internal/delivery/context"
	"bistro/internal/delivery/http/response"
	domainerrors "bistro/internal/domain/errors"
	"bistro/internal/domain/repository"
	"bistro/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// RestaurantHandler holds dependencies for restaurant-related handlers.
type RestaurantHandler struct {
	uc usecase.RestaurantUsecase
}

// NewRestaurantHandler is the constructor for RestaurantHandler, injected by Fx.
func NewRestaurantHandler(uc usecase.RestaurantUsecase) *RestaurantHandler {
	return &RestaurantHandler{uc: uc}
}

var restaurantSortKeys = map[string]repository.RestaurantSortKey{
	"created_at": repository.RestaurantSortCreatedAt,
	"name":       repository.RestaurantSortName,
	"city":       repository.RestaurantSortCity,
}

// List handles GET /api/restaurants.
func (h *RestaurantHandler) List(c echo.Context) error {
	limit, offset, err := parsePagination(c)
	if err != nil {
		return err
	}

	includeInactive, err := parseIncludeInactive(c)
	if err != nil {
		return err
	}

	sortBy := repository.RestaurantSortCreatedAt
	if raw := c.QueryParam("sort"); raw != "" {
		key, ok := restaurantSortKeys[raw]
		if !ok {
			return domainerrors.NewValidationError(domainerrors.FieldViolation{
				Field: "sort", Rule: "oneof", Detail: "sort must be one of created_at, name, city",
			})
		}
		sortBy = key
	}

	descending := true
	switch order := c.QueryParam("order"); order {
	case "", "desc":
	case "asc":
		descending = false
	default:
		return domainerrors.NewValidationError(domainerrors.FieldViolation{
			Field: "order", Rule: "oneof", Detail: "order must be asc or desc",
		})
	}

	page, err := h.uc.List(c.Request().Context(), &usecase.ListRestaurantsInput{
		Search:          c.QueryParam("search"),
		City:            c.QueryParam("city"),
		Area:            c.QueryParam("area"),
		IncludeInactive: includeInactive,
		Limit:           limit,
		Offset:          offset,
		SortBy:          sortBy,
		Descending:      descending,
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

// Get handles GET /api/restaurants/:id.
func (h *RestaurantHandler) Get(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	restaurant, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, restaurant, "")
}

// createRestaurantRequest is the payload for restaurant creation.
type createRestaurantRequest struct {
	Slug               string          `json:"slug" validate:"required"`
	Name               string          `json:"name" validate:"required"`
	Description        string          `json:"description"`
	OwnerUserID        *uuid.UUID      `json:"owner_user_id"`
	City               string          `json:"city"`
	Area               string          `json:"area"`
	Address            string          `json:"address"`
	Phone              string          `json:"phone"`
	Latitude           float64         `json:"latitude"`
	Longitude          float64         `json:"longitude"`
	Menu               json.RawMessage `json:"menu"`
	BookingEnabled     *bool           `json:"booking_enabled"`
	AvgDurationMinutes *int            `json:"avg_duration_minutes" validate:"omitempty,min=1"`
	IsActive           *bool           `json:"is_active"`
}

// Create handles POST /api/restaurants.
func (h *RestaurantHandler) Create(c echo.Context) error {
	var req createRestaurantRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid restaurant payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	restaurant, err := h.uc.Create(c.Request().Context(), &usecase.CreateRestaurantInput{
		Slug:               req.Slug,
		Name:               req.Name,
		Description:        req.Description,
		OwnerUserID:        req.OwnerUserID,
		City:               req.City,
		Area:               req.Area,
		Address:            req.Address,
		Phone:              req.Phone,
		Latitude:           req.Latitude,
		Longitude:          req.Longitude,
		Menu:               req.Menu,
		BookingEnabled:     req.BookingEnabled,
		AvgDurationMinutes: req.AvgDurationMinutes,
		IsActive:           req.IsActive,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, restaurant, "Restaurant created")
}

// updateRestaurantRequest is the payload for a partial restaurant update.
type updateRestaurantRequest struct {
	Slug               *string         `json:"slug" validate:"omitempty,min=1"`
	Name               *string         `json:"name" validate:"omitempty,min=1"`
	Description        *string         `json:"description"`
	OwnerUserID        *uuid.UUID      `json:"owner_user_id"`
	City               *string         `json:"city"`
	Area               *string         `json:"area"`
	Address            *string         `json:"address"`
	Phone              *string         `json:"phone"`
	Latitude           *float64        `json:"latitude"`
	Longitude          *float64        `json:"longitude"`
	Menu               json.RawMessage `json:"menu"`
	BookingEnabled     *bool           `json:"booking_enabled"`
	AvgDurationMinutes *int            `json:"avg_duration_minutes" validate:"omitempty,min=1"`
	IsActive           *bool           `json:"is_active"`
}

// Update handles PUT /api/restaurants/:id.
func (h *RestaurantHandler) Update(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var req updateRestaurantRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid restaurant payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	actor, _ := deliverycontext.GetActor(c)
	restaurant, err := h.uc.Update(c.Request().Context(), actor, id, &usecase.UpdateRestaurantInput{
		Slug:               req.Slug,
		Name:               req.Name,
		Description:        req.Description,
		OwnerUserID:        req.OwnerUserID,
		City:               req.City,
		Area:               req.Area,
		Address:            req.Address,
		Phone:              req.Phone,
		Latitude:           req.Latitude,
		Longitude:          req.Longitude,
		Menu:               req.Menu,
		BookingEnabled:     req.BookingEnabled,
		AvgDurationMinutes: req.AvgDurationMinutes,
		IsActive:           req.IsActive,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, restaurant, "Restaurant updated")
}

// Delete handles DELETE /api/restaurants/:id.
func (h *RestaurantHandler) Delete(c echo.Context) error {
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
	}, "Restaurant deleted")
}

// parseUUIDParam reads a path parameter as a UUID.
func parseUUIDParam(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, domainerrors.NewValidationError(domainerrors.FieldViolation{
			Field: name, Rule: "uuid", Detail: name + " must be a valid UUID",
		})
	}

	return id, nil
}
