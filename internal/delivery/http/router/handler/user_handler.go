package handler

import (
	"net/http"

	deliverycontext "bistro/internal/delivery/context"
	"bistro/internal/delivery/http/response"
	"bistro/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserHandler holds dependencies for user profile handlers.
type UserHandler struct {
	uc usecase.ProfileUsecase
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.ProfileUsecase) *UserHandler {
	return &UserHandler{uc: uc}
}

// updateDetailsRequest is the payload for the profile upsert.
type updateDetailsRequest struct {
	Name  string `json:"name" validate:"required"`
	Phone string `json:"phone"`
}

// UpdateDetails handles PUT /api/user/details.
func (h *UserHandler) UpdateDetails(c echo.Context) error {
	var req updateDetailsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid details payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	actor, _ := deliverycontext.GetActor(c)
	user, err := h.uc.UpsertDetails(c.Request().Context(), actor, &usecase.UpsertDetailsInput{
		Name:  req.Name,
		Phone: req.Phone,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "Details updated")
}
