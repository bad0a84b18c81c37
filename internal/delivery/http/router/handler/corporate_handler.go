package handler

import (
	"net/http"

	"bistro/internal/delivery/http/response"
	"bistro/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CorporateHandler holds dependencies for corporate account handlers.
type CorporateHandler struct {
	uc usecase.CorporateUsecase
}

// NewCorporateHandler is the constructor for CorporateHandler, injected by Fx.
func NewCorporateHandler(uc usecase.CorporateUsecase) *CorporateHandler {
	return &CorporateHandler{uc: uc}
}

// createCorporateRequest is the payload for corporate account creation.
type createCorporateRequest struct {
	Name           string     `json:"name" validate:"required"`
	OwnerUserID    uuid.UUID  `json:"owner_user_id" validate:"required"`
	OwnerEmail     string     `json:"owner_email" validate:"required,email"`
	Seats          int        `json:"seats" validate:"min=0"`
	SubscriptionID *uuid.UUID `json:"subscription_id"`
}

// Create handles POST /api/corporates.
func (h *CorporateHandler) Create(c echo.Context) error {
	var req createCorporateRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid corporate payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	corporate, err := h.uc.Create(c.Request().Context(), &usecase.CreateCorporateInput{
		Name:           req.Name,
		OwnerUserID:    req.OwnerUserID,
		OwnerEmail:     req.OwnerEmail,
		Seats:          req.Seats,
		SubscriptionID: req.SubscriptionID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, corporate, "Corporate created")
}

// Get handles GET /api/corporates/:id.
func (h *CorporateHandler) Get(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	corporate, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, corporate, "")
}

// mergeEmployeesRequest is the payload for an employee merge batch.
type mergeEmployeesRequest struct {
	Employees []employeeRequest `json:"employees" validate:"required,min=1,dive"`
}

type employeeRequest struct {
	UserID uuid.UUID `json:"user_id" validate:"required"`
	Email  string    `json:"email" validate:"required,email"`
	Name   string    `json:"name"`
}

// MergeEmployees handles POST /api/corporates/:id/employees.
func (h *CorporateHandler) MergeEmployees(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var req mergeEmployeesRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid employee payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	batch := make([]usecase.EmployeeInput, 0, len(req.Employees))
	for _, employee := range req.Employees {
		batch = append(batch, usecase.EmployeeInput{
			UserID: employee.UserID,
			Email:  employee.Email,
			Name:   employee.Name,
		})
	}

	corporate, err := h.uc.MergeEmployees(c.Request().Context(), id, batch)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, corporate, "Employees updated")
}

// RemoveEmployee handles DELETE /api/corporates/:id/employees/:userId.
func (h *CorporateHandler) RemoveEmployee(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	userID, err := parseUUIDParam(c, "userId")
	if err != nil {
		return err
	}

	corporate, err := h.uc.RemoveEmployee(c.Request().Context(), id, userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, corporate, "Employee removed")
}
