package handler

import (
	"encoding/json"
	"net/http"

	"bistro/internal/delivery/http/response"
	"bistro/internal/domain/entity"
	"bistro/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler holds dependencies for session and account handlers.
type AuthHandler struct {
	uc usecase.AccountUsecase
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AccountUsecase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// loginOrRegisterRequest is the payload for the session issuer.
type loginOrRegisterRequest struct {
	Identity string `json:"identity" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Name     string `json:"name"`
}

// LoginOrRegister handles POST /api/auth/login-or-register.
func (h *AuthHandler) LoginOrRegister(c echo.Context) error {
	var req loginOrRegisterRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.LoginOrRegister(c.Request().Context(), &usecase.LoginOrRegisterInput{
		Identity: req.Identity,
		Email:    req.Email,
		Name:     req.Name,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	status := http.StatusOK
	if output.Outcome == usecase.OutcomeRegistered {
		status = http.StatusCreated
	}

	return response.Success(c, status, map[string]any{
		"outcome": output.Outcome,
		"token":   output.Token,
		"user":    output.User,
	}, "Session issued")
}

// createAccountRequest is one account of a provisioning request.
type createAccountRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Name     string `json:"name" validate:"required"`
	Phone    string `json:"phone"`
	Role     string `json:"role"`
	Password string `json:"password"`
}

// CreateAccounts handles POST /api/auth/accounts. The body is either a
// single account object or an array of them.
func (h *AuthHandler) CreateAccounts(c echo.Context) error {
	var raw json.RawMessage
	if err := c.Bind(&raw); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid account payload")
	}

	var requests []createAccountRequest
	if err := json.Unmarshal(raw, &requests); err != nil {
		var single createAccountRequest
		if err := json.Unmarshal(raw, &single); err != nil {
			return response.BindingError(c, "INVALID_INPUT", "Invalid account payload")
		}
		requests = []createAccountRequest{single}
	}

	for _, req := range requests {
		if err := c.Validate(&req); err != nil {
			return err
		}
	}

	inputs := make([]usecase.ProvisionAccountInput, 0, len(requests))
	for _, req := range requests {
		inputs = append(inputs, usecase.ProvisionAccountInput{
			Email:    req.Email,
			Name:     req.Name,
			Phone:    req.Phone,
			Role:     entity.Role(req.Role),
			Password: req.Password,
		})
	}

	output, err := h.uc.ProvisionAccounts(c.Request().Context(), inputs)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]any{
		"succeeded": output.Succeeded,
		"failed":    output.Failed,
	}, "Accounts processed")
}
