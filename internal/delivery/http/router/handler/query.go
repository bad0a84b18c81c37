// Package handler contains the HTTP handlers for the application.
package handler

import (
	"strconv"
	"strings"

	domainerrors "bistro/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// parsePagination reads limit/offset query parameters, applying the
// documented defaults and bounds. Violations become a 400 before any guard
// or data access runs.
func parsePagination(c echo.Context) (int, int, error) {
	limit := defaultPageLimit
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return 0, 0, domainerrors.NewValidationError(domainerrors.FieldViolation{
				Field: "limit", Rule: "integer", Detail: "limit must be an integer",
			})
		}
		if parsed < 1 || parsed > maxPageLimit {
			return 0, 0, domainerrors.NewValidationError(domainerrors.FieldViolation{
				Field: "limit", Rule: "range", Detail: "limit must be between 1 and 100",
			})
		}
		limit = parsed
	}

	offset := 0
	if raw := c.QueryParam("offset"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return 0, 0, domainerrors.NewValidationError(domainerrors.FieldViolation{
				Field: "offset", Rule: "integer", Detail: "offset must be an integer",
			})
		}
		if parsed < 0 {
			return 0, 0, domainerrors.NewValidationError(domainerrors.FieldViolation{
				Field: "offset", Rule: "min", Detail: "offset must not be negative",
			})
		}
		offset = parsed
	}

	return limit, offset, nil
}

// parseIncludeInactive resolves the soft-delete visibility from the status
// and includeInactive query parameters. status wins when both are present.
func parseIncludeInactive(c echo.Context) (bool, error) {
	switch status := c.QueryParam("status"); status {
	case "":
		return parseBoolQuery(c, "includeInactive"), nil
	case "active":
		return false, nil
	case "inactive", "all":
		return true, nil
	default:
		return false, domainerrors.NewValidationError(domainerrors.FieldViolation{
			Field: "status", Rule: "oneof", Detail: "status must be one of active, inactive, all",
		})
	}
}

// parseBoolQuery treats "true" and "1" as true, anything else as false.
func parseBoolQuery(c echo.Context, name string) bool {
	value := strings.ToLower(c.QueryParam(name))

	return value == "true" || value == "1"
}
