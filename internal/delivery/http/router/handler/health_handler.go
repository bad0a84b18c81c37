package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Liveness answers the bare liveness check at the root path.
func Liveness(c echo.Context) error {
	return c.String(http.StatusOK, "bistro api is running")
}

// HealthCheck reports service health.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
