package handler

import (
	"context"
	"net/http"
	"time"

	"geofence/internal/delivery/api/response"

	"github.com/labstack/echo/v4"
)

const healthCheckTimeout = 2 * time.Second

// HealthChecker reports whether a backing dependency is reachable
type HealthChecker interface {
	Health(ctx context.Context) error
}

// HealthCheckFunc adapts a function to HealthChecker
type HealthCheckFunc func(ctx context.Context) error

// Health calls f(ctx)
func (f HealthCheckFunc) Health(ctx context.Context) error {
	return f(ctx)
}

// HealthHandler serves the liveness endpoint
type HealthHandler struct {
	checks map[string]HealthChecker
}

// NewHealthHandler creates a health handler over the named dependency checks
func NewHealthHandler(checks map[string]HealthChecker) *HealthHandler {
	return &HealthHandler{checks: checks}
}

// Health reports ok, or 503 with the failing dependencies
func (h *HealthHandler) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), healthCheckTimeout)
	defer cancel()

	failing := make(map[string]string)
	for name, check := range h.checks {
		if err := check.Health(ctx); err != nil {
			failing[name] = err.Error()
		}
	}

	if len(failing) > 0 {
		return response.Success(c, http.StatusServiceUnavailable, map[string]any{
			"status": "degraded",
			"checks": failing,
		})
	}

	return response.Success(c, http.StatusOK, map[string]any{"status": "ok"})
}
