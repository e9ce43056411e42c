package handlers

import (
	"net/http"
	"time"

	"finhub/internal/database"

	"github.com/labstack/echo/v4"
)

// HealthHandler serves the liveness endpoint
type HealthHandler struct {
	db *database.DB
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(db *database.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// HealthStatus is the health endpoint payload
type HealthStatus struct {
	Status    string    `json:"status"`
	Database  string    `json:"database"`
	Timestamp time.Time `json:"timestamp"`
}

// Health handles GET /health
// Reports degraded (503) when the database ping fails; provider reachability
// is deliberately not probed here since partial outages are normal operation.
func (h *HealthHandler) Health(c echo.Context) error {
	status := HealthStatus{
		Status:    "ok",
		Database:  "ok",
		Timestamp: time.Now().UTC(),
	}

	if err := h.db.HealthCheck(); err != nil {
		status.Status = "degraded"
		status.Database = "unreachable"
		return c.JSON(http.StatusServiceUnavailable, status)
	}

	return c.JSON(http.StatusOK, status)
}
