package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Pinger checks a dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves the liveness and readiness endpoints.
type HealthHandler struct {
	service string
	version string
	db      Pinger
}

// NewHealthHandler returns a handler reporting name and version.
func NewHealthHandler(name, version string, db Pinger) *HealthHandler {
	return &HealthHandler{service: name, version: version, db: db}
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Service   string `json:"service" example:"sharing-service"`
	Version   string `json:"version" example:"1.0.0"`
	Status    string `json:"status" example:"healthy"`
	Timestamp string `json:"timestamp" example:"2025-01-01T00:00:00Z"`
	Database  string `json:"database" example:"connected"`
	Error     string `json:"error,omitempty"`
}

// Status godoc
// @Summary      API status
// @Description  Liveness probe for the sharing API. Does not require authentication.
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]string "{"status": "OK", "message": "Sharing API is running"}"
// @Router       /status [get]
func (h *HealthHandler) Status(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"message": "Sharing API is running",
	})
}

// Ping answers with the service name and version.
func (h *HealthHandler) Ping(c *gin.Context) {
	c.String(http.StatusOK, "%s %s", h.service, h.version)
}

// Health reports whether the database answers within two seconds.
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	resp := HealthResponse{
		Service:   h.service,
		Version:   h.version,
		Status:    "healthy",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Database:  "connected",
	}

	if err := h.db.Ping(ctx); err != nil {
		resp.Status = "unhealthy"
		resp.Database = "disconnected"
		resp.Error = err.Error()
		c.JSON(http.StatusServiceUnavailable, resp)
		return
	}

	c.JSON(http.StatusOK, resp)
}
