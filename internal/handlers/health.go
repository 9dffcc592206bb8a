package handlers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stwalsh4118/faasdoc/internal/middleware"
)

const (
	// APIVersion is the current version of the API
	APIVersion = "0.1.0"
	// HealthCheckTimeout is the timeout for record store health checks
	HealthCheckTimeout = 2 * time.Second
)

// Pinger reports whether a backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler handles health check and readiness endpoints.
type HealthHandler struct {
	store     Pinger
	startTime time.Time
	env       string
	info      ServiceInfo
}

// ServiceInfo describes the document settings reported by /api/v1/info.
type ServiceInfo struct {
	Locale          string   `json:"locale"`
	LGUName         string   `json:"lgu_name,omitempty"`
	Variants        []string `json:"variants"`
	Formats         []string `json:"formats"`
	BatchMaxRecords int      `json:"batch_max_records"`
}

// NewHealthHandler creates a new HealthHandler instance. store is nil when
// no record store is configured.
func NewHealthHandler(store Pinger, env string, info ServiceInfo) *HealthHandler {
	return &HealthHandler{
		store:     store,
		startTime: time.Now(),
		env:       env,
		info:      info,
	}
}

// HealthResponse represents the basic health check response.
type HealthResponse struct {
	Status string `json:"status"`
}

// ReadyResponse represents the readiness check response.
type ReadyResponse struct {
	Status      string `json:"status"`
	RecordStore string `json:"record_store"`
}

// InfoResponse represents the API information response.
type InfoResponse struct {
	Version     string      `json:"version"`
	Environment string      `json:"environment"`
	Uptime      string      `json:"uptime"`
	RecordStore bool        `json:"record_store"`
	Documents   ServiceInfo `json:"documents"`
}

// Health handles GET /health endpoint.
// This is a liveness check that always returns 200 OK.
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status: "healthy",
	})
}

// Ready handles GET /health/ready endpoint.
// Composition from request payloads needs no dependencies, so the service is
// ready without a record store. When one is configured it must answer a ping.
func (h *HealthHandler) Ready(c *gin.Context) {
	if h.store == nil {
		c.JSON(http.StatusOK, ReadyResponse{
			Status:      "ready",
			RecordStore: "disabled",
		})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), HealthCheckTimeout)
	defer cancel()

	if err := h.store.Ping(ctx); err != nil {
		if log := middleware.GetLogger(c); log != nil {
			log.Error("Record store health check failed", err, map[string]interface{}{
				"timeout": HealthCheckTimeout.String(),
			})
		}

		c.JSON(http.StatusServiceUnavailable, ReadyResponse{
			Status:      "not_ready",
			RecordStore: "disconnected",
		})
		return
	}

	c.JSON(http.StatusOK, ReadyResponse{
		Status:      "ready",
		RecordStore: "connected",
	})
}

// Info handles GET /api/v1/info endpoint.
func (h *HealthHandler) Info(c *gin.Context) {
	c.JSON(http.StatusOK, InfoResponse{
		Version:     APIVersion,
		Environment: h.env,
		Uptime:      formatUptime(time.Since(h.startTime)),
		RecordStore: h.store != nil,
		Documents:   h.info,
	})
}

// formatUptime formats a duration into a human-readable string.
func formatUptime(d time.Duration) string {
	days := int(d.Hours() / 24)
	hours := int(d.Hours()) % 24
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60

	if days > 0 {
		return fmt.Sprintf("%dd %dh %dm %ds", days, hours, minutes, seconds)
	}
	return fmt.Sprintf("%dh %dm %ds", hours, minutes, seconds)
}
