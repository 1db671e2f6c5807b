package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/spherical-ai/spherical/libs/mat-configurator/internal/observability"
)

// Pinger checks a backing connection.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler reports service health.
type HealthHandler struct {
	logger  *observability.Logger
	pinger  Pinger
	timeout time.Duration
}

// NewHealthHandler creates a health handler. A nil pinger always reports healthy.
func NewHealthHandler(logger *observability.Logger, pinger Pinger) *HealthHandler {
	return &HealthHandler{
		logger:  logger.WithComponent("health_handler"),
		pinger:  pinger,
		timeout: 2 * time.Second,
	}
}

// Health handles GET /health.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	if h.pinger != nil {
		ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
		defer cancel()

		if err := h.pinger.Ping(ctx); err != nil {
			h.logger.WithContext(r.Context()).Warn().Err(err).Msg("Health check failed")
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{
				"status":  "unhealthy",
				"service": observability.ServiceName,
				"detail":  err.Error(),
			})
			return
		}
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": observability.ServiceName,
	})
}
