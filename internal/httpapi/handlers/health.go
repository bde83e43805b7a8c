package handlers

import (
	"net/http"
	"time"

	"github.com/realworld/realworld-api/internal/httpapi"
)

const (
	StatusUp       = "UP"
	ServiceName    = "realworld-api"
	ServiceVersion = "1.0.0"
)

// HealthStatus is the liveness payload returned by GET /health.
type HealthStatus struct {
	Status    string `json:"status"`
	Timestamp int64  `json:"timestamp"`
	Service   string `json:"service"`
	Version   string `json:"version"`
}

// HealthHandler reports that the process is up and serving HTTP.
type HealthHandler struct {
	now func() time.Time
}

// NewHealthHandler builds a handler reading time from now; nil means time.Now.
func NewHealthHandler(now func() time.Time) *HealthHandler {
	if now == nil {
		now = time.Now
	}
	return &HealthHandler{now: now}
}

// Health responds with the static liveness payload stamped in epoch milliseconds.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	httpapi.JSON(w, http.StatusOK, HealthStatus{
		Status:    StatusUp,
		Timestamp: h.now().UnixMilli(),
		Service:   ServiceName,
		Version:   ServiceVersion,
	})
}
