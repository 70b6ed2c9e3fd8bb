package http

import (
	"context"
	"net/http"

	"github.com/cmlabs-hris/hrms-backend-go/internal/handler/http/response"
)

// Pinger reports store connectivity.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler interface {
	Root(w http.ResponseWriter, r *http.Request)
	Health(w http.ResponseWriter, r *http.Request)
}

type healthHandlerImpl struct {
	store Pinger
}

func NewHealthHandler(store Pinger) HealthHandler {
	return &healthHandlerImpl{store: store}
}

// Root implements HealthHandler - liveness message.
func (h *healthHandlerImpl) Root(w http.ResponseWriter, r *http.Request) {
	response.Success(w, map[string]string{
		"message": "HRMS API",
		"status":  "running",
	})
}

// Health implements HealthHandler. The request itself never fails;
// degraded store connectivity is reported in the body.
func (h *healthHandlerImpl) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Ping(r.Context()); err != nil {
		response.Success(w, map[string]string{
			"status":   "unhealthy",
			"database": "disconnected",
			"error":    err.Error(),
		})
		return
	}

	response.Success(w, map[string]string{
		"status":   "healthy",
		"database": "connected",
	})
}
