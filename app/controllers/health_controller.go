package controllers

import (
	"context"
	"net/http"
	"time"
)

const healthTimeout = 2 * time.Second

// Pinger is the part of a store the health check needs.
type Pinger interface {
	Name() string
	Ping(ctx context.Context) error
}

// HealthController reports whether the store is reachable.
type HealthController struct {
	store Pinger
}

func NewHealthController(store Pinger) *HealthController {
	return &HealthController{store: store}
}

type healthResponse struct {
	Status string `json:"status"`
	Store  string `json:"store"`
	Error  string `json:"error,omitempty"`
}

// Show handles GET /healthz
func (hc *HealthController) Show(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
	defer cancel()

	if err := hc.store.Ping(ctx); err != nil {
		sendJSON(w, http.StatusServiceUnavailable, healthResponse{
			Status: "unavailable",
			Store:  hc.store.Name(),
			Error:  err.Error(),
		})
		return
	}
	sendJSON(w, http.StatusOK, healthResponse{Status: "ok", Store: hc.store.Name()})
}
