package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/tuanvumaihuynh/brewery/internal/apperr"
	"github.com/tuanvumaihuynh/brewery/internal/storage"
)

const (
	healthzPath = "/healthz"
	readyzPath  = "/readyz"

	readinessTimeout = 2 * time.Second
)

var errSeedingInProgress = errors.New("seeding in progress")

// Readiness reports whether a startup task has finished.
type Readiness interface {
	Ready() bool
}

type statusResponse struct {
	Status string `json:"status"`
}

type healthHandler struct {
	responder
	store     storage.HealthChecker
	readiness Readiness
}

func newHealthHandler(rs responder, store storage.HealthChecker, readiness Readiness) *healthHandler {
	if store == nil {
		store = storage.AlwaysHealthy
	}
	return &healthHandler{
		responder: rs,
		store:     store,
		readiness: readiness,
	}
}

// Healthz reports liveness.
func (h *healthHandler) Healthz(w http.ResponseWriter, r *http.Request) error {
	h.json(w, r, http.StatusOK, statusResponse{Status: "ok"})
	return nil
}

// Readyz reports whether the store answers and startup seeding is over.
func (h *healthHandler) Readyz(w http.ResponseWriter, r *http.Request) error {
	ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
	defer cancel()

	healthy, err := h.store.IsHealthy(ctx)
	if err != nil {
		return apperr.NotReadyErr.WrapParent(fmt.Errorf("store health check: %w", err))
	}
	if !healthy {
		return apperr.NotReadyErr.WrapParent(errors.New("store is unhealthy"))
	}
	if h.readiness != nil && !h.readiness.Ready() {
		return apperr.NotReadyErr.WrapParent(errSeedingInProgress)
	}

	h.json(w, r, http.StatusOK, statusResponse{Status: "ready"})
	return nil
}
