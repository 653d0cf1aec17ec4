package http_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	apihttp "github.com/tuanvumaihuynh/brewery/internal/http"
	"github.com/tuanvumaihuynh/brewery/internal/storage"
)

func TestHealthHandler(t *testing.T) {
	t.Run("Should report liveness", func(t *testing.T) {
		srv := newTestServer(t, withDeps(func(d *apihttp.Dependencies) {
			d.Readiness = readiness(false)
		}))

		resp := srv.do(t, http.MethodGet, "/healthz", nil)

		assert.Equal(t, http.StatusOK, resp.Code)
		assert.JSONEq(t, `{"status":"ok"}`, resp.Body.String())
	})

	tests := []struct {
		name       string
		store      storage.HealthChecker
		ready      apihttp.Readiness
		wantStatus int
	}{
		{name: "ready", store: storage.AlwaysHealthy, ready: readiness(true), wantStatus: http.StatusOK},
		{name: "no gates", wantStatus: http.StatusOK},
		{name: "seeding", store: storage.AlwaysHealthy, ready: readiness(false), wantStatus: http.StatusServiceUnavailable},
		{
			name: "store unreachable",
			store: storage.HealthCheckFunc(func(context.Context) (bool, error) {
				return false, errStoreDown
			}),
			ready:      readiness(true),
			wantStatus: http.StatusServiceUnavailable,
		},
		{
			name: "store unhealthy",
			store: storage.HealthCheckFunc(func(context.Context) (bool, error) {
				return false, nil
			}),
			wantStatus: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run("Readiness "+tt.name, func(t *testing.T) {
			srv := newTestServer(t, withDeps(func(d *apihttp.Dependencies) {
				d.Store = tt.store
				d.Readiness = tt.ready
			}))

			resp := srv.do(t, http.MethodGet, "/readyz", nil)

			assert.Equal(t, tt.wantStatus, resp.Code)
			if tt.wantStatus == http.StatusServiceUnavailable {
				assert.Equal(t, "NOT_READY", decodeBody[errorBody](t, resp).Code)
			}
		})
	}
}
