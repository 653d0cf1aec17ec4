package http_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuanvumaihuynh/brewery/internal/bootstrap"
	"github.com/tuanvumaihuynh/brewery/internal/config"
	apihttp "github.com/tuanvumaihuynh/brewery/internal/http"
	"github.com/tuanvumaihuynh/brewery/internal/log"
	"github.com/tuanvumaihuynh/brewery/internal/model"
	"github.com/tuanvumaihuynh/brewery/internal/repository"
	"github.com/tuanvumaihuynh/brewery/internal/service"
	"github.com/tuanvumaihuynh/brewery/pkg/correlationid"
)

func TestRouter(t *testing.T) {
	t.Run("Should expose request metrics", func(t *testing.T) {
		srv := newTestServer(t)

		resp := srv.do(t, http.MethodGet, "/api/v1/beer", nil)
		require.Equal(t, http.StatusOK, resp.Code)

		resp = srv.do(t, http.MethodGet, "/metrics", nil)
		require.Equal(t, http.StatusOK, resp.Code)
		assert.Contains(t, resp.Body.String(), "brewery_http_requests_total")
		assert.Contains(t, resp.Body.String(), `route="/api/v1/beer`)
	})

	t.Run("Should echo correlation id", func(t *testing.T) {
		srv := newTestServer(t)

		resp := srv.do(t, http.MethodGet, "/healthz", nil, correlationid.Header, "abc-123")
		assert.Equal(t, "abc-123", resp.Header().Get(correlationid.Header))

		resp = srv.do(t, http.MethodGet, "/healthz", nil)
		assert.NotEmpty(t, resp.Header().Get(correlationid.Header))
	})

	t.Run("Should serve docs", func(t *testing.T) {
		srv := newTestServer(t)

		resp := srv.do(t, http.MethodGet, "/docs/openapi.json", nil)

		assert.Equal(t, http.StatusOK, resp.Code)
	})

	t.Run("Should return 404 for unknown route", func(t *testing.T) {
		srv := newTestServer(t)

		resp := srv.do(t, http.MethodGet, "/api/v1/wine", nil)

		assert.Equal(t, http.StatusNotFound, resp.Code)
	})

	t.Run("Should require bearer token when auth is enabled", func(t *testing.T) {
		auth := config.Auth{JWTSecret: "s3cret", Leeway: time.Second}
		srv := newTestServer(t, withAuth(auth))

		resp := srv.do(t, http.MethodGet, "/api/v1/customer", nil)
		require.Equal(t, http.StatusUnauthorized, resp.Code)
		assert.Equal(t, "UNAUTHORIZED", decodeBody[errorBody](t, resp).Code)

		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
			Subject:   "brewer",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
		}).SignedString([]byte(auth.JWTSecret))
		require.NoError(t, err)

		resp = srv.do(t, http.MethodGet, "/api/v1/customer", nil, "Authorization", "Bearer "+token)
		assert.Equal(t, http.StatusOK, resp.Code)

		resp = srv.do(t, http.MethodGet, "/healthz", nil)
		assert.Equal(t, http.StatusOK, resp.Code)
	})
}

func TestCorsPreflight(t *testing.T) {
	srv := newTestServer(t)

	resp := srv.do(t, http.MethodOptions, "/api/v1/customer", nil,
		"Origin", "https://brewery.example.com",
		"Access-Control-Request-Method", http.MethodPost,
	)

	assert.Equal(t, "https://brewery.example.com", resp.Header().Get("Access-Control-Allow-Origin"))
}

func TestSeededServer(t *testing.T) {
	customers := repository.NewMemoryRepository[model.Customer]()
	beers := repository.NewMemoryRepository[model.Beer]()
	seeder := bootstrap.NewSeeder(log.Discard(), customers, beers)

	handler, err := apihttp.New(config.HTTP{}, config.Auth{}, log.Discard(), apihttp.Dependencies{
		CustomerSvc: service.NewCustomerService(customers),
		BeerSvc:     service.NewBeerService(beers),
		Readiness:   seeder,
	}).Handler()
	require.NoError(t, err)
	srv := &testServer{handler: handler, customers: customers, beers: beers}

	resp := srv.do(t, http.MethodGet, "/readyz", nil)
	require.Equal(t, http.StatusServiceUnavailable, resp.Code)

	require.NoError(t, seeder.Run(t.Context()))

	resp = srv.do(t, http.MethodGet, "/readyz", nil)
	require.Equal(t, http.StatusOK, resp.Code)

	resp = srv.do(t, http.MethodGet, "/api/v1/customer", nil)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Len(t, decodeBody[[]customerBody](t, resp), 3)

	resp = srv.do(t, http.MethodGet, "/api/v1/beer", nil)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Len(t, decodeBody[[]beerBody](t, resp), 3)

	resp = srv.do(t, http.MethodGet, "/docs", nil)
	assert.Equal(t, http.StatusNotFound, resp.Code, "docs are disabled")
}
