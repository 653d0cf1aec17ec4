package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tuanvumaihuynh/brewery/internal/config"
	apihttp "github.com/tuanvumaihuynh/brewery/internal/http"
	"github.com/tuanvumaihuynh/brewery/internal/log"
	"github.com/tuanvumaihuynh/brewery/internal/model"
	"github.com/tuanvumaihuynh/brewery/internal/repository"
	"github.com/tuanvumaihuynh/brewery/internal/service"
)

var errStoreDown = errors.New("store down")

// brokenRepository fails every call with errStoreDown.
type brokenRepository[E repository.Entity[E]] struct{}

func (brokenRepository[E]) Count(context.Context) (int64, error) { return 0, errStoreDown }

func (brokenRepository[E]) FindAll(context.Context) ([]E, error) { return nil, errStoreDown }

func (brokenRepository[E]) FindByID(context.Context, string) (E, error) {
	var zero E
	return zero, errStoreDown
}

func (brokenRepository[E]) Save(_ context.Context, e E) (E, error) { return e, errStoreDown }

func (brokenRepository[E]) DeleteByID(context.Context, string) error { return errStoreDown }

func (brokenRepository[E]) DeleteAll(context.Context) error { return errStoreDown }

type readiness bool

func (r readiness) Ready() bool { return bool(r) }

type testServer struct {
	handler   http.Handler
	customers repository.Repository[model.Customer]
	beers     repository.Repository[model.Beer]
}

type serverOption func(*config.HTTP, *config.Auth, *apihttp.Dependencies)

func withDeps(fn func(*apihttp.Dependencies)) serverOption {
	return func(_ *config.HTTP, _ *config.Auth, d *apihttp.Dependencies) { fn(d) }
}

func withAuth(auth config.Auth) serverOption {
	return func(_ *config.HTTP, a *config.Auth, _ *apihttp.Dependencies) { *a = auth }
}

func newTestServer(t *testing.T, opts ...serverOption) *testServer {
	t.Helper()

	customers := repository.NewMemoryRepository[model.Customer]()
	beers := repository.NewMemoryRepository[model.Beer]()

	httpCfg := config.HTTP{Swagger: true, CorsAllowedOrigins: []string{"https://*"}}
	var authCfg config.Auth
	deps := apihttp.Dependencies{
		CustomerSvc: service.NewCustomerService(customers),
		BeerSvc:     service.NewBeerService(beers),
	}
	for _, opt := range opts {
		opt(&httpCfg, &authCfg, &deps)
	}

	handler, err := apihttp.New(httpCfg, authCfg, log.Discard(), deps).Handler()
	require.NoError(t, err)

	return &testServer{handler: handler, customers: customers, beers: beers}
}

func (s *testServer) do(t *testing.T, method, target string, body any, headers ...string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = strings.NewReader(b)
	default:
		buf, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(buf)
	}

	req := httptest.NewRequest(method, target, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	resp := httptest.NewRecorder()
	s.handler.ServeHTTP(resp, req)
	return resp
}

func decodeBody[T any](t *testing.T, resp *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &v), resp.Body.String())
	return v
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details []struct {
		Field   string `json:"field"`
		Message string `json:"message"`
	} `json:"details"`
}
