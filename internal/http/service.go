package http

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"

	"github.com/tuanvumaihuynh/brewery/internal/apperr"
	"github.com/tuanvumaihuynh/brewery/internal/config"
	"github.com/tuanvumaihuynh/brewery/internal/http/apierr"
	"github.com/tuanvumaihuynh/brewery/internal/http/metric"
	"github.com/tuanvumaihuynh/brewery/internal/http/middleware"
	"github.com/tuanvumaihuynh/brewery/internal/http/swagger"
	"github.com/tuanvumaihuynh/brewery/internal/service"
	"github.com/tuanvumaihuynh/brewery/internal/storage"
)

const apiPrefix = "/api/v1"

var tracer = otel.Tracer("internal/http")

// Dependencies are the collaborators served by the HTTP service.
type Dependencies struct {
	CustomerSvc service.CustomerService
	BeerSvc     service.BeerService

	// Store backs the readiness probe. Nil means always healthy.
	Store storage.HealthChecker
	// Readiness gates the readiness probe on startup work such as seeding.
	// Nil means ready.
	Readiness Readiness
}

// Service represents the HTTP service.
type Service struct {
	cfg     config.HTTP
	authCfg config.Auth
	logger  *slog.Logger
	metrics *metric.Metrics
	deps    Dependencies
}

type CleanupFunc func(ctx context.Context) error

func New(
	cfg config.HTTP,
	authCfg config.Auth,
	log *slog.Logger,
	deps Dependencies,
) *Service {
	return &Service{
		cfg:     cfg,
		authCfg: authCfg,
		logger:  log.With(slog.String("service", "http")),
		metrics: metric.New(),
		deps:    deps,
	}
}

// Handler builds the router with every middleware and route registered.
func (s *Service) Handler() (http.Handler, error) {
	r := chi.NewRouter()
	s.RegisterMiddlewares(r)

	if s.cfg.Swagger {
		if err := swagger.Register(r); err != nil {
			return nil, fmt.Errorf("register swagger: %w", err)
		}
	}

	s.RegisterHandlers(r)

	return r, nil
}

func (s *Service) Run(ctx context.Context) (CleanupFunc, error) {
	handler, err := s.Handler()
	if err != nil {
		return nil, err
	}

	return s.RunWithServer(ctx, handler)
}

func (s *Service) RunWithServer(ctx context.Context, handler http.Handler) (CleanupFunc, error) {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", s.cfg.Port),
		Handler:           handler,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
		MaxHeaderBytes:    1 << 16, // 64 KB
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	ln, err := net.Listen("tcp", srv.Addr)
	if err != nil {
		return nil, fmt.Errorf("listen on %s: %w", srv.Addr, err)
	}

	go func() {
		if err := srv.Serve(ln); err != nil && err != http.ErrServerClosed {
			s.logger.ErrorContext(ctx, "http server stopped unexpectedly", slog.Any("error", err))
		}
	}()

	return func(ctx context.Context) error {
		ctx, cancel := context.WithTimeout(ctx, s.cfg.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(ctx)
	}, nil
}

func (s *Service) RegisterMiddlewares(r chi.Router) {
	r.Use(
		middleware.Recoverer(s.logger),
		middleware.Trace(tracer),
		middleware.Metrics(s.metrics),
		middleware.CorrelationID(),
		middleware.Cors(s.cfg.CorsAllowedOrigins),
		middleware.Logging(s.logger),
	)
}

func (s *Service) RegisterHandlers(r chi.Router) {
	rs := responder{logger: s.logger}

	health := newHealthHandler(rs, s.deps.Store, s.deps.Readiness)
	r.Get(healthzPath, s.handle(health.Healthz))
	r.Get(readyzPath, s.handle(health.Readyz))

	r.Route(apiPrefix, func(r chi.Router) {
		r.Use(middleware.Authenticate(s.authCfg, s.handleResponseError))

		r.Route("/customer", newCustomerHandler(rs, s.deps.CustomerSvc).routes(s.handle))
		r.Route("/beer", newBeerHandler(rs, s.deps.BeerSvc).routes(s.handle))
	})

	r.Handle(middleware.MetricsPath, promhttp.HandlerFor(s.metrics.Registry, promhttp.HandlerOpts{
		ErrorLog: slog.NewLogLogger(s.logger.Handler(), slog.LevelError),
	}))
}

func (s *Service) handleRequestError(w http.ResponseWriter, r *http.Request, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)

	err = apperr.ValidationErr.WrapParent(err)
	res := apierr.New(err)

	s.logger.WarnContext(r.Context(), "http request error", slog.Any("error", err))

	if err := json.NewEncoder(w).Encode(res); err != nil {
		s.logger.WarnContext(r.Context(), "error encoding error request",
			slog.Any("error", err))
	}
}

func (s *Service) handleResponseError(w http.ResponseWriter, r *http.Request, err error) {
	res := apierr.New(err)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(res.StatusCode)

	logLevel := slog.LevelInfo
	if res.StatusCode >= 500 {
		logLevel = slog.LevelError
	} else if res.StatusCode >= 400 {
		logLevel = slog.LevelWarn
	}
	s.logger.Log(r.Context(), logLevel, "http response error", slog.Any("error", err))

	if err := json.NewEncoder(w).Encode(res); err != nil {
		s.logger.ErrorContext(r.Context(), "error encoding error response",
			slog.Any("error", err))
	}
}
