package mongodb

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/event"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/tuanvumaihuynh/brewery/internal/config"
	"github.com/tuanvumaihuynh/brewery/internal/storage"
)

var _ storage.HealthChecker = (*Client)(nil)

// Client wraps a connected mongo client bound to the configured database.
type Client struct {
	cl *mongo.Client
	db *mongo.Database
}

// NewClient connects to MongoDB and verifies the connection with a ping.
func NewClient(ctx context.Context, cfg config.Mongo, logger *slog.Logger) (*Client, error) {
	opts := options.Client().
		ApplyURI(cfg.URI).
		SetRegistry(NewRegistry()).
		SetConnectTimeout(cfg.Timeout).
		SetServerSelectionTimeout(cfg.Timeout).
		SetMinPoolSize(cfg.MinPoolSize).
		SetMaxPoolSize(cfg.MaxPoolSize)

	if cfg.Username != "" && cfg.Password != "" {
		opts.SetAuth(options.Credential{
			Username: cfg.Username,
			Password: cfg.Password,
		})
	}

	if cfg.LogCommands {
		opts.SetMonitor(newCommandMonitor(logger))
	}

	cl, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}

	pingCtx, pingCancel := context.WithTimeout(ctx, 5*time.Second)
	defer pingCancel()

	if err := cl.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = cl.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}

	return &Client{
		cl: cl,
		db: cl.Database(cfg.Database),
	}, nil
}

// DB returns the configured database handle.
func (c *Client) DB() *mongo.Database {
	return c.db
}

func (c *Client) IsHealthy(ctx context.Context) (bool, error) {
	if err := c.cl.Ping(ctx, readpref.Primary()); err != nil {
		return false, fmt.Errorf("ping mongodb: %w", err)
	}
	return true, nil
}

func (c *Client) Close(ctx context.Context) error {
	return c.cl.Disconnect(ctx)
}

func newCommandMonitor(logger *slog.Logger) *event.CommandMonitor {
	logger = logger.With(slog.String("component", "mongodb"))

	return &event.CommandMonitor{
		Started: func(ctx context.Context, ev *event.CommandStartedEvent) {
			logger.DebugContext(ctx, "mongodb command started",
				slog.String("command", ev.CommandName),
				slog.String("database", ev.DatabaseName),
				slog.Int64("request_id", ev.RequestID))
		},
		Succeeded: func(ctx context.Context, ev *event.CommandSucceededEvent) {
			logger.DebugContext(ctx, "mongodb command succeeded",
				slog.String("command", ev.CommandName),
				slog.Int64("request_id", ev.RequestID),
				slog.Duration("duration", ev.Duration))
		},
		Failed: func(ctx context.Context, ev *event.CommandFailedEvent) {
			logger.WarnContext(ctx, "mongodb command failed",
				slog.String("command", ev.CommandName),
				slog.Int64("request_id", ev.RequestID),
				slog.Duration("duration", ev.Duration),
				slog.String("failure", ev.Failure))
		},
	}
}
