package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tuanvumaihuynh/brewery/internal/storage"
)

// DB is the query surface shared by *pgxpool.Pool, pgx.Tx and *Client.
type DB interface {
	Exec(context.Context, string, ...any) (pgconn.CommandTag, error)
	Query(context.Context, string, ...any) (pgx.Rows, error)
	QueryRow(context.Context, string, ...any) pgx.Row
}

var (
	_ DB                    = (*Client)(nil)
	_ storage.HealthChecker = (*Client)(nil)
)

// Client is the PostgreSQL document store handle.
type Client struct {
	*pgxpool.Pool
}

func NewClient(pool *pgxpool.Pool) *Client {
	return &Client{pool}
}

func (c *Client) IsHealthy(ctx context.Context) (bool, error) {
	if err := c.Ping(ctx); err != nil {
		return false, fmt.Errorf("ping database: %w", err)
	}
	return true, nil
}

// Close releases every pooled connection. It never fails; the signature
// matches the other store clients.
func (c *Client) Close(context.Context) error {
	c.Pool.Close()
	return nil
}
