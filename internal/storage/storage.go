// Package storage holds the contracts shared by the store clients.
package storage

import "context"

// HealthChecker reports whether a backing store is reachable.
type HealthChecker interface {
	IsHealthy(ctx context.Context) (bool, error)
}

// HealthCheckFunc adapts a function to HealthChecker.
type HealthCheckFunc func(ctx context.Context) (bool, error)

func (f HealthCheckFunc) IsHealthy(ctx context.Context) (bool, error) {
	return f(ctx)
}

// AlwaysHealthy is the HealthChecker of stores living in process memory.
var AlwaysHealthy HealthChecker = HealthCheckFunc(func(context.Context) (bool, error) {
	return true, nil
})
