// Package correlationid carries a per-request correlation identifier through
// a context.
package correlationid

import (
	"context"

	"github.com/google/uuid"
)

// Header is the HTTP header used to propagate the correlation ID.
const Header = "X-Correlation-ID"

type ctxKey struct{}

// New generates a fresh correlation ID.
func New() string {
	return uuid.NewString()
}

// NewContext returns a copy of ctx carrying id.
func NewContext(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// FromContext returns the correlation ID stored in ctx, if any.
func FromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(ctxKey{}).(string)
	return id, ok && id != ""
}
