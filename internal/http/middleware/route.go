package middleware

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

const unknownRoute = "<unknown>"

// routePattern returns the chi route pattern matched by r, once the request
// has been routed.
func routePattern(r *http.Request) string {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		return unknownRoute
	}
	if pattern := rctx.RoutePattern(); pattern != "" {
		return pattern
	}
	return unknownRoute
}
