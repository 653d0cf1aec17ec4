package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	semconv "go.opentelemetry.io/otel/semconv/v1.9.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/tuanvumaihuynh/brewery/internal/apperr"
	"github.com/tuanvumaihuynh/brewery/internal/config"
)

var errMissingBearer = errors.New("missing bearer token")

// ErrorHandlerFunc writes an error response.
type ErrorHandlerFunc func(w http.ResponseWriter, r *http.Request, err error)

// Authenticate requires a valid HMAC-signed bearer token on every request.
// When cfg is not enabled it passes requests through untouched.
func Authenticate(cfg config.Auth, onError ErrorHandlerFunc) func(http.Handler) http.Handler {
	if !cfg.Enabled() {
		return func(next http.Handler) http.Handler { return next }
	}

	parserOpts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{
			jwt.SigningMethodHS256.Alg(),
			jwt.SigningMethodHS384.Alg(),
			jwt.SigningMethodHS512.Alg(),
		}),
		jwt.WithLeeway(cfg.Leeway),
		jwt.WithExpirationRequired(),
	}
	if cfg.JWTIssuer != "" {
		parserOpts = append(parserOpts, jwt.WithIssuer(cfg.JWTIssuer))
	}
	parser := jwt.NewParser(parserOpts...)
	secret := []byte(cfg.JWTSecret)
	keyFunc := func(*jwt.Token) (any, error) { return secret, nil }

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, ok := bearerToken(r)
			if !ok {
				onError(w, r, apperr.UnauthorizedErr.WrapParent(errMissingBearer))
				return
			}

			var claims jwt.RegisteredClaims
			if _, err := parser.ParseWithClaims(raw, &claims, keyFunc); err != nil {
				onError(w, r, apperr.UnauthorizedErr.WrapParent(err))
				return
			}

			if claims.Subject != "" {
				trace.SpanFromContext(r.Context()).SetAttributes(semconv.EnduserIDKey.String(claims.Subject))
			}

			next.ServeHTTP(w, r)
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
