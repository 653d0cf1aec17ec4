package config

import "time"

// Auth configures bearer-token authentication of the API routes.
// Authentication is disabled when JWTSecret is empty.
type Auth struct {
	JWTSecret string        `env:"AUTH_JWT_SECRET"`
	JWTIssuer string        `env:"AUTH_JWT_ISSUER"`
	Leeway    time.Duration `env:"AUTH_JWT_LEEWAY" envDefault:"30s"`
}

func (a Auth) Enabled() bool {
	return a.JWTSecret != ""
}
