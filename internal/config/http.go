package config

import "time"

type HTTP struct {
	Port    uint32 `env:"HTTP_PORT" envDefault:"8080"`
	Swagger bool   `env:"HTTP_SWAGGER" envDefault:"true"`

	// CorsAllowedOrigins accepts "*" wildcards, e.g. "https://*.example.com".
	CorsAllowedOrigins []string      `env:"HTTP_CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"https://*,http://*"`
	ShutdownTimeout    time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"5s"`
}
