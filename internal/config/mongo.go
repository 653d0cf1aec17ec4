package config

import "time"

type Mongo struct {
	URI      string        `env:"MONGO_URI" envDefault:"mongodb://localhost:27017"`
	Database string        `env:"MONGO_DATABASE" envDefault:"brewery"`
	Username string        `env:"MONGO_USERNAME"`
	Password string        `env:"MONGO_PASSWORD"`
	Timeout  time.Duration `env:"MONGO_TIMEOUT" envDefault:"30s"`

	MinPoolSize uint64 `env:"MONGO_MIN_POOL_SIZE" envDefault:"1"`
	MaxPoolSize uint64 `env:"MONGO_MAX_POOL_SIZE" envDefault:"20"`

	// LogCommands logs every driver command at debug level.
	LogCommands bool `env:"MONGO_LOG_COMMANDS" envDefault:"false"`
}
