package config

type Seed struct {
	Enabled bool `env:"SEED_ENABLED" envDefault:"true"`
	// Await blocks startup until seeding has finished.
	Await bool `env:"SEED_AWAIT" envDefault:"true"`
}
