// Package config loads server configuration from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v6"
)

// Config holds everything the server needs at startup.
type Config struct {
	// Port the HTTP server listens on.
	Port int `env:"PORT" envDefault:"8080"`

	// JWTSecret signs session tokens. The default exists so a bare
	// `go run` works for demos; set a real secret for anything shared.
	JWTSecret string `env:"SESSION_SECRET" envDefault:"wellness-portal-secret-key"`

	// TokenTTL is how long issued tokens remain valid.
	TokenTTL time.Duration `env:"TOKEN_TTL" envDefault:"24h"`

	// SeedDemoData controls whether the demo provider/patient accounts
	// are created at startup.
	SeedDemoData bool `env:"SEED_DEMO_DATA" envDefault:"true"`
}

// Load parses the configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}
