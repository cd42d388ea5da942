package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/rpgo/session-bruteforce/internal/domain"
)

// EnvOverrides holds run settings that may be supplied through the
// environment. Unset pointer fields leave the file configuration untouched.
type EnvOverrides struct {
	Workers   *int    `env:"SESSIM_WORKERS"`
	BatchSize *int    `env:"SESSIM_BATCH_SIZE"`
	Seed      *uint64 `env:"SESSIM_SEED"`
	LogLevel  string  `env:"SESSIM_LOG_LEVEL" envDefault:"info"`
}

// ParseEnv reads overrides from the process environment.
func ParseEnv() (EnvOverrides, error) {
	var o EnvOverrides
	if err := env.Parse(&o); err != nil {
		return EnvOverrides{}, fmt.Errorf("parse environment: %w", err)
	}
	return o, nil
}

// ParseEnvMap reads overrides from vars instead of the process environment.
func ParseEnvMap(vars map[string]string) (EnvOverrides, error) {
	var o EnvOverrides
	if err := env.ParseWithOptions(&o, env.Options{Environment: vars}); err != nil {
		return EnvOverrides{}, fmt.Errorf("parse environment: %w", err)
	}
	return o, nil
}

// Apply copies every set override onto config.
func (o EnvOverrides) Apply(config *domain.SimulationConfig) {
	if o.Workers != nil {
		config.Workers = *o.Workers
	}
	if o.BatchSize != nil {
		config.BatchSize = *o.BatchSize
	}
	if o.Seed != nil {
		config.Seed = *o.Seed
	}
}
