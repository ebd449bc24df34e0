package cmd

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// envConfig holds settings that may come from the environment. Explicit
// flags always take precedence.
type envConfig struct {
	LogLevel     string `env:"CUPSIM_LOG" envDefault:"error"`
	DefaultsPath string `env:"CUPSIM_DEFAULTS" envDefault:"defaults.yaml"`
	Cups         string `env:"CUPSIM_CUPS"`
}

// parseEnv loads envConfig from environment variables.
func parseEnv() (envConfig, error) {
	var cfg envConfig
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
