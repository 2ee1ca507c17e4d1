// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/katalvlaran/e4ga/oracle"
)

// envConfig holds the flag defaults read from the environment.
type envConfig struct {
	Seed           int64   `env:"E4GA_SEED"`
	IterationScale float64 `env:"E4GA_ITERATION_SCALE"`
	// Parallelism 0 means GOMAXPROCS.
	Parallelism int    `env:"E4GA_PARALLELISM"`
	Format      string `env:"E4GA_FORMAT"`
}

func defaultEnvConfig() envConfig {
	return envConfig{
		Seed:           oracle.DefaultSeed,
		IterationScale: oracle.DefaultIterationScale,
		Format:         formatText,
	}
}

// loadEnv overlays environment values on the defaults. A nil environ reads
// the process environment.
func loadEnv(environ map[string]string) (envConfig, error) {
	cfg := defaultEnvConfig()
	var err error
	if environ == nil {
		err = env.Parse(&cfg)
	} else {
		err = env.ParseWithOptions(&cfg, env.Options{Environment: environ})
	}
	if err != nil {
		return envConfig{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
