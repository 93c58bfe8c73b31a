// Package config содержит логику чтения конфигурации сервиса абхико.
package config

import (
	"flag"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config содержит параметры конфигурации сервиса абхико.
type Config struct {
	RunAddress       string        `env:"RUN_ADDRESS"`
	DatabaseURI      string        `env:"DATABASE_URI"`
	RedisURI         string        `env:"REDIS_URI"`
	SimulatedLatency time.Duration `env:"SIMULATED_LATENCY"`
}

// Parse считывает конфигурацию из флагов командной строки и переменных окружения.
// Значения окружения имеют приоритет над флагами.
func Parse() (*Config, error) {
	cfg := &Config{}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	envRunAddress := cfg.RunAddress
	envDatabaseURI := cfg.DatabaseURI
	envRedisURI := cfg.RedisURI
	envLatency := cfg.SimulatedLatency

	flag.StringVar(&cfg.RunAddress, "a", "localhost:8080", "address and port for HTTP server")
	flag.StringVar(&cfg.DatabaseURI, "d", "", "database URI")
	flag.StringVar(&cfg.RedisURI, "r", "", "redis URI")
	flag.DurationVar(&cfg.SimulatedLatency, "l", 500*time.Millisecond, "simulated latency for listing and payment")

	flag.Parse()

	if envRunAddress != "" {
		cfg.RunAddress = envRunAddress
	}
	if envDatabaseURI != "" {
		cfg.DatabaseURI = envDatabaseURI
	}
	if envRedisURI != "" {
		cfg.RedisURI = envRedisURI
	}
	if envLatency != 0 {
		cfg.SimulatedLatency = envLatency
	}

	if cfg.RunAddress == "" {
		cfg.RunAddress = "localhost:8080"
	}

	return cfg, nil
}
