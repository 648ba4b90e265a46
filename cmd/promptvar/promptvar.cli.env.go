package main

import (
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// cliEnv holds environment-derived configuration for the CLI.
type cliEnv struct {
	// StorageDriver selects the backend used by render -name.
	StorageDriver string `env:"PROMPTVAR_STORAGE_DRIVER" envDefault:"filesystem"`

	// StorageDSN is the driver-specific connection string.
	StorageDSN string `env:"PROMPTVAR_STORAGE_DSN" envDefault:".promptvar"`

	// LogLevel controls engine logging; "debug" enables it.
	LogLevel string `env:"PROMPTVAR_LOG_LEVEL" envDefault:"info"`
}

// loadCLIEnv loads a .env file if present, then parses the environment.
func loadCLIEnv() (*cliEnv, error) {
	_ = godotenv.Load()

	cfg := &cliEnv{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newLogger builds the engine logger for the configured level.
func (c *cliEnv) newLogger() *zap.Logger {
	if c.LogLevel == "debug" {
		logger, err := zap.NewDevelopment()
		if err == nil {
			return logger
		}
	}
	return zap.NewNop()
}
