package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// EnvPrefix starts the name of every environment variable read here.
const EnvPrefix = "ESG_"

// parseEnv overlays config with ESG_* environment variables named by the env
// tags on Config. With ENV=dev a .env file in the working directory is loaded
// first; variables already set in the environment win over the file. Unset
// and empty variables keep the current value.
func parseEnv(config *Config) error {
	if os.Getenv("ENV") == "dev" {
		_ = godotenv.Load()
	}

	if err := env.ParseWithOptions(config, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse environment: %w", err)
	}
	return nil
}
