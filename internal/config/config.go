package config

import (
	"os"
	"strconv"

	"github.com/RaulAraujoSilva/BAP-KPI-Marketing/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Server ServerConfig
	Paths  PathConfig
}

// ServerConfig holds dashboard server settings
type ServerConfig struct {
	Port string
}

// PathConfig holds the workbook file paths shared by both entry points
type PathConfig struct {
	SourceFile   string
	PreparedFile string
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Server: ServerConfig{
			Port: getEnvOrDefault("PORT", "8080"),
		},
		Paths: PathConfig{
			SourceFile:   getEnvOrDefault("KPI_SOURCE_FILE", "KPI - 2025 BAP.xlsx"),
			PreparedFile: getEnvOrDefault("KPI_PREPARED_FILE", "KPI_Marketing_Preparado.xlsx"),
		},
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

func validateConfig(config *Config) error {
	if config.Paths.SourceFile == "" {
		return errors.ConfigInvalid("source workbook path is required")
	}
	if config.Paths.PreparedFile == "" {
		return errors.ConfigInvalid("prepared workbook path is required")
	}
	if config.Server.Port == "" {
		return errors.ConfigInvalid("server port is required")
	}
	if _, err := strconv.Atoi(config.Server.Port); err != nil {
		return errors.ConfigInvalid("server port must be numeric: " + config.Server.Port)
	}
	return nil
}

// Helper for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
