package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const configFileName = "hr_portal_config.yaml"

// Config represents the application configuration. Allocation tunables
// come from the YAML file; the database DSN comes from the environment
// (optionally a .env file) so credentials stay out of the config file.
type Config struct {
	// DistanceThresholdKm is the commute distance above which the
	// special-circumstances criterion starts penalizing a unit
	DistanceThresholdKm float64 `yaml:"distanceThresholdKm" validate:"gte=0"`

	// MinTenureYears is the tenure at which the tenure criterion reaches
	// its full score
	MinTenureYears float64 `yaml:"minTenureYears" validate:"gte=0"`

	// DatabaseURL is read from the DATABASE_URL environment variable
	DatabaseURL string `yaml:"-" validate:"required"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Load loads and validates the configuration. It looks for the config file
// in the current directory first, then in the user's home directory, and
// reads DATABASE_URL from the environment after loading .env.<env> (or
// .env) if one exists.
func Load(env string) (*Config, error) {
	configPath, err := findConfigFile()
	if err != nil {
		return nil, fmt.Errorf("failed to find config file: %w", err)
	}

	return LoadFromPath(configPath, env)
}

// LoadFromPath loads and validates the configuration from a specific path
func LoadFromPath(path, env string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	loadEnvFile(env)
	cfg.DatabaseURL = os.Getenv("DATABASE_URL")

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate validates the configuration struct
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}

// loadEnvFile loads .env.<env> if present, falling back to .env. Missing
// files are fine; the environment may already be set by the shell.
func loadEnvFile(env string) {
	if env != "" {
		if err := godotenv.Load(".env." + env); err == nil {
			return
		}
	}
	_ = godotenv.Load()
}

// findConfigFile searches for the config file in the current directory and
// the home directory
func findConfigFile() (string, error) {
	if _, err := os.Stat(configFileName); err == nil {
		return configFileName, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	homeConfigPath := filepath.Join(homeDir, configFileName)
	if _, err := os.Stat(homeConfigPath); err == nil {
		return homeConfigPath, nil
	}

	return "", fmt.Errorf("config file not found in current directory or home directory")
}
