// Package config loads the application settings from the environment.
//
// Variables use the SNIP20_ prefix (e.g. SNIP20_QUERY_ENDPOINT). A .env file in
// the working directory, when present, is loaded first; variables already set
// in the environment take precedence over it.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// envPrefix is the prefix of every variable read by Load.
const envPrefix = "SNIP20"

// DefaultEnvFile is the optional dotenv file read by Load.
const DefaultEnvFile = ".env"

// Config holds every setting of the application.
//
// Nested sections add their name to the prefix: Query.Endpoint is read from
// SNIP20_QUERY_ENDPOINT.
type Config struct {
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
	ChainID  string `envconfig:"CHAIN_ID" default:"secret-4"`

	Query     QueryConfig
	Redis     RedisConfig
	History   HistoryConfig
	Telemetry TelemetryConfig
}

// QueryConfig configures the JSON-RPC query gateway.
type QueryConfig struct {
	Endpoint string        `envconfig:"ENDPOINT" required:"true"`
	APIKey   string        `envconfig:"API_KEY"`
	Timeout  time.Duration `envconfig:"TIMEOUT" default:"30s"`
	RetryMax int           `envconfig:"RETRY_MAX" default:"2"`
}

// RedisConfig configures the keyring and token info cache storage.
type RedisConfig struct {
	Addr         string        `envconfig:"ADDR" default:"localhost:6379"`
	Username     string        `envconfig:"USERNAME"`
	Password     string        `envconfig:"PASSWORD"`
	DB           int           `envconfig:"DB" default:"0"`
	TokenInfoTTL time.Duration `envconfig:"TOKEN_INFO_TTL" default:"24h"`
}

// HistoryConfig configures the history fetch.
type HistoryConfig struct {
	PageSize      uint32        `envconfig:"PAGE_SIZE" default:"1000"`
	RetryAttempts uint          `envconfig:"RETRY_ATTEMPTS" default:"3"`
	RetryDelay    time.Duration `envconfig:"RETRY_DELAY" default:"1s"`
}

// TelemetryConfig configures OpenTelemetry exporters. The OTLP endpoint itself
// is read by the exporters from the standard OTEL_EXPORTER_OTLP_* variables.
type TelemetryConfig struct {
	Enabled     bool   `envconfig:"ENABLED" default:"false"`
	ServiceName string `envconfig:"SERVICE_NAME" default:"snip20history"`
}

// Load reads the configuration from envFile (skipped when missing) and the
// process environment.
func Load(envFile string) (Config, error) {
	if err := loadDotEnv(envFile); err != nil {
		return Config{}, fmt.Errorf("load %s: %w", envFile, err)
	}

	var cfg Config
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// loadDotEnv loads path into the environment without overriding variables that are already set.
func loadDotEnv(path string) error {
	if path == "" {
		return nil
	}

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}

	return godotenv.Load(path)
}
