package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration, sourced from environment
// variables (loaded from .env for local runs).
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Security SecurityConfig
	Tracing  TracingConfig
	Events   EventsConfig
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Port string `envconfig:"PORT" default:"8000"`
	Host string `envconfig:"HOST"`
	// Environment is "development" or "production"; controls log output.
	Environment string `envconfig:"ENVIRONMENT" default:"development"`
}

// DatabaseConfig holds the document-store connection settings. An empty URL
// means the store is unconfigured: the server still starts, but data-touching
// endpoints respond with a server error.
type DatabaseConfig struct {
	URL  string `envconfig:"DATABASE_URL"`
	Name string `envconfig:"DATABASE_NAME" default:"mfo"`
}

// SecurityConfig holds security-related configuration.
type SecurityConfig struct {
	// Max request body size in bytes
	MaxRequestBodySize int64 `envconfig:"MAX_REQUEST_BODY_SIZE" default:"1048576"`
}

// TracingConfig holds OpenTelemetry export settings.
type TracingConfig struct {
	Enabled  bool   `envconfig:"TRACING_ENABLED" default:"false"`
	Endpoint string `envconfig:"JAEGER_ENDPOINT" default:"http://localhost:14268/api/traces"`
}

// EventsConfig toggles the in-process event hooks.
type EventsConfig struct {
	Enabled bool `envconfig:"EVENT_HOOKS_ENABLED" default:"true"`
}

// Load reads configuration from the environment. A .env file is honored when
// present but is not required.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate validates the configuration and returns any errors.
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("server port is required")
	}
	if c.Security.MaxRequestBodySize <= 0 {
		return fmt.Errorf("max request body size must be positive")
	}
	return nil
}
