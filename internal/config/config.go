package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
)

// Config holds the environment driven configuration for the reel service.
type Config struct {
	// Service settings
	ServiceName     string        `env:"SERVICE_NAME" envDefault:"reel-api"`
	Environment     string        `env:"ENVIRONMENT" envDefault:"development"`
	HTTPPort        int           `env:"REEL_API_PORT" envDefault:"8290"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`

	// OpenTelemetry
	EnableTracing bool   `env:"OTEL_ENABLED" envDefault:"false"`
	OTLPEndpoint  string `env:"OTEL_EXPORTER_OTLP_ENDPOINT" envDefault:""`

	// RapidAPI upstream. The key is optional at startup; requests fail with 500 until it is set.
	RapidAPIKey      string        `env:"RAPIDAPI_KEY"`
	RapidAPIHost     string        `env:"RAPIDAPI_HOST" envDefault:"instagram-reels-downloader-api.p.rapidapi.com"`
	RapidAPIEndpoint string        `env:"RAPIDAPI_ENDPOINT" envDefault:"https://instagram-reels-downloader-api.p.rapidapi.com/download"`
	RapidAPITimeout  time.Duration `env:"RAPIDAPI_TIMEOUT" envDefault:"0s"` // 0 keeps the transport default

	// CORS
	CORSAllowOrigin string `env:"CORS_ALLOW_ORIGIN" envDefault:"*"`
}

// Load parses environment variables into Config.
//
// Configuration Loading Order (highest to lowest priority):
// 1. Environment variables
// 2. .env file (if present)
// 3. Default values from struct tags
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env config: %w", err)
	}

	cfg.RapidAPIKey = strings.TrimSpace(cfg.RapidAPIKey)
	cfg.RapidAPIHost = strings.TrimSpace(cfg.RapidAPIHost)
	cfg.RapidAPIEndpoint = strings.TrimSpace(cfg.RapidAPIEndpoint)

	if cfg.HTTPPort <= 0 || cfg.HTTPPort > 65535 {
		return nil, fmt.Errorf("REEL_API_PORT must be between 1 and 65535, got %d", cfg.HTTPPort)
	}
	if cfg.RapidAPIHost == "" {
		return nil, fmt.Errorf("RAPIDAPI_HOST must not be empty")
	}
	endpoint, err := url.Parse(cfg.RapidAPIEndpoint)
	if err != nil || endpoint.Scheme == "" || endpoint.Host == "" {
		return nil, fmt.Errorf("RAPIDAPI_ENDPOINT must be an absolute URL, got %q", cfg.RapidAPIEndpoint)
	}
	if cfg.RapidAPITimeout < 0 {
		return nil, fmt.Errorf("RAPIDAPI_TIMEOUT must not be negative")
	}

	return cfg, nil
}

// Addr returns the HTTP listen address.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}

// HasRapidAPIKey reports whether the upstream credential is configured.
func (c *Config) HasRapidAPIKey() bool {
	return c.RapidAPIKey != ""
}
