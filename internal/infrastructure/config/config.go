package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration.
type Config struct {
	Server      ServerConfig
	Logging     LogConfig
	RateLimit   RateLimitConfig
	Catalog     CatalogConfig
	Contact     ContactConfig
	Compression CompressionConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port            string        `envconfig:"PORT" default:"8000"`
	Host            string        `envconfig:"HOST" default:"0.0.0.0"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
	AllowOrigins    []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"*"`
}

// Addr returns the listen address.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, s.Port)
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"LOG_LEVEL" default:"info"`
	Development bool   `envconfig:"LOG_DEV" default:"false"`
}

// RateLimitConfig holds rate limiting configuration.
type RateLimitConfig struct {
	RequestsPerSecond int  `envconfig:"RATE_LIMIT_RPS" default:"100"`
	Burst             int  `envconfig:"RATE_LIMIT_BURST" default:"200"`
	Enabled           bool `envconfig:"RATE_LIMIT_ENABLED" default:"true"`
}

// CatalogConfig selects where package definitions come from.
type CatalogConfig struct {
	// Glob of definition files; empty uses the embedded seed
	Glob       string   `envconfig:"CATALOG_GLOB" default:""`
	ImageHosts []string `envconfig:"CATALOG_IMAGE_HOSTS" default:"images.unsplash.com,plus.unsplash.com,cdn.sanity.io"`
}

// ContactConfig holds enquiry forwarding configuration.
type ContactConfig struct {
	// WebhookURL receives enquiries as JSON; empty means log only
	WebhookURL string        `envconfig:"CONTACT_WEBHOOK_URL" default:""`
	Timeout    time.Duration `envconfig:"CONTACT_TIMEOUT" default:"10s"`
	Retries    int           `envconfig:"CONTACT_RETRIES" default:"3"`
	// RateLimitRPS caps enquiries across all clients; 0 disables the cap
	RateLimitRPS   int `envconfig:"CONTACT_RATE_LIMIT_RPS" default:"5"`
	RateLimitBurst int `envconfig:"CONTACT_RATE_LIMIT_BURST" default:"20"`
}

// CompressionConfig holds response compression configuration.
type CompressionConfig struct {
	Enabled bool `envconfig:"GZIP_ENABLED" default:"true"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration from environment or returns default.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// LoadDotEnv applies .env files to the process environment. Missing files
// are skipped and existing variables win.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("failed to load %s: %w", p, err)
		}
	}
	return nil
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            "8000",
			Host:            "0.0.0.0",
			ShutdownTimeout: 10 * time.Second,
			AllowOrigins:    []string{"*"},
		},
		Logging: LogConfig{
			Level:       "info",
			Development: false,
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: 100,
			Burst:             200,
			Enabled:           true,
		},
		Catalog: CatalogConfig{
			ImageHosts: []string{"images.unsplash.com", "plus.unsplash.com", "cdn.sanity.io"},
		},
		Contact: ContactConfig{
			Timeout:        10 * time.Second,
			Retries:        3,
			RateLimitRPS:   5,
			RateLimitBurst: 20,
		},
		Compression: CompressionConfig{
			Enabled: true,
		},
	}
}
