package config

import (
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
)

type Config struct {
	ProductsAPIURL  string        `envconfig:"PRODUCTS_API_URL" default:"https://dummyjson.com/products"`
	Port            string        `envconfig:"PORT"             default:":8080"`
	LogLevel        string        `envconfig:"LOG_LEVEL"        default:"info"`
	UpstreamTimeout time.Duration `envconfig:"UPSTREAM_TIMEOUT" default:"10s"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"15s"`
	GinMode         string        `envconfig:"GIN_MODE"         default:"release"`
}

// LoadConfig reads an optional .env file, then the process environment.
func LoadConfig(logger *logrus.Logger) (*Config, error) {
	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		logger.Warnf("Error loading .env file (but continuing): %v", err)
	} else if err == nil {
		logger.Info("Loaded configuration from .env file")
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process configuration from environment variables: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	logger.Infof("Configuration loaded: Port=%s, LogLevel=%s, ProductsAPIURL=%s, UpstreamTimeout=%s",
		cfg.Port, cfg.LogLevel, cfg.ProductsAPIURL, cfg.UpstreamTimeout)
	return &cfg, nil
}

func (c *Config) validate() error {
	u, err := url.Parse(c.ProductsAPIURL)
	if err != nil {
		return fmt.Errorf("invalid PRODUCTS_API_URL %q: %w", c.ProductsAPIURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("invalid PRODUCTS_API_URL %q: must be an absolute http(s) URL", c.ProductsAPIURL)
	}
	if c.UpstreamTimeout <= 0 {
		return fmt.Errorf("UPSTREAM_TIMEOUT must be positive, got %s", c.UpstreamTimeout)
	}
	switch c.GinMode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("GIN_MODE must be debug, release or test, got %q", c.GinMode)
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("SHUTDOWN_TIMEOUT must be positive, got %s", c.ShutdownTimeout)
	}
	return nil
}
