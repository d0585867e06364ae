// Package config provides configuration management.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"

	"takeoff-cost/internal/logging"
)

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version"`

	// Takeoff configures the takeoff (state provider) service
	Takeoff TakeoffConfig `json:"takeoff"`

	// Estimator configures the estimator service
	Estimator EstimatorConfig `json:"estimator"`

	// Pricing contains pricing configuration
	Pricing PricingConfig `json:"pricing"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging"`
}

// TakeoffConfig contains takeoff-service settings
type TakeoffConfig struct {
	// Address is the listen address of the takeoff service
	Address string `json:"address"`

	// BaseURL is where the estimator reaches the takeoff service
	BaseURL string `json:"base_url"`
}

// EstimatorConfig contains estimator-service settings
type EstimatorConfig struct {
	// Address is the listen address of the estimator service
	Address string `json:"address"`

	// WebhookSecret signs/verifies change notifications; empty disables
	// signature verification
	WebhookSecret string `json:"webhook_secret,omitempty"`

	// FetchTimeoutSeconds bounds the state fetch after a webhook
	FetchTimeoutSeconds int `json:"fetch_timeout_seconds"`

	// FetchRetries is how many times a failed state fetch is retried
	FetchRetries int `json:"fetch_retries"`

	// FetchRetryDelayMs is the delay between fetch retries
	FetchRetryDelayMs int `json:"fetch_retry_delay_ms"`
}

// PricingConfig contains pricing-related settings
type PricingConfig struct {
	// TablePath is an optional HCL pricing table file; empty uses the
	// built-in table
	TablePath string `json:"table_path,omitempty"`

	// Currency is the display currency symbol
	Currency string `json:"currency"`
}

// Default returns a default configuration
func Default() *Config {
	return &Config{
		Version: "1.0",
		Takeoff: TakeoffConfig{
			Address: ":8000",
			BaseURL: "http://localhost:8000",
		},
		Estimator: EstimatorConfig{
			Address:             ":8001",
			FetchTimeoutSeconds: 30,
			FetchRetries:        0,
			FetchRetryDelayMs:   1000,
		},
		Pricing: PricingConfig{
			Currency: "USD",
		},
		Logging: logging.DefaultConfig(),
	}
}

// Load loads configuration from a file, applying environment overrides
func Load(path string) (*Config, error) {
	config := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return nil, err
			}
		} else if err := json.Unmarshal(data, config); err != nil {
			return nil, err
		}
	}

	config.applyEnv()
	return config, nil
}

// LoadEnv reads a .env file (if present) and returns the default
// configuration with environment overrides applied.
func LoadEnv() *Config {
	if err := godotenv.Load(); err != nil {
		logging.Debug("no .env file found, using system environment")
	}

	config := Default()
	config.applyEnv()
	return config
}

// applyEnv overrides settings from environment variables
func (c *Config) applyEnv() {
	c.Takeoff.Address = getEnv("TAKEOFF_ADDR", c.Takeoff.Address)
	c.Takeoff.BaseURL = getEnv("TAKEOFF_SERVICE_URL", c.Takeoff.BaseURL)
	c.Estimator.Address = getEnv("ESTIMATOR_ADDR", c.Estimator.Address)
	c.Estimator.WebhookSecret = getEnv("WEBHOOK_SECRET", c.Estimator.WebhookSecret)
	c.Estimator.FetchTimeoutSeconds = getEnvInt("FETCH_TIMEOUT_SECONDS", c.Estimator.FetchTimeoutSeconds)
	c.Estimator.FetchRetries = getEnvInt("FETCH_RETRIES", c.Estimator.FetchRetries)
	c.Pricing.TablePath = getEnv("PRICING_TABLE", c.Pricing.TablePath)
	c.Logging.Level = getEnv("LOG_LEVEL", c.Logging.Level)
	c.Logging.Format = getEnv("LOG_FORMAT", c.Logging.Format)
}

// Save saves configuration to a file
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		n, err := strconv.Atoi(val)
		if err == nil {
			return n
		}
	}
	return fallback
}

// Global configuration instance
var globalConfig = Default()

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration
func Set(config *Config) {
	globalConfig = config
}
