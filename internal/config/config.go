// Package config loads service configuration from the environment, with an
// optional .env file for local development.
package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds everything the server needs at startup.
type Config struct {
	Port           int
	APIKey         string
	Model          string
	BaseURL        string
	RequestTimeout time.Duration
	Environment    string
}

// Load reads configuration from LITECAL_* environment variables (the model
// API key also honors the conventional GEMINI_API_KEY). A .env file in the
// working directory is loaded first when present; a missing one is not an
// error. A missing API key is.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("LITECAL")
	v.AutomaticEnv()

	v.SetDefault("port", 5001)
	v.SetDefault("model", "gemini-2.0-flash")
	v.SetDefault("base_url", "")
	v.SetDefault("request_timeout", "60s")
	v.SetDefault("environment", "development")

	if err := v.BindEnv("api_key", "LITECAL_API_KEY", "GEMINI_API_KEY"); err != nil {
		return nil, err
	}

	cfg := &Config{
		Port:           v.GetInt("port"),
		APIKey:         v.GetString("api_key"),
		Model:          v.GetString("model"),
		BaseURL:        v.GetString("base_url"),
		RequestTimeout: v.GetDuration("request_timeout"),
		Environment:    v.GetString("environment"),
	}

	if cfg.APIKey == "" {
		return nil, fmt.Errorf("missing API key: set GEMINI_API_KEY or LITECAL_API_KEY")
	}
	if cfg.RequestTimeout <= 0 {
		return nil, fmt.Errorf("request timeout must be positive, got %s", cfg.RequestTimeout)
	}
	return cfg, nil
}
