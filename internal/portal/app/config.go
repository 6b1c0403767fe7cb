package app

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config carries everything the portal needs to start. Values come from the
// environment, with a .env file honoured in development.
type Config struct {
	APIBaseURL  string `env:"ONBOARD_API_URL"`
	SessionFile string `env:"ONBOARD_SESSION_FILE" envDefault:"onboardhub.db"`

	Env       string `env:"ENV" envDefault:"dev"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
}

// LoadConfig loads configuration from environment variables, reading a .env
// file first when one exists.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(); err != nil {
		var pathErr *os.PathError
		if !errors.As(err, &pathErr) {
			return Config{}, fmt.Errorf("load .env file: %w", err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}

	cfg.Sanitize()
	return cfg, nil
}

// Sanitize normalises the loaded values.
func (c *Config) Sanitize() {
	c.APIBaseURL = strings.TrimRight(strings.TrimSpace(c.APIBaseURL), "/")
	c.SessionFile = strings.TrimSpace(c.SessionFile)
	c.Env = strings.ToLower(strings.TrimSpace(c.Env))
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	c.LogFormat = strings.ToLower(strings.TrimSpace(c.LogFormat))
}

// Validate reports configuration the portal cannot start without.
func (c *Config) Validate() error {
	if c.APIBaseURL == "" {
		return errors.New("ONBOARD_API_URL is required")
	}
	if c.SessionFile == "" {
		return errors.New("ONBOARD_SESSION_FILE must not be empty")
	}
	return nil
}
