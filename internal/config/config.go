package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/lite-lake/cf-empty-email/internal/domain"
	"github.com/lite-lake/cf-empty-email/internal/infrastructure/logger"
)

// Config holds the Cloudflare credentials. Either an API token, or the legacy
// global key together with the account email.
type Config struct {
	APIToken string
	APIKey   string
	APIEmail string
}

// Load reads credentials from the environment, consulting a .env file first
// if one is present. Validation happens here, before any network call.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		APIToken: os.Getenv("CF_API_TOKEN"),
		APIKey:   os.Getenv("CF_API_KEY"),
		APIEmail: os.Getenv("CF_API_EMAIL"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger.Debug("Cloudflare credentials found in environment", "token_auth", cfg.UseAPIToken())
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.APIToken != "" {
		return nil
	}
	if c.APIKey == "" || c.APIEmail == "" {
		return fmt.Errorf("%w: set CF_API_TOKEN, or both CF_API_KEY and CF_API_EMAIL",
			domain.ErrMissingCredentials)
	}
	return nil
}

func (c *Config) UseAPIToken() bool {
	return c.APIToken != ""
}
