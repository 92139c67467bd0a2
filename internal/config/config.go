package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/otiai10/sumsub/internal/security"
)

// Config represents the application configuration
type Config struct {
	API     APIConfig     `yaml:"api"`
	Webhook WebhookConfig `yaml:"webhook"`
	Logging LoggingConfig `yaml:"logging"`
}

// APIConfig holds the outbound API credentials
type APIConfig struct {
	BaseURL   string        `yaml:"base_url"`
	AppToken  string        `yaml:"app_token"`
	SecretKey string        `yaml:"secret_key"`
	Timeout   time.Duration `yaml:"timeout"`
}

// WebhookConfig holds the inbound webhook receiver settings
type WebhookConfig struct {
	ListenAddr   string `yaml:"listen_addr"`
	Path         string `yaml:"path"`
	SecretKey    string `yaml:"secret_key"`
	MaxBodyBytes int64  `yaml:"max_body_bytes"`
}

// LoggingConfig selects the log level and output format
type LoggingConfig struct {
	Level  string `yaml:"level"`  // zerolog level name
	Format string `yaml:"format"` // "json" | "text"
}

// Default returns a configuration with every optional field populated.
func Default() Config {
	return Config{
		API: APIConfig{
			BaseURL: "https://api.sumsub.com",
			Timeout: 30 * time.Second,
		},
		Webhook: WebhookConfig{
			ListenAddr:   ":8080",
			Path:         "/webhooks/sumsub",
			MaxBodyBytes: 1 << 20,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Load reads configuration from the specified YAML file
// Environment variables override file values:
// - SUMSUB_BASE_URL overrides api.base_url
// - SUMSUB_APP_TOKEN overrides api.app_token
// - SUMSUB_SECRET_KEY overrides api.secret_key
// - SUMSUB_WEBHOOK_SECRET overrides webhook.secret_key
// - SUMSUB_WEBHOOK_ADDR overrides webhook.listen_addr
// - SUMSUB_LOG_LEVEL overrides logging.level
// - SUMSUB_LOG_FORMAT overrides logging.format
func Load(path string) (*Config, error) {
	// Read file
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Unmarshal YAML on top of the defaults
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// LoadFromEnv builds the configuration from defaults and environment
// variables only.
func LoadFromEnv() (*Config, error) {
	cfg := Default()
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

func (c *Config) applyEnv() error {
	overrides := []struct {
		key string
		dst *string
	}{
		{"SUMSUB_BASE_URL", &c.API.BaseURL},
		{"SUMSUB_APP_TOKEN", &c.API.AppToken},
		{"SUMSUB_SECRET_KEY", &c.API.SecretKey},
		{"SUMSUB_WEBHOOK_SECRET", &c.Webhook.SecretKey},
		{"SUMSUB_WEBHOOK_ADDR", &c.Webhook.ListenAddr},
		{"SUMSUB_LOG_LEVEL", &c.Logging.Level},
		{"SUMSUB_LOG_FORMAT", &c.Logging.Format},
	}
	for _, o := range overrides {
		if v := os.Getenv(o.key); v != "" {
			*o.dst = v
		}
	}

	if v := os.Getenv("SUMSUB_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("SUMSUB_TIMEOUT: %w", err)
		}
		c.API.Timeout = d
	}
	if v := os.Getenv("SUMSUB_WEBHOOK_MAX_BODY_BYTES"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("SUMSUB_WEBHOOK_MAX_BODY_BYTES: %w", err)
		}
		c.Webhook.MaxBodyBytes = n
	}
	return nil
}

// Validate checks if the configuration is well formed.
// Credentials are checked separately by RequireAPICredentials and
// RequireWebhookSecret, since each binary needs only one side.
func (c *Config) Validate() error {
	if c.API.BaseURL == "" {
		return fmt.Errorf("api.base_url is required")
	}
	if err := security.ValidateBaseURL(c.API.BaseURL); err != nil {
		return fmt.Errorf("api.base_url: %w", err)
	}
	if c.API.Timeout <= 0 {
		return fmt.Errorf("api.timeout must be positive")
	}

	if c.Webhook.Path == "" || c.Webhook.Path[0] != '/' {
		return fmt.Errorf("webhook.path must start with /")
	}
	if c.Webhook.MaxBodyBytes <= 0 {
		return fmt.Errorf("webhook.max_body_bytes must be positive")
	}

	if _, err := zerolog.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("logging.level %q is not supported", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "json", "text":
	default:
		return fmt.Errorf("logging.format %q is not supported (supported: json, text)", c.Logging.Format)
	}

	return nil
}

// RequireAPICredentials reports an error unless the outbound credentials are set.
func (c *Config) RequireAPICredentials() error {
	if c.API.AppToken == "" {
		return fmt.Errorf("api.app_token is required")
	}
	if c.API.SecretKey == "" {
		return fmt.Errorf("api.secret_key is required")
	}
	return nil
}

// RequireWebhookSecret reports an error unless the webhook secret is set.
func (c *Config) RequireWebhookSecret() error {
	if c.Webhook.SecretKey == "" {
		return fmt.Errorf("webhook.secret_key is required")
	}
	if c.Webhook.ListenAddr == "" {
		return fmt.Errorf("webhook.listen_addr is required")
	}
	return nil
}
