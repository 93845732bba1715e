package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"bizdesk.app/bizdesk/core/locale"
	"bizdesk.app/bizdesk/security"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	StorageS3    = "s3"
	StorageLocal = "local"
)

type Config struct {
	// HTTP Server
	Port          int           `mapstructure:"port"`
	PublicBaseURL string        `mapstructure:"public_base_url"`
	SessionCookie string        `mapstructure:"session_cookie"`
	SigningSecret string        `mapstructure:"signing_secret"`
	TokenTTL      time.Duration `mapstructure:"token_ttl"`
	Locale        string        `mapstructure:"locale"`
	LogLevel      string        `mapstructure:"log_level"`
	LogFormat     string        `mapstructure:"log_format"`

	// Database
	DatabaseDriver    string `mapstructure:"database_driver"`
	DSN               string `mapstructure:"dsn"`
	DBMaxConnections  int    `mapstructure:"db_max_connections"`
	DBLogLevel        string `mapstructure:"db_log_level"`
	DatabaseParameter string `mapstructure:"database_parameter"`
	DatabaseName      string `mapstructure:"database_name"`

	// Receipt storage
	StorageBackend  string `mapstructure:"storage_backend"`
	ReceiptBucket   string `mapstructure:"receipt_bucket"`
	AWSRegion       string `mapstructure:"aws_region"`
	ReceiptBaseURL  string `mapstructure:"receipt_base_url"`
	LocalStorageDir string `mapstructure:"local_storage_dir"`

	// Slack
	SlackToken        string `mapstructure:"slack_token"`
	SlackInfoChannel  string `mapstructure:"slack_info_channel"`
	SlackErrorChannel string `mapstructure:"slack_error_channel"`
}

// keys without a default still have to be bound for the environment to reach Unmarshal.
var unbound = []string{
	"signing_secret", "database_parameter", "database_name", "aws_region", "receipt_base_url",
	"slack_token", "slack_info_channel", "slack_error_channel",
}

var defaults = map[string]any{
	"port":               8090,
	"public_base_url":    "http://localhost:8090",
	"session_cookie":     "bizdesk.session",
	"token_ttl":          "720h",
	"locale":             "fr",
	"log_level":          "info",
	"log_format":         "text",
	"database_driver":    "sqlite",
	"dsn":                "file:bizdesk.db?_foreign_keys=on",
	"db_max_connections": 10,
	"db_log_level":       "warn",
	"storage_backend":    StorageLocal,
	"receipt_bucket":     "expense-receipts",
	"local_storage_dir":  "uploads",
}

// Load reads an optional .env file, then the environment (BIZDESK_*) and an
// optional YAML file on top of the defaults.
func Load(file string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("reading .env: %w", err)
	}

	v := viper.New()
	for k, val := range defaults {
		v.SetDefault(k, val)
	}
	v.SetEnvPrefix("BIZDESK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for _, k := range unbound {
		if err := v.BindEnv(k); err != nil {
			return nil, fmt.Errorf("binding %s: %w", k, err)
		}
	}

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", file, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errs []string

	if c.Port < 1 || c.Port > 65535 {
		errs = append(errs, fmt.Sprintf("invalid port %d: must be between 1 and 65535", c.Port))
	}

	switch c.DatabaseDriver {
	case "mysql", "sqlite":
	default:
		errs = append(errs, fmt.Sprintf("invalid database driver '%s': must be one of [mysql sqlite]", c.DatabaseDriver))
	}
	if c.DSN == "" && c.DatabaseParameter == "" {
		errs = append(errs, "either dsn or database_parameter must be provided")
	}
	if c.DatabaseParameter != "" && c.DatabaseName == "" {
		errs = append(errs, "database_name is required when database_parameter is set")
	}
	if c.DBMaxConnections < 1 {
		errs = append(errs, fmt.Sprintf("invalid db max connections %d: must be at least 1", c.DBMaxConnections))
	}

	switch c.StorageBackend {
	case StorageS3:
		if c.ReceiptBucket == "" {
			errs = append(errs, "receipt bucket is required when using s3 storage")
		}
	case StorageLocal:
		if c.LocalStorageDir == "" {
			errs = append(errs, "local storage directory is required when using local storage")
		}
	default:
		errs = append(errs, fmt.Sprintf("invalid storage backend '%s': must be one of [s3 local]", c.StorageBackend))
	}

	if c.SigningSecret == "" {
		errs = append(errs, "signing secret is required")
	} else if _, err := security.DecodeSecret(c.SigningSecret); err != nil {
		errs = append(errs, err.Error())
	}
	if c.TokenTTL <= 0 {
		errs = append(errs, fmt.Sprintf("invalid token ttl %v: must be positive", c.TokenTTL))
	}
	if _, ok := locale.Parse(c.Locale); !ok {
		errs = append(errs, fmt.Sprintf("invalid locale '%s': must be one of [en fr]", c.Locale))
	}
	if c.SlackToken != "" && c.SlackErrorChannel == "" && c.SlackInfoChannel == "" {
		errs = append(errs, "a slack channel is required when a slack token is provided")
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errs, "\n- "))
	}
	return nil
}

// ReceiptURL is the base public URL of receipts kept by the local backend.
func (c *Config) ReceiptURL() string {
	if c.ReceiptBaseURL != "" {
		return c.ReceiptBaseURL
	}
	if c.StorageBackend == StorageLocal {
		return strings.TrimRight(c.PublicBaseURL, "/") + "/receipts"
	}
	return ""
}
