// Package config loads CLI configuration from a config file and environment
// variables using Viper.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/vendalink/vendalink/internal/errors"
)

// Config holds the CLI configuration.
type Config struct {
	// APIURL is the base URL of the CRM backend API.
	APIURL string `mapstructure:"api_url"`
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `mapstructure:"timeout"`
	// Output is the default output format (table, json, yaml).
	Output string `mapstructure:"output"`
	// LogLevel is the minimum log level (debug, info, warn, error).
	LogLevel string `mapstructure:"log_level"`
}

// Dir returns the vendalink configuration directory (~/.vendalink).
// Falls back to a relative .vendalink directory if the home directory
// cannot be determined.
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".vendalink"
	}
	return filepath.Join(home, ".vendalink")
}

// CredentialsPath returns the path of the persisted session credentials file.
func CredentialsPath() string {
	return filepath.Join(Dir(), "credentials.json")
}

// Load reads config.yaml from the config directory (if present), applies
// VENDALINK_* environment overrides, and validates the result. A missing
// config file is not an error; defaults apply.
func Load() (*Config, error) {
	return load(Dir())
}

func load(dir string) (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)

	v.SetEnvPrefix("VENDALINK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("api_url", "http://localhost:5000")
	v.SetDefault("timeout", "30s")
	v.SetDefault("output", "table")
	v.SetDefault("log_level", "warn")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, errors.Wrap(errors.ErrCodeConfigInvalid, "could not read config file", err).
				WithSuggestion("Check the YAML syntax of " + filepath.Join(dir, "config.yaml"))
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(errors.ErrCodeConfigInvalid, "could not parse config", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the loaded configuration for usable values
func (c *Config) Validate() error {
	if c.APIURL == "" {
		return errors.New(errors.ErrCodeConfigInvalid, "api_url must not be empty").
			WithSuggestion("Set api_url in config.yaml or export VENDALINK_API_URL")
	}
	switch c.Output {
	case "table", "json", "yaml":
	default:
		return errors.New(errors.ErrCodeConfigInvalid, "output must be one of: table, json, yaml")
	}
	if c.Timeout <= 0 {
		c.Timeout = 30 * time.Second
	}
	return nil
}
