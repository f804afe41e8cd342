// Package config loads tool configuration from ./config/settings.yaml
// with PODCASTINDEX_-prefixed environment overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

var (
	once     sync.Once
	initErr  error
	validate = validator.New()
)

// Init initializes the configuration system. It should be called once
// at startup, before GetConfig.
func Init() error {
	once.Do(func() {
		setDefaults()

		viper.SetEnvPrefix("PODCASTINDEX")
		viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		viper.AutomaticEnv()

		configPath := filepath.Clean("./config/settings.yaml")
		viper.SetConfigFile(configPath)

		if err := viper.ReadInConfig(); err != nil {
			// A missing settings file is fine; defaults and env vars
			// still apply.
			if !os.IsNotExist(err) {
				initErr = fmt.Errorf("error reading config file %s: %w", configPath, err)
				return
			}
		}
	})

	return initErr
}

func setDefaults() {
	// Empty defaults keep the credential keys visible to viper so
	// environment overrides bind during Unmarshal.
	viper.SetDefault("client.api_key", "")
	viper.SetDefault("client.api_secret", "")
	viper.SetDefault("client.base_url", "https://api.podcastindex.org/api/1.0")
	viper.SetDefault("client.user_agent", "")
	viper.SetDefault("client.timeout", "30s")

	viper.SetDefault("validator.schema_version", "1.0")
	viper.SetDefault("validator.probe_file", "")
	viper.SetDefault("validator.probes_per_second", 2.0)

	viper.SetDefault("recording.path", "./data/recordings.db")
	viper.SetDefault("recording.verbose", false)
}

// GetConfig returns the current configuration as a validated struct.
// Init must have been called first.
func GetConfig() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// RequireCredentials checks that a key/secret pair is configured.
// Commands that sign live API requests call this; replay-only commands
// do not.
func (c *Config) RequireCredentials() error {
	if c.Client.APIKey == "" || c.Client.APISecret == "" {
		return fmt.Errorf("client.api_key and client.api_secret must be set " +
			"(PODCASTINDEX_CLIENT_API_KEY / PODCASTINDEX_CLIENT_API_SECRET)")
	}
	return nil
}
