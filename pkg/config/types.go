package config

import "time"

// Config represents the complete tool configuration.
type Config struct {
	Client    ClientConfig    `mapstructure:"client"`
	Validator ValidatorConfig `mapstructure:"validator"`
	Recording RecordingConfig `mapstructure:"recording"`
}

// ClientConfig contains Podcast Index API client settings. The key and
// secret have no defaults; they come from the settings file or the
// PODCASTINDEX_CLIENT_API_KEY / PODCASTINDEX_CLIENT_API_SECRET
// environment variables.
type ClientConfig struct {
	APIKey    string        `mapstructure:"api_key"`
	APISecret string        `mapstructure:"api_secret"`
	BaseURL   string        `mapstructure:"base_url" validate:"required,url"`
	UserAgent string        `mapstructure:"user_agent"`
	Timeout   time.Duration `mapstructure:"timeout" validate:"gte=0"`
}

// ValidatorConfig contains schema-validation run settings.
type ValidatorConfig struct {
	SchemaVersion   string  `mapstructure:"schema_version" validate:"required"`
	ProbeFile       string  `mapstructure:"probe_file"`
	ProbesPerSecond float64 `mapstructure:"probes_per_second" validate:"gte=0"`
}

// RecordingConfig contains recorded-response store settings.
type RecordingConfig struct {
	Path    string `mapstructure:"path" validate:"required"`
	Verbose bool   `mapstructure:"verbose"`
}
