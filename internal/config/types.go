package config

import "time"

// Config represents the .sinzlab.yaml configuration file.
type Config struct {
	// Hosts is the default fleet as whitespace-separated short names.
	Hosts string `yaml:"hosts" mapstructure:"hosts"`

	// Common is the domain suffix appended to each short name.
	Common string `yaml:"common" mapstructure:"common"`

	// User is the login identity used on every host.
	User string `yaml:"user" mapstructure:"user"`

	// Timeout is the per-host command timeout.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`

	Output OutputConfig `yaml:"output" mapstructure:"output"`
}

// OutputConfig controls terminal output formatting.
type OutputConfig struct {
	// Color mode: "auto", "always", or "never".
	// "auto" disables color when output is piped.
	Color string `yaml:"color" mapstructure:"color"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Timeout: 30 * time.Second,
		Output: OutputConfig{
			Color: "auto",
		},
	}
}
