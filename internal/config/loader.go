package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"

	"github.com/christoph-blessing/sinzlab-tools/internal/errors"
)

const (
	// ConfigFileName is the default config file name.
	ConfigFileName = ".sinzlab.yaml"
	// GlobalConfigDir is the directory for global config, under $HOME.
	GlobalConfigDir = ".config/sinzlab-tools"
	// GlobalConfigFile is the global config file name.
	GlobalConfigFile = "config.yaml"
)

// Load reads config from the specified path.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	v.SetDefault("timeout", 30*time.Second)
	v.SetDefault("output.color", "auto")

	if err := v.ReadInConfig(); err != nil {
		if os.IsNotExist(err) {
			return nil, errors.WrapWithCode(err, errors.ErrConfig,
				"Config file not found",
				"Run 'sinzlab-tools config init' to create one, or pass --config")
		}
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to read config file",
			"Check the file exists and is valid YAML")
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Config file has the wrong shape",
			"Compare it against the output of 'sinzlab-tools config init'")
	}

	return cfg, nil
}

// Find locates the config file using the search order:
// 1. Explicit path (from --config flag)
// 2. .sinzlab.yaml in the current directory
// 3. ~/.config/sinzlab-tools/config.yaml
//
// Returns the path to the config file, or empty string if not found.
func Find(explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			if os.IsNotExist(err) {
				return "", errors.WrapWithCode(err, errors.ErrConfig,
					"Specified config file not found: "+explicit,
					"Check the path is correct")
			}
			return "", errors.WrapWithCode(err, errors.ErrConfig,
				"Cannot access config file: "+explicit,
				"Check file permissions")
		}
		return explicit, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", errors.WrapWithCode(err, errors.ErrConfig,
			"Cannot determine current directory",
			"Check directory permissions")
	}

	localConfig := filepath.Join(cwd, ConfigFileName)
	if _, err := os.Stat(localConfig); err == nil {
		return localConfig, nil
	}

	if home, err := os.UserHomeDir(); err == nil {
		globalConfig := filepath.Join(home, GlobalConfigDir, GlobalConfigFile)
		if _, err := os.Stat(globalConfig); err == nil {
			return globalConfig, nil
		}
	}

	return "", nil
}

// Validate checks that the config can drive a dispatch: a non-empty fleet,
// a login user, and a known color mode. Failures here are fatal at startup.
func Validate(cfg *Config) error {
	if len(cfg.HostNames()) == 0 {
		return errors.New(errors.ErrConfig,
			"No hosts configured",
			"Add a whitespace-separated 'hosts' entry to "+ConfigFileName)
	}
	if cfg.User == "" {
		return errors.New(errors.ErrConfig,
			"No login user configured",
			"Add a 'user' entry to "+ConfigFileName)
	}
	switch cfg.Output.Color {
	case "", "auto", "always", "never":
	default:
		return errors.New(errors.ErrConfig,
			"Unknown color mode '"+cfg.Output.Color+"'",
			"Use one of: auto, always, never")
	}
	return nil
}
