package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/christoph-blessing/sinzlab-tools/internal/errors"
)

// starterHeader is prepended to generated config files.
const starterHeader = `# sinzlab-tools configuration.
#
# hosts:  whitespace-separated short names of the fleet
# common: domain suffix appended to each short name
# user:   login used on every host
`

// Write marshals cfg to path. Used by 'config init' to produce a starter
// file; refuses to overwrite unless force is set.
func Write(cfg *Config, path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return errors.New(errors.ErrConfig,
				"Config file already exists: "+path,
				"Pass --force to overwrite it")
		}
	}

	// Shadow struct so the timeout serializes as "30s", not nanoseconds.
	starter := struct {
		Hosts   string       `yaml:"hosts"`
		Common  string       `yaml:"common"`
		User    string       `yaml:"user"`
		Timeout string       `yaml:"timeout"`
		Output  OutputConfig `yaml:"output"`
	}{
		Hosts:   cfg.Hosts,
		Common:  cfg.Common,
		User:    cfg.User,
		Timeout: cfg.Timeout.String(),
		Output:  cfg.Output,
	}

	data, err := yaml.Marshal(starter)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to serialize config",
			"This is a bug; please report it")
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to create config directory: "+dir,
				"Check directory permissions")
		}
	}

	content := append([]byte(starterHeader), data...)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to write config file: "+path,
			"Check directory permissions")
	}
	return nil
}
