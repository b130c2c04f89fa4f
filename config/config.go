// Package config loads and saves the small YAML configuration file: the
// default whitespace printability style and any keybinding overrides.
package config

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config is the persisted user configuration.
type Config struct {
	// PrintableStyle is one of "hidden", "common-multiline", "common-oneline",
	// "all-multiline", "all-oneline"; unrecognised values fall back to
	// "hidden" (item.ParsePrintableStyle).
	PrintableStyle string `yaml:"printable_style"`

	// Keybindings maps an action name (as used in §6.3, e.g.
	// "toggle_all_items") to an override key. Only single-character keys
	// (e.g. "x") take effect, in SELECT mode; multi-key chords such as
	// "ctrl+a" are accepted here but ignored. Empty by default; the built-in
	// table in the input package is used for any action without an
	// effective override.
	Keybindings map[string]string `yaml:"keybindings"`
}

// DefaultConfigYaml is written the first time LoadOrCreate runs.
var DefaultConfigYaml = []byte(`printable_style: hidden
keybindings: {}
`)

// Path returns the path to the configuration file under the user's XDG
// config directory.
func Path() (string, error) {
	return xdg.ConfigFile(filepath.Join("repgrep", "config.yaml"))
}

// LoadOrCreate loads the config file if it exists, writing and returning the
// default configuration otherwise.
func LoadOrCreate() (*Config, error) {
	path, err := Path()
	if err != nil {
		return nil, errors.Wrap(err, "resolve config path")
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		if err := save(path, DefaultConfigYaml); err != nil {
			return nil, err
		}
		data = DefaultConfigYaml
	} else if err != nil {
		return nil, errors.Wrapf(err, "read config %q", path)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrapf(err, "parse config %q", path)
	}
	return &cfg, nil
}

func save(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrap(err, "create config directory")
	}
	return errors.Wrap(os.WriteFile(path, data, 0644), "write default config")
}
