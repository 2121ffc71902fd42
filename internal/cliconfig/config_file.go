package cliconfig

import (
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// FileConfig mirrors Config but uses strings for durations to make TOML friendly.
type FileConfig struct {
	MaxDimension  int      `toml:"max_dimension" yaml:"max_dimension"`
	Layout        string   `toml:"layout" yaml:"layout"`
	RowLength     int      `toml:"row_length" yaml:"row_length"`
	FailFast      *bool    `toml:"fail_fast" yaml:"fail_fast"`
	Recursive     *bool    `toml:"recursive" yaml:"recursive"`
	Extensions    []string `toml:"extensions" yaml:"extensions"`
	DeleteSources *bool    `toml:"delete_sources" yaml:"delete_sources"`
	Overwrite     *bool    `toml:"overwrite" yaml:"overwrite"`
	WatchDebounce string   `toml:"watch_debounce" yaml:"watch_debounce"`
	Verbose       *bool    `toml:"verbose" yaml:"verbose"`
}

// LoadFileConfig reads and parses a config file from the given path.
// Files ending in .yaml or .yml are read as YAML, anything else as TOML.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, &fc)
	default:
		err = toml.Unmarshal(b, &fc)
	}
	if err != nil {
		return fc, err
	}
	return fc, nil
}

// DefaultConfigPath returns the default configuration file path.
// Returns ~/.spritegrid/config.toml if user home directory is accessible.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".spritegrid", "config.toml")
	}
	return ""
}

// ApplyFileConfig applies configuration from a file to the Config struct.
// It respects flags that have been explicitly set (changed map).
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setInt("max-dimension", fc.MaxDimension, &cfg.MaxDimension)
	s.setString("layout", fc.Layout, &cfg.Layout)
	s.setInt("row-length", fc.RowLength, &cfg.RowLength)
	s.setStrings("extensions", fc.Extensions, &cfg.Extensions)

	if err := s.setDuration("debounce", fc.WatchDebounce, &cfg.WatchDebounce); err != nil {
		return err
	}

	s.setBool("fail-fast", fc.FailFast, &cfg.FailFast)
	s.setBool("recursive", fc.Recursive, &cfg.Recursive)
	s.setBool("delete-sources", fc.DeleteSources, &cfg.DeleteSources)
	s.setBool("overwrite", fc.Overwrite, &cfg.Overwrite)
	s.setBool("verbose", fc.Verbose, &cfg.Verbose)

	return nil
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
