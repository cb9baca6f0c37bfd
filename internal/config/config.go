// Package config loads the optional dirscan configuration file and
// merges it over built-in defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"dario.cat/mergo"
	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"

	"github.com/mialy/dirscan/internal/scanner"
)

// Config holds the settings the CLI resolves before a scan.
//
// The Scan section is kept loosely typed on purpose: it is handed to
// the scanner's lenient option parser, so unknown keys or wrongly typed
// values in a config file fall back to defaults instead of failing
// startup.
type Config struct {
	// Verbose enables debug-level logging.
	Verbose bool `yaml:"verbose"`

	// LogFile, if non-empty, receives a copy of all log records.
	LogFile string `yaml:"log_file"`

	// NoColor disables colorized terminal output.
	NoColor bool `yaml:"no_color"`

	// Scan holds default scan options (recursion, maxDepth, sort,
	// filesOnly, strict), applied leniently.
	Scan map[string]any `yaml:"scan"`
}

// DefaultConfig returns a Config with built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Verbose: false,
		LogFile: "",
		NoColor: false,
		Scan:    map[string]any{},
	}
}

// DefaultPath returns the conventional config file location under the
// user's configuration directory.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, "dirscan", "config.yaml")
}

// Load reads the YAML configuration at path and merges it over the
// defaults. A missing file is not an error: the defaults are returned.
// A file that exists but cannot be read or parsed is an error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var fileCfg Config
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if err := mergo.Merge(cfg, fileCfg, mergo.WithOverride); err != nil {
		return nil, fmt.Errorf("failed to merge config file %s: %w", path, err)
	}

	return cfg, nil
}

// ScanOptions resolves the loosely typed Scan section into typed
// scanner options on top of the scanner defaults.
func (c *Config) ScanOptions() scanner.Options {
	return scanner.ApplyOptionMap(scanner.DefaultOptions(), c.Scan)
}
