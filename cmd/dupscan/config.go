package main

import (
	"fmt"
	"os"

	"github.com/go-ini/ini"
)

// Config holds the CLI defaults that may come from an ini file. Flags
// always win over file values; the engine itself never reads this.
type Config struct {
	Excludes []string // [scan] exclude, comma-separated roots
	Keep     string   // [scan] keep strategy name
	Format   string   // [output] format: human or json
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Keep:   "shortest",
		Format: "human",
	}
}

// LoadConfig reads the optional ini file at path. A missing file yields
// the defaults; a malformed one is an error.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	file, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config %s: %w", path, err)
	}

	scan := file.Section("scan")
	if key := scan.Key("exclude"); key.String() != "" {
		cfg.Excludes = key.Strings(",")
	}
	if keep := scan.Key("keep").String(); keep != "" {
		cfg.Keep = keep
	}

	output := file.Section("output")
	if format := output.Key("format").String(); format != "" {
		cfg.Format = format
	}

	return cfg, nil
}
