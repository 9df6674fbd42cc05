// Package config loads user defaults for the command line tool from a
// YAML file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// File holds defaults read from the config file. Command line flags
// take precedence over every field. Boolean flags can only switch an
// option on, so a true boolean here cannot be turned off per run.
type File struct {
	Mode         string        `yaml:"mode"`
	Charset      string        `yaml:"charset"`
	Chars        string        `yaml:"chars"`
	NoColor      bool          `yaml:"no_color"`
	Invert       bool          `yaml:"invert"`
	PreserveANSI bool          `yaml:"preserve_ansi"`
	Compact      bool          `yaml:"compact"`
	Sharpen      bool          `yaml:"sharpen"`
	Resample     string        `yaml:"resample"`
	Font         string        `yaml:"font"`
	Watch        WatchSettings `yaml:"watch"`
}

// WatchSettings configures the resize loop.
type WatchSettings struct {
	Interval time.Duration `yaml:"interval"`
}

// DefaultPath returns $XDG_CONFIG_HOME/img2ascii/config.yaml, falling
// back to ~/.config on systems without XDG.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locating config dir: %w", err)
	}
	return filepath.Join(dir, "img2ascii", "config.yaml"), nil
}

// Load reads the config file at path. A missing file is not an error
// unless required is set; it yields an empty File.
func Load(path string, required bool) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !required {
			return &File{}, nil
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML config data. Unknown keys are rejected.
func Parse(data []byte) (*File, error) {
	var cfg File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if cfg.Watch.Interval < 0 {
		return nil, fmt.Errorf("parse config: watch.interval must not be negative")
	}
	return &cfg, nil
}
