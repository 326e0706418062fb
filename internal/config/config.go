// Package config loads the optional gpstrail TOML configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"

	"github.com/gpstrail/gpstrail/internal/messages"
)

// Default values applied when no config file overrides them.
const (
	DefaultBaud      = 4800
	DefaultTrackFile = "gps_track.yaml"
)

// Config holds user defaults for the record/map/plot commands.
// Flags override config values; config values override the built-in defaults.
type Config struct {
	Serial SerialConfig `toml:"serial"`
	Track  TrackConfig  `toml:"track"`
}

// SerialConfig configures the serial port defaults.
type SerialConfig struct {
	// Port is the device path; empty means auto-detect.
	Port string `toml:"port"`
	Baud int    `toml:"baud"`
}

// TrackConfig configures the track file default.
type TrackConfig struct {
	File string `toml:"file"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Serial: SerialConfig{Baud: DefaultBaud},
		Track:  TrackConfig{File: DefaultTrackFile},
	}
}

// DefaultPath returns the per-user config file location.
func DefaultPath() (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", fmt.Errorf(messages.ConfigResolveErrFmt, err)
	}
	return filepath.Join(home, ".config", "gpstrail", "config.toml"), nil
}

// Load reads the config at path, layering it over the defaults.
// A missing file yields the defaults; a malformed file is an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf(messages.ConfigReadErrFmt, path, err)
	}
	return Parse(data, path)
}

// Parse parses TOML config data, layering it over the defaults.
// source identifies the data in error messages.
func Parse(data []byte, source string) (*Config, error) {
	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf(messages.ConfigInvalidFmt, source, err)
	}
	if cfg.Serial.Baud <= 0 {
		cfg.Serial.Baud = DefaultBaud
	}
	if cfg.Track.File == "" {
		cfg.Track.File = DefaultTrackFile
	}
	return cfg, nil
}
