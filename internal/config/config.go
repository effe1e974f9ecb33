// Package config loads and saves the command line tool's defaults.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/kodistudios/playnote/sdk/contracts"
)

// ErrInvalidConfig is returned for a config file that parses but holds unusable values.
var ErrInvalidConfig = errors.New("invalid config")

// NoteConfig holds the default note played when no flag overrides it.
type NoteConfig struct {
	Channel    uint32 `json:"channel"`
	Instrument uint32 `json:"instrument"`
	Pitch      uint32 `json:"pitch"`
	Velocity   uint32 `json:"velocity"`
	LengthMs   uint32 `json:"lengthMs"`
	Simple     bool   `json:"simple,omitempty"`
}

// OutputConfig selects the MIDI output.
type OutputConfig struct {
	Driver      string `json:"driver,omitempty"` // empty selects the platform default
	DeviceIndex int    `json:"deviceIndex"`
	PortName    string `json:"portName,omitempty"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level string `json:"level,omitempty"`
	File  string `json:"file,omitempty"`
}

// Config is the main configuration structure
type Config struct {
	Note   NoteConfig   `json:"note"`
	Output OutputConfig `json:"output"`
	Log    LogConfig    `json:"log,omitempty"`
}

// DefaultConfig returns the default demo: grand piano middle C, full velocity, 3 seconds, device 0.
func DefaultConfig() *Config {
	req := contracts.DefaultPlaybackRequest()
	return &Config{
		Note: NoteConfig{
			Channel:    req.Channel,
			Instrument: req.Instrument,
			Pitch:      req.Pitch,
			Velocity:   req.Velocity,
			LengthMs:   req.DurationMillis,
		},
		Log: LogConfig{Level: "info"},
	}
}

// Request converts the note defaults into a PlaybackRequest.
func (c *Config) Request() contracts.PlaybackRequest {
	return contracts.PlaybackRequest{
		Channel:        c.Note.Channel,
		Instrument:     c.Note.Instrument,
		Pitch:          c.Note.Pitch,
		Velocity:       c.Note.Velocity,
		DurationMillis: c.Note.LengthMs,
	}
}

// Validate checks the values that cannot be fixed later by the player.
// Note fields are left alone: out of range values are for the player to accept or reject.
func (c *Config) Validate() error {
	if c.Output.DeviceIndex < 0 {
		return fmt.Errorf("%w: negative device index %d", ErrInvalidConfig, c.Output.DeviceIndex)
	}
	if _, ok := contracts.ParseLogLevel(c.Log.Level); !ok {
		return fmt.Errorf("%w: unknown log level %q", ErrInvalidConfig, c.Log.Level)
	}
	return nil
}

// ConfigDir returns the config directory path
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "playnote"), nil
}

// ConfigPath returns the full path to config.json
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads the config from the default path, or returns defaults if not found
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return DefaultConfig(), nil
	}
	return LoadFile(path)
}

// LoadFile reads the config at path. A missing file yields the defaults; fields absent
// from the file keep their default values.
func LoadFile(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the config to the default path
func (c *Config) Save() error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	return c.SaveFile(path)
}

// SaveFile writes the config to path, creating its directory.
func (c *Config) SaveFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
