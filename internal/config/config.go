// Package config handles persistent user configuration for fleetenv.
//
// Configuration is stored as JSON at ~/.config/fleetenv/config.json (or the
// platform-equivalent path returned by os.UserConfigDir). Values here become
// the defaults for "fleetenv generate"; profiles and flags override them.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"fleetworks/fleetenv/internal/deploy/domain"
)

const (
	appDir   = "fleetenv"
	fileName = "config.json"
)

// pathOverride, when non-empty, replaces the default config file path.
// Intended for testing. Use SetPath / ResetPath to manage.
var pathOverride string

// SetPath overrides the config file path. Intended for testing.
func SetPath(p string) { pathOverride = p }

// ResetPath clears the path override, reverting to the default. Intended for testing.
func ResetPath() { pathOverride = "" }

// Config holds user preferences that persist across invocations.
type Config struct {
	OutputDir    string `json:"output_dir,omitempty"`
	KeyLength    int    `json:"key_length,omitempty"`
	SimulatorURL string `json:"simulator_url,omitempty"`
	AppID        string `json:"app_id,omitempty"`
	AppCode      string `json:"app_code,omitempty"`
}

// ApplyTo copies every value that is set onto opts.
func (c *Config) ApplyTo(opts *domain.Options) {
	if c.OutputDir != "" {
		opts.OutputDir = c.OutputDir
	}
	if c.KeyLength > 0 {
		opts.KeyLength = c.KeyLength
	}
	if c.SimulatorURL != "" {
		opts.SimulatorURL = c.SimulatorURL
	}
	if c.AppID != "" {
		opts.AppID = c.AppID
	}
	if c.AppCode != "" {
		opts.AppCode = c.AppCode
	}
}

// Path returns the config file path: the SetPath override if any, otherwise
// <UserConfigDir>/fleetenv/config.json.
func Path() (string, error) {
	if pathOverride != "" {
		return pathOverride, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("config: unable to determine config directory: %w", err)
	}
	return filepath.Join(base, appDir, fileName), nil
}

// Load reads the config file. A missing file yields an empty Config.
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path)
}

// LoadFrom reads the config at path. A missing file yields an empty Config.
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &Config{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("config: failed to read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	return &cfg, nil
}

// Save writes the config to Path().
func (c *Config) Save() error {
	path, err := Path()
	if err != nil {
		return err
	}
	return c.SaveTo(path)
}

// SaveTo writes the config to path as indented JSON, creating the parent
// directory. The file is replaced atomically.
func (c *Config) SaveTo(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("config: failed to marshal config: %w", err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("config: failed to create directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+fileName+".*")
	if err != nil {
		return fmt.Errorf("config: failed to write %s: %w", path, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("config: failed to write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("config: failed to write %s: %w", path, err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("config: failed to write %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("config: failed to write %s: %w", path, err)
	}
	return nil
}
