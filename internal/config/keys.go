package config

import (
	"fmt"
	"strconv"
	"strings"
)

// KeySpec describes a single configuration key.
type KeySpec struct {
	// Name is the CLI-facing key name (e.g. "output-dir").
	Name string

	// Description is a short human-readable explanation shown in help text.
	Description string

	// Get returns the current value for this key from a loaded Config.
	Get func(cfg *Config) string

	// Set parses and applies a value for this key to the given Config (in
	// memory only; the caller is responsible for calling Save). An empty
	// value clears the key.
	Set func(cfg *Config, value string) error
}

// Keys is the authoritative list of all supported configuration keys.
// To add a new option: add a field to Config and append a KeySpec here.
var Keys = []KeySpec{
	{
		Name:        "output-dir",
		Description: "Directory env files are written to when --out is not specified",
		Get:         func(cfg *Config) string { return cfg.OutputDir },
		Set: func(cfg *Config, v string) error {
			cfg.OutputDir = strings.TrimSpace(v)
			return nil
		},
	},
	{
		Name:        "key-length",
		Description: "Length of generated API keys and app secrets (16-256)",
		Get: func(cfg *Config) string {
			if cfg.KeyLength == 0 {
				return ""
			}
			return strconv.Itoa(cfg.KeyLength)
		},
		Set: func(cfg *Config, v string) error {
			v = strings.TrimSpace(v)
			if v == "" {
				cfg.KeyLength = 0
				return nil
			}
			n, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("key-length must be a number, got %q", v)
			}
			if n < 16 || n > 256 {
				return fmt.Errorf("key-length must be between 16 and 256, got %d", n)
			}
			cfg.KeyLength = n
			return nil
		},
	},
	{
		Name:        "simulator-url",
		Description: "Simulator URL used when --simulator-url is not specified",
		Get:         func(cfg *Config) string { return cfg.SimulatorURL },
		Set: func(cfg *Config, v string) error {
			cfg.SimulatorURL = strings.TrimSpace(v)
			return nil
		},
	},
	{
		Name:        "app-id",
		Description: "Simulator app ID shared by the backend and simulator",
		Get:         func(cfg *Config) string { return cfg.AppID },
		Set: func(cfg *Config, v string) error {
			cfg.AppID = strings.TrimSpace(v)
			return nil
		},
	},
	{
		Name:        "app-code",
		Description: "Simulator app code shared by the backend and simulator",
		Get:         func(cfg *Config) string { return cfg.AppCode },
		Set: func(cfg *Config, v string) error {
			cfg.AppCode = strings.TrimSpace(v)
			return nil
		},
	},
}

// Lookup returns the KeySpec for the given name, or nil if not found.
// The name is matched case-insensitively after trimming whitespace.
func Lookup(name string) *KeySpec {
	normalized := strings.ToLower(strings.TrimSpace(name))
	for i := range Keys {
		if Keys[i].Name == normalized {
			return &Keys[i]
		}
	}
	return nil
}

// KeyNames returns the names of all registered keys.
func KeyNames() []string {
	names := make([]string, len(Keys))
	for i, k := range Keys {
		names[i] = k.Name
	}
	return names
}

// KeysHelp builds a formatted block listing all available keys and their
// descriptions, suitable for inclusion in Cobra Long help text.
func KeysHelp() string {
	if len(Keys) == 0 {
		return ""
	}

	// Find the longest key name for alignment.
	maxLen := 0
	for _, k := range Keys {
		if len(k.Name) > maxLen {
			maxLen = len(k.Name)
		}
	}

	var b strings.Builder
	b.WriteString("Available keys:\n")
	for _, k := range Keys {
		fmt.Fprintf(&b, "  %-*s   %s\n", maxLen, k.Name, k.Description)
	}
	return b.String()
}
