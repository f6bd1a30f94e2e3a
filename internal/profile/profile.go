// Package profile loads deployment profiles: YAML files that pre-fill the
// options for non-interactive env generation.
//
// A profile looks like:
//
//	backend_url: https://api.example.com
//	frontend_url: https://fleet.example.com
//	simulator_url: http://10.0.0.5:9001
//	extra_origins:
//	  - https://staging.example.com
//	auto_reassign: true
package profile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"fleetworks/fleetenv/internal/deploy/domain"

	"gopkg.in/yaml.v3"
)

// Parse decodes a profile on top of base. Fields absent from data keep their
// value from base. Unknown fields are rejected.
func Parse(data []byte, base domain.Options) (domain.Options, error) {
	opts := base
	opts.ExtraOrigins = append([]string(nil), base.ExtraOrigins...)

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&opts); err != nil {
		if errors.Is(err, io.EOF) {
			return opts, nil // empty profile
		}
		return domain.Options{}, fmt.Errorf("invalid profile YAML: %w", err)
	}
	return opts, nil
}

// Load reads the profile at path and decodes it on top of base.
func Load(path string, base domain.Options) (domain.Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Options{}, fmt.Errorf("profile: failed to read %s: %w", path, err)
	}
	opts, err := Parse(data, base)
	if err != nil {
		return domain.Options{}, fmt.Errorf("profile: %s: %w", path, err)
	}
	return opts, nil
}

// Save writes opts as a profile. The app secret is never written.
func Save(path string, opts domain.Options) error {
	opts.AppSecret = ""
	data, err := yaml.Marshal(&opts)
	if err != nil {
		return fmt.Errorf("profile: failed to marshal: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("profile: failed to write %s: %w", path, err)
	}
	return nil
}
