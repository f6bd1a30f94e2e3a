// Package secrets keeps generated API keys in the OS keychain so they can be
// looked up after the env files are written.
package secrets

import (
	"errors"
	"strings"
)

const ServiceName = "fleetenv"

var ErrNotFound = errors.New("secret not found")

type Store interface {
	Set(name, value string) error
	Get(name string) (string, error)
	Delete(name string) error
}

// DefaultStore returns the standard store backed by the OS keychain.
func DefaultStore() Store {
	return NewKeyringStore(ServiceName)
}

// Normalize lowercases and trims a secret name for consistent lookup.
func Normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// AppSecretName is the entry under which the simulator app secret is stored.
const AppSecretName = "app-secret"
