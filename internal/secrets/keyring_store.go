package secrets

import (
	"errors"

	"github.com/zalando/go-keyring"
)

type KeyringStore struct {
	serviceName string
}

func NewKeyringStore(serviceName string) *KeyringStore {
	if serviceName == "" {
		serviceName = ServiceName
	}
	return &KeyringStore{serviceName: serviceName}
}

func (k *KeyringStore) Set(name, value string) error {
	return keyring.Set(k.serviceName, Normalize(name), value)
}

func (k *KeyringStore) Get(name string) (string, error) {
	value, err := keyring.Get(k.serviceName, Normalize(name))
	if err == nil {
		return value, nil
	}
	if errors.Is(err, keyring.ErrNotFound) {
		return "", ErrNotFound
	}
	return "", err
}

func (k *KeyringStore) Delete(name string) error {
	err := keyring.Delete(k.serviceName, Normalize(name))
	if errors.Is(err, keyring.ErrNotFound) {
		return ErrNotFound
	}
	return err
}
