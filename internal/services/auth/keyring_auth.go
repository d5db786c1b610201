package auth

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

func (k *KeyringStore) SetSecret(name string, value string) error {
	return keyring.Set(k.serviceName, name, value)
}

func (k *KeyringStore) GetSecret(name string) (string, error) {
	value, err := keyring.Get(k.serviceName, name)
	if err == nil {
		return value, nil
	}
	if errors.Is(err, keyring.ErrNotFound) {
		return "", ErrCredentialsNotFound
	}
	return "", err
}

func (k *KeyringStore) DeleteSecret(name string) error {
	err := keyring.Delete(k.serviceName, name)
	if errors.Is(err, keyring.ErrNotFound) {
		return ErrCredentialsNotFound
	}
	return err
}
