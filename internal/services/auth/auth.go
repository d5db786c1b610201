package auth

import "errors"

const ServiceName = "cfzone"

// Keyring entry names.
const (
	KeyAPIToken    = "api-token"
	KeyGlobalEmail = "global-email"
	KeyGlobalKey   = "global-key"
)

var ErrCredentialsNotFound = errors.New("credentials not found")

// Store persists named secrets.
type Store interface {
	SetSecret(name string, value string) error
	GetSecret(name string) (string, error)
	DeleteSecret(name string) error
}

// DefaultStore returns the standard auth store backed by the OS keychain.
func DefaultStore() Store {
	return NewKeyringStore(ServiceName)
}

// Credentials is the stored Cloudflare auth material. Exactly one
// variant is populated: Token, or Email + Key.
type Credentials struct {
	Token string
	Email string
	Key   string
}

// Method returns "token" or "global-key" for display.
func (c Credentials) Method() string {
	if c.Token != "" {
		return "token"
	}
	return "global-key"
}

// SaveToken stores an API token and clears any stored global key pair,
// so the two variants never coexist.
func SaveToken(s Store, token string) error {
	if err := s.SetSecret(KeyAPIToken, token); err != nil {
		return err
	}
	deleteIgnoreMissing(s, KeyGlobalEmail)
	deleteIgnoreMissing(s, KeyGlobalKey)
	return nil
}

// SaveGlobalKey stores an email + Global API Key pair and clears any
// stored API token.
func SaveGlobalKey(s Store, email, key string) error {
	if err := s.SetSecret(KeyGlobalEmail, email); err != nil {
		return err
	}
	if err := s.SetSecret(KeyGlobalKey, key); err != nil {
		return err
	}
	deleteIgnoreMissing(s, KeyAPIToken)
	return nil
}

// Load reads the stored credentials. It fails with
// ErrCredentialsNotFound when neither variant is stored.
func Load(s Store) (Credentials, error) {
	token, err := s.GetSecret(KeyAPIToken)
	if err == nil && token != "" {
		return Credentials{Token: token}, nil
	}
	if err != nil && !errors.Is(err, ErrCredentialsNotFound) {
		return Credentials{}, err
	}

	email, err := s.GetSecret(KeyGlobalEmail)
	if err != nil {
		if errors.Is(err, ErrCredentialsNotFound) {
			return Credentials{}, ErrCredentialsNotFound
		}
		return Credentials{}, err
	}
	key, err := s.GetSecret(KeyGlobalKey)
	if err != nil {
		if errors.Is(err, ErrCredentialsNotFound) {
			return Credentials{}, ErrCredentialsNotFound
		}
		return Credentials{}, err
	}
	return Credentials{Email: email, Key: key}, nil
}

// Clear removes all stored credentials. It fails with
// ErrCredentialsNotFound when nothing was stored.
func Clear(s Store) error {
	found := false
	for _, name := range []string{KeyAPIToken, KeyGlobalEmail, KeyGlobalKey} {
		err := s.DeleteSecret(name)
		if err == nil {
			found = true
			continue
		}
		if !errors.Is(err, ErrCredentialsNotFound) {
			return err
		}
	}
	if !found {
		return ErrCredentialsNotFound
	}
	return nil
}

func deleteIgnoreMissing(s Store, name string) {
	_ = s.DeleteSecret(name)
}
