package credential

import (
	"errors"
	"fmt"
	"os"

	"github.com/99designs/keyring"
)

const (
	serviceName = "ghnotify"

	// TokenKey is the keyring entry holding the GitHub token.
	TokenKey = "github-token"
)

// Origin records where a token was found.
type Origin string

const (
	OriginNone    Origin = "none"
	OriginEnv     Origin = "env"
	OriginKeyring Origin = "keyring"
)

// openKeyring returns a configured keyring instance. Tests replace it.
var openKeyring = func() (keyring.Keyring, error) {
	ring, err := keyring.Open(keyring.Config{
		ServiceName: serviceName,
		AllowedBackends: []keyring.BackendType{
			keyring.KeychainBackend,
			keyring.SecretServiceBackend,
			keyring.WinCredBackend,
			keyring.PassBackend,
			keyring.FileBackend,
		},
		FileDir:                  "~/.config/ghnotify/credentials",
		FilePasswordFunc:         keyring.FixedStringPrompt("ghnotify-file-key"),
		KeychainTrustApplication: true,
	})
	if err != nil {
		return nil, fmt.Errorf("opening keyring: %w", err)
	}
	return ring, nil
}

// Get retrieves a credential value by key from the system keyring.
func Get(key string) (string, error) {
	ring, err := openKeyring()
	if err != nil {
		return "", err
	}

	item, err := ring.Get(key)
	if err != nil {
		return "", fmt.Errorf("getting credential %q: %w", key, err)
	}

	return string(item.Data), nil
}

// Set stores a credential value by key in the system keyring.
func Set(key string, value string) error {
	ring, err := openKeyring()
	if err != nil {
		return err
	}

	err = ring.Set(keyring.Item{
		Key:   key,
		Data:  []byte(value),
		Label: "ghnotify GitHub token",
	})
	if err != nil {
		return fmt.Errorf("setting credential %q: %w", key, err)
	}

	return nil
}

// Delete removes a credential by key from the system keyring.
func Delete(key string) error {
	ring, err := openKeyring()
	if err != nil {
		return err
	}

	err = ring.Remove(key)
	if err != nil {
		return fmt.Errorf("deleting credential %q: %w", key, err)
	}

	return nil
}

// Resolve returns the token from the environment variable envVar, or
// from the keyring when the variable is unset or empty. A missing token
// is not an error: it yields "" and OriginNone.
func Resolve(envVar string) (string, Origin, error) {
	if token := os.Getenv(envVar); token != "" {
		return token, OriginEnv, nil
	}

	token, err := Get(TokenKey)
	switch {
	case err == nil && token != "":
		return token, OriginKeyring, nil
	case err == nil, errors.Is(err, keyring.ErrKeyNotFound):
		return "", OriginNone, nil
	default:
		return "", OriginNone, err
	}
}
