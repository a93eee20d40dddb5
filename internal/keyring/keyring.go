package keyring

import (
	"errors"
	"fmt"

	"github.com/tanabodee/attendly/internal/constants"
	"github.com/zalando/go-keyring"
)

var (
	// ErrNotFound is returned when no relay key is stored in the keyring
	ErrNotFound = errors.New("relay API key not found in keyring")
	// ErrKeyringUnavailable is returned when the OS keyring is not available
	ErrKeyringUnavailable = errors.New("OS keyring is not available")
)

// GetRelayKey retrieves the relay API key from the OS keyring.
// Returns ErrNotFound if no key is stored.
func GetRelayKey() (string, error) {
	key, err := keyring.Get(constants.AppName, constants.DefaultKeyringUser)
	if err != nil {
		if err == keyring.ErrNotFound {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("%w: %v", ErrKeyringUnavailable, err)
	}
	return key, nil
}

// SetRelayKey stores the relay API key in the OS keyring. Keys never go into
// the settings file.
func SetRelayKey(key string) error {
	if key == "" {
		return errors.New("relay API key cannot be empty")
	}
	if err := keyring.Set(constants.AppName, constants.DefaultKeyringUser, key); err != nil {
		return fmt.Errorf("failed to store relay API key in keyring: %w", err)
	}
	return nil
}

// DeleteRelayKey removes the relay API key from the OS keyring.
func DeleteRelayKey() error {
	err := keyring.Delete(constants.AppName, constants.DefaultKeyringUser)
	if err != nil {
		if err == keyring.ErrNotFound {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete relay API key from keyring: %w", err)
	}
	return nil
}

// IsAvailable checks if the OS keyring is available on the current system.
// This is a best-effort check and may not catch all failure scenarios.
func IsAvailable() bool {
	_, err := keyring.Get(constants.AppName, "test-availability")
	// ErrNotFound means the keyring answered, it is just empty.
	return err == nil || err == keyring.ErrNotFound
}
