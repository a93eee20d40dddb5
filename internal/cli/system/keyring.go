package system

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tanabodee/attendly/internal/cli"
	"github.com/tanabodee/attendly/internal/keyring"
)

// KeyringSetCmd stores the relay API key in the OS keyring
type KeyringSetCmd struct {
	Key string `arg:"" help:"Relay API key to store in the keyring."`
}

func (cmd *KeyringSetCmd) Run(ctx *cli.Context) error {
	if err := keyring.SetRelayKey(strings.TrimSpace(cmd.Key)); err != nil {
		return fmt.Errorf("failed to store relay API key: %w", err)
	}

	fmt.Println("✓ Relay API key stored in OS keyring")
	return nil
}

// KeyringShowCmd shows whether a relay API key is stored
type KeyringShowCmd struct{}

func (cmd *KeyringShowCmd) Run(ctx *cli.Context) error {
	key, err := keyring.GetRelayKey()
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return errors.New("no relay API key in keyring. Use 'attendly keyring set' to store one")
		}
		return fmt.Errorf("failed to read keyring: %w", err)
	}

	fmt.Printf("Relay API key present: %s\n", maskKey(key))
	return nil
}

// KeyringDeleteCmd removes the relay API key from the OS keyring
type KeyringDeleteCmd struct{}

func (cmd *KeyringDeleteCmd) Run(ctx *cli.Context) error {
	if err := keyring.DeleteRelayKey(); err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return errors.New("no relay API key in keyring")
		}
		return fmt.Errorf("failed to delete relay API key: %w", err)
	}

	fmt.Println("✓ Relay API key removed from OS keyring")
	return nil
}

func maskKey(key string) string {
	if len(key) <= 4 {
		return "****"
	}
	return key[:2] + strings.Repeat("*", len(key)-4) + key[len(key)-2:]
}
