// Rotates the password of an existing .vault file in place: decrypts with the
// old password, re-encrypts under the new one with fresh salt and nonce.
// Usage: go run ./cmd/rekeyvault <path-to-vault>
package main

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/tradewire/wallet-core/wallet"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: rekeyvault <path-to-vault>")
		os.Exit(1)
	}

	store, err := wallet.NewFileStore(os.Args[1])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	oldPassword, err := prompt("Enter current vault password: ")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer clear(oldPassword)

	newPassword, err := prompt("Enter new vault password: ")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer clear(newPassword)

	manager := wallet.NewManager(store)
	if err := manager.ChangePassword(oldPassword, newPassword); err != nil {
		fmt.Fprintln(os.Stderr, "rekey failed:", err)
		os.Exit(1)
	}

	fmt.Fprintln(os.Stderr, "vault re-encrypted")
}

// prompt reads a password from the terminal without echoing it.
func prompt(label string) ([]byte, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return nil, errors.New("stdin is not a terminal: run interactively to enter password")
	}
	fmt.Fprint(os.Stderr, label)
	defer fmt.Fprintln(os.Stderr)

	raw, err := term.ReadPassword(int(os.Stdin.Fd()))
	if err != nil {
		return nil, fmt.Errorf("failed to read password: %w", err)
	}
	if len(raw) == 0 {
		return nil, errors.New("password cannot be empty")
	}

	out := make([]byte, len(raw))
	copy(out, raw)
	clear(raw)
	return out, nil
}
