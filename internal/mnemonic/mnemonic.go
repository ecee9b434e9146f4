// Package mnemonic generates and validates 12-word BIP-39 recovery phrases.
package mnemonic

import (
	"crypto/rand"
	"fmt"
	"io"
	"strings"

	"github.com/tyler-smith/go-bip39"
)

const (
	// EntropyBits is fixed: 128 bits of entropy plus the 4-bit checksum
	// encode to 12 words.
	EntropyBits = 128

	// WordCount is the only phrase length this wallet produces or accepts.
	WordCount = 12
)

// entropySource feeds Generate. Production always uses crypto/rand;
// tests substitute a fixed reader to pin golden phrases.
var entropySource io.Reader = rand.Reader

// Generate draws 128 bits from the OS CSPRNG and encodes them as a 12-word
// BIP-39 phrase with embedded checksum.
func Generate() (string, error) {
	entropy := make([]byte, EntropyBits/8)
	if _, err := io.ReadFull(entropySource, entropy); err != nil {
		return "", fmt.Errorf("failed to read entropy: %w", err)
	}
	defer clear(entropy)

	phrase, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return "", fmt.Errorf("failed to encode mnemonic: %w", err)
	}
	return phrase, nil
}

// Normalize lowercases a candidate phrase and collapses surrounding and
// repeated whitespace so that validation and derivation see identical input.
func Normalize(candidate string) string {
	return strings.Join(strings.Fields(strings.ToLower(candidate)), " ")
}

// Validate reports whether candidate is a well-formed 12-word phrase:
// every word in the BIP-39 dictionary and the checksum bits matching the
// recomputed SHA-256 of the entropy. It never panics on malformed input.
func Validate(candidate string) bool {
	normalized := Normalize(candidate)
	if len(strings.Fields(normalized)) != WordCount {
		return false
	}
	return bip39.IsMnemonicValid(normalized)
}
