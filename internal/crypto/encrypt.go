// Package crypto implements the password-based vault cipher.
//
// Blob layout: hex(salt[16] || nonce[12] || AES-256-GCM ciphertext+tag).
// The layout carries no version tag; any future change to the iteration
// count, salt length, or cipher must introduce one, since the current
// format would be ambiguous to a decoder otherwise.
package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"

	"golang.org/x/crypto/pbkdf2"
)

const (
	// PBKDF2-SHA256 parameters. The iteration count is part of the vault
	// format and must never change without a format version.
	kdfIterations = 100_000
	kdfKeyLen     = 32

	saltLen  = 16
	nonceLen = 12

	// minBlobLen is the smallest decodable blob: salt + nonce, empty ciphertext.
	minBlobLen = saltLen + nonceLen
)

// randSource feeds salt and nonce generation. Production always uses
// crypto/rand; tests substitute a fixed reader for reproducible blobs.
var randSource io.Reader = rand.Reader

// Encrypt seals a serialized vault record under a password.
// Salt and nonce are drawn fresh on every call, never reused across
// encryptions even for the same password.
// password must be []byte for security (caller should zero it after use).
func Encrypt(plaintext, password []byte) (string, error) {
	salt := make([]byte, saltLen)
	if _, err := io.ReadFull(randSource, salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}

	nonce := make([]byte, nonceLen)
	if _, err := io.ReadFull(randSource, nonce); err != nil {
		return "", fmt.Errorf("failed to generate nonce: %w", err)
	}

	key := pbkdf2.Key(password, salt, kdfIterations, kdfKeyLen, sha256.New)
	defer clear(key)

	aesGCM, err := newGCM(key)
	if err != nil {
		return "", err
	}

	ciphertext := aesGCM.Seal(nil, nonce, plaintext, nil)

	blob := make([]byte, 0, saltLen+nonceLen+len(ciphertext))
	blob = append(blob, salt...)
	blob = append(blob, nonce...)
	blob = append(blob, ciphertext...)

	return hex.EncodeToString(blob), nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}
	aesGCM, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}
	return aesGCM, nil
}
