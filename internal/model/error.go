package model

import "errors"

// Sentinel errors for the secret core. Handlers and callers match these with
// errors.Is; wrapping sites add context with fmt.Errorf("...: %w", err).
var (
	// ErrInvalidMnemonic: checksum or dictionary mismatch during
	// validation or derivation.
	ErrInvalidMnemonic = errors.New("invalid mnemonic")

	// ErrInvalidKeyMaterial: malformed raw private key on import.
	ErrInvalidKeyMaterial = errors.New("invalid key material")

	// ErrMalformedVault: blob too short or not valid hex.
	ErrMalformedVault = errors.New("malformed vault")

	// ErrDecryptionFailed: authentication tag mismatch. Wrong password and
	// tampered ciphertext are intentionally indistinguishable.
	ErrDecryptionFailed = errors.New("decryption failed")

	// ErrVaultExists: a non-empty vault blob already occupies the target path.
	ErrVaultExists = errors.New("vault already exists")

	// ErrVaultMissing: no persisted vault blob to unlock.
	ErrVaultMissing = errors.New("vault does not exist")

	// ErrLocked: the requested data needs an unlocked session.
	ErrLocked = errors.New("wallet is locked")
)

// ErrorResponse is the consistent JSON structure for all API error responses.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}
