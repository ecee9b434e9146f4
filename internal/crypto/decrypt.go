package crypto

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/pbkdf2"

	"github.com/tradewire/wallet-core/internal/model"
)

// Decrypt opens a vault blob with the supplied password and returns the
// serialized vault record. Callers must deserialize immediately and zero
// the returned buffer after use.
//
// Failure modes are typed and deliberately coarse: ErrMalformedVault for a
// blob that is not valid hex or shorter than salt+nonce, ErrDecryptionFailed
// for any authentication failure. Wrong password and tampered ciphertext are
// indistinguishable; no partial plaintext is ever returned.
func Decrypt(blob string, password []byte) ([]byte, error) {
	raw, err := hex.DecodeString(blob)
	if err != nil {
		return nil, fmt.Errorf("blob is not valid hex: %w", model.ErrMalformedVault)
	}
	if len(raw) < minBlobLen {
		return nil, fmt.Errorf("blob is %d bytes, need at least %d: %w",
			len(raw), minBlobLen, model.ErrMalformedVault)
	}

	salt := raw[:saltLen]
	nonce := raw[saltLen : saltLen+nonceLen]
	ciphertext := raw[saltLen+nonceLen:]

	key := pbkdf2.Key(password, salt, kdfIterations, kdfKeyLen, sha256.New)
	defer clear(key)

	aesGCM, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	out, err := aesGCM.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, model.ErrDecryptionFailed
	}
	return out, nil
}
