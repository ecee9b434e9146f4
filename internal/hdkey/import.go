package hdkey

import (
	"bytes"
	"crypto/ed25519"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/crypto"

	"github.com/tradewire/wallet-core/internal/model"
)

// ImportPrivateKey builds a vault record from directly supplied key material.
// The record carries no mnemonic and only the requested family's fields.
// Malformed input for the declared family fails with ErrInvalidKeyMaterial.
func ImportPrivateKey(raw []byte, family model.KeyFamily) (*model.VaultRecord, error) {
	switch family {
	case model.FamilySecp256k1:
		return importSecp(raw)
	case model.FamilyEd25519:
		return importEd(raw)
	default:
		return nil, fmt.Errorf("key family %q: %w", family, model.ErrInvalidKeyMaterial)
	}
}

func importSecp(raw []byte) (*model.VaultRecord, error) {
	if len(raw) != 32 {
		return nil, fmt.Errorf("secp256k1 key must be 32 bytes, got %d: %w",
			len(raw), model.ErrInvalidKeyMaterial)
	}

	// ToECDSA rejects scalars outside (0, curve order).
	key, err := crypto.ToECDSA(raw)
	if err != nil {
		return nil, fmt.Errorf("secp256k1 scalar rejected: %w", model.ErrInvalidKeyMaterial)
	}

	return &model.VaultRecord{
		SecpPrivateKey: crypto.FromECDSA(key),
		SecpAddress:    crypto.PubkeyToAddress(key.PublicKey).Hex(),
		CreatedAt:      time.Now().Format(time.RFC3339),
	}, nil
}

func importEd(raw []byte) (*model.VaultRecord, error) {
	var key ed25519.PrivateKey

	switch len(raw) {
	case ed25519.SeedSize:
		key = ed25519.NewKeyFromSeed(raw)
	case ed25519.PrivateKeySize:
		// Expanded secret: re-derive from the seed half and make sure the
		// embedded public half matches.
		key = ed25519.NewKeyFromSeed(raw[:ed25519.SeedSize])
		if !bytes.Equal(key[ed25519.SeedSize:], raw[ed25519.SeedSize:]) {
			return nil, fmt.Errorf("ed25519 public half mismatch: %w", model.ErrInvalidKeyMaterial)
		}
	default:
		return nil, fmt.Errorf("ed25519 key must be %d or %d bytes, got %d: %w",
			ed25519.SeedSize, ed25519.PrivateKeySize, len(raw), model.ErrInvalidKeyMaterial)
	}

	return &model.VaultRecord{
		EdPrivateKey: key,
		EdAddress:    edAddress(key),
		CreatedAt:    time.Now().Format(time.RFC3339),
	}, nil
}
