// Package hdkey expands a recovery phrase (or raw private key) into the
// per-chain-family signing keys and addresses of a vault record.
package hdkey

import (
	"crypto/ecdsa"
	"crypto/ed25519"
	"fmt"
	"time"

	slip10 "github.com/anyproto/go-slip10"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/gagliardetto/solana-go"
	"github.com/tyler-smith/go-bip32"
	"github.com/tyler-smith/go-bip39"

	"github.com/tradewire/wallet-core/internal/mnemonic"
	"github.com/tradewire/wallet-core/internal/model"
)

// Fixed derivation paths. Only index 0 is ever derived; paths are not
// user-configurable.
const (
	// secp256k1 branch: m/44'/60'/0'/0/0
	secpPurpose = bip32.FirstHardenedChild + 44
	secpCoin    = bip32.FirstHardenedChild + 60
	secpAccount = bip32.FirstHardenedChild + 0
	secpChange  = uint32(0)
	secpIndex   = uint32(0)

	// ed25519 branch: hardened only, SLIP-0010 forbids non-hardened steps.
	edDerivationPath = "m/44'/501'/0'/0'"
)

// DeriveFromPhrase expands a recovery phrase into a full vault record:
// the phrase itself plus signing keys and addresses for both chain families.
// The same phrase always yields the same record. Derivation is all-or-nothing;
// on any failure no partial record is returned.
func DeriveFromPhrase(phrase string) (*model.VaultRecord, error) {
	if !mnemonic.Validate(phrase) {
		return nil, fmt.Errorf("cannot derive keys: %w", model.ErrInvalidMnemonic)
	}
	normalized := mnemonic.Normalize(phrase)

	// Phrase backup in a password manager stands in for the BIP-39 passphrase.
	seed := bip39.NewSeed(normalized, "")
	defer clear(seed)

	secpKey, err := deriveSecp(seed)
	if err != nil {
		return nil, fmt.Errorf("secp256k1 derivation failed: %w", err)
	}

	edKey, err := deriveEd(seed, edDerivationPath)
	if err != nil {
		return nil, fmt.Errorf("ed25519 derivation failed: %w", err)
	}

	return &model.VaultRecord{
		Mnemonic:       normalized,
		SecpPrivateKey: crypto.FromECDSA(secpKey),
		SecpAddress:    crypto.PubkeyToAddress(secpKey.PublicKey).Hex(),
		EdPrivateKey:   edKey,
		EdAddress:      edAddress(edKey),
		CreatedAt:      time.Now().Format(time.RFC3339),
	}, nil
}

// deriveSecp walks m/44'/60'/0'/0/0 over the seed with BIP-32
// hardened/non-hardened child key derivation.
func deriveSecp(seed []byte) (*ecdsa.PrivateKey, error) {
	master, err := bip32.NewMasterKey(seed)
	if err != nil {
		return nil, fmt.Errorf("failed to build master key: %w", err)
	}

	child := master
	for _, step := range []uint32{secpPurpose, secpCoin, secpAccount, secpChange, secpIndex} {
		child, err = child.NewChildKey(step)
		if err != nil {
			return nil, fmt.Errorf("failed to derive child %d: %w", step, err)
		}
	}

	key, err := crypto.ToECDSA(child.Key)
	if err != nil {
		return nil, fmt.Errorf("derived scalar rejected: %w", err)
	}
	return key, nil
}

// deriveEd walks a hardened-only SLIP-0010 path over the seed and expands the
// leaf into an ed25519 keypair. The returned key is the 64-byte expanded
// secret (seed || public).
func deriveEd(seed []byte, path string) (ed25519.PrivateKey, error) {
	node, err := slip10.DeriveForPath(path, seed)
	if err != nil {
		return nil, fmt.Errorf("failed to derive path %s: %w", path, err)
	}

	_, priv := node.Keypair()
	return priv, nil
}

// edAddress is the base58 encoding of the ed25519 public key bytes.
func edAddress(key ed25519.PrivateKey) string {
	return solana.PublicKeyFromBytes(key[ed25519.SeedSize:]).String()
}
