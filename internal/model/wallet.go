package model

import (
	"fmt"
	"strings"
)

// KeyFamily identifies the elliptic-curve family of imported key material.
type KeyFamily string

const (
	FamilySecp256k1 KeyFamily = "secp256k1"
	FamilyEd25519   KeyFamily = "ed25519"
)

// ParseKeyFamily maps a request string onto a KeyFamily.
func ParseKeyFamily(s string) (KeyFamily, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(FamilySecp256k1):
		return FamilySecp256k1, nil
	case string(FamilyEd25519), "edwards25519":
		return FamilyEd25519, nil
	default:
		return "", fmt.Errorf("unknown key family %q", s)
	}
}

// VaultRecord is the decrypted wallet bundle held in memory for a session.
// Private keys are stored as []byte (base64 encoded in JSON).
// Mnemonic is empty when the vault was created by direct key import.
type VaultRecord struct {
	Mnemonic       string `json:"mnemonic,omitempty"`
	SecpPrivateKey []byte `json:"secpPrivateKey,omitempty"`
	SecpAddress    string `json:"secpAddress,omitempty"`
	EdPrivateKey   []byte `json:"edPrivateKey,omitempty"`
	EdAddress      string `json:"edAddress,omitempty"`
	CreatedAt      string `json:"createdAt,omitempty"`
}

// HasSecp reports whether the secp256k1 family is populated.
func (r *VaultRecord) HasSecp() bool {
	return len(r.SecpPrivateKey) > 0 && r.SecpAddress != ""
}

// HasEd reports whether the ed25519 family is populated.
func (r *VaultRecord) HasEd() bool {
	return len(r.EdPrivateKey) > 0 && r.EdAddress != ""
}

// Validate checks the record invariant: at least one key family populated.
// A record failing Validate must never be persisted.
func (r *VaultRecord) Validate() error {
	if !r.HasSecp() && !r.HasEd() {
		return fmt.Errorf("vault record has no key material: %w", ErrInvalidKeyMaterial)
	}
	return nil
}

// Clone returns an independent copy of the record with its own key buffers.
// Callers own the copy and should Zero it when done with the secrets.
func (r *VaultRecord) Clone() *VaultRecord {
	out := *r
	if r.SecpPrivateKey != nil {
		out.SecpPrivateKey = append([]byte(nil), r.SecpPrivateKey...)
	}
	if r.EdPrivateKey != nil {
		out.EdPrivateKey = append([]byte(nil), r.EdPrivateKey...)
	}
	return &out
}

// Zero wipes all secret material in place. The record is unusable afterwards.
func (r *VaultRecord) Zero() {
	clear(r.SecpPrivateKey)
	clear(r.EdPrivateKey)
	r.SecpPrivateKey = nil
	r.EdPrivateKey = nil
	r.Mnemonic = ""
}
