// Package wallet owns the vault lifecycle: onboarding, sealing, unlock/lock,
// password rotation and destruction. The plaintext record lives only inside
// the manager of the active session and never touches durable storage.
package wallet

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/tradewire/wallet-core/internal/crypto"
	"github.com/tradewire/wallet-core/internal/hdkey"
	"github.com/tradewire/wallet-core/internal/mnemonic"
	"github.com/tradewire/wallet-core/internal/model"
)

// State of the vault lifecycle:
// absent → created → unlocked ⇄ locked → destroyed.
// Sealing persists the encrypted copy and keeps the plaintext for the
// session, so "persisted" is never observable as a separate state.
// destroyed is terminal.
type State string

const (
	StateAbsent    State = "absent"
	StateCreated   State = "created"
	StateUnlocked  State = "unlocked"
	StateLocked    State = "locked"
	StateDestroyed State = "destroyed"
)

// Manager is the single owner of the in-memory vault record.
type Manager struct {
	mu     sync.Mutex
	store  Store
	state  State
	record *model.VaultRecord
}

// NewManager builds a manager over the given store. An existing vault blob
// starts the session locked; otherwise the wallet is absent.
func NewManager(store Store) *Manager {
	state := StateAbsent
	if store.Exists() {
		state = StateLocked
	}
	return &Manager{store: store, state: state}
}

// Status returns the current lifecycle state.
func (m *Manager) Status() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Generate creates a fresh recovery phrase and derives the full record from
// it. The wallet must not already hold key material.
func (m *Manager) Generate() (*model.VaultRecord, error) {
	phrase, err := mnemonic.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate mnemonic: %w", err)
	}
	return m.adopt(phrase)
}

// ImportMnemonic derives the full record from a user-supplied phrase.
func (m *Manager) ImportMnemonic(phrase string) (*model.VaultRecord, error) {
	return m.adopt(phrase)
}

func (m *Manager) adopt(phrase string) (*model.VaultRecord, error) {
	record, err := hdkey.DeriveFromPhrase(phrase)
	if err != nil {
		return nil, err
	}
	return m.hold(record)
}

// ImportKey builds a record from raw private key material for one family.
func (m *Manager) ImportKey(raw []byte, family model.KeyFamily) (*model.VaultRecord, error) {
	record, err := hdkey.ImportPrivateKey(raw, family)
	if err != nil {
		return nil, err
	}
	return m.hold(record)
}

func (m *Manager) hold(record *model.VaultRecord) (*model.VaultRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state != StateAbsent {
		record.Zero()
		if m.state == StateDestroyed {
			return nil, fmt.Errorf("wallet destroyed: %w", model.ErrVaultMissing)
		}
		return nil, model.ErrVaultExists
	}

	m.record = record
	m.state = StateCreated
	return record.Clone(), nil
}

// Seal encrypts the held record under password and persists the blob.
// The plaintext stays in memory: the session continues unlocked.
// password must be []byte for security (caller should zero it after use).
func (m *Manager) Seal(password []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state != StateCreated {
		return fmt.Errorf("nothing to seal in state %q", m.state)
	}
	if err := m.record.Validate(); err != nil {
		return err
	}

	blob, err := sealRecord(m.record, password)
	if err != nil {
		return err
	}
	if err := m.store.Create(blob); err != nil {
		return err
	}

	m.state = StateUnlocked
	return nil
}

// Unlock decrypts the persisted blob and restores the session record.
// password must be []byte for security (caller should zero it after use).
func (m *Manager) Unlock(password []byte) (*model.VaultRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	switch m.state {
	case StateUnlocked:
		return m.record.Clone(), nil
	case StateCreated:
		return nil, fmt.Errorf("wallet created but never sealed: %w", model.ErrVaultMissing)
	case StateLocked:
	default:
		return nil, model.ErrVaultMissing
	}

	blob, err := m.store.Read()
	if err != nil {
		return nil, err
	}

	record, err := openRecord(blob, password)
	if err != nil {
		return nil, err
	}

	m.record = record
	m.state = StateUnlocked
	return record.Clone(), nil
}

// Lock discards the plaintext record. An unsaved record is lost.
func (m *Manager) Lock() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.record != nil {
		m.record.Zero()
		m.record = nil
	}
	switch m.state {
	case StateDestroyed:
	default:
		if m.store.Exists() {
			m.state = StateLocked
		} else {
			m.state = StateAbsent
		}
	}
}

// ChangePassword re-encrypts the persisted blob under a new password with
// fresh salt and nonce, fully replacing the old blob.
// Both passwords must be []byte (caller should zero them after use).
func (m *Manager) ChangePassword(oldPassword, newPassword []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state == StateAbsent || m.state == StateDestroyed {
		return model.ErrVaultMissing
	}

	blob, err := m.store.Read()
	if err != nil {
		return err
	}
	record, err := openRecord(blob, oldPassword)
	if err != nil {
		return err
	}
	defer record.Zero()

	newBlob, err := sealRecord(record, newPassword)
	if err != nil {
		return err
	}
	return m.store.Replace(newBlob)
}

// Destroy wipes the in-memory record and deletes the persisted blob.
// Terminal: without the blob no key schedule can recover the wallet.
func (m *Manager) Destroy() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.record != nil {
		m.record.Zero()
		m.record = nil
	}
	if err := m.store.Delete(); err != nil {
		return err
	}
	m.state = StateDestroyed
	return nil
}

// Record returns a copy of the plaintext bundle of the unlocked session.
// The caller owns the copy and should Zero it once the secrets are consumed;
// the manager keeps sole ownership of the session record.
func (m *Manager) Record() (*model.VaultRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state != StateUnlocked && m.state != StateCreated {
		return nil, model.ErrLocked
	}
	return m.record.Clone(), nil
}

// Addresses returns the two chain addresses of the unlocked session.
func (m *Manager) Addresses() (secpAddress, edAddress string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state != StateUnlocked && m.state != StateCreated {
		return "", "", model.ErrLocked
	}
	return m.record.SecpAddress, m.record.EdAddress, nil
}

// sealRecord serializes and encrypts a record; intermediate plaintext is
// wiped on every exit path.
func sealRecord(record *model.VaultRecord, password []byte) (string, error) {
	plaintext, err := json.Marshal(record)
	if err != nil {
		return "", fmt.Errorf("failed to marshal vault record: %w", err)
	}
	defer clear(plaintext)

	blob, err := crypto.Encrypt(plaintext, password)
	if err != nil {
		return "", fmt.Errorf("failed to encrypt vault record: %w", err)
	}
	return blob, nil
}

// openRecord decrypts and deserializes a blob; the cipher-layer buffer is
// wiped before returning.
func openRecord(blob string, password []byte) (*model.VaultRecord, error) {
	plaintext, err := crypto.Decrypt(blob, password)
	if err != nil {
		return nil, err
	}
	defer clear(plaintext)

	var record model.VaultRecord
	if err := json.Unmarshal(plaintext, &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal vault record: %w", model.ErrMalformedVault)
	}
	if err := record.Validate(); err != nil {
		record.Zero()
		return nil, err
	}
	return &record, nil
}
