package wallet

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tradewire/wallet-core/internal/model"
)

// Store persists the encrypted vault blob. The core only defines the byte
// format; the host environment chooses the backend.
type Store interface {
	Exists() bool
	Read() (string, error)
	Create(blob string) error
	Replace(blob string) error
	Delete() error
}

// FileStore keeps the hex-encoded blob in a single .vault file.
type FileStore struct {
	path string
}

// NewFileStore validates the target path and returns a file-backed store.
func NewFileStore(path string) (*FileStore, error) {
	if filepath.Ext(path) != ".vault" {
		return nil, errors.New("file must have .vault extension")
	}
	return &FileStore{path: path}, nil
}

// Exists reports whether a non-empty vault file is present.
func (s *FileStore) Exists() bool {
	info, err := os.Stat(s.path)
	return err == nil && info.Size() > 0
}

// Read returns the persisted blob.
func (s *FileStore) Read() (string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", model.ErrVaultMissing
		}
		return "", fmt.Errorf("failed to read vault file: %w", err)
	}
	blob := strings.TrimSpace(string(data))
	if blob == "" {
		return "", model.ErrVaultMissing
	}
	return blob, nil
}

// Create writes a fresh blob, refusing to clobber an existing vault.
func (s *FileStore) Create(blob string) error {
	if s.Exists() {
		return model.ErrVaultExists
	}
	return s.write(blob)
}

// Replace overwrites the blob in full. Used on password change and re-seal;
// the vault format is never patched in place.
func (s *FileStore) Replace(blob string) error {
	return s.write(blob)
}

// Delete removes the vault file. Irreversible without the original password.
func (s *FileStore) Delete() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete vault file: %w", err)
	}
	return nil
}

func (s *FileStore) write(blob string) error {
	// Write-then-rename so a crash never leaves a truncated vault.
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, []byte(blob), 0600); err != nil {
		return fmt.Errorf("failed to write vault file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to replace vault file: %w", err)
	}
	return nil
}
