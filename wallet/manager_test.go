package wallet

import (
	"bytes"
	"crypto/ed25519"
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tradewire/wallet-core/internal/model"
)

func newTestStore(t *testing.T) *FileStore {
	t.Helper()
	store, err := NewFileStore(filepath.Join(t.TempDir(), "test.vault"))
	if err != nil {
		t.Fatalf("NewFileStore failed: %v", err)
	}
	return store
}

func TestLifecycleEndToEnd(t *testing.T) {
	store := newTestStore(t)
	manager := NewManager(store)

	if manager.Status() != StateAbsent {
		t.Fatalf("initial state = %s, want %s", manager.Status(), StateAbsent)
	}

	record, err := manager.Generate()
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if manager.Status() != StateCreated {
		t.Fatalf("state after generate = %s, want %s", manager.Status(), StateCreated)
	}
	if err := record.Validate(); err != nil {
		t.Fatalf("generated record invalid: %v", err)
	}

	secpKey := append([]byte(nil), record.SecpPrivateKey...)
	secpAddr := record.SecpAddress
	edAddr := record.EdAddress

	if err := manager.Seal([]byte("correct-password")); err != nil {
		t.Fatalf("Seal failed: %v", err)
	}
	if manager.Status() != StateUnlocked {
		t.Fatalf("state after seal = %s, want %s", manager.Status(), StateUnlocked)
	}
	if !store.Exists() {
		t.Fatal("seal did not persist a blob")
	}

	manager.Lock()
	if manager.Status() != StateLocked {
		t.Fatalf("state after lock = %s, want %s", manager.Status(), StateLocked)
	}
	if _, err := manager.Record(); !errors.Is(err, model.ErrLocked) {
		t.Errorf("Record while locked = %v, want ErrLocked", err)
	}
	// The caller's copy is its own to keep; locking only wipes the session.
	if !bytes.Equal(record.SecpPrivateKey, secpKey) || record.SecpAddress != secpAddr {
		t.Error("lock mutated the caller's copy of the record")
	}

	if _, err := manager.Unlock([]byte("wrong-password")); !errors.Is(err, model.ErrDecryptionFailed) {
		t.Fatalf("unlock with wrong password = %v, want ErrDecryptionFailed", err)
	}

	restored, err := manager.Unlock([]byte("correct-password"))
	if err != nil {
		t.Fatalf("Unlock failed: %v", err)
	}
	if !bytes.Equal(restored.SecpPrivateKey, secpKey) {
		t.Error("restored secp key differs from the original")
	}
	if restored.SecpAddress != secpAddr || restored.EdAddress != edAddr {
		t.Error("restored addresses differ from the original")
	}

	// Plaintext must never hit disk: the file holds only lowercase hex.
	data, err := os.ReadFile(store.path)
	if err != nil {
		t.Fatalf("failed to read vault file: %v", err)
	}
	if _, err := hex.DecodeString(string(data)); err != nil {
		t.Errorf("vault file is not hex: %v", err)
	}
	if bytes.Contains(data, []byte(restored.Mnemonic)) {
		t.Error("vault file contains the plaintext mnemonic")
	}
}

func TestChangePassword(t *testing.T) {
	store := newTestStore(t)
	manager := NewManager(store)

	if _, err := manager.Generate(); err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if err := manager.Seal([]byte("old-password")); err != nil {
		t.Fatalf("Seal failed: %v", err)
	}

	before, _ := store.Read()

	if err := manager.ChangePassword([]byte("wrong"), []byte("new-password")); !errors.Is(err, model.ErrDecryptionFailed) {
		t.Fatalf("change with wrong password = %v, want ErrDecryptionFailed", err)
	}
	if err := manager.ChangePassword([]byte("old-password"), []byte("new-password")); err != nil {
		t.Fatalf("ChangePassword failed: %v", err)
	}

	after, _ := store.Read()
	if before == after {
		t.Error("password change did not replace the blob")
	}

	manager.Lock()
	if _, err := manager.Unlock([]byte("old-password")); !errors.Is(err, model.ErrDecryptionFailed) {
		t.Errorf("old password still unlocks: %v", err)
	}
	if _, err := manager.Unlock([]byte("new-password")); err != nil {
		t.Errorf("new password does not unlock: %v", err)
	}
}

func TestDestroyIsTerminal(t *testing.T) {
	store := newTestStore(t)
	manager := NewManager(store)

	if _, err := manager.Generate(); err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if err := manager.Seal([]byte("pw")); err != nil {
		t.Fatalf("Seal failed: %v", err)
	}

	if err := manager.Destroy(); err != nil {
		t.Fatalf("Destroy failed: %v", err)
	}
	if manager.Status() != StateDestroyed {
		t.Fatalf("state = %s, want %s", manager.Status(), StateDestroyed)
	}
	if store.Exists() {
		t.Error("destroy left the vault file behind")
	}
	if _, err := manager.Unlock([]byte("pw")); err == nil {
		t.Error("unlock succeeded after destroy")
	}
	if _, err := manager.Generate(); err == nil {
		t.Error("generate succeeded after destroy")
	}
}

func TestGenerateRefusedOverExistingVault(t *testing.T) {
	store := newTestStore(t)
	first := NewManager(store)

	if _, err := first.Generate(); err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if err := first.Seal([]byte("pw")); err != nil {
		t.Fatalf("Seal failed: %v", err)
	}

	// A fresh session over the same store starts locked.
	second := NewManager(store)
	if second.Status() != StateLocked {
		t.Fatalf("state = %s, want %s", second.Status(), StateLocked)
	}
	if _, err := second.Generate(); !errors.Is(err, model.ErrVaultExists) {
		t.Errorf("Generate over existing vault = %v, want ErrVaultExists", err)
	}
}

func TestImportKeyLifecycle(t *testing.T) {
	store := newTestStore(t)
	manager := NewManager(store)

	seed := bytes.Repeat([]byte{7}, ed25519.SeedSize)
	record, err := manager.ImportKey(seed, model.FamilyEd25519)
	if err != nil {
		t.Fatalf("ImportKey failed: %v", err)
	}
	if record.Mnemonic != "" {
		t.Error("key import produced a mnemonic")
	}
	if record.HasSecp() {
		t.Error("key import populated the wrong family")
	}
	edAddr := record.EdAddress

	if err := manager.Seal([]byte("pw")); err != nil {
		t.Fatalf("Seal failed: %v", err)
	}
	manager.Lock()

	restored, err := manager.Unlock([]byte("pw"))
	if err != nil {
		t.Fatalf("Unlock failed: %v", err)
	}
	if restored.EdAddress != edAddr {
		t.Error("restored address differs from imported")
	}
}

func TestImportMnemonicLifecycle(t *testing.T) {
	store := newTestStore(t)
	manager := NewManager(store)

	phrase := "legal winner thank year wave sausage worth useful legal winner thank yellow"
	record, err := manager.ImportMnemonic(phrase)
	if err != nil {
		t.Fatalf("ImportMnemonic failed: %v", err)
	}
	if record.Mnemonic != phrase {
		t.Errorf("mnemonic = %q, want %q", record.Mnemonic, phrase)
	}

	second := "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"
	if _, err := manager.ImportMnemonic(second); !errors.Is(err, model.ErrVaultExists) {
		t.Errorf("second import = %v, want ErrVaultExists", err)
	}

	if _, err := manager.ImportMnemonic("nonsense words here"); !errors.Is(err, model.ErrInvalidMnemonic) {
		t.Errorf("invalid phrase import = %v, want ErrInvalidMnemonic", err)
	}
}

func TestRecordReturnsIndependentCopy(t *testing.T) {
	store := newTestStore(t)
	manager := NewManager(store)

	if _, err := manager.Generate(); err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if err := manager.Seal([]byte("pw")); err != nil {
		t.Fatalf("Seal failed: %v", err)
	}

	record, err := manager.Record()
	if err != nil {
		t.Fatalf("Record failed: %v", err)
	}
	inner, err := manager.Record()
	if err != nil {
		t.Fatalf("Record failed: %v", err)
	}
	if &record.SecpPrivateKey[0] == &inner.SecpPrivateKey[0] {
		t.Fatal("successive Record calls share a key buffer")
	}

	mnemonicBefore := record.Mnemonic
	secpBefore := append([]byte(nil), record.SecpPrivateKey...)
	edBefore := append([]byte(nil), record.EdPrivateKey...)

	// Wiping the session must not reach into copies already handed out.
	manager.Lock()

	if record.Mnemonic != mnemonicBefore {
		t.Error("lock wiped the mnemonic of a handed-out copy")
	}
	if !bytes.Equal(record.SecpPrivateKey, secpBefore) {
		t.Error("lock wiped the secp key of a handed-out copy")
	}
	if !bytes.Equal(record.EdPrivateKey, edBefore) {
		t.Error("lock wiped the ed25519 key of a handed-out copy")
	}
}

func TestUnlockBeforeSeal(t *testing.T) {
	store := newTestStore(t)
	manager := NewManager(store)

	if _, err := manager.Generate(); err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	_, err := manager.Unlock([]byte("pw"))
	if !errors.Is(err, model.ErrVaultMissing) {
		t.Fatalf("Unlock before seal = %v, want ErrVaultMissing", err)
	}
	if !strings.Contains(err.Error(), "sealed") {
		t.Errorf("error %q does not say the wallet was never sealed", err)
	}
	if manager.Status() != StateCreated {
		t.Errorf("state = %s, want %s", manager.Status(), StateCreated)
	}
}

func TestLockWithoutSealDiscardsWallet(t *testing.T) {
	store := newTestStore(t)
	manager := NewManager(store)

	if _, err := manager.Generate(); err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	manager.Lock()

	if manager.Status() != StateAbsent {
		t.Errorf("state = %s, want %s (nothing was persisted)", manager.Status(), StateAbsent)
	}
}
