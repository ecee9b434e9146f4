package handler

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gagliardetto/solana-go"

	"github.com/tradewire/wallet-core/internal/model"
	"github.com/tradewire/wallet-core/wallet"
)

// WalletHandler serves the secret-core boundary for the host UI.
type WalletHandler struct {
	manager *wallet.Manager
}

// NewWalletHandler creates a WalletHandler over the given manager.
func NewWalletHandler(manager *wallet.Manager) *WalletHandler {
	return &WalletHandler{manager: manager}
}

// Generate handles POST /wallet/generate
// @Summary      Generate new wallet
// @Description  Generates a recovery phrase, derives both chain keys and seals the vault with the supplied password
// @Tags         wallet
// @Accept       json
// @Produce      json
// @Param        request  body      model.GenerateRequest  true  "Vault password"
// @Success      200      {object}  model.GenerateResponse
// @Router       /wallet/generate [post]
func (h *WalletHandler) Generate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. Should be POST", http.StatusMethodNotAllowed)
		return
	}

	var req model.GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	record, err := h.manager.Generate()
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	defer record.Zero()

	if !h.seal(w, req.Password) {
		return
	}

	writeOnboarded(w, "Wallet generated successfully", record)
}

// ImportMnemonic handles POST /wallet/import/mnemonic
// @Summary      Import wallet from recovery phrase
// @Description  Validates the phrase, derives both chain keys and seals the vault with the supplied password
// @Tags         wallet
// @Accept       json
// @Produce      json
// @Param        request  body      model.ImportMnemonicRequest  true  "Recovery phrase and vault password"
// @Success      200      {object}  model.GenerateResponse
// @Router       /wallet/import/mnemonic [post]
func (h *WalletHandler) ImportMnemonic(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. Should be POST", http.StatusMethodNotAllowed)
		return
	}

	var req model.ImportMnemonicRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	record, err := h.manager.ImportMnemonic(req.Mnemonic)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	defer record.Zero()

	if !h.seal(w, req.Password) {
		return
	}

	writeOnboarded(w, "Wallet imported successfully", record)
}

// ImportKey handles POST /wallet/import/key
// @Summary      Import wallet from a raw private key
// @Description  Accepts a hex secp256k1 scalar or a base58 ed25519 secret, derives the address and seals the vault
// @Tags         wallet
// @Accept       json
// @Produce      json
// @Param        request  body      model.ImportKeyRequest  true  "Private key, key family and vault password"
// @Success      200      {object}  model.GenerateResponse
// @Router       /wallet/import/key [post]
func (h *WalletHandler) ImportKey(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. Should be POST", http.StatusMethodNotAllowed)
		return
	}

	var req model.ImportKeyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	family, err := model.ParseKeyFamily(req.Family)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	raw, err := decodeKeyMaterial(req.PrivateKey, family)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	defer clear(raw)

	record, err := h.manager.ImportKey(raw, family)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	defer record.Zero()

	if !h.seal(w, req.Password) {
		return
	}

	writeOnboarded(w, "Key imported successfully", record)
}

// Unlock handles POST /wallet/unlock
// @Summary      Unlock wallet
// @Description  Decrypts the persisted vault into the session
// @Tags         wallet
// @Accept       json
// @Produce      json
// @Param        request  body      model.UnlockRequest  true  "Vault password"
// @Success      200      {object}  model.AddressesResponse
// @Router       /wallet/unlock [post]
func (h *WalletHandler) Unlock(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. Should be POST", http.StatusMethodNotAllowed)
		return
	}

	var req model.UnlockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	password := []byte(req.Password)
	defer clear(password)

	record, err := h.manager.Unlock(password)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	defer record.Zero()

	writeJSON(w, http.StatusOK, model.AddressesResponse{
		SecpAddress: record.SecpAddress,
		EdAddress:   record.EdAddress,
	})
}

// Lock handles POST /wallet/lock
// @Summary      Lock wallet
// @Description  Discards the plaintext session record
// @Tags         wallet
// @Produce      json
// @Success      200  {object}  model.StatusResponse
// @Router       /wallet/lock [post]
func (h *WalletHandler) Lock(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. Should be POST", http.StatusMethodNotAllowed)
		return
	}

	h.manager.Lock()
	writeJSON(w, http.StatusOK, model.StatusResponse{State: string(h.manager.Status())})
}

// Status handles GET /wallet/status
// @Summary      Vault lifecycle state
// @Tags         wallet
// @Produce      json
// @Success      200  {object}  model.StatusResponse
// @Router       /wallet/status [get]
func (h *WalletHandler) Status(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed. Should be GET", http.StatusMethodNotAllowed)
		return
	}

	writeJSON(w, http.StatusOK, model.StatusResponse{State: string(h.manager.Status())})
}

// Addresses handles GET /wallet/addresses
// @Summary      Session addresses
// @Description  Returns the two chain addresses of the unlocked session
// @Tags         wallet
// @Produce      json
// @Success      200  {object}  model.AddressesResponse
// @Router       /wallet/addresses [get]
func (h *WalletHandler) Addresses(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed. Should be GET", http.StatusMethodNotAllowed)
		return
	}

	secpAddress, edAddress, err := h.manager.Addresses()
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}

	writeJSON(w, http.StatusOK, model.AddressesResponse{
		SecpAddress: secpAddress,
		EdAddress:   edAddress,
	})
}

// ChangePassword handles POST /wallet/password
// @Summary      Change vault password
// @Description  Re-encrypts the vault blob under a new password with fresh salt and nonce
// @Tags         wallet
// @Accept       json
// @Produce      json
// @Param        request  body      model.ChangePasswordRequest  true  "Old and new passwords"
// @Success      200      {object}  model.StatusResponse
// @Router       /wallet/password [post]
func (h *WalletHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. Should be POST", http.StatusMethodNotAllowed)
		return
	}

	var req model.ChangePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	oldPassword := []byte(req.OldPassword)
	newPassword := []byte(req.NewPassword)
	defer clear(oldPassword)
	defer clear(newPassword)

	if err := h.manager.ChangePassword(oldPassword, newPassword); err != nil {
		writeError(w, statusFor(err), err)
		return
	}

	writeJSON(w, http.StatusOK, model.StatusResponse{State: string(h.manager.Status())})
}

// Destroy handles DELETE /wallet
// @Summary      Destroy wallet
// @Description  Deletes the vault blob and wipes the session. Irreversible without the recovery phrase
// @Tags         wallet
// @Produce      json
// @Success      200  {object}  model.StatusResponse
// @Router       /wallet [delete]
func (h *WalletHandler) Destroy(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		http.Error(w, "Method not allowed. Should be DELETE", http.StatusMethodNotAllowed)
		return
	}

	if err := h.manager.Destroy(); err != nil {
		writeError(w, statusFor(err), err)
		return
	}

	writeJSON(w, http.StatusOK, model.StatusResponse{State: string(h.manager.Status())})
}

// seal encrypts and persists the freshly created record; on failure the
// error response is already written.
func (h *WalletHandler) seal(w http.ResponseWriter, password string) bool {
	passwordBytes := []byte(password)
	defer clear(passwordBytes)

	if err := h.manager.Seal(passwordBytes); err != nil {
		writeError(w, statusFor(err), err)
		return false
	}
	return true
}

// decodeKeyMaterial parses the wire encoding of a raw private key:
// hex for secp256k1, base58 (Solana convention) for ed25519.
func decodeKeyMaterial(s string, family model.KeyFamily) ([]byte, error) {
	if family == model.FamilySecp256k1 {
		raw, err := hex.DecodeString(s)
		if err != nil {
			return nil, model.ErrInvalidKeyMaterial
		}
		return raw, nil
	}
	key, err := solana.PrivateKeyFromBase58(s)
	if err != nil {
		return nil, model.ErrInvalidKeyMaterial
	}
	return key, nil
}

func writeOnboarded(w http.ResponseWriter, message string, record *model.VaultRecord) {
	resp := model.GenerateResponse{
		Success:     true,
		Message:     message,
		Mnemonic:    record.Mnemonic,
		SecpAddress: record.SecpAddress,
		EdAddress:   record.EdAddress,
	}
	// QR failures are not fatal: the addresses are the payload.
	if record.SecpAddress != "" {
		resp.SecpQR, _ = wallet.AddressQR(record.SecpAddress)
	}
	if record.EdAddress != "" {
		resp.EdQR, _ = wallet.AddressQR(record.EdAddress)
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, model.ErrorResponse{Error: err.Error(), Code: codeFor(err)})
}

// statusFor maps core errors onto HTTP statuses.
func statusFor(err error) int {
	switch {
	case errors.Is(err, model.ErrInvalidMnemonic),
		errors.Is(err, model.ErrInvalidKeyMaterial),
		errors.Is(err, model.ErrMalformedVault):
		return http.StatusBadRequest
	case errors.Is(err, model.ErrDecryptionFailed):
		return http.StatusUnauthorized
	case errors.Is(err, model.ErrVaultExists):
		return http.StatusConflict
	case errors.Is(err, model.ErrVaultMissing):
		return http.StatusNotFound
	case errors.Is(err, model.ErrLocked):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

func codeFor(err error) string {
	switch {
	case errors.Is(err, model.ErrInvalidMnemonic):
		return "invalid_mnemonic"
	case errors.Is(err, model.ErrInvalidKeyMaterial):
		return "invalid_key_material"
	case errors.Is(err, model.ErrMalformedVault):
		return "malformed_vault"
	case errors.Is(err, model.ErrDecryptionFailed):
		return "decryption_failed"
	case errors.Is(err, model.ErrVaultExists):
		return "vault_exists"
	case errors.Is(err, model.ErrVaultMissing):
		return "vault_missing"
	case errors.Is(err, model.ErrLocked):
		return "locked"
	default:
		return ""
	}
}
