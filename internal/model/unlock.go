package model

// ImportMnemonicRequest represents request for POST /wallet/import/mnemonic
type ImportMnemonicRequest struct {
	Mnemonic string `json:"mnemonic" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// ImportKeyRequest represents request for POST /wallet/import/key
// PrivateKey is hex for secp256k1 and base58 for ed25519.
type ImportKeyRequest struct {
	PrivateKey string `json:"privateKey" binding:"required"`
	Family     string `json:"family" binding:"required"`
	Password   string `json:"password" binding:"required"`
}

// UnlockRequest represents request for POST /wallet/unlock
type UnlockRequest struct {
	Password string `json:"password" binding:"required"`
}

// ChangePasswordRequest represents request for POST /wallet/password
type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required"`
}

// StatusResponse represents response for GET /wallet/status
type StatusResponse struct {
	State string `json:"state"`
}

// AddressesResponse represents response for GET /wallet/addresses
type AddressesResponse struct {
	SecpAddress string `json:"secpAddress,omitempty"`
	EdAddress   string `json:"edAddress,omitempty"`
}
