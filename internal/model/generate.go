package model

// GenerateRequest represents request for POST /wallet/generate
type GenerateRequest struct {
	Password string `json:"password" binding:"required"`
}

// GenerateResponse represents response for POST /wallet/generate
// and POST /wallet/import/...
type GenerateResponse struct {
	Success     bool   `json:"success"`
	Message     string `json:"message"`
	Mnemonic    string `json:"mnemonic,omitempty"`
	SecpAddress string `json:"secpAddress,omitempty"`
	EdAddress   string `json:"edAddress,omitempty"`
	SecpQR      string `json:"secpQR,omitempty"`
	EdQR        string `json:"edQR,omitempty"`
}
