package api

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/tradewire/wallet-core/internal/config"
	"github.com/tradewire/wallet-core/internal/handler"
	"github.com/tradewire/wallet-core/wallet"
)

// SetupRouter sets up router with handlers
func SetupRouter() (http.Handler, error) {
	store, err := wallet.NewFileStore(config.GetVaultFilePath())
	if err != nil {
		return nil, err
	}

	walletHandler := handler.NewWalletHandler(wallet.NewManager(store))

	mux := http.NewServeMux()

	// Swagger UI
	mux.HandleFunc("/swagger/", httpSwagger.WrapHandler)

	// Wallet endpoints
	mux.HandleFunc("/wallet", walletHandler.Destroy)
	mux.HandleFunc("/wallet/generate", walletHandler.Generate)
	mux.HandleFunc("/wallet/import/mnemonic", walletHandler.ImportMnemonic)
	mux.HandleFunc("/wallet/import/key", walletHandler.ImportKey)
	mux.HandleFunc("/wallet/unlock", walletHandler.Unlock)
	mux.HandleFunc("/wallet/lock", walletHandler.Lock)
	mux.HandleFunc("/wallet/status", walletHandler.Status)
	mux.HandleFunc("/wallet/addresses", walletHandler.Addresses)
	mux.HandleFunc("/wallet/password", walletHandler.ChangePassword)

	return mux, nil
}
