package main

import (
	"fmt"
	"net/http"
	"os"

	_ "github.com/tradewire/wallet-core/docs"
	"github.com/tradewire/wallet-core/internal/api"
	"github.com/tradewire/wallet-core/internal/config"
)

// @title       Wallet Core API
// @version     1.0
// @description Secret-management core: recovery phrases, key derivation and the encrypted vault
// @BasePath    /
func main() {
	if err := config.Init(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	router, err := api.SetupRouter()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	addr := ":" + config.GetPort()
	fmt.Fprintf(os.Stderr, "wallet core listening on %s\n", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
