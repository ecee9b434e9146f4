package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config contains all configuration parameters for the application.
// Passwords are never configured: they arrive with each request and are
// held only for the duration of the operation.
type Config struct {
	Port          string `envconfig:"PORT" default:"8080"`
	VaultFilePath string `envconfig:"WALLET_VAULT_PATH" required:"true"`
}

// cfg is the global configuration instance
var cfg *Config

// Init loads configuration from environment variables.
func Init() error {
	cfg = &Config{}
	if err := envconfig.Process("", cfg); err != nil {
		return fmt.Errorf("failed to process config: %w", err)
	}
	return nil
}

// Get returns the global configuration instance.
// Panics if Init() was not called.
func Get() *Config {
	if cfg == nil {
		panic("config not initialized, call Init() first")
	}
	return cfg
}

// GetPort returns port from configuration
func GetPort() string {
	return Get().Port
}

// GetVaultFilePath returns path to the .vault file from configuration
func GetVaultFilePath() string {
	return Get().VaultFilePath
}
