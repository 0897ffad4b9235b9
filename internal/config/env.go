package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config contains all configuration parameters for the application.
type Config struct {
	Port              string        `envconfig:"PORT" default:"8080"`
	SaveWalletURL     string        `envconfig:"SAVE_WALLET_URL" default:"http://localhost:8000/api/save-wallet"`
	SaveWalletTimeout time.Duration `envconfig:"SAVE_WALLET_TIMEOUT" default:"15s"`
	ProvidersFile     string        `envconfig:"PROVIDERS_FILE"`
	EthRPCURL         string        `envconfig:"ETH_RPC_URL"`
	EthAccountsMethod string        `envconfig:"ETH_ACCOUNTS_METHOD" default:"eth_requestAccounts"`
	ProfileFile       string        `envconfig:"PROFILE_FILE" default:"wallet-profile.json"`
	LogLevel          string        `envconfig:"LOG_LEVEL" default:"info"`
}

// cfg is the global configuration instance
var cfg *Config

// Init loads configuration from environment variables.
func Init() error {
	c, err := Load()
	if err != nil {
		return err
	}
	cfg = c
	return nil
}

// Load reads a fresh Config from environment variables without touching the global one.
func Load() (*Config, error) {
	c := &Config{}
	if err := envconfig.Process("", c); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}
	return c, nil
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

// GetSaveWalletURL returns the save-wallet endpoint from configuration
func GetSaveWalletURL() string {
	return Get().SaveWalletURL
}

// GetProfileFile returns path to the profile file from configuration
func GetProfileFile() string {
	return Get().ProfileFile
}

// NewLogger builds a production zap logger at the configured level
func (c *Config) NewLogger() (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}

	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(level)
	return zc.Build()
}
