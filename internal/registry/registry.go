// Package registry loads the provider file and builds the provider
// environment the wallet component detects wallets from.
//
// Example providers.toml:
//
//	[ethereum]
//	rpc_url = "http://127.0.0.1:8545"
//	accounts_method = "eth_accounts"
//
//	[[cardano]]
//	name = "nami"
//	url = "http://127.0.0.1:9101"
//	enabled = true
package registry

import (
	"context"
	"fmt"
	"net/http"

	"github.com/AlexZinkM/wallet-connect/internal/provider"
	"github.com/AlexZinkM/wallet-connect/internal/provider/cip30"
	"github.com/AlexZinkM/wallet-connect/internal/provider/ethrpc"

	"github.com/spf13/viper"
)

// File is the provider file
type File struct {
	Ethereum EthereumEntry  `mapstructure:"ethereum"`
	Cardano  []CardanoEntry `mapstructure:"cardano"`
}

// EthereumEntry configures the Ethereum JSON-RPC provider
type EthereumEntry struct {
	RPCURL         string `mapstructure:"rpc_url"`
	AccountsMethod string `mapstructure:"accounts_method"`
}

// CardanoEntry configures one bridged Cardano wallet
type CardanoEntry struct {
	Name    string `mapstructure:"name"`
	URL     string `mapstructure:"url"`
	Enabled bool   `mapstructure:"enabled"`
}

// Load reads the provider file. The format follows the extension (toml, yaml, json).
// An empty path yields an empty File.
func Load(path string) (File, error) {
	if path == "" {
		return File{}, nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return File{}, fmt.Errorf("failed to read provider file: %w", err)
	}

	var f File
	if err := v.Unmarshal(&f); err != nil {
		return File{}, fmt.Errorf("failed to unmarshal provider file: %w", err)
	}
	return f, nil
}

// Environment builds the providers described by f. Cardano entries without a
// URL stay in the registry as malformed slots and are skipped by detection.
// The returned close function releases the Ethereum connection.
func (f File) Environment(ctx context.Context, client *http.Client) (provider.Environment, func(), error) {
	var env provider.Environment
	closeFn := func() {}

	if f.Ethereum.RPCURL != "" {
		eth, err := ethrpc.Dial(ctx, f.Ethereum.RPCURL, f.Ethereum.AccountsMethod)
		if err != nil {
			return provider.Environment{}, closeFn, err
		}
		env.Ethereum = eth
		closeFn = eth.Close
	}

	env.Cardano = make([]provider.RegistryEntry, 0, len(f.Cardano))
	for _, entry := range f.Cardano {
		if entry.Name == "" {
			continue
		}
		var w any
		if entry.URL != "" {
			w = cip30.NewWallet(entry.Name, entry.URL, entry.Enabled, client)
		}
		env.Cardano = append(env.Cardano, provider.RegistryEntry{Name: entry.Name, Wallet: w})
	}

	return env, closeFn, nil
}
