// Package provider defines the wallet capabilities the wallet component
// consumes. Browser extensions used to inject these as globals; here they
// are passed in explicitly through an Environment.
package provider

import (
	"context"
	"encoding/json"

	"github.com/AlexZinkM/wallet-connect/internal/model"
)

// Ethereum JSON-RPC methods used by the component
const (
	MethodRequestAccounts = "eth_requestAccounts"
	MethodGetBalance      = "eth_getBalance"
	MethodSendTransaction = "eth_sendTransaction"
)

// EthereumProvider is an EIP-1193 style provider: a single generic request method.
type EthereumProvider interface {
	Request(ctx context.Context, method string, params ...any) (json.RawMessage, error)
}

// CardanoWallet is one named entry of the Cardano wallet registry (CIP-30).
type CardanoWallet interface {
	// Enable asks the wallet for access and returns its API.
	Enable(ctx context.Context) (CardanoAPI, error)
	// EnableCapable reports whether the wallet can be enabled at all.
	EnableCapable() bool
}

// CardanoAPI is the API returned by CardanoWallet.Enable.
type CardanoAPI interface {
	GetUsedAddresses(ctx context.Context) ([]string, error)
	GetUnusedAddresses(ctx context.Context) ([]string, error)
	// GetBalance returns the balance in lovelace as a hex string.
	GetBalance(ctx context.Context) (string, error)
	SignTx(ctx context.Context, tx model.CardanoTxDescriptor) (string, error)
	SubmitTx(ctx context.Context, signedTx string) (string, error)
}

// RegistryEntry is a named slot of the Cardano registry. Wallet may hold any
// value; detection keeps only enable-capable CardanoWallet values.
type RegistryEntry struct {
	Name   string
	Wallet any
}

// Environment holds the providers visible to the component.
// A nil Ethereum and an empty Cardano registry mean no extensions are installed.
type Environment struct {
	Ethereum EthereumProvider
	Cardano  []RegistryEntry
}

// CardanoWallet returns the registry entry called name, or nil.
// The entry is returned as long as it is a CardanoWallet, enable-capable or not.
func (e Environment) CardanoWallet(name string) CardanoWallet {
	for _, entry := range e.Cardano {
		if entry.Name != name {
			continue
		}
		if w, ok := entry.Wallet.(CardanoWallet); ok {
			return w
		}
		return nil
	}
	return nil
}
