// Package ethrpc provides an EthereumProvider backed by a JSON-RPC endpoint.
package ethrpc

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/AlexZinkM/wallet-connect/internal/provider"

	"github.com/ethereum/go-ethereum/rpc"
)

// Client forwards provider requests to an Ethereum JSON-RPC endpoint
type Client struct {
	rpcClient      *rpc.Client
	rpcURL         string
	accountsMethod string
}

var _ provider.EthereumProvider = (*Client)(nil)

// Dial connects to rpcURL. accountsMethod replaces eth_requestAccounts for
// endpoints that only know eth_accounts, such as a local dev node; empty keeps
// eth_requestAccounts.
func Dial(ctx context.Context, rpcURL, accountsMethod string) (*Client, error) {
	rpcClient, err := rpc.DialContext(ctx, rpcURL)
	if err != nil {
		return nil, fmt.Errorf("failed to dial Ethereum RPC: %w", err)
	}
	if accountsMethod == "" {
		accountsMethod = provider.MethodRequestAccounts
	}

	return &Client{
		rpcClient:      rpcClient,
		rpcURL:         rpcURL,
		accountsMethod: accountsMethod,
	}, nil
}

// Request performs a JSON-RPC call and returns the raw result
func (c *Client) Request(ctx context.Context, method string, params ...any) (json.RawMessage, error) {
	if method == provider.MethodRequestAccounts {
		method = c.accountsMethod
	}

	var result json.RawMessage
	if err := c.rpcClient.CallContext(ctx, &result, method, params...); err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}
	return result, nil
}

// Close closes the underlying connection
func (c *Client) Close() {
	c.rpcClient.Close()
}
