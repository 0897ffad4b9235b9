// Package cip30 talks to a Cardano wallet through an HTTP bridge exposing the
// CIP-30 dApp connector calls.
package cip30

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/AlexZinkM/wallet-connect/internal/model"
	"github.com/AlexZinkM/wallet-connect/internal/provider"
)

const defaultTimeout = 60 * time.Second

// Wallet is one bridged Cardano wallet
type Wallet struct {
	name    string
	baseURL string
	capable bool
	client  *http.Client
}

var _ provider.CardanoWallet = (*Wallet)(nil)

// NewWallet creates a bridged wallet. client may be nil.
func NewWallet(name, baseURL string, capable bool, client *http.Client) *Wallet {
	if client == nil {
		client = &http.Client{Timeout: defaultTimeout}
	}
	return &Wallet{
		name:    name,
		baseURL: strings.TrimRight(baseURL, "/"),
		capable: capable,
		client:  client,
	}
}

// Name returns the registry name of the wallet
func (w *Wallet) Name() string {
	return w.name
}

// EnableCapable reports whether the bridge advertises this wallet as enableable
func (w *Wallet) EnableCapable() bool {
	return w.capable
}

// Enable asks the wallet for access (POST /enable)
func (w *Wallet) Enable(ctx context.Context) (provider.CardanoAPI, error) {
	if err := w.do(ctx, http.MethodPost, "/enable", nil, nil); err != nil {
		return nil, err
	}
	return &API{wallet: w}, nil
}

// API is the enabled wallet API
type API struct {
	wallet *Wallet
}

var _ provider.CardanoAPI = (*API)(nil)

type balanceResponse struct {
	Balance string `json:"balance"`
}

type signTxResponse struct {
	SignedTx string `json:"signedTx"`
}

type submitTxRequest struct {
	SignedTx string `json:"signedTx"`
}

type submitTxResponse struct {
	TxHash string `json:"txHash"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// GetUsedAddresses handles GET /addresses/used
func (a *API) GetUsedAddresses(ctx context.Context) ([]string, error) {
	var out []string
	if err := a.wallet.do(ctx, http.MethodGet, "/addresses/used", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetUnusedAddresses handles GET /addresses/unused
func (a *API) GetUnusedAddresses(ctx context.Context) ([]string, error) {
	var out []string
	if err := a.wallet.do(ctx, http.MethodGet, "/addresses/unused", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetBalance returns the lovelace balance as hex (GET /balance)
func (a *API) GetBalance(ctx context.Context) (string, error) {
	var out balanceResponse
	if err := a.wallet.do(ctx, http.MethodGet, "/balance", nil, &out); err != nil {
		return "", err
	}
	return out.Balance, nil
}

// SignTx asks the wallet to sign tx (POST /sign-tx)
func (a *API) SignTx(ctx context.Context, tx model.CardanoTxDescriptor) (string, error) {
	var out signTxResponse
	if err := a.wallet.do(ctx, http.MethodPost, "/sign-tx", tx, &out); err != nil {
		return "", err
	}
	return out.SignedTx, nil
}

// SubmitTx submits a signed transaction and returns its hash (POST /submit-tx)
func (a *API) SubmitTx(ctx context.Context, signedTx string) (string, error) {
	var out submitTxResponse
	if err := a.wallet.do(ctx, http.MethodPost, "/submit-tx", submitTxRequest{SignedTx: signedTx}, &out); err != nil {
		return "", err
	}
	return out.TxHash, nil
}

// do sends a JSON request to the bridge and decodes the JSON response into out
func (w *Wallet) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to marshal %s request: %w", path, err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, w.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to create %s request: %w", path, err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := w.client.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", w.name, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var e errorResponse
		if err := json.NewDecoder(resp.Body).Decode(&e); err == nil && e.Error != "" {
			return fmt.Errorf("%s %s: %s", w.name, path, e.Error)
		}
		return fmt.Errorf("%s %s: status %d", w.name, path, resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", path, err)
	}
	return nil
}
