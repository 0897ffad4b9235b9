package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/AlexZinkM/wallet-connect/internal/model"
)

const (
	defaultSaveWalletURL = "http://localhost:8000/api/save-wallet"
	defaultTimeout       = 15 * time.Second
)

// SaveWalletClient client for the backend save-wallet endpoint
type SaveWalletClient struct {
	url    string
	client *http.Client
}

// NewSaveWalletClient creates a new save-wallet client. Empty url and zero
// timeout fall back to the defaults.
func NewSaveWalletClient(url string, timeout time.Duration) *SaveWalletClient {
	if url == "" {
		url = defaultSaveWalletURL
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &SaveWalletClient{
		url: url,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// SaveWallet posts the connected wallet to the backend
func (c *SaveWalletClient) SaveWallet(ctx context.Context, req model.SaveWalletRequest) error {
	body, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("failed to marshal save wallet request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create save wallet request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to save wallet: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("failed to save wallet: status %d", resp.StatusCode)
	}
	return nil
}
