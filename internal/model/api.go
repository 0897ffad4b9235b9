package model

// ConnectRequest represents request for POST /wallet/connect
type ConnectRequest struct {
	Wallet string `json:"wallet"` // empty means the selected wallet
}

// TransferRequest represents request for POST /wallet/transfer
type TransferRequest struct {
	RecipientAddress string `json:"recipientAddress"`
	TransferAmount   string `json:"transferAmount"`
}

// SessionResponse represents response for the session-changing endpoints
type SessionResponse struct {
	Session  Session  `json:"session"`
	Messages []string `json:"messages"` // user-facing alerts raised by the call
}

// CatalogResponse represents response for GET /wallet/available and POST /wallet/detect
type CatalogResponse struct {
	Catalog
	Messages []string `json:"messages"`
}

// TransferResponse represents response for POST /wallet/transfer
type TransferResponse struct {
	Receipt  *TransferReceipt `json:"receipt,omitempty"`
	Messages []string         `json:"messages"`
}
