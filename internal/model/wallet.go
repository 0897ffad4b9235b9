package model

// WalletType is the wallet family a session is bound to
type WalletType string

const (
	WalletTypeNone     WalletType = ""
	WalletTypeMetaMask WalletType = "metamask"
	WalletTypeCardano  WalletType = "cardano"
)

// MetaMaskWalletID is the catalog identifier of the Ethereum-style provider.
// Cardano wallets are listed under their registry names.
const MetaMaskWalletID = "metamask"

// Session is a read-only snapshot of the connection state
type Session struct {
	Connected  bool       `json:"connected"`
	Account    string     `json:"account"`
	Balance    string     `json:"balance"`              // display string, e.g. "1.5 ETH"
	WalletType WalletType `json:"walletType"`           // "metamask", "cardano" or ""
	AccountQR  string     `json:"accountQR,omitempty"` // base64 PNG of the account address
}

// Catalog is the list of wallets found by the last detection run
type Catalog struct {
	Available []string `json:"availableWallets"`
	Selected  string   `json:"selectedWallet"`
}

// TransferDraft is the user's pending transfer input
type TransferDraft struct {
	RecipientAddress string `json:"recipientAddress"`
	TransferAmount   string `json:"transferAmount"`
}

// SaveWalletRequest is the body of the save-wallet notification.
// UserID is nil when no profile is stored and encodes as JSON null.
type SaveWalletRequest struct {
	UserID        *string `json:"userId"`
	WalletAddress string  `json:"walletAddress"`
	Balance       string  `json:"balance"`
}

// Profile represents the locally persisted profile file
type Profile struct {
	UserID    string `json:"userId"`
	CreatedAt string `json:"createdAt"`
}
