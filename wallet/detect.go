package wallet

import (
	"github.com/AlexZinkM/wallet-connect/internal/model"
	"github.com/AlexZinkM/wallet-connect/internal/provider"

	"go.uber.org/zap"
)

// Detect rebuilds the wallet catalog from the environment and returns it.
// The first wallet found becomes the selected one; with nothing found the
// selection is left as it was.
func (c *Component) Detect() []string {
	found := DetectWallets(c.env)

	c.mu.Lock()
	c.catalog = found
	if len(found) > 0 {
		c.selected = found[0]
	}
	c.mu.Unlock()

	c.log.Info("wallets detected", zap.Strings("wallets", found))
	return append([]string{}, found...)
}

// DetectWallets lists wallet identifiers available in env: "metamask" when an
// Ethereum provider is present, then every enable-capable Cardano registry
// entry in registry order. Malformed entries are skipped.
func DetectWallets(env provider.Environment) []string {
	found := make([]string, 0, 1+len(env.Cardano))
	if env.Ethereum != nil {
		found = append(found, model.MetaMaskWalletID)
	}
	for _, entry := range env.Cardano {
		w, ok := entry.Wallet.(provider.CardanoWallet)
		if !ok {
			continue
		}
		if !w.EnableCapable() {
			continue
		}
		found = append(found, entry.Name)
	}
	return found
}
