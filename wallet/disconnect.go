package wallet

import "github.com/AlexZinkM/wallet-connect/internal/model"

// Disconnect clears the session, the selected wallet and the transfer draft.
// The provider is not contacted. Calling it while disconnected is a no-op
// apart from the alert.
func (c *Component) Disconnect() {
	c.actionMu.Lock()
	defer c.actionMu.Unlock()

	c.log.Info("disconnecting wallet")

	c.mu.Lock()
	c.state = session{}
	c.selected = ""
	c.draft = model.TransferDraft{}
	c.mu.Unlock()

	c.alert("Wallet disconnected successfully.")
}
