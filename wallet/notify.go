package wallet

import (
	"context"

	"github.com/AlexZinkM/wallet-connect/internal/model"

	"go.uber.org/zap"
)

// notifySaved reports the connected wallet to the backend in a detached goroutine.
// The user id is read now. The POST is not ordered with later user actions
// and its failure is only logged.
func (c *Component) notifySaved(account, balance string) {
	if c.saver == nil {
		return
	}

	req := model.SaveWalletRequest{
		WalletAddress: account,
		Balance:       balance,
	}
	if c.users != nil {
		userID, err := c.users.UserID()
		if err != nil {
			c.log.Warn("failed to read user id", zap.Error(err))
		} else if userID != "" {
			req.UserID = &userID
		}
	}

	c.pending.Add(1)
	go func() {
		defer c.pending.Done()
		if err := c.saver.SaveWallet(context.Background(), req); err != nil {
			c.log.Warn("save wallet notification failed", zap.Error(err))
			return
		}
		c.log.Debug("save wallet notification sent", zap.String("account", req.WalletAddress))
	}()
}
