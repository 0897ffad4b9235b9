package wallet

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/AlexZinkM/wallet-connect/internal/common"
	"github.com/AlexZinkM/wallet-connect/internal/model"
	"github.com/AlexZinkM/wallet-connect/internal/provider"

	"go.uber.org/zap"
)

// Connect connects to walletID: "metamask" goes to the Ethereum provider,
// anything else is looked up in the Cardano registry.
//
// A missing provider alerts and returns ErrProviderNotFound. A provider error
// is logged, alerted and returned; the session keeps whatever state it had
// before the attempt.
func (c *Component) Connect(ctx context.Context, walletID string) error {
	c.actionMu.Lock()
	defer c.actionMu.Unlock()

	if walletID == model.MetaMaskWalletID {
		return c.connectMetaMask(ctx)
	}
	return c.connectCardano(ctx, walletID)
}

func (c *Component) connectMetaMask(ctx context.Context) error {
	eth := c.env.Ethereum
	if eth == nil {
		c.alert("MetaMask not found. Please install MetaMask.")
		return fmt.Errorf("metamask: %w", ErrProviderNotFound)
	}

	account, balance, err := ethereumAccount(ctx, eth)
	if err != nil {
		c.log.Error("MetaMask connect error", zap.Error(err))
		c.alert("MetaMask connect failed.")
		return fmt.Errorf("failed to connect metamask: %w", err)
	}

	c.bind(account, balance, ethereumBinding{provider: eth})
	c.log.Info("wallet connected",
		zap.String("wallet", model.MetaMaskWalletID),
		zap.String("account", account),
		zap.String("balance", balance))
	return nil
}

// ethereumAccount requests account access and reads the balance at the latest block
func ethereumAccount(ctx context.Context, eth provider.EthereumProvider) (account, balance string, err error) {
	raw, err := eth.Request(ctx, provider.MethodRequestAccounts)
	if err != nil {
		return "", "", fmt.Errorf("failed to request accounts: %w", err)
	}
	var accounts []string
	if err := json.Unmarshal(raw, &accounts); err != nil {
		return "", "", fmt.Errorf("failed to decode accounts: %w", err)
	}
	if len(accounts) == 0 {
		return "", "", errors.New("no accounts returned")
	}
	account = accounts[0]

	raw, err = eth.Request(ctx, provider.MethodGetBalance, account, "latest")
	if err != nil {
		return "", "", fmt.Errorf("failed to get balance: %w", err)
	}
	var balanceHex string
	if err := json.Unmarshal(raw, &balanceHex); err != nil {
		return "", "", fmt.Errorf("failed to decode balance: %w", err)
	}
	wei, err := common.ParseHexQuantity(balanceHex)
	if err != nil {
		return "", "", fmt.Errorf("invalid balance: %w", err)
	}

	return account, common.WeiToETH(wei) + " ETH", nil
}

func (c *Component) connectCardano(ctx context.Context, walletID string) error {
	w := c.env.CardanoWallet(walletID)
	if w == nil {
		c.alert(fmt.Sprintf("%s wallet not found. Please install %s.", walletID, walletID))
		return fmt.Errorf("%s: %w", walletID, ErrProviderNotFound)
	}

	api, account, balance, err := cardanoAccount(ctx, w)
	if err != nil {
		c.log.Error("Cardano wallet connect error", zap.String("wallet", walletID), zap.Error(err))
		c.alert(fmt.Sprintf("%s wallet connect failed.", walletID))
		return fmt.Errorf("failed to connect %s: %w", walletID, err)
	}

	c.bind(account, balance, cardanoBinding{name: walletID, api: api})
	c.log.Info("wallet connected",
		zap.String("wallet", walletID),
		zap.String("account", account),
		zap.String("balance", balance))
	return nil
}

// cardanoAccount enables the wallet, picks the first used (or else unused)
// address and reads the balance
func cardanoAccount(ctx context.Context, w provider.CardanoWallet) (api provider.CardanoAPI, account, balance string, err error) {
	api, err = w.Enable(ctx)
	if err != nil {
		return nil, "", "", fmt.Errorf("failed to enable wallet: %w", err)
	}
	if api == nil {
		return nil, "", "", ErrWalletAPIUnavailable
	}

	addresses, err := api.GetUsedAddresses(ctx)
	if err != nil {
		return nil, "", "", fmt.Errorf("failed to get used addresses: %w", err)
	}
	if len(addresses) == 0 {
		addresses, err = api.GetUnusedAddresses(ctx)
		if err != nil {
			return nil, "", "", fmt.Errorf("failed to get unused addresses: %w", err)
		}
	}
	if len(addresses) == 0 {
		return nil, "", "", errors.New("no addresses returned")
	}

	balanceHex, err := api.GetBalance(ctx)
	if err != nil {
		return nil, "", "", fmt.Errorf("failed to get balance: %w", err)
	}
	lovelace, err := common.ParseHexQuantity(balanceHex)
	if err != nil {
		return nil, "", "", fmt.Errorf("invalid balance: %w", err)
	}

	return api, addresses[0], common.LovelaceToADA(lovelace) + " ADA", nil
}

// bind records a successful connect and fires the save-wallet notification
func (c *Component) bind(account, balance string, b binding) {
	qr, err := generateQRCode(account)
	if err != nil {
		c.log.Warn("failed to generate account QR code", zap.Error(err))
	}

	c.mu.Lock()
	c.state = session{
		connected: true,
		account:   account,
		balance:   balance,
		accountQR: qr,
		binding:   b,
	}
	c.mu.Unlock()

	c.notifySaved(account, balance)
}
