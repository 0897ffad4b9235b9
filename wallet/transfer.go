package wallet

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/AlexZinkM/wallet-connect/internal/common"
	"github.com/AlexZinkM/wallet-connect/internal/model"
	"github.com/AlexZinkM/wallet-connect/internal/provider"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"go.uber.org/zap"
	"golang.org/x/crypto/blake2b"
)

// Transfer validates draft against the connected wallet family and hands the
// transaction to the provider. Rejected drafts never reach the provider.
func (c *Component) Transfer(ctx context.Context, draft model.TransferDraft) (*model.TransferReceipt, error) {
	c.actionMu.Lock()
	defer c.actionMu.Unlock()

	c.mu.Lock()
	c.draft = draft
	st := c.state
	c.mu.Unlock()

	walletType := model.WalletTypeNone
	if st.binding != nil {
		walletType = st.binding.walletType()
	}

	c.log.Info("transfer initiated",
		zap.String("walletType", string(walletType)),
		zap.String("recipientAddress", draft.RecipientAddress),
		zap.String("transferAmount", draft.TransferAmount),
		zap.Bool("connected", st.connected))

	if err := Validate(walletType, draft); err != nil {
		c.log.Error("transfer validation failed",
			zap.String("walletType", string(walletType)),
			zap.Error(err))
		c.alert(err.Error())
		return nil, err
	}

	switch b := st.binding.(type) {
	case ethereumBinding:
		return c.transferMetaMask(ctx, b, st.account, draft)
	case cardanoBinding:
		return c.transferCardano(ctx, b, draft)
	default:
		// Validate rejects every other wallet type
		return nil, ErrUnsupportedWallet
	}
}

func (c *Component) transferMetaMask(ctx context.Context, b ethereumBinding, from string, draft model.TransferDraft) (*model.TransferReceipt, error) {
	txHash, err := sendEthereumTransaction(ctx, b.provider, from, draft)
	if err != nil {
		c.log.Error("transfer error", zap.Error(err))
		c.alert("Transfer failed.")
		return nil, err
	}

	c.log.Info("transaction sent", zap.String("txHash", txHash))
	c.alert(fmt.Sprintf("Transaction sent! Hash: %s", txHash))
	return &model.TransferReceipt{WalletType: model.WalletTypeMetaMask, TxHash: txHash}, nil
}

func sendEthereumTransaction(ctx context.Context, eth provider.EthereumProvider, from string, draft model.TransferDraft) (string, error) {
	if eth == nil {
		return "", ErrWalletAPIUnavailable
	}

	wei, err := common.ETHToWei(draft.TransferAmount)
	if err != nil {
		return "", fmt.Errorf("invalid amount: %w", err)
	}

	params := model.EthereumTxParams{
		To:    draft.RecipientAddress,
		From:  from,
		Value: hexutil.EncodeBig(wei),
	}
	raw, err := eth.Request(ctx, provider.MethodSendTransaction, params)
	if err != nil {
		return "", fmt.Errorf("failed to send transaction: %w", err)
	}

	var txHash string
	if err := json.Unmarshal(raw, &txHash); err != nil {
		return "", fmt.Errorf("failed to decode transaction hash: %w", err)
	}
	return txHash, nil
}

func (c *Component) transferCardano(ctx context.Context, b cardanoBinding, draft model.TransferDraft) (*model.TransferReceipt, error) {
	receipt, err := c.signAndSubmitCardano(ctx, b.api, draft)
	if err != nil {
		c.log.Error("Cardano transfer error", zap.String("wallet", b.name), zap.Error(err))
		c.alert("Cardano transfer failed: " + err.Error())
		return nil, err
	}

	c.alert(fmt.Sprintf("Cardano transaction sent! Hash: %s", receipt.TxHash))
	return receipt, nil
}

// signAndSubmitCardano builds the descriptor and asks the wallet to sign it;
// submission runs only after a successful signature
func (c *Component) signAndSubmitCardano(ctx context.Context, api provider.CardanoAPI, draft model.TransferDraft) (*model.TransferReceipt, error) {
	if api == nil {
		return nil, ErrWalletAPIUnavailable
	}

	lovelace, err := common.ADAToLovelace(draft.TransferAmount)
	if err != nil {
		return nil, fmt.Errorf("invalid amount: %w", err)
	}
	if !lovelace.IsUint64() {
		return nil, errors.New("amount out of range")
	}

	tx := model.CardanoTxDescriptor{
		Outputs: []model.CardanoTxOutput{{
			Address: draft.RecipientAddress,
			Amount:  lovelace.Uint64(),
		}},
	}
	draftID, err := descriptorID(tx)
	if err != nil {
		return nil, err
	}
	c.log.Info("building transaction", zap.String("draftId", draftID), zap.Any("tx", tx))

	signedTx, err := api.SignTx(ctx, tx)
	if err != nil {
		return nil, fmt.Errorf("failed to sign transaction: %w", err)
	}
	c.log.Info("signed transaction", zap.String("draftId", draftID))

	txHash, err := api.SubmitTx(ctx, signedTx)
	if err != nil {
		return nil, fmt.Errorf("failed to submit transaction: %w", err)
	}
	c.log.Info("transaction submitted", zap.String("draftId", draftID), zap.String("txHash", txHash))

	return &model.TransferReceipt{
		WalletType: model.WalletTypeCardano,
		TxHash:     txHash,
		DraftID:    draftID,
	}, nil
}

// descriptorID is the hex blake2b-256 digest of the JSON descriptor
func descriptorID(tx model.CardanoTxDescriptor) (string, error) {
	data, err := json.Marshal(tx)
	if err != nil {
		return "", fmt.Errorf("failed to marshal transaction: %w", err)
	}
	sum := blake2b.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}
