package wallet

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/AlexZinkM/wallet-connect/internal/model"
	"github.com/AlexZinkM/wallet-connect/internal/provider"

	"github.com/stretchr/testify/require"
)

func TestValidateEthereumAddress(t *testing.T) {
	t.Parallel()

	draft := func(addr string) model.TransferDraft {
		return model.TransferDraft{RecipientAddress: addr, TransferAmount: "1"}
	}
	hex40 := strings.Repeat("a", 40)

	require.NoError(t, Validate(model.WalletTypeMetaMask, draft("0x"+hex40)))

	for _, addr := range []string{
		"0x" + hex40[:39],  // 41 chars
		"0x" + hex40 + "b", // 43 chars
		"ab" + hex40,       // no prefix
		"0X" + hex40,       // prefix is case sensitive
	} {
		err := Validate(model.WalletTypeMetaMask, draft(addr))
		require.Error(t, err, addr)
		require.Equal(t, "Invalid Ethereum address. Must be 42 characters starting with 0x.", err.Error())
	}
}

func TestValidateCardanoAddress(t *testing.T) {
	t.Parallel()

	ok := model.TransferDraft{RecipientAddress: strings.Repeat("x", 50), TransferAmount: "1"}
	require.NoError(t, Validate(model.WalletTypeCardano, ok))

	short := model.TransferDraft{RecipientAddress: strings.Repeat("x", 49), TransferAmount: "1"}
	err := Validate(model.WalletTypeCardano, short)
	require.EqualError(t, err, "Invalid Cardano address. Please check the address.")
}

func TestValidateAmount(t *testing.T) {
	t.Parallel()

	cases := map[model.WalletType]string{
		model.WalletTypeMetaMask: testEthRecipient,
		model.WalletTypeCardano:  testCardanoAddress,
	}
	for walletType, addr := range cases {
		for _, amount := range []string{"0", "-1", "abc", "0.0"} {
			err := Validate(walletType, model.TransferDraft{RecipientAddress: addr, TransferAmount: amount})
			require.EqualError(t, err, "Amount must be positive.", "%s %s", walletType, amount)
			require.True(t, IsValidationError(err))
		}
		require.NoError(t, Validate(walletType, model.TransferDraft{RecipientAddress: addr, TransferAmount: "1.5"}))
	}
}

func TestValidateEmptyAndUnknown(t *testing.T) {
	t.Parallel()

	err := Validate(model.WalletTypeMetaMask, model.TransferDraft{TransferAmount: "1"})
	require.EqualError(t, err, "Please enter recipient address and amount.")

	err = Validate(model.WalletTypeCardano, model.TransferDraft{RecipientAddress: testCardanoAddress})
	require.EqualError(t, err, "Please enter recipient address and amount.")

	err = Validate(model.WalletTypeNone, model.TransferDraft{RecipientAddress: testEthRecipient, TransferAmount: "1"})
	require.EqualError(t, err, "Unsupported wallet type.")
	require.ErrorIs(t, err, ErrUnsupportedWallet)
}

func TestTransferMetaMask(t *testing.T) {
	t.Parallel()

	eth := newMetaMask()
	c, alerts, _ := newComponent(t, provider.Environment{Ethereum: eth})
	require.NoError(t, c.Connect(context.Background(), "metamask"))

	receipt, err := c.Transfer(context.Background(), model.TransferDraft{
		RecipientAddress: testEthRecipient,
		TransferAmount:   "1.5",
	})
	require.NoError(t, err)
	require.Equal(t, &model.TransferReceipt{WalletType: model.WalletTypeMetaMask, TxHash: "0xhash"}, receipt)
	require.Equal(t, []string{"Transaction sent! Hash: 0xhash"}, alerts.all())

	last := eth.calls[len(eth.calls)-1]
	require.Equal(t, provider.MethodSendTransaction, last.method)
	require.Equal(t, []any{model.EthereumTxParams{
		To:    testEthRecipient,
		From:  testEthAccount,
		Value: "0x14d1120d7b160000",
	}}, last.params)
}

func TestTransferMetaMaskProviderFailure(t *testing.T) {
	t.Parallel()

	eth := newMetaMask()
	eth.errs[provider.MethodSendTransaction] = errors.New("user denied")
	c, alerts, _ := newComponent(t, provider.Environment{Ethereum: eth})
	require.NoError(t, c.Connect(context.Background(), "metamask"))

	_, err := c.Transfer(context.Background(), model.TransferDraft{RecipientAddress: testEthRecipient, TransferAmount: "1"})
	require.Error(t, err)
	require.Equal(t, []string{"Transfer failed."}, alerts.all())
	require.True(t, c.Session().Connected)
}

func TestTransferRejectedDraftSkipsProvider(t *testing.T) {
	t.Parallel()

	eth := newMetaMask()
	c, alerts, _ := newComponent(t, provider.Environment{Ethereum: eth})
	require.NoError(t, c.Connect(context.Background(), "metamask"))

	_, err := c.Transfer(context.Background(), model.TransferDraft{RecipientAddress: testEthRecipient, TransferAmount: "-1"})
	require.True(t, IsValidationError(err))
	require.Equal(t, []string{"Amount must be positive."}, alerts.all())
	require.NotContains(t, eth.methods(), provider.MethodSendTransaction)
}

func TestTransferWithoutConnection(t *testing.T) {
	t.Parallel()

	c, alerts, _ := newComponent(t, provider.Environment{Ethereum: newMetaMask()})

	_, err := c.Transfer(context.Background(), model.TransferDraft{RecipientAddress: testEthRecipient, TransferAmount: "1"})
	require.ErrorIs(t, err, ErrUnsupportedWallet)
	require.Equal(t, []string{"Unsupported wallet type."}, alerts.all())
}

func TestTransferCardano(t *testing.T) {
	t.Parallel()

	nami, api := newNami()
	c, alerts, _ := newComponent(t, provider.Environment{Cardano: []provider.RegistryEntry{{Name: "nami", Wallet: nami}}})
	require.NoError(t, c.Connect(context.Background(), "nami"))

	receipt, err := c.Transfer(context.Background(), model.TransferDraft{
		RecipientAddress: testCardanoAddress,
		TransferAmount:   "2.5000009",
	})
	require.NoError(t, err)
	require.Equal(t, "cardano-hash", receipt.TxHash)
	require.Equal(t, model.WalletTypeCardano, receipt.WalletType)
	require.Len(t, receipt.DraftID, 64)

	require.Equal(t, model.CardanoTxDescriptor{
		Outputs: []model.CardanoTxOutput{{Address: testCardanoAddress, Amount: 2_500_000}},
	}, api.lastTx)
	require.Equal(t, "signed-cbor", api.lastSigned)
	require.Equal(t, []string{"Cardano transaction sent! Hash: cardano-hash"}, alerts.all())
}

func TestTransferCardanoSignFailureSkipsSubmit(t *testing.T) {
	t.Parallel()

	nami, api := newNami()
	api.signErr = errors.New("user declined")
	c, alerts, _ := newComponent(t, provider.Environment{Cardano: []provider.RegistryEntry{{Name: "nami", Wallet: nami}}})
	require.NoError(t, c.Connect(context.Background(), "nami"))

	_, err := c.Transfer(context.Background(), model.TransferDraft{RecipientAddress: testCardanoAddress, TransferAmount: "1"})
	require.Error(t, err)
	require.Equal(t, 1, api.signCalls)
	require.Zero(t, api.submitCalls)
	require.Equal(t, []string{"Cardano transfer failed: failed to sign transaction: user declined"}, alerts.all())
}

func TestTransferCardanoWithoutWalletAPI(t *testing.T) {
	t.Parallel()

	c, alerts, _ := newComponent(t, provider.Environment{})
	c.state = session{connected: true, account: testCardanoAddress, binding: cardanoBinding{name: "nami"}}

	_, err := c.Transfer(context.Background(), model.TransferDraft{RecipientAddress: testCardanoAddress, TransferAmount: "1"})
	require.ErrorIs(t, err, ErrWalletAPIUnavailable)
	require.Equal(t, []string{"Cardano transfer failed: wallet API not available"}, alerts.all())
}

func TestDescriptorIDIsStable(t *testing.T) {
	t.Parallel()

	tx := model.CardanoTxDescriptor{Outputs: []model.CardanoTxOutput{{Address: testCardanoAddress, Amount: 1}}}
	a, err := descriptorID(tx)
	require.NoError(t, err)
	b, err := descriptorID(tx)
	require.NoError(t, err)
	require.Equal(t, a, b)

	tx.Outputs[0].Amount = 2
	other, err := descriptorID(tx)
	require.NoError(t, err)
	require.NotEqual(t, a, other)
}
