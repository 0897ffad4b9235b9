package wallet

import (
	"strings"

	"github.com/AlexZinkM/wallet-connect/internal/common"
	"github.com/AlexZinkM/wallet-connect/internal/model"
)

const (
	ethereumAddressLen   = 42
	minCardanoAddressLen = 50 // coarse length check, no bech32 checksum
)

// Validate checks a transfer draft against the rules of walletType.
// It returns nil or a *ValidationError carrying the user-facing message.
func Validate(walletType model.WalletType, draft model.TransferDraft) error {
	if draft.RecipientAddress == "" || draft.TransferAmount == "" {
		return &ValidationError{Message: "Please enter recipient address and amount."}
	}

	switch walletType {
	case model.WalletTypeMetaMask:
		if !isValidEthereumAddress(draft.RecipientAddress) {
			return &ValidationError{Message: "Invalid Ethereum address. Must be 42 characters starting with 0x."}
		}
	case model.WalletTypeCardano:
		if len(draft.RecipientAddress) < minCardanoAddressLen {
			return &ValidationError{Message: "Invalid Cardano address. Please check the address."}
		}
	default:
		return &ValidationError{Message: "Unsupported wallet type.", Err: ErrUnsupportedWallet}
	}

	if !isPositiveAmount(draft.TransferAmount) {
		return &ValidationError{Message: "Amount must be positive."}
	}
	return nil
}

// isValidEthereumAddress checks prefix and length only, hex digits are not verified
func isValidEthereumAddress(address string) bool {
	return strings.HasPrefix(address, "0x") && len(address) == ethereumAddressLen
}

func isPositiveAmount(amount string) bool {
	r, err := common.ParseAmount(amount)
	return err == nil && r.Sign() > 0
}
