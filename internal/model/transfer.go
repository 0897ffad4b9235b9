package model

// CardanoTxOutput is one output of a Cardano transaction descriptor
type CardanoTxOutput struct {
	Address string `json:"address"`
	Amount  uint64 `json:"amount"` // lovelace
}

// CardanoTxDescriptor is the minimal transaction handed to a Cardano wallet for signing
type CardanoTxDescriptor struct {
	Outputs  []CardanoTxOutput `json:"outputs"`
	Metadata map[string]any    `json:"metadata"` // always nil, encodes as null
}

// EthereumTxParams is the single parameter of eth_sendTransaction
type EthereumTxParams struct {
	To    string `json:"to"`
	From  string `json:"from"`
	Value string `json:"value"` // hex wei, e.g. "0xde0b6b3a7640000"
}

// TransferReceipt is returned after the provider accepted a transfer
type TransferReceipt struct {
	WalletType WalletType `json:"walletType"`
	TxHash     string     `json:"txHash"`
	DraftID    string     `json:"draftId,omitempty"` // blake2b-256 of the Cardano descriptor
}
