package common

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
)

const (
	ETHDecimals = 18 // ETH has 18 decimals (wei)
	ADADecimals = 6  // ADA has 6 decimals (lovelace)
)

// WeiToETH converts wei to ETH display string without float precision loss
func WeiToETH(wei *big.Int) string {
	return formatWithDecimals(wei, ETHDecimals)
}

// ETHToWei converts ETH decimal string to wei, dropping digits below 1 wei
func ETHToWei(eth string) (*big.Int, error) {
	return parseWithDecimals(eth, ETHDecimals)
}

// LovelaceToADA converts lovelace to ADA display string without float precision loss
func LovelaceToADA(lovelace *big.Int) string {
	return formatWithDecimals(lovelace, ADADecimals)
}

// ADAToLovelace converts ADA decimal string to lovelace, dropping digits below 1 lovelace
func ADAToLovelace(ada string) (*big.Int, error) {
	return parseWithDecimals(ada, ADADecimals)
}

// ParseAmount parses a user-entered amount as an exact decimal.
// Accepts "1.5", "10", "1e-3"; rejects fractions like "3/4", NaN and Inf.
func ParseAmount(s string) (*big.Rat, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, errors.New("empty string")
	}
	if strings.Contains(s, "/") {
		return nil, fmt.Errorf("invalid decimal format: %q", s)
	}
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		return nil, fmt.Errorf("invalid decimal format: %q", s)
	}
	return r, nil
}

// ParseHexQuantity parses a hex encoded unsigned integer with or without 0x prefix.
// Leading zeros are allowed, unlike hexutil.DecodeBig.
func ParseHexQuantity(s string) (*big.Int, error) {
	s = strings.TrimSpace(s)
	if len(s) >= 2 && (s[:2] == "0x" || s[:2] == "0X") {
		s = s[2:]
	}
	if s == "" {
		return nil, errors.New("empty hex quantity")
	}
	n, ok := new(big.Int).SetString(s, 16)
	if !ok || n.Sign() < 0 {
		return nil, fmt.Errorf("invalid hex quantity: %q", s)
	}
	return n, nil
}

// formatWithDecimals converts integer to decimal string by inserting decimal point
// and trimming trailing zeros.
// Example: formatWithDecimals(1500000, 6) = "1.5", formatWithDecimals(10^18, 18) = "1"
func formatWithDecimals(value *big.Int, decimals int) string {
	if value == nil {
		return "0"
	}
	neg := value.Sign() < 0
	s := new(big.Int).Abs(value).String()

	// Pad with leading zeros if needed
	if len(s) <= decimals {
		s = strings.Repeat("0", decimals-len(s)+1) + s
	}

	pos := len(s) - decimals
	whole, frac := s[:pos], strings.TrimRight(s[pos:], "0")

	out := whole
	if frac != "" {
		out += "." + frac
	}
	if neg {
		out = "-" + out
	}
	return out
}

// parseWithDecimals converts decimal string to base units, flooring the remainder
// Example: parseWithDecimals("0.0000015", 6) = 1
func parseWithDecimals(s string, decimals int) (*big.Int, error) {
	r, err := ParseAmount(s)
	if err != nil {
		return nil, err
	}

	scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(decimals)), nil)
	num := new(big.Int).Mul(r.Num(), scale)

	// Euclidean division floors for the positive denominator big.Rat keeps
	return num.Div(num, r.Denom()), nil
}
