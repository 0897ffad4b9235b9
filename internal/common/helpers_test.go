package common

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func mustBig(t *testing.T, s string) *big.Int {
	t.Helper()
	n, ok := new(big.Int).SetString(s, 10)
	require.True(t, ok, "bad test number %q", s)
	return n
}

func TestWeiToETH(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"1000000000000000000":  "1",
		"1500000000000000000":  "1.5",
		"0":                    "0",
		"1":                    "0.000000000000000001",
		"25000000000000000000": "25",
		"123456789012345678":   "0.123456789012345678",
	}
	for in, want := range cases {
		require.Equal(t, want, WeiToETH(mustBig(t, in)), "wei %s", in)
	}
}

func TestLovelaceToADA(t *testing.T) {
	t.Parallel()

	require.Equal(t, "1", LovelaceToADA(big.NewInt(1_000_000)))
	require.Equal(t, "2.5", LovelaceToADA(big.NewInt(2_500_000)))
	require.Equal(t, "0.000001", LovelaceToADA(big.NewInt(1)))
	require.Equal(t, "0", LovelaceToADA(nil))
}

func TestETHToWei(t *testing.T) {
	t.Parallel()

	wei, err := ETHToWei("1.5")
	require.NoError(t, err)
	require.Equal(t, "1500000000000000000", wei.String())

	wei, err = ETHToWei("1e-3")
	require.NoError(t, err)
	require.Equal(t, "1000000000000000", wei.String())

	// digits below one wei are dropped
	wei, err = ETHToWei("0.0000000000000000019")
	require.NoError(t, err)
	require.Equal(t, "1", wei.String())

	_, err = ETHToWei("abc")
	require.Error(t, err)
}

func TestADAToLovelace(t *testing.T) {
	t.Parallel()

	lovelace, err := ADAToLovelace("2.0000019")
	require.NoError(t, err)
	require.Equal(t, "2000001", lovelace.String())

	lovelace, err = ADAToLovelace(" 3 ")
	require.NoError(t, err)
	require.Equal(t, "3000000", lovelace.String())
}

func TestParseAmount(t *testing.T) {
	t.Parallel()

	for _, ok := range []string{"1.5", "0", "-1", "10", "1e3"} {
		_, err := ParseAmount(ok)
		require.NoError(t, err, ok)
	}
	for _, bad := range []string{"", "  ", "abc", "3/4", "NaN", "Inf", "1.2.3"} {
		_, err := ParseAmount(bad)
		require.Error(t, err, bad)
	}
}

func TestParseHexQuantity(t *testing.T) {
	t.Parallel()

	n, err := ParseHexQuantity("0xde0b6b3a7640000")
	require.NoError(t, err)
	require.Equal(t, "1000000000000000000", n.String())

	n, err = ParseHexQuantity("0f4240")
	require.NoError(t, err)
	require.Equal(t, int64(1_000_000), n.Int64())

	n, err = ParseHexQuantity("0x0")
	require.NoError(t, err)
	require.Zero(t, n.Sign())

	for _, bad := range []string{"", "0x", "xyz", "0x-1"} {
		_, err := ParseHexQuantity(bad)
		require.Error(t, err, bad)
	}
}
