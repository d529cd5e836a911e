package bitcoin_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nakasendo/tss/pkg/bitcoin"
)

func TestWIFRoundTripCompressed(t *testing.T) {
	d := new(big.Int).SetUint64(0xf97c89aaacf0cd2e)
	wif := bitcoin.PrivateKeyToWIF(d, true)
	assert.Contains(t, []byte{'K', 'L'}, wif[0])
	got, err := bitcoin.WIFToPrivateKey(wif)
	require.NoError(t, err)
	assert.Equal(t, d, got)
}

func TestWIFRoundTripUncompressed(t *testing.T) {
	d := big.NewInt(987654321)
	wif := bitcoin.PrivateKeyToWIF(d, false)
	assert.Equal(t, byte('5'), wif[0])
	got, err := bitcoin.WIFToPrivateKey(wif)
	require.NoError(t, err)
	assert.Equal(t, d, got)
}

func TestWIFToPrivateKeyRejectsBadPrefix(t *testing.T) {
	_, err := bitcoin.WIFToPrivateKey(bitcoin.Base58CheckEncode([]byte{0x80 + 1, 0x01}))
	assert.Error(t, err)
}

func TestWIFEncodesKnownPrivateKeyLosslessly(t *testing.T) {
	d, ok := new(big.Int).SetString("f97c89aaacf0cd2e47ddbacc97dae1f88bec49106ac37716c451dcdd008a4b62", 16)
	require.True(t, ok)

	wif := bitcoin.PrivateKeyToWIF(d, true)
	assert.Contains(t, []byte{'K', 'L'}, wif[0])

	got, err := bitcoin.WIFToPrivateKey(wif)
	require.NoError(t, err)
	assert.Equal(t, d, got)
}
