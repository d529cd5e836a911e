package wallet_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nakasendo/tss/pkg/wallet"
)

func TestSignMessageRoundTrip(t *testing.T) {
	d := new(big.Int).SetUint64(0xf97c89aaacf0cd2e)
	plain := "Threshold Signature Scheme Sign Test"

	address, signature, err := wallet.SignMessage(d, plain)
	require.NoError(t, err)

	assert.True(t, wallet.VerifyMessage(address, plain, signature))
}

func TestVerifyMessageRejectsTamperedText(t *testing.T) {
	d := big.NewInt(424242)
	address, signature, err := wallet.SignMessage(d, "original text")
	require.NoError(t, err)

	assert.False(t, wallet.VerifyMessage(address, "different text", signature))
}

func TestVerifyMessageRejectsWrongAddress(t *testing.T) {
	d := big.NewInt(555)
	_, signature, err := wallet.SignMessage(d, "some message")
	require.NoError(t, err)

	other, _, err := wallet.SignMessage(big.NewInt(556), "unrelated")
	require.NoError(t, err)

	assert.False(t, wallet.VerifyMessage(other, "some message", signature))
}
