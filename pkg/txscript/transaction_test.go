package txscript_test

import (
	"encoding/hex"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nakasendo/tss/pkg/curve"
	"github.com/nakasendo/tss/pkg/ecdsa"
	"github.com/nakasendo/tss/pkg/txscript"
)

// TestTransactionDigestKnownVector cross-checks BIP-143 digest computation
// and DER verification against a signature produced by the reference
// implementation this package generalizes, over a one-input, one-output
// sample transaction.
func TestTransactionDigestKnownVector(t *testing.T) {
	d, ok := new(big.Int).SetString("f97c89aaacf0cd2e47ddbacc97dae1f88bec49106ac37716c451dcdd008a4b62", 16)
	require.True(t, ok)
	Q := curve.ScalarBaseMul(d)

	in, err := txscript.NewTxIn(1000, "d2bc57099dd434a5adb51f7de38cc9b8565fb208090d9b5ea7a6b4778e1fdd48", 1,
		"76a9146a176cd51593e00542b8e1958b7da2be97452d0588ac")
	require.NoError(t, err)

	out := txscript.TxOut{Address: "1JDZRGf5fPjGTpqLNwjHFFZnagcZbwDsxw", Satoshi: 800}

	digests, err := txscript.TransactionDigest([]txscript.TxIn{in}, []txscript.TxOut{out}, 0, txscript.SighashAllForkID)
	require.NoError(t, err)
	require.Len(t, digests, 1)

	sigBytes, err := hex.DecodeString("304402207e2c6eb8c4b20e251a71c580373a2836e209c50726e5f8b0f4f59f8af00eee1a022019ae1690e2eb4455add6ca5b86695d65d3261d914bc1d7abb40b188c7f46c9a5")
	require.NoError(t, err)
	sig, err := curve.DeserializeDER(sigBytes)
	require.NoError(t, err)

	e := new(big.Int).SetBytes(digests[0])
	assert.True(t, ecdsa.Verify(Q, e, sig))
}

func TestTransactionDigestRejectsUnsupportedSighash(t *testing.T) {
	in, err := txscript.NewTxIn(1000, "d2bc57099dd434a5adb51f7de38cc9b8565fb208090d9b5ea7a6b4778e1fdd48", 1,
		"76a9146a176cd51593e00542b8e1958b7da2be97452d0588ac")
	require.NoError(t, err)
	out := txscript.TxOut{Address: "1JDZRGf5fPjGTpqLNwjHFFZnagcZbwDsxw", Satoshi: 800}

	_, err = txscript.TransactionDigest([]txscript.TxIn{in}, []txscript.TxOut{out}, 0, txscript.SighashAll)
	assert.Error(t, err)
}

func TestSignInputsProducesVerifiableTransaction(t *testing.T) {
	d := big.NewInt(0xabcdef1234)
	Q := curve.ScalarBaseMul(d)

	in, err := txscript.NewTxIn(1000, "d2bc57099dd434a5adb51f7de38cc9b8565fb208090d9b5ea7a6b4778e1fdd48", 1,
		"76a9146a176cd51593e00542b8e1958b7da2be97452d0588ac")
	require.NoError(t, err)
	inputs := []txscript.TxIn{in}
	outputs := []txscript.TxOut{{Address: "1JDZRGf5fPjGTpqLNwjHFFZnagcZbwDsxw", Satoshi: 800}}

	require.NoError(t, txscript.SignInputs(d, inputs, outputs, 0))
	assert.NotEmpty(t, inputs[0].UnlockingScript)

	raw, err := txscript.SerializeTransaction(inputs, outputs, 0)
	require.NoError(t, err)
	assert.NotEmpty(t, raw)

	digests, err := txscript.TransactionDigest(inputs, outputs, 0, txscript.SighashAllForkID)
	require.NoError(t, err)
	e := new(big.Int).SetBytes(digests[0])

	// the unlocking script is PUSH(der||sighash) PUSH(pubkey); strip the
	// two length-prefixed pushes back out to verify against Q.
	script := inputs[0].UnlockingScript
	sigLen := int(script[0])
	der := script[1 : sigLen] // excludes the trailing sighash byte
	sig, err := curve.DeserializeDER(der)
	require.NoError(t, err)
	assert.True(t, ecdsa.Verify(Q, e, sig))
}
