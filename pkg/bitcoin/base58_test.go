package bitcoin_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nakasendo/tss/pkg/bitcoin"
)

func TestBase58RoundTrip(t *testing.T) {
	data := []byte{0x00, 0x01, 0x02, 0xff, 0xfe}
	encoded := bitcoin.Base58Encode(data)
	decoded, err := bitcoin.Base58Decode(encoded)
	require.NoError(t, err)
	assert.Equal(t, data, decoded)
}

func TestBase58EncodePreservesLeadingZeros(t *testing.T) {
	data := []byte{0x00, 0x00, 0x01}
	encoded := bitcoin.Base58Encode(data)
	assert.Equal(t, byte('1'), encoded[0])
	assert.Equal(t, byte('1'), encoded[1])
}

func TestBase58DecodeRejectsInvalidCharacter(t *testing.T) {
	_, err := bitcoin.Base58Decode("0OIl")
	assert.Error(t, err)
}

func TestBase58CheckRoundTrip(t *testing.T) {
	payload := []byte{0x00, 0xde, 0xad, 0xbe, 0xef}
	encoded := bitcoin.Base58CheckEncode(payload)
	decoded, err := bitcoin.Base58CheckDecode(encoded)
	require.NoError(t, err)
	assert.Equal(t, payload, decoded)
}

func TestBase58CheckDecodeRejectsBadChecksum(t *testing.T) {
	payload := []byte{0x00, 0xde, 0xad, 0xbe, 0xef}
	encoded := bitcoin.Base58CheckEncode(payload)
	tampered := encoded[:len(encoded)-1] + "z"
	_, err := bitcoin.Base58CheckDecode(tampered)
	assert.Error(t, err)
}
