package bitcoin_test

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nakasendo/tss/pkg/bitcoin"
)

func TestSHA256KnownVector(t *testing.T) {
	// SHA-256("") per FIPS 180-4 appendix B.1
	got := hex.EncodeToString(bitcoin.SHA256(nil))
	assert.Equal(t, "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855", got)
}

func TestDoubleSHA256IsSHA256Twice(t *testing.T) {
	msg := []byte("nakasendo")
	want := bitcoin.SHA256(bitcoin.SHA256(msg))
	assert.Equal(t, want, bitcoin.DoubleSHA256(msg))
}

func TestChecksumIsFirstFourBytes(t *testing.T) {
	msg := []byte("checksum me")
	full := bitcoin.DoubleSHA256(msg)
	assert.Equal(t, full[:4], bitcoin.Checksum(msg))
}

func TestHash160Length(t *testing.T) {
	assert.Len(t, bitcoin.Hash160([]byte("pubkey bytes")), 20)
}
