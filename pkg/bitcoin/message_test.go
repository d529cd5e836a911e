package bitcoin_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nakasendo/tss/pkg/bitcoin"
)

func TestMessageDigestIsDeterministic(t *testing.T) {
	a := bitcoin.MessageDigest("hello")
	b := bitcoin.MessageDigest("hello")
	assert.Equal(t, a, b)
}

func TestMessageDigestDiffersByMessage(t *testing.T) {
	a := bitcoin.MessageDigest("hello")
	b := bitcoin.MessageDigest("goodbye")
	assert.NotEqual(t, a, b)
}
