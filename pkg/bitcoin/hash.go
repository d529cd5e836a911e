// Package bitcoin implements the hashing, Base58(Check) encoding, WIF
// formatting, varint encoding, and Bitcoin Signed Message conventions the
// rest of the toolkit builds on.
package bitcoin

import (
	"crypto/sha256"

	"golang.org/x/crypto/ripemd160" //nolint:staticcheck // Bitcoin's hash160 is defined over this exact primitive.
)

// SHA256 returns the SHA-256 digest of payload.
func SHA256(payload []byte) []byte {
	h := sha256.Sum256(payload)
	return h[:]
}

// DoubleSHA256 returns SHA-256(SHA-256(payload)).
func DoubleSHA256(payload []byte) []byte {
	return SHA256(SHA256(payload))
}

// Checksum returns the first 4 bytes of DoubleSHA256(payload), the Base58Check
// trailer.
func Checksum(payload []byte) []byte {
	return DoubleSHA256(payload)[:4]
}

// Hash160 returns RIPEMD-160(SHA-256(payload)), used for public-key hashes.
func Hash160(payload []byte) []byte {
	h := ripemd160.New()
	h.Write(SHA256(payload))
	return h.Sum(nil)
}
