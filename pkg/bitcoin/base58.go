package bitcoin

import (
	"bytes"
	"math/big"

	"github.com/nakasendo/tss/pkg/tserr"
)

const alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

var base58 = big.NewInt(58)

// Base58Encode encodes payload using the Bitcoin Base58 alphabet: each
// leading 0x00 byte becomes a leading '1', and the remainder is treated as
// a big-endian unsigned integer emitted most-significant digit first.
func Base58Encode(payload []byte) string {
	pad := 0
	for _, b := range payload {
		if b != 0 {
			break
		}
		pad++
	}

	num := new(big.Int).SetBytes(payload)
	mod := new(big.Int)
	var digits []byte
	for num.Sign() > 0 {
		num.DivMod(num, base58, mod)
		digits = append(digits, alphabet[mod.Int64()])
	}

	out := bytes.Repeat([]byte{'1'}, pad)
	for i := len(digits) - 1; i >= 0; i-- {
		out = append(out, digits[i])
	}
	return string(out)
}

// Base58CheckEncode encodes payload || Checksum(payload).
func Base58CheckEncode(payload []byte) string {
	return Base58Encode(append(append([]byte{}, payload...), Checksum(payload)...))
}

// Base58Decode inverts Base58Encode, failing with tserr.InvalidEncoding on
// any character outside the alphabet.
func Base58Decode(encoded string) ([]byte, error) {
	pad := 0
	for _, c := range encoded {
		if c != '1' {
			break
		}
		pad++
	}

	num := new(big.Int)
	for _, c := range encoded {
		idx := indexOf(byte(c))
		if idx < 0 {
			return nil, tserr.New(tserr.InvalidEncoding, "bitcoin: invalid base58 character")
		}
		num.Mul(num, base58)
		num.Add(num, big.NewInt(int64(idx)))
	}

	body := num.Bytes()
	out := make([]byte, 0, pad+len(body))
	out = append(out, bytes.Repeat([]byte{0x00}, pad)...)
	return append(out, body...), nil
}

func indexOf(c byte) int {
	for i := 0; i < len(alphabet); i++ {
		if alphabet[i] == c {
			return i
		}
	}
	return -1
}

// Base58CheckDecode decodes encoded and verifies its trailing 4-byte
// checksum, failing with tserr.ChecksumMismatch if it disagrees.
func Base58CheckDecode(encoded string) ([]byte, error) {
	decoded, err := Base58Decode(encoded)
	if err != nil {
		return nil, err
	}
	if len(decoded) < 4 {
		return nil, tserr.New(tserr.InvalidEncoding, "bitcoin: base58check payload too short")
	}
	payload := decoded[:len(decoded)-4]
	want := decoded[len(decoded)-4:]
	got := Checksum(payload)
	if !bytes.Equal(want, got) {
		return nil, tserr.New(tserr.ChecksumMismatch, "bitcoin: base58check checksum mismatch")
	}
	return payload, nil
}
