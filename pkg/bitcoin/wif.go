package bitcoin

import (
	"math/big"
	"strings"

	"github.com/nakasendo/tss/pkg/tserr"
)

// PrivateKeyToWIF exports a private key in Wallet Import Format: version
// byte 0x80, the 32-byte big-endian key, an optional compression flag, and
// a double-SHA-256 checksum, all Base58-encoded (the checksum bytes are
// already appended, so this is Base58CheckEncode's exact byte layout).
func PrivateKeyToWIF(privateKey *big.Int, compressed bool) string {
	payload := make([]byte, 0, 34)
	payload = append(payload, 0x80)
	payload = append(payload, padTo32(privateKey)...)
	if compressed {
		payload = append(payload, 0x01)
	}
	return Base58CheckEncode(payload)
}

// WIFToPrivateKey decodes a WIF string, accepting only the leading
// characters Bitcoin mainnet private keys use ('5' uncompressed, 'K'/'L'
// compressed), stripping the compression flag byte for the latter.
func WIFToPrivateKey(wif string) (*big.Int, error) {
	if !strings.HasPrefix(wif, "5") && !strings.HasPrefix(wif, "K") && !strings.HasPrefix(wif, "L") {
		return nil, tserr.New(tserr.InvalidWIF, "bitcoin: invalid WIF prefix")
	}
	payload, err := Base58CheckDecode(wif)
	if err != nil {
		return nil, err
	}
	if strings.HasPrefix(wif, "K") || strings.HasPrefix(wif, "L") {
		payload = payload[:len(payload)-1]
	}
	if len(payload) < 2 {
		return nil, tserr.New(tserr.InvalidWIF, "bitcoin: WIF payload too short")
	}
	return new(big.Int).SetBytes(payload[1:]), nil
}

func padTo32(v *big.Int) []byte {
	b := v.Bytes()
	if len(b) >= 32 {
		return b
	}
	out := make([]byte, 32)
	copy(out[32-len(b):], b)
	return out
}
