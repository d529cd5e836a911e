package curve

import (
	"math/big"

	"github.com/nakasendo/tss/pkg/tserr"
)

// RecoverableSignature is (recovery_id, r, s). Bit 0 of RecoveryID encodes
// the parity of kG's y-coordinate; bit 1 indicates kG.x overflowed n.
type RecoverableSignature struct {
	RecoveryID byte
	R, S       *big.Int
}

// SerializeCompact encodes a recoverable signature as the 65-byte compact
// form: prefix (27 + recovery_id + 4 if compressed) || r (32 BE) || s (32 BE).
func SerializeCompact(sig RecoverableSignature, compressed bool) []byte {
	prefix := byte(27) + sig.RecoveryID
	if compressed {
		prefix += 4
	}
	out := make([]byte, 0, 65)
	out = append(out, prefix)
	out = append(out, padTo32(sig.R)...)
	out = append(out, padTo32(sig.S)...)
	return out
}

// DeserializeCompact parses the 65-byte compact form, reporting whether the
// encoded public key is compressed.
func DeserializeCompact(data []byte) (sig RecoverableSignature, compressed bool, err error) {
	if len(data) != 65 {
		return RecoverableSignature{}, false, tserr.New(tserr.InvalidEncoding, "curve: compact signature must be 65 bytes")
	}
	prefix := data[0]
	if prefix < 27 || prefix > 34 {
		return RecoverableSignature{}, false, tserr.New(tserr.InvalidEncoding, "curve: compact signature prefix out of range")
	}
	if prefix >= 31 {
		compressed = true
		prefix -= 4
	}
	sig = RecoverableSignature{
		RecoveryID: prefix - 27,
		R:          new(big.Int).SetBytes(data[1:33]),
		S:          new(big.Int).SetBytes(data[33:65]),
	}
	return sig, compressed, nil
}
