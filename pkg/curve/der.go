package curve

import (
	"math/big"

	"github.com/nakasendo/tss/pkg/tserr"
)

// Signature is a raw, uncanonicalized ECDSA signature (r, s).
type Signature struct {
	R, S *big.Int
}

// SerializeDER encodes sig in strict Bitcoin DER form (BIP-66), enforcing
// low-S (BIP-62) at serialization time without mutating the caller's sig.
func SerializeDER(sig Signature) []byte {
	s := new(big.Int).Set(sig.S)
	if s.Cmp(half) > 0 {
		s.Sub(N, s)
	}

	rBytes := derInteger(sig.R)
	sBytes := derInteger(s)

	content := make([]byte, 0, len(rBytes)+len(sBytes))
	content = append(content, rBytes...)
	content = append(content, sBytes...)

	out := make([]byte, 0, len(content)+2)
	out = append(out, 0x30, byte(len(content)))
	return append(out, content...)
}

// derInteger encodes v as a DER INTEGER: tag 0x02, length, magnitude, with
// leading zero bytes stripped and a single 0x00 prepended if the top bit of
// the first remaining byte would otherwise read as negative.
func derInteger(v *big.Int) []byte {
	b := padTo32(v)
	i := 0
	for i < len(b)-1 && b[i] == 0 {
		i++
	}
	b = b[i:]
	if b[0]&0x80 != 0 {
		b = append([]byte{0x00}, b...)
	}
	out := make([]byte, 0, len(b)+2)
	out = append(out, 0x02, byte(len(b)))
	return append(out, b...)
}

// DeserializeDER parses a strict DER-encoded signature, validating every
// tag and length per BIP-66.
func DeserializeDER(der []byte) (Signature, error) {
	fail := func() (Signature, error) {
		return Signature{}, tserr.New(tserr.InvalidEncoding, "curve: invalid DER signature")
	}

	if len(der) < 8 || der[0] != 0x30 {
		return fail()
	}
	totalLen := int(der[1])
	if totalLen != len(der)-2 {
		return fail()
	}
	if der[2] != 0x02 {
		return fail()
	}
	rLen := int(der[3])
	if 4+rLen > len(der) {
		return fail()
	}
	rBytes := der[4 : 4+rLen]

	sTagIdx := 4 + rLen
	if sTagIdx >= len(der) || der[sTagIdx] != 0x02 {
		return fail()
	}
	sLenIdx := sTagIdx + 1
	if sLenIdx >= len(der) {
		return fail()
	}
	sLen := int(der[sLenIdx])
	sStart := sLenIdx + 1
	if sStart+sLen != len(der) {
		return fail()
	}
	sBytes := der[sStart : sStart+sLen]

	if len(rBytes) == 0 || len(sBytes) == 0 {
		return fail()
	}
	r := new(big.Int).SetBytes(rBytes)
	s := new(big.Int).SetBytes(sBytes)
	if r.Sign() <= 0 || s.Sign() <= 0 {
		return fail()
	}
	return Signature{R: r, S: s}, nil
}
