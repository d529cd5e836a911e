// Package secret provides a hardened at-rest representation for ephemeral
// and secret scalar material. Within this module it holds polynomial
// coefficients; participant shares (threshold.Context.Shares) and the ECDSA
// ephemeral nonce k are plain *big.Int values. Storage uses saferith.Nat, the
// constant-time bignum type the teacher library uses for its own secret key
// material (lss/types.go's SecretShare, jvss's share values); all actual
// modular arithmetic is still performed by the component B/C/F algorithms
// over math/big, with values passing through Scalar only at rest.
package secret

import (
	"math/big"

	"github.com/cronokirby/saferith"
)

// Scalar holds one secret or ephemeral value. The zero value represents 0.
type Scalar struct {
	nat *saferith.Nat
}

// FromBig captures v's bytes into hardened storage.
func FromBig(v *big.Int) Scalar {
	return Scalar{nat: new(saferith.Nat).SetBytes(v.Bytes())}
}

// Big returns a fresh *big.Int view of the stored value for use in ordinary
// modular arithmetic.
func (s Scalar) Big() *big.Int {
	if s.nat == nil {
		return new(big.Int)
	}
	return new(big.Int).SetBytes(s.nat.Bytes())
}

// Zero overwrites the hardened storage, dropping the reference to the
// previous value. The protocol's correctness never depends on this running;
// it exists so debug tooling and long-lived processes don't keep stale
// secret material reachable longer than necessary.
func (s *Scalar) Zero() {
	s.nat = new(saferith.Nat).SetUint64(0)
}

// Slice is a convenience constructor for a vector of hardened scalars from
// plain big.Int values, used when storing a polynomial's coefficients.
func Slice(values []*big.Int) []Scalar {
	out := make([]Scalar, len(values))
	for i, v := range values {
		out[i] = FromBig(v)
	}
	return out
}

// BigSlice is the inverse of Slice.
func BigSlice(values []Scalar) []*big.Int {
	out := make([]*big.Int, len(values))
	for i, v := range values {
		out[i] = v.Big()
	}
	return out
}
