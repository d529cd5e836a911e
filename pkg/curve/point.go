// Package curve implements secp256k1 field and group arithmetic: the
// distinguished point-at-infinity representation, the group law (negation,
// addition, scalar multiplication), and the signature/public-key encodings
// built on top of it.
package curve

import (
	"math/big"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/nakasendo/tss/pkg/modinv"
)

// Point is either the distinguished identity (point at infinity) or an
// affine pair (X, Y) satisfying y^2 = x^3 + 7 (mod P). Using an explicit
// tag rather than a nil-pointer or (0,0) sentinel for infinity avoids a
// whole class of null-handling bugs in the group law.
type Point struct {
	infinity bool
	X, Y     *big.Int
}

// Identity is the point at infinity, the group's additive identity.
var Identity = Point{infinity: true}

// IsIdentity reports whether p is the point at infinity.
func (p Point) IsIdentity() bool { return p.infinity }

// NewAffine builds a Point from coordinates already known to be on-curve.
// It panics if they are not: component C's invariant is that every Point
// value either is the identity or satisfies the curve equation, so a
// violation here is an implementation defect, not recoverable input.
func NewAffine(x, y *big.Int) Point {
	p := Point{X: new(big.Int).Set(x), Y: new(big.Int).Set(y)}
	mustOnCurve(p)
	return p
}

// OnCurve reports whether p is the identity or satisfies y^2 = x^3 + 7 (mod P).
func OnCurve(p Point) bool {
	if p.infinity {
		return true
	}
	lhs := new(big.Int).Mul(p.Y, p.Y)
	lhs.Mod(lhs, P)

	rhs := new(big.Int).Mul(p.X, p.X)
	rhs.Mul(rhs, p.X)
	rhs.Add(rhs, B)
	rhs.Mod(rhs, P)

	return lhs.Cmp(rhs) == 0
}

func mustOnCurve(p Point) {
	if !OnCurve(p) {
		panic("curve: point is not on the secp256k1 curve")
	}
}

// Neg returns -p.
func Neg(p Point) Point {
	mustOnCurve(p)
	if p.infinity {
		return Identity
	}
	y := new(big.Int).Neg(p.Y)
	y.Mod(y, P)
	result := Point{X: new(big.Int).Set(p.X), Y: y}
	mustOnCurve(result)
	return result
}

// Equal reports whether p and q are the same point.
func Equal(p, q Point) bool {
	if p.infinity || q.infinity {
		return p.infinity == q.infinity
	}
	return p.X.Cmp(q.X) == 0 && p.Y.Cmp(q.Y) == 0
}

// Add returns p + q according to the secp256k1 group law.
func Add(p, q Point) Point {
	mustOnCurve(p)
	mustOnCurve(q)

	if p.infinity {
		return q
	}
	if q.infinity {
		return p
	}
	if Equal(p, Neg(q)) {
		return Identity
	}

	var m *big.Int
	if Equal(p, q) {
		// m = (3x^2) * (2y)^-1 mod P  (a = 0 drops out of the numerator)
		num := new(big.Int).Mul(p.X, p.X)
		num.Mul(num, big.NewInt(3))
		den := new(big.Int).Lsh(p.Y, 1)
		inv := modinv.MustInverse(den, P)
		m = num.Mul(num, inv)
		m.Mod(m, P)
	} else {
		// m = (y1 - y2) * (x1 - x2)^-1 mod P
		num := new(big.Int).Sub(p.Y, q.Y)
		den := new(big.Int).Sub(p.X, q.X)
		inv := modinv.MustInverse(den, P)
		m = num.Mul(num, inv)
		m.Mod(m, P)
	}

	x3 := new(big.Int).Mul(m, m)
	x3.Sub(x3, p.X)
	x3.Sub(x3, q.X)
	x3.Mod(x3, P)
	if x3.Sign() < 0 {
		x3.Add(x3, P)
	}

	y3 := new(big.Int).Sub(p.X, x3)
	y3.Mul(y3, m)
	y3.Sub(y3, p.Y)
	y3.Mod(y3, P)
	if y3.Sign() < 0 {
		y3.Add(y3, P)
	}

	result := Point{X: x3, Y: y3}
	mustOnCurve(result)
	return result
}

// ScalarMul returns k*p via double-and-add over the bits of k from LSB to
// MSB. This is the literal, auditable algorithm spec.md's invariants (1) and
// (2) are tested against, so it stays explicit math/big rather than a
// library call, even though G-only multiplication has a faster path below.
func ScalarMul(k *big.Int, p Point) Point {
	mustOnCurve(p)

	kMod := new(big.Int).Mod(k, N)
	if kMod.Sign() == 0 || p.infinity {
		return Identity
	}
	if k.Sign() < 0 {
		return ScalarMul(new(big.Int).Neg(k), Neg(p))
	}

	result := Identity
	addend := p
	for i := kMod.BitLen(); i > 0; i-- {
		if kMod.Bit(0) == 1 {
			result = Add(result, addend)
		}
		addend = Add(addend, addend)
		kMod.Rsh(kMod, 1)
	}
	mustOnCurve(result)
	return result
}

// ScalarBaseMul returns k*G using decred's optimized Jacobian-coordinate
// implementation. ECDSA signing and every JVRSS round compute one
// base-point multiplication per participant, making this the hot path
// where a specialized field-arithmetic library earns its keep; the result
// is still checked against OnCurve before it leaves this package, so the
// spec's "every result is required to satisfy on_curve" invariant holds
// regardless of which implementation produced it.
func ScalarBaseMul(k *big.Int) Point {
	kMod := new(big.Int).Mod(k, N)
	if kMod.Sign() == 0 {
		return Identity
	}

	var scalar secp256k1.ModNScalar
	scalar.SetByteSlice(padTo32(kMod))

	var jacobian secp256k1.JacobianPoint
	secp256k1.ScalarBaseMultNonConst(&scalar, &jacobian)
	jacobian.ToAffine()

	xBytes := jacobian.X.Bytes()
	yBytes := jacobian.Y.Bytes()
	result := Point{X: new(big.Int).SetBytes(xBytes[:]), Y: new(big.Int).SetBytes(yBytes[:])}
	mustOnCurve(result)
	return result
}

// padTo32 returns v's big-endian representation padded to 32 bytes, the
// fixed width ModNScalar.SetByteSlice and the DER/compact codecs expect.
func padTo32(v *big.Int) []byte {
	b := v.Bytes()
	if len(b) >= 32 {
		return b
	}
	out := make([]byte, 32)
	copy(out[32-len(b):], b)
	return out
}
