// Package ecdsa implements ECDSA signing, verification, and public-key
// recovery against the Bitcoin "signed message" and BIP-143
// transaction-digest conventions, built on pkg/curve's group law and
// pkg/modinv's modular inverse.
//
// Unlike the Python reference this toolkit generalizes, k is drawn from
// crypto/rand: a biased or reused ephemeral nonce leaks the private key,
// so this is a correctness requirement, not a stylistic upgrade.
package ecdsa

import (
	"crypto/rand"
	"math/big"

	"github.com/nakasendo/tss/pkg/curve"
	"github.com/nakasendo/tss/pkg/modinv"
	"github.com/nakasendo/tss/pkg/tserr"
)

// HashToInt interprets an already-computed double-SHA-256 digest as a
// big-endian integer, the "e" term in the signing/verification equations.
// It does no hashing itself.
func HashToInt(doubleSHA256 []byte) *big.Int {
	return new(big.Int).SetBytes(doubleSHA256)
}

// randScalar draws a uniform value in [1, max) from a cryptographically
// secure source via rejection sampling.
func randScalar(max *big.Int) (*big.Int, error) {
	limit := new(big.Int).Sub(max, big.NewInt(1))
	for {
		k, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return nil, err
		}
		k.Add(k, big.NewInt(1))
		if k.Sign() != 0 {
			return k, nil
		}
	}
}

// Sign produces a raw ECDSA signature (r, s) over e = hash-to-int(digest)
// using private key d, redrawing k whenever r or s lands on zero.
func Sign(d *big.Int, digestInt *big.Int) (curve.Signature, error) {
	for {
		k, err := randScalar(curve.N)
		if err != nil {
			return curve.Signature{}, err
		}
		kG := curve.ScalarBaseMul(k)
		r := new(big.Int).Mod(kG.X, curve.N)
		if r.Sign() == 0 {
			continue
		}
		kInv := modinv.MustInverse(k, curve.N)
		s := new(big.Int).Mul(r, d)
		s.Add(s, digestInt)
		s.Mul(s, kInv)
		s.Mod(s, curve.N)
		if s.Sign() == 0 {
			continue
		}
		return curve.Signature{R: r, S: s}, nil
	}
}

// SignRecoverable is Sign plus the recovery_id that lets a verifier
// reconstruct d*G from (digest, signature) alone. Per the documented
// redesign of the reference implementation's recovery_id assembly, both
// the overflow bit and the parity bit are always set correctly:
// recovery_id = (2 if kG.x >= n else 0) | (kG.y mod 2).
func SignRecoverable(d *big.Int, digestInt *big.Int) (curve.RecoverableSignature, error) {
	for {
		k, err := randScalar(curve.N)
		if err != nil {
			return curve.RecoverableSignature{}, err
		}
		kG := curve.ScalarBaseMul(k)
		r := new(big.Int).Mod(kG.X, curve.N)
		if r.Sign() == 0 {
			continue
		}
		recoveryID := byte(kG.Y.Bit(0))
		if kG.X.Cmp(curve.N) >= 0 {
			recoveryID |= 2
		}
		kInv := modinv.MustInverse(k, curve.N)
		s := new(big.Int).Mul(r, d)
		s.Add(s, digestInt)
		s.Mul(s, kInv)
		s.Mod(s, curve.N)
		if s.Sign() == 0 {
			continue
		}
		return curve.RecoverableSignature{RecoveryID: recoveryID, R: r, S: s}, nil
	}
}

// Verify reports whether sig is a valid signature over e by Q, per
// spec.md's component E: reject out-of-range r/s, and accept iff the
// recomputed x-coordinate equals r.
func Verify(Q curve.Point, digestInt *big.Int, sig curve.Signature) bool {
	if !inRange(sig.R) || !inRange(sig.S) {
		return false
	}
	w := modinv.MustInverse(sig.S, curve.N)
	u1 := new(big.Int).Mul(w, digestInt)
	u1.Mod(u1, curve.N)
	u2 := new(big.Int).Mul(w, sig.R)
	u2.Mod(u2, curve.N)

	sum := curve.Add(curve.ScalarMul(u1, curve.G), curve.ScalarMul(u2, Q))
	if sum.IsIdentity() {
		return false
	}
	x := new(big.Int).Mod(sum.X, curve.N)
	return x.Cmp(sig.R) == 0
}

func inRange(v *big.Int) bool {
	return v.Sign() > 0 && v.Cmp(curve.N) < 0
}

// RecoverPublicKey reconstructs the public key Q from a recoverable
// signature and the digest it was produced over, such that
// Verify(Q, digestInt, (r,s)) holds afterward.
func RecoverPublicKey(sig curve.RecoverableSignature, digestInt *big.Int) (curve.Point, error) {
	x := new(big.Int).Set(sig.R)
	if sig.RecoveryID >= 2 {
		x.Add(x, curve.N)
	}

	ySquared := new(big.Int).Mul(x, x)
	ySquared.Mul(ySquared, x)
	ySquared.Add(ySquared, curve.B)
	ySquared.Mod(ySquared, curve.P)

	exp := new(big.Int).Rsh(new(big.Int).Add(curve.P, big.NewInt(1)), 2)
	y := new(big.Int).Exp(ySquared, exp, curve.P)
	if y.Bit(0) != uint(sig.RecoveryID&1) {
		y.Sub(curve.P, y)
	}

	R := curve.NewAffine(x, y)

	rInv := modinv.MustInverse(sig.R, curve.N)
	sR := curve.ScalarMul(sig.S, R)
	eG := curve.ScalarMul(new(big.Int).Mod(new(big.Int).Neg(digestInt), curve.N), curve.G)
	sum := curve.Add(sR, eG)
	Q := curve.ScalarMul(rInv, sum)

	if Q.IsIdentity() {
		return curve.Point{}, tserr.New(tserr.OutOfRange, "ecdsa: recovered point is the identity")
	}
	return Q, nil
}
