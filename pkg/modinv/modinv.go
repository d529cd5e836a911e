// Package modinv implements the extended Euclidean algorithm and the
// modular multiplicative inverse it is used to derive. This is the leaf
// dependency of curve arithmetic (component C) and is deliberately a hand
// implementation rather than a library call: it is itself the primitive the
// rest of the toolkit is grounded on, in the spirit of the reference
// Nakasendo threshold-signature demo this module generalizes.
package modinv

import (
	"math/big"

	"github.com/nakasendo/tss/pkg/tserr"
)

// ExtendedGCD returns (g, x, y) such that a*x + b*y = g = gcd(a, b).
func ExtendedGCD(a, b *big.Int) (g, x, y *big.Int) {
	oldR, r := new(big.Int).Set(a), new(big.Int).Set(b)
	oldS, s := big.NewInt(1), big.NewInt(0)
	oldT, t := big.NewInt(0), big.NewInt(1)

	quotient := new(big.Int)
	tmp := new(big.Int)

	for r.Sign() != 0 {
		quotient.Div(oldR, r)

		oldR, r = r, tmp.Sub(oldR, tmp.Mul(quotient, r))
		tmp = new(big.Int)

		oldS, s = s, new(big.Int).Sub(oldS, new(big.Int).Mul(quotient, s))
		oldT, t = t, new(big.Int).Sub(oldT, new(big.Int).Mul(quotient, t))
	}
	return oldR, oldS, oldT
}

// Inverse returns the modular multiplicative inverse of a mod n, normalized
// into [0, n). It requires gcd(a, n) = 1 and fails with tserr.NonInvertible
// otherwise, rather than returning a meaningless value.
func Inverse(a, n *big.Int) (*big.Int, error) {
	aMod := new(big.Int).Mod(a, n)
	g, x, _ := ExtendedGCD(aMod, n)
	if g.CmpAbs(big.NewInt(1)) != 0 {
		return nil, tserr.New(tserr.NonInvertible, "modinv: a and n are not coprime")
	}
	x.Mod(x, n)
	if x.Sign() < 0 {
		x.Add(x, n)
	}
	return x, nil
}

// MustInverse is Inverse but panics on failure, for call sites where
// coprimality is a caller-guaranteed invariant (e.g. n is known prime and a
// is known nonzero mod n).
func MustInverse(a, n *big.Int) *big.Int {
	x, err := Inverse(a, n)
	if err != nil {
		panic(err)
	}
	return x
}
