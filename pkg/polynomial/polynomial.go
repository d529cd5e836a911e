// Package polynomial implements Shamir-style polynomials over the secp256k1
// curve order n: random sampling, point evaluation, coefficient-wise
// addition and convolution multiplication, and Lagrange interpolation at a
// chosen abscissa. This is component F, the algebraic core the threshold
// signature protocol (component H) is built on.
package polynomial

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/nakasendo/tss/pkg/curve"
	"github.com/nakasendo/tss/pkg/modinv"
	"github.com/nakasendo/tss/pkg/secret"
)

// Polynomial is an ordered coefficient vector [a0, a1, ..., at] over Fn.
// Coefficients are kept in secret.Scalar's hardened storage between uses,
// consistent with spec.md's note that polynomial coefficients are ephemeral
// secret material.
type Polynomial struct {
	coeffs []secret.Scalar
}

// Order is t, one less than the number of coefficients.
func (p *Polynomial) Order() int { return len(p.coeffs) - 1 }

// New builds a Polynomial from explicit coefficients, requiring at least 2
// (order >= 1).
func New(coefficients []*big.Int) (*Polynomial, error) {
	if len(coefficients) < 2 {
		return nil, fmt.Errorf("polynomial: need at least 2 coefficients, got %d", len(coefficients))
	}
	return &Polynomial{coeffs: secret.Slice(coefficients)}, nil
}

// Random samples a polynomial of the given order with every coefficient
// (including a0) drawn uniformly from [1, n) via crypto/rand.
func Random(order int) (*Polynomial, error) {
	if order < 1 {
		return nil, fmt.Errorf("polynomial: order must be positive, got %d", order)
	}
	coeffs := make([]*big.Int, order+1)
	for i := range coeffs {
		c, err := randNonZero()
		if err != nil {
			return nil, err
		}
		coeffs[i] = c
	}
	return New(coeffs)
}

func randNonZero() (*big.Int, error) {
	limit := new(big.Int).Sub(curve.N, big.NewInt(1))
	for {
		c, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return nil, err
		}
		c.Add(c, big.NewInt(1))
		if c.Sign() != 0 {
			return c, nil
		}
	}
}

// Coefficient returns ai, i.e. the plain big.Int view of coefficient i.
func (p *Polynomial) Coefficient(i int) *big.Int { return p.coeffs[i].Big() }

// Evaluate returns p(x) mod n. x = 0 returns a0 directly.
func (p *Polynomial) Evaluate(x *big.Int) *big.Int {
	if x.Sign() == 0 {
		return new(big.Int).Mod(p.coeffs[0].Big(), curve.N)
	}
	y := new(big.Int)
	xPow := big.NewInt(1)
	for _, c := range p.coeffs {
		term := new(big.Int).Mul(c.Big(), xPow)
		y.Add(y, term)
		xPow.Mul(xPow, x)
	}
	return y.Mod(y, curve.N)
}

// EvaluateInt is Evaluate for a small integer abscissa, the common case of
// evaluating at a 1-indexed participant id.
func (p *Polynomial) EvaluateInt(x int64) *big.Int {
	return p.Evaluate(big.NewInt(x))
}

// Add returns p + q, coefficient-wise mod n, preserving the longer
// polynomial's tail.
func Add(p, q *Polynomial) *Polynomial {
	n := len(p.coeffs)
	if len(q.coeffs) > n {
		n = len(q.coeffs)
	}
	coeffs := make([]*big.Int, n)
	for i := 0; i < n; i++ {
		sum := new(big.Int)
		if i < len(p.coeffs) {
			sum.Add(sum, p.coeffs[i].Big())
		}
		if i < len(q.coeffs) {
			sum.Add(sum, q.coeffs[i].Big())
		}
		coeffs[i] = sum.Mod(sum, curve.N)
	}
	out, _ := New(coeffs)
	return out
}

// Multiply returns p * q via convolution, with order = p.Order() + q.Order().
func Multiply(p, q *Polynomial) *Polynomial {
	coeffs := make([]*big.Int, len(p.coeffs)+len(q.coeffs)-1)
	for i := range coeffs {
		coeffs[i] = new(big.Int)
	}
	for i, a := range p.coeffs {
		for j, b := range q.coeffs {
			term := new(big.Int).Mul(a.Big(), b.Big())
			coeffs[i+j].Add(coeffs[i+j], term)
		}
	}
	for i := range coeffs {
		coeffs[i].Mod(coeffs[i], curve.N)
	}
	out, _ := New(coeffs)
	return out
}

// Point is one (participant_id, share) pair used as Lagrange interpolation
// input.
type Point struct {
	X int64
	Y *big.Int
}

// InterpolateEvaluate Lagrange-interpolates points and evaluates the result
// at x, requiring at least 2 points. Denominators are inverted mod n rather
// than divided as plain integers: unlike the reference implementation's
// integer-division shortcut (only exact when the denominator product
// divides the numerator sum), this is unconditionally correct, per
// spec.md's documented open question.
func InterpolateEvaluate(points []Point, x *big.Int) (*big.Int, error) {
	if len(points) < 2 {
		return nil, fmt.Errorf("polynomial: lagrange interpolation requires at least 2 points, got %d", len(points))
	}

	result := new(big.Int)
	for i := range points {
		num := big.NewInt(1)
		den := big.NewInt(1)
		xi := big.NewInt(points[i].X)
		for j := range points {
			if i == j {
				continue
			}
			xj := big.NewInt(points[j].X)

			numTerm := new(big.Int).Sub(x, xj)
			num.Mul(num, numTerm)
			num.Mod(num, curve.N)

			denTerm := new(big.Int).Sub(xi, xj)
			den.Mul(den, denTerm)
			den.Mod(den, curve.N)
		}
		denInv, err := modinv.Inverse(den, curve.N)
		if err != nil {
			return nil, fmt.Errorf("polynomial: %w", err)
		}
		term := new(big.Int).Mul(points[i].Y, num)
		term.Mul(term, denInv)
		result.Add(result, term)
	}
	return result.Mod(result, curve.N), nil
}

// InterpolateEvaluateInt is InterpolateEvaluate for a small integer
// abscissa, the common case of evaluating at 0 to recover a shared secret.
func InterpolateEvaluateInt(points []Point, x int64) (*big.Int, error) {
	return InterpolateEvaluate(points, big.NewInt(x))
}
