package threshold

import (
	"context"
	"math/big"

	"golang.org/x/sync/errgroup"

	"github.com/nakasendo/tss/pkg/curve"
	"github.com/nakasendo/tss/pkg/polynomial"
)

// JVRSS runs one joint verifiable random secret sharing round: every
// participant samples an independent random polynomial of order t, sends
// participant j a CBOR-encoded share f_i(j), and the shares participant j
// receives from everyone sum to its share of a secret nobody ever holds in
// full. The corresponding public key is the sum of every participant's
// degree-0 term multiplied onto the generator.
//
// Polynomial sampling runs concurrently across participants: it is the only
// part of the round with no cross-participant dependency.
func (c *Context) JVRSS() ([]*big.Int, curve.Point, error) {
	polynomials := make([]*polynomial.Polynomial, c.GroupSize)

	g, _ := errgroup.WithContext(context.Background())
	for i := 0; i < c.GroupSize; i++ {
		i := i
		g.Go(func() error {
			p, err := polynomial.Random(c.PolynomialOrder)
			if err != nil {
				return err
			}
			polynomials[i] = p
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, curve.Point{}, err
	}

	// Every participant i sends participant j the share f_i(j), wrapped as
	// a simulated wire message; j's total share is the sum it unwraps.
	shares := make([]*big.Int, c.GroupSize)
	for j := range shares {
		shares[j] = new(big.Int)
	}
	for i := 0; i < c.GroupSize; i++ {
		for j := 0; j < c.GroupSize; j++ {
			fij := polynomials[i].EvaluateInt(int64(j + 1))
			data, err := marshalShare(i+1, j+1, fij)
			if err != nil {
				return nil, curve.Point{}, err
			}
			_, _, value, err := unmarshalShare(data)
			if err != nil {
				return nil, curve.Point{}, err
			}
			shares[j].Add(shares[j], value)
		}
	}
	for j := range shares {
		shares[j].Mod(shares[j], curve.N)
	}

	publicKey := curve.Identity
	for i := 0; i < c.GroupSize; i++ {
		publicKey = curve.Add(publicKey, curve.ScalarBaseMul(polynomials[i].Coefficient(0)))
	}

	return shares, publicKey, nil
}
