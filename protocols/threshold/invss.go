package threshold

import (
	"fmt"
	"math/big"

	"github.com/nakasendo/tss/pkg/curve"
	"github.com/nakasendo/tss/pkg/modinv"
)

// INVSS returns shares of the modular multiplicative inverse of a, given
// only a's shares, without a ever being reconstructed. It works by jointly
// generating a fresh random secret b via JVRSS, computing u = a*b via
// PROSS (which IS reconstructed — u reveals nothing about a since b is
// uniform and unknown), then distributing b's shares scaled by u^-1: each
// participant's share of a^-1 is u^-1 * b_i.
func (c *Context) INVSS(aShares []*big.Int) ([]*big.Int, error) {
	if len(aShares) != c.GroupSize {
		return nil, fmt.Errorf("threshold: invss requires %d shares", c.GroupSize)
	}

	bShares, _, err := c.JVRSS()
	if err != nil {
		return nil, err
	}

	u, err := c.PROSS(aShares, bShares)
	if err != nil {
		return nil, err
	}
	uInv, err := modinv.Inverse(u, curve.N)
	if err != nil {
		return nil, fmt.Errorf("threshold: %w", err)
	}

	inverseShares := make([]*big.Int, c.GroupSize)
	for i, bi := range bShares {
		s := new(big.Int).Mul(uInv, bi)
		inverseShares[i] = s.Mod(s, curve.N)
	}
	return inverseShares, nil
}
