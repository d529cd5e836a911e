package threshold

import (
	"fmt"
	"math/big"

	"github.com/nakasendo/tss/pkg/curve"
	"github.com/nakasendo/tss/pkg/polynomial"
)

// PROSS returns the secret product of a and b given only their shares,
// without either secret ever being reconstructed by the caller. The
// product of two degree-t polynomials' shares lies on a degree-2t
// polynomial, so recovering it needs the signature threshold (2t+1)
// shares, not the key threshold.
func (c *Context) PROSS(aShares, bShares []*big.Int) (*big.Int, error) {
	if len(aShares) != c.GroupSize || len(bShares) != c.GroupSize {
		return nil, fmt.Errorf("threshold: pross requires %d shares of each secret", c.GroupSize)
	}

	product := make([]*big.Int, c.GroupSize)
	for i := range product {
		product[i] = new(big.Int).Mul(aShares[i], bShares[i])
		product[i].Mod(product[i], curve.N)
	}

	points, err := samplePoints(SharesToPoints(product), c.SignatureThreshold)
	if err != nil {
		return nil, err
	}
	return polynomial.InterpolateEvaluateInt(points, 0)
}
