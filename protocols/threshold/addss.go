package threshold

import (
	"fmt"
	"math/big"

	"github.com/nakasendo/tss/pkg/curve"
	"github.com/nakasendo/tss/pkg/polynomial"
)

// ADDSS returns the secret addition of a and b given only their shares,
// without either secret ever being reconstructed by the caller. Shares add
// share-wise since Shamir sharing is linear; the sum is recovered by
// interpolating any key-threshold-sized subset of the added shares.
func (c *Context) ADDSS(aShares, bShares []*big.Int) (*big.Int, error) {
	if len(aShares) != c.GroupSize || len(bShares) != c.GroupSize {
		return nil, fmt.Errorf("threshold: addss requires %d shares of each secret", c.GroupSize)
	}

	sum := make([]*big.Int, c.GroupSize)
	for i := range sum {
		sum[i] = new(big.Int).Add(aShares[i], bShares[i])
		sum[i].Mod(sum[i], curve.N)
	}

	points, err := samplePoints(SharesToPoints(sum), c.KeyThreshold)
	if err != nil {
		return nil, err
	}
	return polynomial.InterpolateEvaluateInt(points, 0)
}
