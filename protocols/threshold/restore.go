package threshold

import (
	"math/big"

	"github.com/nakasendo/tss/pkg/polynomial"
	"github.com/nakasendo/tss/pkg/tserr"
)

// RestoreKey reconstructs the group private key from at least KeyThreshold
// (participant_id, share) points. This is the one operation in the
// protocol that deliberately concentrates the secret in one place, and
// exists for key export/escrow, not for routine signing.
func (c *Context) RestoreKey(points []polynomial.Point) (*big.Int, error) {
	if len(points) < c.KeyThreshold {
		return nil, tserr.New(tserr.InsufficientShares, "threshold: not enough shares to restore the key")
	}
	return polynomial.InterpolateEvaluateInt(points, 0)
}
