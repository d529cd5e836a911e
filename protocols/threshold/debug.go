package threshold

import (
	"math/big"

	"github.com/nakasendo/tss/pkg/curve"
	"github.com/nakasendo/tss/pkg/modinv"
)

// Trace exposes the intermediate values of a JVRSS round that a real
// deployment would never reconstruct in one place: the reassembled secret
// itself. It exists only to let tests assert the protocol's algebra is
// self-consistent (shares really do interpolate back to the secret behind
// the published public key); production signing never calls DebugJVRSS.
type Trace struct {
	Secret       *big.Int
	ModInvSecret *big.Int
	PublicKey    curve.Point
	Shares       []*big.Int
}

// DebugJVRSS runs JVRSS and also returns the reconstructed secret, its
// modular inverse, and the shares, for test assertions only.
func (c *Context) DebugJVRSS() (*Trace, error) {
	shares, publicKey, err := c.JVRSS()
	if err != nil {
		return nil, err
	}
	points, err := samplePoints(SharesToPoints(shares), c.KeyThreshold)
	if err != nil {
		return nil, err
	}
	secret, err := c.RestoreKey(points)
	if err != nil {
		return nil, err
	}
	modInv, err := modinv.Inverse(secret, curve.N)
	if err != nil {
		return nil, err
	}
	return &Trace{Secret: secret, ModInvSecret: modInv, PublicKey: publicKey, Shares: shares}, nil
}
