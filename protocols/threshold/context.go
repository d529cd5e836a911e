// Package threshold implements a joint verifiable random secret sharing
// (JVRSS) threshold ECDSA signature scheme: a group of participants jointly
// generates a shared secp256k1 key pair with nobody ever holding the full
// private key, and any sufficiently large quorum can later produce a valid
// recoverable ECDSA signature without reconstructing it either.
//
// This is component H, built on pkg/curve (group law), pkg/ecdsa (the
// signature equations), pkg/polynomial (Shamir sharing and Lagrange
// interpolation), and pkg/bitcoin (message digests and addressing).
package threshold

import (
	"math/big"
	"strconv"

	"github.com/nakasendo/tss/pkg/curve"
	"github.com/nakasendo/tss/pkg/polynomial"
	"github.com/nakasendo/tss/pkg/tserr"
)

// Context holds one completed JVRSS run: every participant's share of the
// group private key and the group's shared public key. A Context is
// produced by NewContext and is immutable thereafter; signing operations
// take it as a receiver but spawn fresh, independent JVRSS runs internally
// for the ephemeral nonce k.
type Context struct {
	// GroupSize is n, the number of participants.
	GroupSize int
	// PolynomialOrder is t: polynomials sampled at order t hide the secret
	// from any t colluding participants.
	PolynomialOrder int
	// KeyThreshold is t+1, the minimum number of shares needed to
	// reconstruct the private key via Lagrange interpolation.
	KeyThreshold int
	// SignatureThreshold is 2t+1, the minimum number of shares needed to
	// interpolate a product-sharing (PROSS) result, required by signing.
	SignatureThreshold int

	// Shares holds participant i's share of the group private key at
	// index i (participant id i+1).
	Shares []*big.Int
	// PublicKey is the group's shared public key, d*G, where d is never
	// materialized by any single participant.
	PublicKey curve.Point
}

// NewContext runs JVRSS for a fresh group of groupSize participants whose
// key threshold is threshold (shares needed to restore the key; signing
// needs 2*threshold-1 shares), and returns the resulting Context.
// threshold must satisfy 2 <= threshold <= (groupSize-1)/2 + 1, and
// groupSize must be at least 3 — below that, no single participant can
// ever be outvoted by the rest of the group.
func NewContext(groupSize, threshold int) (*Context, error) {
	if groupSize < 3 {
		return nil, tserr.New(tserr.ThresholdMisconfigured, "threshold: group size must be at least 3")
	}
	order := threshold - 1
	keyThreshold := order + 1
	sigThreshold := 2*order + 1
	maxThreshold := (groupSize-1)/2 + 1
	if order < 1 || keyThreshold > groupSize || sigThreshold > groupSize {
		return nil, tserr.New(tserr.ThresholdMisconfigured, "threshold: threshold must be in [2, "+strconv.Itoa(maxThreshold)+"]")
	}

	ctx := &Context{
		GroupSize:          groupSize,
		PolynomialOrder:    order,
		KeyThreshold:       keyThreshold,
		SignatureThreshold: sigThreshold,
	}
	shares, publicKey, err := ctx.JVRSS()
	if err != nil {
		return nil, err
	}
	ctx.Shares = shares
	ctx.PublicKey = publicKey
	return ctx, nil
}

// SharesToPoints pairs each share with its 1-indexed participant id, the
// (x, y) form pkg/polynomial interpolation expects.
func SharesToPoints(shares []*big.Int) []polynomial.Point {
	points := make([]polynomial.Point, len(shares))
	for i, s := range shares {
		points[i] = polynomial.Point{X: int64(i + 1), Y: s}
	}
	return points
}
