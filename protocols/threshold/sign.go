package threshold

import (
	"encoding/base64"
	"math/big"

	"github.com/nakasendo/tss/pkg/bitcoin"
	"github.com/nakasendo/tss/pkg/curve"
	"github.com/nakasendo/tss/pkg/ecdsa"
	"github.com/nakasendo/tss/pkg/polynomial"
)

// SignRecoverable produces a recoverable ECDSA signature over digest using
// the group's distributed private key, without any participant (or the
// caller) ever holding the full key or the full ephemeral nonce k.
//
// Each retry runs a fresh JVRSS for k: k's shares never leave this round,
// only k's public point k*G (needed for r and the recovery bit) and u
// shares of k^-1 ever become visible, via INVSS.
func (c *Context) SignRecoverable(digest []byte) (curve.RecoverableSignature, error) {
	e := ecdsa.HashToInt(bitcoin.DoubleSHA256(digest))

	var recoveryID byte
	r := new(big.Int)
	s := new(big.Int)

	for s.Sign() == 0 {
		var kInvShares []*big.Int
		r.SetInt64(0)
		for r.Sign() == 0 {
			kShares, kPublicKey, err := c.JVRSS()
			if err != nil {
				return curve.RecoverableSignature{}, err
			}
			r.Mod(kPublicKey.X, curve.N)
			recoveryID = byte(kPublicKey.Y.Bit(0))
			if kPublicKey.X.Cmp(curve.N) >= 0 {
				recoveryID |= 2
			}
			kInvShares, err = c.INVSS(kShares)
			if err != nil {
				return curve.RecoverableSignature{}, err
			}
		}

		sShares := make([]*big.Int, c.GroupSize)
		for i := range sShares {
			term := new(big.Int).Mul(r, c.Shares[i])
			term.Add(term, e)
			term.Mul(term, kInvShares[i])
			sShares[i] = term.Mod(term, curve.N)
		}

		points, err := samplePoints(SharesToPoints(sShares), c.SignatureThreshold)
		if err != nil {
			return curve.RecoverableSignature{}, err
		}
		sv, err := polynomial.InterpolateEvaluateInt(points, 0)
		if err != nil {
			return curve.RecoverableSignature{}, err
		}
		s = sv
	}

	return curve.RecoverableSignature{RecoveryID: recoveryID, R: r, S: s}, nil
}

// SignMessage signs plainText under the Bitcoin "signed message" digest
// convention, returning the group's P2PKH address and the Base64-encoded
// compact recoverable signature.
func (c *Context) SignMessage(plainText string) (address string, signature string, err error) {
	digest := bitcoin.MessageDigest(plainText)
	sig, err := c.SignRecoverable(digest)
	if err != nil {
		return "", "", err
	}
	addr := bitcoin.PublicKeyToAddress(c.PublicKey, true)
	compact := curve.SerializeCompact(sig, true)
	return addr, base64.StdEncoding.EncodeToString(compact), nil
}
