// Package wallet composes pkg/curve, pkg/ecdsa, and pkg/bitcoin into the
// Bitcoin "signed message" workflow: sign arbitrary text with a private key
// and produce a P2PKH address plus a compact, Base64 signature; verify the
// pair by recovering the public key and checking it hashes to the claimed
// address.
package wallet

import (
	"encoding/base64"
	"math/big"

	"github.com/nakasendo/tss/pkg/bitcoin"
	"github.com/nakasendo/tss/pkg/curve"
	"github.com/nakasendo/tss/pkg/ecdsa"
)

// SignMessage signs plainText with the private key d, returning the P2PKH
// address of d*G and the Base64-encoded compact recoverable signature.
func SignMessage(d *big.Int, plainText string) (address string, signature string, err error) {
	digest := bitcoin.MessageDigest(plainText)
	e := ecdsa.HashToInt(bitcoin.DoubleSHA256(digest))

	sig, err := ecdsa.SignRecoverable(d, e)
	if err != nil {
		return "", "", err
	}

	Q := curve.ScalarBaseMul(d)
	addr := bitcoin.PublicKeyToAddress(Q, true)
	compact := curve.SerializeCompact(curve.RecoverableSignature{RecoveryID: sig.RecoveryID, R: sig.R, S: sig.S}, true)
	return addr, base64.StdEncoding.EncodeToString(compact), nil
}

// VerifyMessage reports whether signature is a valid compact signature by
// the holder of p2pkhAddress over plainText.
func VerifyMessage(p2pkhAddress, plainText, signature string) bool {
	sigBytes, err := base64.StdEncoding.DecodeString(signature)
	if err != nil {
		return false
	}
	if len(sigBytes) != 65 {
		return false
	}
	compact, compressed, err := curve.DeserializeCompact(sigBytes)
	if err != nil {
		return false
	}

	digest := bitcoin.MessageDigest(plainText)
	e := ecdsa.HashToInt(bitcoin.DoubleSHA256(digest))

	Q, err := ecdsa.RecoverPublicKey(compact, e)
	if err != nil {
		return false
	}
	if !ecdsa.Verify(Q, e, curve.Signature{R: compact.R, S: compact.S}) {
		return false
	}

	wantHash, err := bitcoin.AddressToPublicKeyHash(p2pkhAddress)
	if err != nil {
		return false
	}
	gotHash := bitcoin.PublicKeyHash(Q, compressed)
	if len(wantHash) != len(gotHash) {
		return false
	}
	for i := range wantHash {
		if wantHash[i] != gotHash[i] {
			return false
		}
	}
	return true
}
