package bitcoin

import (
	"github.com/nakasendo/tss/pkg/curve"
	"github.com/nakasendo/tss/pkg/tserr"
)

// PublicKeyHash returns hash160 of the public key's serialized form.
func PublicKeyHash(p curve.Point, compressed bool) []byte {
	return Hash160(curve.SerializePublicKey(p, compressed))
}

// PublicKeyToAddress returns the P2PKH address (Base58Check of
// 0x00 || hash160(pubkey)).
func PublicKeyToAddress(p curve.Point, compressed bool) string {
	payload := append([]byte{0x00}, PublicKeyHash(p, compressed)...)
	return Base58CheckEncode(payload)
}

// AddressToPublicKeyHash decodes a P2PKH address back to its 20-byte hash.
func AddressToPublicKeyHash(address string) ([]byte, error) {
	decoded, err := Base58CheckDecode(address)
	if err != nil {
		return nil, err
	}
	if len(decoded) != 21 || decoded[0] != 0x00 {
		return nil, tserr.New(tserr.InvalidEncoding, "bitcoin: not a P2PKH address")
	}
	return decoded[1:], nil
}

// P2PKH opcode constants.
const (
	OpDup         = 0x76
	OpHash160     = 0xa9
	OpPush20      = 0x14
	OpEqualVerify = 0x88
	OpCheckSig    = 0xac
)

// BuildLockingScript returns the P2PKH locking script for pkh, prefixed by
// its varint length as it appears embedded in a transaction output.
func BuildLockingScript(pkh []byte) []byte {
	script := make([]byte, 0, 25)
	script = append(script, OpDup, OpHash160, OpPush20)
	script = append(script, pkh...)
	script = append(script, OpEqualVerify, OpCheckSig)
	out := Varint(uint64(len(script)))
	return append(out, script...)
}
