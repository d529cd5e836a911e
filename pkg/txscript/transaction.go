// Package txscript builds and signs Bitcoin transactions around
// pkg/curve, pkg/ecdsa, and pkg/bitcoin: BIP-143 per-input sighash digests,
// output serialization, unlocking-script assembly, and final raw-transaction
// encoding. This is the transaction-building path that spec.md's ECDSA
// component only gestures at through "external signer" framing; we give it
// a concrete home since the original reference implementation carries a
// complete, runnable version of it.
package txscript

import (
	"encoding/binary"
	"encoding/hex"
	"math/big"

	"github.com/nakasendo/tss/pkg/bitcoin"
	"github.com/nakasendo/tss/pkg/curve"
	"github.com/nakasendo/tss/pkg/ecdsa"
	"github.com/nakasendo/tss/pkg/tserr"
)

// Sighash flags. SighashAll|SighashForkID is the only combination this
// package signs and verifies, matching the Bitcoin Cash / Bitcoin SV
// BIP-143 usage the reference implementation targets.
const (
	SighashAll    = 0x01
	SighashForkID = 0x40
	SighashAllForkID = SighashAll | SighashForkID
)

var (
	txVersion  = le32(1)
	sequence   = [4]byte{0xff, 0xff, 0xff, 0xff}
	lockTimeZero = le32(0)
)

func le32(v uint32) []byte {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, v)
	return b
}

func le64(v uint64) []byte {
	b := make([]byte, 8)
	binary.LittleEndian.PutUint64(b, v)
	return b
}

// TxIn is one transaction input: the outpoint being spent (txid, index),
// the value and locking script it carries, and the unlocking script filled
// in after signing.
type TxIn struct {
	Satoshi        uint64
	TxID           [32]byte // internal byte order (already reversed from wire hex)
	Index          uint32
	LockingScript  []byte // raw script, without its length prefix
	Sequence       [4]byte
	UnlockingScript []byte
}

// NewTxIn builds a TxIn from a wire-order txid hex string (as printed by
// block explorers) and a hex-encoded locking script.
func NewTxIn(satoshi uint64, txidHex string, index uint32, lockingScriptHex string) (TxIn, error) {
	txid, err := hex.DecodeString(txidHex)
	if err != nil || len(txid) != 32 {
		return TxIn{}, tserr.New(tserr.InvalidEncoding, "txscript: malformed txid")
	}
	script, err := hex.DecodeString(lockingScriptHex)
	if err != nil {
		return TxIn{}, tserr.New(tserr.InvalidEncoding, "txscript: malformed locking script")
	}
	var id [32]byte
	for i := 0; i < 32; i++ {
		id[i] = txid[31-i]
	}
	return TxIn{Satoshi: satoshi, TxID: id, Index: index, LockingScript: script, Sequence: sequence}, nil
}

func (in TxIn) outpoint() []byte {
	out := make([]byte, 0, 36)
	out = append(out, in.TxID[:]...)
	out = append(out, le32(in.Index)...)
	return out
}

func (in TxIn) lockingScriptWithLen() []byte {
	return append(bitcoin.Varint(uint64(len(in.LockingScript))), in.LockingScript...)
}

// TxOut is one transaction output: a P2PKH destination address and a value.
type TxOut struct {
	Address string
	Satoshi uint64
}

// SerializeOutputs encodes outputs as the concatenation of
// (satoshi || locking_script) for each, the representation BIP-143 hashes
// and the raw transaction embeds.
func SerializeOutputs(outputs []TxOut) ([]byte, error) {
	var out []byte
	for _, o := range outputs {
		pkh, err := bitcoin.AddressToPublicKeyHash(o.Address)
		if err != nil {
			return nil, err
		}
		out = append(out, le64(o.Satoshi)...)
		out = append(out, bitcoin.BuildLockingScript(pkh)...)
	}
	return out, nil
}

// TransactionDigest returns the BIP-143 sighash digest for each input in
// inputs, signing the same outputs and lock time, under sighash. Only
// SighashAllForkID is implemented; anything else is rejected.
func TransactionDigest(inputs []TxIn, outputs []TxOut, lockTime uint32, sighash uint32) ([][]byte, error) {
	if sighash != SighashAllForkID {
		return nil, tserr.New(tserr.UnsupportedSighash, "txscript: unsupported sighash value")
	}

	var prevouts, sequences []byte
	for _, in := range inputs {
		prevouts = append(prevouts, in.outpoint()...)
		sequences = append(sequences, in.Sequence[:]...)
	}
	hashPrevouts := bitcoin.DoubleSHA256(prevouts)
	hashSequence := bitcoin.DoubleSHA256(sequences)

	outBytes, err := SerializeOutputs(outputs)
	if err != nil {
		return nil, err
	}
	hashOutputs := bitcoin.DoubleSHA256(outBytes)

	lt := le32(lockTime)
	sh := le32(sighash)

	digests := make([][]byte, len(inputs))
	for i, in := range inputs {
		var preimage []byte
		preimage = append(preimage, txVersion...)
		preimage = append(preimage, hashPrevouts...)
		preimage = append(preimage, hashSequence...)
		preimage = append(preimage, in.outpoint()...)
		preimage = append(preimage, in.lockingScriptWithLen()...)
		preimage = append(preimage, le64(in.Satoshi)...)
		preimage = append(preimage, in.Sequence[:]...)
		preimage = append(preimage, hashOutputs...)
		preimage = append(preimage, lt...)
		preimage = append(preimage, sh...)
		digests[i] = bitcoin.DoubleSHA256(preimage)
	}
	return digests, nil
}

// SerializeTransaction encodes the final signed transaction: every TxIn
// must already carry its UnlockingScript.
func SerializeTransaction(inputs []TxIn, outputs []TxOut, lockTime uint32) ([]byte, error) {
	var raw []byte
	raw = append(raw, txVersion...)
	raw = append(raw, bitcoin.Varint(uint64(len(inputs)))...)
	for _, in := range inputs {
		raw = append(raw, in.TxID[:]...)
		raw = append(raw, le32(in.Index)...)
		raw = append(raw, bitcoin.Varint(uint64(len(in.UnlockingScript)))...)
		raw = append(raw, in.UnlockingScript...)
		raw = append(raw, in.Sequence[:]...)
	}
	outBytes, err := SerializeOutputs(outputs)
	if err != nil {
		return nil, err
	}
	raw = append(raw, bitcoin.Varint(uint64(len(outputs)))...)
	raw = append(raw, outBytes...)
	raw = append(raw, le32(lockTime)...)
	return raw, nil
}

// BuildUnlockingScript assembles a P2PKH unlocking script:
// PUSH(der_sig || sighash_byte) PUSH(serialized_pubkey).
func BuildUnlockingScript(sig curve.Signature, sighash byte, pubKey curve.Point, compressed bool) []byte {
	der := curve.SerializeDER(sig)
	pub := curve.SerializePublicKey(pubKey, compressed)

	sigPush := append(append([]byte{}, der...), sighash)
	out := make([]byte, 0, 1+len(sigPush)+1+len(pub))
	out = append(out, byte(len(sigPush)))
	out = append(out, sigPush...)
	out = append(out, byte(len(pub)))
	out = append(out, pub...)
	return out
}

// TxID returns the little-endian-reversed double-SHA-256 of a serialized
// transaction, the conventional display form of a transaction hash.
func TxID(rawTransaction []byte) []byte {
	h := bitcoin.DoubleSHA256(rawTransaction)
	out := make([]byte, len(h))
	for i := range h {
		out[i] = h[len(h)-1-i]
	}
	return out
}

// digestInt maps a BIP-143 digest onto the integer ecdsa.Sign expects.
func digestInt(digest []byte) *big.Int {
	return new(big.Int).SetBytes(digest)
}

// SignInputs computes the BIP-143 digest for each input, signs it with d,
// and fills in each input's UnlockingScript and length, in place and in
// order. inputs and outputs together determine the digests, so all inputs
// must be present even when only a subset is being signed in this call.
func SignInputs(d *big.Int, inputs []TxIn, outputs []TxOut, lockTime uint32) error {
	digests, err := TransactionDigest(inputs, outputs, lockTime, SighashAllForkID)
	if err != nil {
		return err
	}
	Q := curve.ScalarBaseMul(d)
	for i := range inputs {
		sig, err := ecdsa.Sign(d, digestInt(digests[i]))
		if err != nil {
			return err
		}
		inputs[i].UnlockingScript = BuildUnlockingScript(sig, SighashAllForkID, Q, true)
	}
	return nil
}
