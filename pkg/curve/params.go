package curve

import (
	"math/big"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// params exposes the canonical secp256k1 constants through decred's
// specialized implementation instead of re-deriving them by hand, per the
// "specialized secp256k1 field arithmetic libraries are strongly preferred
// where available" design note.
var params = secp256k1.S256().Params()

// P is the field prime 2^256 - 2^32 - 977.
var P = params.P

// N is the curve order.
var N = params.N

// A and B are the curve coefficients in y^2 = x^3 + a*x + b.
var (
	A = big.NewInt(0)
	B = params.B
)

// G is the generator point.
var G = Point{X: new(big.Int).Set(params.Gx), Y: new(big.Int).Set(params.Gy)}

// H is the cofactor, 1 for secp256k1.
const H = 1

// half is n/2, used for low-S canonicalization (BIP-62).
var half = new(big.Int).Rsh(N, 1)
