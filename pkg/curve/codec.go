package curve

import (
	"math/big"

	"github.com/nakasendo/tss/pkg/tserr"
)

// SerializePublicKey encodes a public-key point as compressed (33 bytes:
// 0x02/0x03 || x) or uncompressed (65 bytes: 0x04 || x || y).
func SerializePublicKey(p Point, compressed bool) []byte {
	mustOnCurve(p)
	x := padTo32(p.X)
	if compressed {
		prefix := byte(0x02)
		if p.Y.Bit(0) != 0 {
			prefix = 0x03
		}
		out := make([]byte, 0, 33)
		out = append(out, prefix)
		return append(out, x...)
	}
	y := padTo32(p.Y)
	out := make([]byte, 0, 65)
	out = append(out, 0x04)
	out = append(out, x...)
	return append(out, y...)
}

// ParsePublicKey decodes a compressed or uncompressed public key, recovering
// y from x for the compressed form via the curve equation.
func ParsePublicKey(data []byte) (Point, error) {
	switch {
	case len(data) == 33 && (data[0] == 0x02 || data[0] == 0x03):
		x := new(big.Int).SetBytes(data[1:])
		y, err := yFromX(x, data[0] == 0x03)
		if err != nil {
			return Point{}, err
		}
		return NewAffine(x, y), nil
	case len(data) == 65 && data[0] == 0x04:
		x := new(big.Int).SetBytes(data[1:33])
		y := new(big.Int).SetBytes(data[33:65])
		p := Point{X: x, Y: y}
		if !OnCurve(p) {
			return Point{}, tserr.New(tserr.OutOfRange, "curve: decoded point is not on the curve")
		}
		return p, nil
	default:
		return Point{}, tserr.New(tserr.InvalidEncoding, "curve: invalid public key encoding")
	}
}

// yFromX recovers y such that (x, y) is on-curve and y's parity matches
// wantOdd, using that P = 3 mod 4 so y = (y^2)^((P+1)/4) mod P is a square
// root.
func yFromX(x *big.Int, wantOdd bool) (*big.Int, error) {
	ySquared := new(big.Int).Mul(x, x)
	ySquared.Mul(ySquared, x)
	ySquared.Add(ySquared, B)
	ySquared.Mod(ySquared, P)

	exp := new(big.Int).Rsh(new(big.Int).Add(P, big.NewInt(1)), 2)
	y := new(big.Int).Exp(ySquared, exp, P)

	check := new(big.Int).Mul(y, y)
	check.Mod(check, P)
	if check.Cmp(ySquared) != 0 {
		return nil, tserr.New(tserr.OutOfRange, "curve: x has no square root mod P")
	}

	if (y.Bit(0) != 0) != wantOdd {
		y.Sub(P, y)
	}
	return y, nil
}
