package curve_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nakasendo/tss/pkg/curve"
)

func TestGeneratorOnCurve(t *testing.T) {
	assert.True(t, curve.OnCurve(curve.G))
}

func TestScalarMulMatchesScalarBaseMul(t *testing.T) {
	k := big.NewInt(12345)
	fromGeneral := curve.ScalarMul(k, curve.G)
	fromFast := curve.ScalarBaseMul(k)
	assert.True(t, curve.Equal(fromGeneral, fromFast))
}

func TestScalarMulZeroIsIdentity(t *testing.T) {
	p := curve.ScalarMul(big.NewInt(0), curve.G)
	assert.True(t, p.IsIdentity())
}

func TestAddIdentityIsNoop(t *testing.T) {
	p := curve.ScalarBaseMul(big.NewInt(7))
	sum := curve.Add(p, curve.Identity)
	assert.True(t, curve.Equal(p, sum))
}

func TestAddNegationIsIdentity(t *testing.T) {
	p := curve.ScalarBaseMul(big.NewInt(7))
	sum := curve.Add(p, curve.Neg(p))
	assert.True(t, sum.IsIdentity())
}

func TestDoublingMatchesAddingToSelf(t *testing.T) {
	p := curve.ScalarBaseMul(big.NewInt(9))
	doubled := curve.Add(p, p)
	scaled := curve.ScalarBaseMul(big.NewInt(18))
	assert.True(t, curve.Equal(doubled, scaled))
}

func TestNewAffineRejectsOffCurvePoint(t *testing.T) {
	assert.Panics(t, func() {
		curve.NewAffine(big.NewInt(1), big.NewInt(2))
	})
}

func TestScalarBaseMulDistributesOverAddition(t *testing.T) {
	a, b := big.NewInt(41), big.NewInt(59)
	sum := new(big.Int).Add(a, b)
	lhs := curve.ScalarBaseMul(sum)
	rhs := curve.Add(curve.ScalarBaseMul(a), curve.ScalarBaseMul(b))
	require.True(t, curve.Equal(lhs, rhs))
}
