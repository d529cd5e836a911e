package threshold

import (
	"crypto/rand"
	"math/big"

	"github.com/nakasendo/tss/pkg/polynomial"
)

// samplePoints draws k distinct points from points uniformly at random
// without replacement, via a Fisher-Yates shuffle seeded from crypto/rand.
// Any k of the group's shares are interchangeable for interpolation, so
// the choice only needs to avoid a fixed, predictable subset.
func samplePoints(points []polynomial.Point, k int) ([]polynomial.Point, error) {
	pool := make([]polynomial.Point, len(points))
	copy(pool, points)
	for i := len(pool) - 1; i > 0; i-- {
		j, err := randIntn(i + 1)
		if err != nil {
			return nil, err
		}
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:k], nil
}

func randIntn(n int) (int, error) {
	max := big.NewInt(int64(n))
	v, err := rand.Int(rand.Reader, max)
	if err != nil {
		return 0, err
	}
	return int(v.Int64()), nil
}
