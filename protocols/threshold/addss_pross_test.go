package threshold_test

import (
	"math/big"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/nakasendo/tss/pkg/curve"
	"github.com/nakasendo/tss/protocols/threshold"
)

var _ = Describe("ADDSS and PROSS", func() {
	It("adds and multiplies two jointly-shared secrets without reconstructing either", func() {
		ctx, err := threshold.NewContext(3, 2)
		Expect(err).NotTo(HaveOccurred())

		aTrace, err := ctx.DebugJVRSS()
		Expect(err).NotTo(HaveOccurred())
		bTrace, err := ctx.DebugJVRSS()
		Expect(err).NotTo(HaveOccurred())

		sum, err := ctx.ADDSS(aTrace.Shares, bTrace.Shares)
		Expect(err).NotTo(HaveOccurred())
		wantSum := new(big.Int).Add(aTrace.Secret, bTrace.Secret)
		wantSum.Mod(wantSum, curve.N)
		Expect(sum.Cmp(wantSum)).To(Equal(0))

		product, err := ctx.PROSS(aTrace.Shares, bTrace.Shares)
		Expect(err).NotTo(HaveOccurred())
		wantProduct := new(big.Int).Mul(aTrace.Secret, bTrace.Secret)
		wantProduct.Mod(wantProduct, curve.N)
		Expect(product.Cmp(wantProduct)).To(Equal(0))
	})

	It("rejects mismatched share counts", func() {
		ctx, err := threshold.NewContext(3, 2)
		Expect(err).NotTo(HaveOccurred())
		_, err = ctx.ADDSS([]*big.Int{big.NewInt(1)}, []*big.Int{big.NewInt(1)})
		Expect(err).To(HaveOccurred())
	})
})
