package threshold_test

import (
	"math/big"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/nakasendo/tss/pkg/curve"
	"github.com/nakasendo/tss/pkg/polynomial"
	"github.com/nakasendo/tss/pkg/wallet"
	"github.com/nakasendo/tss/protocols/threshold"
)

var _ = Describe("NewContext", func() {
	It("rejects a group smaller than 3", func() {
		_, err := threshold.NewContext(2, 2)
		Expect(err).To(HaveOccurred())
	})

	It("rejects a threshold outside [2, (n-1)/2 + 1]", func() {
		_, err := threshold.NewContext(3, 3)
		Expect(err).To(HaveOccurred())
	})

	It("produces a group public key every participant's shares agree on", func() {
		ctx, err := threshold.NewContext(3, 2)
		Expect(err).NotTo(HaveOccurred())
		Expect(ctx.Shares).To(HaveLen(3))

		points := threshold.SharesToPoints(ctx.Shares)[:ctx.KeyThreshold]
		secret, err := ctx.RestoreKey(points)
		Expect(err).NotTo(HaveOccurred())

		Expect(curve.Equal(curve.ScalarBaseMul(secret), ctx.PublicKey)).To(BeTrue())
	})
})

var _ = Describe("restoring the key from shares", func() {
	It("agrees regardless of which quorum of shares is used", func() {
		ctx, err := threshold.NewContext(3, 2)
		Expect(err).NotTo(HaveOccurred())

		points := threshold.SharesToPoints(ctx.Shares)
		a, err := ctx.RestoreKey([]polynomial.Point{points[0], points[1]})
		Expect(err).NotTo(HaveOccurred())
		b, err := ctx.RestoreKey([]polynomial.Point{points[1], points[2]})
		Expect(err).NotTo(HaveOccurred())

		Expect(a.Cmp(b)).To(Equal(0))
	})

	It("refuses to restore below the key threshold", func() {
		ctx, err := threshold.NewContext(3, 2)
		Expect(err).NotTo(HaveOccurred())
		points := threshold.SharesToPoints(ctx.Shares)
		_, err = ctx.RestoreKey(points[:1])
		Expect(err).To(HaveOccurred())
	})
})

var _ = Describe("distributed signing", func() {
	It("produces a signature that verifies against the group's address", func() {
		ctx, err := threshold.NewContext(3, 2)
		Expect(err).NotTo(HaveOccurred())

		plain := "Threshold Signature Scheme Sign Test"
		address, signature, err := ctx.SignMessage(plain)
		Expect(err).NotTo(HaveOccurred())

		Expect(wallet.VerifyMessage(address, plain, signature)).To(BeTrue())
	})

	It("always serializes s at or below n/2", func() {
		ctx, err := threshold.NewContext(3, 2)
		Expect(err).NotTo(HaveOccurred())

		half := new(big.Int).Rsh(curve.N, 1)
		for i := 0; i < 3; i++ {
			sig, err := ctx.SignRecoverable([]byte("low-s check"))
			Expect(err).NotTo(HaveOccurred())
			der := curve.SerializeDER(curve.Signature{R: sig.R, S: sig.S})
			parsed, err := curve.DeserializeDER(der)
			Expect(err).NotTo(HaveOccurred())
			Expect(parsed.S.Cmp(half)).To(BeNumerically("<=", 0))
		}
	})
})

var _ = Describe("INVSS", func() {
	It("produces shares whose restored value is the modular inverse of the original secret", func() {
		ctx, err := threshold.NewContext(3, 2)
		Expect(err).NotTo(HaveOccurred())

		trace, err := ctx.DebugJVRSS()
		Expect(err).NotTo(HaveOccurred())

		inverseShares, err := ctx.INVSS(trace.Shares)
		Expect(err).NotTo(HaveOccurred())

		points := threshold.SharesToPoints(inverseShares)[:ctx.KeyThreshold]
		inverse, err := ctx.RestoreKey(points)
		Expect(err).NotTo(HaveOccurred())

		product := new(big.Int).Mul(trace.Secret, inverse)
		product.Mod(product, curve.N)
		Expect(product.Cmp(big.NewInt(1))).To(Equal(0))
	})
})
