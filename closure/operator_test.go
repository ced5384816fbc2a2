package closure_test

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"

	"github.com/they4kman/experimentation/bruteforce/sacred-geometry/closure"
)

var _ = Describe("Operator", func() {
	DescribeTable("Apply",
		func(op closure.Operator, l, r uint64, expected uint64, expectedOk bool) {
			value, ok := op.Apply(l, r)
			Expect(ok).To(Equal(expectedOk))
			if expectedOk {
				Expect(value).To(Equal(expected))
			}
		},
		Entry("2+3", closure.Add, uint64(2), uint64(3), uint64(5), true),
		Entry("5-3", closure.Sub, uint64(5), uint64(3), uint64(2), true),
		Entry("3-5 would be negative", closure.Sub, uint64(3), uint64(5), uint64(0), false),
		Entry("3<->5", closure.SubReverse, uint64(3), uint64(5), uint64(2), true),
		Entry("5<->3 would be negative", closure.SubReverse, uint64(5), uint64(3), uint64(0), false),
		Entry("4-4", closure.Sub, uint64(4), uint64(4), uint64(0), true),
		Entry("2*3", closure.Mul, uint64(2), uint64(3), uint64(6), true),
		Entry("6/3", closure.Div, uint64(6), uint64(3), uint64(2), true),
		Entry("7/3 is fractional", closure.Div, uint64(7), uint64(3), uint64(0), false),
		Entry("2/0", closure.Div, uint64(2), uint64(0), uint64(0), false),
		Entry("0/2", closure.Div, uint64(0), uint64(2), uint64(0), true),
		Entry("3</>6", closure.DivReverse, uint64(3), uint64(6), uint64(2), true),
		Entry("0</>2", closure.DivReverse, uint64(0), uint64(2), uint64(0), false),
		Entry("2</>0", closure.DivReverse, uint64(2), uint64(0), uint64(0), true),
	)

	DescribeTable("Normalize",
		func(op closure.Operator, expected closure.Operator, expectedSwapped bool) {
			normalized, swapped := op.Normalize()
			Expect(normalized).To(Equal(expected))
			Expect(swapped).To(Equal(expectedSwapped))
		},
		Entry("Add", closure.Add, closure.Add, false),
		Entry("Sub", closure.Sub, closure.Sub, false),
		Entry("SubReverse", closure.SubReverse, closure.Sub, true),
		Entry("Mul", closure.Mul, closure.Mul, false),
		Entry("Div", closure.Div, closure.Div, false),
		Entry("DivReverse", closure.DivReverse, closure.Div, true),
	)

	It("should keep reversed operators distinguishable when printed raw", func() {
		Expect(closure.SubReverse.String()).To(Equal("<->"))
		Expect(closure.DivReverse.String()).To(Equal("</>"))
		Expect(closure.SubReverse.Symbol()).To(Equal("-"))
		Expect(closure.DivReverse.Symbol()).To(Equal("/"))
	})
})
