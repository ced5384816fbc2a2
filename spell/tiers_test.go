package spell_test

import (
	"errors"
	"strings"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"

	"github.com/they4kman/experimentation/bruteforce/sacred-geometry/spell"
)

var _ = Describe("Tiers", func() {
	It("should cover spell levels 1 through 9", func() {
		tiers := spell.DefaultTiers()
		Expect(tiers.Validate()).To(Succeed())
		Expect(tiers.Levels()).To(Equal([]int{1, 2, 3, 4, 5, 6, 7, 8, 9}))
		Expect(tiers.Targets(9)).To(Equal([]uint{101, 103, 107}))
	})

	It("should deal the Sacred Geometry primes", func() {
		Expect(spell.DefaultTiers()).To(Equal(spell.Tiers{
			1: {3, 5, 7},
			2: {11, 13, 17},
			3: {19, 23, 29},
			4: {31, 37, 41},
			5: {43, 47, 53},
			6: {59, 61, 67},
			7: {71, 73, 79},
			8: {83, 89, 97},
			9: {101, 103, 107},
		}))
	})

	DescribeTable("PrimeTiers",
		func(levels, perLevel int, expected spell.Tiers) {
			Expect(spell.PrimeTiers(levels, perLevel)).To(Equal(expected))
		},
		Entry("no levels", 0, 3, spell.Tiers{}),
		Entry("no targets", 2, 0, spell.Tiers{}),
		Entry("one prime per level", 4, 1, spell.Tiers{1: {3}, 2: {5}, 3: {7}, 4: {11}}),
		Entry("skips odd composites", 1, 8, spell.Tiers{1: {3, 5, 7, 11, 13, 17, 19, 23}}),
	)

	It("should reject unknown levels", func() {
		_, err := spell.DefaultTiers().Targets(10)
		Expect(errors.Is(err, spell.ErrUnknownLevel)).To(BeTrue())
	})

	It("should load a tier table from YAML", func() {
		tiers, err := spell.LoadTiers(strings.NewReader(`
levels:
  0: [2]
  1: [3, 5, 7]
  2: [13, 11]
`))
		Expect(err).ToNot(HaveOccurred())
		Expect(tiers).To(Equal(spell.Tiers{
			0: {2},
			1: {3, 5, 7},
			2: {13, 11},
		}))
	})

	DescribeTable("LoadTiers rejects",
		func(doc string) {
			_, err := spell.LoadTiers(strings.NewReader(doc))
			Expect(errors.Is(err, spell.ErrInvalidTiers)).To(BeTrue(), "got %v", err)
		},
		Entry("no levels", "levels: {}\n"),
		Entry("a level without targets", "levels:\n  1: []\n"),
		Entry("a negative level", "levels:\n  -1: [3]\n"),
		Entry("negative targets", "levels:\n  1: [-3]\n"),
		Entry("malformed YAML", "levels: [\n"),
	)
})
