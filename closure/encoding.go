package closure

// MaxNumbers is the largest number set an Engine can address: one usage bit per slot
const MaxNumbers = 24

// DefaultValueBits matches the 8-bit values of die-roll arithmetic
const DefaultValueBits = 8

// maxValueBits keeps value<<MaxNumbers inside a uint64 Key
const maxValueBits = 32

// Mask is the set of number slots consumed by an expression; bit i stands for slot i
type Mask uint32

// Key packs an expression's value and usage Mask as value||mask.
//
// For example, with the numbers [1, 1, 4], "1+1" is encoded as 2||110 (0b10110),
// and "1*4" as 4||101 (0b100101).
type Key uint64

// FullMask returns the Mask with all count slots consumed
func FullMask(count int) Mask {
	return Mask(1)<<count - 1
}

// EncodeKey packs value and mask for a number set of size count.
// Mask bits at or above count are dropped; value must already fit the value ceiling.
func EncodeKey(value uint64, mask Mask, count int) Key {
	return Key(value<<count | uint64(mask&FullMask(count)))
}

func (k Key) Value(count int) uint64 {
	return uint64(k) >> count
}

func (k Key) Mask(count int) Mask {
	return Mask(k) & FullMask(count)
}

// Arity is the number of slots consumed by the expression behind a mask
func (m Mask) Arity() int {
	n := 0
	for ; m != 0; m &= m - 1 {
		n++
	}
	return n
}
