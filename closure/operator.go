package closure

// Operator is a directed binary operator. Subtraction and division are not
// commutative, so both operand orders get their own Operator rather than
// swapping which expression is the left operand.
type Operator uint8

const (
	Add Operator = iota
	Sub
	SubReverse
	Mul
	Div
	DivReverse
)

// operators is the order every anchor/candidate pair is tried in
var operators = [...]Operator{Add, Sub, SubReverse, Mul, Div, DivReverse}

// Apply computes l op r, reporting false when the result would be negative or fractional
func (op Operator) Apply(l, r uint64) (uint64, bool) {
	switch op {
	case Add:
		return l + r, true
	case Sub:
		if l < r {
			return 0, false
		}
		return l - r, true
	case SubReverse:
		if r < l {
			return 0, false
		}
		return r - l, true
	case Mul:
		return l * r, true
	case Div:
		if r == 0 || l%r != 0 {
			return 0, false
		}
		return l / r, true
	case DivReverse:
		if l == 0 || r%l != 0 {
			return 0, false
		}
		return r / l, true
	}
	return 0, false
}

// Normalize maps a reversed operator onto its plain form.
// swapped reports whether the operands must trade places to keep the same result.
func (op Operator) Normalize() (normalized Operator, swapped bool) {
	switch op {
	case SubReverse:
		return Sub, true
	case DivReverse:
		return Div, true
	default:
		return op, false
	}
}

// Symbol is the infix symbol of the normalized operator
func (op Operator) Symbol() string {
	normalized, _ := op.Normalize()
	switch normalized {
	case Add:
		return "+"
	case Sub:
		return "-"
	case Mul:
		return "*"
	case Div:
		return "/"
	}
	return "?"
}

func (op Operator) String() string {
	switch op {
	case SubReverse:
		return "<->"
	case DivReverse:
		return "</>"
	default:
		return op.Symbol()
	}
}
