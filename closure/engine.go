package closure

import (
	"errors"
	"fmt"
)

var (
	ErrNoNumbers       = errors.New("at least one number is required")
	ErrTooManyNumbers  = fmt.Errorf("at most %d numbers can be combined", MaxNumbers)
	ErrValueOutOfRange = errors.New("value does not fit the value ceiling")
	ErrInvalidParams   = errors.New("invalid engine params")
	ErrBudgetExhausted = errors.New("closure set reached MaxExpressions")
	ErrNoSolution      = errors.New("target is not reachable")
	ErrUnknownKey      = errors.New("key not in closure set")
)

type Params struct {
	// Number of bits an expression value may occupy above the usage mask.
	// Candidate values that don't fit are skipped, never truncated.
	ValueBits int

	// Maximum number of expressions the closure set may hold before Solve
	// gives up with ErrBudgetExhausted. Leaves count too, so a positive budget
	// must leave room for every number. Set to 0 for no limit.
	MaxExpressions int
}

func DefaultParams() *Params {
	return &Params{
		ValueBits:      DefaultValueBits,
		MaxExpressions: 0,
	}
}

func (p *Params) Validate() error {
	if p.ValueBits < 1 || p.ValueBits > maxValueBits {
		return fmt.Errorf("%w: ValueBits %d must be within 1..%d", ErrInvalidParams, p.ValueBits, maxValueBits)
	}
	if p.MaxExpressions < 0 {
		return fmt.Errorf("%w: MaxExpressions %d must not be negative", ErrInvalidParams, p.MaxExpressions)
	}
	return nil
}

// MaxValue is the largest value an expression may take under p
func (p *Params) MaxValue() uint64 {
	return uint64(1)<<p.ValueBits - 1
}

// Record is one expression in the closure set: either a leaf wrapping a
// single number slot, or Left Op Right over two disjoint sub-expressions.
type Record struct {
	// Index of the number a leaf wraps; -1 for internal nodes
	Slot int

	Left  Key
	Op    Operator
	Right Key
}

func (r Record) IsLeaf() bool {
	return r.Slot >= 0
}

// Engine searches for an expression using every number exactly once which
// evaluates to the target.
//
// Every distinct (value, usage mask) pair is kept once, by the first
// expression discovered for it in queue order. The queue is a cursor into the
// insertion-ordered key list, since every key is enqueued exactly when it is
// first inserted.
type Engine struct {
	params   Params
	numbers  []uint64
	count    int
	maxValue uint64

	target    uint64
	targetKey Key

	records map[Key]Record
	order   []Key
	head    int

	seeded    bool
	exhausted bool
}

func New(numbers []uint, target uint) (*Engine, error) {
	return NewWithParams(numbers, target, DefaultParams())
}

func NewWithParams(numbers []uint, target uint, params *Params) (*Engine, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if len(numbers) == 0 {
		return nil, ErrNoNumbers
	}
	if len(numbers) > MaxNumbers {
		return nil, fmt.Errorf("%w: got %d", ErrTooManyNumbers, len(numbers))
	}
	if params.MaxExpressions > 0 && params.MaxExpressions < len(numbers) {
		return nil, fmt.Errorf("%w: MaxExpressions %d leaves no room for %d numbers", ErrInvalidParams, params.MaxExpressions, len(numbers))
	}

	maxValue := params.MaxValue()
	if uint64(target) > maxValue {
		return nil, fmt.Errorf("%w: target %d exceeds %d", ErrValueOutOfRange, target, maxValue)
	}

	e := &Engine{
		params:   *params,
		numbers:  make([]uint64, len(numbers)),
		count:    len(numbers),
		maxValue: maxValue,
		target:   uint64(target),
		records:  make(map[Key]Record),
	}
	for i, n := range numbers {
		if uint64(n) > maxValue {
			return nil, fmt.Errorf("%w: number %d at position %d exceeds %d", ErrValueOutOfRange, n, i, maxValue)
		}
		e.numbers[i] = uint64(n)
	}
	e.targetKey = EncodeKey(e.target, FullMask(e.count), e.count)

	return e, nil
}

// Count is the number of slots, i.e. the width of every usage Mask
func (e *Engine) Count() int {
	return e.count
}

func (e *Engine) Target() uint64 {
	return e.target
}

func (e *Engine) TargetKey() Key {
	return e.targetKey
}

// MaxValue is the largest value an expression may take
func (e *Engine) MaxValue() uint64 {
	return e.maxValue
}

// Len is the number of expressions in the closure set
func (e *Engine) Len() int {
	return len(e.order)
}

// Pending is the number of queued keys not yet used as an anchor
func (e *Engine) Pending() int {
	return len(e.order) - e.head
}

func (e *Engine) HasSolution() bool {
	_, ok := e.records[e.targetKey]
	return ok
}

func (e *Engine) Lookup(key Key) (Record, bool) {
	rec, ok := e.records[key]
	return rec, ok
}

// Walk calls fn for each expression in discovery order until fn returns false
func (e *Engine) Walk(fn func(Key, Record) bool) {
	for _, key := range e.order {
		if !fn(key, e.records[key]) {
			return
		}
	}
}

func (e *Engine) insert(key Key, rec Record) {
	e.records[key] = rec
	e.order = append(e.order, key)
}

func (e *Engine) seed() {
	for i, n := range e.numbers {
		e.insert(EncodeKey(n, Mask(1)<<i, e.count), Record{Slot: i})
	}
	e.seeded = true
}

// Solve expands the closure set breadth-first until the target is found or
// no new expression can be built. Calling it again after it has returned
// changes nothing.
func (e *Engine) Solve() error {
	if !e.seeded {
		e.seed()
	}
	if e.exhausted && !e.HasSolution() {
		return ErrBudgetExhausted
	}

	for e.head < len(e.order) && !e.HasSolution() {
		anchor := e.order[e.head]
		e.head++

		if err := e.expand(anchor); err != nil {
			return err
		}
	}

	return nil
}

// expand combines anchor, as the left operand, with every expression that
// existed before this round began.
func (e *Engine) expand(anchor Key) error {
	lv, lm := anchor.Value(e.count), anchor.Mask(e.count)

	// Insertions below append to e.order; the snapshot bounds this round
	snapshot := len(e.order)
	candidates := e.order[:snapshot:snapshot]

	for _, candidate := range candidates {
		rm := candidate.Mask(e.count)
		if lm&rm != 0 {
			continue
		}

		rv := candidate.Value(e.count)
		mask := lm | rm

		for _, op := range operators {
			value, ok := op.Apply(lv, rv)
			if !ok || value > e.maxValue {
				continue
			}

			key := EncodeKey(value, mask, e.count)
			if _, exists := e.records[key]; exists {
				continue
			}

			if e.params.MaxExpressions > 0 && len(e.order) >= e.params.MaxExpressions {
				e.exhausted = true
				return ErrBudgetExhausted
			}

			e.insert(key, Record{
				Slot:  -1,
				Left:  anchor,
				Op:    op,
				Right: candidate,
			})

			if key == e.targetKey {
				return nil
			}
		}
	}

	return nil
}

func (e *Engine) String() string {
	return fmt.Sprintf("[(t:%d, c:%d)(%b)%v]\nbuilt:%d\nqueue:%d",
		e.target, e.count, uint64(e.targetKey), e.numbers, len(e.order), e.Pending())
}
