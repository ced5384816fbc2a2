package closure

import (
	"fmt"
	"strconv"
	"strings"
)

// Node is an owned, presentation-ready copy of an expression: reversed
// operators are normalized, with their operands swapped.
type Node struct {
	Value uint64
	Mask  Mask

	// Slot of the number a leaf wraps; -1 for internal nodes
	Slot int

	Op          Operator
	Left, Right *Node
}

func (n *Node) IsLeaf() bool {
	return n.Slot >= 0
}

// Leaves returns the leaf values from left to right
func (n *Node) Leaves() []uint64 {
	if n.IsLeaf() {
		return []uint64{n.Value}
	}
	return append(n.Left.Leaves(), n.Right.Leaves()...)
}

func (n *Node) String() string {
	var buf strings.Builder
	n.write(&buf, false)
	return buf.String()
}

func (n *Node) write(buf *strings.Builder, nested bool) {
	if n.IsLeaf() {
		buf.WriteString(strconv.FormatUint(n.Value, 10))
		return
	}

	if nested {
		buf.WriteByte('(')
	}
	n.Left.write(buf, true)
	buf.WriteByte(' ')
	buf.WriteString(n.Op.Symbol())
	buf.WriteByte(' ')
	n.Right.write(buf, true)
	if nested {
		buf.WriteByte(')')
	}
}

// Tree unfolds the expression stored under key. Depth is bounded by Count,
// since every level consumes at least one more slot.
func (e *Engine) Tree(key Key) (*Node, error) {
	if _, ok := e.records[key]; !ok {
		return nil, fmt.Errorf("%w: %b", ErrUnknownKey, uint64(key))
	}
	return e.tree(key), nil
}

func (e *Engine) tree(key Key) *Node {
	rec := e.records[key]
	node := &Node{
		Value: key.Value(e.count),
		Mask:  key.Mask(e.count),
		Slot:  rec.Slot,
	}
	if rec.IsLeaf() {
		return node
	}

	op, swapped := rec.Op.Normalize()
	left, right := rec.Left, rec.Right
	if swapped {
		left, right = right, left
	}

	node.Op = op
	node.Left = e.tree(left)
	node.Right = e.tree(right)
	return node
}

// Render returns the derivation of the expression stored under key,
// e.g. "(2 * 3) + (5 / 5)"
func (e *Engine) Render(key Key) (string, error) {
	node, err := e.Tree(key)
	if err != nil {
		return "", err
	}
	return node.String(), nil
}

func (e *Engine) RenderSolution() (string, error) {
	if !e.HasSolution() {
		return "", fmt.Errorf("%w: %d from %v", ErrNoSolution, e.target, e.numbers)
	}
	return e.Render(e.targetKey)
}
