// Package twostacks provides the Two-Stacks sliding-window aggregator: a
// FIFO built from two LIFO stacks, each carrying a cumulative aggregate
// alongside every value so query is O(1) and push/pop are amortized O(1).
package twostacks

import (
	"github.com/zendesk/swag"
	"github.com/zendesk/swag/stack"
)

type item[V any] struct {
	val V
	agg V
}

// Window is a FIFO sliding window backed by two stacks.
type Window[V any] struct {
	op    swag.Operator[V]
	front *stack.Stack[item[V]]
	back  *stack.Stack[item[V]]
}

// New returns an empty window over 'op'.
func New[V any](op swag.Operator[V]) *Window[V] {
	return &Window[V]{
		op:    op,
		front: stack.New[item[V]](),
		back:  stack.New[item[V]](),
	}
}

// Push appends 'v' to the back of the window. The back stack's aggregate
// convention is below ⊕ val, so the newest value combines on the right of
// everything beneath it.
func (w *Window[V]) Push(v V) {
	below := w.op.Identity()
	if w.back.Size() > 0 {
		below = w.back.Peek().agg
	}
	w.back.Push(item[V]{val: v, agg: w.op.Combine(below, v)})
}

// Pop removes the oldest value in the window.
//
// A panic occurs if the window is empty.
func (w *Window[V]) Pop() {
	if w.front.Size() == 0 {
		w.drainBackIntoFront()
	}
	if w.front.Size() == 0 {
		panic("twostacks: pop from empty window")
	}
	w.front.Pop()
}

// Query returns top(front).agg ⊕ top(back).agg. Both terms already fold
// their whole stack in FIFO order, so this is the aggregate of the entire
// window. O(1).
func (w *Window[V]) Query() V {
	agg := w.op.Identity()
	if w.front.Size() > 0 {
		agg = w.op.Combine(agg, w.front.Peek().agg)
	}
	if w.back.Size() > 0 {
		agg = w.op.Combine(agg, w.back.Peek().agg)
	}
	return agg
}

// drainBackIntoFront pops the back stack entirely, reversing its order
// while rebuilding each item's aggregate under the front convention (val
// ⊕ below).
func (w *Window[V]) drainBackIntoFront() {
	above := w.op.Identity()
	for w.back.Size() > 0 {
		it := w.back.Pop()
		above = w.op.Combine(it.val, above)
		w.front.Push(item[V]{val: it.val, agg: above})
	}
}

// Len returns the number of resident values.
func (w *Window[V]) Len() int {
	return w.front.Size() + w.back.Size()
}
