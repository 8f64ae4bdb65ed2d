// Package rfs provides the Recalculate-From-Scratch aggregator: the
// baseline against which every other sliding-window aggregator in this
// module is measured. It stores every resident value and folds them under
// the operator on every query.
package rfs

import (
	"github.com/zendesk/swag"
	"github.com/zendesk/swag/ulist"
)

// Window is a FIFO sliding window that recomputes its aggregate from
// scratch on every query. O(1) push/pop, O(n) query.
type Window[V any] struct {
	op     swag.Operator[V]
	values *ulist.UList[V]
}

// New returns an empty window over 'op'.
func New[V any](op swag.Operator[V]) *Window[V] {
	return &Window[V]{
		op:     op,
		values: ulist.New[V](64),
	}
}

// Push appends 'v' to the back of the window.
func (w *Window[V]) Push(v V) {
	w.values.PushBack(v)
}

// Pop removes the oldest value in the window.
//
// A panic occurs if the window is empty.
func (w *Window[V]) Pop() {
	iter := w.values.Begin()
	if !iter.IsValid() {
		panic("rfs: pop from empty window")
	}
	w.values.Remove(iter)
}

// Query folds every resident value under the operator, in insertion order.
func (w *Window[V]) Query() V {
	agg := w.op.Identity()
	for iter := w.values.Begin(); iter.IsValid(); iter.Next() {
		agg = w.op.Combine(agg, iter.Get())
	}
	return agg
}

// Len returns the number of resident values.
func (w *Window[V]) Len() int {
	return w.values.Size()
}
