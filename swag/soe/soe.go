// Package soe provides the Subtract-On-Evict aggregator: a single running
// aggregate updated by combining in new values and combining out old ones
// via the operator's inverse.
package soe

import (
	"github.com/zendesk/swag"
	"github.com/zendesk/swag/queue"
)

// Window is a FIFO sliding window that maintains one running aggregate,
// subtracting evicted values via the operator's Inverse. Only correct when
// the order of application does not matter, or the operator's inverse
// property holds regardless of order, i.e. for an actual group.
type Window[V any] struct {
	op     swag.InvOperator[V]
	values *queue.Queue[V]
	agg    V
}

// New returns an empty window over 'op'.
func New[V any](op swag.InvOperator[V]) *Window[V] {
	return &Window[V]{
		op:     op,
		values: queue.New[V](),
		agg:    op.Identity(),
	}
}

// Push combines 'v' into the running aggregate.
func (w *Window[V]) Push(v V) {
	w.values.Enqueue(v)
	w.agg = w.op.Combine(w.agg, v)
}

// Pop evicts the oldest value, combining its inverse into the running
// aggregate.
//
// A panic occurs if the window is empty.
func (w *Window[V]) Pop() {
	f, ok := w.values.TryDequeue()
	if !ok {
		panic("soe: pop from empty window")
	}
	w.agg = w.op.Combine(w.agg, w.op.Inverse(f))
}

// Query returns the current running aggregate. O(1).
func (w *Window[V]) Query() V {
	return w.agg
}

// Len returns the number of resident values.
func (w *Window[V]) Len() int {
	return w.values.Len()
}
