// Package foa provides the Functional Okasaki Aggregator: a persistent,
// amortized O(1) FIFO sliding-window built from three immutable singly
// linked lists, in the style of Okasaki's real-time queue, each node
// caching the same-direction cumulative aggregate alongside its value.
package foa

import "github.com/zendesk/swag"

type elem[V any] struct {
	val V
	agg V
}

// node is an immutable cons cell. A nil *node is the empty list; once
// constructed a node is never mutated, so sharing a tail across multiple
// lists (as makeq/rot do) is always safe.
type node[V any] struct {
	head elem[V]
	tail *node[V]
}

func cons[V any](e elem[V], tail *node[V]) *node[V] {
	return &node[V]{head: e, tail: tail}
}

// Window is a FIFO sliding window implementing FOA. It is internally
// persistent (every operation builds new list nodes rather than mutating
// existing ones) but exposed with the same imperative Push/Pop/Query
// contract as every other aggregator in this module.
type Window[V any] struct {
	op    swag.Operator[V]
	front *node[V]
	next  *node[V]
	back  *node[V]
}

// New returns an empty window over 'op'.
func New[V any](op swag.Operator[V]) *Window[V] {
	return &Window[V]{op: op}
}

func (w *Window[V]) agg(l *node[V]) V {
	if l == nil {
		return w.op.Identity()
	}
	return l.head.agg
}

// Push inserts 'v' at the back of the window.
func (w *Window[V]) Push(v V) {
	w.back = cons(elem[V]{val: v, agg: w.op.Combine(w.agg(w.back), v)}, w.back)
	w.makeq()
}

// Pop removes the oldest value in the window. A no-op on an empty window.
func (w *Window[V]) Pop() {
	if w.front != nil {
		w.front = w.front.tail
	}
	w.makeq()
}

// Query returns aggF ⊕ aggB. O(1).
func (w *Window[V]) Query() V {
	return w.op.Combine(w.agg(w.front), w.agg(w.back))
}

// makeq restores the amortized invariant: if the debt list 'next' is
// exhausted, rebuild front from front++reverse(back); otherwise pay down
// one unit of debt by dropping the head of next.
func (w *Window[V]) makeq() {
	if w.next == nil {
		front := w.rot(w.front, w.back, nil)
		w.front = front
		w.next = front
		w.back = nil
		return
	}
	w.next = w.next.tail
}

// rot is Okasaki's classical rotation: it interleaves 'front' (walked
// forward) with 'next' (walked forward but logically the reverse of the
// eventual suffix) into one list, accumulating into 'back', recomputing
// each element's aggregate so the result is immediately queryable in O(1).
func (w *Window[V]) rot(front, next, back *node[V]) *node[V] {
	if next == nil {
		return back
	}
	nextElem := next.head
	newBack := cons(elem[V]{val: nextElem.val, agg: w.op.Combine(nextElem.val, w.agg(back))}, back)
	if front == nil {
		return newBack
	}
	frontElem := front.head
	rest := w.rot(front.tail, next.tail, newBack)
	frontAgg := w.op.Combine(frontElem.val, w.agg(rest))
	return cons(elem[V]{val: frontElem.val, agg: frontAgg}, rest)
}

// Len returns the number of resident values.
func (w *Window[V]) Len() int {
	n := 0
	for l := w.front; l != nil; l = l.tail {
		n++
	}
	for l := w.back; l != nil; l = l.tail {
		n++
	}
	return n
}
