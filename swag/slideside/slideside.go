// Package slideside provides SlideSide: several fixed-size trailing
// windows over one insertion stream, answered from a single shared ring
// of prefix/suffix aggregates rather than one aggregator per query.
//
// Grounded on _examples/original_source/src/slide_side/mod.rs. That
// draft's front-array rebuild indexed one slot out of range
// (elems[windowSize-i+1], impossible for i in 0..windowSize), a draft
// bug, not a design choice; this package rebuilds the suffix-prefix table
// with the corrected recurrence front[i+1] = elems[windowSize-i-1] ⊕
// front[i], which is the only indexing that keeps every access in bounds
// and produces a front[k] that is, in fact, the combine of the last k
// elements of the ring, exactly what the wrapped-query branch needs.
package slideside

import "github.com/zendesk/swag"

// Query identifies a trailing window as a half-open position range
// [Start, End) within the ring, End-Start wide.
type Query struct {
	Start, End int
}

func (q Query) width() int { return q.End - q.Start }

// Window answers several Queries over one shared insertion stream.
type Window[V any] struct {
	op      swag.InvOperator[V]
	front   []V
	back    []V
	elems   []V
	queries []Query
	aggs    []V
	curPos  int
	size    int
}

// New returns a window over 'op' that will answer every query in
// 'queries' after each Insert. The ring is sized to the widest query.
func New[V any](op swag.InvOperator[V], queries []Query) *Window[V] {
	size := 1
	for _, q := range queries {
		if w := q.width(); w > size {
			size = w
		}
	}
	id := op.Identity()
	fill := func(n int) []V {
		s := make([]V, n)
		for i := range s {
			s[i] = id
		}
		return s
	}
	return &Window[V]{
		op:      op,
		front:   fill(size + 1),
		back:    fill(size + 1),
		elems:   fill(size),
		queries: append([]Query(nil), queries...),
		aggs:    fill(len(queries)),
		size:    size,
	}
}

// Insert appends 'v' to the stream and recomputes every registered
// query's aggregate.
func (w *Window[V]) Insert(v V) {
	if w.curPos == 0 {
		for i := 0; i < w.size; i++ {
			w.front[i+1] = w.op.Combine(w.elems[w.size-i-1], w.front[i])
		}
	}
	w.elems[w.curPos] = v
	w.back[w.curPos+1] = w.op.Combine(v, w.back[w.curPos])
	w.curPos = (w.curPos + 1) % w.size

	for i, q := range w.queries {
		curWidth := q.width()
		endPtr := w.curPos
		if endPtr == 0 {
			endPtr = w.size
		}
		startPtr := endPtr - curWidth
		wrapped := false
		if startPtr < 0 {
			wrapped = true
			startPtr += w.size
		}
		switch {
		case !wrapped && startPtr == 0:
			w.aggs[i] = w.back[endPtr]
		case wrapped:
			w.aggs[i] = w.op.Combine(w.back[endPtr], w.front[w.size-startPtr])
		default:
			w.aggs[i] = w.op.Combine(w.back[endPtr], w.op.Inverse(w.back[startPtr]))
		}
	}
}

// Queries returns the current aggregate of every registered query, in the
// order they were passed to New.
func (w *Window[V]) Queries() []V {
	out := make([]V, len(w.aggs))
	copy(out, w.aggs)
	return out
}
