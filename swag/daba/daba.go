// Package daba provides the De-Amortized Banker's Aggregator: a FIFO
// sliding-window aggregator with worst-case O(1) push, pop and query,
// built from a single parallel (values, aggregates) sequence carrying four
// cursors that partition it into front-left, front-right, accum and back
// segments.
package daba

import "github.com/zendesk/swag"

// deque is a growable slice-backed double-ended queue, standing in for the
// working VecDeque the reference implementation uses (its draft
// ChunkedArrayQueue variant was never completed upstream and is not
// carried forward here, see DESIGN.md).
type deque[V any] struct {
	data []V
	head int
}

func (d *deque[V]) Len() int { return len(d.data) - d.head }

func (d *deque[V]) PushBack(v V) { d.data = append(d.data, v) }

func (d *deque[V]) PopFront() {
	d.head++
	if d.head > 64 && d.head*2 > len(d.data) {
		d.data = append([]V(nil), d.data[d.head:]...)
		d.head = 0
	}
}

func (d *deque[V]) Get(i int) V { return d.data[d.head+i] }

func (d *deque[V]) Set(i int, v V) { d.data[d.head+i] = v }

func (d *deque[V]) Back() V { return d.data[len(d.data)-1] }

// Window is a FIFO sliding window implementing DABA.
type Window[V any] struct {
	op   swag.Operator[V]
	vals deque[V]
	aggs deque[V]
	// 0 <= l <= r <= a <= b <= vals.Len()
	l, r, a, b int
}

// New returns an empty window over 'op'.
func New[V any](op swag.Operator[V]) *Window[V] {
	return &Window[V]{op: op}
}

// Push appends 'v' to the back of the window. Worst-case O(1).
func (w *Window[V]) Push(v V) {
	w.aggs.PushBack(w.op.Combine(w.aggB(), v))
	w.vals.PushBack(v)
	w.fixup()
}

// Pop removes the oldest value in the window. Worst-case O(1). A no-op on
// an empty window.
func (w *Window[V]) Pop() {
	if w.vals.Len() == 0 {
		return
	}
	w.vals.PopFront()
	w.aggs.PopFront()
	w.l--
	w.r--
	w.a--
	w.b--
	w.fixup()
}

// Query returns aggF ⊕ aggB. O(1).
func (w *Window[V]) Query() V {
	return w.op.Combine(w.aggF(), w.aggB())
}

// Len returns the number of resident values.
func (w *Window[V]) Len() int {
	return w.vals.Len()
}

func (w *Window[V]) aggF() V {
	if w.aggs.Len() == 0 {
		return w.op.Identity()
	}
	return w.aggs.Get(0)
}

func (w *Window[V]) aggB() V {
	if w.b == w.aggs.Len() {
		return w.op.Identity()
	}
	return w.aggs.Back()
}

func (w *Window[V]) aggL() V {
	if w.l == w.r {
		return w.op.Identity()
	}
	return w.aggs.Get(w.l)
}

func (w *Window[V]) aggR() V {
	if w.r == w.a {
		return w.op.Identity()
	}
	return w.aggs.Get(w.a - 1)
}

func (w *Window[V]) aggA() V {
	if w.a == w.b {
		return w.op.Identity()
	}
	return w.aggs.Get(w.a)
}

func (w *Window[V]) fixup() {
	if w.b == 0 {
		w.singleton()
		return
	}
	if w.l == w.b {
		w.flip()
	}
	if w.l == w.r {
		w.shift()
	} else {
		w.shrink()
	}
}

// singleton: lF is empty, which can only happen when lB has exactly one
// element. No distinction between aggregating left or right on a
// singleton, so just move the cursors to the end.
func (w *Window[V]) singleton() {
	w.l = w.aggs.Len()
	w.r = w.l
	w.a = w.l
	w.b = w.l
}

// flip: lL, lR, lA are all empty. lF aggregates fully to the left, lB
// fully to the right; reinterpret lF as lL and lB as lR.
func (w *Window[V]) flip() {
	w.l = 0
	w.a = w.aggs.Len()
	w.b = w.a
}

// shift: lL and lR are empty but lA is not, so all of lL's former content
// is already aggregated to the left. The boundary of lA is immaterial;
// just advance.
func (w *Window[V]) shift() {
	w.a++
	w.r++
	w.l++
}

// shrink: lL is non-empty (so lR is too, they are always equal length).
// Move one element from the front of lL into the front-aggregated
// portion, and one element from the back of lR into lA.
func (w *Window[V]) shrink() {
	w.aggs.Set(w.l, w.op.Combine(w.op.Combine(w.aggL(), w.aggR()), w.aggA()))
	w.l++
	w.aggs.Set(w.a-1, w.op.Combine(w.vals.Get(w.a-1), w.aggA()))
	w.a--
}
