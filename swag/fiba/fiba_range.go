package fiba

import "github.com/zendesk/swag"

// RangeQuery combines exactly the values in the window whose times fall in
// [lo, hi], inclusive of both ends. It returns the identity if no value in
// the window qualifies.
//
// Evaluation starts at the least common ancestor of the node covering lo
// and the range's upper bound, then recurses down at most two paths: one
// towards lo's node and one towards hi's node. Every other subtree along
// the way is subsumed whole and contributes its already-repaired
// up-aggregate instead of being walked value by value.
func (t *Tree[V]) RangeQuery(lo, hi swag.Time) V {
	from := t.searchNode(lo)
	top := t.leastCommonAncestor(from, hi)
	return t.queryRec(top, lo, hi)
}

// leastCommonAncestor walks from n towards the root, stopping as soon as
// it reaches a node whose own last item already exceeds tm. It requires
// that n itself precedes tm.
func (t *Tree[V]) leastCommonAncestor(n *node[V], tm swag.Time) *node[V] {
	for {
		if n.isRoot() {
			return n
		}
		if n.items[len(n.items)-1].time <= tm {
			n = n.parent
		} else {
			return n
		}
	}
}

// queryRec aggregates n's subtree intersected with [lo, hi]. lo == NegInf
// or hi == PosInf signals that the corresponding side of the range was
// already established as fully included by the caller, which both lets a
// node with an up-aggregate short-circuit to it directly and lets a child
// recursion widen its own bound to infinity instead of re-deriving it.
func (t *Tree[V]) queryRec(n *node[V], lo, hi swag.Time) V {
	if lo == swag.NegInf && hi == swag.PosInf && n.hasAggUp() {
		return n.agg
	}

	res := t.op.Identity()
	arity := n.arity()

	if !n.isLeaf() {
		tNext := n.items[0].time
		if lo < tNext {
			b := hi
			if tNext <= hi {
				b = swag.PosInf
			}
			res = t.op.Combine(res, t.queryRec(n.children[0], lo, b))
		}
	}

	for i := 0; i < arity-1; i++ {
		tm := n.items[i].time
		if lo <= tm && tm <= hi {
			res = t.op.Combine(res, n.items[i].value)
		}
		if !n.isLeaf() && i+1 <= arity-2 {
			tNextNext := n.items[i+1].time
			if tm < hi && lo < tNextNext {
				a := swag.NegInf
				if lo > tm {
					a = lo
				}
				b := hi
				if tNextNext <= hi {
					b = swag.PosInf
				}
				res = t.op.Combine(res, t.queryRec(n.children[i+1], a, b))
			}
		}
	}

	if !n.isLeaf() {
		tCurr := n.items[arity-2].time
		if tCurr < hi {
			a := swag.NegInf
			if lo > tCurr {
				a = lo
			}
			res = t.op.Combine(res, t.queryRec(n.children[arity-1], a, hi))
		}
	}
	return res
}
