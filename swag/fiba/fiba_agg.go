package fiba

import "github.com/zendesk/swag"

// Four partial aggregates cover every node in the tree:
//
//	Π↑(y) = Π↑(z0) + v0 + ... + vα-2 + Π↑(zα-1)   -- non-spine nodes
//	Π^(y) = v0 + Π↑(z1) + ... + Π↑(zα-2) + vα-2   -- the root
//	Π←(y) = Π^(y) + Π↑(zα-1) + (root? 1 : Π←(parent))  -- left-spine nodes
//	Π→(y) = (root? 1 : Π→(parent)) + Π↑(z0) + Π^(y)    -- right-spine nodes
//
// A node whose subtree changes only ever needs Π↑ repaired on the path up
// to the root. A change below the root's left-most child only requires
// repairing the left spine down to the left finger; symmetrically for the
// right spine below the root's right-most child.

func (t *Tree[V]) upAgg(n *node[V]) V {
	agg := t.op.Identity()
	arity := n.arity()
	if n.isLeaf() {
		for i := 0; i < arity-1; i++ {
			agg = t.op.Combine(agg, n.items[i].value)
		}
		return agg
	}
	for i := 0; i < arity-1; i++ {
		agg = t.op.Combine(agg, n.children[i].agg)
		agg = t.op.Combine(agg, n.items[i].value)
	}
	agg = t.op.Combine(agg, n.children[len(n.children)-1].agg)
	return agg
}

func (t *Tree[V]) innerAgg(n *node[V]) V {
	agg := t.op.Identity()
	arity := n.arity()
	if n.isLeaf() {
		for i := 0; i < arity-1; i++ {
			agg = t.op.Combine(agg, n.items[i].value)
		}
		return agg
	}
	agg = t.op.Combine(agg, n.items[0].value)
	for i := 1; i < arity-1; i++ {
		agg = t.op.Combine(agg, n.children[i].agg)
		agg = t.op.Combine(agg, n.items[i].value)
	}
	return agg
}

func (t *Tree[V]) leftAgg(n *node[V]) V {
	agg := t.innerAgg(n)
	if !n.isLeaf() {
		agg = t.op.Combine(agg, n.children[len(n.children)-1].agg)
	}
	agg = t.op.Combine(agg, t.parentAgg(n))
	return agg
}

func (t *Tree[V]) rightAgg(n *node[V]) V {
	agg := t.parentAgg(n)
	if !n.isLeaf() {
		agg = t.op.Combine(agg, n.children[0].agg)
	}
	agg = t.op.Combine(agg, t.innerAgg(n))
	return agg
}

func (t *Tree[V]) parentAgg(n *node[V]) V {
	if n.parent.isRoot() {
		return t.op.Identity()
	}
	return n.parent.agg
}

func (t *Tree[V]) localRepairAgg(n *node[V]) {
	switch n.aggKind() {
	case aggUp:
		n.agg = t.upAgg(n)
	case aggInner:
		n.agg = t.innerAgg(n)
	case aggLeft:
		n.agg = t.leftAgg(n)
	case aggRight:
		n.agg = t.rightAgg(n)
	}
}

func (t *Tree[V]) localRepairAggIfUp(n *node[V]) {
	if n.aggKind() == aggUp {
		n.agg = t.upAgg(n)
	}
}

// localInsertTimeAndValue inserts (tm,v) into a leaf, merging with any
// existing item at the same time via op.Combine, and repairs n's aggregate.
func (t *Tree[V]) localInsertTimeAndValue(n *node[V], tm swag.Time, v V) {
	i, found := n.itemIdx(tm)
	if found {
		n.items[i].value = t.op.Combine(n.items[i].value, v)
	} else {
		n.items = insertItem(n.items, i, item[V]{time: tm, value: v})
	}
	t.localRepairAgg(n)
}

// localEvictTimeAndValue removes the item timestamped tm from a leaf, if
// present, and repairs n's aggregate.
func (t *Tree[V]) localEvictTimeAndValue(n *node[V], tm swag.Time) {
	if i, found := n.itemIdx(tm); found {
		n.items, _ = removeItem(n.items, i)
		t.localRepairAgg(n)
	}
}

// repairAggs finishes the aggregate repair that rebalancing piggybacked:
// n is where rebalancing topped out, and hit says whether the left and/or
// right spine were touched on the way.
func (t *Tree[V]) repairAggs(n *node[V], hit spine) {
	n = t.repairUp(n)
	t.repairLeft(n, hit.left)
	t.repairRight(n, hit.right)
}

func (t *Tree[V]) repairUp(n *node[V]) *node[V] {
	if n.hasAggUp() {
		for n.hasAggUp() {
			n = n.parent
			t.localRepairAgg(n)
		}
	} else {
		t.localRepairAgg(n)
	}
	return n
}

func (t *Tree[V]) repairLeft(n *node[V], hitLeft bool) {
	if n.spine.left || (n.isRoot() && hitLeft) {
		for !n.isLeaf() {
			n = n.children[0]
			t.localRepairAgg(n)
		}
	}
}

func (t *Tree[V]) repairRight(n *node[V], hitRight bool) {
	if n.spine.right || (n.isRoot() && hitRight) {
		for !n.isLeaf() {
			n = n.children[len(n.children)-1]
			t.localRepairAgg(n)
		}
	}
}
