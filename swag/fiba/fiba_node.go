package fiba

import "github.com/zendesk/swag"

func (n *node[V]) isLeaf() bool { return len(n.children) == 0 }
func (n *node[V]) isRoot() bool { return n.parent == nil }

func (n *node[V]) isDescendantOf(other *node[V]) bool {
	node := n
	for node.parent != nil {
		node = node.parent
		if node.uid == other.uid {
			return true
		}
	}
	return false
}

// aggKind reports which of the four partial aggregates a node carries: the
// root carries the inner aggregate, a non-root node on the left spine (and
// not on the right) carries the left aggregate, symmetrically for the right
// spine, and every other node carries the up aggregate.
func (n *node[V]) aggKind() aggKind {
	if n.isRoot() {
		return aggInner
	}
	switch {
	case n.spine.left && !n.spine.right:
		return aggLeft
	case !n.spine.left && n.spine.right:
		return aggRight
	case !n.spine.left && !n.spine.right:
		return aggUp
	default:
		panic("fiba: node cannot be on both spines")
	}
}

func (n *node[V]) hasAggUp() bool { return n.aggKind() == aggUp }

// arity is the number of children a node would have if it were internal:
// one more than its item count, whether or not it actually has children.
func (n *node[V]) arity() int { return len(n.items) + 1 }

// itemIdx returns the index of the item timestamped t, or the index it
// would be inserted at, mirroring sort.Search over a sorted key slice.
func (n *node[V]) itemIdx(t swag.Time) (int, bool) {
	lo, hi := 0, len(n.items)
	for lo < hi {
		mid := (lo + hi) / 2
		if n.items[mid].time < t {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo, lo < len(n.items) && n.items[lo].time == t
}

func (n *node[V]) childIdx(id uid) int {
	for i, c := range n.children {
		if c.uid == id {
			return i
		}
	}
	panic("fiba: child not found")
}

// youngest returns the right-most leaf under n and its last item: the most
// recently inserted substitute candidate for an internal-node eviction.
func (n *node[V]) youngest() (*node[V], item[V]) {
	node := n
	for len(node.children) > 0 {
		node = node.children[len(node.children)-1]
	}
	return node, node.items[len(node.items)-1]
}

// oldest is the symmetric counterpart of youngest, over the left-most leaf.
func (n *node[V]) oldest() (*node[V], item[V]) {
	node := n
	for len(node.children) > 0 {
		node = node.children[0]
	}
	return node, node.items[0]
}

func (n *node[V]) pickEvictionSibling() (nodeIdx, siblingIdx int) {
	parent := n.parent
	idx := parent.childIdx(n.uid)
	if idx+1 < len(parent.children) {
		return idx, idx + 1
	}
	return idx, idx - 1
}

func (t *Tree[V]) search(n *node[V], tm swag.Time) *node[V] {
	for !n.isLeaf() {
		i, found := n.itemIdx(tm)
		if found {
			break
		}
		n = n.children[i]
	}
	return n
}

func (t *Tree[V]) searchFromLeftFinger(n *node[V], tm swag.Time) *node[V] {
	for {
		i, found := n.itemIdx(tm)
		if found {
			return n
		}
		if n.parent == nil {
			return n
		}
		parent := n.parent
		switch {
		case parent.items[0].time <= tm:
			n = parent
		case !n.isLeaf():
			return t.search(n.children[i], tm)
		default:
			return n
		}
	}
}

func (t *Tree[V]) searchFromRightFinger(n *node[V], tm swag.Time) *node[V] {
	for {
		i, found := n.itemIdx(tm)
		if found {
			return n
		}
		if n.parent == nil {
			return n
		}
		parent := n.parent
		switch {
		case tm <= parent.items[len(parent.items)-1].time:
			n = parent
		case !n.isLeaf():
			return t.search(n.children[i], tm)
		default:
			return n
		}
	}
}

// Slice-splice helpers, mirroring the insert/remove operations the
// original performs on its fixed-capacity ArrayVec item and child lists.

func insertItem[V any](s []item[V], i int, v item[V]) []item[V] {
	s = append(s, item[V]{})
	copy(s[i+1:], s[i:])
	s[i] = v
	return s
}

func removeItem[V any](s []item[V], i int) ([]item[V], item[V]) {
	v := s[i]
	copy(s[i:], s[i+1:])
	return s[:len(s)-1], v
}

func insertChild[V any](s []*node[V], i int, v *node[V]) []*node[V] {
	s = append(s, nil)
	copy(s[i+1:], s[i:])
	s[i] = v
	return s
}

func removeChild[V any](s []*node[V], i int) ([]*node[V], *node[V]) {
	v := s[i]
	copy(s[i:], s[i+1:])
	return s[:len(s)-1], v
}
