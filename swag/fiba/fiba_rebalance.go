package fiba

// split halves 'left' by its median item/child, inserting the median item
// and the new right sibling into left's parent. Left and right are locally
// repaired; the parent is repaired later, either by the next split or once
// rebalancing tops out.
func (t *Tree[V]) split(left *node[V]) {
	right := t.newNode()
	parent := left.parent
	right.parent = parent

	middle := left.arity() / 2
	right.items = append(right.items, left.items[middle+1:]...)
	middleItem := left.items[middle]
	left.items = left.items[:middle]

	if !left.isLeaf() {
		right.children = append(right.children, left.children[middle+1:]...)
		for _, child := range right.children {
			child.parent = right
		}
		left.children = left.children[:middle+1]
	}

	i, _ := parent.itemIdx(middleItem.time)

	if i == 0 && (parent.isRoot() || parent.spine.left) {
		left.spine = spine{left: true}
		if left.isLeaf() {
			t.leftFinger = left
		}
	} else {
		left.spine = spine{}
	}
	if i == len(parent.items) && (parent.isRoot() || parent.spine.right) {
		right.spine = spine{right: true}
		if right.isLeaf() {
			t.rightFinger = right
		}
	} else {
		right.spine = spine{}
	}

	parent.items = insertItem(parent.items, i, middleItem)
	parent.children = insertChild(parent.children, i+1, right)

	t.localRepairAgg(left)
	t.localRepairAgg(right)
}

// merge folds the node at sibling_idx and the separating item into the node
// at node_idx, returning the merged node. Parent is repaired later.
func (t *Tree[V]) merge(parent *node[V], nodeIdx, siblingIdx int) *node[V] {
	keepUID := parent.children[nodeIdx].uid
	leftIdx, rightIdx := nodeIdx, siblingIdx
	if siblingIdx < nodeIdx {
		leftIdx, rightIdx = siblingIdx, nodeIdx
	}

	var right *node[V]
	parent.children, right = removeChild(parent.children, rightIdx)
	var middleItem item[V]
	parent.items, middleItem = removeItem(parent.items, leftIdx)
	left := parent.children[leftIdx]

	if right.spine.right && right.isLeaf() {
		t.rightFinger = left
	}

	left.items = append(left.items, middleItem)
	left.items = append(left.items, right.items...)
	for _, child := range right.children {
		child.parent = left
		left.children = append(left.children, child)
	}
	left.spine.left = left.spine.left || right.spine.left
	left.spine.right = left.spine.right || right.spine.right
	left.uid = keepUID
	return left
}

// steal moves an item from sibling, via the parent, to node: the parent
// donates one of its own items to node and receives the replacement from
// sibling. If sibling has a child adjacent to the boundary, it moves to
// node along with it. Node, sibling and parent are all locally repaired;
// their own parent is repaired later.
func (t *Tree[V]) steal(parent *node[V], nodeIdx, siblingIdx int) {
	sibling := parent.children[siblingIdx]
	if nodeIdx < siblingIdx {
		var siblingChild *node[V]
		hasChild := len(sibling.children) > 0
		if hasChild {
			sibling.children, siblingChild = removeChild(sibling.children, 0)
		}
		var siblingItem item[V]
		sibling.items, siblingItem = removeItem(sibling.items, 0)
		var parentItem item[V]
		parent.items, parentItem = removeItem(parent.items, nodeIdx)

		node := parent.children[nodeIdx]
		node.items = append(node.items, parentItem)
		parent.items = insertItem(parent.items, siblingIdx-1, siblingItem)
		if hasChild {
			siblingChild.parent = node
			node.children = append(node.children, siblingChild)
			t.localRepairAgg(node.children[len(node.children)-1])
		}
	} else {
		var siblingChild *node[V]
		hasChild := len(sibling.children) > 0
		if hasChild {
			siblingChild = sibling.children[len(sibling.children)-1]
			sibling.children = sibling.children[:len(sibling.children)-1]
		}
		siblingItem := sibling.items[len(sibling.items)-1]
		sibling.items = sibling.items[:len(sibling.items)-1]
		parentItem := parent.items[len(parent.items)-1]
		parent.items = parent.items[:len(parent.items)-1]

		node := parent.children[nodeIdx]
		node.items = insertItem(node.items, 0, parentItem)
		parent.items = insertItem(parent.items, siblingIdx, siblingItem)
		if hasChild {
			siblingChild.parent = node
			node.children = insertChild(node.children, 0, siblingChild)
			t.localRepairAgg(node.children[0])
		}
	}
	t.localRepairAgg(parent.children[nodeIdx])
	t.localRepairAgg(parent.children[siblingIdx])
	t.localRepairAgg(parent)
}

// rebalanceForInsert walks from n towards the root splitting overfull
// nodes, growing the tree's height when the root itself overflows. It is
// amortized O(1): rebalancing only climbs as high as the most recent split
// at that level allows, and worst case is O(log n) bounded by height.
func (t *Tree[V]) rebalanceForInsert(n *node[V]) (*node[V], spine) {
	hit := n.spine
	for n.arity() > t.maxArity {
		if n.isRoot() {
			t.heightIncrease()
			hit = spine{left: true, right: true}
		}
		t.split(n)
		n = n.parent
		hit.left = hit.left || n.spine.left
		hit.right = hit.right || n.spine.right
	}
	return n, hit
}

// rebalanceForEvict walks from n towards the root merging or stealing from
// a sibling whenever n falls below the minimum arity, shrinking the tree's
// height when the root's only child absorbs everything. If toRepair names
// a node climbed past along the way, its up-aggregate is repaired in
// passing: evictInner uses this to fold the extra repair obligation its
// substitute-borrowing leaves behind into the ordinary rebalancing walk.
func (t *Tree[V]) rebalanceForEvict(n *node[V], toRepair uid, hasToRepair bool) (*node[V], spine) {
	hit := n.spine
	if hasToRepair && n.uid == toRepair {
		t.localRepairAggIfUp(n)
	}
	for !n.isRoot() && n.arity() < t.minArity {
		parent := n.parent
		nodeIdx, siblingIdx := n.pickEvictionSibling()
		sibling := parent.children[siblingIdx]
		hit.left = hit.left || sibling.spine.left
		hit.right = hit.right || sibling.spine.right
		if sibling.arity() <= t.minArity {
			n = t.merge(parent, nodeIdx, siblingIdx)
			up := n.parent
			if up.isRoot() && up.arity() == 1 {
				t.heightDecrease()
			} else {
				t.localRepairAgg(n)
				n = up
				t.localRepairAggIfUp(n)
			}
		} else {
			t.steal(parent, nodeIdx, siblingIdx)
			n = parent
		}
		if hasToRepair && n.uid == toRepair {
			t.localRepairAggIfUp(n)
		}
		hit.left = hit.left || n.spine.left
		hit.right = hit.right || n.spine.right
	}
	return n, hit
}

// evictInner removes the item at index idx of an internal node by
// borrowing a substitute from an adjacent leaf (the oldest descendant of
// the right child if it can spare one, otherwise the youngest descendant
// of the left child), writing the substitute over the evicted slot, and
// rebalancing the leaf it was borrowed from. Because that rebalancing walk
// is unaware of the internal node's own repair obligation, evictInner
// piggybacks the internal node's up-aggregate repair onto the walk once it
// climbs back up to (or past) the internal node.
func (t *Tree[V]) evictInner(n *node[V], idx int) (*node[V], spine) {
	var leaf *node[V]
	var it item[V]
	if n.children[idx+1].arity() > t.minArity {
		leaf, it = n.children[idx+1].oldest()
	} else {
		leaf, it = n.children[idx].youngest()
	}
	t.localEvictTimeAndValue(leaf, it.time)
	n.items[idx] = it

	top, hit := t.rebalanceForEvict(leaf, n.uid, true)
	if top.isDescendantOf(n) {
		for top.uid != n.uid {
			top = top.parent
			hit.left = hit.left || top.spine.left
			hit.right = hit.right || top.spine.right
			t.localRepairAggIfUp(top)
		}
	}
	return top, hit
}
