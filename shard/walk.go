package shard

// WalkFunc is invoked once per visited node. Calling cancel stops the walk
// immediately after the current visit; cancellation is purely cooperative.
type WalkFunc func(n *Node, cancel func())

// Walk visits this node and every descendant depth-first in pre-order: a
// parent before its children, children before the next sibling's subtree.
func (n *Node) Walk(fn WalkFunc) {
	stopped := false
	cancel := func() { stopped = true }
	n.walk(fn, cancel, &stopped)
}

// WalkDescendants is Walk without the self visit.
func (n *Node) WalkDescendants(fn WalkFunc) {
	stopped := false
	cancel := func() { stopped = true }
	for _, c := range n.children {
		c.walk(fn, cancel, &stopped)
		if stopped {
			return
		}
	}
}

func (n *Node) walk(fn WalkFunc, cancel func(), stopped *bool) {
	fn(n, cancel)
	if *stopped {
		return
	}
	for _, c := range n.children {
		c.walk(fn, cancel, stopped)
		if *stopped {
			return
		}
	}
}

// WalkChildren visits direct children in sibling order.
func (n *Node) WalkChildren(fn WalkFunc) {
	stopped := false
	cancel := func() { stopped = true }
	for _, c := range n.children {
		fn(c, cancel)
		if stopped {
			return
		}
	}
}

// WalkChildrenReverse visits direct children last to first.
func (n *Node) WalkChildrenReverse(fn WalkFunc) {
	stopped := false
	cancel := func() { stopped = true }
	for i := len(n.children) - 1; i >= 0; i-- {
		fn(n.children[i], cancel)
		if stopped {
			return
		}
	}
}

// WalkParents visits ancestors from the immediate parent up to the root,
// nearest first.
func (n *Node) WalkParents(fn WalkFunc) {
	stopped := false
	cancel := func() { stopped = true }
	for p := n.parent; p != nil; p = p.parent {
		fn(p, cancel)
		if stopped {
			return
		}
	}
}

// WalkSiblings visits the siblings positioned after this node, in forward
// order. A node with no parent has no siblings.
func (n *Node) WalkSiblings(fn WalkFunc) {
	if n.parent == nil {
		return
	}
	stopped := false
	cancel := func() { stopped = true }
	sibs := n.parent.children
	for i := n.parentIndex + 1; i < len(sibs); i++ {
		fn(sibs[i], cancel)
		if stopped {
			return
		}
	}
}

// WalkSiblingsReverse visits the siblings positioned before this node, in
// reverse order (nearest sibling first).
func (n *Node) WalkSiblingsReverse(fn WalkFunc) {
	if n.parent == nil {
		return
	}
	stopped := false
	cancel := func() { stopped = true }
	sibs := n.parent.children
	for i := n.parentIndex - 1; i >= 0; i-- {
		fn(sibs[i], cancel)
		if stopped {
			return
		}
	}
}
