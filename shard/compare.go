package shard

// Same reports identity-inclusive structural equality: same id, same
// content key/value set, and pairwise Same children in the same order.
func (n *Node) Same(o *Node) bool {
	return n.equal(o, true)
}

// Like reports structural equality ignoring identifiers: same content
// values and same child structure recursively, irrespective of ids.
func (n *Node) Like(o *Node) bool {
	return n.equal(o, false)
}

func (n *Node) equal(o *Node, withID bool) bool {
	if n == o {
		return true
	}
	if o == nil {
		return false
	}
	if withID && n.id != o.id {
		return false
	}
	if len(n.entries) != len(o.entries) {
		return false
	}
	for i := range n.entries {
		ov, ok := o.GetOK(n.entries[i].key)
		if !ok || !valueEqual(n.entries[i].val, ov) {
			return false
		}
	}
	if len(n.children) != len(o.children) {
		return false
	}
	for i := range n.children {
		if !n.children[i].equal(o.children[i], withID) {
			return false
		}
	}
	return true
}
