package shard

// Clone duplicates the node: same type name, same id, content copied with
// its slot order intact. The clone has no parent. When deep, every child is
// cloned recursively and attached in original order; otherwise no children
// are copied. A sealed node clones sealed.
func (n *Node) Clone(deep bool) *Node {
	c := &Node{
		id:          n.id,
		fqn:         n.fqn,
		sealed:      n.sealed,
		parentIndex: -1,
		index:       make(map[string]int, len(n.entries)),
	}
	c.entries = append([]entry(nil), n.entries...)
	for i := range c.entries {
		c.index[c.entries[i].key] = i
	}
	if !deep {
		return c
	}
	c.children = make([]*Node, len(n.children))
	for i, ch := range n.children {
		cc := ch.Clone(true)
		cc.parent = c
		cc.parentIndex = i
		c.children[i] = cc
	}
	return c
}
