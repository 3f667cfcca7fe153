package shard

// Predicate decides whether a visited node matches. what is the caller's
// search argument passed through FindFunc; cancel stops the search after the
// current node.
type Predicate func(n *Node, what any, cancel func()) bool

// FindID returns every node among self and descendants whose id equals id,
// in pre-order. The result is possibly empty, never an error.
func (n *Node) FindID(id string) []*Node {
	var res []*Node
	n.Walk(func(m *Node, _ func()) {
		if m.id == id {
			res = append(res, m)
		}
	})
	return res
}

// FindValue returns every node among self and descendants whose content
// under key equals value, in pre-order. An absent key never matches, even
// when searching for nil.
func (n *Node) FindValue(value any, key string) []*Node {
	want := normalize(value)
	var res []*Node
	n.Walk(func(m *Node, _ func()) {
		v, ok := m.GetOK(key)
		if ok && valueEqual(v, want) {
			res = append(res, m)
		}
	})
	return res
}

// FindFunc collects every node among self and descendants for which pred
// returns true, in pre-order. pred may cancel to cut the search short.
func (n *Node) FindFunc(what any, pred Predicate) []*Node {
	var res []*Node
	n.Walk(func(m *Node, cancel func()) {
		if pred(m, what, cancel) {
			res = append(res, m)
		}
	})
	return res
}
