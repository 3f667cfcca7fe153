package shard

import (
	"slices"
)

// NewReadOnly builds a sealed node from a flat content snapshot. Keys are
// laid out in sorted order so structurally identical snapshots encode
// identically. The node honors the full read contract; every mutator is a
// true no-op. It can still be attached as a child of a mutable node, but
// never acquires children of its own.
func NewReadOnly(snapshot map[string]any) *Node {
	n := NewTyped(ReadOnlyFQN)
	keys := make([]string, 0, len(snapshot))
	for k := range snapshot {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		n.Set(k, snapshot[k])
	}
	n.sealed = true
	return n
}

// ReadOnly reports whether the node is sealed.
func (n *Node) ReadOnly() bool { return n.sealed }
