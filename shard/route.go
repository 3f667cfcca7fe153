package shard

import (
	"strconv"
	"strings"
)

// routeSep joins route segments. The root segment is always the literal
// "-1": a root has no sibling index of its own.
const routeSep = "_"

// Route builds the node's address relative to its root by collecting sibling
// indices up the parent chain, root-first. A root yields "-1"; the third
// level at indices [1,0] under the root yields "-1_1_0".
func (n *Node) Route() string {
	segs := []string{}
	for m := n; m != nil; m = m.parent {
		segs = append(segs, strconv.Itoa(m.parentIndex))
	}
	for i, j := 0, len(segs)-1; i < j; i, j = i+1, j-1 {
		segs[i], segs[j] = segs[j], segs[i]
	}
	return strings.Join(segs, routeSep)
}

// ByRoute resolves a route produced by Route against this node, which plays
// the root role: the leading segment must be the literal "-1". Each further
// segment selects the child at that index, descending. Returns nil when any
// segment is malformed or out of range.
func (n *Node) ByRoute(route string) *Node {
	parts := strings.Split(route, routeSep)
	if parts[0] != "-1" {
		return nil
	}
	cur := n
	for _, p := range parts[1:] {
		i, err := strconv.Atoi(p)
		if err != nil || i < 0 || i >= len(cur.children) {
			return nil
		}
		cur = cur.children[i]
	}
	return cur
}
