package shard

import "github.com/google/uuid"

// Type names of the node kinds this package constructs itself. Applications
// register their own names alongside these in a registry.
const (
	DefaultFQN  = "shard.Node"
	ReadOnlyFQN = "shard.ReadOnly"
)

// Node is the tree's single entity: an identity, an ordered content map and
// an ordered, exclusively-owned children list. The zero value is not usable;
// construct through New, NewTyped or NewReadOnly.
type Node struct {
	id  string
	fqn string

	entries []entry
	index   map[string]int

	parent      *Node
	parentIndex int
	children    []*Node

	sealed bool
}

// New creates an empty node with a fresh UUID identity.
func New() *Node {
	return NewTyped(DefaultFQN)
}

// NewTyped creates an empty node carrying the given stable type name. The
// type name travels through clones and codecs and selects the factory used
// to reconstruct the node on decode.
func NewTyped(fqn string) *Node {
	return &Node{
		id:          uuid.NewString(),
		fqn:         fqn,
		index:       map[string]int{},
		parentIndex: -1,
	}
}

// ID returns the node's identity. It never changes after construction,
// except when a decode overwrites the node wholesale.
func (n *Node) ID() string { return n.id }

// WithID overrides the node's identity and returns the node for chaining.
// Intended for decoders reconstructing recorded nodes; no-op when sealed.
func (n *Node) WithID(id string) *Node {
	if n.sealed || id == "" {
		return n
	}
	n.id = id
	return n
}

// FQN returns the node's stable type name.
func (n *Node) FQN() string { return n.fqn }

func (n *Node) Parent() *Node { return n.parent }

// Index is the node's 0-based position among its siblings, or -1 for a node
// with no parent.
func (n *Node) Index() int { return n.parentIndex }

// Level is the node's depth from the root; a root is at level 0.
func (n *Node) Level() int {
	l := 0
	for p := n.parent; p != nil; p = p.parent {
		l++
	}
	return l
}

// Root walks the parent chain to the top.
func (n *Node) Root() *Node {
	res := n
	for res.parent != nil {
		res = res.parent
	}
	return res
}

func (n *Node) NumChildren() int { return len(n.children) }

// ChildAt returns the child at i, or nil when i is out of range.
func (n *Node) ChildAt(i int) *Node {
	if i < 0 || i >= len(n.children) {
		return nil
	}
	return n.children[i]
}

// Children returns a copy of the children list in sibling order.
func (n *Node) Children() []*Node {
	res := make([]*Node, len(n.children))
	copy(res, n.children)
	return res
}

func (n *Node) FirstChild() *Node {
	if len(n.children) == 0 {
		return nil
	}
	return n.children[0]
}

func (n *Node) LastChild() *Node {
	if len(n.children) == 0 {
		return nil
	}
	return n.children[len(n.children)-1]
}

// PrevSibling returns the sibling immediately before this node, or nil.
func (n *Node) PrevSibling() *Node {
	if n.parent == nil {
		return nil
	}
	return n.parent.ChildAt(n.parentIndex - 1)
}

// NextSibling returns the sibling immediately after this node, or nil.
func (n *Node) NextSibling() *Node {
	if n.parent == nil {
		return nil
	}
	return n.parent.ChildAt(n.parentIndex + 1)
}

// AddChild appends c to this node's children. Attaching the node to itself
// or to one of its ancestors is rejected as a silent no-op; the return value
// reports whether the tree changed. A node that already has a parent is
// first unlinked from it, so a successful AddChild reparents rather than
// duplicates.
func (n *Node) AddChild(c *Node) bool {
	return n.AddChildAt(c, len(n.children))
}

// AddChildAt inserts c at position i, shifting later siblings right. The
// index is clamped to [0, NumChildren]. Same rejection rules as AddChild.
func (n *Node) AddChildAt(c *Node, i int) bool {
	if c == nil || n.sealed {
		return false
	}
	// Reject self-attach and ancestor-attach; either would close a cycle.
	for a := n; a != nil; a = a.parent {
		if a == c {
			return false
		}
	}
	if c.parent != nil {
		c.parent.DeleteChild(c)
	}
	if i < 0 {
		i = 0
	}
	if i > len(n.children) {
		i = len(n.children)
	}
	n.children = append(n.children, nil)
	copy(n.children[i+1:], n.children[i:])
	n.children[i] = c
	c.parent = n
	n.reindex(i)
	return true
}

// DeleteChild unlinks c if it is a direct child of this node, repairing
// sibling positions. Any other argument is a no-op.
func (n *Node) DeleteChild(c *Node) bool {
	if c == nil || c.parent != n {
		return false
	}
	i := c.parentIndex
	if i < 0 || i >= len(n.children) || n.children[i] != c {
		return false
	}
	n.children = append(n.children[:i], n.children[i+1:]...)
	n.reindex(i)
	c.parent = nil
	c.parentIndex = -1
	return true
}

func (n *Node) reindex(from int) {
	for i := from; i < len(n.children); i++ {
		n.children[i].parentIndex = i
	}
}

// CopyFrom adopts o's identity, type name, content and children in place,
// replacing this node's own wholesale. The node keeps its position under its
// current parent, so references held by callers stay valid; o must be
// discarded afterwards. Decoders use this as their final, all-or-nothing
// step. No-op when sealed.
func (n *Node) CopyFrom(o *Node) {
	if n.sealed || o == nil || o == n {
		return
	}
	for _, c := range n.children {
		c.parent = nil
		c.parentIndex = -1
	}
	n.id = o.id
	n.fqn = o.fqn
	n.entries = o.entries
	n.index = o.index
	n.children = o.children
	for _, c := range n.children {
		c.parent = n
	}
	o.entries = nil
	o.index = map[string]int{}
	o.children = nil
}
