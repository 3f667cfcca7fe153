package shard

import "testing"

func buildTree() *Node {
	root := New().Set("title", "doc").Set("rev", 3)
	a := New().Set("type", "section")
	b := New().Set("type", "section").Set("weight", 1.5)
	root.AddChild(a)
	root.AddChild(b)
	b.AddChild(New().Set("leaf", true))
	return root
}

func TestCloneDeep(t *testing.T) {
	root := buildTree()
	c := root.Clone(true)

	if !c.Same(root) {
		t.Error("deep clone is not Same as original")
	}
	if c == root {
		t.Error("clone is the same handle")
	}
	if c.Parent() != nil {
		t.Error("clone has a parent")
	}
	if c.ChildAt(1).ChildAt(0) == root.ChildAt(1).ChildAt(0) {
		t.Error("deep clone shares grandchildren")
	}

	// mutating the clone leaves the original alone
	c.Set("title", "changed")
	if root.Get("title") != "doc" {
		t.Error("clone mutation leaked into original")
	}
}

func TestCloneShallow(t *testing.T) {
	root := buildTree()
	c := root.Clone(false)

	if c.NumChildren() != 0 {
		t.Errorf("shallow clone has %d children", c.NumChildren())
	}
	if c.ID() != root.ID() {
		t.Error("clone changed id")
	}
	if c.FQN() != root.FQN() {
		t.Error("clone changed type name")
	}
	if !c.Like(New().Set("title", "doc").Set("rev", 3)) {
		t.Error("shallow clone content mismatch")
	}
}

func TestSameAndLike(t *testing.T) {
	a := buildTree()
	deep := a.Clone(true)

	if !a.Same(deep) || !a.Like(deep) {
		t.Fatal("deep clone should be Same and Like")
	}

	// structurally identical tree with fresh ids: Like but not Same
	b := buildTree()
	if a.Same(b) {
		t.Error("fresh tree with new ids is Same")
	}
	if !a.Like(b) {
		t.Error("structurally identical tree is not Like")
	}

	// content difference breaks both
	b.ChildAt(0).Set("type", "chapter")
	if a.Like(b) {
		t.Error("Like ignores content difference")
	}

	// child order matters
	c := buildTree()
	first := c.ChildAt(0)
	c.DeleteChild(first)
	c.AddChild(first) // now last
	if a.Like(c) {
		t.Error("Like ignores child order")
	}

	// int and float of equal magnitude differ
	x := New().Set("v", int64(1))
	y := New().Set("v", float64(1))
	if x.Like(y) {
		t.Error("int64(1) compares equal to float64(1)")
	}

	if a.Same(nil) || a.Like(nil) {
		t.Error("comparison against nil succeeded")
	}
}

func TestSameContentAsSet(t *testing.T) {
	// same key/value mapping, different slot order: still Same
	a := New().Set("x", 1).Set("y", 2)
	b := a.Clone(false)
	b.Delete("x")
	b.Set("x", 1) // now ordered y, x
	if !a.Same(b) {
		t.Error("content order should not affect Same")
	}
}
