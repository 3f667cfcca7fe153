package shard

import (
	"reflect"
	"testing"
)

func TestReadOnlyReads(t *testing.T) {
	n := NewReadOnly(map[string]any{"b": 2, "a": "x", "c": nil})

	if !n.ReadOnly() {
		t.Fatal("ReadOnly() = false")
	}
	if n.FQN() != ReadOnlyFQN {
		t.Errorf("FQN() = %q", n.FQN())
	}
	// snapshot keys are laid out sorted
	if got := n.Keys(); !reflect.DeepEqual(got, []string{"a", "b", "c"}) {
		t.Errorf("Keys() = %v", got)
	}
	if n.Get("a") != "x" || n.Get("b") != int64(2) {
		t.Error("read contract broken")
	}
	if v, ok := n.GetOK("c"); v != nil || !ok {
		t.Error("stored null not readable")
	}
}

func TestReadOnlyMutatorsNoOp(t *testing.T) {
	snapshot := map[string]any{"k": "v"}
	n := NewReadOnly(snapshot)

	n.Set("k", "changed")
	n.Set("new", 1)
	n.Delete("k")
	n.AddChild(New())
	n.AddChildAt(New(), 0)
	n.WithID("forged")
	n.CopyFrom(New().Set("x", 1))

	if n.Get("k") != "v" {
		t.Error("Set/Delete changed sealed content")
	}
	if n.Has("new") || n.Has("x") {
		t.Error("sealed node gained keys")
	}
	if n.NumChildren() != 0 {
		t.Error("sealed node gained children")
	}
}

func TestReadOnlyAttachable(t *testing.T) {
	parent := New()
	ro := NewReadOnly(map[string]any{"k": 1})

	if !parent.AddChild(ro) {
		t.Fatal("could not attach read-only node")
	}
	if ro.Parent() != parent || ro.Index() != 0 {
		t.Error("read-only node not linked under parent")
	}
	if got := ro.Route(); got != "-1_0" {
		t.Errorf("Route() = %q", got)
	}

	// walks and find still work through it
	found := parent.FindValue(1, "k")
	if len(found) != 1 || found[0] != ro {
		t.Error("read-only node not found by value")
	}
}

func TestReadOnlyClone(t *testing.T) {
	ro := NewReadOnly(map[string]any{"k": 1})
	c := ro.Clone(true)
	if !c.ReadOnly() {
		t.Error("clone of sealed node is mutable")
	}
	if !c.Same(ro) {
		t.Error("clone differs from original")
	}
}
