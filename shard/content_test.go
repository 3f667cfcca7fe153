package shard

import (
	"math"
	"reflect"
	"testing"
)

func TestContentOrder(t *testing.T) {
	n := New()
	n.Set("c", 1).Set("a", 2).Set("b", 3)

	want := []string{"c", "a", "b"}
	if got := n.Keys(); !reflect.DeepEqual(got, want) {
		t.Errorf("Keys() = %v, want %v", got, want)
	}

	// updating an existing key keeps its slot
	n.Set("a", 42)
	if got := n.Keys(); !reflect.DeepEqual(got, want) {
		t.Errorf("Keys() after update = %v, want %v", got, want)
	}
	if got := n.Get("a"); got != int64(42) {
		t.Errorf("Get(a) = %v, want 42", got)
	}

	// a new key appends at the end
	n.Set("d", nil)
	if got := n.Keys(); !reflect.DeepEqual(got, []string{"c", "a", "b", "d"}) {
		t.Errorf("Keys() after append = %v", got)
	}
}

func TestContentDelete(t *testing.T) {
	n := New()
	n.Set("a", 1).Set("b", 2).Set("c", 3)

	if !n.Delete("b") {
		t.Fatal("Delete(existing) = false")
	}
	if n.Has("b") {
		t.Error("Has(b) after delete")
	}
	if got := n.Keys(); !reflect.DeepEqual(got, []string{"a", "c"}) {
		t.Errorf("Keys() = %v", got)
	}
	// remaining keys still resolve
	if n.Get("c") != int64(3) {
		t.Errorf("Get(c) = %v, want 3", n.Get("c"))
	}
	if n.Delete("missing") {
		t.Error("Delete(missing) = true")
	}
}

func TestContentNullVsAbsent(t *testing.T) {
	n := New()
	n.Set("present", nil)

	if !n.Has("present") {
		t.Error("Has(present) = false for stored null")
	}
	if n.Has("absent") {
		t.Error("Has(absent) = true")
	}
	if v, ok := n.GetOK("present"); v != nil || !ok {
		t.Error("GetOK(present) should report a stored null")
	}
	if _, ok := n.GetOK("absent"); ok {
		t.Error("GetOK(absent) = ok")
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want any
	}{
		{"int", int(7), int64(7)},
		{"int32", int32(7), int64(7)},
		{"uint8", uint8(7), int64(7)},
		{"uint64", uint64(7), int64(7)},
		{"int64", int64(7), int64(7)},
		{"float32", float32(1.5), float64(1.5)},
		{"float64", 1.5, 1.5},
		{"bool", true, true},
		{"string", "s", "s"},
		{"nil", nil, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := New().Set("k", tt.in)
			if got := n.Get("k"); got != tt.want {
				t.Errorf("Get() = %v (%T), want %v (%T)", got, got, tt.want, tt.want)
			}
		})
	}
}

func TestNormalizeUintOverflow(t *testing.T) {
	n := New().Set("big", uint64(math.MaxUint64))

	// the value must not wrap negative; it stays unconverted and fails
	// the kind check instead
	v := n.Get("big")
	if _, ok := v.(int64); ok {
		t.Fatalf("uint64 overflow wrapped to int64 %v", v)
	}
	if _, err := KindOf(v); err == nil {
		t.Error("KindOf accepted an out-of-range unsigned value")
	}

	// in-range unsigned values still normalize
	n.Set("ok", uint64(math.MaxInt64))
	if got := n.Get("ok"); got != int64(math.MaxInt64) {
		t.Errorf("Get(ok) = %v (%T)", got, got)
	}
	n.Set("u", uint(7))
	if got := n.Get("u"); got != int64(7) {
		t.Errorf("Get(u) = %v (%T)", got, got)
	}
}

func TestKindOf(t *testing.T) {
	for _, bad := range []any{[]byte("x"), map[string]any{}, struct{}{}} {
		if _, err := KindOf(bad); err == nil {
			t.Errorf("KindOf(%T) = nil error", bad)
		}
	}
	if k, err := KindOf(int64(1)); err != nil || k != KindInt {
		t.Errorf("KindOf(int64) = %v, %v", k, err)
	}
	if k, err := KindOf(nil); err != nil || k != KindNull {
		t.Errorf("KindOf(nil) = %v, %v", k, err)
	}
}
