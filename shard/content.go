package shard

import (
	"math"

	"github.com/spf13/cast"
)

// entry is one slot of the ordered content map. Slot order is semantically
// meaningful: codecs reproduce it byte for byte.
type entry struct {
	key string
	val any
}

// Entry is the exported view of a content slot, used by codecs and dumpers
// that need the map in insertion order.
type Entry struct {
	Key   string
	Value any
}

// Has reports whether key is present.
func (n *Node) Has(key string) bool {
	_, ok := n.index[key]
	return ok
}

// Get returns the value stored under key, or nil when absent. Use GetOK to
// distinguish an absent key from a stored null.
func (n *Node) Get(key string) any {
	v, _ := n.GetOK(key)
	return v
}

func (n *Node) GetOK(key string) (any, bool) {
	i, ok := n.index[key]
	if !ok {
		return nil, false
	}
	return n.entries[i].val, true
}

// Set stores value under key and returns the node for chaining. An existing
// key is updated in place, keeping its original slot in the ordering; a new
// key is appended at the end. Numeric values are normalized to int64/float64
// so that kind tags stay stable across codecs. No-op when sealed.
func (n *Node) Set(key string, value any) *Node {
	if n.sealed {
		return n
	}
	v := normalize(value)
	if i, ok := n.index[key]; ok {
		n.entries[i].val = v
		return n
	}
	n.entries = append(n.entries, entry{key: key, val: v})
	n.index[key] = len(n.entries) - 1
	return n
}

// Delete removes key and its value, closing the slot. No-op (false) when the
// key is absent or the node is sealed.
func (n *Node) Delete(key string) bool {
	if n.sealed {
		return false
	}
	i, ok := n.index[key]
	if !ok {
		return false
	}
	n.entries = append(n.entries[:i], n.entries[i+1:]...)
	delete(n.index, key)
	for j := i; j < len(n.entries); j++ {
		n.index[n.entries[j].key] = j
	}
	return true
}

// Keys returns the content keys in insertion order.
func (n *Node) Keys() []string {
	res := make([]string, len(n.entries))
	for i := range n.entries {
		res[i] = n.entries[i].key
	}
	return res
}

// Entries returns the content map in insertion order.
func (n *Node) Entries() []Entry {
	res := make([]Entry, len(n.entries))
	for i := range n.entries {
		res[i] = Entry{Key: n.entries[i].key, Value: n.entries[i].val}
	}
	return res
}

// normalize folds the numeric widths Go programs actually pass into the two
// numeric kinds the model carries. Unsigned values above math.MaxInt64 do not
// fit the integer kind and pass through unconverted, like every other
// unsupported type, to be rejected by KindOf at the codec boundary.
func normalize(v any) any {
	switch x := v.(type) {
	case nil, bool, string, int64, float64:
		return x
	case int, int8, int16, int32, uint8, uint16, uint32:
		return cast.ToInt64(x)
	case uint:
		if uint64(x) > math.MaxInt64 {
			return x
		}
		return int64(x)
	case uint64:
		if x > math.MaxInt64 {
			return x
		}
		return int64(x)
	case float32:
		return cast.ToFloat64(x)
	}
	return v
}

// valueEqual compares two normalized content values. Values of different
// kinds are never equal; in particular an int64 and a float64 holding the
// same number differ.
func valueEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	switch x := a.(type) {
	case bool:
		y, ok := b.(bool)
		return ok && x == y
	case int64:
		y, ok := b.(int64)
		return ok && x == y
	case float64:
		y, ok := b.(float64)
		return ok && x == y
	case string:
		y, ok := b.(string)
		return ok && x == y
	}
	return false
}
