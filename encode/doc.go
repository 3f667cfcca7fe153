// Package encode serializes shard trees to binary, JSON and YAML, and
// decodes any of the three back into a node in place.
//
// # Usage
//
//	data, err := encode.Marshal(root)                              // binary
//	data, err := encode.Marshal(root, encode.WithFormat(format.JSON))
//
//	target := shard.New()
//	err = encode.Unmarshal(target, data, encode.WithFormat(format.JSON))
//
// Decoding overwrites the target wholesale: its id, type name, content and
// children are replaced with the decoded values, so references to the target
// stay valid. A decode either fully succeeds or leaves the target untouched.
//
// # Binary layout
//
// Per node, recursively, big-endian: 36-byte id; uint16 length-prefixed type
// name; one isFlat byte (1 iff the node has no children); uint32 content
// entry count; per entry a uint16 length-prefixed key, one kind tag byte and
// the value bytes (bool one byte, int64 and float64 eight bytes, strings
// uint32 length-prefixed UTF-8); when not flat, a uint32 child count
// followed by each child's encoding in sibling order. Content entries keep
// their insertion order, never re-sorted, so structurally identical trees
// encode byte-identically.
//
// # Related Packages
//
//   - github.com/ciacob/go-shard/shard - the tree model
//   - github.com/ciacob/go-shard/registry - type resolution during decode
package encode
