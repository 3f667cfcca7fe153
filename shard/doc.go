// Package shard implements an ordered-tree document model.
//
// A Node carries a stable identity, an ordered key/value content map over a
// closed primitive set, and parent/child structure. Mutation is safe by
// construction: attaching a node to itself or to one of its descendants is a
// silent no-op, and attaching a node that already has a parent reparents it
// rather than duplicating it.
//
// # Usage
//
//	root := shard.New()
//	root.Set("title", "example")
//
//	child := shard.New()
//	child.Set("type", "section")
//	root.AddChild(child)
//
//	child.Route()              // "-1_0"
//	root.ByRoute("-1_0")       // child
//
// # Related Packages
//
//   - github.com/ciacob/go-shard/encode - binary/JSON/YAML codecs
//   - github.com/ciacob/go-shard/registry - type name to factory mapping
//   - github.com/ciacob/go-shard/query - expression search over trees
package shard
