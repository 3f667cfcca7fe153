// Package registry maps stable type names to node factories for polymorphic
// decode.
//
// # Usage
//
//	registry.Register("app.Section", func() *shard.Node {
//	    return shard.NewTyped("app.Section")
//	})
//
// Register application types before decoding any buffer that may reference
// them; an unregistered name fails the decode unless a fallback is supplied.
package registry
