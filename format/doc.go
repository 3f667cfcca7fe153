// Package format names the serialization formats a shard tree can take.
//
// # Usage
//
//	f, err := format.ParseFormat("json")
//
// # Related Packages
//
//   - github.com/ciacob/go-shard/encode - codec implementations
package format
