// Package query matches nodes with compiled expressions, a convenience
// layer over the tree's callback search.
//
// # Usage
//
//	matches, err := query.Find(root, `content.type == "target"`)
//
// # Related Packages
//
//   - github.com/ciacob/go-shard/shard - FindFunc for programmatic predicates
package query
