package query

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/ciacob/go-shard/debug"
	"github.com/ciacob/go-shard/shard"
)

// Query is a compiled match expression, reusable across trees.
type Query struct {
	src  string
	prog *vm.Program
}

// Compile compiles a boolean expression over the per-node environment:
// id, fqn, route, level, index, numChildren and the content map.
//
//	q, err := query.Compile(`content.type == "target" && level > 0`)
func Compile(src string) (*Query, error) {
	prog, err := expr.Compile(src, expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("compile %q: %w", src, err)
	}
	return &Query{src: src, prog: prog}, nil
}

// Run evaluates the query against root and every descendant in pre-order
// and returns the matching nodes.
func (q *Query) Run(root *shard.Node) ([]*shard.Node, error) {
	var (
		res     []*shard.Node
		evalErr error
	)
	root.Walk(func(n *shard.Node, cancel func()) {
		out, err := vm.Run(q.prog, envFor(n))
		if err != nil {
			evalErr = fmt.Errorf("run %q at %s: %w", q.src, n.Route(), err)
			cancel()
			return
		}
		if ok, _ := out.(bool); ok {
			if debug.Query() {
				debug.Logf("query %q matched %s\n", q.src, n.Route())
			}
			res = append(res, n)
		}
	})
	if evalErr != nil {
		return nil, evalErr
	}
	return res, nil
}

// Find compiles and runs src against root.
func Find(root *shard.Node, src string) ([]*shard.Node, error) {
	q, err := Compile(src)
	if err != nil {
		return nil, err
	}
	return q.Run(root)
}

func envFor(n *shard.Node) map[string]any {
	content := map[string]any{}
	for _, e := range n.Entries() {
		content[e.Key] = e.Value
	}
	return map[string]any{
		"id":          n.ID(),
		"fqn":         n.FQN(),
		"route":       n.Route(),
		"level":       n.Level(),
		"index":       n.Index(),
		"numChildren": n.NumChildren(),
		"content":     content,
	}
}
