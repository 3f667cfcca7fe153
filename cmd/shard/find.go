package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ciacob/go-shard/query"
)

var (
	findFrom     string
	findFallback string
	findExpr     string
)

var findCmd = &cobra.Command{
	Use:   "find <file|->",
	Short: "Search a document with a match expression",
	Long: `Search evaluates a boolean expression against every node. The
expression sees id, fqn, route, level, index, numChildren and the content
map.

	shard find doc.json --expr 'content.type == "target"'`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := loadTree(args[0], findFrom, findFallback)
		if err != nil {
			return err
		}
		matches, err := query.Find(n, findExpr)
		if err != nil {
			return err
		}
		for _, m := range matches {
			fmt.Printf("%s %s\n", m.Route(), m.ID())
		}
		return nil
	},
}

func init() {
	findCmd.Flags().StringVar(&findFrom, "from", "", "input format (binary|json|yaml; default: by extension)")
	findCmd.Flags().StringVar(&findFallback, "fallback", "", "type name substituted for unregistered recorded types")
	findCmd.Flags().StringVar(&findExpr, "expr", "true", "match expression")
}
