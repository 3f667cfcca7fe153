package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ciacob/go-shard/shard"
)

var (
	routesFrom     string
	routesFallback string
)

var routesCmd = &cobra.Command{
	Use:   "routes <file|->",
	Short: "List every node's route, one per line",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := loadTree(args[0], routesFrom, routesFallback)
		if err != nil {
			return err
		}
		n.Walk(func(m *shard.Node, _ func()) {
			fmt.Println(m.Route())
		})
		return nil
	},
}

func init() {
	routesCmd.Flags().StringVar(&routesFrom, "from", "", "input format (binary|json|yaml; default: by extension)")
	routesCmd.Flags().StringVar(&routesFallback, "fallback", "", "type name substituted for unregistered recorded types")
}
