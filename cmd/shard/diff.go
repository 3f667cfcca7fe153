package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ciacob/go-shard/debug"
)

var (
	diffFrom     string
	diffFallback string
)

var diffCmd = &cobra.Command{
	Use:   "diff <a> <b>",
	Short: "Show a line diff between two documents",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadTree(args[0], diffFrom, diffFallback)
		if err != nil {
			return err
		}
		b, err := loadTree(args[1], diffFrom, diffFallback)
		if err != nil {
			return err
		}
		out, err := debug.Diff(a, b)
		if err != nil {
			return err
		}
		if out != "" {
			fmt.Print(out)
		}
		return nil
	},
}

func init() {
	diffCmd.Flags().StringVar(&diffFrom, "from", "", "input format for both files (binary|json|yaml; default: by extension)")
	diffCmd.Flags().StringVar(&diffFallback, "fallback", "", "type name substituted for unregistered recorded types")
}
