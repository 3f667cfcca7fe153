package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/ciacob/go-shard/debug"
)

var (
	dumpFrom     string
	dumpFallback string
)

var dumpCmd = &cobra.Command{
	Use:   "dump <file|->",
	Short: "Print a document's tree human-readably",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := loadTree(args[0], dumpFrom, dumpFallback)
		if err != nil {
			return err
		}
		debug.Dump(os.Stdout, n)
		return nil
	},
}

func init() {
	dumpCmd.Flags().StringVar(&dumpFrom, "from", "", "input format (binary|json|yaml; default: by extension)")
	dumpCmd.Flags().StringVar(&dumpFallback, "fallback", "", "type name substituted for unregistered recorded types")
}
