package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "shard",
	Short: "Shard inspects and converts ordered-tree documents",
	Long: `Shard reads tree documents in binary, JSON or YAML form and can
convert between formats, dump them human-readably, search them with match
expressions and diff two documents.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(dumpCmd)
	rootCmd.AddCommand(routesCmd)
	rootCmd.AddCommand(findCmd)
	rootCmd.AddCommand(diffCmd)
}
