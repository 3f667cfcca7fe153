package main

import (
	"github.com/spf13/cobra"

	"github.com/ciacob/go-shard/encode"
	"github.com/ciacob/go-shard/format"
)

var (
	flagFrom     string
	flagTo       string
	flagOut      string
	flagIndent   int
	flagFallback string
)

var convertCmd = &cobra.Command{
	Use:   "convert <file|->",
	Short: "Convert a document between binary, JSON and YAML",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := loadTree(args[0], flagFrom, flagFallback)
		if err != nil {
			return err
		}
		to, err := resolveFormat(flagTo, flagOut)
		if err != nil {
			return err
		}
		opts := []encode.Option{encode.WithFormat(to)}
		if flagIndent > 0 {
			opts = append(opts, encode.WithIndent(flagIndent))
		}
		data, err := encode.Marshal(n, opts...)
		if err != nil {
			return err
		}
		if to == format.JSON && flagIndent == 0 {
			data = append(data, '\n')
		}
		return writeOutput(flagOut, data)
	},
}

func init() {
	convertCmd.Flags().StringVar(&flagFrom, "from", "", "input format (binary|json|yaml; default: by extension)")
	convertCmd.Flags().StringVar(&flagTo, "to", "", "output format (binary|json|yaml; default: by extension)")
	convertCmd.Flags().StringVarP(&flagOut, "out", "o", "", "output file (default: stdout)")
	convertCmd.Flags().IntVar(&flagIndent, "indent", 0, "pretty-print JSON with this indent width")
	convertCmd.Flags().StringVar(&flagFallback, "fallback", "", "type name substituted for unregistered recorded types (e.g. shard.Node)")
}
