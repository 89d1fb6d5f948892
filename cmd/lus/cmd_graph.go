package main

import (
	"os"

	"github.com/dhamidi/lus/compiler"
	"github.com/spf13/cobra"
)

func newGraphCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "graph <file> <node>",
		Short: "Print the dataflow graph of a node in DOT format",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename, node := args[0], args[1]

			db := compiler.NewDatabase()
			if _, err := db.AddSourceFile(filename); err != nil {
				return err
			}
			g, err := db.NodeGraph(node)
			if err != nil {
				return err
			}
			return g.DOT(os.Stdout)
		},
	}

	return cmd
}
