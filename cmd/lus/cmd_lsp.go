package main

import (
	"github.com/dhamidi/lus/workspace"
	"github.com/spf13/cobra"
)

func newLSPCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lsp",
		Short: "Serve Lustre diagnostics over the language server protocol on stdio",
		RunE: func(cmd *cobra.Command, args []string) error {
			return workspace.NewLSPServer(version).RunStdio()
		},
	}
}
