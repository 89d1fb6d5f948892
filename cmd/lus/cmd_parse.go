package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dhamidi/lus/diag"
	"github.com/dhamidi/lus/lustre"
	"github.com/dhamidi/lus/syntax"
	"github.com/spf13/cobra"
)

func newParseCmd() *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse a .lus file and dump its syntax tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := args[0]
			src, err := os.ReadFile(filename)
			if err != nil {
				return fmt.Errorf("read %s: %w", filename, err)
			}

			green, diags, err := lustre.Parse(src, filename)
			if err != nil {
				return err
			}

			switch outputFormat {
			case "tree":
				fmt.Print(green.Dump())
			case "json":
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				if err := enc.Encode(treeJSON(green)); err != nil {
					return fmt.Errorf("encode: %w", err)
				}
			default:
				return fmt.Errorf("unknown format: %s", outputFormat)
			}

			if len(diags) > 0 {
				diag.Print(os.Stderr, filename, src, diags)
				return fmt.Errorf("%d syntax errors", len(diags))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "tree", "output format (tree, json)")

	return cmd
}

type jsonNode struct {
	Kind     string     `json:"kind"`
	Text     string     `json:"text,omitempty"`
	Children []jsonNode `json:"children,omitempty"`
}

func treeJSON(n *syntax.Node[lustre.Kind]) jsonNode {
	out := jsonNode{Kind: n.Kind().String()}
	for _, c := range n.Children() {
		switch c := c.(type) {
		case *syntax.Node[lustre.Kind]:
			out.Children = append(out.Children, treeJSON(c))
		case syntax.Token[lustre.Kind]:
			out.Children = append(out.Children, jsonNode{Kind: c.Kind.String(), Text: c.Text})
		}
	}
	return out
}
