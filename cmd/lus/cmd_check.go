package main

import (
	"fmt"
	"os"

	"github.com/dhamidi/lus/compiler"
	"github.com/dhamidi/lus/diag"
	"github.com/dhamidi/lus/project"
	"github.com/spf13/cobra"
)

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [files...]",
		Short: "Parse and check .lus files, following includes",
		Long: `Parse and check .lus files, following includes.

Without arguments, check looks for a lus.toml manifest in the current
directory or above and checks every source file of that project.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			files := args
			if len(files) == 0 {
				p, err := project.Find(".")
				if err != nil {
					return err
				}
				files, err = p.SourceFiles()
				if err != nil {
					return err
				}
			}

			db := compiler.NewDatabase()
			for _, file := range files {
				if _, err := db.AddSourceFile(file); err != nil {
					return err
				}
			}

			problems := 0
			for _, f := range db.Files() {
				if len(f.Diags) > 0 {
					diag.Print(os.Stderr, f.Path, f.Src, f.Diags)
					problems += len(f.Diags)
				}
				for _, err := range db.CheckFile(f.Path) {
					fmt.Fprintf(os.Stderr, "%s: error: %v\n", f.Path, err)
					problems++
				}
			}
			if problems > 0 {
				return fmt.Errorf("%d problems", problems)
			}
			fmt.Printf("checked %d files\n", len(db.Files()))
			return nil
		},
	}

	return cmd
}
