// Package workspace keeps the files an editor has open in sync with a
// compiler database and serves them over the language server protocol.
package workspace

import (
	"github.com/dhamidi/lus/compiler"
	"github.com/dhamidi/lus/diag"
)

// Diagnostic is one problem in a file, with 0-based line and column
// positions as the language server protocol expects them.
type Diagnostic struct {
	StartLine int
	StartCol  int
	EndLine   int
	EndCol    int
	Message   string
}

// Workspace tracks open files in a compiler database.
type Workspace struct {
	db *compiler.Database
}

func New() *Workspace {
	return &Workspace{db: compiler.NewDatabase()}
}

func (w *Workspace) Database() *compiler.Database {
	return w.db
}

// Update reparses one file and returns its current diagnostics: syntax
// problems, semantic check failures, and lexical errors, which abort
// parsing and come back as a single diagnostic.
func (w *Workspace) Update(path string, src []byte) []Diagnostic {
	f, err := w.db.AddSource(path, src)
	if err != nil {
		line, col := diag.Position(src, len(src))
		return []Diagnostic{{
			EndLine: line - 1,
			EndCol:  col - 1,
			Message: err.Error(),
		}}
	}

	var out []Diagnostic
	for _, e := range f.Diags {
		startLine, startCol := diag.Position(src, e.Start)
		endLine, endCol := diag.Position(src, e.End)
		out = append(out, Diagnostic{
			StartLine: startLine - 1,
			StartCol:  startCol - 1,
			EndLine:   endLine - 1,
			EndCol:    endCol - 1,
			Message:   e.Error(),
		})
	}
	for _, err := range w.db.CheckFile(path) {
		out = append(out, Diagnostic{Message: err.Error()})
	}
	return out
}

// Close drops a file from the database.
func (w *Workspace) Close(path string) {
	w.db.Remove(path)
}
