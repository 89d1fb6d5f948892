// Package compiler maintains the set of parsed source files of a
// compilation session and answers queries against it: file lookup, node
// lookup across files, semantic checks and dataflow graph construction.
package compiler

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/dhamidi/lus/ast"
	"github.com/dhamidi/lus/dataflow"
	"github.com/dhamidi/lus/lustre"
	"github.com/dhamidi/lus/syntax"
)

// SourceFile is one parsed file: its raw bytes, the root view over its
// syntax tree and the diagnostics collected while parsing it.
type SourceFile struct {
	Path  string
	Src   []byte
	Root  ast.Root
	Diags []*syntax.Error
}

// Database holds every parsed file of a session, keyed by path. Safe for
// concurrent use.
type Database struct {
	mu    sync.RWMutex
	files map[string]*SourceFile
}

func NewDatabase() *Database {
	return &Database{files: map[string]*SourceFile{}}
}

// AddSource parses src and stores it under path, replacing any previous
// version. Only lexical failures are returned as an error; grammar
// problems end up in the stored file's diagnostics.
func (d *Database) AddSource(path string, src []byte) (*SourceFile, error) {
	green, diags, err := lustre.Parse(src, path)
	if err != nil {
		return nil, err
	}
	f := &SourceFile{Path: path, Src: src, Root: ast.NewRoot(green), Diags: diags}
	d.mu.Lock()
	d.files[path] = f
	d.mu.Unlock()
	return f, nil
}

// AddSourceFile reads and parses path, then follows its include directives
// relative to the file's directory. Files already in the database are not
// loaded again, which also terminates include cycles.
func (d *Database) AddSourceFile(path string) (*SourceFile, error) {
	if f, ok := d.File(path); ok {
		return f, nil
	}
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	f, err := d.AddSource(path, src)
	if err != nil {
		return nil, err
	}
	dir := filepath.Dir(path)
	for _, inc := range f.Root.Includes() {
		if inc.Path() == "" {
			continue
		}
		if _, err := d.AddSourceFile(filepath.Join(dir, inc.Path())); err != nil {
			return nil, err
		}
	}
	return f, nil
}

func (d *Database) Remove(path string) {
	d.mu.Lock()
	delete(d.files, path)
	d.mu.Unlock()
}

func (d *Database) File(path string) (*SourceFile, bool) {
	d.mu.RLock()
	f, ok := d.files[path]
	d.mu.RUnlock()
	return f, ok
}

// Files returns every stored file, sorted by path.
func (d *Database) Files() []*SourceFile {
	d.mu.RLock()
	out := make([]*SourceFile, 0, len(d.files))
	for _, f := range d.files {
		out = append(out, f)
	}
	d.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	return out
}

// FindNode searches every file for a node or function declaration.
func (d *Database) FindNode(name string) (ast.NodeDecl, *SourceFile, bool) {
	for _, f := range d.Files() {
		if decl, ok := f.Root.Node(name); ok {
			return decl, f, true
		}
	}
	return ast.NodeDecl{}, nil, false
}

// NodeGraph builds the dataflow graph of a named node. Constants declared
// anywhere in the database count as defined names inside the node.
func (d *Database) NodeGraph(name string) (*dataflow.Graph, error) {
	decl, _, ok := d.FindNode(name)
	if !ok {
		return nil, fmt.Errorf("node %s not found", name)
	}
	return dataflow.Build(decl, d.constNames()...)
}

// constNames collects every constant declared across the database.
func (d *Database) constNames() []string {
	var out []string
	for _, f := range d.Files() {
		for _, c := range f.Root.Constants() {
			out = append(out, c.Names()...)
		}
	}
	return out
}

// CheckFile runs the semantic checks over one file: every node body must
// bind each variable exactly once and read only bound variables. Syntax
// diagnostics are not repeated here.
func (d *Database) CheckFile(path string) []error {
	f, ok := d.File(path)
	if !ok {
		return []error{fmt.Errorf("file %s not loaded", path)}
	}
	globals := d.constNames()
	var errs []error
	for _, decl := range f.Root.Nodes() {
		if _, err := dataflow.Build(decl, globals...); err != nil {
			errs = append(errs, fmt.Errorf("node %s: %w", decl.Name(), err))
		}
	}
	return errs
}
