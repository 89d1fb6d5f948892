package ast

import "github.com/dhamidi/lus/lustre"

// Root views the whole parsed file.
type Root struct {
	Syntax
}

func NewRoot(green *syntaxNode) Root {
	return Root{Syntax{Green: green}}
}

func (r Root) Includes() []Include {
	var out []Include
	for _, c := range r.ChildrenOfKind(lustre.NodeInclude) {
		out = append(out, Include{c})
	}
	return out
}

func (r Root) Constants() []ConstDecl {
	var out []ConstDecl
	for _, block := range r.ChildrenOfKind(lustre.NodeConstBlock) {
		for _, c := range block.ChildrenOfKind(lustre.NodeConstDecl) {
			out = append(out, ConstDecl{c})
		}
	}
	return out
}

func (r Root) Types() []TypeDecl {
	var out []TypeDecl
	for _, block := range r.ChildrenOfKind(lustre.NodeTypeBlock) {
		for _, c := range block.ChildrenOfKind(lustre.NodeTypeDecl) {
			out = append(out, TypeDecl{c})
		}
	}
	return out
}

func (r Root) Nodes() []NodeDecl {
	var out []NodeDecl
	for _, c := range r.ChildrenOfKind(lustre.NodeDef) {
		out = append(out, NodeDecl{c})
	}
	return out
}

// Node looks up a node or function declaration by name.
func (r Root) Node(name string) (NodeDecl, bool) {
	for _, n := range r.Nodes() {
		if n.Name() == name {
			return n, true
		}
	}
	return NodeDecl{}, false
}

// Include views one include directive.
type Include struct {
	Syntax
}

// Path returns the included file name with the quotes stripped.
func (i Include) Path() string {
	t, ok := i.FirstToken(lustre.TokStr)
	if !ok || len(t.Text) < 2 {
		return ""
	}
	return t.Text[1 : len(t.Text)-1]
}

// ConstDecl views one constant declaration within a const block.
type ConstDecl struct {
	Syntax
}

func (c ConstDecl) Names() []string {
	return namesBeforeToken(c.Syntax, lustre.TokColon, lustre.TokEqual)
}

func (c ConstDecl) Value() (Expr, bool) {
	return firstExprChild(c.Syntax)
}

func (c ConstDecl) Type() (Syntax, bool) {
	return c.FirstChildOfKind(lustre.NodeTypeExpr)
}

// TypeDecl views one type declaration within a type block.
type TypeDecl struct {
	Syntax
}

func (t TypeDecl) Name() string {
	tok, _ := t.FirstToken(lustre.TokIdent)
	return tok.Text
}

func (t TypeDecl) Type() (Syntax, bool) {
	return t.FirstChildOfKind(lustre.NodeTypeExpr)
}

// NodeDecl views a node or function declaration.
type NodeDecl struct {
	Syntax
}

func (n NodeDecl) Name() string {
	tok, _ := n.FirstToken(lustre.TokIdent)
	return tok.Text
}

func (n NodeDecl) IsFunction() bool { return n.hasToken(lustre.TokFunction) }
func (n NodeDecl) IsExtern() bool   { return n.hasToken(lustre.TokExtern) }
func (n NodeDecl) IsUnsafe() bool   { return n.hasToken(lustre.TokUnsafe) }

func (n NodeDecl) Params() []TypedIds {
	return typedIdsIn(n.Syntax, lustre.NodeParams)
}

func (n NodeDecl) Returns() []TypedIds {
	return typedIdsIn(n.Syntax, lustre.NodeReturns)
}

// Locals returns the typed groups of every var section.
func (n NodeDecl) Locals() []TypedIds {
	var out []TypedIds
	for _, section := range n.ChildrenOfKind(lustre.NodeVarSection) {
		for _, c := range section.ChildrenOfKind(lustre.NodeTypedIds) {
			out = append(out, TypedIds{c})
		}
	}
	return out
}

func (n NodeDecl) Body() (Body, bool) {
	s, ok := n.FirstChildOfKind(lustre.NodeBody)
	return Body{s}, ok
}

func typedIdsIn(s Syntax, wrapper lustre.Kind) []TypedIds {
	var out []TypedIds
	if w, ok := s.FirstChildOfKind(wrapper); ok {
		for _, c := range w.ChildrenOfKind(lustre.NodeTypedIds) {
			out = append(out, TypedIds{c})
		}
	}
	return out
}

// TypedIds views one "a, b : type" group.
type TypedIds struct {
	Syntax
}

func (t TypedIds) Names() []string {
	return namesBeforeToken(t.Syntax, lustre.TokColon)
}

func (t TypedIds) Type() (Syntax, bool) {
	return t.FirstChildOfKind(lustre.NodeTypeExpr)
}

func (t TypedIds) Clock() (Syntax, bool) {
	return t.FirstChildOfKind(lustre.NodeClockExpr)
}

// namesBeforeToken collects the identifier tokens preceding the first
// occurrence of any stop token, which is how declared names are laid out
// in const declarations and typed groups.
func namesBeforeToken(s Syntax, stops ...lustre.Kind) []string {
	var out []string
	for _, t := range s.Tokens() {
		for _, stop := range stops {
			if t.Kind == stop {
				return out
			}
		}
		if t.Kind == lustre.TokIdent {
			out = append(out, t.Text)
		}
	}
	return out
}
