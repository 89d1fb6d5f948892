// Package ast exposes typed views over the lossless syntax trees produced
// by the lustre package. A view is a thin cursor: it keeps a pointer into
// the shared green tree plus the absolute byte offset of its subtree, so
// positions are recovered without storing them in the tree.
package ast

import (
	"github.com/dhamidi/lus/lustre"
	"github.com/dhamidi/lus/syntax"
)

type syntaxNode = syntax.Node[lustre.Kind]

// Syntax is a positioned cursor over one node of the green tree.
type Syntax struct {
	Green  *syntax.Node[lustre.Kind]
	Offset int
}

// TokenRef is a positioned leaf token.
type TokenRef struct {
	Kind   lustre.Kind
	Text   string
	Offset int
}

func (s Syntax) Kind() lustre.Kind {
	return s.Green.Kind()
}

func (s Syntax) Text() string {
	return s.Green.Text()
}

// Span returns the subtree's byte range in the source.
func (s Syntax) Span() (start, end int) {
	return s.Offset, s.Offset + s.Green.TextLen()
}

// Children returns the direct child nodes, token leaves excluded.
func (s Syntax) Children() []Syntax {
	var out []Syntax
	off := s.Offset
	for _, c := range s.Green.Children() {
		if n, ok := c.(*syntax.Node[lustre.Kind]); ok {
			out = append(out, Syntax{Green: n, Offset: off})
		}
		off += c.TextLen()
	}
	return out
}

func (s Syntax) FirstChildOfKind(kind lustre.Kind) (Syntax, bool) {
	for _, c := range s.Children() {
		if c.Kind() == kind {
			return c, true
		}
	}
	return Syntax{}, false
}

func (s Syntax) ChildrenOfKind(kind lustre.Kind) []Syntax {
	var out []Syntax
	for _, c := range s.Children() {
		if c.Kind() == kind {
			out = append(out, c)
		}
	}
	return out
}

// Tokens returns the direct significant token leaves, trivia excluded.
func (s Syntax) Tokens() []TokenRef {
	var out []TokenRef
	off := s.Offset
	for _, c := range s.Green.Children() {
		if t, ok := c.(syntax.Token[lustre.Kind]); ok && !t.Kind.IsTrivia() {
			out = append(out, TokenRef{Kind: t.Kind, Text: t.Text, Offset: off})
		}
		off += c.TextLen()
	}
	return out
}

func (s Syntax) FirstToken(kinds ...lustre.Kind) (TokenRef, bool) {
	for _, t := range s.Tokens() {
		for _, k := range kinds {
			if t.Kind == k {
				return t, true
			}
		}
	}
	return TokenRef{}, false
}

func (s Syntax) hasToken(kind lustre.Kind) bool {
	_, ok := s.FirstToken(kind)
	return ok
}

// Descendants collects every node of the given kind in the subtree,
// depth-first in source order, the receiver included.
func (s Syntax) Descendants(kind lustre.Kind) []Syntax {
	var out []Syntax
	if s.Kind() == kind {
		out = append(out, s)
	}
	for _, c := range s.Children() {
		out = append(out, c.Descendants(kind)...)
	}
	return out
}

// NodeAt descends to the innermost node whose span contains the byte
// offset. When the offset falls between nodes it returns the closest
// enclosing one.
func (s Syntax) NodeAt(offset int) Syntax {
	cur := s
	for {
		descended := false
		off := cur.Offset
		for _, c := range cur.Green.Children() {
			if n, ok := c.(*syntax.Node[lustre.Kind]); ok {
				if offset >= off && offset < off+n.TextLen() {
					cur = Syntax{Green: n, Offset: off}
					descended = true
					break
				}
			}
			off += c.TextLen()
		}
		if !descended {
			return cur
		}
	}
}
