package syntax

import (
	"fmt"
	"strings"
)

// Element is one fragment of a finished syntax tree: either an interior
// *Node or a leaf Token. The set of implementations is closed.
type Element[K comparable] interface {
	TextLen() int
	appendText(b *strings.Builder)
}

// Node is an immutable interior tree node: a kind tag plus an ordered list
// of children. Finished nodes are only ever referenced, never copied, when
// they become children of enclosing nodes, so subtrees are structurally
// shared across the whole tree.
type Node[K comparable] struct {
	kind     K
	children []Element[K]
	textLen  int
}

// NewNode wraps children under a single node. The children slice is owned
// by the node afterwards and must not be modified by the caller.
func NewNode[K comparable](kind K, children []Element[K]) *Node[K] {
	n := &Node[K]{kind: kind, children: children}
	for _, c := range children {
		n.textLen += c.TextLen()
	}
	return n
}

func (n *Node[K]) Kind() K {
	return n.kind
}

// Children returns the node's children in source order. The returned slice
// is shared with the node and must be treated as read-only.
func (n *Node[K]) Children() []Element[K] {
	return n.children
}

func (n *Node[K]) TextLen() int {
	return n.textLen
}

// Text reconstructs the exact source text covered by this node by
// concatenating its leaf tokens in order.
func (n *Node[K]) Text() string {
	var b strings.Builder
	b.Grow(n.textLen)
	n.appendText(&b)
	return b.String()
}

func (n *Node[K]) appendText(b *strings.Builder) {
	for _, c := range n.children {
		c.appendText(b)
	}
}

// Dump renders the tree in an indented one-line-per-element format, for
// debugging and golden tests.
func (n *Node[K]) Dump() string {
	var b strings.Builder
	n.dumpIndent(&b, 0)
	return b.String()
}

func (n *Node[K]) dumpIndent(b *strings.Builder, indent int) {
	for i := 0; i < indent; i++ {
		b.WriteString("  ")
	}
	fmt.Fprintf(b, "%v\n", n.kind)
	for _, c := range n.children {
		switch c := c.(type) {
		case *Node[K]:
			c.dumpIndent(b, indent+1)
		case Token[K]:
			for i := 0; i < indent+1; i++ {
				b.WriteString("  ")
			}
			fmt.Fprintf(b, "%v %q\n", c.Kind, c.Text)
		}
	}
}
