// Package dataflow builds operator graphs from parsed node declarations:
// one vertex per operator or input, one edge per operand, with variables
// resolved to the operator that defines them.
package dataflow

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/dominikbraun/graph"
	"github.com/dominikbraun/graph/draw"

	"github.com/dhamidi/lus/ast"
	"github.com/dhamidi/lus/lustre"
)

// Operator is one vertex of the dataflow graph.
type Operator struct {
	ID    int
	Label string
	Input bool
}

// Graph is the dataflow graph of a single node declaration. Edges run from
// producer to consumer and carry the operand position at the consumer.
type Graph struct {
	Node string

	g        graph.Graph[int, Operator]
	ops      []Operator
	next     int
	bindings map[string]int
}

type pendingRef struct {
	name    string
	target  int
	operand int
}

// Build constructs the dataflow graph for one node declaration. Equations
// may reference variables defined by later equations, so references are
// resolved in a second pass once every definition is known. Redefined and
// undefined variables are reported as errors; the graph still covers
// everything that did resolve.
//
// globals are names defined outside the node, typically constants; a
// reference to one becomes an input-like vertex instead of an error.
func Build(decl ast.NodeDecl, globals ...string) (*Graph, error) {
	dg := &Graph{
		Node:     decl.Name(),
		g:        graph.New(func(o Operator) int { return o.ID }, graph.Directed()),
		bindings: map[string]int{},
	}
	globalSet := map[string]bool{}
	for _, g := range globals {
		globalSet[g] = true
	}

	var errs []error
	for _, group := range decl.Params() {
		for _, name := range group.Names() {
			id := dg.addVertex(name, true)
			dg.bindings[name] = id
		}
	}

	body, ok := decl.Body()
	if !ok {
		return dg, nil
	}

	var pending []pendingRef
	for _, eq := range body.Equations() {
		rhs, ok := eq.Rhs()
		if !ok {
			continue
		}
		root := dg.addExpr(rhs, &pending)
		for _, target := range eq.Targets() {
			if _, dup := dg.bindings[target]; dup {
				errs = append(errs, fmt.Errorf("variable %s defined twice", target))
				continue
			}
			dg.bindings[target] = root
		}
	}

	for _, ref := range pending {
		src, ok := dg.bindings[ref.name]
		if !ok && globalSet[ref.name] {
			src = dg.addVertex(ref.name, true)
			dg.bindings[ref.name] = src
			ok = true
		}
		if !ok {
			errs = append(errs, fmt.Errorf("undefined variable %s", ref.name))
			continue
		}
		dg.addEdge(src, ref.target, ref.operand)
	}

	return dg, errors.Join(errs...)
}

// addExpr adds the operator tree of an expression and returns the vertex
// producing its value. Variable reads become pending edges; everything
// else becomes a vertex per operator with one edge per operand.
func (dg *Graph) addExpr(e ast.Expr, pending *[]pendingRef) int {
	id := dg.addVertex(e.Operator(), false)
	operand := 0

	// The scrutinee of a merge is a bare token, not a nested expression.
	if e.Kind() == lustre.NodeMergeExpr {
		if t, ok := e.FirstToken(lustre.TokIdent); ok {
			*pending = append(*pending, pendingRef{name: t.Text, target: id, operand: operand})
			operand++
		}
	}

	for i, op := range e.Operands() {
		// An identifier callee names the operator itself, not an operand.
		if i == 0 && e.Kind() == lustre.NodeCallExpr &&
			op.Kind() == lustre.NodeIdentExpr && op.Operator() == e.Operator() {
			continue
		}
		if op.Kind() == lustre.NodeIdentExpr {
			*pending = append(*pending, pendingRef{name: op.Operator(), target: id, operand: operand})
		} else {
			src := dg.addExpr(op, pending)
			dg.addEdge(src, id, operand)
		}
		operand++
	}
	return id
}

func (dg *Graph) addVertex(label string, input bool) int {
	id := dg.next
	dg.next++
	op := Operator{ID: id, Label: label, Input: input}
	attrs := []func(*graph.VertexProperties){
		graph.VertexAttribute("label", label),
	}
	if input {
		attrs = append(attrs, graph.VertexAttribute("shape", "box"))
	}
	_ = dg.g.AddVertex(op, attrs...)
	dg.ops = append(dg.ops, op)
	return id
}

func (dg *Graph) addEdge(src, dst, operand int) {
	// A value consumed twice by the same operator, as in "x + x", stays a
	// single edge.
	_ = dg.g.AddEdge(src, dst, graph.EdgeAttribute("label", strconv.Itoa(operand)))
}

// Operators returns every vertex in creation order.
func (dg *Graph) Operators() []Operator {
	return dg.ops
}

// Binding returns the vertex that produces the named variable.
func (dg *Graph) Binding(name string) (Operator, bool) {
	id, ok := dg.bindings[name]
	if !ok {
		return Operator{}, false
	}
	return dg.ops[id], true
}

// Order returns the vertex count, Size the edge count.
func (dg *Graph) Order() int {
	n, _ := dg.g.Order()
	return n
}

func (dg *Graph) Size() int {
	n, _ := dg.g.Size()
	return n
}

// HasEdge reports whether dst consumes the value produced by src.
func (dg *Graph) HasEdge(src, dst int) bool {
	_, err := dg.g.Edge(src, dst)
	return err == nil
}

// DOT renders the graph in Graphviz format.
func (dg *Graph) DOT(w io.Writer) error {
	return draw.DOT(dg.g, w)
}
