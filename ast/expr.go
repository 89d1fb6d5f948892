package ast

import "github.com/dhamidi/lus/lustre"

// Body views a let/tel block.
type Body struct {
	Syntax
}

func (b Body) Equations() []Equation {
	var out []Equation
	for _, c := range b.ChildrenOfKind(lustre.NodeEquation) {
		out = append(out, Equation{c})
	}
	return out
}

func (b Body) Assertions() []Assertion {
	var out []Assertion
	for _, c := range b.ChildrenOfKind(lustre.NodeAssert) {
		out = append(out, Assertion{c})
	}
	return out
}

// Equation views one "targets = expr;" equation.
type Equation struct {
	Syntax
}

// Targets returns the defined variable names on the left-hand side.
// Identifiers used in index expressions or after a field dot do not count;
// the former are nested expression nodes and the latter follow a dot.
func (e Equation) Targets() []string {
	left, ok := e.FirstChildOfKind(lustre.NodeLeft)
	if !ok {
		return nil
	}
	var out []string
	prev := lustre.TokComma
	for _, t := range left.Tokens() {
		if t.Kind == lustre.TokIdent {
			switch prev {
			case lustre.TokComma, lustre.TokOpenPar:
				out = append(out, t.Text)
			}
		}
		prev = t.Kind
	}
	return out
}

func (e Equation) Rhs() (Expr, bool) {
	return firstExprChild(e.Syntax)
}

// Assertion views one "assert expr;" statement.
type Assertion struct {
	Syntax
}

func (a Assertion) Expr() (Expr, bool) {
	return firstExprChild(a.Syntax)
}

// Expr views any expression node.
type Expr struct {
	Syntax
}

// IsExprKind reports whether the kind is an expression node.
func IsExprKind(kind lustre.Kind) bool {
	switch kind {
	case lustre.NodeBinaryExpr, lustre.NodeUnaryExpr,
		lustre.NodeIfExpr, lustre.NodeMergeExpr, lustre.NodeCallExpr,
		lustre.NodeParenExpr, lustre.NodeArrayExpr,
		lustre.NodeIndexExpr, lustre.NodeFieldExpr,
		lustre.NodeIdentExpr, lustre.NodeLiteralExpr:
		return true
	}
	return false
}

func firstExprChild(s Syntax) (Expr, bool) {
	for _, c := range s.Children() {
		if IsExprKind(c.Kind()) {
			return Expr{c}, true
		}
	}
	return Expr{}, false
}

// Operands returns the direct sub-expressions in source order.
func (e Expr) Operands() []Expr {
	var out []Expr
	for _, c := range e.Children() {
		if IsExprKind(c.Kind()) {
			out = append(out, Expr{c})
		}
	}
	return out
}

// Operator returns a short label for the node: the operator lexeme for
// unary and binary expressions, the callee name for calls, the leading
// keyword otherwise.
func (e Expr) Operator() string {
	switch e.Kind() {
	case lustre.NodeIdentExpr, lustre.NodeLiteralExpr:
		if t, ok := e.firstSignificantToken(); ok {
			return t.Text
		}
		return ""
	case lustre.NodeCallExpr:
		if e.hasToken(lustre.TokSharp) {
			return "#"
		}
		ops := e.Operands()
		if len(ops) > 0 && ops[0].Kind() == lustre.NodeIdentExpr {
			return ops[0].Operator()
		}
		return "call"
	default:
		if t, ok := e.firstSignificantToken(); ok {
			return t.Text
		}
		return ""
	}
}

func (e Expr) firstSignificantToken() (TokenRef, bool) {
	toks := e.Tokens()
	if len(toks) == 0 {
		return TokenRef{}, false
	}
	return toks[0], true
}

// Vars returns every variable read by the expression, in source order and
// with duplicates kept. Callee names of calls are operators, not reads,
// and static arguments are compile-time only, so both are skipped.
func (e Expr) Vars() []string {
	var out []string
	e.collectVars(&out)
	return out
}

func (e Expr) collectVars(out *[]string) {
	switch e.Kind() {
	case lustre.NodeIdentExpr:
		if t, ok := e.FirstToken(lustre.TokIdent); ok {
			*out = append(*out, t.Text)
		}
	case lustre.NodeCallExpr:
		ops := e.Operands()
		for i, op := range ops {
			if i == 0 && op.Kind() == lustre.NodeIdentExpr && !e.hasToken(lustre.TokSharp) {
				continue
			}
			op.collectVars(out)
		}
	case lustre.NodeMergeExpr:
		// The scrutinee is a bare token, not a nested expression.
		if t, ok := e.FirstToken(lustre.TokIdent); ok {
			*out = append(*out, t.Text)
		}
		for _, op := range e.Operands() {
			op.collectVars(out)
		}
	default:
		for _, op := range e.Operands() {
			op.collectVars(out)
		}
	}
}
