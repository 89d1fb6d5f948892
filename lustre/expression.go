package lustre

import "github.com/dhamidi/lus/syntax"

// Expressions are parsed with one function per precedence level, loosest
// binding first. Binary levels left-fold their operands, so "a + b + c"
// nests as "((a + b) + c)".

func pExpr(in input) (input, children, *syntax.Error) {
	return pArrowExpr(in)
}

func pArrowExpr(in input) (input, children, *syntax.Error) {
	return binaryExpr(pImplExpr, TokArrow, TokFBy)(in)
}

func pImplExpr(in input) (input, children, *syntax.Error) {
	return binaryExpr(pOrExpr, TokImpl)(in)
}

func pOrExpr(in input) (input, children, *syntax.Error) {
	return binaryExpr(pAndExpr, TokOr, TokXor, TokNor)(in)
}

func pAndExpr(in input) (input, children, *syntax.Error) {
	return binaryExpr(pCmpExpr, TokAnd)(in)
}

func pCmpExpr(in input) (input, children, *syntax.Error) {
	return binaryExpr(pNotExpr, TokEqual, TokNeq, TokLt, TokLte, TokGt, TokGte)(in)
}

func pNotExpr(in input) (input, children, *syntax.Error) {
	return alt(
		wrap(NodeUnaryExpr, seq(tok(TokNot), tolerant(pNotExpr))),
		pAddExpr,
	)(in)
}

func pAddExpr(in input) (input, children, *syntax.Error) {
	return binaryExpr(pMulExpr, TokPlus, TokMinus)(in)
}

func pMulExpr(in input) (input, children, *syntax.Error) {
	return binaryExpr(pPowExpr, TokStar, TokSlash, TokPercent, TokDiv, TokMod)(in)
}

func pPowExpr(in input) (input, children, *syntax.Error) {
	return binaryExpr(pWhenSuffixExpr, TokPower)(in)
}

// "e when c" and "e when not c"; the clock side is a restricted operand,
// but parsing it as a unary level keeps the ladder uniform.
func pWhenSuffixExpr(in input) (input, children, *syntax.Error) {
	return binaryExpr(pUnaryExpr, TokWhen)(in)
}

func pUnaryExpr(in input) (input, children, *syntax.Error) {
	return alt(
		wrap(NodeUnaryExpr, seq(
			tokOf(TokMinus, TokPre, TokCurrent, TokNot, TokInt, TokReal),
			tolerant(pUnaryExpr),
		)),
		pHatExpr,
	)(in)
}

func pHatExpr(in input) (input, children, *syntax.Error) {
	return binaryExpr(pPostfixExpr, TokHat, TokBar)(in)
}

// pPostfixExpr parses a primary expression followed by any number of
// suffixes: indexing, slicing, field selection and calls. Each suffix wraps
// everything to its left, so "f(x)[0].lo" nests call-innermost.
func pPostfixExpr(in input) (input, children, *syntax.Error) {
	cur, ch, err := pPrimaryExpr(in)
	if err != nil {
		return in, children{}, err
	}
	for {
		next, sufCh, kind, ok := pSuffix(cur)
		if !ok {
			return cur, ch, nil
		}
		ch.Add(sufCh)
		ch = ch.IntoNode(kind)
		cur = next
	}
}

func pSuffix(in input) (input, children, Kind, bool) {
	if next, ch, err := pIndexSuffix(in); err == nil {
		return next, ch, NodeIndexExpr, true
	}
	if next, ch, err := pFieldSuffix(in); err == nil {
		return next, ch, NodeFieldExpr, true
	}
	if next, ch, err := pCallSuffix(in); err == nil {
		return next, ch, NodeCallExpr, true
	}
	return in, children{}, NodeError, false
}

func pIndexSuffix(in input) (input, children, *syntax.Error) {
	return seq(
		tok(TokOpenBracket),
		tolerant(seq(pExpr, opt(seq(tok(TokCDots), tolerant(pExpr))))),
		expect(TokCloseBracket),
	)(in)
}

func pFieldSuffix(in input) (input, children, *syntax.Error) {
	return seq(tok(TokDot), expect(TokIdent))(in)
}

func pCallSuffix(in input) (input, children, *syntax.Error) {
	parenArgs := seq(tok(TokOpenPar), opt(pExprList), expect(TokClosePar))
	return alt(
		seq(pStaticArgs, opt(parenArgs)),
		parenArgs,
	)(in)
}

func pStaticArgs(in input) (input, children, *syntax.Error) {
	return wrap(NodeStaticArgs, seq(
		tok(TokOpenStaticPar),
		opt(pExprList),
		expect(TokCloseStaticPar),
	))(in)
}

func pExprList(in input) (input, children, *syntax.Error) {
	return seq(pExpr, many0(seq(tok(TokComma), tolerant(pExpr))))(in)
}

func pPrimaryExpr(in input) (input, children, *syntax.Error) {
	return alt(
		pIfExpr,
		pMergeExpr,
		pSharpExpr,
		pParenExpr,
		pArrayExpr,
		pLiteralExpr,
		pIdentExpr,
	)(in)
}

// "if c then a else b" and its static cousin "with c then a else b".
func pIfExpr(in input) (input, children, *syntax.Error) {
	return wrap(NodeIfExpr, seq(
		tokOf(TokIf, TokWith),
		tolerant(ctx("in condition", pExpr)),
		expect(TokThen),
		tolerant(pExpr),
		expect(TokElse),
		tolerant(pExpr),
	))(in)
}

// "merge c (true -> a) (false -> b)".
func pMergeExpr(in input) (input, children, *syntax.Error) {
	return wrap(NodeMergeExpr, seq(
		tok(TokMerge),
		expect(TokIdent),
		many0(pMergeArm),
	))(in)
}

func pMergeArm(in input) (input, children, *syntax.Error) {
	return seq(
		tok(TokOpenPar),
		tolerant(seq(
			tokOf(TokTrue, TokFalse, TokIdent),
			expect(TokArrow),
			tolerant(pExpr),
		)),
		expect(TokClosePar),
	)(in)
}

func pSharpExpr(in input) (input, children, *syntax.Error) {
	return wrap(NodeCallExpr, seq(
		tok(TokSharp),
		expect(TokOpenPar),
		opt(pExprList),
		expect(TokClosePar),
	))(in)
}

// Parenthesized expressions and tuples share one node kind; a single
// element is grouping, several are a tuple.
func pParenExpr(in input) (input, children, *syntax.Error) {
	return wrap(NodeParenExpr, seq(
		tok(TokOpenPar),
		opt(pExprList),
		expect(TokClosePar),
	))(in)
}

func pArrayExpr(in input) (input, children, *syntax.Error) {
	return wrap(NodeArrayExpr, seq(
		tok(TokOpenBracket),
		opt(pExprList),
		expect(TokCloseBracket),
	))(in)
}

func pLiteralExpr(in input) (input, children, *syntax.Error) {
	return wrap(NodeLiteralExpr, tokOf(TokIConst, TokRConst, TokTrue, TokFalse))(in)
}

func pIdentExpr(in input) (input, children, *syntax.Error) {
	return wrap(NodeIdentExpr, tok(TokIdent))(in)
}

// binaryExpr builds a left-associative binary level: parse one operand
// with next, then fold "op operand" pairs into BinaryExpr nodes for any of
// the given operator kinds.
func binaryExpr(next pf, ops ...Kind) pf {
	opTok := tokOf(ops...)
	return func(in input) (input, children, *syntax.Error) {
		cur, ch, err := next(in)
		if err != nil {
			return in, children{}, err
		}
		for {
			opIn, opCh, opErr := opTok(cur)
			if opErr != nil {
				return cur, ch, nil
			}
			rhsIn, rhsCh, _ := tolerant(next)(opIn)
			ch.Add(opCh)
			ch.Add(rhsCh)
			ch = ch.IntoNode(NodeBinaryExpr)
			cur = rhsIn
		}
	}
}
