package lustre

import "github.com/dhamidi/lus/syntax"

// The grammar is written as plain functions with the combinator signature,
// so mutually recursive rules need no forward declarations. Every rule
// either consumes at least one token or fails; once a rule has matched its
// leading token it recovers from anything that follows, so a single
// malformed declaration never takes the rest of the file with it.

type (
	pf       = syntax.ParseFunc[Kind]
	input    = syntax.Input[Kind]
	children = syntax.Children[Kind]
)

func tok(kind Kind) pf        { return syntax.Tok(kind) }
func seq(parsers ...pf) pf    { return syntax.Seq(parsers...) }
func alt(parsers ...pf) pf    { return syntax.Alt(parsers...) }
func opt(p pf) pf             { return syntax.Opt(p) }
func many0(p pf) pf           { return syntax.Many0(p) }
func many1(p pf) pf           { return syntax.Many1(p) }
func wrap(kind Kind, p pf) pf { return syntax.WrapNode(kind, p) }
func expect(kind Kind) pf     { return syntax.Expect(kind) }
func tolerant(p pf) pf        { return syntax.Recover(p, nil) }
func ctx(msg string, p pf) pf { return syntax.Ctx(msg, p) }

func skipTo(msg string, sync ...Kind) pf {
	return syntax.SkipUntil[Kind](msg, sync...)
}

func tokOf(kinds ...Kind) pf {
	parsers := make([]pf, len(kinds))
	for i, k := range kinds {
		parsers[i] = tok(k)
	}
	return alt(parsers...)
}

// declStart is the recovery sync set at the top level: tokens that can
// begin a new declaration.
var declStart = []Kind{
	TokInclude, TokConst, TokType,
	TokExtern, TokUnsafe, TokNode, TokFunction,
	TokEOF,
}

func pRoot(in input) (input, children, *syntax.Error) {
	return seq(
		many0(alt(
			pTopDecl,
			skipTo("expected declaration", declStart...),
		)),
		tok(TokEOF),
	)(in)
}

func pTopDecl(in input) (input, children, *syntax.Error) {
	return alt(pInclude, pConstBlock, pTypeBlock, pNodeDecl)(in)
}

func pInclude(in input) (input, children, *syntax.Error) {
	return wrap(NodeInclude, seq(tok(TokInclude), expect(TokStr)))(in)
}

func pConstBlock(in input) (input, children, *syntax.Error) {
	return wrap(NodeConstBlock, seq(
		tok(TokConst),
		tolerant(ctx("in const block", many1(pConstDecl))),
	))(in)
}

// pConstDecl parses "a, b : int = e;"; both the type and the value are
// optional.
func pConstDecl(in input) (input, children, *syntax.Error) {
	return wrap(NodeConstDecl, seq(
		tok(TokIdent),
		many0(seq(tok(TokComma), expect(TokIdent))),
		opt(seq(tok(TokColon), tolerant(pTypeExpr))),
		opt(seq(tok(TokEqual), tolerant(ctx("in constant value", pExpr)))),
		expect(TokSemicolon),
	))(in)
}

func pTypeBlock(in input) (input, children, *syntax.Error) {
	return wrap(NodeTypeBlock, seq(
		tok(TokType),
		tolerant(ctx("in type block", many1(pTypeDecl))),
	))(in)
}

// pTypeDecl parses "t;" (abstract) or "t = type-expr;".
func pTypeDecl(in input) (input, children, *syntax.Error) {
	return wrap(NodeTypeDecl, seq(
		tok(TokIdent),
		opt(seq(tok(TokEqual), tolerant(pTypeExpr))),
		expect(TokSemicolon),
	))(in)
}

func pTypeExpr(in input) (input, children, *syntax.Error) {
	return wrap(NodeTypeExpr, seq(
		pTypeAtom,
		many0(seq(tok(TokHat), tolerant(ctx("in array size", pExpr)))),
	))(in)
}

func pTypeAtom(in input) (input, children, *syntax.Error) {
	return alt(
		tokOf(TokBool, TokInt, TokReal, TokIdent),
		pEnumType,
		pStructType,
	)(in)
}

func pEnumType(in input) (input, children, *syntax.Error) {
	return seq(
		tok(TokEnum),
		expect(TokOpenBrace),
		opt(seq(tok(TokIdent), many0(seq(tok(TokComma), expect(TokIdent))))),
		expect(TokCloseBrace),
	)(in)
}

func pStructType(in input) (input, children, *syntax.Error) {
	return seq(
		tok(TokStruct),
		expect(TokOpenBrace),
		many0(alt(pTypedIds, tok(TokSemicolon))),
		expect(TokCloseBrace),
	)(in)
}

// pTypedIds parses one typed group, "a, b : int when c".
func pTypedIds(in input) (input, children, *syntax.Error) {
	return wrap(NodeTypedIds, seq(
		tok(TokIdent),
		many0(seq(tok(TokComma), expect(TokIdent))),
		expect(TokColon),
		tolerant(pTypeExpr),
		opt(pClockExpr),
	))(in)
}

func pClockExpr(in input) (input, children, *syntax.Error) {
	return wrap(NodeClockExpr, seq(
		tok(TokWhen),
		tolerant(alt(
			seq(tok(TokNot), expect(TokIdent)),
			tok(TokIdent),
		)),
	))(in)
}

// pNodeDecl parses a node or function declaration, with optional unsafe
// and extern markers. Extern declarations stop at the signature; everything
// else carries var sections and a let/tel body.
func pNodeDecl(in input) (input, children, *syntax.Error) {
	return wrap(NodeDef, alt(
		seq(tok(TokUnsafe), opt(tok(TokExtern)), tolerant(pNodeSig)),
		seq(tok(TokExtern), tolerant(pNodeSig)),
		pNodeSig,
	))(in)
}

func pNodeSig(in input) (input, children, *syntax.Error) {
	return seq(
		tokOf(TokNode, TokFunction),
		expect(TokIdent),
		opt(pStaticParams),
		pParams,
		expect(TokReturns),
		pReturns,
		opt(tok(TokSemicolon)),
		opt(seq(many0(pVarSection), pBody)),
	)(in)
}

func pStaticParams(in input) (input, children, *syntax.Error) {
	return wrap(NodeStaticParams, seq(
		tok(TokOpenStaticPar),
		opt(seq(pStaticParam, many0(seq(tok(TokSemicolon), opt(pStaticParam))))),
		expect(TokCloseStaticPar),
	))(in)
}

func pStaticParam(in input) (input, children, *syntax.Error) {
	return alt(
		seq(tok(TokConst), expect(TokIdent), expect(TokColon), tolerant(pTypeExpr)),
		seq(tok(TokType), expect(TokIdent)),
		seq(tokOf(TokNode, TokFunction), expect(TokIdent), pParams, expect(TokReturns), pReturns),
		pTypedIds,
	)(in)
}

func pParams(in input) (input, children, *syntax.Error) {
	return wrap(NodeParams, seq(
		expect(TokOpenPar),
		opt(pTypedIdsList),
		expect(TokClosePar),
	))(in)
}

func pReturns(in input) (input, children, *syntax.Error) {
	return wrap(NodeReturns, seq(
		expect(TokOpenPar),
		opt(pTypedIdsList),
		expect(TokClosePar),
	))(in)
}

func pTypedIdsList(in input) (input, children, *syntax.Error) {
	return seq(pTypedIds, many0(seq(tok(TokSemicolon), opt(pTypedIds))))(in)
}

func pVarSection(in input) (input, children, *syntax.Error) {
	return wrap(NodeVarSection, seq(
		tok(TokVar),
		tolerant(ctx("in var section", many1(seq(pTypedIds, expect(TokSemicolon))))),
	))(in)
}

func pBody(in input) (input, children, *syntax.Error) {
	return wrap(NodeBody, seq(
		tok(TokLet),
		many0(pBodyItem),
		expect(TokTel),
		opt(tok(TokSemicolon)),
	))(in)
}

func pBodyItem(in input) (input, children, *syntax.Error) {
	return alt(
		pAssert,
		pEquation,
		tok(TokSemicolon),
		skipTo("expected equation", TokSemicolon, TokTel, TokEOF),
	)(in)
}

func pAssert(in input) (input, children, *syntax.Error) {
	return wrap(NodeAssert, seq(
		tok(TokAssert),
		tolerant(ctx("in assertion", pExpr)),
		expect(TokSemicolon),
	))(in)
}

func pEquation(in input) (input, children, *syntax.Error) {
	return wrap(NodeEquation, seq(
		pLeft,
		expect(TokEqual),
		tolerant(ctx("in equation", pExpr)),
		expect(TokSemicolon),
	))(in)
}

// pLeft parses the defined side of an equation: one or more assignable
// targets, optionally parenthesized.
func pLeft(in input) (input, children, *syntax.Error) {
	return wrap(NodeLeft, alt(
		seq(tok(TokOpenPar), opt(pLeftList), expect(TokClosePar)),
		pLeftList,
	))(in)
}

func pLeftList(in input) (input, children, *syntax.Error) {
	return seq(pLeftItem, many0(seq(tok(TokComma), tolerant(pLeftItem))))(in)
}

func pLeftItem(in input) (input, children, *syntax.Error) {
	return seq(
		tok(TokIdent),
		many0(alt(
			seq(tok(TokOpenBracket), tolerant(pExpr), expect(TokCloseBracket)),
			seq(tok(TokDot), expect(TokIdent)),
		)),
	)(in)
}
