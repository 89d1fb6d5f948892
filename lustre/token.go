package lustre

// Kind is the single kind space shared by tokens and tree nodes, so one
// tag type serves both the lexer and the combinator engine.
type Kind int

const (
	TokEOF Kind = iota
	TokError
	TokWhitespace
	TokComment
	TokLineComment

	// Literals and identifiers
	TokIdent
	TokIConst
	TokRConst
	TokStr

	// Keywords
	TokAnd
	TokAssert
	TokBody
	TokBool
	TokConst
	TokCurrent
	TokDiv
	TokElse
	TokEnd
	TokEnum
	TokExtern
	TokFalse
	TokFBy
	TokFunction
	TokIf
	TokInclude
	TokInt
	TokIs
	TokLet
	TokMerge
	TokMod
	TokModel
	TokNeeds
	TokNode
	TokNor
	TokNot
	TokOperator
	TokOr
	TokPackage
	TokPre
	TokProvides
	TokReal
	TokReturns
	TokStep
	TokStruct
	TokTel
	TokThen
	TokTrue
	TokType
	TokUnsafe
	TokUses
	TokVar
	TokWhen
	TokWith
	TokXor

	// Operators and punctuation
	TokArrow          // ->
	TokImpl           // =>
	TokLte            // <=
	TokNeq            // <>
	TokGte            // >=
	TokCDots          // ..
	TokPower          // **
	TokOpenStaticPar  // <<
	TokCloseStaticPar // >>
	TokPlus
	TokMinus
	TokStar
	TokSlash
	TokPercent
	TokHat
	TokSharp
	TokBar
	TokEqual
	TokDot
	TokComma
	TokSemicolon
	TokColon
	TokOpenPar
	TokClosePar
	TokOpenBrace
	TokCloseBrace
	TokOpenBracket
	TokCloseBracket
	TokLt
	TokGt

	// Tree node kinds
	NodeRoot
	NodeError
	NodeInclude
	NodeConstBlock
	NodeConstDecl
	NodeTypeBlock
	NodeTypeDecl
	NodeDef
	NodeStaticParams
	NodeParams
	NodeReturns
	NodeVarSection
	NodeTypedIds
	NodeTypeExpr
	NodeClockExpr
	NodeBody
	NodeEquation
	NodeLeft
	NodeAssert
	NodeBinaryExpr
	NodeUnaryExpr
	NodeIfExpr
	NodeMergeExpr
	NodeCallExpr
	NodeStaticArgs
	NodeParenExpr
	NodeArrayExpr
	NodeIndexExpr
	NodeFieldExpr
	NodeIdentExpr
	NodeLiteralExpr
)

var kindNames = map[Kind]string{
	TokEOF:            "EOF",
	TokError:          "Error",
	TokWhitespace:     "Whitespace",
	TokComment:        "Comment",
	TokLineComment:    "LineComment",
	TokIdent:          "Ident",
	TokIConst:         "IConst",
	TokRConst:         "RConst",
	TokStr:            "Str",
	TokAnd:            "and",
	TokAssert:         "assert",
	TokBody:           "body",
	TokBool:           "bool",
	TokConst:          "const",
	TokCurrent:        "current",
	TokDiv:            "div",
	TokElse:           "else",
	TokEnd:            "end",
	TokEnum:           "enum",
	TokExtern:         "extern",
	TokFalse:          "false",
	TokFBy:            "fby",
	TokFunction:       "function",
	TokIf:             "if",
	TokInclude:        "include",
	TokInt:            "int",
	TokIs:             "is",
	TokLet:            "let",
	TokMerge:          "merge",
	TokMod:            "mod",
	TokModel:          "model",
	TokNeeds:          "needs",
	TokNode:           "node",
	TokNor:            "nor",
	TokNot:            "not",
	TokOperator:       "operator",
	TokOr:             "or",
	TokPackage:        "package",
	TokPre:            "pre",
	TokProvides:       "provides",
	TokReal:           "real",
	TokReturns:        "returns",
	TokStep:           "step",
	TokStruct:         "struct",
	TokTel:            "tel",
	TokThen:           "then",
	TokTrue:           "true",
	TokType:           "type",
	TokUnsafe:         "unsafe",
	TokUses:           "uses",
	TokVar:            "var",
	TokWhen:           "when",
	TokWith:           "with",
	TokXor:            "xor",
	TokArrow:          "->",
	TokImpl:           "=>",
	TokLte:            "<=",
	TokNeq:            "<>",
	TokGte:            ">=",
	TokCDots:          "..",
	TokPower:          "**",
	TokOpenStaticPar:  "<<",
	TokCloseStaticPar: ">>",
	TokPlus:           "+",
	TokMinus:          "-",
	TokStar:           "*",
	TokSlash:          "/",
	TokPercent:        "%",
	TokHat:            "^",
	TokSharp:          "#",
	TokBar:            "|",
	TokEqual:          "=",
	TokDot:            ".",
	TokComma:          ",",
	TokSemicolon:      ";",
	TokColon:          ":",
	TokOpenPar:        "(",
	TokClosePar:       ")",
	TokOpenBrace:      "{",
	TokCloseBrace:     "}",
	TokOpenBracket:    "[",
	TokCloseBracket:   "]",
	TokLt:             "<",
	TokGt:             ">",
	NodeRoot:          "Root",
	NodeError:         "ErrorNode",
	NodeInclude:       "Include",
	NodeConstBlock:    "ConstBlock",
	NodeConstDecl:     "ConstDecl",
	NodeTypeBlock:     "TypeBlock",
	NodeTypeDecl:      "TypeDecl",
	NodeDef:           "NodeDef",
	NodeStaticParams:  "StaticParams",
	NodeParams:        "Params",
	NodeReturns:       "Returns",
	NodeVarSection:    "VarSection",
	NodeTypedIds:      "TypedIds",
	NodeTypeExpr:      "TypeExpr",
	NodeClockExpr:     "ClockExpr",
	NodeBody:          "Body",
	NodeEquation:      "Equation",
	NodeLeft:          "Left",
	NodeAssert:        "Assert",
	NodeBinaryExpr:    "BinaryExpr",
	NodeUnaryExpr:     "UnaryExpr",
	NodeIfExpr:        "IfExpr",
	NodeMergeExpr:     "MergeExpr",
	NodeCallExpr:      "CallExpr",
	NodeStaticArgs:    "StaticArgs",
	NodeParenExpr:     "ParenExpr",
	NodeArrayExpr:     "ArrayExpr",
	NodeIndexExpr:     "IndexExpr",
	NodeFieldExpr:     "FieldExpr",
	NodeIdentExpr:     "IdentExpr",
	NodeLiteralExpr:   "LiteralExpr",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// tokenTable maps every fixed lexeme (keywords, operators, punctuation) to
// its kind. Longest-match ordering is enforced by the lexer's shrinking
// window, not by this table.
var tokenTable = map[string]Kind{
	"and":      TokAnd,
	"assert":   TokAssert,
	"body":     TokBody,
	"bool":     TokBool,
	"const":    TokConst,
	"current":  TokCurrent,
	"div":      TokDiv,
	"else":     TokElse,
	"end":      TokEnd,
	"enum":     TokEnum,
	"extern":   TokExtern,
	"false":    TokFalse,
	"fby":      TokFBy,
	"function": TokFunction,
	"if":       TokIf,
	"include":  TokInclude,
	"int":      TokInt,
	"is":       TokIs,
	"let":      TokLet,
	"merge":    TokMerge,
	"mod":      TokMod,
	"model":    TokModel,
	"needs":    TokNeeds,
	"node":     TokNode,
	"nor":      TokNor,
	"not":      TokNot,
	"operator": TokOperator,
	"or":       TokOr,
	"package":  TokPackage,
	"pre":      TokPre,
	"provides": TokProvides,
	"real":     TokReal,
	"returns":  TokReturns,
	"step":     TokStep,
	"struct":   TokStruct,
	"tel":      TokTel,
	"then":     TokThen,
	"true":     TokTrue,
	"type":     TokType,
	"unsafe":   TokUnsafe,
	"uses":     TokUses,
	"var":      TokVar,
	"when":     TokWhen,
	"with":     TokWith,
	"xor":      TokXor,
	"->":       TokArrow,
	"=>":       TokImpl,
	"<=":       TokLte,
	"<>":       TokNeq,
	">=":       TokGte,
	"..":       TokCDots,
	"**":       TokPower,
	"<<":       TokOpenStaticPar,
	">>":       TokCloseStaticPar,
	"+":        TokPlus,
	"-":        TokMinus,
	"*":        TokStar,
	"/":        TokSlash,
	"%":        TokPercent,
	"^":        TokHat,
	"#":        TokSharp,
	"|":        TokBar,
	"=":        TokEqual,
	".":        TokDot,
	",":        TokComma,
	";":        TokSemicolon,
	":":        TokColon,
	"(":        TokOpenPar,
	")":        TokClosePar,
	"{":        TokOpenBrace,
	"}":        TokCloseBrace,
	"[":        TokOpenBracket,
	"]":        TokCloseBracket,
	"<":        TokLt,
	">":        TokGt,
}

// Position is a location in a source file, tracked in bytes.
type Position struct {
	File   string
	Offset int
	Line   int
	Column int
}

// Span is a half-open source range.
type Span struct {
	Start Position
	End   Position
}

// Token is a lexed token: its kind, exact source text and location.
type Token struct {
	Kind    Kind
	Span    Span
	Literal string
}

// IsTrivia reports whether the kind is lexical material that grammar
// matching ignores: whitespace, comments and unrecognized input. All of it
// still ends up in the tree.
func (k Kind) IsTrivia() bool {
	switch k {
	case TokWhitespace, TokComment, TokLineComment, TokError:
		return true
	}
	return false
}
