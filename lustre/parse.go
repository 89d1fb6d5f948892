package lustre

import (
	"sort"

	"github.com/dhamidi/lus/syntax"
)

type language struct{}

func (language) IsTrivia(k Kind) bool { return k.IsTrivia() }
func (language) ErrorKind() Kind      { return NodeError }

// Lang adapts the Lustre token set to the tree-building engine.
var Lang syntax.Language[Kind] = language{}

// Parse lexes and parses src into a lossless syntax tree. The returned
// diagnostics cover both unrecognized characters and grammar errors, in
// source order; the tree itself always spans the whole input. The error
// result is non-nil only for unclosed strings and comments, which abort
// lexing.
func Parse(src []byte, file string) (*syntax.Node[Kind], []*syntax.Error, error) {
	tokens, err := Lex(src, file)
	if err != nil {
		return nil, nil, err
	}

	stream := make([]syntax.Token[Kind], len(tokens))
	var errs []*syntax.Error
	for i, tok := range tokens {
		stream[i] = syntax.Token[Kind]{Kind: tok.Kind, Text: tok.Literal}
		if tok.Kind == TokError {
			errs = append(errs, syntax.Errorf(
				tok.Span.Start.Offset, tok.Span.End.Offset,
				"unrecognized character %q", tok.Literal,
			))
		}
	}

	root, parseErrs := syntax.Root(Lang, NodeRoot, stream, pRoot)
	errs = append(errs, parseErrs...)
	sort.SliceStable(errs, func(i, j int) bool { return errs[i].Start < errs[j].Start })
	return root, errs, nil
}
