package syntax

import "strings"

// Language describes a token vocabulary to the engine: which kinds are
// trivia (invisible to grammar matching but re-attached to the tree) and
// which kind tags synthesized error nodes. One engine serves any grammar
// that can answer these two questions.
type Language[K comparable] interface {
	IsTrivia(kind K) bool
	ErrorKind() K
}

// Token is the engine-side view of a lexed token: a kind and the exact
// substring it matched. Positional information is recovered from the
// running byte offset of the cursor, so tokens stay cheap to copy.
type Token[K comparable] struct {
	Kind K
	Text string
}

func (t Token[K]) TextLen() int {
	return len(t.Text)
}

func (t Token[K]) appendText(b *strings.Builder) {
	b.WriteString(t.Text)
}
