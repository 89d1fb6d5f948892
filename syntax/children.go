package syntax

// Children is the in-progress output of a combinator: an ordered list of
// tree fragments (completed subtrees or single tokens) plus the errors
// collected while producing them. Accumulators combine by concatenation
// and can be closed into a single node with IntoNode.
type Children[K comparable] struct {
	Errors   []*Error
	elements []Element[K]
}

// Add appends another accumulator's fragments and errors, preserving
// order.
func (c *Children[K]) Add(other Children[K]) {
	c.Errors = append(c.Errors, other.Errors...)
	c.elements = append(c.elements, other.elements...)
}

// IntoNode collapses the accumulated fragments into a single new node of
// the given kind, keeping the collected errors unchanged.
func (c Children[K]) IntoNode(kind K) Children[K] {
	return Children[K]{
		Errors:   c.Errors,
		elements: []Element[K]{NewNode(kind, c.elements)},
	}
}

// Elements returns the accumulated fragments in source order.
func (c Children[K]) Elements() []Element[K] {
	return c.elements
}

func childrenFromTokens[K comparable](trivia []Token[K], tok Token[K]) Children[K] {
	elems := make([]Element[K], 0, len(trivia)+1)
	for _, t := range trivia {
		elems = append(elems, t)
	}
	elems = append(elems, tok)
	return Children[K]{elements: elems}
}

func childrenFromError[K comparable](lang Language[K], err *Error) Children[K] {
	return Children[K]{
		Errors:   []*Error{err},
		elements: []Element[K]{NewNode(lang.ErrorKind(), nil)},
	}
}
