package ast

import "sync"

// FunctionBody is the body of a function declaration, in one of two
// states. It starts unexpanded: only the corpus index of the owning
// token sequence and the [Begin, End) token range of the `{ }` block
// are recorded. A deep-parse request transitions it to expanded, which
// is one-way and idempotent.
type FunctionBody struct {
	// Seq is the corpus store index of the owning token sequence.
	Seq int

	// Begin is the index of the first token after the opening `{`.
	Begin int

	// End is the index of the matching top-level `}`.
	End int

	once  sync.Once
	block *CompoundStmt
	err   error
}

// NewBody creates an unexpanded body covering tokens [begin, end) of
// the sequence stored at corpus index seq.
func NewBody(seq, begin, end int) *FunctionBody {
	return &FunctionBody{Seq: seq, Begin: begin, End: end}
}

// IsExpanded reports whether the body has been deep-parsed.
func (b *FunctionBody) IsExpanded() bool {
	return b.block != nil
}

// Block returns the expanded statement tree, or nil if the body is
// still unexpanded.
func (b *FunctionBody) Block() *CompoundStmt {
	return b.block
}

// Expand transitions the body to its expanded state using parse to
// build the tree. The first call wins; later calls return the existing
// tree (or the original error) without re-scanning tokens.
func (b *FunctionBody) Expand(parse func() (*CompoundStmt, error)) (*CompoundStmt, error) {
	b.once.Do(func() {
		b.block, b.err = parse()
	})
	return b.block, b.err
}
