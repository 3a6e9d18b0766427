package source

// Data is the lexical output for one file: the token stream plus the
// two text arenas its tokens reference. A Data is produced by exactly
// one lexer run and is immutable once handed to the corpus store.
type Data struct {
	// Path is the file path ("" means standard input).
	Path string

	// IDs is the identifier/literal arena. Identifier, literal, and
	// header-name tokens hold half-open byte ranges into it.
	IDs []byte

	// Comments is the comment arena. Comment tokens hold ranges into it.
	Comments []byte

	// Tokens is the token stream, terminated by a TokEOF token.
	Tokens []Token

	// Bytes is the number of raw bytes consumed from the input.
	Bytes int
}

// IDText returns the arena text of an identifier/literal-class token.
func (d *Data) IDText(t Token) string {
	if t.I < 0 || t.J > len(d.IDs) || t.I > t.J {
		return ""
	}
	return string(d.IDs[t.I:t.J])
}

// CommentText returns the arena text of a comment token.
func (d *Data) CommentText(t Token) string {
	if t.I < 0 || t.J > len(d.Comments) || t.I > t.J {
		return ""
	}
	return string(d.Comments[t.I:t.J])
}

// DisplayPath returns the path, substituting a stdin marker for "".
func (d *Data) DisplayPath() string {
	if d.Path == "" {
		return "<stdin>"
	}
	return d.Path
}

// LineCount returns the number of distinct lines that carry tokens.
// The EOF marker does not count as token-bearing.
func (d *Data) LineCount() int {
	lines := 0
	line := 0
	for _, tok := range d.Tokens {
		if tok.Kind == TokEOF {
			continue
		}
		if tok.Pos.Line != line {
			line = tok.Pos.Line
			lines++
		}
	}
	return lines
}
