// Package source provides the core lexical representation for csift.
// It defines the token model, the per-file text arenas, the keyword
// tables, and positioned errors shared by the lexer, parser, and every
// downstream consumer.
package source

//go:generate stringer -type=TokenKind -trimprefix=Tok

// TokenKind classifies the type of a token in C-family source.
type TokenKind uint16

// Token kinds. Preprocessor directives are bracketed by TokPPBegin and
// TokPPEnd; everything between them was lexed in preprocessor mode.
const (
	TokPPBegin TokenKind = iota
	TokPPKeyword
	TokHeaderName
	TokPPEnd
	TokComment
	TokIdentifier
	TokKeyword
	TokCharConstant
	TokStringLiteral
	TokNumericConstant
	TokPunctuator
	TokEOF
)

// Pos is a position in a source file. Line is 1-based, Col is 0-based.
type Pos struct {
	Line int
	Col  int
}

// Token is the smallest classified lexical unit. Tokens are immutable
// once appended to a Data.
//
// The meaning of I and J depends on Kind:
//   - TokIdentifier, TokStringLiteral, TokCharConstant, TokNumericConstant,
//     TokHeaderName: I and J are the half-open [I, J) byte range into the
//     owning Data's identifier arena.
//   - TokComment: I and J index the comment arena instead.
//   - TokKeyword: I is a Keyword code.
//   - TokPPKeyword: I is a PPKeyword code.
//   - TokPunctuator: I is the first operator character and J the second
//     (0 for single-character operators).
type Token struct {
	Kind TokenKind
	Pos  Pos
	I    int
	J    int
}

// IsPunct reports whether the token is the single-character punctuator ch.
func (t Token) IsPunct(ch byte) bool {
	return t.Kind == TokPunctuator && t.I == int(ch) && t.J == 0
}

// IsPunct2 reports whether the token is the two-character punctuator a b.
func (t Token) IsPunct2(a, b byte) bool {
	return t.Kind == TokPunctuator && t.I == int(a) && t.J == int(b)
}

// IsKeyword reports whether the token is the given reserved word.
func (t Token) IsKeyword(k Keyword) bool {
	return t.Kind == TokKeyword && t.I == int(k)
}

// IsBuiltinType reports whether the token is a built-in type keyword,
// the only declaration-leading tokens the structural parser accepts.
func (t Token) IsBuiltinType() bool {
	if t.Kind != TokKeyword {
		return false
	}
	switch Keyword(t.I) {
	case KeyAuto, KeyBool, KeyChar, KeyChar8T, KeyChar16T, KeyChar32T,
		KeyDouble, KeyFloat, KeyInt, KeyLong, KeyShort, KeySigned,
		KeyUnsigned, KeyVoid, KeyWcharT:
		return true
	default:
		return false
	}
}
