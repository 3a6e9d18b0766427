package source_test

import (
	"testing"

	"github.com/yaklabco/csift/pkg/source"
)

func TestTokenPredicates(t *testing.T) {
	t.Parallel()

	semi := source.Token{Kind: source.TokPunctuator, I: ';'}
	if !semi.IsPunct(';') {
		t.Error("expected ';' to match IsPunct(';')")
	}
	if semi.IsPunct(',') {
		t.Error("';' must not match IsPunct(',')")
	}

	arrow := source.Token{Kind: source.TokPunctuator, I: '-', J: '>'}
	if !arrow.IsPunct2('-', '>') {
		t.Error("expected '->' to match IsPunct2('-', '>')")
	}
	if arrow.IsPunct('-') {
		t.Error("'->' must not match the single-character '-'")
	}

	ret := source.Token{Kind: source.TokKeyword, I: int(source.KeyReturn)}
	if !ret.IsKeyword(source.KeyReturn) {
		t.Error("expected return keyword match")
	}
	if ret.IsKeyword(source.KeyWhile) {
		t.Error("return must not match while")
	}

	// An identifier never satisfies the punctuator predicates even with
	// a matching payload.
	id := source.Token{Kind: source.TokIdentifier, I: ';'}
	if id.IsPunct(';') {
		t.Error("identifier must not match IsPunct")
	}
}

func TestIsBuiltinType(t *testing.T) {
	t.Parallel()

	builtin := []source.Keyword{
		source.KeyAuto, source.KeyBool, source.KeyChar, source.KeyDouble,
		source.KeyFloat, source.KeyInt, source.KeyLong, source.KeyShort,
		source.KeySigned, source.KeyUnsigned, source.KeyVoid, source.KeyWcharT,
	}
	for _, key := range builtin {
		tok := source.Token{Kind: source.TokKeyword, I: int(key)}
		if !tok.IsBuiltinType() {
			t.Errorf("expected %s to be a builtin type", key)
		}
	}

	notBuiltin := []source.Keyword{
		source.KeyClass, source.KeyReturn, source.KeyStruct, source.KeyWhile,
	}
	for _, key := range notBuiltin {
		tok := source.Token{Kind: source.TokKeyword, I: int(key)}
		if tok.IsBuiltinType() {
			t.Errorf("%s must not be a builtin type", key)
		}
	}
}

func TestDataArenas(t *testing.T) {
	t.Parallel()

	data := &source.Data{
		IDs:      []byte("mainfoo"),
		Comments: []byte("a doc"),
	}

	id := source.Token{Kind: source.TokIdentifier, I: 0, J: 4}
	if got := data.IDText(id); got != "main" {
		t.Errorf("IDText = %q, want %q", got, "main")
	}

	comment := source.Token{Kind: source.TokComment, I: 0, J: 5}
	if got := data.CommentText(comment); got != "a doc" {
		t.Errorf("CommentText = %q, want %q", got, "a doc")
	}

	// Out-of-range references read as empty rather than panicking.
	bad := source.Token{Kind: source.TokIdentifier, I: 5, J: 99}
	if got := data.IDText(bad); got != "" {
		t.Errorf("out-of-range IDText = %q, want empty", got)
	}
}

func TestDisplayPath(t *testing.T) {
	t.Parallel()

	if got := (&source.Data{Path: "a.cpp"}).DisplayPath(); got != "a.cpp" {
		t.Errorf("DisplayPath = %q, want %q", got, "a.cpp")
	}
	if got := (&source.Data{}).DisplayPath(); got != "<stdin>" {
		t.Errorf("DisplayPath = %q, want %q", got, "<stdin>")
	}
}

func TestErrorFormat(t *testing.T) {
	t.Parallel()

	err := source.Errorf("a.cpp", source.Pos{Line: 3, Col: 7}, "unexpected char: %q", '$')
	want := `a.cpp:3:7: unexpected char: '$'`
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}

	stdin := source.Errorf("", source.Pos{Line: 1, Col: 0}, "boom")
	if got := stdin.Error(); got != "<stdin>:1:0: boom" {
		t.Errorf("Error() = %q, want %q", got, "<stdin>:1:0: boom")
	}
}

func TestTokenKindString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind     source.TokenKind
		expected string
	}{
		{source.TokPPBegin, "PPBegin"},
		{source.TokHeaderName, "HeaderName"},
		{source.TokIdentifier, "Identifier"},
		{source.TokNumericConstant, "NumericConstant"},
		{source.TokEOF, "EOF"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			t.Parallel()

			if tt.kind.String() != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, tt.kind.String())
			}
		})
	}
}
