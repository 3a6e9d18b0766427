// Package docs extracts documentation sections from comment and
// declaration pairs in a lexed file: a comment token immediately
// followed by a documentable declaration becomes one section.
package docs

import (
	"fmt"
	"strings"

	"github.com/yaklabco/csift/pkg/source"
)

// Section is one extracted documentation entry.
type Section struct {
	// ID is the declared name the comment documents.
	ID string

	// Type is the declaration's type text ("class", "struct", a
	// builtin type keyword, or a qualified user type).
	Type string

	// Location is the comment's "<file>:<line>:<col>" position.
	Location string

	// Desc is the trimmed comment text.
	Desc string
}

// Extract walks the token stream and collects sections. Comments whose
// following tokens do not form a documentable declaration are skipped.
func Extract(data *source.Data) []Section {
	var sections []Section
	toks := data.Tokens
	n := len(toks)

	for i := 0; i < n; i++ {
		if toks[i].Kind != source.TokComment {
			continue
		}
		if i+1 == n {
			// A trailing comment documents nothing.
			break
		}

		comment := toks[i]
		switch toks[i+1].Kind {
		case source.TokKeyword:
			if sec, ok := keywordSection(data, comment, i+1); ok {
				sections = append(sections, sec)
			}
		case source.TokIdentifier:
			if sec, ok := userTypeSection(data, comment, i+1); ok {
				sections = append(sections, sec)
			}
		}
	}
	return sections
}

// keywordSection handles declarations led by a reserved word: type
// definitions (class, struct, enum, union, namespace) and variables or
// functions led by a builtin type or declaration specifier.
func keywordSection(data *source.Data, comment source.Token, i int) (Section, bool) {
	toks := data.Tokens
	if i+1 >= len(toks) || toks[i+1].Kind != source.TokIdentifier {
		return Section{}, false
	}

	key := source.Keyword(toks[i].I)
	switch key {
	case source.KeyClass, source.KeyStruct, source.KeyEnum,
		source.KeyUnion, source.KeyNamespace:
		return makeSection(data, comment, data.IDText(toks[i+1]), key.String()), true
	}

	if toks[i].IsBuiltinType() || isDeclSpecifier(key) {
		return makeSection(data, comment, data.IDText(toks[i+1]), key.String()), true
	}
	return Section{}, false
}

// userTypeSection handles declarations whose type is a user-defined,
// possibly ::-qualified identifier followed by pointer/reference/const
// decorations and the declared name.
func userTypeSection(data *source.Data, comment source.Token, i int) (Section, bool) {
	toks := data.Tokens
	n := len(toks)
	var typ strings.Builder

	typ.WriteString(data.IDText(toks[i]))
	i++

	for i < n && toks[i].IsPunct2(':', ':') {
		typ.WriteString("::")
		i++
		if i >= n || toks[i].Kind != source.TokIdentifier {
			return Section{}, false
		}
		typ.WriteString(data.IDText(toks[i]))
		i++
	}

	for i < n && (toks[i].IsPunct('*') || toks[i].IsPunct('&') ||
		toks[i].IsKeyword(source.KeyConst)) {
		if toks[i].Kind == source.TokKeyword {
			typ.WriteString(" const")
		} else {
			typ.WriteByte(byte(toks[i].I))
		}
		i++
	}

	if i >= n || toks[i].Kind != source.TokIdentifier {
		return Section{}, false
	}
	return makeSection(data, comment, data.IDText(toks[i]), typ.String()), true
}

func isDeclSpecifier(key source.Keyword) bool {
	switch key {
	case source.KeyConst, source.KeyConstexpr, source.KeyConstinit,
		source.KeyExplicit, source.KeyExport, source.KeyExtern,
		source.KeyInline, source.KeyMutable, source.KeyRegister,
		source.KeyStatic, source.KeyTemplate, source.KeyThreadLocal,
		source.KeyTypedef, source.KeyUsing, source.KeyVirtual,
		source.KeyVolatile:
		return true
	default:
		return false
	}
}

func makeSection(data *source.Data, comment source.Token, id, typ string) Section {
	return Section{
		ID:   strings.TrimSpace(id),
		Type: strings.TrimSpace(typ),
		Location: fmt.Sprintf("%s:%d:%d", data.DisplayPath(),
			comment.Pos.Line, comment.Pos.Col),
		Desc: strings.TrimSpace(data.CommentText(comment)),
	}
}
