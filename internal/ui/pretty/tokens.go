package pretty

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/yaklabco/csift/pkg/source"
)

// Mnemonics for the token dump. Kept short so columns stay aligned on
// dense files.
var kindMnemonics = map[source.TokenKind]string{
	source.TokPPBegin:         "PP{",
	source.TokPPKeyword:       "PPKEY",
	source.TokHeaderName:      "PP.H",
	source.TokPPEnd:           "}PP",
	source.TokComment:         "COMMENT",
	source.TokIdentifier:      "ID",
	source.TokKeyword:         "KEY",
	source.TokCharConstant:    "CHR",
	source.TokStringLiteral:   "LIT",
	source.TokNumericConstant: "NUM",
	source.TokPunctuator:      "OP",
	source.TokEOF:             "EOF",
}

// Mnemonic returns the short dump name for a token kind.
func Mnemonic(kind source.TokenKind) string {
	if m, ok := kindMnemonics[kind]; ok {
		return m
	}
	return kind.String()
}

// TokenText reconstructs the display text of a token from its owning
// file. Bracketing tokens and EOF have no text of their own.
func TokenText(data *source.Data, tok source.Token) string {
	switch tok.Kind {
	case source.TokIdentifier, source.TokHeaderName, source.TokCharConstant,
		source.TokStringLiteral, source.TokNumericConstant:
		return data.IDText(tok)
	case source.TokComment:
		return data.CommentText(tok)
	case source.TokKeyword:
		return source.Keyword(tok.I).String()
	case source.TokPPKeyword:
		return source.PPKeyword(tok.I).String()
	case source.TokPunctuator:
		if tok.J == 0 {
			return string(byte(tok.I))
		}
		return string([]byte{byte(tok.I), byte(tok.J)})
	default:
		return ""
	}
}

// kindStyle picks the dump style for a token kind.
func (s *Styles) kindStyle(kind source.TokenKind) lipgloss.Style {
	switch kind {
	case source.TokPPBegin, source.TokPPKeyword, source.TokHeaderName, source.TokPPEnd:
		return s.Directive
	case source.TokComment:
		return s.Comment
	case source.TokKeyword:
		return s.Keyword
	case source.TokCharConstant, source.TokStringLiteral:
		return s.Literal
	case source.TokNumericConstant:
		return s.Number
	case source.TokPunctuator:
		return s.Operator
	default:
		return s.Identifier
	}
}

// dumpPrefixWidth is the width of the location and mnemonic columns,
// used when truncating token text to the terminal.
const dumpPrefixWidth = 17

// FormatToken formats a single token as one dump line.
// Example: "   3:4   KEY     int".
func (s *Styles) FormatToken(data *source.Data, tok source.Token) string {
	return s.formatTokenLine(data, tok, 0)
}

func (s *Styles) formatTokenLine(data *source.Data, tok source.Token, width int) string {
	loc := fmt.Sprintf("%4d:%-3d", tok.Pos.Line, tok.Pos.Col)
	style := s.kindStyle(tok.Kind)
	line := s.Location.Render(loc) + " " + style.Render(fmt.Sprintf("%-7s", Mnemonic(tok.Kind)))
	if text := TokenText(data, tok); text != "" {
		text = strings.ReplaceAll(text, "\n", " ")
		if avail := width - dumpPrefixWidth; width > 0 && len(text) > avail && avail > 3 {
			text = text[:avail-3] + "..."
		}
		line += " " + style.Render(text)
	}
	return line
}

// FormatTokenDump formats every token of a file, preceded by a file
// header line. A positive width truncates long token text, keeping
// multi-line comment runs on one dump line each.
func (s *Styles) FormatTokenDump(data *source.Data, width int) string {
	var builder strings.Builder
	builder.WriteString(s.FilePath.Render(data.DisplayPath()))
	builder.WriteString("\n")
	for _, tok := range data.Tokens {
		builder.WriteString(s.formatTokenLine(data, tok, width))
		builder.WriteString("\n")
	}
	return builder.String()
}

// TerminalWidth returns w's column count when it is a terminal, or
// zero when it is not (or the size cannot be read).
func TerminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok {
		return 0
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return 0
	}
	return width
}
