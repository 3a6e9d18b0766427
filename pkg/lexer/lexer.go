// Package lexer implements the finite-state tokenizer for C-family
// source files. It converts a byte stream into a source.Data: a flat
// token sequence plus the identifier and comment text arenas.
package lexer

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/yaklabco/csift/pkg/source"
)

// ErrOpen indicates the input file could not be opened. Callers treat
// this as recoverable: the file is skipped and the run continues.
var ErrOpen = errors.New("cannot open file")

// state is the scanner state. The lexer is mostly skipping whitespace
// (stWhitespace); when something interesting starts it switches to a
// token-specific state and returns to stWhitespace once the token is
// emitted.
type state int

const (
	stWhitespace state = iota
	stWhitespaceToEOL
	stIdentifier
	stLineComment
	stBlockComment
	stBeforeHeaderName
	stSysHeaderName
	stUserHeaderName
	stErrorTextToEOL
	stString
	stChar
	stHex
	stBinary
	stOctal
	stIntegerPart
	stDecimalPart
)

// action tells the scan loop what to do after processing a character.
type action int

const (
	// actNext consumes the next input character.
	actNext action = iota
	// actReprocess re-dispatches the current character without reading.
	// Used for maximal-munch disambiguation: when a lookahead does not
	// complete a longer token, it must be processed again from scratch.
	actReprocess
)

// Options configures a Lexer.
type Options struct {
	// KeepComments enables comment capture into the comment arena.
	KeepComments bool
}

// DefaultOptions returns the default lexer configuration.
func DefaultOptions() Options {
	return Options{KeepComments: true}
}

// Lexer tokenizes one file per Lex call. A Lexer is not safe for
// concurrent use; the pipeline creates one per task.
type Lexer struct {
	opts Options

	st      state
	data    *source.Data
	reader  *charReader
	chr     int // current character, -1 at end of input
	prepro  bool
	pending []byte
}

// New creates a Lexer with the given options.
func New(opts Options) *Lexer {
	return &Lexer{opts: opts}
}

// Lex tokenizes the file at path. The empty path reads standard input.
// Open failures are reported wrapped in ErrOpen; lexical errors are
// *source.Error values with file, line, and column.
func (l *Lexer) Lex(path string) (*source.Data, error) {
	var in io.Reader
	if path == "" {
		in = os.Stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrOpen, path, err)
		}
		defer f.Close()
		in = f
	}
	return l.LexReader(path, in)
}

// LexReader tokenizes from an arbitrary reader, recording path in the
// resulting data and in any error positions.
func (l *Lexer) LexReader(path string, in io.Reader) (*source.Data, error) {
	l.data = &source.Data{
		Path:   path,
		Tokens: make([]source.Token, 0, 128),
	}
	l.reader = newCharReader(in)
	l.st = stWhitespace
	l.prepro = false
	l.pending = l.pending[:0]

	for {
		l.chr = l.reader.next()
		for {
			act, err := l.process()
			if err != nil {
				return nil, err
			}
			if act != actReprocess {
				break
			}
		}
		if l.chr < 0 {
			break
		}
	}

	// Close a dangling preprocessor span so the stream stays bracketed.
	if l.prepro {
		l.emit(source.TokPPEnd, 0, 0)
		l.prepro = false
	}

	l.data.Bytes = l.reader.bytes
	l.emit(source.TokEOF, 0, 0)
	return l.data, nil
}

// emit appends a token at the reader's current position.
func (l *Lexer) emit(kind source.TokenKind, i, j int) {
	l.data.Tokens = append(l.data.Tokens, source.Token{
		Kind: kind,
		Pos:  l.reader.pos,
		I:    i,
		J:    j,
	})
}

// emitPending moves the pending text into the identifier arena and
// appends a token referencing it.
func (l *Lexer) emitPending(kind source.TokenKind) {
	start := len(l.data.IDs)
	l.data.IDs = append(l.data.IDs, l.pending...)
	l.emit(kind, start, len(l.data.IDs))
	l.pending = l.pending[:0]
}

// emitComment trims the pending comment text and appends it to the
// comment arena. Adjacent comment tokens merge by extending the prior
// token's end offset, so consecutive line comments collapse into one
// logical run.
func (l *Lexer) emitComment() {
	text := trimSpace(l.pending)
	if len(text) == 0 {
		l.pending = l.pending[:0]
		return
	}
	if n := len(l.data.Tokens); n > 0 && l.data.Tokens[n-1].Kind == source.TokComment {
		l.data.Comments = append(l.data.Comments, '\n')
		l.data.Comments = append(l.data.Comments, text...)
		l.data.Tokens[n-1].J = len(l.data.Comments)
	} else {
		start := len(l.data.Comments)
		l.data.Comments = append(l.data.Comments, text...)
		l.emit(source.TokComment, start, len(l.data.Comments))
	}
	l.pending = l.pending[:0]
}

func (l *Lexer) errorf(format string, args ...any) *source.Error {
	return source.Errorf(l.data.Path, l.reader.pos, format, args...)
}

func trimSpace(b []byte) []byte {
	lo := 0
	hi := len(b)
	for lo < hi && isSpace(b[lo]) {
		lo++
	}
	for hi > lo && isSpace(b[hi-1]) {
		hi--
	}
	return b[lo:hi]
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}
