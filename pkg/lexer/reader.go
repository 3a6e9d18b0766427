package lexer

import (
	"bufio"
	"io"

	"github.com/yaklabco/csift/pkg/source"
)

// charReader reads one byte at a time from a buffered stream, tracking
// the position of the character just read. Lines are 1-based; the
// column resets to 0 on every newline and counts bytes from there.
type charReader struct {
	r     *bufio.Reader
	pos   source.Pos
	bytes int
}

func newCharReader(in io.Reader) *charReader {
	return &charReader{
		r:   bufio.NewReader(in),
		pos: source.Pos{Line: 1, Col: 0},
	}
}

// next returns the next input character, or -1 at end of input.
func (cr *charReader) next() int {
	b, err := cr.r.ReadByte()
	if err != nil {
		return -1
	}
	cr.bytes++
	if b == '\n' {
		cr.pos.Line++
		cr.pos.Col = 0
	} else {
		cr.pos.Col++
	}
	return int(b)
}
