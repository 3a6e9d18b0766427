package source

import "fmt"

// Error is a fatal condition at a specific source position. It renders
// as "<file>:<line>:<col>: <message>", the format every csift consumer
// prints before exiting non-zero.
type Error struct {
	Path string
	Pos  Pos
	Msg  string
}

// Error implements the error interface.
func (e *Error) Error() string {
	path := e.Path
	if path == "" {
		path = "<stdin>"
	}
	return fmt.Sprintf("%s:%d:%d: %s", path, e.Pos.Line, e.Pos.Col, e.Msg)
}

// Errorf builds a positioned error.
func Errorf(path string, pos Pos, format string, args ...any) *Error {
	return &Error{Path: path, Pos: pos, Msg: fmt.Sprintf(format, args...)}
}
