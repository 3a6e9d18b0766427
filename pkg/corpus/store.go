// Package corpus holds the synchronized result store for one analysis
// run: every file's token sequence and its shallow parse output.
package corpus

import (
	"sync"

	"github.com/yaklabco/csift/pkg/parser"
	"github.com/yaklabco/csift/pkg/source"
)

// Store collects per-file lexical and parse results. The token and
// parse collections are guarded independently, so a lex task appending
// one file never blocks a parse task fetching another.
//
// Appended values are treated as immutable: FetchTokens returns a
// shared view that no writer touches again.
type Store struct {
	tokensMu sync.Mutex
	tokens   []*source.Data

	parsesMu sync.Mutex
	parses   []*parser.Result
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{}
}

// AppendTokens appends a file's token sequence and returns the index
// assigned to it. The index is the stable handle used by later tasks
// to fetch the sequence without a name lookup.
func (s *Store) AppendTokens(data *source.Data) int {
	s.tokensMu.Lock()
	defer s.tokensMu.Unlock()
	i := len(s.tokens)
	s.tokens = append(s.tokens, data)
	return i
}

// FetchTokens returns the token sequence stored at index i, or nil if
// no such entry exists.
func (s *Store) FetchTokens(i int) *source.Data {
	s.tokensMu.Lock()
	defer s.tokensMu.Unlock()
	if i < 0 || i >= len(s.tokens) {
		return nil
	}
	return s.tokens[i]
}

// AppendParse appends a file's shallow parse result.
func (s *Store) AppendParse(res *parser.Result) {
	s.parsesMu.Lock()
	defer s.parsesMu.Unlock()
	s.parses = append(s.parses, res)
}

// TokenCount returns the number of stored token sequences.
func (s *Store) TokenCount() int {
	s.tokensMu.Lock()
	defer s.tokensMu.Unlock()
	return len(s.tokens)
}

// Tokens returns a snapshot of the token collection in append order.
func (s *Store) Tokens() []*source.Data {
	s.tokensMu.Lock()
	defer s.tokensMu.Unlock()
	out := make([]*source.Data, len(s.tokens))
	copy(out, s.tokens)
	return out
}

// Parses returns a snapshot of the parse result collection.
func (s *Store) Parses() []*parser.Result {
	s.parsesMu.Lock()
	defer s.parsesMu.Unlock()
	out := make([]*parser.Result, len(s.parses))
	copy(out, s.parses)
	return out
}
