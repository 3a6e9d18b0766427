// Package stats computes simple corpus statistics: token and line
// counts, keyword frequency, and include listings.
package stats

import (
	"sort"

	"github.com/yaklabco/csift/pkg/corpus"
	"github.com/yaklabco/csift/pkg/source"
)

// Summary is the aggregate count over a corpus.
type Summary struct {
	Files  int
	Tokens int
	Lines  int
}

// Collect totals tokens and token-bearing lines across the store.
func Collect(store *corpus.Store) Summary {
	var s Summary
	for _, data := range store.Tokens() {
		s.Files++
		s.Tokens += len(data.Tokens)
		s.Lines += data.LineCount()
	}
	return s
}

// KeywordCount pairs a reserved word with its occurrence count.
type KeywordCount struct {
	Keyword source.Keyword
	Count   int
}

// KeywordFrequency counts keyword occurrences across the store,
// sorted by descending count, then spelling.
func KeywordFrequency(store *corpus.Store) []KeywordCount {
	counts := make([]int, source.KeywordCount())
	for _, data := range store.Tokens() {
		for _, tok := range data.Tokens {
			if tok.Kind == source.TokKeyword && tok.I >= 0 && tok.I < len(counts) {
				counts[tok.I]++
			}
		}
	}

	var out []KeywordCount
	for i, n := range counts {
		if n > 0 {
			out = append(out, KeywordCount{Keyword: source.Keyword(i), Count: n})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Keyword.String() < out[j].Keyword.String()
	})
	return out
}

// includeScan tracks where we are relative to a preprocessor span.
type includeScan int

const (
	scanOutside includeScan = iota
	scanInDirective
	scanAfterInclude
)

// Includes lists the header names included by one file, in order.
func Includes(data *source.Data) []string {
	var headers []string
	st := scanOutside

	for _, tok := range data.Tokens {
		switch tok.Kind {
		case source.TokPPBegin:
			if st == scanOutside {
				st = scanInDirective
			}
		case source.TokPPEnd:
			st = scanOutside
		case source.TokPPKeyword:
			if st == scanInDirective && source.PPKeyword(tok.I) == source.PPInclude {
				st = scanAfterInclude
			}
		case source.TokHeaderName:
			if st == scanAfterInclude {
				headers = append(headers, data.IDText(tok))
				st = scanInDirective
			}
		}
	}
	return headers
}
