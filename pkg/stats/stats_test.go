package stats_test

import (
	"strings"
	"testing"

	"github.com/yaklabco/csift/pkg/corpus"
	"github.com/yaklabco/csift/pkg/lexer"
	"github.com/yaklabco/csift/pkg/source"
	"github.com/yaklabco/csift/pkg/stats"
)

func lex(t *testing.T, src string) *source.Data {
	t.Helper()
	data, err := lexer.New(lexer.DefaultOptions()).LexReader("test.cpp", strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	return data
}

func TestCollect(t *testing.T) {
	t.Parallel()

	store := corpus.NewStore()
	store.AppendTokens(lex(t, "int x;\nint y;\n"))
	store.AppendTokens(lex(t, "int z;\n"))

	summary := stats.Collect(store)
	if summary.Files != 2 {
		t.Errorf("Files = %d, want 2", summary.Files)
	}
	if summary.Lines != 3 {
		t.Errorf("Lines = %d, want 3", summary.Lines)
	}
	// Each "int x;" line is 3 tokens; each file adds one EOF.
	if summary.Tokens != 3*3+2 {
		t.Errorf("Tokens = %d, want %d", summary.Tokens, 3*3+2)
	}
}

func TestKeywordFrequency(t *testing.T) {
	t.Parallel()

	store := corpus.NewStore()
	store.AppendTokens(lex(t, "int a; int b; return c; void d;"))

	counts := stats.KeywordFrequency(store)
	if len(counts) != 3 {
		t.Fatalf("got %d keyword entries, want 3", len(counts))
	}

	// int twice, then return/void once each ordered by spelling.
	if counts[0].Keyword != source.KeyInt || counts[0].Count != 2 {
		t.Errorf("counts[0] = %v x%d, want int x2", counts[0].Keyword, counts[0].Count)
	}
	if counts[1].Keyword != source.KeyReturn || counts[2].Keyword != source.KeyVoid {
		t.Errorf("tie order = %v, %v; want return, void", counts[1].Keyword, counts[2].Keyword)
	}
}

func TestKeywordFrequencyEmpty(t *testing.T) {
	t.Parallel()

	store := corpus.NewStore()
	store.AppendTokens(lex(t, "x = y;"))

	if counts := stats.KeywordFrequency(store); len(counts) != 0 {
		t.Errorf("counts = %v, want none", counts)
	}
}

func TestIncludes(t *testing.T) {
	t.Parallel()

	src := `#include <vector>
#include "util/str.h"
#define FLAG 1
#include <map>
int x;
`
	got := stats.Includes(lex(t, src))
	want := []string{"vector", "util/str.h", "map"}

	if len(got) != len(want) {
		t.Fatalf("Includes = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Includes = %v, want %v", got, want)
		}
	}
}

func TestIncludesNone(t *testing.T) {
	t.Parallel()

	if got := stats.Includes(lex(t, "int x;")); len(got) != 0 {
		t.Errorf("Includes = %v, want none", got)
	}
}
