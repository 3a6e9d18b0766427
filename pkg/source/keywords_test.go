package source_test

import (
	"testing"

	"github.com/yaklabco/csift/pkg/source"
)

func TestLookupKeyword(t *testing.T) {
	t.Parallel()

	tests := []struct {
		spelling string
		expected source.Keyword
		found    bool
	}{
		{"alignas", source.KeyAlignas, true},
		{"int", source.KeyInt, true},
		{"return", source.KeyReturn, true},
		{"thread_local", source.KeyThreadLocal, true},
		{"wchar_t", source.KeyWcharT, true},
		{"while", source.KeyWhile, true},
		{"include", 0, false},
		{"main", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.spelling, func(t *testing.T) {
			t.Parallel()

			key, ok := source.LookupKeyword(tt.spelling)
			if ok != tt.found {
				t.Fatalf("LookupKeyword(%q) found = %v, want %v", tt.spelling, ok, tt.found)
			}
			if ok && key != tt.expected {
				t.Errorf("LookupKeyword(%q) = %v, want %v", tt.spelling, key, tt.expected)
			}
		})
	}
}

func TestKeywordRoundTrip(t *testing.T) {
	t.Parallel()

	for code := range source.KeywordCount() {
		key := source.Keyword(code)
		spelling := key.String()
		if spelling == "" {
			t.Fatalf("keyword %d has no spelling", code)
		}
		back, ok := source.LookupKeyword(spelling)
		if !ok || back != key {
			t.Errorf("LookupKeyword(%q) = %v, %v; want %v, true", spelling, back, ok, key)
		}
	}
}

func TestLookupPPKeyword(t *testing.T) {
	t.Parallel()

	tests := []struct {
		spelling string
		expected source.PPKeyword
		found    bool
	}{
		{"define", source.PPDefine, true},
		{"include", source.PPInclude, true},
		{"pragma", source.PPPragma, true},
		{"undef", source.PPUndef, true},
		{"int", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.spelling, func(t *testing.T) {
			t.Parallel()

			key, ok := source.LookupPPKeyword(tt.spelling)
			if ok != tt.found {
				t.Fatalf("LookupPPKeyword(%q) found = %v, want %v", tt.spelling, ok, tt.found)
			}
			if ok && key != tt.expected {
				t.Errorf("LookupPPKeyword(%q) = %v, want %v", tt.spelling, key, tt.expected)
			}
		})
	}
}

func TestInvalidKeywordString(t *testing.T) {
	t.Parallel()

	if got := source.Keyword(-1).String(); got != "" {
		t.Errorf("Keyword(-1).String() = %q, want empty", got)
	}
	if got := source.Keyword(source.KeywordCount()).String(); got != "" {
		t.Errorf("out-of-range Keyword String() = %q, want empty", got)
	}
	if got := source.PPKeyword(99).String(); got != "" {
		t.Errorf("PPKeyword(99).String() = %q, want empty", got)
	}
}
