package pretty

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/yaklabco/csift/pkg/stats"
)

const (
	summaryDividerWidth = 40
	wordFile            = "file"
	wordFiles           = "files"
)

// FormatSummaryOneLine formats corpus statistics as a single line.
// Example: "482 tokens across 61 lines in 3 files".
func (s *Styles) FormatSummaryOneLine(summary stats.Summary) string {
	fileWord := wordFiles
	if summary.Files == 1 {
		fileWord = wordFile
	}
	return fmt.Sprintf("%s tokens across %s lines in %d %s\n",
		s.SummaryValue.Render(strconv.Itoa(summary.Tokens)),
		s.SummaryValue.Render(strconv.Itoa(summary.Lines)),
		summary.Files, fileWord)
}

// FormatSummary formats corpus statistics as a summary block.
func (s *Styles) FormatSummary(summary stats.Summary) string {
	var builder strings.Builder

	builder.WriteString("\n")
	builder.WriteString(s.SummaryTitle.Render("Summary"))
	builder.WriteString("\n")
	builder.WriteString(strings.Repeat("-", summaryDividerWidth))
	builder.WriteString("\n")

	builder.WriteString("  Files scanned: " +
		s.SummaryValue.Render(strconv.Itoa(summary.Files)) + "\n")
	builder.WriteString("  Tokens:        " +
		s.SummaryValue.Render(strconv.Itoa(summary.Tokens)) + "\n")
	builder.WriteString("  Lines:         " +
		s.SummaryValue.Render(strconv.Itoa(summary.Lines)) + "\n")

	return builder.String()
}

// FormatKeywordTable formats keyword frequencies, most frequent first.
func (s *Styles) FormatKeywordTable(counts []stats.KeywordCount) string {
	if len(counts) == 0 {
		return s.Dim.Render("no keywords found") + "\n"
	}

	var builder strings.Builder
	builder.WriteString(s.SummaryTitle.Render("Keywords"))
	builder.WriteString("\n")
	for _, kc := range counts {
		builder.WriteString(fmt.Sprintf("  %-14s %s\n",
			kc.Keyword.String(), s.SummaryValue.Render(strconv.Itoa(kc.Count))))
	}
	return builder.String()
}

// FormatElapsed formats a wall-clock duration for the --time flag.
func (s *Styles) FormatElapsed(elapsed time.Duration) string {
	return s.Dim.Render(fmt.Sprintf("elapsed: %s", elapsed.Round(time.Millisecond))) + "\n"
}

// FormatExit formats the evaluator's exit status.
func (s *Styles) FormatExit(code int) string {
	msg := fmt.Sprintf("program exited with code %d", code)
	if code == 0 {
		return s.Success.Render(msg) + "\n"
	}
	return s.Failure.Render(msg) + "\n"
}
