package docs

import (
	"fmt"
	"io"
	"strings"

	"github.com/yuin/goldmark"
)

// RenderMarkdown writes the sections as a markdown document.
func RenderMarkdown(w io.Writer, sections []Section) error {
	var b strings.Builder
	for _, sec := range sections {
		fmt.Fprintf(&b, "## %s\n\n", sec.ID)
		fmt.Fprintf(&b, "`%s` (%s)\n\n", sec.Type, sec.Location)
		if sec.Desc != "" {
			fmt.Fprintf(&b, "%s\n\n", sec.Desc)
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// RenderHTML converts the markdown rendering to HTML through goldmark.
func RenderHTML(w io.Writer, sections []Section) error {
	var md strings.Builder
	if err := RenderMarkdown(&md, sections); err != nil {
		return err
	}
	if err := goldmark.Convert([]byte(md.String()), w); err != nil {
		return fmt.Errorf("render html: %w", err)
	}
	return nil
}
