package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/csift/pkg/docs"
)

type docsFlags struct {
	scan   scanFlags
	format string
	output string
}

func newDocsCommand() *cobra.Command {
	flags := &docsFlags{}

	cmd := &cobra.Command{
		Use:   "docs [paths...]",
		Short: "Extract documentation comments into Markdown or HTML",
		Long: `Scan the given sources and extract comments that document the
declaration immediately following them. Each documented declaration
becomes a section carrying its name, type, and source location.

Examples:
  csift docs src/
  csift docs --format html --output api.html include/`,
		Args: requireArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDocs(cmd, args, flags)
		},
	}

	addScanFlags(cmd, &flags.scan)
	cmd.Flags().StringVar(&flags.format, "format", "markdown", "output format: markdown, html")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "output file path (default: stdout)")

	return cmd
}

func runDocs(cmd *cobra.Command, args []string, flags *docsFlags) error {
	if flags.format != "markdown" && flags.format != "html" {
		return fmt.Errorf("invalid format %q: must be markdown or html", flags.format)
	}

	cfg, err := loadConfig(cmd, &flags.scan)
	if err != nil {
		return err
	}

	// Doc extraction needs comment text regardless of the config.
	cfg.KeepComments = true

	store, err := buildCorpus(commandContext(cmd), cfg, args)
	if err != nil {
		return err
	}

	var sections []docs.Section
	for _, data := range store.Tokens() {
		sections = append(sections, docs.Extract(data)...)
	}

	out := cmd.OutOrStdout()
	if flags.output != "" {
		f, err := os.Create(flags.output)
		if err != nil {
			return fmt.Errorf("create output %s: %w", flags.output, err)
		}
		defer f.Close()
		out = f
	}

	if flags.format == "html" {
		return docs.RenderHTML(out, sections)
	}
	return docs.RenderMarkdown(out, sections)
}
