package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/csift/pkg/stats"
)

type statsFlags struct {
	scan     scanFlags
	keywords bool
	compact  bool
}

func newStatsCommand() *cobra.Command {
	flags := &statsFlags{}

	cmd := &cobra.Command{
		Use:   "stats [paths...]",
		Short: "Report token, line, and keyword statistics",
		Long: `Scan the given sources and report corpus statistics: file, token, and
line counts, and optionally per-keyword frequencies.

Examples:
  csift stats src/
  csift stats --keywords src/
  csift stats --compact main.cpp`,
		Args: requireArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(cmd, args, flags)
		},
	}

	addScanFlags(cmd, &flags.scan)
	cmd.Flags().BoolVar(&flags.keywords, "keywords", false, "include keyword frequencies")
	cmd.Flags().BoolVar(&flags.compact, "compact", false, "print a one-line summary")

	return cmd
}

func runStats(cmd *cobra.Command, args []string, flags *statsFlags) error {
	styles := stylesFor(cmd)

	cfg, err := loadConfig(cmd, &flags.scan)
	if err != nil {
		return err
	}

	store, err := buildCorpus(commandContext(cmd), cfg, args)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	summary := stats.Collect(store)
	if flags.compact {
		fmt.Fprint(out, styles.FormatSummaryOneLine(summary))
	} else {
		fmt.Fprint(out, styles.FormatSummary(summary))
	}

	if flags.keywords {
		fmt.Fprintln(out)
		fmt.Fprint(out, styles.FormatKeywordTable(stats.KeywordFrequency(store)))
	}
	return nil
}
