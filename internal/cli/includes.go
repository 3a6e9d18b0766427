package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/csift/pkg/stats"
)

func newIncludesCommand() *cobra.Command {
	flags := &scanFlags{}

	cmd := &cobra.Command{
		Use:   "includes [paths...]",
		Short: "List the headers each source file includes",
		Long: `Scan the given sources and print every #include target, grouped by the
including file. Both <header> and "header" forms are listed by name,
without the delimiters.

Examples:
  csift includes src/
  csift includes main.cpp util.cpp`,
		Args: requireArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runIncludes(cmd, args, flags)
		},
	}

	addScanFlags(cmd, flags)

	return cmd
}

func runIncludes(cmd *cobra.Command, args []string, flags *scanFlags) error {
	styles := stylesFor(cmd)

	cfg, err := loadConfig(cmd, flags)
	if err != nil {
		return err
	}

	store, err := buildCorpus(commandContext(cmd), cfg, args)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, data := range store.Tokens() {
		includes := stats.Includes(data)
		if len(includes) == 0 {
			continue
		}
		fmt.Fprintln(out, styles.FilePath.Render(data.DisplayPath()))
		for _, name := range includes {
			fmt.Fprintf(out, "  %s\n", name)
		}
	}
	return nil
}
