package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/csift/internal/ui/pretty"
)

func newTokensCommand() *cobra.Command {
	flags := &scanFlags{}

	cmd := &cobra.Command{
		Use:   "tokens [paths...]",
		Short: "Dump the token stream of each source file",
		Long: `Scan the given sources and print every token with its position, kind
mnemonic, and text. Preprocessor directives appear bracketed between
PP{ and }PP tokens.

Examples:
  csift tokens main.cpp
  csift tokens --keep-comments=false src/`,
		Args: requireArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTokens(cmd, args, flags)
		},
	}

	addScanFlags(cmd, flags)

	return cmd
}

func runTokens(cmd *cobra.Command, args []string, flags *scanFlags) error {
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
	width := pretty.TerminalWidth(out)
	for _, data := range store.Tokens() {
		fmt.Fprint(out, styles.FormatTokenDump(data, width))
	}
	return nil
}
