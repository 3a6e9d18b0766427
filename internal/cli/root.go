// Package cli provides the Cobra command structure for csift.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/csift/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root csift command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "csift",
		Short: "A fast structural scanner for C-family source trees",
		Long: `csift tokenizes and structurally parses C and C++ source trees in
parallel, building an in-memory corpus of tokens and function outlines.

On top of the corpus it can dump token streams, list include
dependencies, report keyword and size statistics, extract doc comments,
and evaluate trivial integer programs directly from their parse.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", errUsage, err)
	})

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	// Add subcommands.
	rootCmd.AddCommand(newRunCommand())
	rootCmd.AddCommand(newTokensCommand())
	rootCmd.AddCommand(newIncludesCommand())
	rootCmd.AddCommand(newStatsCommand())
	rootCmd.AddCommand(newDocsCommand())
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	return rootCmd
}
