package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/csift/internal/logging"
	"github.com/yaklabco/csift/internal/ui/pretty"
	"github.com/yaklabco/csift/pkg/config"
	"github.com/yaklabco/csift/pkg/corpus"
	"github.com/yaklabco/csift/pkg/lexer"
	"github.com/yaklabco/csift/pkg/pipeline"
)

// scanFlags are the pipeline flags shared by every corpus-building
// subcommand.
type scanFlags struct {
	jobs         int
	keepComments bool
	time         bool
	ignore       []string
}

func addScanFlags(cmd *cobra.Command, flags *scanFlags) {
	cmd.Flags().IntVar(&flags.jobs, "jobs", 0, "number of parallel workers (0 = auto)")
	cmd.Flags().BoolVar(&flags.keepComments, "keep-comments", true, "capture comment text while lexing")
	cmd.Flags().BoolVar(&flags.time, "time", false, "log scan wall-clock time")
	cmd.Flags().StringSliceVar(&flags.ignore, "ignore", nil, "glob patterns to ignore")
}

// requireArgs is cobra.MinimumNArgs with the error classified as a
// usage fault for the exit code.
func requireArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.MinimumNArgs(n)(cmd, args); err != nil {
			return fmt.Errorf("%w: %v", errUsage, err)
		}
		return nil
	}
}

// loadConfig merges the on-disk configuration with the flags the user
// actually set on the command line. Flags win over the file. The
// configured log level takes effect here unless --debug already
// forced one.
func loadConfig(cmd *cobra.Command, flags *scanFlags) (*config.Config, error) {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("%w: get config flag: %v", errInternal, err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("%w: get working directory: %v", errInternal, err)
	}

	cfg, err := config.Load(configPath, workDir)
	if err != nil {
		return nil, errors.Join(errConfigLoad, err)
	}

	if cmd.Flags().Changed("jobs") {
		cfg.Jobs = flags.jobs
	}
	if cmd.Flags().Changed("keep-comments") {
		cfg.KeepComments = flags.keepComments
	}
	if cmd.Flags().Changed("time") {
		cfg.ShowTime = flags.time
	}
	if cmd.Flags().Changed("ignore") {
		cfg.Ignore = flags.ignore
	}

	if debug, _ := cmd.Flags().GetBool("debug"); !debug && cfg.LogLevel != "" {
		logging.SetLevel(cfg.LogLevel)
	}

	return cfg, nil
}

// buildCorpus discovers the inputs named by args and runs the full
// lex/parse pipeline over them.
func buildCorpus(ctx context.Context, cfg *config.Config, args []string) (*corpus.Store, error) {
	logger := logging.FromContext(ctx)

	paths, err := pipeline.Discover(ctx, args, cfg.Ignore)
	if err != nil {
		return nil, errors.Join(errors.New("input discovery failed"), err)
	}
	if len(paths) == 0 {
		return nil, errors.New("no source files found")
	}

	logger.Debug("starting scan",
		logging.FieldFiles, len(paths),
		logging.FieldJobs, cfg.Jobs,
		logging.FieldKeepComments, cfg.KeepComments,
	)

	store := corpus.NewStore()
	pl := pipeline.New(store, pipeline.Options{
		Jobs:  cfg.Jobs,
		Lexer: lexer.Options{KeepComments: cfg.KeepComments},
	})

	if err := pl.Run(ctx, paths); err != nil {
		return nil, err
	}
	return store, nil
}

// commandContext returns the command's context with the default logger
// attached, creating a background context when Cobra has none.
func commandContext(cmd *cobra.Command) context.Context {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return logging.WithLogger(ctx, logging.Default())
}

// stylesFor builds output styles honoring the persistent --color flag.
func stylesFor(cmd *cobra.Command) *pretty.Styles {
	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}
	return pretty.NewStyles(pretty.IsColorEnabled(colorMode, cmd.OutOrStdout()))
}
