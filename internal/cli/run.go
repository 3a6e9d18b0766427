package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/yaklabco/csift/internal/logging"
	"github.com/yaklabco/csift/pkg/vm"
)

// ProgramExitError reports a nonzero status from the evaluated
// program. It is a signal for the process exit code, not a fault; the
// process exits with Code.
type ProgramExitError struct {
	Code int
}

func (e *ProgramExitError) Error() string {
	return fmt.Sprintf("program returned exit code %d", e.Code)
}

func newRunCommand() *cobra.Command {
	flags := &scanFlags{}

	cmd := &cobra.Command{
		Use:   "run [paths...]",
		Short: "Scan sources and evaluate their main function",
		Long: `Scan the given sources, then locate the single main function in the
corpus and evaluate it. Evaluation covers integer arithmetic in return
statements; the returned value becomes the exit status.

Examples:
  csift run main.cpp             # Evaluate one file
  csift run src/                 # Scan a tree, evaluate its main
  csift run - < main.cpp         # Read from standard input
  csift run @files.txt           # Read the input list from a file`,
		Args: requireArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRun(cmd, args, flags)
		},
	}

	addScanFlags(cmd, flags)

	return cmd
}

func runRun(cmd *cobra.Command, args []string, flags *scanFlags) error {
	logger := logging.Default()
	styles := stylesFor(cmd)

	cfg, err := loadConfig(cmd, flags)
	if err != nil {
		return err
	}

	ctx := commandContext(cmd)
	start := time.Now()

	store, err := buildCorpus(ctx, cfg, args)
	if err != nil {
		return err
	}

	if cfg.ShowTime {
		logger.Info("scan finished", logging.FieldElapsed, time.Since(start).Round(time.Millisecond))
	}

	code, err := vm.New(store).Run()
	if err != nil {
		return fmt.Errorf("evaluate main: %w", err)
	}

	fmt.Fprint(cmd.OutOrStdout(), styles.FormatExit(code))

	if code != 0 {
		logger.Debug("nonzero result", logging.FieldExitCode, code)
		return &ProgramExitError{Code: code}
	}
	return nil
}
