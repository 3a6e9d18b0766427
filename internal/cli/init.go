package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/yaklabco/csift/internal/logging"
	"github.com/yaklabco/csift/pkg/config"
)

// configFilePermissions is the file mode for configuration files (world-readable).
const configFilePermissions = 0644

// initFlags holds the flags for the init command.
type initFlags struct {
	force  bool
	output string
}

func newInitCommand() *cobra.Command {
	flags := &initFlags{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new csift configuration file",
		Long: `Create a new .csift.yaml configuration file in the current directory
with the built-in defaults. The file can be customized to change the
worker count, comment capture, and logging.

Examples:
  csift init                      Create .csift.yaml
  csift init --output custom.yaml Write to a custom file path`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runInit(flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "Overwrite existing configuration file")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "Output file path (default: .csift.yaml)")

	return cmd
}

func runInit(flags *initFlags) error {
	logger := logging.Default()

	outputPath := flags.output
	if outputPath == "" {
		outputPath = ".csift.yaml"
	}

	absPath, err := filepath.Abs(outputPath)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	if _, err := os.Stat(absPath); err == nil {
		if !flags.force {
			return fmt.Errorf("file %q already exists; use --force to overwrite", outputPath)
		}
	}

	data, err := config.Default().ToYAML()
	if err != nil {
		return fmt.Errorf("render config: %w", err)
	}

	if err := os.WriteFile(absPath, data, configFilePermissions); err != nil {
		return fmt.Errorf("write config %s: %w", outputPath, err)
	}

	logger.Info("wrote configuration", logging.FieldConfig, outputPath)
	return nil
}
