package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gomdhilite/internal/logging"
	"github.com/yaklabco/gomdhilite/pkg/theme"
)

// defaultThemeFile is where init writes the starter theme.
const defaultThemeFile = ".gomdhilite.yaml"

// initFlags holds the flags for the init command.
type initFlags struct {
	force  bool
	output string
}

func newInitCommand() *cobra.Command {
	flags := &initFlags{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a starter theme file",
		Long: `Create a .gomdhilite.yaml theme file in the current directory listing
every style tag with its built-in default, ready to edit. Rendering picks
the file up automatically from the working directory or any parent up to
the repository root.

Examples:
  gomdhilite init                     Create .gomdhilite.yaml
  gomdhilite init --output dark.yaml  Write to a custom path
  gomdhilite init --force             Overwrite an existing file`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runInit(flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "Overwrite an existing theme file")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "Output file path (default: "+defaultThemeFile+")")

	return cmd
}

func runInit(flags *initFlags) error {
	logger := logging.NewInteractive()

	outputPath := flags.output
	if outputPath == "" {
		outputPath = defaultThemeFile
	}

	absPath, err := filepath.Abs(outputPath)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	if _, err := os.Stat(absPath); err == nil {
		if !flags.force {
			return fmt.Errorf("%w: file %q already exists; use --force to overwrite", ErrUsage, outputPath)
		}
		logger.Warn("overwriting existing file", logging.FieldPath, outputPath)
	}

	content, err := theme.Template()
	if err != nil {
		return fmt.Errorf("generate theme template: %w", err)
	}

	if err := theme.WriteFile(absPath, content); err != nil {
		return fmt.Errorf("%w: %s", ErrIO, err)
	}

	logger.Info("created theme file", logging.FieldPath, outputPath)
	logger.Info("run 'gomdhilite states' to preview the effective styles")

	return nil
}
