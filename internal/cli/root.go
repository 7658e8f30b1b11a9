// Package cli provides the Cobra command structure for gomdhilite.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gomdhilite/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root gomdhilite command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var noColor bool

	rootCmd := &cobra.Command{
		Use:   "gomdhilite",
		Short: "An incremental Markdown highlighter for the terminal",
		Long: `gomdhilite classifies Markdown line by line, the way an editor
highlighter does: each line carries a block state between passes, so
multi-line constructs like fenced code, frontmatter and setext headings
resolve without reparsing the whole document.

It renders the classified lines with ANSI styling, re-renders on file
change, and styles fenced cpp/js code with a lexical sub-highlighter.
Styles are themeable through a YAML file.`,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
			cmd.SetContext(logging.WithLogger(cmd.Context(), logging.Default()))
		},
		// Unmatched args reach RunE instead of cobra's own unknown-command
		// error, so they map onto the usage exit code like every other
		// usage mistake.
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			return fmt.Errorf("%w: unknown command %q", ErrUsage, args[0])
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable ANSI styling in output")

	// Flag parse failures should exit with the usage code.
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %s", ErrUsage, err)
	})

	// Add subcommands.
	rootCmd.AddCommand(newRenderCommand())
	rootCmd.AddCommand(newStatesCommand())
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	// Apply styled help formatting.
	helpFormatter := NewHelpFormatter(colorMode(noColor), os.Stdout)
	helpFormatter.ApplyToCommand(rootCmd)

	return rootCmd
}

// colorMode translates the --no-color flag into the mode strings the
// render package understands.
func colorMode(noColor bool) string {
	if noColor {
		return "never"
	}
	return "auto"
}
