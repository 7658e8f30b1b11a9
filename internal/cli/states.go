package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gomdhilite/internal/logging"
	"github.com/yaklabco/gomdhilite/internal/render"
	"github.com/yaklabco/gomdhilite/pkg/highlight"
)

type statesFlags struct {
	theme  string
	format string
}

const formatJSON = "json"

// stateInfo represents a state and its effective style in JSON output.
type stateInfo struct {
	Name       string  `json:"name"`
	Foreground string  `json:"foreground,omitempty"`
	Background string  `json:"background,omitempty"`
	Bold       bool    `json:"bold,omitempty"`
	Italic     bool    `json:"italic,omitempty"`
	Underline  bool    `json:"underline,omitempty"`
	Strike     bool    `json:"strike,omitempty"`
	Monospace  bool    `json:"monospace,omitempty"`
	Scale      float64 `json:"scale,omitempty"`
}

func newStatesCommand() *cobra.Command {
	flags := &statesFlags{}

	cmd := &cobra.Command{
		Use:   "states",
		Short: "List block states and style tags with their effective styles",
		Long: `List every block state and style tag the classifier can emit, with
the style each one resolves to after theme overrides. Tag names are the
keys a theme file uses.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runStates(cmd, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.theme, "theme", "t", "",
		"path to a YAML theme file (overrides discovery)")
	cmd.Flags().StringVar(&flags.format, "format", "text",
		"output format: text, json")

	return cmd
}

func runStates(cmd *cobra.Command, flags *statesFlags) error {
	styles, themePath, err := resolveTheme(flags.theme)
	if err != nil {
		return err
	}

	reg := highlight.NewStyleRegistry(highlight.DefaultStyles())
	if styles != nil {
		if err := reg.ReplaceAll(styles); err != nil {
			return fmt.Errorf("%w: %s", ErrTheme, err)
		}
		logging.FromContext(cmd.Context()).Debug("theme applied",
			logging.FieldTheme, themePath)
	}

	// Handle JSON output format.
	if flags.format == formatJSON {
		return outputStatesJSON(cmd.OutOrStdout(), reg)
	}
	if flags.format != "text" {
		return fmt.Errorf("%w: unknown format %q", ErrUsage, flags.format)
	}

	noColor, err := cmd.Flags().GetBool("no-color")
	if err != nil {
		noColor = false
	}
	renderer := render.New(reg, render.Options{
		Color: render.IsColorEnabled(colorMode(noColor), cmd.OutOrStdout()),
	})

	logger := logging.NewInteractive()
	for _, tag := range highlight.States() {
		logger.Info(renderer.Sample(tag), styleFields(reg.Style(tag))...)
	}

	return nil
}

// styleFields flattens the non-zero attributes of s into log key-values.
func styleFields(s highlight.Style) []any {
	fields := make([]any, 0, 8)
	if s.Foreground != "" {
		fields = append(fields, "foreground", s.Foreground)
	}
	if s.Background != "" {
		fields = append(fields, "background", s.Background)
	}
	if s.Bold {
		fields = append(fields, "bold", true)
	}
	if s.Italic {
		fields = append(fields, "italic", true)
	}
	if s.Underline {
		fields = append(fields, "underline", true)
	}
	if s.Strike {
		fields = append(fields, "strike", true)
	}
	if s.Monospace {
		fields = append(fields, "monospace", true)
	}
	if s.Scale > 0 {
		fields = append(fields, "scale", s.Scale)
	}
	return fields
}

// outputStatesJSON outputs states as a JSON array in declaration order.
func outputStatesJSON(w io.Writer, reg *highlight.StyleRegistry) error {
	infos := make([]stateInfo, 0, len(highlight.States()))
	for _, tag := range highlight.States() {
		s := reg.Style(tag)
		infos = append(infos, stateInfo{
			Name:       tag.String(),
			Foreground: s.Foreground,
			Background: s.Background,
			Bold:       s.Bold,
			Italic:     s.Italic,
			Underline:  s.Underline,
			Strike:     s.Strike,
			Monospace:  s.Monospace,
			Scale:      s.Scale,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(infos); err != nil {
		return fmt.Errorf("encoding states: %w", err)
	}
	return nil
}
