package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/yaklabco/gomdhilite/internal/logging"
	"github.com/yaklabco/gomdhilite/internal/render"
	"github.com/yaklabco/gomdhilite/internal/watch"
	"github.com/yaklabco/gomdhilite/pkg/highlight"
	"github.com/yaklabco/gomdhilite/pkg/theme"
)

type renderFlags struct {
	theme          string
	watch          bool
	width          int
	fullBlockQuote bool
}

func newRenderCommand() *cobra.Command {
	flags := &renderFlags{}

	cmd := &cobra.Command{
		Use:   "render FILE",
		Short: "Classify and print a Markdown file with ANSI styling",
		Long:  renderLongDescription,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.ExactArgs(1)(cmd, args); err != nil {
				return fmt.Errorf("%w: %s", ErrUsage, err)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, args[0], flags)
		},
	}

	cmd.Flags().StringVarP(&flags.theme, "theme", "t", "",
		"path to a YAML theme file (overrides discovery)")
	cmd.Flags().BoolVarP(&flags.watch, "watch", "w", false,
		"keep running and re-render when the file changes")
	cmd.Flags().IntVar(&flags.width, "width", 0,
		"clip lines to a display width (0 = no clipping)")
	cmd.Flags().BoolVar(&flags.fullBlockQuote, "full-block-quote", false,
		"style whole block-quote lines, not just the > markers")

	return cmd
}

const renderLongDescription = `Classify a Markdown file line by line and print it with ANSI styling.

Headings, lists, block quotes, tables, links, emphasis, frontmatter and
fenced code are recognized; cpp and js fences additionally get lexical
token styling. Styles come from the built-in defaults, overridden by a
discovered or explicitly named YAML theme.

Examples:
  gomdhilite render README.md            # render once
  gomdhilite render --theme dark.yaml x.md
  gomdhilite render --watch TODO.md      # re-render on save
  gomdhilite render --width 80 notes.md  # clip long lines`

func runRender(cmd *cobra.Command, path string, flags *renderFlags) error {
	logger := logging.FromContext(cmd.Context())

	doc, err := readDocument(path)
	if err != nil {
		return err
	}

	opts := highlight.DefaultOptions()
	opts.FullyHighlightedBlockQuote = flags.fullBlockQuote

	h := highlight.New(doc, opts)
	h.OnPaint(doc.RecordSpans)

	styles, themePath, err := resolveTheme(flags.theme)
	if err != nil {
		return err
	}
	if styles != nil {
		if err := h.SetStyles(styles); err != nil {
			return fmt.Errorf("%w: %s", ErrTheme, err)
		}
		logger.Debug("theme applied", logging.FieldTheme, themePath)
	}

	// Full pass, then settle cross-line effects before the first draw.
	h.HighlightAll()
	for h.Flush() {
	}

	noColor, err := cmd.Flags().GetBool("no-color")
	if err != nil {
		noColor = false
	}
	colorEnabled := render.IsColorEnabled(colorMode(noColor), cmd.OutOrStdout())
	logger.Debug("renderer configured",
		logging.FieldColor, colorEnabled,
		logging.FieldWidth, flags.width,
	)

	renderer := render.New(h.Styles(), render.Options{
		Color: colorEnabled,
		Width: flags.width,
	})

	fmt.Fprint(cmd.OutOrStdout(), renderer.Document(doc))

	if !flags.watch {
		return nil
	}

	session := &watchSession{
		path:        path,
		doc:         doc,
		h:           h,
		renderer:    renderer,
		clearScreen: colorEnabled,
		logger:      logger,
	}
	return session.run(cmd)
}

// readDocument loads path into a line buffer.
func readDocument(path string) (*highlight.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrIO, err)
	}
	return highlight.NewDocument(string(data)), nil
}

// resolveTheme discovers and loads the effective theme. A nil mapping
// means no theme applies and the defaults stay.
func resolveTheme(explicit string) (map[highlight.State]highlight.Style, string, error) {
	workDir, err := os.Getwd()
	if err != nil {
		return nil, "", fmt.Errorf("get working directory: %w", err)
	}

	path, err := theme.Discover(workDir, explicit)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %s", ErrTheme, err)
	}
	if path == "" {
		return nil, "", nil
	}

	th, err := theme.Load(path)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %s", ErrTheme, err)
	}
	return th.Styles(), path, nil
}

// watchSession holds the live state of a render --watch run.
type watchSession struct {
	path        string
	doc         *highlight.Document
	h           *highlight.Highlighter
	renderer    *render.Renderer
	clearScreen bool
	logger      *log.Logger

	// Non-positive values select watch.DefaultDebounce and
	// highlight.DefaultFlushInterval.
	debounce      time.Duration
	flushInterval time.Duration
}

// run re-reads the file on change, re-classifies only the changed lines
// and redraws after a flush tick that completed a pass. The line buffer
// has no lock of its own, so updates, classification and drawing all
// stay on this goroutine; the scheduler is ticked here rather than run
// on one of its own.
func (s *watchSession) run(cmd *cobra.Command) error {
	cfg := watch.DefaultConfig(s.path)
	if s.debounce > 0 {
		cfg.Debounce = s.debounce
	}
	watcher, err := watch.New(cfg)
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer func() { _ = watcher.Stop() }()

	changes, err := watcher.Start()
	if err != nil {
		return fmt.Errorf("start watcher: %w", err)
	}

	scheduler := highlight.NewScheduler(s.h, s.flushInterval, nil)
	ticker := time.NewTicker(scheduler.Interval())
	defer ticker.Stop()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	s.logger.Info("watching for changes", logging.FieldPath, s.path)

	out := cmd.OutOrStdout()
	for {
		select {
		case <-ctx.Done():
			return nil

		case <-changes:
			data, err := os.ReadFile(s.path)
			if err != nil {
				s.logger.Error("re-read failed", logging.FieldError, err)
				continue
			}
			changed := s.doc.Update(highlight.SplitLines(string(data)))
			for _, i := range changed {
				s.h.Classify(i)
			}
			s.logger.Debug("file changed", logging.FieldLines, len(changed))

		case <-ticker.C:
			if !scheduler.Tick() {
				continue
			}
			if s.clearScreen {
				fmt.Fprint(out, "\x1b[2J\x1b[H")
			}
			fmt.Fprint(out, s.renderer.Document(s.doc))
		}
	}
}
