package cmd

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/iw2rmb/lineed/editor"
)

type options struct {
	text            string
	lineNumbers     bool
	separator       string
	debugPath       string
	noColor         bool
	systemClipboard bool
}

var opts options

// rootCmd launches the interactive editor.
var rootCmd = &cobra.Command{
	Use:   "lineed",
	Short: "A line-oriented terminal text editor",
	Long: `lineed edits a block of text line by line in the terminal.
Arrows move the caret, PgUp/PgDn jump to the document edges, the mouse
selects, Ctrl+C/Ctrl+X/Ctrl+V copy, cut and paste. Ctrl+Q quits.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd.OutOrStdout(), opts)
	},
}

func init() {
	f := rootCmd.Flags()
	f.StringVar(&opts.text, "text", "", "initial text (\\n separates lines)")
	f.BoolVar(&opts.lineNumbers, "line-numbers", true, "show line numbers")
	f.StringVar(&opts.separator, "separator", "lf", "line separator used when printing the result: lf or crlf")
	f.StringVar(&opts.debugPath, "debug", "", "write debug log to this file")
	f.BoolVar(&opts.noColor, "no-color", false, "render without colors")
	f.BoolVar(&opts.systemClipboard, "system-clipboard", true, "use the host clipboard instead of an in-process one")
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func separatorFor(name string) (string, error) {
	switch strings.ToLower(name) {
	case "", "lf":
		return "\n", nil
	case "crlf":
		return "\r\n", nil
	default:
		return "", fmt.Errorf("unknown separator %q (want lf or crlf)", name)
	}
}

func editorConfig(o options, logger *log.Logger) (editor.Config, error) {
	sep, err := separatorFor(o.separator)
	if err != nil {
		return editor.Config{}, err
	}
	cfg := editor.Config{
		Text:          o.text,
		LineSeparator: sep,
		ShowLineNums:  o.lineNumbers,
		Style:         editor.DefaultStyle(),
		Logger:        logger,
	}
	if o.noColor {
		cfg.Style = editor.MonochromeStyle()
	}
	if o.systemClipboard {
		cfg.Clipboard = editor.SystemClipboard{}
	}
	return cfg, nil
}

func run(out io.Writer, o options) error {
	logger := log.New(io.Discard, "", 0)
	if o.debugPath != "" {
		f, err := tea.LogToFile(o.debugPath, "lineed")
		if err != nil {
			return fmt.Errorf("open debug log: %w", err)
		}
		defer f.Close()
		logger = log.Default()
	}
	if o.noColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	cfg, err := editorConfig(o, logger)
	if err != nil {
		return err
	}

	p := tea.NewProgram(newModel(cfg), tea.WithAltScreen(), tea.WithMouseCellMotion())
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("run editor: %w", err)
	}

	if m, ok := final.(model); ok {
		logger.Printf("lineed: exit at version %d", m.editor.State().Version())
		_, err = fmt.Fprintln(out, m.editor.State().Text())
	}
	return err
}
