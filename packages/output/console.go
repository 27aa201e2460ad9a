package output

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// ConsoleFormatter prints check results to a terminal.
type ConsoleFormatter struct {
	writer  io.Writer
	verbose bool
	noColor bool
}

type ConsoleOption func(*ConsoleFormatter)

func NewConsoleFormatter(opts ...ConsoleOption) *ConsoleFormatter {
	f := &ConsoleFormatter{
		writer: os.Stdout,
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.noColor {
		color.NoColor = true
	}
	return f
}

func WithWriter(w io.Writer) ConsoleOption {
	return func(f *ConsoleFormatter) {
		f.writer = w
	}
}

func WithVerbose(v bool) ConsoleOption {
	return func(f *ConsoleFormatter) {
		f.verbose = v
	}
}

func WithNoColor(nc bool) ConsoleOption {
	return func(f *ConsoleFormatter) {
		f.noColor = nc
	}
}

// FormatPass reports one confirmed rule. Passing rules are only shown
// in verbose mode.
func (f *ConsoleFormatter) FormatPass(rule string) {
	if !f.verbose {
		return
	}
	green := color.New(color.FgGreen).SprintFunc()
	fmt.Fprintf(f.writer, "  %s %s\n", green("✓"), rule)
}

// FormatFail reports one failed rule with its diagnostic.
func (f *ConsoleFormatter) FormatFail(rule string, err error) {
	red := color.New(color.FgRed).SprintFunc()
	fmt.Fprintf(f.writer, "  %s %s\n", red("✗"), rule)
	fmt.Fprintf(f.writer, "    %s\n", red(err.Error()))
}

// FormatError reports a problem outside any single rule.
func (f *ConsoleFormatter) FormatError(err error) {
	red := color.New(color.FgRed).SprintFunc()
	fmt.Fprintf(f.writer, "%s %v\n", red("Error:"), err)
}

// FormatSummary prints the closing pass/fail counts.
func (f *ConsoleFormatter) FormatSummary(passed, failed int) {
	bold := color.New(color.Bold).SprintFunc()
	green := color.New(color.FgGreen).SprintFunc()
	red := color.New(color.FgRed).SprintFunc()

	fmt.Fprintf(f.writer, "\n%s ", bold("Checks:"))
	if failed > 0 {
		fmt.Fprintf(f.writer, "%s, ", red(fmt.Sprintf("%d failed", failed)))
	}
	fmt.Fprintf(f.writer, "%s, %d total\n", green(fmt.Sprintf("%d passed", passed)), passed+failed)
}
