// Package display provides unified output formatting for the skel CLI.
// Every helper routes through a single writer so tests can substitute a
// buffer for the terminal.
package display

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"golang.org/x/term"
)

// narrowWidth is the threshold below which labeled lines wrap onto two rows
const narrowWidth = 80

// wordDelay paces the animated message sequences
const wordDelay = 70 * time.Millisecond

// Display handles all CLI output with visual hierarchy
type Display struct {
	theme         *Theme
	out           io.Writer
	termWidth     int
	skipAnimation bool
}

// Options configure a Display
type Options struct {
	Out           io.Writer // defaults to os.Stdout
	NoColor       bool
	Fancy         bool
	SkipAnimation bool
}

// New creates a Display instance
func New(opts Options) *Display {
	d := &Display{
		out:           opts.Out,
		termWidth:     getTerminalWidth(),
		skipAnimation: opts.SkipAnimation,
	}
	if d.out == nil {
		d.out = os.Stdout
	}
	switch {
	case opts.NoColor:
		d.theme = NoColorTheme()
	case opts.Fancy:
		d.theme = FancyTheme()
	default:
		d.theme = DefaultTheme()
	}
	return d
}

// getTerminalWidth returns the terminal width, defaulting to 80
func getTerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width < 40 {
		return 80
	}
	if width > 120 {
		return 120 // Cap at 120 for readability
	}
	return width
}

// Banner prints a boxed label, used at start and on abort
func (d *Display) Banner(label string) {
	width := len(label) + 4
	fmt.Fprintln(d.out, d.theme.Border(BoxTopLeft+strings.Repeat(BoxHorizontal, width)+BoxTopRight))
	fmt.Fprintln(d.out, d.theme.Border(BoxVertical)+"  "+d.theme.Label(label)+"  "+d.theme.Border(BoxVertical))
	fmt.Fprintln(d.out, d.theme.Border(BoxBottomLeft+strings.Repeat(BoxHorizontal, width)+BoxBottomRight))
}

// Info prints a labeled informational line. Narrow terminals get the label
// and message on separate rows so neither is truncated.
func (d *Display) Info(label, message string) {
	d.labeled(d.theme.Info(SymbolInfo), label, message)
}

// Success prints a success line with a green checkmark
func (d *Display) Success(message string) {
	fmt.Fprintf(d.out, " %s %s\n", d.theme.Success(SymbolSuccess), d.theme.Text(message))
}

// Error prints a labeled error line
func (d *Display) Error(label, message string) {
	d.labeled(d.theme.Error(SymbolError), label, message)
}

func (d *Display) labeled(symbol, label, message string) {
	if len(label)+len(message)+4 > d.termWidth || d.termWidth < narrowWidth {
		fmt.Fprintf(d.out, " %s %s\n", symbol, d.theme.Bold(label))
		fmt.Fprintf(d.out, "   %s\n", d.theme.Text(message))
		return
	}
	fmt.Fprintf(d.out, " %s %s %s\n", symbol, d.theme.Bold(label), d.theme.Text(message))
}

// Say prints an animated message sequence, one line at a time with the
// words paced out. Skipped (printed instantly) when animations are off.
func (d *Display) Say(lines ...string) {
	for _, line := range lines {
		if d.skipAnimation {
			fmt.Fprintf(d.out, " %s %s\n", d.theme.Label(SymbolArrow), d.theme.Text(line))
			continue
		}
		fmt.Fprintf(d.out, " %s ", d.theme.Label(SymbolArrow))
		for i, word := range strings.Fields(line) {
			if i > 0 {
				fmt.Fprint(d.out, " ")
			}
			fmt.Fprint(d.out, d.theme.Text(word))
			time.Sleep(wordDelay)
		}
		fmt.Fprintln(d.out)
	}
}

// Spinner runs fn behind a labeled spinner. When fn fails the error is
// first offered to onErr; whatever onErr returns (or the original error if
// onErr is nil) is the result.
func (d *Display) Spinner(label string, fn func() error, onErr func(error) error) error {
	s := spinner.New(spinner.CharSets[14], 80*time.Millisecond, spinner.WithWriter(d.out))
	s.Suffix = " " + label
	s.Start()

	err := fn()
	s.Stop()

	if err != nil {
		fmt.Fprintf(d.out, " %s %s\n", d.theme.Error(SymbolError), d.theme.Text(label))
		if onErr != nil {
			return onErr(err)
		}
		return err
	}
	fmt.Fprintf(d.out, " %s %s\n", d.theme.Success(SymbolSuccess), d.theme.Text(label))
	return nil
}

// NextSteps prints the closing summary: where the project landed and how
// to start it. dir is empty when scaffolding happened in place.
func (d *Display) NextSteps(dir, devCommand string) {
	fmt.Fprintln(d.out)
	fmt.Fprintf(d.out, " %s\n", d.theme.Bold("Next steps"))
	step := 1
	if dir != "" {
		fmt.Fprintf(d.out, "  %d: %s\n", step, d.theme.Info("cd "+dir))
		step++
	}
	fmt.Fprintf(d.out, "  %d: %s\n", step, d.theme.Info(devCommand))
	fmt.Fprintln(d.out)
	fmt.Fprintf(d.out, " %s\n", d.theme.Dim("Stuck? Re-run with --help to see every option."))
}
