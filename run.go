package argparse

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// RunOptions specifies the streams used by [ParseAndReport].
type RunOptions struct {
	// Stdout receives the help text when it was explicitly requested. Stderr receives the error
	// line and the help text for every other failure. If either is nil, [os.Stdout] or [os.Stderr]
	// is used respectively.
	Stdout, Stderr io.Writer
}

// ParseAndReport parses args like [Parser.Parse]. On failure it writes the help text, preceded by
// the reason unless help was requested, and returns the error. It never terminates the process;
// deciding the exit status is left to the caller:
//
//	res, err := argparse.ParseAndReport(p, os.Args, nil)
//	if err != nil {
//	    os.Exit(1)
//	}
//
// The options parameter may be nil, in which case default values are used.
func ParseAndReport(p *Parser, args []string, options *RunOptions) (*ParsedResult, error) {
	if p == nil {
		return nil, errors.New("failed to parse: parser is nil")
	}
	options = checkAndSetRunOptions(options)

	res, err := p.Parse(args)
	if err == nil {
		return res, nil
	}
	if CodeOf(err) == ErrShowHelp {
		fmt.Fprintln(options.Stdout, p.render(terminalWidth(options.Stdout, p.width)))
		return nil, err
	}
	red := color.New(color.FgRed, color.Bold)
	_, _ = red.Fprint(options.Stderr, "error:")
	fmt.Fprintf(options.Stderr, " %v\n\n", err)
	fmt.Fprintln(options.Stderr, p.render(terminalWidth(options.Stderr, p.width)))
	return nil, err
}

func checkAndSetRunOptions(opt *RunOptions) *RunOptions {
	if opt == nil {
		opt = &RunOptions{}
	}
	if opt.Stdout == nil {
		opt.Stdout = os.Stdout
	}
	if opt.Stderr == nil {
		opt.Stderr = os.Stderr
	}
	return opt
}

// terminalWidth returns the column count of w if it is a terminal narrower than fallback, and
// fallback otherwise.
func terminalWidth(w io.Writer, fallback int) int {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return fallback
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width < minWidth || width > fallback {
		return fallback
	}
	return width
}
