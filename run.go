package clargs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// minDescriptionWidth is the narrowest description column used when fitting help to a terminal.
const minDescriptionWidth = 20

// RunOptions specifies options for running a command.
type RunOptions struct {
	// Stdin, Stdout, and Stderr are the standard input, output, and error streams for the command.
	// If any of these are nil, the command will use the default streams ([os.Stdin], [os.Stdout],
	// and [os.Stderr], respectively).
	Stdin          io.Reader
	Stdout, Stderr io.Writer
}

// ParseAndRun parses args with p and calls exec with the remaining non-key arguments. It is a
// convenience for programs with a single level of arguments; for subcommands register a
// [SubcommandHandler] and call [Parser.Parse] directly.
//
// If a handler or exec returns an error matching [ErrShowHelp], the help text of p is written to
// Stdout and the error is returned, so callers can exit without reporting it. When Stdout is a
// terminal the help text is fitted to its width.
//
// The options parameter may be nil, in which case default values are used. See [RunOptions] for
// more details.
func ParseAndRun(
	ctx context.Context,
	p *Parser,
	args []string,
	exec func(ctx context.Context, s *State) error,
	options *RunOptions,
) error {
	if p == nil {
		return errors.New("failed to run: parser is nil")
	}
	if exec == nil {
		return errors.New("failed to run: exec function is nil")
	}
	options = checkAndSetRunOptions(options)

	leftovers, err := p.Parse(args)
	if err == nil {
		err = exec(ctx, &State{
			Args:   leftovers,
			Stdin:  options.Stdin,
			Stdout: options.Stdout,
			Stderr: options.Stderr,
		})
	}
	if errors.Is(err, ErrShowHelp) {
		fmt.Fprintln(options.Stdout, p.help(descriptionWidth(options.Stdout)))
	}
	return err
}

// descriptionWidth returns the description column width that fits the terminal behind w, or
// [DefaultDescriptionWidth] if w is not a terminal.
func descriptionWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return DefaultDescriptionWidth
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return DefaultDescriptionWidth
	}
	return max(width-DefaultKeysWidth-columnGap, minDescriptionWidth)
}

func checkAndSetRunOptions(opt *RunOptions) *RunOptions {
	if opt == nil {
		opt = &RunOptions{}
	}
	if opt.Stdin == nil {
		opt.Stdin = os.Stdin
	}
	if opt.Stdout == nil {
		opt.Stdout = os.Stdout
	}
	if opt.Stderr == nil {
		opt.Stderr = os.Stderr
	}
	return opt
}
