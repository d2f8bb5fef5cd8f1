package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
)

// ParseAndRun parses the command and runs it. A convenience function that combines [Parse] and
// [Run] into a single call. A help request prints the usage to stdout and returns
// [flag.ErrHelp].
func ParseAndRun(
	ctx context.Context,
	cmd *Command,
	args []string,
	options *RunOptions,
) error {
	if err := Parse(cmd, args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			options = checkAndSetRunOptions(options)
			fmt.Fprintln(options.Stdout, usage(cmd))
		}
		return err
	}
	return Run(ctx, cmd, options)
}

// RunOptions specifies options for running a command.
type RunOptions struct {
	// Stdin, Stdout, and Stderr are the standard input, output, and error streams for the command.
	// If any of these are nil, the command will use the default streams ([os.Stdin], [os.Stdout],
	// and [os.Stderr], respectively).
	Stdin          io.Reader
	Stdout, Stderr io.Writer
}

// Run executes a parsed command. It returns an error if the command has not been parsed or if the
// command has no execution function.
//
// The options parameter may be nil, in which case default values are used. See [RunOptions] for
// more details.
func Run(ctx context.Context, cmd *Command, options *RunOptions) error {
	if cmd == nil || cmd.state == nil {
		return errors.New("command has not been parsed")
	}
	options = checkAndSetRunOptions(options)
	updateState(cmd.state, options)

	if cmd.Exec == nil {
		return &NoExecError{Command: cmd}
	}
	if err := cmd.Exec(ctx, cmd.state); err != nil {
		if cliErr := (*Error)(nil); errors.As(err, &cliErr) && cliErr.code == ErrShowHelp {
			fmt.Fprintln(cmd.state.Stderr, usage(cmd))
		}
		return err
	}
	return nil
}

func usage(cmd *Command) string {
	if cmd.UsageFunc != nil {
		return cmd.UsageFunc(cmd)
	}
	return DefaultUsage(cmd)
}

func updateState(s *State, opt *RunOptions) {
	if s.Stdin == nil {
		s.Stdin = opt.Stdin
	}
	if s.Stdout == nil {
		s.Stdout = opt.Stdout
	}
	if s.Stderr == nil {
		s.Stderr = opt.Stderr
	}
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
