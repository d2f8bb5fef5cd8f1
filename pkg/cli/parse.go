package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/mfridman/xflag"
)

// Parse parses args, typically os.Args[1:], into the command's flags and positional arguments.
// Once parsing is complete, the command is ready to be executed with the [Run] function.
//
// A help flag (-h, -help and their double-dash forms) anywhere before "--" makes Parse return
// [flag.ErrHelp] without parsing anything else.
func Parse(cmd *Command, args []string) error {
	if cmd == nil {
		return errors.New("failed to parse: command is nil")
	}
	if err := validateCommand(cmd); err != nil {
		return fmt.Errorf("failed to parse: %w", err)
	}
	cmd.state = &State{flags: cmd.Flags}

	// Everything after the first -- is positional.
	argsToParse, remainingArgs := args, []string(nil)
	for i, arg := range args {
		if arg == "--" {
			argsToParse, remainingArgs = args[:i], args[i+1:]
			break
		}
	}

	for _, arg := range argsToParse {
		if isHelpFlag(cmd.Flags, arg) {
			return flag.ErrHelp
		}
	}

	if err := xflag.ParseToEnd(cmd.Flags, expandBundled(cmd.Flags, argsToParse)); err != nil {
		return fmt.Errorf("command %q: %w", cmd.Name, err)
	}

	var finalArgs []string
	finalArgs = append(finalArgs, cmd.Flags.Args()...)
	finalArgs = append(finalArgs, remainingArgs...)
	cmd.state.Args = finalArgs
	return nil
}

func validateCommand(cmd *Command) error {
	if cmd.Name == "" {
		return errors.New("command has no name")
	}
	if strings.Contains(cmd.Name, " ") {
		return fmt.Errorf("command name %q contains spaces, must be a single word", cmd.Name)
	}
	if cmd.Flags == nil {
		cmd.Flags = flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
	}
	// Errors are returned to the caller, and usage is printed by ParseAndRun.
	cmd.Flags.SetOutput(io.Discard)

	for _, m := range cmd.FlagsMetadata {
		if cmd.Flags.Lookup(m.Name) == nil {
			return fmt.Errorf("command %q: internal error: flag %q in metadata not found in flag set", cmd.Name, "-"+m.Name)
		}
		if m.Short == "" {
			continue
		}
		if len(m.Short) != 1 {
			return fmt.Errorf("command %q: internal error: short flag %q must be a single character", cmd.Name, "-"+m.Short)
		}
		if cmd.Flags.Lookup(m.Short) == nil {
			return fmt.Errorf("command %q: internal error: short flag %q not found in flag set", cmd.Name, "-"+m.Short)
		}
	}
	return nil
}

func isHelpFlag(fset *flag.FlagSet, arg string) bool {
	switch arg {
	case "-h", "--h", "-help", "--help":
		// Commands may claim -h for themselves.
		return fset.Lookup(strings.TrimLeft(arg, "-")) == nil
	}
	return false
}

// expandBundled rewrites arguments like "-xp" into "-x", "-p" when every letter is a registered
// bool flag and the argument is not itself a registered flag name.
func expandBundled(fset *flag.FlagSet, args []string) []string {
	out := make([]string, 0, len(args))
	for _, arg := range args {
		letters, ok := bundledLetters(fset, arg)
		if !ok {
			out = append(out, arg)
			continue
		}
		for _, r := range letters {
			out = append(out, "-"+string(r))
		}
	}
	return out
}

func bundledLetters(fset *flag.FlagSet, arg string) (string, bool) {
	if len(arg) < 3 || arg[0] != '-' || arg[1] == '-' || strings.Contains(arg, "=") {
		return "", false
	}
	name := arg[1:]
	if fset.Lookup(name) != nil {
		return "", false
	}
	for _, r := range name {
		f := fset.Lookup(string(r))
		if f == nil || !isBoolFlag(f) {
			return "", false
		}
	}
	return name, true
}

func isBoolFlag(f *flag.Flag) bool {
	b, ok := f.Value.(interface{ IsBoolFlag() bool })
	return ok && b.IsBoolFlag()
}
