package cli

import (
	"context"
	"flag"
	"fmt"
)

// NoExecError is returned when a command has no execution function.
type NoExecError struct {
	Command *Command
}

func (e *NoExecError) Error() string {
	return fmt.Sprintf("command %q has no execution function", e.Command.Name)
}

// Command is a program's single command.
type Command struct {
	// Name is a single word used in help text and error messages.
	Name string

	// Usage provides the command's full usage pattern.
	//
	// Example: "numf [flags] [numbers...]"
	Usage string

	// ShortHelp is a brief description of the command's purpose, shown at the top of the help
	// text.
	ShortHelp string

	// UsageFunc optionally replaces [DefaultUsage].
	UsageFunc func(*Command) string

	// Flags holds the command's flag definitions.
	Flags *flag.FlagSet
	// FlagsMetadata optionally extends Flags, e.g. to pair a long flag with its one-letter alias
	// for help output.
	FlagsMetadata []FlagMetadata

	// Exec runs the command. It receives the parsed [State] and returns an error if execution
	// fails.
	Exec func(ctx context.Context, s *State) error

	state *State
}

// FlagMetadata holds additional metadata for a flag.
type FlagMetadata struct {
	// Name is the flag's name. Must match a flag in the flag set.
	Name string

	// Short is an optional one-letter alias for Name. The alias must be registered in the flag set
	// as well, bound to the same variable. Help output shows both on one line.
	Short string
}

// FlagsFunc is a helper function that creates a new [flag.FlagSet] and applies the given function
// to it. Example usage:
//
//	cmd.Flags = cli.FlagsFunc(func(f *flag.FlagSet) {
//	    f.Bool("verbose", false, "enable verbose output")
//	    f.String("from", "auto", "input format")
//	})
func FlagsFunc(fn func(*flag.FlagSet)) *flag.FlagSet {
	fset := flag.NewFlagSet("", flag.ContinueOnError)
	fn(fset)
	return fset
}

// BoolVarP registers a bool flag under both name and short, bound to p, and records the pairing in
// metadata.
func BoolVarP(fset *flag.FlagSet, meta *[]FlagMetadata, p *bool, name, short string, value bool, usage string) {
	fset.BoolVar(p, name, value, usage)
	fset.BoolVar(p, short, value, usage)
	*meta = append(*meta, FlagMetadata{Name: name, Short: short})
}

// StringVarP is the string counterpart of [BoolVarP].
func StringVarP(fset *flag.FlagSet, meta *[]FlagMetadata, p *string, name, short string, value string, usage string) {
	fset.StringVar(p, name, value, usage)
	fset.StringVar(p, short, value, usage)
	*meta = append(*meta, FlagMetadata{Name: name, Short: short})
}
