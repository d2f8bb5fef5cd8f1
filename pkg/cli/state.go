package cli

import (
	"flag"
	"fmt"
	"io"
)

// State is what a command sees when it runs: the arguments left after flag parsing, its I/O
// streams, and its parsed flags. Use [GetFlag] to retrieve flag values by name.
type State struct {
	// Args contains the remaining arguments after flag parsing.
	Args []string

	// Standard I/O streams.
	Stdin          io.Reader
	Stdout, Stderr io.Writer

	flags *flag.FlagSet
}

// GetFlag retrieves a flag value by name, with type inference. Example usage:
//
//	verbose := GetFlag[bool](state, "verbose")
//	from := GetFlag[string](state, "from")
//
// It panics if the flag is not registered or was registered with a different type; both are
// programming errors in the command definition.
func GetFlag[T any](s *State, name string) T {
	if s == nil || s.flags == nil {
		panic(fmt.Sprintf("internal error: flag %q requested before parsing", "-"+name))
	}
	f := s.flags.Lookup(name)
	if f == nil {
		panic(fmt.Sprintf("internal error: flag %q not found in %q flag set", "-"+name, s.flags.Name()))
	}
	getter, ok := f.Value.(flag.Getter)
	if !ok {
		panic(fmt.Sprintf("internal error: flag %q does not implement flag.Getter", "-"+name))
	}
	value := getter.Get()
	v, ok := value.(T)
	if !ok {
		panic(fmt.Sprintf("internal error: type mismatch for flag %q: registered %T, requested %T", "-"+name, value, *new(T)))
	}
	return v
}
