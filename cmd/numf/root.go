package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/mattn/go-isatty"

	"github.com/mfridman/numf"
	"github.com/mfridman/numf/pkg/cli"
)

// maxTokenSize bounds a single whitespace separated token read from stdin.
const maxTokenSize = 1 << 20

var errNoInput = errors.New("no numbers provided")

func newRootCommand() *cli.Command {
	// Flag values are read back with cli.GetFlag, so the variables are anonymous.
	var meta []cli.FlagMetadata
	fset := flag.NewFlagSet("numf", flag.ContinueOnError)
	cli.BoolVarP(fset, &meta, new(bool), "hex", "x", false, "format to hexadecimal, the default")
	cli.BoolVarP(fset, &meta, new(bool), "bin", "b", false, "format to binary")
	cli.BoolVarP(fset, &meta, new(bool), "oct", "o", false, "format to octal")
	cli.BoolVarP(fset, &meta, new(bool), "dec", "d", false, "format to decimal")
	cli.BoolVarP(fset, &meta, new(bool), "base64", "s", false, "format to base64")
	cli.BoolVarP(fset, &meta, new(bool), "base32", "z", false, "format to base32")
	cli.BoolVarP(fset, &meta, new(bool), "raw", "a", false, "write the raw bytes of each number, without a newline")
	cli.BoolVarP(fset, &meta, new(bool), "prefix", "p", false, `add the format's prefix, like "0x" for hexadecimal`)
	cli.BoolVarP(fset, &meta, new(bool), "padding", "P", false, "pad hexadecimal and binary output to whole bytes")
	cli.BoolVarP(fset, &meta, new(bool), "uppercase", "u", false, "use upper-case hexadecimal digits")
	cli.BoolVarP(fset, &meta, new(bool), "verbose", "v", false, "log how each number was read to stderr")
	cli.StringVarP(fset, &meta, new(string), "from", "f", numf.Auto.String(),
		"read numbers as `format` (hex, bin, oct, dec, base64, base32, raw) instead of detecting "+
			`the prefix ("0x", "0b", "0o", "0d", "0s", "032s")`)

	return &cli.Command{
		Name:  "numf",
		Usage: "numf [flags] [numbers...]",
		ShortHelp: "numf converts numbers between bases. Numbers are taken from the arguments, or " +
			"from stdin when there are none. Without --from, a prefix selects the input base " +
			"and numbers without one are decimal. Underscores are ignored.",
		Flags:         fset,
		FlagsMetadata: meta,
		Exec:          run,
	}
}

type config struct {
	from    numf.Format
	to      numf.Format
	render  numf.Options
	verbose bool
}

func newConfig(s *cli.State) (*config, error) {
	from, err := numf.ParseFormat(cli.GetFlag[string](s, "from"))
	if err != nil {
		return nil, fmt.Errorf("invalid --from: %w", err)
	}
	return &config{
		from: from,
		to:   outputFormat(s),
		render: numf.Options{
			Prefix:    cli.GetFlag[bool](s, "prefix"),
			Padding:   cli.GetFlag[bool](s, "padding"),
			Uppercase: cli.GetFlag[bool](s, "uppercase"),
		},
		verbose: cli.GetFlag[bool](s, "verbose"),
	}, nil
}

// outputFormat picks one format when several flags are set. Hex wins only by default.
func outputFormat(s *cli.State) numf.Format {
	for _, f := range []numf.Format{numf.Raw, numf.Oct, numf.Bin, numf.Dec, numf.Base64, numf.Base32} {
		if cli.GetFlag[bool](s, f.String()) {
			return f
		}
	}
	return numf.Hex
}

func run(ctx context.Context, s *cli.State) error {
	cfg, err := newConfig(s)
	if err != nil {
		return err
	}
	level := hclog.Warn
	if cfg.verbose {
		level = hclog.Debug
	}
	logger := hclog.New(&hclog.LoggerOptions{
		Name:        "numf",
		Level:       level,
		Output:      s.Stderr,
		DisableTime: true,
	})

	var total, failed int
	convert := func(token string) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		total++
		v, detected, err := numf.ParseDetect(token, cfg.from)
		if err != nil {
			failed++
			fmt.Fprintf(s.Stderr, "numf: %v\n", err)
			return nil
		}
		logger.Debug("converted", "from", detected, "to", cfg.to, "value", v)

		out := numf.Render(v, cfg.to, cfg.render)
		if cfg.to == numf.Raw {
			_, err = io.WriteString(s.Stdout, out)
		} else {
			_, err = fmt.Fprintln(s.Stdout, out)
		}
		return err
	}

	if len(s.Args) > 0 {
		for _, arg := range s.Args {
			if err := convert(arg); err != nil {
				return err
			}
		}
	} else {
		if isTerminal(s.Stdin) {
			return cli.NewError(cli.ErrShowHelp, errNoInput)
		}
		logger.Debug("reading numbers from stdin", "raw", cfg.from == numf.Raw)
		if err := readTokens(s.Stdin, cfg.from == numf.Raw, convert); err != nil {
			return err
		}
	}

	if total == 0 {
		return cli.NewError(cli.ErrShowHelp, errNoInput)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d numbers could not be parsed", failed, total)
	}
	return nil
}

// readTokens calls fn for every whitespace separated token in r. In raw mode all of r is a single
// token.
func readTokens(r io.Reader, raw bool, fn func(string) error) error {
	if raw {
		b, err := io.ReadAll(r)
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
		return fn(string(b))
	}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maxTokenSize)
	scanner.Split(bufio.ScanWords)
	for scanner.Scan() {
		if err := fn(scanner.Text()); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read stdin: %w", err)
	}
	return nil
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
