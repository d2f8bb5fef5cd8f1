// Command numf converts numbers between hexadecimal, binary, octal, decimal, base32, base64 and
// raw bytes.
//
//	$ numf -xp 1337
//	0x539
//	$ echo 0b100100101010 | numf -d
//	2346
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/mfridman/numf/pkg/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := cli.ParseAndRun(ctx, newRootCommand(), os.Args[1:], nil)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
