package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/yaecgen/ecgen"
	"github.com/yaecgen/ecgen/cmd/internal/cliutil"
)

const expandUsage = `ecgen expand - Expand one textual invocation

Usage:
  ecgen expand [options] INVOCATION

The invocation is a comma-separated list: the lowercase and uppercase type
names followed by alternating member names and quoted messages.

Options:
  -o, --output FILE  Write output to FILE instead of stdout
  -max-pairs N       Override the pair ceiling (default 4)
  -h, --help         Show help

Examples:
  ecgen expand 'hello, HELLO, HI, "HI"'
  ecgen expand -o codes.h 'net, NET, DOWN, "link down", RESET, "reset"'
`

func (c *cli) cmdExpand(args []string) int {
	fs := flag.NewFlagSet("expand", flag.ContinueOnError)
	fs.Usage = func() { fmt.Fprint(os.Stderr, expandUsage) }

	outputFile := fs.String("o", "", "output file")
	fs.StringVar(outputFile, "output", "", "output file")
	maxPairs := fs.Int("max-pairs", 0, "pair ceiling")
	help := fs.Bool("h", false, "show help")
	fs.BoolVar(help, "help", false, "show help")

	if err := fs.Parse(args); err != nil {
		return exitError
	}

	if *help || c.helpFlag {
		_, _ = fmt.Fprint(os.Stdout, expandUsage)
		return exitOK
	}

	if fs.NArg() == 0 {
		cliutil.PrintError("no invocation given")
		fmt.Fprint(os.Stderr, expandUsage)
		return exitError
	}
	source := strings.Join(fs.Args(), " ")

	opts := c.options()
	if *maxPairs != 0 {
		opts = append(opts, ecgen.WithMaxPairs(*maxPairs))
	}

	expansion, err := ecgen.ExpandSource([]byte(source), opts...)
	if err != nil {
		reportFailure(err)
		return exitError
	}

	out, done, err := cliutil.GetOutput(*outputFile)
	if err != nil {
		cliutil.PrintError("cannot open output: %v", err)
		return exitError
	}
	defer done()

	_, _ = fmt.Fprint(out, expansion.Render())
	return exitOK
}

// reportFailure prints every diagnostic of a generation failure, or the
// plain error when it is not a generation failure.
func reportFailure(err error) {
	var genErr *ecgen.GenerationError
	if errors.As(err, &genErr) {
		for _, d := range genErr.Diagnostics {
			fmt.Fprintln(os.Stderr, d)
		}
		return
	}
	cliutil.PrintError("%v", err)
}
