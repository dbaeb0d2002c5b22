package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/yaecgen/ecgen"
	"github.com/yaecgen/ecgen/cmd/internal/cliutil"
)

const checkUsage = `ecgen check - Validate a manifest without writing output

Usage:
  ecgen check [options] MANIFEST...

Options:
  -max-pairs N  Override the pair ceiling
  -h, --help    Show help

Examples:
  ecgen check codes.yaml
  ecgen check a.yaml b.yaml
`

func (c *cli) cmdCheck(args []string) int {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	fs.Usage = func() { fmt.Fprint(os.Stderr, checkUsage) }

	maxPairs := fs.Int("max-pairs", 0, "pair ceiling")
	help := fs.Bool("h", false, "show help")
	fs.BoolVar(help, "help", false, "show help")

	if err := fs.Parse(args); err != nil {
		return exitError
	}

	if *help || c.helpFlag {
		_, _ = fmt.Fprint(os.Stdout, checkUsage)
		return exitOK
	}

	if fs.NArg() == 0 {
		cliutil.PrintError("no manifests specified")
		fmt.Fprint(os.Stderr, checkUsage)
		return exitError
	}

	opts := c.options()
	if *maxPairs != 0 {
		opts = append(opts, ecgen.WithMaxPairs(*maxPairs))
	}

	status := exitOK
	for _, path := range fs.Args() {
		unit, err := ecgen.Generate(ecgen.File(path), opts...)
		if err != nil {
			reportFailure(err)
			status = exitError
			continue
		}
		for _, d := range unit.Diagnostics {
			fmt.Fprintln(os.Stderr, d)
		}
		fmt.Printf("%s: %d enums ok\n", path, len(unit.Expansions))
	}
	return status
}
