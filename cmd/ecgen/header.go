package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/yaecgen/ecgen"
	"github.com/yaecgen/ecgen/cmd/internal/cliutil"
)

const headerUsage = `ecgen header - Emit the reusable C macro family

Emits a self-contained header implementing the generator as C preprocessor
macros, for projects that want the expansion to happen in their own build.

Usage:
  ecgen header [options]

Options:
  -n N               Pair ceiling of the dispatch table (default 4)
  -name NAME         Macro namespace (default ECGEN)
  -member-prefix P   Prefix spliced into member and declaration names
  -o, --output FILE  Write output to FILE instead of stdout
  -h, --help         Show help

Examples:
  ecgen header -n 4 -name YA_ECGEN -member-prefix YA_ -o ya_ecgen.h
`

func (c *cli) cmdHeader(args []string) int {
	fs := flag.NewFlagSet("header", flag.ContinueOnError)
	fs.Usage = func() { fmt.Fprint(os.Stderr, headerUsage) }

	pairs := fs.Int("n", 0, "pair ceiling")
	name := fs.String("name", "", "macro namespace")
	memberPrefix := fs.String("member-prefix", "", "member prefix")
	outputFile := fs.String("o", "", "output file")
	fs.StringVar(outputFile, "output", "", "output file")
	help := fs.Bool("h", false, "show help")
	fs.BoolVar(help, "help", false, "show help")

	if err := fs.Parse(args); err != nil {
		return exitError
	}

	if *help || c.helpFlag {
		_, _ = fmt.Fprint(os.Stdout, headerUsage)
		return exitOK
	}

	header, err := ecgen.MacroHeader(ecgen.HeaderConfig{
		Name:         *name,
		MemberPrefix: *memberPrefix,
		MaxPairs:     *pairs,
	})
	if err != nil {
		cliutil.PrintError("%v", err)
		return exitError
	}

	out, done, err := cliutil.GetOutput(*outputFile)
	if err != nil {
		cliutil.PrintError("cannot open output: %v", err)
		return exitError
	}
	defer done()

	_, _ = fmt.Fprint(out, header)
	return exitOK
}
