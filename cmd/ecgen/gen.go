package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/yaecgen/ecgen"
	"github.com/yaecgen/ecgen/cmd/internal/cliutil"
)

const genUsage = `ecgen gen - Generate from a YAML manifest

Usage:
  ecgen gen [options] MANIFEST

Options:
  -o, --output FILE  Write output to FILE (overrides the manifest's output)
  -stdout            Write to stdout even if the manifest names a file
  -max-pairs N       Override the pair ceiling
  -h, --help         Show help

Examples:
  ecgen gen codes.yaml
  ecgen gen -o hello.h codes.yaml
  ecgen gen -stdout codes.yaml
`

func (c *cli) cmdGen(args []string) int {
	fs := flag.NewFlagSet("gen", flag.ContinueOnError)
	fs.Usage = func() { fmt.Fprint(os.Stderr, genUsage) }

	outputFile := fs.String("o", "", "output file")
	fs.StringVar(outputFile, "output", "", "output file")
	toStdout := fs.Bool("stdout", false, "write to stdout")
	maxPairs := fs.Int("max-pairs", 0, "pair ceiling")
	help := fs.Bool("h", false, "show help")
	fs.BoolVar(help, "help", false, "show help")

	if err := fs.Parse(args); err != nil {
		return exitError
	}

	if *help || c.helpFlag {
		_, _ = fmt.Fprint(os.Stdout, genUsage)
		return exitOK
	}

	if fs.NArg() != 1 {
		cliutil.PrintError("expected exactly one manifest")
		fmt.Fprint(os.Stderr, genUsage)
		return exitError
	}

	opts := c.options()
	if *maxPairs != 0 {
		opts = append(opts, ecgen.WithMaxPairs(*maxPairs))
	}

	unit, err := ecgen.Generate(ecgen.File(fs.Arg(0)), opts...)
	if err != nil {
		reportFailure(err)
		return exitError
	}
	for _, d := range unit.Diagnostics {
		fmt.Fprintln(os.Stderr, d)
	}

	// CLI -o wins over the manifest's output; -stdout wins over both.
	path := unit.Output
	if *outputFile != "" {
		path = *outputFile
	}
	if *toStdout {
		path = ""
	}

	out, done, err := cliutil.GetOutput(path)
	if err != nil {
		cliutil.PrintError("cannot open output: %v", err)
		return exitError
	}
	defer done()

	_, _ = fmt.Fprint(out, unit.Render())
	return exitOK
}
