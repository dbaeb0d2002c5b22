// Command ecgen generates error-code enums and message conversion tables
// from declarative invocations or YAML manifests.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/yaecgen/ecgen"
)

// Exit codes.
const (
	exitOK    = 0 // success
	exitError = 1 // user error or generation failure
)

const usage = `ecgen - error-code enum and conversion-table generator

Usage:
  ecgen <command> [options] [arguments]

Commands:
  expand  Expand one textual invocation
  gen     Generate from a YAML manifest
  check   Validate a manifest without writing output
  header  Emit the reusable C macro family
  version Show version

Common options:
  -v, --verbose     Enable debug logging
  -vv               Enable trace logging (implies -v)
  -h, --help        Show help

Examples:
  ecgen expand 'hello, HELLO, HI, "HI"'
  ecgen gen -o hello.h codes.yaml
  ecgen check codes.yaml
  ecgen header -n 4 -name YA_ECGEN -member-prefix YA_
`

type cli struct {
	verbose  int
	helpFlag bool
}

func main() {
	os.Exit(run())
}

func run() int {
	var c cli
	args := os.Args[1:]
	var cmdArgs []string
	var cmd string

	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "-h" || arg == "--help":
			c.helpFlag = true
		case arg == "-v" || arg == "--verbose":
			if c.verbose < 1 {
				c.verbose = 1
			}
		case arg == "-vv":
			c.verbose = 2
		case len(arg) > 0 && arg[0] == '-':
			cmdArgs = append(cmdArgs, arg)
		default:
			if cmd == "" {
				cmd = arg
			} else {
				cmdArgs = append(cmdArgs, arg)
			}
		}
	}

	if c.helpFlag && cmd == "" {
		_, _ = fmt.Fprint(os.Stdout, usage)
		return exitOK
	}

	if cmd == "" {
		_, _ = fmt.Fprint(os.Stderr, usage)
		return exitError
	}

	switch cmd {
	case "expand":
		return c.cmdExpand(cmdArgs)
	case "gen":
		return c.cmdGen(cmdArgs)
	case "check":
		return c.cmdCheck(cmdArgs)
	case "header":
		return c.cmdHeader(cmdArgs)
	case "version":
		printVersion()
		return exitOK
	case "help":
		_, _ = fmt.Fprint(os.Stdout, usage)
		return exitOK
	default:
		_, _ = fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", cmd)
		_, _ = fmt.Fprint(os.Stderr, usage)
		return exitError
	}
}

func (c *cli) setupLogger() *slog.Logger {
	if c.verbose == 0 {
		return nil
	}
	level := slog.LevelDebug
	if c.verbose >= 2 {
		level = ecgen.LevelTrace
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// options returns the generation options implied by the global flags.
func (c *cli) options() []ecgen.Option {
	var opts []ecgen.Option
	if logger := c.setupLogger(); logger != nil {
		opts = append(opts, ecgen.WithLogger(logger))
	}
	return opts
}
