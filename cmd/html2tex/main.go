package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	flag "github.com/spf13/pflag"
	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

// ErrUnknownCommand is returned for an unrecognized subcommand.
var ErrUnknownCommand = errors.New("unknown command")

func main() {
	setMaxProcs(slices.Contains(os.Args, "-v") || slices.Contains(os.Args, "--verbose"))
	os.Exit(runMain(os.Args, DefaultEnv()))
}

// setMaxProcs configures GOMAXPROCS for the container CPU quota.
// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
// in which case Go runtime defaults apply and the program continues safely.
func setMaxProcs(verbose bool) {
	if verbose {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...any) {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		}))
		return
	}
	_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...any) {}))
}

// runMain dispatches the subcommand in args (args[0] is the program name)
// and returns the process exit code.
func runMain(args []string, env *Environment) int {
	if len(args) < 2 {
		printUsage(env.Stderr)
		return ExitUsage
	}

	cmd, rest := args[1], args[2:]

	// "html2tex page.html" is shorthand for "html2tex convert page.html".
	if looksLikeInput(cmd) {
		cmd, rest = "convert", args[1:]
	}

	switch cmd {
	case "convert":
		return runConvertCmd(rest, env)
	case "config":
		return runConfigCmd(rest, env)
	case "version", "--version":
		fmt.Fprintf(env.Stdout, "html2tex %s\n", Version)
		return ExitSuccess
	case "help", "-h", "--help":
		if err := runHelp(rest, env); err != nil {
			return exitCodeFor(err)
		}
		return ExitSuccess
	default:
		fmt.Fprintf(env.Stderr, "%v: %s\n", ErrUnknownCommand, cmd)
		printUsage(env.Stderr)
		return ExitUsage
	}
}

// runConvertCmd parses convert flags and runs the conversion with signal
// handling.
func runConvertCmd(args []string, env *Environment) int {
	flags, positional, err := parseConvertFlags(args, env.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitSuccess
		}
		fmt.Fprintln(env.Stderr, err)
		return ExitUsage
	}

	ctx, stop := notifyContext(context.Background())
	defer stop()

	if err := runConvert(ctx, positional, flags, env); err != nil {
		fmt.Fprintln(env.Stderr, err)
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// looksLikeInput reports whether arg names a convertible file rather than
// a subcommand.
func looksLikeInput(arg string) bool {
	if strings.HasPrefix(arg, "-") {
		return false
	}
	return hasInputExtension(arg)
}
