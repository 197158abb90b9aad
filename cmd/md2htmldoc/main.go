package main

import (
	"context"
	"fmt"
	"io"
	"os"

	md2htmldoc "github.com/alnah/go-md2htmldoc"
	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	env := DefaultEnv()
	args := os.Args[1:]

	undo := configureMaxProcs(args, env.Stderr)
	code := runMain(args, env)
	undo()

	os.Exit(code)
}

// configureMaxProcs sets GOMAXPROCS from the container CPU quota, logging
// the decision when --verbose is among args.
// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
// in which case Go runtime defaults apply and the program continues safely.
func configureMaxProcs(args []string, stderr io.Writer) func() {
	verbose := false
	if flags, _, err := parseFlags(args); err == nil {
		verbose = flags.common.verbose
	}

	logger := func(string, ...interface{}) {}
	if verbose {
		logger = func(format string, args ...interface{}) {
			fmt.Fprintf(stderr, format+"\n", args...)
		}
	}

	undo, _ := maxprocs.Set(maxprocs.Logger(logger))
	if undo == nil {
		return func() {}
	}
	return undo
}

// runMain runs the command with args (without the program name) and
// returns the process exit code.
func runMain(args []string, env *Environment) int {
	flags, positional, err := parseFlags(args)
	if err != nil {
		return fail(env, err)
	}

	switch {
	case flags.common.help:
		printUsage(env.Stdout)
		return ExitSuccess
	case flags.common.version:
		fmt.Fprintf(env.Stdout, "md2htmldoc %s\n", Version)
		return ExitSuccess
	case flags.list.themes:
		conv, err := md2htmldoc.NewConverter()
		if err != nil {
			return fail(env, err)
		}
		printList(env.Stdout, conv.Themes())
		return ExitSuccess
	case flags.list.languages:
		printList(env.Stdout, md2htmldoc.Languages())
		return ExitSuccess
	}

	warnUnknownEnvVars(env.Stderr, env.Environ())

	ctx, stop := notifyContext(context.Background())
	defer stop()

	if err := runConvert(ctx, flags, positional, env); err != nil {
		return fail(env, err)
	}
	return ExitSuccess
}

// fail reports err on stderr, followed by the usage text for usage errors,
// and returns the matching exit code.
func fail(env *Environment, err error) int {
	fmt.Fprintf(env.Stderr, "error: %v\n", err)

	code := exitCodeFor(err)
	if code == ExitUsage {
		fmt.Fprintln(env.Stderr)
		printUsage(env.Stderr)
	}
	return code
}
