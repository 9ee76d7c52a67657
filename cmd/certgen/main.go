package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	env := DefaultEnv()

	// Interrupt cancels between jobs; in-flight renders run to completion.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	os.Exit(run(ctx, os.Args[1:], env))
}

// run dispatches to the requested command and returns an exit code.
func run(ctx context.Context, args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stderr)
		return ExitUsage
	}

	cmd, rest := args[0], args[1:]

	switch cmd {
	case "generate":
		return runGenerateCommand(ctx, rest, env)
	case "preview":
		return runPreviewCommand(ctx, rest, env)
	case "version":
		fmt.Fprintf(env.Stdout, "certgen %s\n", Version)
		return ExitSuccess
	case "help", "-h", "--help":
		runHelp(rest, env)
		return ExitSuccess
	default:
		fmt.Fprintf(env.Stderr, "unknown command: %q\n\n", cmd)
		printUsage(env.Stderr)
		return ExitUsage
	}
}

// setupMaxprocs aligns GOMAXPROCS with the container CPU quota.
// Error ignored: maxprocs.Set only fails if the GOMAXPROCS env variable
// is invalid, in which case Go runtime defaults apply and the program
// continues safely.
func setupMaxprocs(verbose bool, env *Environment) {
	if verbose {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
			fmt.Fprintf(env.Stderr, format+"\n", args...)
		}))
	} else {
		_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))
	}
}
