// Copyright 2026 The Strata Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"github.com/strata-foundation/strata/cmd/strata/cli"
	"github.com/strata-foundation/strata/cmd/strata/commands"
	"github.com/strata-foundation/strata/lib/version"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		// Usage errors (unknown commands, bad flags, malformed
		// arguments) exit 2 so scripts can tell them apart from
		// operational failures.
		var usage *cli.UsageError
		if errors.As(err, &usage) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func run() error {
	root := commands.Root()

	// Global flags are parsed before dispatch. Interspersed parsing is
	// off so that everything after the subcommand name, including flags
	// that happen to share a spelling with a global, belongs to the
	// subcommand.
	flagSet := pflag.NewFlagSet("strata", pflag.ContinueOnError)
	flagSet.SetInterspersed(false)
	flagSet.SetOutput(io.Discard)
	logLevel := flagSet.String("log-level", "info", "log verbosity: debug, info, warn, or error")
	showVersion := flagSet.Bool("version", false, "print version information and exit")

	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			root.PrintHelp(os.Stderr)
			return nil
		}
		return cli.Usagef("%v", err)
	}

	if *showVersion {
		fmt.Printf("strata %s\n", version.Full())
		return nil
	}

	level, err := cli.ParseLevel(*logLevel)
	if err != nil {
		return cli.Usagef("%v", err)
	}
	slog.SetDefault(cli.NewLogger(level))

	return root.Execute(flagSet.Args())
}
