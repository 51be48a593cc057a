// Copyright 2026 The Strata Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli provides the command-line framework for the strata CLI.
//
// The central type is [Command], a node in the command tree with
// optional nested [Command.Subcommands], a parameter struct bound to
// pflag flags via struct tags (see [BindFlags]), and a Run function.
// The tree is assembled in cmd/strata/commands and dispatched through
// [Command.Execute], which handles subcommand routing, flag parsing,
// and structured help output with examples.
//
// Unknown subcommands and flags produce a "did you mean" hint when a
// defined name is within edit distance 3 of the input. Errors of that
// kind are returned as [UsageError] so the main function can exit
// with code 2 (fix the invocation) instead of 1 (the operation
// failed).
//
// Commands that support machine output embed [JSONOutput] in their
// parameter struct, which contributes the --json flag and the
// [JSONOutput.EmitJSON] helper.
package cli
