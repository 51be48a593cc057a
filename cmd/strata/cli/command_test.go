// Copyright 2026 The Strata Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestCommandExecuteDispatchesToSubcommand(t *testing.T) {
	var called string

	root := &Command{
		Name: "strata",
		Subcommands: []*Command{
			{
				Name: "merge",
				Run: func(args []string) error {
					called = "merge"
					return nil
				},
			},
			{
				Name: "scopes",
				Run: func(args []string) error {
					called = "scopes"
					return nil
				},
			},
		},
	}

	if err := root.Execute([]string{"scopes"}); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if called != "scopes" {
		t.Errorf("dispatched to %q, want %q", called, "scopes")
	}
}

func TestCommandExecuteNestedSubcommands(t *testing.T) {
	var called string
	var receivedArgs []string

	root := &Command{
		Name: "strata",
		Subcommands: []*Command{
			{
				Name: "type",
				Subcommands: []*Command{
					{
						Name: "show",
						Run: func(args []string) error {
							called = "type show"
							receivedArgs = args
							return nil
						},
					},
				},
			},
		},
	}

	if err := root.Execute([]string{"type", "show", "extra-arg"}); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if called != "type show" {
		t.Errorf("dispatched to %q, want %q", called, "type show")
	}
	if len(receivedArgs) != 1 || receivedArgs[0] != "extra-arg" {
		t.Errorf("args = %v, want [extra-arg]", receivedArgs)
	}
}

func TestCommandExecuteBindsParams(t *testing.T) {
	type mergeParams struct {
		Compact bool   `flag:"compact,c" desc:"single-line output"`
		Output  string `flag:"output,o" desc:"output path"`
	}

	var params mergeParams
	var positional []string

	command := &Command{
		Name:   "merge",
		Params: func() any { return &params },
		Run: func(args []string) error {
			positional = args
			return nil
		},
	}

	if err := command.Execute([]string{"--compact", "-o", "merged.json", "base.jsonc"}); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if !params.Compact {
		t.Error("Compact = false, want true")
	}
	if params.Output != "merged.json" {
		t.Errorf("Output = %q, want %q", params.Output, "merged.json")
	}
	if len(positional) != 1 || positional[0] != "base.jsonc" {
		t.Errorf("positional args = %v, want [base.jsonc]", positional)
	}
}

func TestCommandExecuteUnknownFlagSuggestion(t *testing.T) {
	type params struct {
		Fingerprint bool   `flag:"fingerprint" desc:"include fingerprint"`
		Output      string `flag:"output" desc:"output path"`
	}
	var p params

	command := &Command{
		Name:   "resource",
		Params: func() any { return &p },
		Run:    func(args []string) error { return nil },
	}

	err := command.Execute([]string{"--fingreprint"})
	if err == nil {
		t.Fatal("Execute() = nil, want error for unknown flag")
	}
	var usage *UsageError
	if !errors.As(err, &usage) {
		t.Errorf("error type = %T, want *UsageError", err)
	}
	message := err.Error()
	if !strings.Contains(message, "did you mean --fingerprint") {
		t.Errorf("error = %q, want suggestion for --fingerprint", message)
	}
	if !strings.Contains(message, "fingreprint") {
		t.Errorf("error = %q, should mention the bad flag", message)
	}
	if !strings.Contains(message, "--help") {
		t.Errorf("error = %q, should point to --help", message)
	}
}

func TestCommandExecuteUnknownFlagNoSuggestion(t *testing.T) {
	type params struct {
		Fingerprint bool `flag:"fingerprint" desc:"include fingerprint"`
	}
	var p params

	command := &Command{
		Name:   "resource",
		Params: func() any { return &p },
		Run:    func(args []string) error { return nil },
	}

	err := command.Execute([]string{"--zzzzzzzzz"})
	if err == nil {
		t.Fatal("Execute() = nil, want error for unknown flag")
	}
	if strings.Contains(err.Error(), "did you mean") {
		t.Errorf("error = %q, should not suggest for distant flag", err.Error())
	}
	if !strings.Contains(err.Error(), "--help") {
		t.Errorf("error = %q, should point to --help", err.Error())
	}
}

func TestCommandExecuteUnknownSubcommandSuggestion(t *testing.T) {
	root := &Command{
		Name: "strata",
		Subcommands: []*Command{
			{Name: "merge"},
			{Name: "resource"},
			{Name: "scopes"},
		},
	}

	err := root.Execute([]string{"resorce"})
	if err == nil {
		t.Fatal("Execute() = nil, want error for unknown subcommand")
	}
	var usage *UsageError
	if !errors.As(err, &usage) {
		t.Errorf("error type = %T, want *UsageError", err)
	}
	if !strings.Contains(err.Error(), "did you mean \"resource\"") {
		t.Errorf("error = %q, want suggestion for resource", err.Error())
	}
}

func TestCommandExecuteUnknownSubcommandNoSuggestion(t *testing.T) {
	root := &Command{
		Name: "strata",
		Subcommands: []*Command{
			{Name: "merge"},
			{Name: "resource"},
		},
	}

	err := root.Execute([]string{"zzzzzzz"})
	if err == nil {
		t.Fatal("Execute() = nil, want error for unknown subcommand")
	}
	if strings.Contains(err.Error(), "did you mean") {
		t.Errorf("error = %q, should not contain suggestion for distant input", err.Error())
	}
}

func TestCommandExecuteHelpFlag(t *testing.T) {
	for _, helpArg := range []string{"-h", "--help", "help"} {
		t.Run(helpArg, func(t *testing.T) {
			root := &Command{
				Name:    "strata",
				Summary: "Type synthesis inspection",
				Subcommands: []*Command{
					{Name: "merge", Summary: "Merge object documents"},
				},
			}

			if err := root.Execute([]string{helpArg}); err != nil {
				t.Errorf("Execute(%q) error: %v", helpArg, err)
			}
		})
	}
}

func TestCommandExecuteHelpFlagAfterArgs(t *testing.T) {
	type params struct {
		Compact bool `flag:"compact" desc:"single-line output"`
	}
	var p params

	command := &Command{
		Name:   "merge",
		Params: func() any { return &p },
		Run: func(args []string) error {
			t.Error("Run called, want help short-circuit")
			return nil
		},
	}

	if err := command.Execute([]string{"base.jsonc", "--help"}); err != nil {
		t.Errorf("Execute() error: %v", err)
	}
}

func TestCommandExecuteNoArgsShowsHelp(t *testing.T) {
	root := &Command{
		Name: "strata",
		Subcommands: []*Command{
			{Name: "merge", Summary: "Merge object documents"},
		},
	}

	err := root.Execute([]string{})
	if err == nil {
		t.Fatal("Execute() = nil, want error for missing subcommand")
	}
	var usage *UsageError
	if !errors.As(err, &usage) {
		t.Errorf("error type = %T, want *UsageError", err)
	}
	if !strings.Contains(err.Error(), "subcommand required") {
		t.Errorf("error = %q, want 'subcommand required'", err.Error())
	}
}

func TestCommandPrintHelp(t *testing.T) {
	command := &Command{
		Name:        "strata",
		Description: "Inspect structural types and merge object documents.",
		Subcommands: []*Command{
			{Name: "merge", Summary: "Merge JSONC object documents"},
			{Name: "resource", Summary: "Show a resource body type"},
			{Name: "version", Summary: "Print version information"},
		},
		Examples: []Example{
			{
				Description: "Merge two documents",
				Command:     "strata merge base.jsonc overlay.jsonc",
			},
			{
				Description: "Show the resource body for a type reference",
				Command:     "strata resource Example.Network/virtualNetworks@2024-06-01",
			},
		},
	}

	var buffer bytes.Buffer
	command.PrintHelp(&buffer)
	output := buffer.String()

	for _, want := range []string{
		"Inspect structural types and merge object documents.",
		"Usage:",
		"strata <command> [flags]",
		"Commands:",
		"merge",
		"Merge JSONC object documents",
		"resource",
		"Show a resource body type",
		"Examples:",
		"strata merge base.jsonc overlay.jsonc",
		"strata resource Example.Network/virtualNetworks@2024-06-01",
		"Run 'strata <command> --help'",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("help output missing %q\n\nFull output:\n%s", want, output)
		}
	}
}

func TestCommandPrintHelpWithFlags(t *testing.T) {
	type params struct {
		Fingerprint bool `flag:"fingerprint" desc:"include the type fingerprint"`
		JSON        bool `flag:"json" desc:"output as JSON"`
	}
	var p params

	command := &Command{
		Name:    "resource",
		Summary: "Show a resource body type",
		Usage:   "strata resource <type-reference> [flags]",
		Params:  func() any { return &p },
	}

	var buffer bytes.Buffer
	command.PrintHelp(&buffer)
	output := buffer.String()

	for _, want := range []string{
		"strata resource <type-reference> [flags]",
		"Flags:",
		"fingerprint",
		"json",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("help output missing %q\n\nFull output:\n%s", want, output)
		}
	}
}

func TestCommandFullName(t *testing.T) {
	root := &Command{Name: "strata"}
	group := &Command{Name: "type", parent: root}
	leaf := &Command{Name: "show", parent: group}

	if got := root.fullName(); got != "strata" {
		t.Errorf("root.fullName() = %q, want %q", got, "strata")
	}
	if got := group.fullName(); got != "strata type" {
		t.Errorf("group.fullName() = %q, want %q", got, "strata type")
	}
	if got := leaf.fullName(); got != "strata type show" {
		t.Errorf("leaf.fullName() = %q, want %q", got, "strata type show")
	}
}
