// Copyright 2026 The Strata Authors
// SPDX-License-Identifier: Apache-2.0

// Package commands builds the complete strata CLI command tree. The
// tree lives here, separate from main, so command tests can construct
// and dispatch it without a process boundary.
package commands

import (
	"fmt"

	"github.com/strata-foundation/strata/cmd/strata/cli"
	mergecmd "github.com/strata-foundation/strata/cmd/strata/merge"
	typescmd "github.com/strata-foundation/strata/cmd/strata/types"
	"github.com/strata-foundation/strata/lib/version"
)

// Root builds and returns the complete strata CLI command tree.
func Root() *cli.Command {
	return &cli.Command{
		Name: "strata",
		Description: `Strata: structural type tooling for declarative deployment documents.

Inspect the types synthesized for parameter, resource, and module
declarations, describe deployment scopes, and merge JSONC object
documents the way the compiler does.`,
		Subcommands: []*cli.Command{
			mergecmd.Command(),
			typescmd.ParamTypeCommand(),
			typescmd.ResourceCommand(),
			typescmd.ModuleTypeCommand(),
			typescmd.ScopesCommand(),
			{
				Name:    "version",
				Summary: "Print version information",
				Run: func(args []string) error {
					fmt.Printf("strata %s\n", version.Full())
					return nil
				},
			},
		},
		Examples: []cli.Example{
			{
				Description: "Merge an environment overlay into a base document",
				Command:     "strata merge base.jsonc production.jsonc",
			},
			{
				Description: "Show the modifier type for string parameters",
				Command:     "strata param-type string",
			},
			{
				Description: "Show a resource body with its fingerprint",
				Command:     "strata resource Example.Network/virtualNetworks@2024-06-01 --fingerprint",
			},
			{
				Description: "Synthesize a module type from an interface file",
				Command:     "strata module-type --interface stack.yaml",
			},
			{
				Description: "Describe a scope combination",
				Command:     "strata scopes resourceGroup,subscription",
			},
		},
	}
}
