// Copyright 2026 The Strata Authors
// SPDX-License-Identifier: Apache-2.0

package types

import (
	"fmt"
	"os"
	"strings"

	"github.com/strata-foundation/strata/cmd/strata/cli"
	"github.com/strata-foundation/strata/lib/typesys"
)

type scopesParams struct {
	cli.JSONOutput
}

// scopesResult is the machine output of the scopes command.
type scopesResult struct {
	Scopes      []string `json:"scopes"`
	Description string   `json:"description"`
	Value       uint8    `json:"value"`
}

// ScopesCommand returns the "scopes" command.
func ScopesCommand() *cli.Command {
	var params scopesParams

	return &cli.Command{
		Name:    "scopes",
		Summary: "Describe a deployment scope combination",
		Description: `Parse a comma-separated list of scope names, combine them, and print
the canonical description and bit value. The description order is
fixed (resource, module, tenant, managementGroup, subscription,
resourceGroup) no matter how the input is ordered.`,
		Usage: "strata scopes <name>[,<name>...] [flags]",
		Examples: []cli.Example{
			{
				Description: "A single scope",
				Command:     "strata scopes resourceGroup",
			},
			{
				Description: "A combination, in any order",
				Command:     "strata scopes resourceGroup,subscription",
			},
			{
				Description: "Machine-readable output",
				Command:     "strata scopes resource,module --json",
			},
		},
		Params: func() any { return &params },
		Run: func(args []string) error {
			if len(args) != 1 {
				return cli.Usagef("expected exactly one scope list, got %d arguments", len(args))
			}

			combined := typesys.ScopeNone
			for _, name := range strings.Split(args[0], ",") {
				scope, err := typesys.ParseScope(strings.TrimSpace(name))
				if err != nil {
					return cli.Usagef("%v", err)
				}
				combined |= scope
			}

			result := scopesResult{
				Scopes:      combined.Descriptions(),
				Description: combined.String(),
				Value:       uint8(combined),
			}

			if done, err := params.EmitJSON(result); done {
				return err
			}
			fmt.Fprintf(os.Stdout, "description: %s\nvalue:       %d\n", result.Description, result.Value)
			return nil
		},
	}
}
