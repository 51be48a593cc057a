// Copyright 2026 The Strata Authors
// SPDX-License-Identifier: Apache-2.0

package types

import (
	"os"

	"github.com/strata-foundation/strata/cmd/strata/cli"
	"github.com/strata-foundation/strata/lib/synth"
)

type paramTypeParams struct {
	cli.JSONOutput
	AllowedType string `flag:"allowed-type" desc:"declaration name for the allowed-values element type (defaults to the parameter type)"`
}

// ParamTypeCommand returns the "param-type" command.
func ParamTypeCommand() *cli.Command {
	var params paramTypeParams

	return &cli.Command{
		Name:    "param-type",
		Summary: "Show the modifier type for a parameter declaration",
		Description: `Synthesize and print the modifier object type for a parameter of the
given declared type: which modifier properties (secure, default,
allowed, minValue, maxValue, minLength, maxLength, metadata) the
checker accepts, with their types and flags.

The special name "any" is the wildcard used when a parameter's real
type was lost upstream; it admits every modifier.`,
		Usage: "strata param-type <string|int|bool|object|array|any> [flags]",
		Examples: []cli.Example{
			{
				Description: "Modifiers accepted on string parameters",
				Command:     "strata param-type string",
			},
			{
				Description: "An int parameter constrained to string allowed values",
				Command:     "strata param-type int --allowed-type string",
			},
			{
				Description: "Machine-readable modifier table",
				Command:     "strata param-type array --json",
			},
		},
		Params: func() any { return &params },
		Run: func(args []string) error {
			if len(args) != 1 {
				return cli.Usagef("expected exactly one parameter type name, got %d arguments", len(args))
			}
			declared, ok := lookupType(args[0])
			if !ok {
				return cli.Usagef("unknown type name %q (accepted: string, object, int, bool, array, any)", args[0])
			}

			allowed := declared
			if params.AllowedType != "" {
				allowed, ok = lookupType(params.AllowedType)
				if !ok {
					return cli.Usagef("unknown allowed-type %q (accepted: string, object, int, bool, array, any)", params.AllowedType)
				}
			}

			result := resultForObject(synth.ParameterModifierType(declared, allowed))

			if done, err := params.EmitJSON(result); done {
				return err
			}
			printTable(os.Stdout, result)
			return nil
		},
	}
}
