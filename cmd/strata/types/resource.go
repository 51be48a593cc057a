// Copyright 2026 The Strata Authors
// SPDX-License-Identifier: Apache-2.0

package types

import (
	"os"

	"github.com/strata-foundation/strata/cmd/strata/cli"
	"github.com/strata-foundation/strata/lib/synth"
)

type resourceParams struct {
	cli.JSONOutput
	Fingerprint bool `flag:"fingerprint" desc:"include the canonical type fingerprint"`
	Encoding    bool `flag:"encoding" desc:"include the canonical encoding in CBOR diagnostic notation"`
}

// ResourceCommand returns the "resource" command.
func ResourceCommand() *cli.Command {
	var params resourceParams

	return &cli.Command{
		Name:    "resource",
		Summary: "Show the body type for a resource type reference",
		Description: `Synthesize and print the body type installed on a resource
declaration of the given type reference: the platform metadata (id,
type, apiVersion), the required deployment name, the provider-neutral
catalog properties, and the dependency list.

The type reference has the form Namespace/type[/subtype]@apiVersion,
for example Example.Network/virtualNetworks@2024-06-01.`,
		Usage: "strata resource <type-reference> [flags]",
		Examples: []cli.Example{
			{
				Description: "Body type for a virtual network resource",
				Command:     "strata resource Example.Network/virtualNetworks@2024-06-01",
			},
			{
				Description: "Include the canonical fingerprint",
				Command:     "strata resource Example.Network/virtualNetworks@2024-06-01 --fingerprint",
			},
			{
				Description: "Machine-readable property table",
				Command:     "strata resource Example.Storage/accounts@2025-01-01 --json",
			},
		},
		Params: func() any { return &params },
		Run: func(args []string) error {
			if len(args) != 1 {
				return cli.Usagef("expected exactly one type reference, got %d arguments", len(args))
			}
			ref, err := synth.ParseTypeReference(args[0])
			if err != nil {
				return cli.Usagef("%v", err)
			}

			body := synth.ResourceBodyType(ref)
			result := resultForObject(body)
			if params.Fingerprint {
				result.Fingerprint = fingerprintHex(body)
			}
			if params.Encoding {
				result.Encoding, err = encodingDiagnostic(body)
				if err != nil {
					return err
				}
			}

			if done, err := params.EmitJSON(result); done {
				return err
			}
			printTable(os.Stdout, result)
			return nil
		},
	}
}
