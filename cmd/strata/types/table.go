// Copyright 2026 The Strata Authors
// SPDX-License-Identifier: Apache-2.0

package types

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/strata-foundation/strata/lib/codec"
	"github.com/strata-foundation/strata/lib/typesys"
)

// propertyRow is one property in the table and JSON output.
type propertyRow struct {
	Name  string `json:"name"`
	Type  string `json:"type"`
	Flags string `json:"flags"`
}

// typeResult is the output shape shared by param-type, resource, and
// module-type. Additional is the open-object row ("*"); Scope is set
// for module types only.
type typeResult struct {
	Name        string        `json:"name"`
	Scope       string        `json:"scope,omitempty"`
	Properties  []propertyRow `json:"properties"`
	Additional  *propertyRow  `json:"additionalProperties,omitempty"`
	Fingerprint string        `json:"fingerprint,omitempty"`
	Encoding    string        `json:"encoding,omitempty"`
}

// resultForObject flattens an object type into the output shape.
func resultForObject(object *typesys.ObjectType) typeResult {
	result := typeResult{
		Name:       object.Name(),
		Properties: make([]propertyRow, 0, len(object.Properties())),
	}
	for _, property := range object.Properties() {
		result.Properties = append(result.Properties, propertyRow{
			Name:  property.Name,
			Type:  property.Type.Name(),
			Flags: property.Flags.String(),
		})
	}
	if object.IsOpen() {
		result.Additional = &propertyRow{
			Name:  "*",
			Type:  object.AdditionalProperties().Name(),
			Flags: object.AdditionalPropertiesFlags().String(),
		}
	}
	return result
}

// printTable renders the result as an aligned property table.
func printTable(w io.Writer, result typeResult) {
	fmt.Fprintf(w, "%s\n", result.Name)
	if result.Scope != "" {
		fmt.Fprintf(w, "scope: %s\n", result.Scope)
	}
	fmt.Fprintln(w)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tTYPE\tFLAGS")
	for _, row := range result.Properties {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", row.Name, row.Type, row.Flags)
	}
	if result.Additional != nil {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", result.Additional.Name, result.Additional.Type, result.Additional.Flags)
	}
	tw.Flush()

	if result.Fingerprint != "" {
		fmt.Fprintf(w, "\nfingerprint: %s\n", result.Fingerprint)
	}
	if result.Encoding != "" {
		fmt.Fprintf(w, "encoding: %s\n", result.Encoding)
	}
}

// fingerprintHex returns the hex form of t's canonical fingerprint.
func fingerprintHex(t typesys.Type) string {
	return typesys.FormatFingerprint(typesys.FingerprintType(t))
}

// encodingDiagnostic renders t's canonical encoding, the exact bytes
// the fingerprint hashes, in CBOR diagnostic notation.
func encodingDiagnostic(t typesys.Type) (string, error) {
	data, err := typesys.EncodeType(t)
	if err != nil {
		return "", fmt.Errorf("encode type: %w", err)
	}
	diagnostic, err := codec.Diagnose(data)
	if err != nil {
		return "", fmt.Errorf("diagnose type encoding: %w", err)
	}
	return diagnostic, nil
}

// lookupType resolves a declaration type name, plus the "any" wildcard
// the declaration table itself does not carry.
func lookupType(name string) (typesys.Type, bool) {
	if name == "any" {
		return typesys.Any, true
	}
	return typesys.DeclarationType(name)
}
