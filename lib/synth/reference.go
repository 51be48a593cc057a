// Copyright 2026 The Strata Authors
// SPDX-License-Identifier: Apache-2.0

package synth

import (
	"fmt"
	"strings"
)

// TypeReference is a parsed resource type reference identifying a
// provider type at a specific API version. The wire format is:
//
//	<Namespace>/<type>[/<childType>...]@<apiVersion>
//
// Examples:
//
//	Example.Network/virtualNetworks@2024-06-01
//	Example.Network/virtualNetworks/subnets@2024-06-01
//
// The last "@" separates the fully qualified type from the API
// version. Namespaces and type segments cannot contain "@", so the
// split is unambiguous.
type TypeReference struct {
	// Namespace is the provider namespace (e.g. "Example.Network").
	Namespace string

	// Types is the type path under the namespace, outermost first
	// (e.g. ["virtualNetworks", "subnets"]). Always at least one
	// segment.
	Types []string

	// APIVersion is the version label after "@" (e.g. "2024-06-01").
	APIVersion string
}

// ParseTypeReference parses a type reference string into its
// components. Returns an error if the reference is empty, missing the
// "@" version separator or "/" namespace separator, or has an empty
// namespace, type segment, or version.
func ParseTypeReference(reference string) (TypeReference, error) {
	if reference == "" {
		return TypeReference{}, fmt.Errorf("empty type reference")
	}

	atIndex := strings.LastIndex(reference, "@")
	if atIndex < 0 {
		return TypeReference{}, fmt.Errorf("type reference %q missing @apiVersion", reference)
	}

	qualifiedType := reference[:atIndex]
	apiVersion := reference[atIndex+1:]
	if apiVersion == "" {
		return TypeReference{}, fmt.Errorf("type reference %q has empty api version", reference)
	}

	segments := strings.Split(qualifiedType, "/")
	if len(segments) < 2 {
		return TypeReference{}, fmt.Errorf("type reference %q missing namespace separator", reference)
	}
	for _, segment := range segments {
		if segment == "" {
			return TypeReference{}, fmt.Errorf("type reference %q has empty type segment", reference)
		}
	}

	return TypeReference{
		Namespace:  segments[0],
		Types:      segments[1:],
		APIVersion: apiVersion,
	}, nil
}

// FormatType returns the fully qualified type without the API version
// (e.g. "Example.Network/virtualNetworks/subnets"). This is the value
// of a resource body's synthesized "type" property.
func (ref TypeReference) FormatType() string {
	return ref.Namespace + "/" + strings.Join(ref.Types, "/")
}

// String returns the canonical wire-format representation.
// Round-trips through ParseTypeReference: for any valid reference,
// ParseTypeReference(ref.String()) returns an equivalent value.
func (ref TypeReference) String() string {
	return ref.FormatType() + "@" + ref.APIVersion
}
