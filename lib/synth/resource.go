// Copyright 2026 The Strata Authors
// SPDX-License-Identifier: Apache-2.0

package synth

import "github.com/strata-foundation/strata/lib/typesys"

// Shared building blocks for resource and module bodies. ResourceRef
// and ModuleRef are the types of references to deployed resources and
// modules; dependency lists accept a single reference, a module
// collection, or a resource collection.
var (
	// ResourceRef is a reference to a resource or module deployable at
	// resource or module scope.
	ResourceRef = typesys.NewScopeReference(typesys.ScopeResource | typesys.ScopeModule)

	// ModuleRef is a reference to a module deployment.
	ModuleRef = typesys.NewScopeReference(typesys.ScopeModule)

	stringArray = typesys.NewTypedArray(typesys.String)

	// tagsObject is the classic string-valued tag bag.
	tagsObject = typesys.NewOpenObject("tags", nil, typesys.String, typesys.FlagNone)

	dependsOnType = typesys.NewTypedArray(typesys.NewUnion(
		ResourceRef,
		typesys.NewTypedArray(ModuleRef),
		typesys.NewTypedArray(ResourceRef),
	))
)

// ResourceProperties returns the ordered property set common to every
// resource body for the given type reference: the platform metadata
// (id, type, apiVersion — system generated, never re-declared by the
// author), the required deployment name, the fixed provider-neutral
// catalog, and the dependency list.
func ResourceProperties(ref TypeReference) []typesys.Property {
	readOnlyMetadata := typesys.FlagReadOnly | typesys.FlagDeployTimeConstant | typesys.FlagSystemGenerated

	return []typesys.Property{
		{Name: "id", Type: typesys.String, Flags: readOnlyMetadata},
		{Name: "name", Type: typesys.String, Flags: typesys.FlagRequired | typesys.FlagDeployTimeConstant},
		{Name: "type", Type: typesys.NewStringLiteral(ref.FormatType()), Flags: readOnlyMetadata},
		{Name: "apiVersion", Type: typesys.NewStringLiteral(ref.APIVersion), Flags: readOnlyMetadata},
		{Name: "sku", Type: typesys.Object},
		{Name: "kind", Type: typesys.String},
		{Name: "managedBy", Type: typesys.String},
		{Name: "managedByExtended", Type: stringArray},
		{Name: "location", Type: typesys.String},
		{Name: "extendedLocation", Type: typesys.Object},
		{Name: "zones", Type: stringArray},
		{Name: "plan", Type: typesys.Object},
		{Name: "eTag", Type: typesys.String},
		{Name: "tags", Type: tagsObject},
		{Name: "scale", Type: typesys.Object},
		{Name: "identity", Type: typesys.Object},
		{Name: "properties", Type: typesys.Object},
		{Name: "dependsOn", Type: dependsOnType, Flags: typesys.FlagWriteOnly | typesys.FlagDisallowAny},
	}
}

// ResourceBodyType wraps [ResourceProperties] in a closed object named
// after the full reference. This is the type the binder installs on a
// resource declaration.
func ResourceBodyType(ref TypeReference) *typesys.ObjectType {
	return typesys.NewObject(ref.String(), ResourceProperties(ref))
}
