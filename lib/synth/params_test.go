// Copyright 2026 The Strata Authors
// SPDX-License-Identifier: Apache-2.0

package synth

import (
	"slices"
	"testing"

	"github.com/strata-foundation/strata/lib/typesys"
)

// modifierNames lists the property names of a synthesized modifier
// object in declaration order.
func modifierNames(t *testing.T, modifier *typesys.ObjectType) []string {
	t.Helper()
	properties := modifier.Properties()
	names := make([]string, len(properties))
	for i, property := range properties {
		names[i] = property.Name
	}
	return names
}

func TestParameterModifierTypePropertySets(t *testing.T) {
	tests := []struct {
		name     string
		declared typesys.Type
		want     []string
	}{
		{
			"string",
			typesys.String,
			[]string{"secure", "default", "allowed", "minLength", "maxLength", "metadata"},
		},
		{
			"object",
			typesys.Object,
			[]string{"secure", "default", "allowed", "metadata"},
		},
		{
			"int",
			typesys.Int,
			[]string{"default", "allowed", "minValue", "maxValue", "metadata"},
		},
		{
			"bool",
			typesys.Bool,
			[]string{"default", "allowed", "metadata"},
		},
		{
			"array",
			typesys.Array,
			[]string{"default", "allowed", "minLength", "maxLength", "metadata"},
		},
		{
			"any is a wildcard",
			typesys.Any,
			[]string{"secure", "default", "allowed", "minValue", "maxValue", "minLength", "maxLength", "metadata"},
		},
		{
			"loose string is not canonical string",
			typesys.LooseString,
			[]string{"default", "allowed", "metadata"},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			modifier := ParameterModifierType(test.declared, test.declared)
			if got := modifierNames(t, modifier); !slices.Equal(got, test.want) {
				t.Errorf("modifier properties = %v, want %v", got, test.want)
			}
			if modifier.IsOpen() {
				t.Error("modifier object is open, want closed")
			}
		})
	}
}

func TestParameterModifierTypeFlags(t *testing.T) {
	modifier := ParameterModifierType(typesys.String, typesys.String)

	defaultProperty, ok := modifier.Property("default")
	if !ok {
		t.Fatal("default property missing")
	}
	if defaultProperty.Flags != typesys.FlagNone {
		t.Errorf("default flags = %v, want none (defaults may be computed expressions)", defaultProperty.Flags)
	}
	if !typesys.Equal(defaultProperty.Type, typesys.String) {
		t.Errorf("default type = %s, want string", defaultProperty.Type.Name())
	}

	for _, name := range []string{"secure", "allowed", "minLength", "maxLength", "metadata"} {
		property, ok := modifier.Property(name)
		if !ok {
			t.Fatalf("%s property missing", name)
		}
		if !property.Flags.Has(typesys.FlagConstant) {
			t.Errorf("%s flags = %v, want constant", name, property.Flags)
		}
	}

	secure, _ := modifier.Property("secure")
	if !typesys.Equal(secure.Type, typesys.Bool) {
		t.Errorf("secure type = %s, want bool", secure.Type.Name())
	}
	minLength, _ := modifier.Property("minLength")
	if !typesys.Equal(minLength.Type, typesys.Int) {
		t.Errorf("minLength type = %s, want int", minLength.Type.Name())
	}
}

func TestParameterModifierAllowedWrapping(t *testing.T) {
	tests := []struct {
		name          string
		allowedValues typesys.Type
		want          typesys.Type
	}{
		{"scalar wraps once", typesys.Int, typesys.NewTypedArray(typesys.Int)},
		{"typed array used as-is", typesys.NewTypedArray(typesys.String), typesys.NewTypedArray(typesys.String)},
		{"untyped array used as-is", typesys.Array, typesys.Array},
		{
			"nested typed array not rewrapped",
			typesys.NewTypedArray(typesys.NewTypedArray(typesys.Int)),
			typesys.NewTypedArray(typesys.NewTypedArray(typesys.Int)),
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			modifier := ParameterModifierType(typesys.Any, test.allowedValues)
			allowed, ok := modifier.Property("allowed")
			if !ok {
				t.Fatal("allowed property missing")
			}
			if !typesys.Equal(allowed.Type, test.want) {
				t.Errorf("allowed type = %s, want %s", allowed.Type.Name(), test.want.Name())
			}
		})
	}
}

func TestParameterModifierMetadataShape(t *testing.T) {
	modifier := ParameterModifierType(typesys.Bool, typesys.Bool)

	metadata, ok := modifier.Property("metadata")
	if !ok {
		t.Fatal("metadata property missing")
	}
	metadataObject, ok := metadata.Type.(*typesys.ObjectType)
	if !ok {
		t.Fatalf("metadata type is %T, want object", metadata.Type)
	}

	description, ok := metadataObject.Property("description")
	if !ok {
		t.Fatal("metadata.description missing")
	}
	if !typesys.Equal(description.Type, typesys.String) || !description.Flags.Has(typesys.FlagConstant) {
		t.Errorf("metadata.description = (%s, %v), want constant string", description.Type.Name(), description.Flags)
	}

	// Arbitrary extra metadata keys are permitted.
	if !metadataObject.IsOpen() || !typesys.IsAny(metadataObject.AdditionalProperties()) {
		t.Error("metadata object is not open to any")
	}
	if !metadataObject.AdditionalPropertiesFlags().Has(typesys.FlagConstant) {
		t.Error("metadata additional properties are not constant")
	}
}

func TestParameterModifierTypeName(t *testing.T) {
	tests := []struct {
		declared typesys.Type
		want     string
	}{
		{typesys.String, "parameterModifier<string>"},
		{typesys.Int, "parameterModifier<int>"},
		{typesys.Any, "parameterModifier<any>"},
	}

	for _, test := range tests {
		modifier := ParameterModifierType(test.declared, test.declared)
		if got := modifier.Name(); got != test.want {
			t.Errorf("Name() = %q, want %q", got, test.want)
		}
	}
}
