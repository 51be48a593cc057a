// Copyright 2026 The Strata Authors
// SPDX-License-Identifier: Apache-2.0

package synth

import "github.com/strata-foundation/strata/lib/typesys"

// modifierMetadata is the type of the "metadata" modifier property: a
// described object open to arbitrary extra metadata keys. Metadata is
// compile-time data throughout, so the additional properties carry
// Constant too.
var modifierMetadata = typesys.NewOpenObject("parameterModifierMetadata",
	[]typesys.Property{
		{Name: "description", Type: typesys.String, Flags: typesys.FlagConstant},
	},
	typesys.Any, typesys.FlagConstant)

// ParameterModifierType builds the closed object type describing the
// legal modifier properties for a parameter of the given declared
// type. allowedValues is the element type of the "allowed" constraint
// and the type of "default".
//
// Which modifiers appear depends on the canonical declared type;
// [typesys.Any] is a wildcard that includes everything, so a
// parameter whose real type was lost to an upstream parse error still
// checks without spurious modifier diagnostics.
func ParameterModifierType(declared, allowedValues typesys.Type) *typesys.ObjectType {
	wildcard := typesys.IsAny(declared)
	isString := typesys.IsCanonical(declared, typesys.KindString)
	isInt := typesys.IsCanonical(declared, typesys.KindInt)
	isObject := typesys.Equal(declared, typesys.Object)
	_, isArray := declared.(*typesys.ArrayType)

	properties := make([]typesys.Property, 0, 9)

	if isString || isObject || wildcard {
		properties = append(properties, typesys.Property{
			Name: "secure", Type: typesys.Bool, Flags: typesys.FlagConstant,
		})
	}

	// Defaults may be computed expressions, so "default" alone is not
	// Constant.
	properties = append(properties,
		typesys.Property{Name: "default", Type: allowedValues},
		typesys.Property{Name: "allowed", Type: allowedArray(allowedValues), Flags: typesys.FlagConstant},
	)

	if isInt || wildcard {
		properties = append(properties,
			typesys.Property{Name: "minValue", Type: typesys.Int, Flags: typesys.FlagConstant},
			typesys.Property{Name: "maxValue", Type: typesys.Int, Flags: typesys.FlagConstant},
		)
	}

	if isString || isArray || wildcard {
		properties = append(properties,
			typesys.Property{Name: "minLength", Type: typesys.Int, Flags: typesys.FlagConstant},
			typesys.Property{Name: "maxLength", Type: typesys.Int, Flags: typesys.FlagConstant},
		)
	}

	properties = append(properties, typesys.Property{
		Name: "metadata", Type: modifierMetadata, Flags: typesys.FlagConstant,
	})

	return typesys.NewObject("parameterModifier<"+declared.Name()+">", properties)
}

// allowedArray returns the type of the "allowed" modifier: the
// allowed-values type itself when it is already an array type, else a
// single-level array of it. Never double-wraps.
func allowedArray(allowedValues typesys.Type) typesys.Type {
	switch allowedValues.(type) {
	case *typesys.ArrayType, *typesys.TypedArrayType:
		return allowedValues
	}
	return typesys.NewTypedArray(allowedValues)
}
