// Copyright 2026 The Strata Authors
// SPDX-License-Identifier: Apache-2.0

package typesys

// DeclarationType resolves a type name as written in a declaration
// (for example a parameter's declared type) to its canonical type.
// Only the primitive declaration names are resolvable; everything else
// reports false.
func DeclarationType(name string) (Type, bool) {
	switch name {
	case "string":
		return String, true
	case "object":
		return Object, true
	case "int":
		return Int, true
	case "bool":
		return Bool, true
	case "array":
		return Array, true
	default:
		return nil, false
	}
}
