// Copyright 2026 The Strata Authors
// SPDX-License-Identifier: Apache-2.0

package typesys

// Type is a Strata type symbol. The implementing variants form a closed
// set — the unexported marker method prevents packages outside typesys
// from adding new ones, so switches over the concrete types can be
// treated as exhaustive.
//
// All variants are immutable after construction. Constructors never
// fail on well-formed input; violating a documented constructor
// invariant (duplicate property names, nil members) is a programming
// error and panics.
type Type interface {
	// Name returns the display name used in diagnostics and CLI
	// output (e.g. "string", "int[]", "'2024-06-01'",
	// "resource | module").
	Name() string

	isType()
}

// AnyType is the universal supertype: every value conforms to it. It
// appears as a declared type only when an upstream parse error leaves
// the real type unknown — synthesis then treats it as a wildcard and
// permits everything. Use the [Any] singleton; the variant has no
// state.
type AnyType struct{}

// Any is the canonical universal supertype.
var Any = &AnyType{}

// Name returns "any".
func (*AnyType) Name() string { return "any" }

func (*AnyType) isType() {}

// IsAny reports whether t is the universal supertype.
func IsAny(t Type) bool {
	_, ok := t.(*AnyType)
	return ok
}
