// Copyright 2026 The Strata Authors
// SPDX-License-Identifier: Apache-2.0

package typesys

import "strings"

// PropertyFlags is a bitset of per-property modifiers. The bits are
// independent and combined with bitwise OR; no combination is rejected
// here — whether a combination makes sense for a given property is the
// synthesis functions' decision, not a representation-level rule.
// ReadOnly and WriteOnly are not mutually exclusive at this level; a
// property with neither is ordinary read-write.
type PropertyFlags uint8

const (
	// FlagRequired marks a property the author must assign.
	FlagRequired PropertyFlags = 1 << iota

	// FlagConstant restricts the property's value to compile-time
	// constants (no runtime expressions).
	FlagConstant

	// FlagReadOnly marks a property the author may read but not
	// assign.
	FlagReadOnly

	// FlagWriteOnly marks a property the author may assign but not
	// read.
	FlagWriteOnly

	// FlagDeployTimeConstant marks a property whose value is known
	// before deployment begins and never needs runtime inlining.
	FlagDeployTimeConstant

	// FlagDisallowAny rejects values of the universal any type even
	// where the structure would otherwise permit them. Used where an
	// untyped value would defeat the point of the property (resource
	// dependency lists must name real resources).
	FlagDisallowAny

	// FlagSystemGenerated marks a property whose value the platform
	// supplies (a resource's id, type, apiVersion). Present in the
	// checked type, excluded from template emission; see
	// [ObjectType.EmittedProperties].
	FlagSystemGenerated
)

// FlagNone is the empty flag set.
const FlagNone PropertyFlags = 0

// Has reports whether every bit of flag is set in f.
func (f PropertyFlags) Has(flag PropertyFlags) bool { return f&flag == flag }

// flagOrder fixes the stringification order of the bits, independent of
// how a caller assembled the set.
var flagOrder = []struct {
	flag PropertyFlags
	name string
}{
	{FlagRequired, "required"},
	{FlagConstant, "constant"},
	{FlagReadOnly, "readOnly"},
	{FlagWriteOnly, "writeOnly"},
	{FlagDeployTimeConstant, "deployTimeConstant"},
	{FlagDisallowAny, "disallowAny"},
	{FlagSystemGenerated, "systemGenerated"},
}

// String renders the set bits in fixed declaration order, joined with
// " | ", or "none" for the empty set.
func (f PropertyFlags) String() string {
	if f == FlagNone {
		return "none"
	}
	var names []string
	for _, entry := range flagOrder {
		if f.Has(entry.flag) {
			names = append(names, entry.name)
		}
	}
	return strings.Join(names, " | ")
}
