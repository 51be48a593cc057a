// Copyright 2026 The Strata Authors
// SPDX-License-Identifier: Apache-2.0

package typesys

// PrimitiveKind identifies one of the scalar primitive types of the
// language.
type PrimitiveKind uint8

const (
	// KindString is the string primitive.
	KindString PrimitiveKind = iota
	// KindInt is the integer primitive.
	KindInt
	// KindBool is the boolean primitive.
	KindBool
	// KindNull is the null primitive (the type of the null literal).
	KindNull
)

// String returns the declaration-level name of the kind ("string",
// "int", "bool", "null").
func (k PrimitiveKind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindBool:
		return "bool"
	case KindNull:
		return "null"
	}
	return "unknown"
}

// ValidationMode selects how strictly values are checked against a
// primitive type. It is part of the primitive's tag: two primitives
// with the same kind but different validation modes are distinct types
// that happen to share a display name.
type ValidationMode uint8

const (
	// ValidationDefault is the standard assignability check.
	ValidationDefault ValidationMode = iota

	// ValidationLoose relaxes assignability for contexts that coerce
	// values to string at evaluation time (interpolation segments,
	// object keys). [LooseString] is the only loose singleton.
	ValidationLoose
)

// PrimitiveType is a scalar primitive ("string", "int", "bool",
// "null"). The canonical instances are the package singletons
// ([String], [LooseString], [Int], [Bool], [Null]); code that needs
// "exactly the canonical X" semantics must use [IsCanonical], which
// compares the (Kind, Validation) tag pair and therefore rejects
// validation variants.
type PrimitiveType struct {
	// Kind is the primitive kind tag.
	Kind PrimitiveKind

	// Validation is the validation-mode tag.
	Validation ValidationMode
}

// Name returns the kind's display name. Validation variants share the
// display name of their default-validation counterpart: a loose string
// still prints as "string".
func (p *PrimitiveType) Name() string { return p.Kind.String() }

func (*PrimitiveType) isType() {}

// Canonical primitive singletons. Shared by reference process-wide;
// never mutated.
var (
	// String is the canonical string type.
	String = &PrimitiveType{Kind: KindString}

	// LooseString is the string type with loose validation, used for
	// positions whose value is coerced to string at evaluation time.
	// It shares the "string" display name but is a distinct type:
	// IsCanonical(LooseString, KindString) is false.
	LooseString = &PrimitiveType{Kind: KindString, Validation: ValidationLoose}

	// Int is the canonical integer type.
	Int = &PrimitiveType{Kind: KindInt}

	// Bool is the canonical boolean type.
	Bool = &PrimitiveType{Kind: KindBool}

	// Null is the canonical null type.
	Null = &PrimitiveType{Kind: KindNull}
)

// IsCanonical reports whether t is the canonical default-validation
// primitive of the given kind. The check is a tag comparison, not a
// pointer comparison, so independently constructed primitives with the
// canonical tag pair also match — and validation variants such as
// [LooseString] never do.
func IsCanonical(t Type, kind PrimitiveKind) bool {
	p, ok := t.(*PrimitiveType)
	return ok && p.Kind == kind && p.Validation == ValidationDefault
}
