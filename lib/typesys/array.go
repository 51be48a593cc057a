// Copyright 2026 The Strata Authors
// SPDX-License-Identifier: Apache-2.0

package typesys

// ArrayType is the untyped array supertype: any array value conforms,
// whatever its element types. Use the [Array] singleton; the variant
// has no state.
type ArrayType struct{}

// Array is the canonical untyped array type.
var Array = &ArrayType{}

// Name returns "array".
func (*ArrayType) Name() string { return "array" }

func (*ArrayType) isType() {}

// TypedArrayType is an array whose elements must conform to a single
// item type. Nesting is unrestricted: the item type may itself be a
// union, another typed array, or any other variant.
type TypedArrayType struct {
	item Type
}

// NewTypedArray returns the array type with the given item type.
// Panics if item is nil (programming error).
func NewTypedArray(item Type) *TypedArrayType {
	if item == nil {
		panic("typesys: nil item type for typed array")
	}
	return &TypedArrayType{item: item}
}

// Name returns the item type's name suffixed with "[]" (e.g.
// "string[]").
func (t *TypedArrayType) Name() string { return t.item.Name() + "[]" }

// Item returns the element type.
func (t *TypedArrayType) Item() Type { return t.item }

func (*TypedArrayType) isType() {}
