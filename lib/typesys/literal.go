// Copyright 2026 The Strata Authors
// SPDX-License-Identifier: Apache-2.0

package typesys

// StringLiteralType is a type with exactly one valid value: the given
// literal string. Resource discriminant fields (the `type` and
// `apiVersion` properties of a resource body) use string literal types
// so the checker can pin them to the declared reference.
type StringLiteralType struct {
	value string
}

// NewStringLiteral returns the type whose only valid value is value.
func NewStringLiteral(value string) *StringLiteralType {
	return &StringLiteralType{value: value}
}

// Name returns the literal in language quoting (e.g. "'2024-06-01'").
func (t *StringLiteralType) Name() string { return "'" + t.value + "'" }

// Value returns the literal string value.
func (t *StringLiteralType) Value() string { return t.value }

func (*StringLiteralType) isType() {}
