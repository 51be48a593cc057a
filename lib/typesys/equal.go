// Copyright 2026 The Strata Authors
// SPDX-License-Identifier: Apache-2.0

package typesys

// Equal reports whether two types are structurally equal. Primitives
// compare by kind and validation mode, literals by value, objects by
// name and property set (order-insensitive), typed arrays by item
// type, unions as sets of members, scope references by scope bitset,
// and modules by name, scope, and body. Types of different variants
// are never equal.
func Equal(a, b Type) bool {
	if a == nil || b == nil {
		return a == b
	}
	switch at := a.(type) {
	case *AnyType:
		_, ok := b.(*AnyType)
		return ok
	case *PrimitiveType:
		bt, ok := b.(*PrimitiveType)
		return ok && at.Kind == bt.Kind && at.Validation == bt.Validation
	case *StringLiteralType:
		bt, ok := b.(*StringLiteralType)
		return ok && at.value == bt.value
	case *ArrayType:
		_, ok := b.(*ArrayType)
		return ok
	case *TypedArrayType:
		bt, ok := b.(*TypedArrayType)
		return ok && Equal(at.item, bt.item)
	case *ObjectType:
		bt, ok := b.(*ObjectType)
		return ok && equalObjects(at, bt)
	case *UnionType:
		bt, ok := b.(*UnionType)
		return ok && unionSubset(at, bt) && unionSubset(bt, at)
	case *ScopeReferenceType:
		bt, ok := b.(*ScopeReferenceType)
		return ok && at.scopes == bt.scopes
	case *ModuleType:
		bt, ok := b.(*ModuleType)
		return ok && at.name == bt.name && at.scope == bt.scope && Equal(at.body, bt.body)
	default:
		return false
	}
}

func equalObjects(a, b *ObjectType) bool {
	if a.name != b.name || len(a.properties) != len(b.properties) {
		return false
	}
	for _, prop := range a.properties {
		other, ok := b.Property(prop.Name)
		if !ok || other.Flags != prop.Flags || !Equal(other.Type, prop.Type) {
			return false
		}
	}
	if (a.additional == nil) != (b.additional == nil) {
		return false
	}
	if a.additional != nil {
		if a.additionalFlags != b.additionalFlags || !Equal(a.additional, b.additional) {
			return false
		}
	}
	return true
}

// unionSubset reports whether every member of a has a structurally
// equal member in b.
func unionSubset(a, b *UnionType) bool {
	for _, member := range a.members {
		found := false
		for _, candidate := range b.members {
			if Equal(member, candidate) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
