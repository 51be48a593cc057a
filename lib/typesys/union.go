// Copyright 2026 The Strata Authors
// SPDX-License-Identifier: Apache-2.0

package typesys

import "strings"

// UnionType is a value that may take any one of several member types.
// Build unions with [NewUnion]; the zero members case is the empty
// union, which no value inhabits.
type UnionType struct {
	members []Type
}

// NewUnion returns the union of the given types. Members that are
// themselves unions are flattened into the result, duplicates (by
// structural equality) are dropped keeping the first appearance, and a
// union left with a single member collapses to that member. An empty
// member list yields the uninhabited union.
func NewUnion(members ...Type) Type {
	flat := make([]Type, 0, len(members))
	for _, member := range members {
		if member == nil {
			panic("typesys: nil member in union")
		}
		if union, ok := member.(*UnionType); ok {
			flat = append(flat, union.members...)
			continue
		}
		flat = append(flat, member)
	}

	distinct := make([]Type, 0, len(flat))
	for _, member := range flat {
		seen := false
		for _, kept := range distinct {
			if Equal(kept, member) {
				seen = true
				break
			}
		}
		if !seen {
			distinct = append(distinct, member)
		}
	}

	if len(distinct) == 1 {
		return distinct[0]
	}
	return &UnionType{members: distinct}
}

// Name joins the member names with " | " in first-appearance order.
// The empty union is named "never".
func (t *UnionType) Name() string {
	if len(t.members) == 0 {
		return "never"
	}
	names := make([]string, len(t.members))
	for i, member := range t.members {
		names[i] = member.Name()
	}
	return strings.Join(names, " | ")
}

// Members returns the member types in first-appearance order. Callers
// must not modify the returned slice.
func (t *UnionType) Members() []Type { return t.members }

func (*UnionType) isType() {}
