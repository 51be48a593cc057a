// Copyright 2026 The Strata Authors
// SPDX-License-Identifier: Apache-2.0

package typesys

import (
	"fmt"
	"strings"
)

// Scope is a bitset of deployment scopes — the levels of the cloud
// resource hierarchy at which a declaration may be evaluated. A
// declaration is frequently valid at several scopes at once, so the
// bits combine with bitwise OR.
type Scope uint8

const (
	// ScopeResource is the scope of an individual resource (extension
	// resources attach here).
	ScopeResource Scope = 1 << iota

	// ScopeModule is the scope of a nested module body.
	ScopeModule

	// ScopeTenant is the tenant (root directory) scope.
	ScopeTenant

	// ScopeManagementGroup is the management group scope.
	ScopeManagementGroup

	// ScopeSubscription is the subscription scope.
	ScopeSubscription

	// ScopeResourceGroup is the resource group scope.
	ScopeResourceGroup
)

// ScopeNone is the empty scope set.
const ScopeNone Scope = 0

// scopeOrder fixes the canonical description order, independent of how
// the caller assembled the bitset. Descriptions and String always walk
// this table.
var scopeOrder = []struct {
	scope Scope
	name  string
}{
	{ScopeResource, "resource"},
	{ScopeModule, "module"},
	{ScopeTenant, "tenant"},
	{ScopeManagementGroup, "managementGroup"},
	{ScopeSubscription, "subscription"},
	{ScopeResourceGroup, "resourceGroup"},
}

// Has reports whether every bit of scope is set in s.
func (s Scope) Has(scope Scope) bool { return s&scope == scope }

// Descriptions returns the human-readable names of the set bits in
// canonical order (resource, module, tenant, managementGroup,
// subscription, resourceGroup), regardless of how the bits were
// declared or combined. The empty set yields ["none"].
func (s Scope) Descriptions() []string {
	if s == ScopeNone {
		return []string{"none"}
	}
	names := make([]string, 0, len(scopeOrder))
	for _, entry := range scopeOrder {
		if s.Has(entry.scope) {
			names = append(names, entry.name)
		}
	}
	return names
}

// String joins the canonical descriptions with " | " (e.g.
// "resource | module"), or returns "none" for the empty set.
func (s Scope) String() string {
	return strings.Join(s.Descriptions(), " | ")
}

// ParseScope returns the single scope bit named by s, using the same
// names Descriptions produces ("none" yields the empty set). Returns a
// descriptive error listing the accepted names when s is not a scope
// name.
func ParseScope(s string) (Scope, error) {
	if s == "none" {
		return ScopeNone, nil
	}
	for _, entry := range scopeOrder {
		if entry.name == s {
			return entry.scope, nil
		}
	}
	accepted := make([]string, 0, len(scopeOrder)+1)
	accepted = append(accepted, "none")
	for _, entry := range scopeOrder {
		accepted = append(accepted, entry.name)
	}
	return ScopeNone, fmt.Errorf("unknown scope %q (accepted: %s)", s, strings.Join(accepted, ", "))
}

// ScopeReferenceType is the type of a reference to a resource or
// module deployable at one of a set of scopes. The `dependsOn` and
// module `scope` properties use scope references so the checker can
// verify that a referenced declaration is deployable where it is used.
type ScopeReferenceType struct {
	scopes Scope
}

// NewScopeReference returns the reference type for the given scope set.
func NewScopeReference(scopes Scope) *ScopeReferenceType {
	return &ScopeReferenceType{scopes: scopes}
}

// Name returns the canonical scope description (e.g.
// "resource | module"), which doubles as the type's display name.
func (t *ScopeReferenceType) Name() string { return t.scopes.String() }

// Scopes returns the original scope bitset for membership tests.
func (t *ScopeReferenceType) Scopes() Scope { return t.scopes }

func (*ScopeReferenceType) isType() {}
