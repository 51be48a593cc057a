// Copyright 2026 The Strata Authors
// SPDX-License-Identifier: Apache-2.0

package typesys

// ModuleType is the type of a module declaration: a reusable
// deployment unit with a parameter/output interface. The body is the
// object type a module declaration's value must satisfy, and the scope
// records where the module itself deploys.
type ModuleType struct {
	name  string
	scope Scope
	body  Type
}

// NewModule returns a module type with the given display name,
// deployment scope, and body type.
func NewModule(name string, scope Scope, body Type) *ModuleType {
	if body == nil {
		panic("typesys: nil body type for module")
	}
	return &ModuleType{name: name, scope: scope, body: body}
}

// Name returns the module's display name.
func (t *ModuleType) Name() string { return t.name }

// Scope returns the scope at which the module deploys.
func (t *ModuleType) Scope() Scope { return t.scope }

// Body returns the object type a module declaration's value must
// satisfy.
func (t *ModuleType) Body() Type { return t.body }

func (*ModuleType) isType() {}
