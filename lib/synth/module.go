// Copyright 2026 The Strata Authors
// SPDX-License-Identifier: Apache-2.0

package synth

import "github.com/strata-foundation/strata/lib/typesys"

// ModuleType builds the type of a module declaration from its
// parameter and output interfaces. moduleScope is where the module
// deploys; containingScope is where the declaration itself appears.
//
// The params block is required only when at least one parameter is
// required, so a module whose parameters all have defaults can be
// instantiated without one. The scope property is required only when
// the module deploys somewhere other than its containing scope —
// when they match, scope is safely inferred.
func ModuleType(params, outputs []typesys.Property, moduleScope, containingScope typesys.Scope, name string) *typesys.ModuleType {
	paramsFlags := typesys.FlagNone
	for _, parameter := range params {
		if parameter.Flags.Has(typesys.FlagRequired) {
			paramsFlags = typesys.FlagRequired
			break
		}
	}

	scopeFlags := typesys.FlagWriteOnly | typesys.FlagDeployTimeConstant | typesys.FlagDisallowAny
	if moduleScope != containingScope {
		scopeFlags |= typesys.FlagRequired
	}

	body := typesys.NewObject(name, []typesys.Property{
		{Name: "name", Type: typesys.String, Flags: typesys.FlagRequired | typesys.FlagDeployTimeConstant},
		{Name: "scope", Type: typesys.NewScopeReference(moduleScope), Flags: scopeFlags},
		{Name: "params", Type: typesys.NewObject("params", params), Flags: paramsFlags},
		{Name: "outputs", Type: typesys.NewObject("outputs", outputs), Flags: typesys.FlagReadOnly},
		{Name: "dependsOn", Type: dependsOnType, Flags: typesys.FlagWriteOnly | typesys.FlagDisallowAny},
	})

	return typesys.NewModule(name, moduleScope, body)
}
