// Copyright 2026 The Strata Authors
// SPDX-License-Identifier: Apache-2.0

package types

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/strata-foundation/strata/cmd/strata/cli"
	"github.com/strata-foundation/strata/lib/synth"
	"github.com/strata-foundation/strata/lib/typesys"
)

type moduleTypeParams struct {
	cli.JSONOutput
	Interface   string `flag:"interface,i" desc:"module interface description (YAML)"`
	Fingerprint bool   `flag:"fingerprint" desc:"include the canonical type fingerprint"`
	Encoding    bool   `flag:"encoding" desc:"include the canonical encoding in CBOR diagnostic notation"`
}

// interfaceDoc is the YAML shape of a module interface description.
type interfaceDoc struct {
	Name            string              `yaml:"name"`
	Scope           string              `yaml:"scope"`
	ContainingScope string              `yaml:"containingScope"`
	Params          []interfaceProperty `yaml:"params"`
	Outputs         []interfaceProperty `yaml:"outputs"`
}

type interfaceProperty struct {
	Name     string `yaml:"name"`
	Type     string `yaml:"type"`
	Required bool   `yaml:"required"`
	Default  any    `yaml:"default"`
}

// moduleInterface is the resolved form of an interface description.
type moduleInterface struct {
	name            string
	moduleScope     typesys.Scope
	containingScope typesys.Scope
	params          []typesys.Property
	outputs         []typesys.Property
}

// ModuleTypeCommand returns the "module-type" command.
func ModuleTypeCommand() *cli.Command {
	var params moduleTypeParams

	return &cli.Command{
		Name:    "module-type",
		Summary: "Synthesize a module type from an interface description",
		Description: `Read a module interface description from YAML and print the
synthesized module body type: the deployment name, the scope
reference, the params and outputs blocks, and the dependency list.

The interface file names the module, its deployment scope, and
optionally the containing scope (defaults to the deployment scope;
when the two differ, the scope property becomes required):

	name: network-stack
	scope: resourceGroup
	containingScope: subscription
	params:
	  - name: location
	    type: string
	    required: true
	  - name: tags
	    type: object
	    default: {}
	outputs:
	  - name: vnetId
	    type: string

A parameter is either required or carries a default, not both. The
params block itself is required only when at least one parameter is.`,
		Usage: "strata module-type --interface <file.yaml> [flags]",
		Examples: []cli.Example{
			{
				Description: "Module type for a stack interface",
				Command:     "strata module-type --interface stack.yaml",
			},
			{
				Description: "Machine output with the canonical fingerprint",
				Command:     "strata module-type --interface stack.yaml --json --fingerprint",
			},
		},
		Params: func() any { return &params },
		Run: func(args []string) error {
			if len(args) > 0 {
				return cli.Usagef("unexpected argument %q", args[0])
			}
			if params.Interface == "" {
				return cli.Usagef("--interface is required")
			}

			iface, err := loadInterface(params.Interface)
			if err != nil {
				return err
			}

			module := synth.ModuleType(iface.params, iface.outputs,
				iface.moduleScope, iface.containingScope, iface.name)

			result := resultForObject(module.Body().(*typesys.ObjectType))
			result.Scope = module.Scope().String()
			if params.Fingerprint {
				result.Fingerprint = fingerprintHex(module)
			}
			if params.Encoding {
				result.Encoding, err = encodingDiagnostic(module)
				if err != nil {
					return err
				}
			}

			if done, err := params.EmitJSON(result); done {
				return err
			}
			printTable(os.Stdout, result)
			return nil
		},
	}
}

// loadInterface reads and resolves a module interface description.
func loadInterface(path string) (moduleInterface, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return moduleInterface{}, fmt.Errorf("read interface: %w", err)
	}
	var doc interfaceDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return moduleInterface{}, fmt.Errorf("parse interface %s: %w", path, err)
	}
	iface, err := resolveInterface(doc)
	if err != nil {
		return moduleInterface{}, fmt.Errorf("interface %s: %w", path, err)
	}
	return iface, nil
}

// resolveInterface checks an interface document and resolves its type
// and scope names. All issues are reported at once.
func resolveInterface(doc interfaceDoc) (moduleInterface, error) {
	var issues []error

	if doc.Name == "" {
		issues = append(issues, errors.New("name is required"))
	}

	var moduleScope, containingScope typesys.Scope
	if doc.Scope == "" {
		issues = append(issues, errors.New("scope is required"))
	} else if parsed, err := typesys.ParseScope(doc.Scope); err != nil {
		issues = append(issues, fmt.Errorf("scope: %w", err))
	} else {
		moduleScope = parsed
	}
	if doc.ContainingScope == "" {
		containingScope = moduleScope
	} else if parsed, err := typesys.ParseScope(doc.ContainingScope); err != nil {
		issues = append(issues, fmt.Errorf("containingScope: %w", err))
	} else {
		containingScope = parsed
	}

	params := make([]typesys.Property, 0, len(doc.Params))
	for _, param := range doc.Params {
		property, err := resolveParam(param)
		if err != nil {
			issues = append(issues, err)
			continue
		}
		params = append(params, property)
	}

	outputs := make([]typesys.Property, 0, len(doc.Outputs))
	for _, output := range doc.Outputs {
		if output.Name == "" {
			issues = append(issues, errors.New("output with no name"))
			continue
		}
		declared, ok := lookupType(output.Type)
		if !ok {
			issues = append(issues, fmt.Errorf("output %q: unknown type %q", output.Name, output.Type))
			continue
		}
		outputs = append(outputs, typesys.Property{
			Name: output.Name, Type: declared, Flags: typesys.FlagReadOnly,
		})
	}

	if len(issues) > 0 {
		return moduleInterface{}, errors.Join(issues...)
	}

	return moduleInterface{
		name:            doc.Name,
		moduleScope:     moduleScope,
		containingScope: containingScope,
		params:          params,
		outputs:         outputs,
	}, nil
}

func resolveParam(param interfaceProperty) (typesys.Property, error) {
	if param.Name == "" {
		return typesys.Property{}, errors.New("param with no name")
	}
	declared, ok := lookupType(param.Type)
	if !ok {
		return typesys.Property{}, fmt.Errorf("param %q: unknown type %q", param.Name, param.Type)
	}
	if param.Required && param.Default != nil {
		return typesys.Property{}, fmt.Errorf("param %q: required and default are mutually exclusive", param.Name)
	}

	flags := typesys.FlagNone
	if param.Required {
		flags = typesys.FlagRequired
	}
	return typesys.Property{Name: param.Name, Type: declared, Flags: flags}, nil
}
