// Copyright 2026 The Strata Authors
// SPDX-License-Identifier: Apache-2.0

package types

import (
	"bytes"
	"strings"
	"testing"

	"github.com/strata-foundation/strata/lib/typesys"
)

func TestLookupType(t *testing.T) {
	tests := []struct {
		name string
		want typesys.Type
		ok   bool
	}{
		{"string", typesys.String, true},
		{"object", typesys.Object, true},
		{"int", typesys.Int, true},
		{"bool", typesys.Bool, true},
		{"array", typesys.Array, true},
		{"any", typesys.Any, true},
		{"String", nil, false},
		{"number", nil, false},
		{"", nil, false},
	}

	for _, test := range tests {
		got, ok := lookupType(test.name)
		if ok != test.ok {
			t.Errorf("lookupType(%q) ok = %v, want %v", test.name, ok, test.ok)
			continue
		}
		if ok && got != test.want {
			t.Errorf("lookupType(%q) = %v, want %v", test.name, got, test.want)
		}
	}
}

func TestResultForObjectClosed(t *testing.T) {
	object := typesys.NewObject("example", []typesys.Property{
		{Name: "name", Type: typesys.String, Flags: typesys.FlagRequired | typesys.FlagDeployTimeConstant},
		{Name: "count", Type: typesys.Int},
	})

	result := resultForObject(object)

	if result.Name != "example" {
		t.Errorf("Name = %q, want %q", result.Name, "example")
	}
	if result.Additional != nil {
		t.Error("Additional set for a closed object")
	}
	if len(result.Properties) != 2 {
		t.Fatalf("got %d properties, want 2", len(result.Properties))
	}
	first := result.Properties[0]
	if first.Name != "name" || first.Type != "string" {
		t.Errorf("row 0 = %+v, want name/string", first)
	}
	if first.Flags != "required | deployTimeConstant" {
		t.Errorf("row 0 flags = %q, want %q", first.Flags, "required | deployTimeConstant")
	}
	if second := result.Properties[1]; second.Flags != "none" {
		t.Errorf("row 1 flags = %q, want %q", second.Flags, "none")
	}
}

func TestResultForObjectOpen(t *testing.T) {
	object := typesys.NewOpenObject("tags", nil, typesys.String, typesys.FlagNone)

	result := resultForObject(object)

	if len(result.Properties) != 0 {
		t.Errorf("got %d properties, want 0", len(result.Properties))
	}
	if result.Additional == nil {
		t.Fatal("Additional nil for an open object")
	}
	if result.Additional.Name != "*" || result.Additional.Type != "string" {
		t.Errorf("Additional = %+v, want */string", result.Additional)
	}
}

func TestPrintTable(t *testing.T) {
	result := typeResult{
		Name:  "network-stack",
		Scope: "resourceGroup",
		Properties: []propertyRow{
			{Name: "name", Type: "string", Flags: "required | deployTimeConstant"},
			{Name: "params", Type: "params", Flags: "required"},
		},
		Additional:  &propertyRow{Name: "*", Type: "any", Flags: "none"},
		Fingerprint: "00112233",
	}

	var buffer bytes.Buffer
	printTable(&buffer, result)
	output := buffer.String()

	for _, want := range []string{
		"network-stack",
		"scope: resourceGroup",
		"NAME",
		"TYPE",
		"FLAGS",
		"required | deployTimeConstant",
		"params",
		"*",
		"fingerprint: 00112233",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("table output missing %q\n\nFull output:\n%s", want, output)
		}
	}
}

func TestPrintTableOmitsEmptySections(t *testing.T) {
	result := typeResult{
		Name: "parameterModifier<bool>",
		Properties: []propertyRow{
			{Name: "default", Type: "bool", Flags: "none"},
		},
	}

	var buffer bytes.Buffer
	printTable(&buffer, result)
	output := buffer.String()

	if strings.Contains(output, "scope:") {
		t.Errorf("table output has scope line without a scope:\n%s", output)
	}
	if strings.Contains(output, "fingerprint:") {
		t.Errorf("table output has fingerprint line without a fingerprint:\n%s", output)
	}
}

func TestFingerprintHexIsStable(t *testing.T) {
	first := fingerprintHex(typesys.String)
	second := fingerprintHex(typesys.String)
	if first != second {
		t.Errorf("fingerprint not stable: %s vs %s", first, second)
	}
	if len(first) != 64 {
		t.Errorf("fingerprint hex length = %d, want 64", len(first))
	}
	if first == fingerprintHex(typesys.Int) {
		t.Error("distinct types share a fingerprint")
	}
}

func TestEncodingDiagnostic(t *testing.T) {
	diagnostic, err := encodingDiagnostic(typesys.String)
	if err != nil {
		t.Fatalf("encodingDiagnostic(string) error: %v", err)
	}
	// Diagnostic notation of the canonical encoding is a CBOR map with
	// the kind discriminator.
	for _, want := range []string{`"kind"`, `"string"`} {
		if !strings.Contains(diagnostic, want) {
			t.Errorf("diagnostic %q missing %q", diagnostic, want)
		}
	}

	object := typesys.NewObject("body", []typesys.Property{
		{Name: "name", Type: typesys.String, Flags: typesys.FlagRequired},
	})
	diagnostic, err = encodingDiagnostic(object)
	if err != nil {
		t.Fatalf("encodingDiagnostic(object) error: %v", err)
	}
	for _, want := range []string{`"object"`, `"properties"`, `"body"`} {
		if !strings.Contains(diagnostic, want) {
			t.Errorf("diagnostic %q missing %q", diagnostic, want)
		}
	}
}
