// Copyright 2026 The Strata Authors
// SPDX-License-Identifier: Apache-2.0

package merge

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeDocument drops a document into a temp dir and returns its path.
func writeDocument(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestRunMergeOverlays(t *testing.T) {
	dir := t.TempDir()
	base := writeDocument(t, dir, "base.jsonc", `{
  // defaults for every environment
  "name": "web",
  "tags": {"team": "core", "env": "dev"},
  "replicas": 1,
}`)
	overlay := writeDocument(t, dir, "production.jsonc", `{
  "tags": {"env": "prod"},
  "replicas": 3
}`)

	var output bytes.Buffer
	if err := runMerge(mergeParams{}, []string{base, overlay}, &output); err != nil {
		t.Fatalf("runMerge: %v", err)
	}

	want := `{
  "name": "web",
  "tags": {
    "team": "core",
    "env": "prod"
  },
  "replicas": 3
}
`
	if got := output.String(); got != want {
		t.Errorf("merged output:\n%swant:\n%s", got, want)
	}
}

func TestRunMergeSingleDocumentNormalizes(t *testing.T) {
	dir := t.TempDir()
	input := writeDocument(t, dir, "config.jsonc", `{
  /* block comment */
  "zone": "1", // trailing comment
  "count": 2,
}`)

	var output bytes.Buffer
	if err := runMerge(mergeParams{}, []string{input}, &output); err != nil {
		t.Fatalf("runMerge: %v", err)
	}

	want := `{
  "zone": "1",
  "count": 2
}
`
	if got := output.String(); got != want {
		t.Errorf("normalized output:\n%swant:\n%s", got, want)
	}
}

func TestRunMergeCompact(t *testing.T) {
	dir := t.TempDir()
	base := writeDocument(t, dir, "base.jsonc", `{"a": 1, "b": {"c": true}}`)
	overlay := writeDocument(t, dir, "overlay.jsonc", `{"b": {"d": null}}`)

	var output bytes.Buffer
	if err := runMerge(mergeParams{Compact: true}, []string{base, overlay}, &output); err != nil {
		t.Fatalf("runMerge: %v", err)
	}

	want := `{"a":1,"b":{"c":true,"d":null}}` + "\n"
	if got := output.String(); got != want {
		t.Errorf("compact output = %q, want %q", got, want)
	}
}

func TestRunMergeWritesOutputFile(t *testing.T) {
	dir := t.TempDir()
	base := writeDocument(t, dir, "base.jsonc", `{"a": 1}`)
	outPath := filepath.Join(dir, "merged.json")

	var output bytes.Buffer
	params := mergeParams{Compact: true, Output: outPath}
	if err := runMerge(params, []string{base}, &output); err != nil {
		t.Fatalf("runMerge: %v", err)
	}

	if output.Len() != 0 {
		t.Errorf("stdout not empty with --output: %q", output.String())
	}
	written, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("read output file: %v", err)
	}
	if got, want := string(written), `{"a":1}`+"\n"; got != want {
		t.Errorf("output file = %q, want %q", got, want)
	}
}

func TestRunMergeErrors(t *testing.T) {
	dir := t.TempDir()
	badSyntax := writeDocument(t, dir, "bad.jsonc", `{"a": 1.5}`)
	notObject := writeDocument(t, dir, "array.jsonc", `[1, 2]`)

	tests := []struct {
		name string
		path string
		want string
	}{
		{"missing file", filepath.Join(dir, "absent.jsonc"), "read"},
		{"parse failure", badSyntax, "parse"},
		{"non-object document", notObject, "parse"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var output bytes.Buffer
			err := runMerge(mergeParams{}, []string{test.path}, &output)
			if err == nil {
				t.Fatal("runMerge = nil, want error")
			}
			if !strings.Contains(err.Error(), test.want) {
				t.Errorf("error = %q, want substring %q", err.Error(), test.want)
			}
			if !strings.Contains(err.Error(), filepath.Base(test.path)) {
				t.Errorf("error = %q, should name the failing file", err.Error())
			}
		})
	}
}
