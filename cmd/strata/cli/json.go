// Copyright 2026 The Strata Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"encoding/json"
	"os"
	"reflect"
)

// JSONOutput adds --json support to a command's parameter struct by
// embedding. The embedded field contributes the flag itself (via
// [BindFlags] struct tag processing) and the [JSONOutput.EmitJSON]
// method for conditional machine output:
//
//	type resourceParams struct {
//	    cli.JSONOutput
//	    Fingerprint bool `flag:"fingerprint" desc:"include the type fingerprint"`
//	}
//
//	// In Run:
//	if done, err := params.EmitJSON(result); done {
//	    return err
//	}
//	// ... text formatting ...
type JSONOutput struct {
	OutputJSON bool `flag:"json" desc:"output as JSON"`
}

// EmitJSON writes result to stdout as indented JSON when --json is
// set. Returns (true, err) when JSON output was requested and the
// caller is done, or (false, nil) when the caller should proceed with
// text formatting. Nil slices are normalized to empty slices first so
// the output is never a bare null.
func (j *JSONOutput) EmitJSON(result any) (bool, error) {
	if !j.OutputJSON {
		return false, nil
	}
	return true, WriteJSON(normalizeNilSlice(result))
}

// WriteJSON writes value to stdout as indented JSON.
func WriteJSON(value any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(value)
}

// normalizeNilSlice returns an empty slice of the same type when value
// is a nil slice, so serialization produces [] instead of null. Every
// other value passes through unchanged.
func normalizeNilSlice(value any) any {
	v := reflect.ValueOf(value)
	if v.Kind() == reflect.Slice && v.IsNil() {
		return reflect.MakeSlice(v.Type(), 0, 0).Interface()
	}
	return value
}
