// Copyright 2026 The Strata Authors
// SPDX-License-Identifier: Apache-2.0

package syntax

import "slices"

// MergeProperty returns node with value set under name, without
// mutating node. A nil node yields a fresh single-property object.
// Otherwise the first property whose key text equals name is
// replaced in place (same index): when both the existing value and
// the new value are object literals the replacement is their
// [DeepMerge], anything else is replaced wholesale. With no matching
// property, the new property is appended at the end.
//
// The result is a new object; unchanged properties and subtrees are
// shared with the input.
func MergeProperty(node *ObjectNode, name string, value Node) *ObjectNode {
	if node == nil {
		return NewObject([]*PropertyNode{NewProperty(name, value)})
	}

	properties := slices.Clone(node.properties)
	index := slices.IndexFunc(properties, func(property *PropertyNode) bool {
		text, ok := property.KeyText()
		return ok && text == name
	})
	if index < 0 {
		return NewObject(append(properties, NewProperty(name, value)))
	}

	merged := value
	if existing, ok := properties[index].value.(*ObjectNode); ok {
		if addition, ok := value.(*ObjectNode); ok {
			merged = DeepMerge(existing, addition)
		}
	}
	properties[index] = NewProperty(name, merged)
	return NewObject(properties)
}

// DeepMerge folds target's properties into source one at a time via
// [MergeProperty], in target's declaration order: source-only keys
// keep their positions, keys present in both are overridden (or
// recursively merged when both values are objects), and target-only
// keys are appended. Keyless target properties are skipped. A nil
// source returns target unchanged.
func DeepMerge(source, target *ObjectNode) *ObjectNode {
	if source == nil {
		return target
	}
	if target == nil {
		return source
	}

	merged := source
	for _, property := range target.properties {
		name, ok := property.KeyText()
		if !ok {
			continue
		}
		merged = MergeProperty(merged, name, property.value)
	}
	return merged
}
