// Copyright 2026 The Strata Authors
// SPDX-License-Identifier: Apache-2.0

package syntax

// PropertyMap returns a name-to-property view of an object literal.
// When the same key appears more than once, the first occurrence wins
// and later duplicates are absent from the map (they remain in the
// node's property list; the map is a derived view, not a mutation).
// Keyless properties are skipped. A nil node yields an empty map.
func PropertyMap(node *ObjectNode) map[string]*PropertyNode {
	if node == nil {
		return map[string]*PropertyNode{}
	}
	result := make(map[string]*PropertyNode, len(node.properties))
	for _, property := range node.properties {
		name, ok := property.KeyText()
		if !ok {
			continue
		}
		if _, seen := result[name]; seen {
			continue
		}
		result[name] = property
	}
	return result
}

// PropertyValueMap returns a name-to-value view of an object literal
// with the same first-occurrence-wins and keyless-skipping behavior
// as [PropertyMap].
func PropertyValueMap(node *ObjectNode) map[string]Node {
	properties := PropertyMap(node)
	result := make(map[string]Node, len(properties))
	for name, property := range properties {
		result[name] = property.value
	}
	return result
}

// FindUniqueProperty returns the property whose key text equals name,
// but only when exactly one property matches. Zero matches and two or
// more matches both report false: an ambiguous lookup is a signal for
// the caller to raise a duplicate-property diagnostic rather than
// guess. Callers that want the first occurrence regardless use
// [PropertyMap].
func FindUniqueProperty(node *ObjectNode, name string) (*PropertyNode, bool) {
	if node == nil {
		return nil, false
	}
	var found *PropertyNode
	for _, property := range node.properties {
		text, ok := property.KeyText()
		if !ok || text != name {
			continue
		}
		if found != nil {
			return nil, false
		}
		found = property
	}
	if found == nil {
		return nil, false
	}
	return found, true
}
