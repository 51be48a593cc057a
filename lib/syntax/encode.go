// Copyright 2026 The Strata Authors
// SPDX-License-Identifier: Apache-2.0

package syntax

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Format renders a tree as indented JSON (two-space indent, properties
// and items in declaration order, duplicate keys preserved). String
// escaping mirrors [Parse]: literal strings beginning with "[" are
// re-escaped to "[[", and expression placeholders are written
// verbatim, so Format and Parse round-trip.
func Format(node Node) []byte {
	var builder strings.Builder
	writeNode(&builder, node, 0)
	builder.WriteByte('\n')
	return []byte(builder.String())
}

// FormatCompact renders a tree as a single line of JSON with no
// whitespace, with the same escaping and ordering as [Format].
func FormatCompact(node Node) []byte {
	var builder strings.Builder
	writeCompact(&builder, node)
	builder.WriteByte('\n')
	return []byte(builder.String())
}

func writeNode(builder *strings.Builder, node Node, depth int) {
	switch value := node.(type) {
	case *ObjectNode:
		writeObject(builder, value, depth)
	case *ArrayNode:
		writeArray(builder, value, depth)
	case *StringNode:
		text := value.value
		if strings.HasPrefix(text, "[") {
			text = "[" + text
		}
		writeQuoted(builder, text)
	case *IntNode:
		builder.WriteString(strconv.FormatInt(value.value, 10))
	case *BoolNode:
		if value.value {
			builder.WriteString("true")
		} else {
			builder.WriteString("false")
		}
	case *NullNode:
		builder.WriteString("null")
	case *ExpressionNode:
		writeQuoted(builder, value.text)
	}
}

func writeCompact(builder *strings.Builder, node Node) {
	switch value := node.(type) {
	case *ObjectNode:
		builder.WriteByte('{')
		for i, property := range value.properties {
			if i > 0 {
				builder.WriteByte(',')
			}
			writeKey(builder, property.key)
			builder.WriteByte(':')
			writeCompact(builder, property.value)
		}
		builder.WriteByte('}')
	case *ArrayNode:
		builder.WriteByte('[')
		for i, item := range value.items {
			if i > 0 {
				builder.WriteByte(',')
			}
			writeCompact(builder, item)
		}
		builder.WriteByte(']')
	default:
		// Scalars render identically in both modes.
		writeNode(builder, node, 0)
	}
}

func writeObject(builder *strings.Builder, node *ObjectNode, depth int) {
	if len(node.properties) == 0 {
		builder.WriteString("{}")
		return
	}
	builder.WriteString("{\n")
	for i, property := range node.properties {
		writeIndent(builder, depth+1)
		writeKey(builder, property.key)
		builder.WriteString(": ")
		writeNode(builder, property.value, depth+1)
		if i < len(node.properties)-1 {
			builder.WriteByte(',')
		}
		builder.WriteByte('\n')
	}
	writeIndent(builder, depth)
	builder.WriteByte('}')
}

func writeArray(builder *strings.Builder, node *ArrayNode, depth int) {
	if len(node.items) == 0 {
		builder.WriteString("[]")
		return
	}
	builder.WriteString("[\n")
	for i, item := range node.items {
		writeIndent(builder, depth+1)
		writeNode(builder, item, depth+1)
		if i < len(node.items)-1 {
			builder.WriteByte(',')
		}
		builder.WriteByte('\n')
	}
	writeIndent(builder, depth)
	builder.WriteByte(']')
}

// writeKey renders a property key, which is a string or an expression.
func writeKey(builder *strings.Builder, key Node) {
	switch value := key.(type) {
	case *StringNode:
		text := value.value
		if strings.HasPrefix(text, "[") {
			text = "[" + text
		}
		writeQuoted(builder, text)
	case *ExpressionNode:
		writeQuoted(builder, value.text)
	default:
		// Parse and the constructors only ever produce the above.
		writeQuoted(builder, "")
	}
}

func writeIndent(builder *strings.Builder, depth int) {
	for i := 0; i < depth; i++ {
		builder.WriteString("  ")
	}
}

func writeQuoted(builder *strings.Builder, text string) {
	quoted, err := json.Marshal(text)
	if err != nil {
		// json.Marshal never fails for a string value.
		panic("syntax: quoting string: " + err.Error())
	}
	builder.Write(quoted)
}
