// Copyright 2026 The Strata Authors
// SPDX-License-Identifier: Apache-2.0

package syntax

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/tidwall/jsonc"
)

// Parse decodes a JSONC document whose top-level value is an object
// literal. This is the usual entry point: template fragments and
// default-injection overlays are object-shaped.
func Parse(data []byte) (*ObjectNode, error) {
	node, err := ParseValue(data)
	if err != nil {
		return nil, err
	}
	object, ok := node.(*ObjectNode)
	if !ok {
		return nil, fmt.Errorf("top-level value is %s, want an object", describeNode(node))
	}
	return object, nil
}

// ParseValue decodes a JSONC document holding any single template
// value. Comments and trailing commas are stripped first; the
// replacement preserves byte offsets, so node spans refer to the
// original input.
func ParseValue(data []byte) (Node, error) {
	stripped := jsonc.ToJSON(data)

	decoder := json.NewDecoder(bytes.NewReader(stripped))
	decoder.UseNumber()

	node, err := decodeValue(decoder)
	if err != nil {
		return nil, fmt.Errorf("parsing template value: %w", err)
	}

	// A document holds exactly one value.
	if _, err := decoder.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("trailing content after value at offset %d", decoder.InputOffset())
	}
	return node, nil
}

func decodeValue(decoder *json.Decoder) (Node, error) {
	start := decoder.InputOffset()
	token, err := decoder.Token()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("unexpected end of input")
		}
		return nil, err
	}

	switch value := token.(type) {
	case json.Delim:
		switch value {
		case '{':
			return decodeObject(decoder, start)
		case '[':
			return decodeArray(decoder, start)
		}
		// Token() balances delimiters itself, so a closing delimiter
		// can never start a value.
		return nil, fmt.Errorf("unexpected %q at offset %d", value.String(), decoder.InputOffset())
	case string:
		return stringValueNode(value, Span{Start: start, End: decoder.InputOffset()}), nil
	case json.Number:
		integer, err := strconv.ParseInt(value.String(), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("unsupported non-integer number %s at offset %d", value, decoder.InputOffset())
		}
		return &IntNode{span: Span{Start: start, End: decoder.InputOffset()}, value: integer}, nil
	case bool:
		return &BoolNode{span: Span{Start: start, End: decoder.InputOffset()}, value: value}, nil
	case nil:
		return &NullNode{span: Span{Start: start, End: decoder.InputOffset()}}, nil
	default:
		return nil, fmt.Errorf("unsupported token %v at offset %d", token, decoder.InputOffset())
	}
}

func decodeObject(decoder *json.Decoder, start int64) (*ObjectNode, error) {
	var properties []*PropertyNode
	for decoder.More() {
		keyStart := decoder.InputOffset()
		token, err := decoder.Token()
		if err != nil {
			return nil, err
		}
		text, ok := token.(string)
		if !ok {
			return nil, fmt.Errorf("object key is %T at offset %d", token, decoder.InputOffset())
		}
		key := stringValueNode(text, Span{Start: keyStart, End: decoder.InputOffset()})

		value, err := decodeValue(decoder)
		if err != nil {
			return nil, err
		}
		properties = append(properties, &PropertyNode{
			span:  Span{Start: keyStart, End: value.Span().End},
			key:   key,
			value: value,
		})
	}

	// Consume the closing brace.
	if _, err := decoder.Token(); err != nil {
		return nil, err
	}
	return &ObjectNode{
		span:       Span{Start: start, End: decoder.InputOffset()},
		properties: properties,
	}, nil
}

func decodeArray(decoder *json.Decoder, start int64) (*ArrayNode, error) {
	var items []Node
	for decoder.More() {
		item, err := decodeValue(decoder)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	// Consume the closing bracket.
	if _, err := decoder.Token(); err != nil {
		return nil, err
	}
	return &ArrayNode{
		span:  Span{Start: start, End: decoder.InputOffset()},
		items: items,
	}, nil
}

// stringValueNode applies the expression convention to a decoded
// string: "[...]" is an expression placeholder, a leading "[[" escapes
// to a literal bracket, anything else is a plain string.
func stringValueNode(value string, span Span) Node {
	if strings.HasPrefix(value, "[[") {
		return &StringNode{span: span, value: value[1:]}
	}
	if strings.HasPrefix(value, "[") && strings.HasSuffix(value, "]") {
		return &ExpressionNode{span: span, text: value}
	}
	return &StringNode{span: span, value: value}
}

// describeNode names a node variant for error messages.
func describeNode(node Node) string {
	switch node.(type) {
	case *ObjectNode:
		return "an object"
	case *ArrayNode:
		return "an array"
	case *StringNode:
		return "a string"
	case *IntNode:
		return "an integer"
	case *BoolNode:
		return "a boolean"
	case *NullNode:
		return "null"
	case *ExpressionNode:
		return "an expression"
	default:
		return fmt.Sprintf("%T", node)
	}
}
