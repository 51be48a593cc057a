// Copyright 2026 The Strata Authors
// SPDX-License-Identifier: Apache-2.0

package syntax

// Span locates a node in the source it was parsed from. Start is the
// input offset at which decoding of the node began (it may precede
// the node's first token by whitespace or separators); End is the
// offset just past the node's final token. Nodes built by
// constructors rather than [Parse] carry the zero span.
type Span struct {
	Start int64
	End   int64
}

// Node is a template value: an object, array, string, integer,
// boolean, null, or expression placeholder. The set of
// implementations is closed.
type Node interface {
	// Span returns the node's location in its source, or the zero
	// span for synthetic nodes.
	Span() Span

	isNode()
}

// ObjectNode is an object literal: an ordered property list that may
// contain duplicate keys (the parser preserves them so the checker
// can report duplicates with positions).
type ObjectNode struct {
	span       Span
	properties []*PropertyNode
}

// NewObject returns a synthetic object literal with the given
// properties. The slice is owned by the node afterwards.
func NewObject(properties []*PropertyNode) *ObjectNode {
	return &ObjectNode{properties: properties}
}

// Properties returns the property list in declaration order. Callers
// must not modify the returned slice.
func (n *ObjectNode) Properties() []*PropertyNode { return n.properties }

func (n *ObjectNode) Span() Span { return n.span }
func (*ObjectNode) isNode()      {}

// PropertyNode is one key/value entry of an object literal. The key
// is a [StringNode] for ordinary keys or an [ExpressionNode] when the
// key is computed.
type PropertyNode struct {
	span  Span
	key   Node
	value Node
}

// NewProperty returns a synthetic property with a plain string key.
func NewProperty(name string, value Node) *PropertyNode {
	return &PropertyNode{key: &StringNode{value: name}, value: value}
}

// Key returns the key node.
func (n *PropertyNode) Key() Node { return n.key }

// Value returns the value node.
func (n *PropertyNode) Value() Node { return n.value }

// KeyText returns the statically-known key text. Reports false when
// the key is an expression, whose text is unknowable before
// evaluation.
func (n *PropertyNode) KeyText() (string, bool) {
	if key, ok := n.key.(*StringNode); ok {
		return key.value, true
	}
	return "", false
}

// Span returns the property's location, covering key and value.
func (n *PropertyNode) Span() Span { return n.span }

// ArrayNode is an array literal.
type ArrayNode struct {
	span  Span
	items []Node
}

// NewArray returns a synthetic array literal with the given items.
// The slice is owned by the node afterwards.
func NewArray(items []Node) *ArrayNode {
	return &ArrayNode{items: items}
}

// Items returns the element list in declaration order. Callers must
// not modify the returned slice.
func (n *ArrayNode) Items() []Node { return n.items }

func (n *ArrayNode) Span() Span { return n.span }
func (*ArrayNode) isNode()      {}

// StringNode is a literal string value.
type StringNode struct {
	span  Span
	value string
}

// NewString returns a synthetic string literal.
func NewString(value string) *StringNode {
	return &StringNode{value: value}
}

// Value returns the string content, with the "[[" escape already
// resolved to a single bracket.
func (n *StringNode) Value() string { return n.value }

func (n *StringNode) Span() Span { return n.span }
func (*StringNode) isNode()      {}

// IntNode is a literal integer value. The language has no fractional
// numbers; [Parse] rejects them.
type IntNode struct {
	span  Span
	value int64
}

// NewInt returns a synthetic integer literal.
func NewInt(value int64) *IntNode {
	return &IntNode{value: value}
}

// Value returns the integer value.
func (n *IntNode) Value() int64 { return n.value }

func (n *IntNode) Span() Span { return n.span }
func (*IntNode) isNode()      {}

// BoolNode is a literal boolean value.
type BoolNode struct {
	span  Span
	value bool
}

// NewBool returns a synthetic boolean literal.
func NewBool(value bool) *BoolNode {
	return &BoolNode{value: value}
}

// Value returns the boolean value.
func (n *BoolNode) Value() bool { return n.value }

func (n *BoolNode) Span() Span { return n.span }
func (*BoolNode) isNode()      {}

// NullNode is the literal null value.
type NullNode struct {
	span Span
}

// NewNull returns a synthetic null literal.
func NewNull() *NullNode { return &NullNode{} }

func (n *NullNode) Span() Span { return n.span }
func (*NullNode) isNode()      {}

// ExpressionNode is an expression placeholder: a bracketed string
// ("[parameters('env')]") whose value is computed at deployment time.
// The text is carried verbatim, brackets included; this package never
// evaluates it.
type ExpressionNode struct {
	span Span
	text string
}

// NewExpression returns a synthetic expression placeholder. The text
// must include the surrounding brackets.
func NewExpression(text string) *ExpressionNode {
	return &ExpressionNode{text: text}
}

// Text returns the raw expression text, brackets included.
func (n *ExpressionNode) Text() string { return n.text }

func (n *ExpressionNode) Span() Span { return n.span }
func (*ExpressionNode) isNode()      {}
