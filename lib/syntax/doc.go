// Copyright 2026 The Strata Authors
// SPDX-License-Identifier: Apache-2.0

// Package syntax models template value literals as ordered syntax
// trees and provides the property lookup and merge operations the
// checker and default-injection passes share.
//
// Values are authored as JSONC (JSON extended with // line comments,
// /* block comments */, and trailing commas). [Parse] strips the
// extensions and walks the underlying JSON token stream directly, so
// the tree preserves two things ordinary JSON decoding throws away:
// property declaration order and duplicate keys. Both matter here —
// diagnostics report duplicates rather than silently dropping them,
// and merge results are order-stable.
//
// String values follow the template expression convention: a string
// wrapped in square brackets ("[resourceId(...)]") is an expression
// placeholder, represented as [ExpressionNode] and carried verbatim. A
// leading "[[" escapes the convention and denotes a literal string
// beginning with "[". Object keys may be expressions too; such
// properties have no statically-known key text and are skipped by
// [DeepMerge].
//
// Nodes are immutable once constructed. [MergeProperty] and
// [DeepMerge] build new nodes and share unmodified subtrees with
// their inputs, so trees may be reused freely across concurrent
// callers after a merge.
package syntax
