// Copyright 2026 The Strata Authors
// SPDX-License-Identifier: Apache-2.0

// Package typesys defines the type symbols of the Strata language: the
// closed set of type variants the binder attaches to declarations and
// the checker validates assignments against.
//
// The variants are [AnyType], [PrimitiveType], [StringLiteralType],
// [ObjectType], [ArrayType], [TypedArrayType], [UnionType],
// [ScopeReferenceType], and [ModuleType]. The set is sealed: [Type] has
// an unexported method, so no package outside this one can add a
// variant. Downstream passes switch over the concrete types and rely on
// the switch being exhaustive.
//
// The well-known types ([Any], [String], [LooseString], [Object],
// [Int], [Bool], [Null], [Array]) are canonical package-level
// singletons, created once and shared by reference. Primitives carry an
// explicit (Kind, Validation) tag pair so that "is this exactly the
// canonical string type" is a tag comparison via [IsCanonical] rather
// than a pointer comparison — [LooseString] has the same kind and
// display name as [String] but a distinct validation mode, and must
// never satisfy that check.
//
// Type symbols are immutable after construction and may be shared
// freely across goroutines; the singletons are initialized during
// package initialization, which the runtime completes before any use.
//
// Beyond the symbols themselves the package provides the per-property
// modifier bitset ([PropertyFlags]), the deployment-scope bitset
// ([Scope]) with its canonical stringification, structural equality
// ([Equal]), declared-type-name lookup ([DeclarationType]), and stable
// content fingerprints ([FingerprintType]) computed from a canonical
// CBOR encoding.
package typesys
