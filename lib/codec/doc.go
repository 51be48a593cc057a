// Copyright 2026 The Strata Authors
// SPDX-License-Identifier: Apache-2.0

// Package codec provides Strata's standard CBOR encoding configuration.
//
// Strata uses two serialization formats with a clear boundary:
//
//   - JSON (and its JSONC superset) for external interfaces: template
//     source text, module interface files, and CLI output.
//   - CBOR for canonical internal encodings, most importantly the
//     canonical type encoding that type fingerprints are computed
//     over.
//
// This package provides the shared CBOR encoding and decoding modes so
// that every Strata package encodes identically without duplicating
// configuration. The encoder uses Core Deterministic Encoding (RFC 8949
// §4.2): sorted map keys, smallest integer encoding, no
// indefinite-length items. Same logical data always produces identical
// bytes, which is what makes content-addressed type fingerprints
// stable across processes and releases.
//
// For buffer-oriented operations:
//
//	data, err := codec.Marshal(value)
//	err = codec.Unmarshal(data, &value)
//
// For stream-oriented operations:
//
//	encoder := codec.NewEncoder(w)
//	decoder := codec.NewDecoder(r)
//
// Types that are only ever serialized as CBOR carry `cbor` struct
// tags. Types that serve both JSON and CBOR carry `json` tags only —
// fxamacker/cbor v2 reads `json` tags as fallback when `cbor` tags are
// absent, so a single tag controls field naming and omitempty for both
// formats. Never use both tags on the same field.
package codec
