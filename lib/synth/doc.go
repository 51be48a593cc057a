// Copyright 2026 The Strata Authors
// SPDX-License-Identifier: Apache-2.0

// Package synth builds the composite types the checker attaches to
// declarations: parameter modifier objects, resource body types, and
// module body types.
//
// All entry points are pure functions of their inputs. The binder
// resolves a declaration to a primitive type or a [TypeReference],
// calls the matching synthesis function, and installs the result on
// the declaration node; nothing here performs I/O or holds state.
//
// Property inclusion in [ParameterModifierType] dispatches on the
// canonical primitive singletons ([typesys.IsCanonical]), with
// [typesys.Any] acting as a wildcard that includes every modifier —
// when an upstream parse error hides the real type, the checker
// should not pile on spurious modifier diagnostics.
package synth
