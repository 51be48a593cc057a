// Copyright 2026 The Strata Authors
// SPDX-License-Identifier: Apache-2.0

// Package types implements the type inspection commands of the strata
// CLI: param-type, resource, module-type, and scopes. Each command
// synthesizes a type with lib/synth or lib/typesys and prints its
// property table, either as aligned text or as JSON with --json.
// Fingerprints come from the canonical type encoding in lib/typesys.
package types
