// Copyright 2026 The Strata Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import "fmt"

// UsageError marks an error as the caller's fault: wrong argument
// count, unknown command or flag, malformed argument values. The main
// function exits with code 2 for usage errors and code 1 for
// everything else, so scripts can tell "fix the invocation" apart
// from "the operation failed".
type UsageError struct {
	Err error
}

func (e *UsageError) Error() string { return e.Err.Error() }

// Unwrap exposes the underlying error to errors.Is and errors.As.
func (e *UsageError) Unwrap() error { return e.Err }

// Usagef builds a [UsageError] in fmt.Errorf style.
func Usagef(format string, args ...any) *UsageError {
	return &UsageError{Err: fmt.Errorf(format, args...)}
}
