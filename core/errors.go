// SPDX-License-Identifier: MIT
// Package core: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the
// tabulate packages. All constructors MUST return these sentinels for their
// own validation failures and tests MUST check them via errors.Is. A
// generator's own error is NEVER replaced or wrapped by these — it passes
// through verbatim so the caller observes exactly what the generator raised.

package core

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "core: ..." for consistency and to allow
// easy grepping across logs. Do NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers will still use errors.Is to match.

var (
	// ErrNegativeSize indicates a requested element count below zero.
	// Constructors must validate the size before any allocation.
	ErrNegativeSize = errors.New("core: size must be ≥ 0")

	// ErrSizeOverflow indicates a requested element count that does not fit
	// the platform's addressable slice range after conversion to int.
	// Returned instead of silently truncating a wide unsigned size.
	ErrSizeOverflow = errors.New("core: size exceeds addressable range")

	// ErrNilGenerator indicates that a nil generator function was supplied.
	// A nil GenFn/TryGenFn can never be total over [0, size).
	ErrNilGenerator = errors.New("core: generator is nil")

	// ErrOutOfRange indicates that an index is outside [0, Len).
	// Public indexers (fixed.Array.At) MUST return this, not panic.
	ErrOutOfRange = errors.New("core: index out of range")
)
