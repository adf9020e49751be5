// SPDX-License-Identifier: MIT
// Package: tabulate/core
//
// validators.go — single, canonical source of truth for precondition checks.
//
// Purpose:
//   - Keep constructors minimal by delegating size/nil-generator checks here.
//   - Return sentinel errors wrapped once with the calling method's context,
//     so call sites stay uniform and errors.Is keeps matching.
//
// Determinism & Performance:
//   - All checks are pure, deterministic and allocate only on failure.

package core

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying sentinel with the given method tag.
// Used internally to maintain consistent labeling of sentinel violations.
func validatorErrorf(method string, err error) error {
	// Provides consistent error tagging for all validation errors.
	return fmt.Errorf("%s: %w", method, err)
}

// ValidateSize ensures that size is non-negative and addressable as a slice
// length on this platform.
//
// Parameters:
//   - method: constructor name used as error context, e.g. "fixed.InitWith".
//   - size:   requested element count.
//
// Returns nil, or wrapped ErrNegativeSize / ErrSizeOverflow.
// Complexity: O(1) time and space.
func ValidateSize[N Index](method string, size N) error {
	// Reject negative counts first; unsigned N makes this branch dead code.
	if size < 0 {
		return validatorErrorf(method, ErrNegativeSize)
	}
	// size is non-negative here, so the uint64 conversion is value-preserving.
	if uint64(size) > uint64(math.MaxInt) {
		return validatorErrorf(method, ErrSizeOverflow)
	}

	return nil
}

// ValidateGenFn ensures the infallible generator is non-nil.
//
// Returns nil, or wrapped ErrNilGenerator.
// Complexity: O(1) time and space.
func ValidateGenFn[N Index, T any](method string, gen GenFn[N, T]) error {
	if gen == nil {
		return validatorErrorf(method, ErrNilGenerator)
	}

	return nil
}

// ValidateTryGenFn ensures the fallible generator is non-nil.
//
// Returns nil, or wrapped ErrNilGenerator.
// Complexity: O(1) time and space.
func ValidateTryGenFn[N Index, T any](method string, gen TryGenFn[N, T]) error {
	if gen == nil {
		return validatorErrorf(method, ErrNilGenerator)
	}

	return nil
}
