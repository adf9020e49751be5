// SPDX-License-Identifier: MIT
// Package: tabulate/dynamic
//
// init.go — slice constructors driven by a generator function.
//
// Contract:
//   - The generator is called exactly size times, indices strictly ascending
//     from 0; each element is fully built before it is appended.
//   - Capacity is reserved up front, so the fill loop never reallocates.
//   - On a generator error the in-progress slice is abandoned inside this
//     frame (ordinary GC teardown) and the error reaches the caller verbatim.

package dynamic

import (
	"slices"

	"github.com/katalvlaran/tabulate/core"
)

// Canonical method tokens used as validation-error context.
const (
	methodInitWithSize    = "dynamic.InitWithSize"
	methodTryInitWithSize = "dynamic.TryInitWithSize"
	methodAppendWith      = "dynamic.AppendWith"
)

// InitWithSize builds a slice of exactly size elements, element i == gen(i).
// Stage 1 (Validate): size ≥ 0 and addressable, gen non-nil.
// Stage 2 (Reserve): allocate capacity for size elements, length 0.
// Stage 3 (Tabulate): append gen(0), gen(1), …, gen(size-1) in order.
//
// Behavior highlights:
//   - size == 0 returns an empty, non-nil slice without calling gen.
//   - Amortized O(1) appends with zero reallocation during the loop.
//
// Errors:
//   - core.ErrNegativeSize / core.ErrSizeOverflow / core.ErrNilGenerator.
//
// Complexity: O(size) calls to gen, O(size) memory, single allocation.
func InitWithSize[N core.Index, T any](size N, gen core.GenFn[N, T]) ([]T, error) {
	// Validate before any allocation.
	if err := core.ValidateSize(methodInitWithSize, size); err != nil {
		return nil, err
	}
	if err := core.ValidateGenFn(methodInitWithSize, gen); err != nil {
		return nil, err
	}

	// Reserve exact capacity; elements only exist once fully built.
	seq := make([]T, 0, int(size))
	for idx := N(0); idx < size; idx++ {
		seq = append(seq, gen(idx))
	}

	return seq, nil
}

// TryInitWithSize is the fallible form of InitWithSize: the generator may
// abort the construction by returning an error.
//
// Behavior highlights:
//   - A failure at index k means gen was called exactly k+1 times; the k
//     elements appended so far are abandoned with the in-progress slice and
//     reclaimed by the GC (ordinary sequence teardown).
//   - The generator's error is returned unwrapped, so errors.Is/As and the
//     message match exactly what the generator produced.
//
// Errors:
//   - core.ErrNegativeSize / core.ErrSizeOverflow / core.ErrNilGenerator,
//     or whatever gen returned.
//
// Complexity: O(k+1) calls to gen where k is the failing index (or size on
// success), O(size) memory.
func TryInitWithSize[N core.Index, T any](size N, gen core.TryGenFn[N, T]) ([]T, error) {
	if err := core.ValidateSize(methodTryInitWithSize, size); err != nil {
		return nil, err
	}
	if err := core.ValidateTryGenFn(methodTryInitWithSize, gen); err != nil {
		return nil, err
	}

	seq := make([]T, 0, int(size))
	for idx := N(0); idx < size; idx++ {
		v, err := gen(idx)
		if err != nil {
			// Abort: the partial slice never leaves this frame.
			return nil, err
		}
		seq = append(seq, v)
	}

	return seq, nil
}

// AppendWith appends size generated elements to dst and returns the extended
// slice, mirroring the built-in append contract (the result must be used; dst
// may be reused as its backing storage).
// Stage 1 (Validate): size ≥ 0 and addressable, gen non-nil.
// Stage 2 (Reserve): grow dst once for size additional elements.
// Stage 3 (Tabulate): append gen(0), gen(1), …, gen(size-1) in order.
//
// Behavior highlights:
//   - Indices restart at 0 for the appended run, independent of len(dst).
//   - On validation failure dst is returned unchanged alongside the error.
//
// Complexity: O(size) calls to gen; one reallocation at most (slices.Grow).
func AppendWith[N core.Index, T any](dst []T, size N, gen core.GenFn[N, T]) ([]T, error) {
	if err := core.ValidateSize(methodAppendWith, size); err != nil {
		return dst, err
	}
	if err := core.ValidateGenFn(methodAppendWith, gen); err != nil {
		return dst, err
	}

	// Reserve room once so the loop below cannot reallocate.
	out := slices.Grow(dst, int(size))
	for idx := N(0); idx < size; idx++ {
		out = append(out, gen(idx))
	}

	return out, nil
}
