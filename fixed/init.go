// SPDX-License-Identifier: MIT
// Package: tabulate/fixed
//
// init.go — the single construction point for Array.
//
// Contract:
//   - The generator is called exactly size times, indices strictly ascending
//     from 0, each result written directly into its final slot.
//   - Either a fully-initialized Array is returned, or no Array at all: on a
//     generator error (or panic) the partially-filled buffer never escapes
//     this frame and is reclaimed by the GC, so no slot is ever observable
//     uninitialized and nothing leaks.
//   - make() zero-fills the buffer before the constructive writes; no index
//     is read before its slot has been written, which is the invariant that
//     actually matters.

package fixed

import "github.com/katalvlaran/tabulate/core"

// Canonical method tokens used as validation-error context.
const (
	methodInitWith    = "fixed.InitWith"
	methodTryInitWith = "fixed.TryInitWith"
)

// InitWith builds an Array of exactly size elements, element i == gen(i).
// Stage 1 (Validate): size ≥ 0 and addressable, gen non-nil.
// Stage 2 (Tabulate): call gen for 0, 1, …, size-1, writing each result into
// its final slot.
// Stage 3 (Finalize): materialize the Array only after every slot is written.
//
// Behavior highlights:
//   - gen is invoked exactly size times, in strictly ascending index order;
//     generators with order-dependent side effects can rely on this.
//   - Element types need no default value; nothing is constructed twice.
//
// Errors:
//   - core.ErrNegativeSize / core.ErrSizeOverflow / core.ErrNilGenerator.
//
// Complexity: O(size) calls to gen, O(size) memory, single allocation.
func InitWith[N core.Index, T any](size N, gen core.GenFn[N, T]) (Array[T], error) {
	// Validate before any allocation.
	if err := core.ValidateSize(methodInitWith, size); err != nil {
		return Array[T]{}, err
	}
	if err := core.ValidateGenFn(methodInitWith, gen); err != nil {
		return Array[T]{}, err
	}

	// Allocate the full buffer up front; length doubles as the fill contract.
	data := make([]T, int(size))
	for idx := N(0); idx < size; idx++ {
		// Each slot is written exactly once, in ascending order.
		data[idx] = gen(idx)
	}

	// Single construction point: the Array exists only once every slot is set.
	return Array[T]{data: data}, nil
}

// TryInitWith is the fallible form of InitWith: the generator may abort the
// construction by returning an error.
// Stage 1 (Validate): size ≥ 0 and addressable, gen non-nil.
// Stage 2 (Tabulate): call gen in ascending order; stop at the first error.
// Stage 3 (Finalize): on success materialize the Array; on failure return the
// zero Array and the generator's error verbatim.
//
// Behavior highlights:
//   - A failure at index k means gen was called exactly k+1 times and the k
//     elements already built never escape this frame (no partial exposure).
//   - The generator's error is returned unwrapped, so errors.Is/As and the
//     message match exactly what the generator produced.
//
// Errors:
//   - core.ErrNegativeSize / core.ErrSizeOverflow / core.ErrNilGenerator,
//     or whatever gen returned.
//
// Complexity: O(k+1) calls to gen where k is the failing index (or size on
// success), O(size) memory.
func TryInitWith[N core.Index, T any](size N, gen core.TryGenFn[N, T]) (Array[T], error) {
	if err := core.ValidateSize(methodTryInitWith, size); err != nil {
		return Array[T]{}, err
	}
	if err := core.ValidateTryGenFn(methodTryInitWith, gen); err != nil {
		return Array[T]{}, err
	}

	data := make([]T, int(size))
	for idx := N(0); idx < size; idx++ {
		v, err := gen(idx)
		if err != nil {
			// Abort: drop the buffer here; the caller never sees a partial Array.
			return Array[T]{}, err
		}
		data[idx] = v
	}

	return Array[T]{data: data}, nil
}

// FromSlice copies vs into a fixed container of the same length.
// The Array owns its own storage: later mutation of vs is not reflected.
// Complexity: O(len(vs)) time and memory.
func FromSlice[T any](vs []T) Array[T] {
	// Copy defensively so the caller's slice never aliases the backing buffer.
	data := make([]T, len(vs))
	copy(data, vs)

	return Array[T]{data: data}
}
