// SPDX-License-Identifier: MIT

// Package fixed - Array storage & safe accessors.
//
// Purpose:
//   - Provide a flat, cache-friendly backing buffer whose length is locked at
//     the single construction point (init.go) and never changes afterward.
//   - Guarantee safety at the public surface: At returns errors instead of
//     panicking; Values and Clone hand out copies, never the backing slice.
//   - Keep determinism: fixed loop orders, no map iteration, no hidden state.
//
// Complexity quicksheet:
//   - Len/At: O(1); Values/Clone: O(n); String: O(n).

package fixed

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/tabulate/core"
)

// ---------- error context tags ----------

const (
	ctxAt = "At" // method tag used in error wrappers
)

// ---------- formatting literals ----------

const (
	_fmtOpen  = "["
	_fmtClose = "]"
	_fmtSep   = ", "
)

// arrayErrorf wraps an error with a uniform Array context and callsite index.
// Keeps tags in constants for grep-ability and consistency; preserves the
// sentinel via %w so errors.Is keeps matching.
func arrayErrorf(method string, idx int, err error) error {
	return fmt.Errorf("Array.%s(%d): %w", method, idx, err)
}

// Array is a fixed-length, index-addressable container of T.
//   - data is a flat buffer whose length is the container's size, set exactly
//     once by a constructor in init.go.
//   - The zero Array is valid and empty (Len() == 0).
//
// Array values are cheap to pass by value (one slice header); copies share
// the backing buffer, which is safe because no mutation surface exists.
type Array[T any] struct {
	data []T // flat backing storage, length fixed at construction
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = Array[int]{}

// Len returns the fixed element count.
// Complexity: O(1).
func (a Array[T]) Len() int {
	return len(a.data) // length is immutable after construction
}

// At retrieves the element at idx.
// Stage 1 (Validate): check 0 ≤ idx < Len.
// Stage 2 (Execute): read from the backing slice.
// Returns the element, or the zero T and wrapped core.ErrOutOfRange.
// Complexity: O(1).
func (a Array[T]) At(idx int) (T, error) {
	// Validate index bounds; public indexers must not panic.
	if idx < 0 || idx >= len(a.data) {
		var zero T
		return zero, arrayErrorf(ctxAt, idx, core.ErrOutOfRange)
	}

	// Return stored value.
	return a.data[idx], nil
}

// Values returns a copy of all elements in index order.
// Mutating the returned slice does not affect the Array.
// Complexity: O(n) time and memory.
func (a Array[T]) Values() []T {
	// Allocate a fresh slice so the backing buffer never escapes.
	out := make([]T, len(a.data))
	copy(out, a.data)

	return out
}

// Clone returns a deep copy of the Array with independent storage.
// Complexity: O(n) time and memory.
func (a Array[T]) Clone() Array[T] {
	return Array[T]{data: a.Values()}
}

// String implements fmt.Stringer for easy debugging, e.g. "[0, 2, 4]".
// Complexity: O(n).
func (a Array[T]) String() string {
	var b strings.Builder
	b.WriteString(_fmtOpen)
	for i, v := range a.data {
		if i > 0 {
			b.WriteString(_fmtSep)
		}
		fmt.Fprintf(&b, "%v", v)
	}
	b.WriteString(_fmtClose)

	return b.String()
}
