// Package core provides the generator function types used to populate
// container slots from their indices.
package core

import "golang.org/x/exp/constraints"

// Index constrains the index type of a generator to the built-in integer
// types, signed or unsigned. An Index value must be producible in a strict
// ascending sequence starting at zero and usable to address a container slot;
// every Go integer type satisfies both.
type Index interface {
	constraints.Integer
}

// GenFn produces the element for a given zero-based index.
// It must be total over the index range the constructor visits: defined for
// every idx in [0, size). Purity is a contract, not enforced — a GenFn with
// order-dependent side effects still observes indices in strictly ascending
// order, exactly once each.
type GenFn[N Index, T any] func(idx N) T

// TryGenFn is the fallible form of GenFn. Returning a non-nil error aborts
// the construction in progress; the error reaches the caller verbatim and no
// container is produced.
type TryGenFn[N Index, T any] func(idx N) (T, error)

// Try lifts an infallible generator into the fallible form, so a single
// constructor implementation can serve both.
// Complexity: O(1); each call adds one function indirection.
func (f GenFn[N, T]) Try() TryGenFn[N, T] {
	if f == nil {
		return nil
	}

	return func(idx N) (T, error) {
		return f(idx), nil
	}
}
