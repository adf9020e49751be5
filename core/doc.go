// Package core defines the contracts shared by the fixed and dynamic
// constructors.
//
// The core package provides:
//
//   - Index, the constraint satisfied by any built-in integer type; indices
//     are always produced in a strict ascending sequence starting at zero.
//   - GenFn and TryGenFn, the infallible and fallible generator function
//     types, plus GenFn.Try to lift one into the other.
//   - Sentinel errors (ErrNegativeSize, ErrSizeOverflow, ErrNilGenerator,
//     ErrOutOfRange) matched via errors.Is.
//   - Validators (ValidateSize, ValidateGenFn, ValidateTryGenFn) used by
//     every public constructor before any allocation happens.
//
// Nothing in this package allocates or holds state; every function is pure
// and deterministic.
//
// See the examples in fixed and dynamic for usage patterns.
package core
