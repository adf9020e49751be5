// Package fixed offers a fixed-length container built in one pass from an
// index→value generator.
//
// The fixed package provides:
//
//   - Array, a length-locked container: the element count is fixed at the
//     single construction point and no resize or per-slot mutation is ever
//     exposed. Reads go through At, which returns core.ErrOutOfRange instead
//     of panicking.
//   - InitWith / TryInitWith, which call the generator exactly once per index
//     in strictly ascending order from 0 and place each result directly into
//     its final slot — no default values are constructed and then overwritten,
//     so the element type needs no cheap zero representation of its own.
//   - FromSlice, which copies an existing slice into the fixed representation.
//
// Failure semantics are all-or-nothing: if a TryGenFn returns an error at
// index k, the k elements built so far never escape the constructor frame and
// the caller receives the generator's error verbatim. A panicking generator
// likewise propagates before any Array exists.
//
// Arrays are best when the element count is a structural invariant — lookup
// tables, coefficient arrays, permutation tables — and accidental growth
// would be a bug.
//
// See the examples in this package and dynamic for usage patterns.
package fixed
