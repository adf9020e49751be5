// Package dynamic offers growable-sequence constructors driven by an
// index→value generator.
//
// The dynamic package provides:
//
//   - InitWithSize / TryInitWithSize, which pre-reserve capacity for exactly
//     size elements and append generator results in strictly ascending index
//     order — no reallocation happens during the fill loop, and no
//     placeholder values are ever constructed.
//   - AppendWith, the append-style composition: extend an existing slice with
//     size generated elements.
//
// Unlike the fixed package there is no uninitialized-slot bookkeeping here:
// each element is fully built before it is appended, so a failure mid-build
// simply abandons an ordinary slice to the garbage collector — standard
// sequence teardown, nothing special.
//
// Size 0 returns an empty, non-nil slice and never invokes the generator.
//
// See the examples in this package and fixed for usage patterns.
package dynamic
