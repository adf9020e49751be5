// Package tabulate builds containers whose elements are pure functions of
// their position — supply a size and an index→value generator, get back a
// fully-initialized container in one pass, with no placeholder values ever
// constructed or overwritten.
//
// 🚀 What is tabulate?
//
//	A small, deterministic library that brings together:
//		• Fixed-size construction: tabulate a generator into a length-locked Array
//		• Dynamic construction: tabulate a generator into a pre-reserved slice
//		• Fallible generators: abort cleanly mid-build, no partial container escapes
//		• Generic indices: any built-in integer type addresses the slots
//
// ✨ Why choose tabulate?
//
//   - Beginner-friendly – two constructors, clear, intuitive naming
//   - Rock-solid guarantees – strict ascending index order, exactly one
//     generator call per slot, all-or-nothing results
//   - Pure Go – no cgo, no hidden state, trivially safe to call concurrently
//   - No default values required – elements land directly in their final slot
//
// Under the hood, everything is organized under three subpackages:
//
//	core/    — generator contracts (GenFn, TryGenFn), Index constraint, sentinel errors
//	fixed/   — Array, a fixed-length container, with InitWith / TryInitWith
//	dynamic/ — slice constructors InitWithSize / TryInitWithSize / AppendWith
//
// Quick example:
//
//	squares, _ := dynamic.InitWithSize(5, func(i int) int { return i * i })
//	// squares == []int{0, 1, 4, 9, 16}
//
// Typical consumers: lookup tables, precomputed coefficient arrays,
// identity/permutation arrays — anything whose contents are a function of
// position alone.
//
//	go get github.com/katalvlaran/tabulate
package tabulate
