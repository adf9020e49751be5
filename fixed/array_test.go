// Package fixed_test contains unit tests for the Array accessors.
package fixed_test

import (
	"testing"

	"github.com/katalvlaran/tabulate/core"
	"github.com/katalvlaran/tabulate/fixed"
	"github.com/stretchr/testify/require"
)

// TestArray_At validates in-range reads and the ErrOutOfRange sentinel on
// invalid indices; public indexers must not panic.
func TestArray_At(t *testing.T) {
	arr, err := fixed.InitWith(3, func(i int) string { return string(rune('a' + i)) })
	require.NoError(t, err) // construction succeeded

	v, err := arr.At(1)          // in-range read
	require.NoError(t, err)      // must succeed
	require.Equal(t, "b", v)     // element matches the generator output

	_, err = arr.At(-1)                        // negative index
	require.ErrorIs(t, err, core.ErrOutOfRange) // expect the range sentinel

	_, err = arr.At(3)                          // index == Len
	require.ErrorIs(t, err, core.ErrOutOfRange) // expect the range sentinel
}

// TestArray_ZeroValue verifies that the zero Array is a valid empty container.
func TestArray_ZeroValue(t *testing.T) {
	var arr fixed.Array[int]          // zero value, no constructor
	require.Equal(t, 0, arr.Len())    // empty
	require.Equal(t, "[]", arr.String())

	_, err := arr.At(0)                         // any read is out of range
	require.ErrorIs(t, err, core.ErrOutOfRange)
}

// TestArray_ValuesIndependence ensures Values hands out a copy, not the
// backing storage.
func TestArray_ValuesIndependence(t *testing.T) {
	arr, err := fixed.InitWith(2, func(i int) int { return i + 10 })
	require.NoError(t, err)

	vs := arr.Values() // take a snapshot
	vs[0] = 999        // mutate the snapshot only

	got, err := arr.At(0)     // original slot
	require.NoError(t, err)
	require.Equal(t, 10, got) // must be unaffected by the snapshot mutation
}

// TestArray_CloneIndependence ensures Clone returns independent storage.
func TestArray_CloneIndependence(t *testing.T) {
	arr, err := fixed.InitWith(2, func(i int) int { return i })
	require.NoError(t, err)

	clone := arr.Clone()                     // deep copy
	require.Equal(t, arr.Values(), clone.Values())
	require.Equal(t, arr.Len(), clone.Len()) // same shape, separate buffers
}

// TestFromSlice verifies the copy-in constructor and its defensive copy.
func TestFromSlice(t *testing.T) {
	src := []int{5, 6, 7}
	arr := fixed.FromSlice(src)

	src[0] = 999 // mutate the source after construction

	require.Equal(t, 3, arr.Len())
	require.Equal(t, []int{5, 6, 7}, arr.Values()) // Array kept its own copy
}

// TestArray_String locks in the human-readable rendering.
func TestArray_String(t *testing.T) {
	arr, err := fixed.InitWith(3, func(i int) int { return i * 2 })
	require.NoError(t, err)
	require.Equal(t, "[0, 2, 4]", arr.String())
}
