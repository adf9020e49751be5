// Package core_test verifies the shared validator and generator contracts.
package core_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/tabulate/core"
	"github.com/stretchr/testify/require"
)

// TestValidateSize checks the accept/reject behavior for signed sizes.
func TestValidateSize(t *testing.T) {
	require.NoError(t, core.ValidateSize("test", 0))  // zero is a valid size
	require.NoError(t, core.ValidateSize("test", 17)) // positive sizes pass

	err := core.ValidateSize("test", -1)              // negative size must fail
	require.ErrorIs(t, err, core.ErrNegativeSize)     // with the size sentinel
	require.Contains(t, err.Error(), "test: ")        // and the method context
	require.NotErrorIs(t, err, core.ErrNilGenerator)  // sentinels stay distinct
}

// TestValidateSize_Unsigned checks that unsigned sizes never hit the negative
// branch and that counts wider than the addressable range are rejected.
func TestValidateSize_Unsigned(t *testing.T) {
	require.NoError(t, core.ValidateSize("test", uint8(255)))   // small unsigned ok
	require.NoError(t, core.ValidateSize("test", uint64(1024))) // wide unsigned ok

	err := core.ValidateSize("test", uint64(math.MaxUint64)) // not addressable as int
	require.ErrorIs(t, err, core.ErrSizeOverflow)            // expect the overflow sentinel
}

// TestValidateGenFn checks nil-generator rejection for both generator forms.
func TestValidateGenFn(t *testing.T) {
	double := func(i int) int { return i * 2 } // trivial non-nil generator
	require.NoError(t, core.ValidateGenFn("test", core.GenFn[int, int](double)))

	err := core.ValidateGenFn("test", core.GenFn[int, int](nil)) // nil must fail
	require.ErrorIs(t, err, core.ErrNilGenerator)

	err = core.ValidateTryGenFn("test", core.TryGenFn[int, int](nil)) // fallible form too
	require.ErrorIs(t, err, core.ErrNilGenerator)
}

// TestGenFn_Try verifies the lift adapter: same values, never an error, and
// nil lifts to nil so validation still catches it downstream.
func TestGenFn_Try(t *testing.T) {
	triple := core.GenFn[int, int](func(i int) int { return i * 3 })

	lifted := triple.Try()  // lift into the fallible form
	v, err := lifted(7)     // invoke through the adapter
	require.NoError(t, err) // lifted generators cannot fail
	require.Equal(t, 21, v) // and must preserve the mapping

	require.Nil(t, core.GenFn[int, int](nil).Try()) // nil stays nil, not a live closure
}

// TestSentinels_Disjoint locks in that no sentinel matches another; callers
// branch on errors.Is and rely on the four conditions being distinguishable.
func TestSentinels_Disjoint(t *testing.T) {
	sentinels := []error{
		core.ErrNegativeSize,
		core.ErrSizeOverflow,
		core.ErrNilGenerator,
		core.ErrOutOfRange,
	}
	for i, a := range sentinels {
		for j, b := range sentinels {
			if i == j {
				continue
			}
			require.False(t, errors.Is(a, b), "sentinel %v must not match %v", a, b)
		}
	}
}
