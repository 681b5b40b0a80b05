//go:build disarium_debug

package disarium

import (
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"
)

func TestSearchRangeStartMismatch(t *testing.T) {
	d := mustDigits(t, 3, 135)
	end := uint256.NewInt(999)
	require.Panics(t, func() {
		searchRange(*uint256.NewInt(136), &d, end, 0, nil)
	})
}

func TestSearchRangeStaleExp(t *testing.T) {
	d := mustDigits(t, 3, 135)
	d.exp.SetUint64(1)
	end := uint256.NewInt(999)
	require.Panics(t, func() {
		searchRange(*uint256.NewInt(135), &d, end, 0, nil)
	})
}

func TestSearchRangeConsistentStart(t *testing.T) {
	d := mustDigits(t, 3, 135)
	end := uint256.NewInt(175)
	require.NotPanics(t, func() {
		res, _ := searchRange(*uint256.NewInt(135), &d, end, 0, nil)
		require.Equal(t, []uint64{135, 175}, toUint64s(res))
	})
}
