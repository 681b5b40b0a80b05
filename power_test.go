package disarium

import (
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"
)

func TestDigitPowers(t *testing.T) {
	for d := 0; d < 10; d++ {
		want := uint256.NewInt(1)
		base := uint256.NewInt(uint64(d))
		for p := 0; p < MaxDigits; p++ {
			want.Mul(want, base)
			require.True(t, expDigit(Digit(d), p).Eq(want), "%d^%d", d, p+1)
		}
	}

	// zero contributes nothing at any position
	for p := 0; p < MaxDigits; p++ {
		require.True(t, expDigit(0, p).IsZero())
	}
}

func TestCalcExp(t *testing.T) {
	tcs := []struct {
		digits []Digit
		want   uint64
	}{
		{nil, 0},
		{[]Digit{0}, 0},
		{[]Digit{7}, 7},
		{[]Digit{8, 9}, 8 + 81},
		{[]Digit{1, 3, 5}, 135},
		{[]Digit{1, 3, 6}, 1 + 9 + 216},
		{[]Digit{2, 6, 4, 6, 7, 9, 8}, 2646798},
		// left to right: 1^1 + 0^2 + 0^3, not 1^3
		{[]Digit{1, 0, 0}, 1},
	}

	for _, tc := range tcs {
		got := CalcExp(tc.digits)
		require.Equal(t, tc.want, got.Uint64(), "%v", tc.digits)
	}
}

func TestIsDisarium(t *testing.T) {
	for _, n := range []uint64{0, 1, 9, 89, 135, 175, 518, 598, 1306, 1676, 2427, 2646798} {
		require.True(t, IsDisarium(uint256.NewInt(n)), "%d", n)
	}
	for _, n := range []uint64{10, 88, 90, 134, 136, 2646797, 2646799} {
		require.False(t, IsDisarium(uint256.NewInt(n)), "%d", n)
	}
	require.True(t, IsDisarium(uint256.MustFromDecimal("12157692622039623539")))
}

func TestCheckDisarium(t *testing.T) {
	ok, err := CheckDisarium(uint256.NewInt(2646798))
	require.NoError(t, err)
	require.True(t, ok)

	wide := Pow10(MaxDigits)
	ok, err = CheckDisarium(&wide)
	require.False(t, ok)
	require.True(t, TooLargeError.Has(err), "got %v", err)
	require.False(t, IsDisarium(&wide))
}
