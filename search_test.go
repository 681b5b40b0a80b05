package disarium

import (
	"fmt"
	"sync"
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"
)

const bruteForceLimit = 1_000_000

// bruteForce lists every Disarium number below bruteForceLimit, checked
// one by one against the definition.
var bruteForce = sync.OnceValue(func() []uint64 {
	var out []uint64
	n := new(uint256.Int)
	for i := uint64(0); i < bruteForceLimit; i++ {
		if IsDisarium(n.SetUint64(i)) {
			out = append(out, i)
		}
	}
	return out
})

// expected filters bruteForce to k-digit numbers <= bound whose low digits
// equal suffix (any suffix when suffix is nil).
func expected(k int, bound uint64, suffix []Digit) []uint64 {
	lo := Pow10(k - 1)
	mod := Pow10(len(suffix)).Uint64()
	want := DigitsToNumber(suffix)

	var out []uint64
	for _, n := range bruteForce() {
		if n < lo.Uint64() || n > bound || digitCount64(n) != k {
			continue
		}
		if n%mod != want.Uint64() {
			continue
		}
		out = append(out, n)
	}
	return out
}

func toUint64s(ns []uint256.Int) []uint64 {
	if len(ns) == 0 {
		return nil
	}
	out := make([]uint64, len(ns))
	for i := range ns {
		out[i] = ns[i].Uint64()
	}
	return out
}

func TestBruteForceReference(t *testing.T) {
	require.Equal(t,
		[]uint64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 89, 135, 175, 518, 598, 1306, 1676, 2427},
		bruteForce())
}

func TestSearchRange(t *testing.T) {
	t.Run("step one", func(t *testing.T) {
		d := mustDigits(t, 4, 100)
		end := uint256.NewInt(999)
		res, scanned := searchRange(*uint256.NewInt(100), &d, end, 0, nil)
		require.Equal(t, []uint64{135, 175, 518, 598}, toUint64s(res))
		require.Equal(t, uint64(900), scanned)
	})

	t.Run("end off the suffix", func(t *testing.T) {
		// 105, 115, ..., 595; 605 is past the end and never tested
		d := mustDigits(t, 3, 105)
		end := uint256.NewInt(597)
		res, scanned := searchRange(*uint256.NewInt(105), &d, end, 1, nil)
		require.Equal(t, []uint64{135, 175}, toUint64s(res))
		require.Equal(t, uint64(50), scanned)
	})

	t.Run("suffix kept", func(t *testing.T) {
		d := mustDigits(t, 3, 108)
		end := uint256.NewInt(998)
		res, scanned := searchRange(*uint256.NewInt(108), &d, end, 1, nil)
		require.Equal(t, []uint64{518, 598}, toUint64s(res))
		require.Equal(t, uint64(90), scanned)
	})

	t.Run("single candidate", func(t *testing.T) {
		d := mustDigits(t, 3, 135)
		end := uint256.NewInt(135)
		res, scanned := searchRange(*uint256.NewInt(135), &d, end, 2, nil)
		require.Equal(t, []uint64{135}, toUint64s(res))
		require.Equal(t, uint64(1), scanned)
	})
}

func TestForDigitCount(t *testing.T) {
	for k := 1; k <= 6; k++ {
		bound := maxForDigitCount(k)
		res, scanned := forDigitCount(k, &bound, k)
		require.Equal(t, expected(k, bound.Uint64(), nil), toUint64s(res), "k=%d", k)
		require.Equal(t, 9*Pow10(k-1).Uint64(), scanned)
	}

	// bound cuts the digit count short
	res, _ := forDigitCount(4, uint256.NewInt(2000), 4)
	require.Equal(t, []uint64{1306, 1676}, toUint64s(res))

	// bound below the digit count
	res, scanned := forDigitCount(4, uint256.NewInt(999), 4)
	require.Empty(t, res)
	require.Zero(t, scanned)
}

func TestForDigitCountWithFrozen(t *testing.T) {
	for k := 2; k <= 6; k++ {
		for frozen := 1; frozen <= 5 && frozen < k; frozen++ {
			for _, bound := range []uint64{Pow10(k).Uint64() - 1, 2431, 500_123} {
				t.Run(fmt.Sprintf("k%d/f%d/b%d", k, frozen, bound), func(t *testing.T) {
					b := uint256.NewInt(bound)
					var pattern uint256.Int
					buf := make([]Digit, frozen)
					total := 0

					for p := uint64(0); p < Pow10(frozen).Uint64(); p++ {
						_, err := PutDigits(pattern.SetUint64(p), buf)
						require.NoError(t, err)

						res, _, err := forDigitCountWithFrozen(k-frozen, b, buf, k)
						require.NoError(t, err)
						require.Equal(t, expected(k, bound, buf), toUint64s(res), "pattern %v", buf)
						total += len(res)
					}
					require.Len(t, expected(k, bound, nil), total)
				})
			}
		}
	}
}

func TestFreezeAndSplitNarrows(t *testing.T) {
	bound := maxForDigitCount(6)
	plain, plainScanned, err := freezeAndSplit(6, &bound, Specialization{}, 1)
	require.NoError(t, err)
	frozen, frozenScanned, err := freezeAndSplit(6, &bound, Specialization{Frozen: 2}, 1)
	require.NoError(t, err)

	require.Equal(t, toUint64s(plain), toUint64s(frozen))
	require.Less(t, frozenScanned, plainScanned)
}

func TestFreezeAndSplitParallelMatchesSerial(t *testing.T) {
	specs := []Specialization{
		{Frozen: 0},
		{Frozen: 1},
		{Frozen: 2},
		{Frozen: 2, Parallel: 1},
		{Frozen: 2, Parallel: 2},
		{Frozen: 3, Parallel: 1},
		{Frozen: 3, Parallel: 3},
		{Frozen: 3, Parallel: 2, Width: MaxDigits},
		{Frozen: 4, Parallel: 2},
		{Frozen: 5, Parallel: 2},
		{Frozen: 5, Parallel: 2, Width: MaxDigits},
		{Frozen: 8, Parallel: 0},
	}

	for _, k := range []int{5, 6, 7} {
		if k == 7 && testing.Short() {
			continue
		}
		bound := maxForDigitCount(k)

		var want []uint64
		for i, spec := range specs {
			t.Run(fmt.Sprintf("k%d/%+v", k, spec), func(t *testing.T) {
				res, _, err := freezeAndSplit(k, &bound, spec, 4)
				require.NoError(t, err)
				got := toUint64s(res)
				if i == 0 {
					want = got
					return
				}
				require.Equal(t, want, got)
			})
		}
		if k == 7 {
			require.Equal(t, []uint64{2646798}, want)
		}
	}
}

func TestFreezeAndSplitWidth(t *testing.T) {
	bound := maxForDigitCount(5)
	_, _, err := freezeAndSplit(5, &bound, Specialization{Width: 4}, 1)
	require.True(t, DigitCountError.Has(err))
}
