// Package disarium enumerates Disarium numbers: integers equal to the sum of
// their decimal digits, each raised to its 1-indexed position counted from the
// most significant digit (135 = 1^1 + 3^2 + 5^3).
//
// The search walks every digit count separately. Small digit counts are
// scanned candidate by candidate; larger ones freeze the low-order digits,
// bound each frozen pattern by the power sums of its extremal completions and
// scan only what is left, fanning the patterns out over goroutines once the
// pattern space is large.
package disarium

import (
	"math/bits"

	"github.com/holiman/uint256"
)

// Digit is a single decimal digit in [0, 9].
type Digit = uint8

// MaxDigits is the widest digit array and the widest power table row.
const MaxDigits = 32

// maxPow10 is the largest exponent with 10^maxPow10 < 2^256.
const maxPow10 = 77

// pow10[i] = 10^i.
var pow10 = func() (t [maxPow10 + 1]uint256.Int) {
	t[0].SetOne()
	ten := uint256.NewInt(10)
	for i := 1; i <= maxPow10; i++ {
		t[i].Mul(&t[i-1], ten)
	}
	return t
}()

// Pow10 returns 10^i. It panics if 10^i does not fit in 256 bits.
func Pow10(i int) uint256.Int {
	return pow10[i]
}

// DigitCount returns the number of decimal digits in n, 0 for n == 0.
func DigitCount(n *uint256.Int) int {
	if n.IsUint64() {
		return digitCount64(n.Uint64())
	}
	// n >= 2^64 > 10^19
	c := 20
	for c <= maxPow10 && !n.Lt(&pow10[c]) {
		c++
	}
	return c
}

// digitCount64 returns the number of decimal digits in x, 0 for x == 0.
func digitCount64(x uint64) int {
	if x == 0 {
		return 0
	}
	// log10(x) ~= log2(x) * 1233 / 4096
	r := (bits.Len64(x) * 1233) >> 12
	if r < 20 && x >= pow10[r].Uint64() {
		return r + 1
	}
	return r
}

// maxForDigitCount returns 10^k - 1.
func maxForDigitCount(k int) uint256.Int {
	var n uint256.Int
	n.SubUint64(&pow10[k], 1)
	return n
}
