package disarium

import (
	"github.com/holiman/uint256"
)

// digitPowers[d][p] = d^(p+1). Every cell fits: 9^32 < 2^102.
var digitPowers = func() (t [10][MaxDigits]uint256.Int) {
	for d := 0; d < 10; d++ {
		base := uint256.NewInt(uint64(d))
		t[d][0].Set(base)
		for p := 1; p < MaxDigits; p++ {
			t[d][p].Mul(&t[d][p-1], base)
		}
	}
	return t
}()

// expDigit returns digit^(position+1). position must be < MaxDigits.
//
//go:inline
func expDigit(digit Digit, position int) *uint256.Int {
	return &digitPowers[digit][position]
}

// CalcExp sums digit^(position+1) over significant, where position is the
// 0-based index into significant. The first digit is raised to the power 1,
// so callers must pass the digits with leading zeros stripped.
func CalcExp(significant []Digit) uint256.Int {
	var sum uint256.Int
	for position, digit := range significant {
		sum.Add(&sum, expDigit(digit, position))
	}
	return sum
}

// CheckDisarium reports whether n equals the position-weighted power sum of
// its own digits, computed from scratch. It fails with TooLargeError if n has
// more than MaxDigits digits.
func CheckDisarium(n *uint256.Int) (bool, error) {
	var buf [MaxDigits]Digit
	first, err := PutDigits(n, buf[:])
	if err != nil {
		return false, err
	}
	exp := CalcExp(buf[first:])
	return exp.Eq(n), nil
}

// IsDisarium is CheckDisarium without the error. Numbers wider than
// MaxDigits report false: their digit power sum has fewer digits than they
// do, so none of them is a Disarium number.
func IsDisarium(n *uint256.Int) bool {
	ok, _ := CheckDisarium(n)
	return ok
}
