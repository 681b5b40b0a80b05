package disarium

import (
	"github.com/holiman/uint256"
)

// searchRange tests number = start, start+10^deltaPow, ... while number <= end
// and appends every number equal to the power sum of its digits to out.
// digits must represent start exactly; it is advanced in place with
// AddBasePow instead of being decoded again for every candidate.
//
// Algorithm:
//   - The low deltaPow digits never change, so a frozen suffix stays frozen.
//   - The scan stops before stepping past end, so end need not share the
//     suffix (it is usually the caller's bound).
//
// Returns the extended out and the number of candidates tested.
func searchRange(start uint256.Int, digits *Digits, end *uint256.Int, deltaPow int, out []uint256.Int) ([]uint256.Int, uint64) {
	if debugChecks {
		mustRepresent(digits, &start)
	}

	step := &pow10[deltaPow]
	number := start
	var next uint256.Int
	var scanned uint64
	for !number.Gt(end) {
		scanned++
		if digits.exp == number {
			out = append(out, number)
		}
		if _, overflow := next.AddOverflow(&number, step); overflow || next.Gt(end) {
			break
		}
		digits.AddBasePow(deltaPow)
		number = next
	}
	return out, scanned
}

// mustRepresent panics unless digits decodes to n with a consistent cache.
func mustRepresent(digits *Digits, n *uint256.Int) {
	got := digits.Number()
	if !got.Eq(n) {
		panic(Error.New("search start %s does not match digits %s", n.Dec(), digits.String()))
	}
	if exp := CalcExp(digits.Significant()); !exp.Eq(&digits.exp) {
		panic(Error.New("stale power sum for %s: cached %s, want %s", digits.String(), digits.exp.Dec(), exp.Dec()))
	}
}

// forDigitCount scans every k-digit number up to bound, one by one.
func forDigitCount(k int, bound *uint256.Int, width int) ([]uint256.Int, uint64) {
	start := pow10[k-1]
	end := maxForDigitCount(k)
	if bound.Lt(&end) {
		end = *bound
	}
	if start.Gt(&end) {
		return nil, 0
	}

	digits := MinForDigitCount(width, k)
	return searchRange(start, &digits, &end, 0, nil)
}
