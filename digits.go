package disarium

import (
	"strings"

	"github.com/holiman/uint256"
)

// Digits is a fixed-width decimal digit array, most significant digit first,
// left padded with zeros. It caches the index of the first non-zero digit and
// the power sum of the significant window digits[first:width], and keeps both
// current across in-place updates.
//
// A Digits value is owned by a single scan; copy it (it is a plain array)
// rather than sharing it between goroutines.
type Digits struct {
	digits [MaxDigits]Digit
	width  int
	first  int
	exp    uint256.Int
}

// NewDigits returns the width-digit representation of n. It fails with
// TooLargeError if n has more than width digits.
func NewDigits(width int, n *uint256.Int) (d Digits, err error) {
	if width < 0 || width > MaxDigits {
		return d, Error.Wrap(DigitCountError.New("width %d outside 0..%d", width, MaxDigits))
	}
	d.width = width
	d.first, err = PutDigits(n, d.digits[:width])
	if err != nil {
		return Digits{}, err
	}
	d.recalc()
	return d, nil
}

// MinForDigitCount returns 10^(k-1) as a width-digit array: a one followed by
// k-1 zeros. k must be in 1..width.
func MinForDigitCount(width, k int) Digits {
	d := Digits{width: width, first: width - k}
	d.digits[d.first] = 1
	d.exp.SetOne()
	return d
}

// MaxForDigitCount returns 10^k - 1 as a width-digit array: k nines.
// k must be in 1..width.
func MaxForDigitCount(width, k int) Digits {
	d := Digits{width: width, first: width - k}
	for i := d.first; i < width; i++ {
		d.digits[i] = 9
	}
	d.recalc()
	return d
}

// Width returns the number of digit positions.
func (d *Digits) Width() int {
	return d.width
}

// FirstNonZero returns the index of the first non-zero digit, or Width() if
// every digit is zero.
func (d *Digits) FirstNonZero() int {
	return d.first
}

// Significant returns the digits with the leading zero padding stripped. The
// slice aliases d.
func (d *Digits) Significant() []Digit {
	return d.digits[d.first:d.width]
}

// Exp returns the cached power sum of the significant digits.
func (d *Digits) Exp() uint256.Int {
	return d.exp
}

// Number returns the represented value.
func (d *Digits) Number() uint256.Int {
	return DigitsToNumber(d.digits[d.first:d.width])
}

// String returns the significant digits, "0" when the value is zero.
func (d *Digits) String() string {
	if d.first == d.width {
		return "0"
	}
	var sb strings.Builder
	sb.Grow(d.width - d.first)
	for _, digit := range d.digits[d.first:d.width] {
		sb.WriteByte('0' + digit)
	}
	return sb.String()
}

func (d *Digits) recalc() {
	d.exp = CalcExp(d.digits[d.first:d.width])
}

// updateDigit writes digit at index i and keeps first and exp current.
// A write that moves the left edge of the significant window shifts every
// digit's position, so exp is recomputed; any other write adjusts exp by the
// difference of the two contributions.
func (d *Digits) updateDigit(i int, digit Digit) {
	old := d.digits[i]
	if old == digit {
		return
	}
	d.digits[i] = digit

	switch {
	case i < d.first:
		// old was padding, digit is non-zero
		d.first = i
		d.recalc()
	case i == d.first && digit == 0:
		f := i + 1
		for f < d.width && d.digits[f] == 0 {
			f++
		}
		d.first = f
		d.recalc()
	default:
		pos := i - d.first
		d.exp.Sub(&d.exp, expDigit(old, pos))
		d.exp.Add(&d.exp, expDigit(digit, pos))
	}
}

// AddBasePow adds 10^pow to the represented value, carrying leftwards from
// index Width()-1-pow. The low pow digits are never touched. It panics if
// the carry runs off the most significant digit.
func (d *Digits) AddBasePow(pow int) {
	for i := d.width - 1 - pow; i >= 0; i-- {
		if d.digits[i] < 9 {
			d.updateDigit(i, d.digits[i]+1)
			return
		}
		d.updateDigit(i, 0)
	}
	panic(Error.Wrap(TooLargeError.New("carry out of %d digits", d.width)))
}

// Overwrite replaces the low len(tail) digits with tail.
func (d *Digits) Overwrite(tail []Digit) {
	start := d.width - len(tail)
	for j, digit := range tail {
		d.updateDigit(start+j, digit)
	}
}

// WithOverwritten returns a copy of d with the low len(tail) digits replaced.
func (d Digits) WithOverwritten(tail []Digit) Digits {
	d.Overwrite(tail)
	return d
}
