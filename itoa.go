package disarium

import (
	"github.com/holiman/uint256"
)

// decDigitsLUT holds the two digit values of every n in [0, 100) at
// [2n] and [2n+1].
var decDigitsLUT = func() (lut [200]Digit) {
	for i := 0; i < 100; i++ {
		lut[2*i] = Digit(i / 10)
		lut[2*i+1] = Digit(i % 10)
	}
	return lut
}()

// chunkDigits is the number of decimal digits handled per uint64 chunk when
// splitting values wider than 64 bits.
const chunkDigits = 19

// PutDigits writes the decimal digits of n right-aligned into buf, zero
// padding on the left, and returns the index of the first non-zero digit
// (len(buf) when n is zero). It fails with TooLargeError if n needs more than
// len(buf) digits; buf is left unspecified in that case.
func PutDigits(n *uint256.Int, buf []Digit) (first int, err error) {
	if n.IsUint64() {
		return putUint64(n.Uint64(), buf)
	}

	var q, r uint256.Int
	q.Set(n)
	end := len(buf)
	for !q.IsUint64() {
		if end < chunkDigits {
			return 0, Error.Wrap(TooLargeError.New("%s needs more than %d digits", n.Dec(), len(buf)))
		}
		q.DivMod(&q, &pow10[chunkDigits], &r)
		// every chunk below the top one is written in full, zeros included
		if _, err := putUint64(r.Uint64(), buf[end-chunkDigits:end]); err != nil {
			return 0, err
		}
		end -= chunkDigits
	}

	// q >= 1 here, so the first non-zero digit is in the top chunk
	first, err = putUint64(q.Uint64(), buf[:end])
	if err != nil {
		return 0, Error.Wrap(TooLargeError.New("%s needs more than %d digits", n.Dec(), len(buf)))
	}
	return first, nil
}

// putUint64 is the uint64 fast path of PutDigits: four digits per iteration
// through decDigitsLUT, then the 1-4 digit remainder.
func putUint64(n uint64, buf []Digit) (int, error) {
	if c := digitCount64(n); c > len(buf) {
		return 0, Error.Wrap(TooLargeError.New("%d needs %d digits, have %d", n, c, len(buf)))
	}

	lut := &decDigitsLUT
	curr := len(buf)

	for n >= 10_000 {
		rem := n % 10_000
		n /= 10_000

		d1 := (rem / 100) << 1
		d2 := (rem % 100) << 1

		curr -= 4
		buf[curr] = lut[d1]
		buf[curr+1] = lut[d1+1]
		buf[curr+2] = lut[d2]
		buf[curr+3] = lut[d2+1]
	}

	switch {
	case n >= 1_000:
		d1 := (n / 100) << 1
		d2 := (n % 100) << 1

		curr -= 4
		buf[curr] = lut[d1]
		buf[curr+1] = lut[d1+1]
		buf[curr+2] = lut[d2]
		buf[curr+3] = lut[d2+1]
	case n >= 100:
		d2 := (n % 100) << 1

		curr -= 3
		buf[curr] = Digit(n / 100)
		buf[curr+1] = lut[d2]
		buf[curr+2] = lut[d2+1]
	case n >= 10:
		d := n << 1

		curr -= 2
		buf[curr] = lut[d]
		buf[curr+1] = lut[d+1]
	case n > 0:
		curr--
		buf[curr] = Digit(n)
	}

	clear(buf[:curr])
	return curr, nil
}

// DigitsToNumber reads digits as base-10 positional notation, most
// significant first. Leading zeros are allowed.
func DigitsToNumber(digits []Digit) uint256.Int {
	var res, tmp uint256.Int
	var acc uint64
	var n int
	for _, d := range digits {
		acc = acc*10 + uint64(d)
		n++
		if n == chunkDigits {
			res.Mul(&res, &pow10[chunkDigits])
			res.Add(&res, tmp.SetUint64(acc))
			acc, n = 0, 0
		}
	}
	res.Mul(&res, &pow10[n])
	res.Add(&res, tmp.SetUint64(acc))
	return res
}
