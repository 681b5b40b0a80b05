package disarium

import (
	"slices"

	"github.com/holiman/uint256"
	"golang.org/x/sync/errgroup"
)

// forDigitCountWithFrozen scans the numbers with unfrozen+len(frozen) digits,
// at most bound, whose low-order digits equal frozen.
//
// Algorithm:
//   - The power sum grows with every digit independently, so with the
//     suffix fixed it lies between the sums of the smallest completion
//     (1 0...0 frozen) and the largest (9...9 frozen).
//   - A match equals its own power sum, so it lies in that interval too.
//     Decode both sums, stamp the suffix back on (decoding loses it) and
//     intersect with the digit count's own range and the bound.
//   - Scan what is left in steps of 10^len(frozen).
func forDigitCountWithFrozen(unfrozen int, bound *uint256.Int, frozen []Digit, width int) ([]uint256.Int, uint64, error) {
	k := unfrozen + len(frozen)

	minDigits := MinForDigitCount(width, k).WithOverwritten(frozen)
	maxDigits := MaxForDigitCount(width, k).WithOverwritten(frozen)
	minNumber, maxNumber := minDigits.Number(), maxDigits.Number()
	lo, hi := minDigits.Exp(), maxDigits.Exp()

	if lo.Gt(&maxNumber) {
		return nil, 0, nil
	}

	start, startDigits := minNumber, minDigits
	if lo.Gt(&minNumber) {
		// lo <= maxNumber, so it has at most k digits and fits width
		d, err := NewDigits(width, &lo)
		if err != nil {
			return nil, 0, err
		}
		d.Overwrite(frozen)
		if n := d.Number(); n.Gt(&start) {
			start, startDigits = n, d
		}
	}

	end := maxNumber
	if hi.Lt(&end) {
		d, err := NewDigits(width, &hi)
		if err != nil {
			return nil, 0, err
		}
		d.Overwrite(frozen)
		if n := d.Number(); n.Lt(&end) {
			end = n
		}
	}
	if bound.Lt(&end) {
		end = *bound
	}
	if start.Gt(&end) {
		return nil, 0, nil
	}

	res, scanned := searchRange(start, &startDigits, &end, len(frozen), nil)
	return res, scanned, nil
}

// freezeAndSplit finds the Disarium numbers with k digits, at most bound.
//
// Algorithm:
//   - k <= spec.Frozen: plain scan of the whole digit count.
//   - Otherwise every frozen pattern 0 .. 10^Frozen-1 gets its own narrowed
//     scan. The top spec.Parallel digits of the pattern select an errgroup
//     task, each task walks the remaining patterns serially.
//   - Pattern order is not numeric order, so the merged result is sorted.
func freezeAndSplit(k int, bound *uint256.Int, spec Specialization, workers int) ([]uint256.Int, uint64, error) {
	width := spec.width(k)
	if width < k || width > MaxDigits {
		return nil, 0, Error.Wrap(DigitCountError.New("width %d cannot hold %d digits", width, k))
	}
	if k <= spec.Frozen {
		res, scanned := forDigitCount(k, bound, width)
		return res, scanned, nil
	}

	unfrozen := k - spec.Frozen
	perTask := pow10[spec.Frozen-spec.Parallel].Uint64()
	tasks := pow10[spec.Parallel].Uint64()

	runTask := func(task uint64) ([]uint256.Int, uint64, error) {
		var (
			res     []uint256.Int
			scanned uint64
			buf     [MaxDigits]Digit
			pattern uint256.Int
		)
		frozen := buf[:spec.Frozen]
		for i := uint64(0); i < perTask; i++ {
			pattern.SetUint64(task*perTask + i)
			if _, err := PutDigits(&pattern, frozen); err != nil {
				return nil, 0, err
			}
			found, n, err := forDigitCountWithFrozen(unfrozen, bound, frozen, width)
			if err != nil {
				return nil, 0, err
			}
			res = append(res, found...)
			scanned += n
		}
		return res, scanned, nil
	}

	if tasks == 1 {
		res, scanned, err := runTask(0)
		if err != nil {
			return nil, 0, err
		}
		slices.SortFunc(res, compareNumbers)
		return res, scanned, nil
	}

	results := make([][]uint256.Int, tasks)
	counts := make([]uint64, tasks)

	var eg errgroup.Group
	if workers > 0 {
		eg.SetLimit(workers)
	}
	for task := uint64(0); task < tasks; task++ {
		eg.Go(func() error {
			res, scanned, err := runTask(task)
			if err != nil {
				return err
			}
			results[task], counts[task] = res, scanned
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, 0, err
	}

	var merged []uint256.Int
	var scanned uint64
	for task := range results {
		merged = append(merged, results[task]...)
		scanned += counts[task]
	}
	slices.SortFunc(merged, compareNumbers)
	return merged, scanned, nil
}

func compareNumbers(a, b uint256.Int) int {
	return a.Cmp(&b)
}
