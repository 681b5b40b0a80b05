package disarium

import (
	"io"
	"iter"
	"log/slog"
	"runtime"
	"time"

	"github.com/holiman/uint256"
)

// DigitCountStats describes the search of one digit count.
type DigitCountStats struct {
	DigitCount     int
	Specialization Specialization
	Scanned        uint64
	Found          int
	Elapsed        time.Duration
}

// Observer receives one DigitCountStats per searched digit count. It is
// called from the goroutine running the search.
type Observer interface {
	ObserveDigitCount(stats DigitCountStats)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(DigitCountStats)

// ObserveDigitCount calls f(stats).
func (f ObserverFunc) ObserveDigitCount(stats DigitCountStats) { f(stats) }

// Finder runs searches with a fixed profile. It holds no per-search state and
// is safe for concurrent use.
type Finder struct {
	profile  Profile
	workers  int
	logger   *slog.Logger
	observer Observer
}

// Option configures a Finder.
type Option func(*Finder)

// WithProfile replaces DefaultProfile.
func WithProfile(p Profile) Option {
	return func(f *Finder) { f.profile = p }
}

// WithWorkers caps concurrently running tasks; it overrides Profile.Workers.
func WithWorkers(n int) Option {
	return func(f *Finder) { f.workers = n }
}

// WithLogger sets the logger. Per digit count progress is logged at Debug.
func WithLogger(l *slog.Logger) Option {
	return func(f *Finder) { f.logger = l }
}

// WithObserver registers o.
func WithObserver(o Observer) Option {
	return func(f *Finder) { f.observer = o }
}

// NewFinder returns a Finder. It fails with ProfileError if the profile is
// invalid.
func NewFinder(opts ...Option) (*Finder, error) {
	f := &Finder{
		profile: DefaultProfile(),
		workers: -1,
	}
	for _, opt := range opts {
		opt(f)
	}
	if err := f.profile.Validate(); err != nil {
		return nil, err
	}
	if f.workers < 0 {
		f.workers = f.profile.Workers
	}
	if f.workers == 0 {
		f.workers = runtime.GOMAXPROCS(0)
	}
	if f.logger == nil {
		f.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return f, nil
}

// Find returns every Disarium number in [0, bound], ascending. 0 is always
// included. Bounds with more than MaxDigits digits fail with TooLargeError.
//
// Algorithm:
//   - Digit counts are searched in increasing order and each digit count's
//     result is ascending, so plain concatenation is globally ascending.
func (f *Finder) Find(bound *uint256.Int) (res []uint256.Int, err error) {
	defer Error.WrapP(&err)

	maxK := DigitCount(bound)
	if maxK > MaxDigits {
		return nil, TooLargeError.New("bound %s has %d digits, max %d", bound.Dec(), maxK, MaxDigits)
	}

	res = []uint256.Int{{}}
	for k := 1; k <= maxK; k++ {
		found, err := f.digitCount(k, bound)
		if err != nil {
			return nil, err
		}
		res = append(res, found...)
	}
	return res, nil
}

// FindForDigitCount returns the Disarium numbers with exactly k digits,
// ascending. Zero is written with one digit, so k == 1 yields 0..9 and
// k == 0 yields just 0.
func (f *Finder) FindForDigitCount(k int) (res []uint256.Int, err error) {
	defer Error.WrapP(&err)

	if k < 0 || k > MaxDigits {
		return nil, DigitCountError.New("%d outside 0..%d", k, MaxDigits)
	}
	if k <= 1 {
		res = []uint256.Int{{}}
	}
	if k == 0 {
		return res, nil
	}

	bound := maxForDigitCount(k)
	found, err := f.digitCount(k, &bound)
	if err != nil {
		return nil, err
	}
	return append(res, found...), nil
}

// All streams Find(bound). Each digit count is searched only when the
// consumer reaches it, so breaking out of the loop skips the remaining
// digit counts. On error the error is yielded once and iteration ends.
func (f *Finder) All(bound *uint256.Int) iter.Seq2[uint256.Int, error] {
	return func(yield func(uint256.Int, error) bool) {
		maxK := DigitCount(bound)
		if maxK > MaxDigits {
			yield(uint256.Int{}, Error.Wrap(TooLargeError.New("bound %s has %d digits, max %d", bound.Dec(), maxK, MaxDigits)))
			return
		}
		if !yield(uint256.Int{}, nil) {
			return
		}
		for k := 1; k <= maxK; k++ {
			found, err := f.digitCount(k, bound)
			if err != nil {
				yield(uint256.Int{}, Error.Wrap(err))
				return
			}
			for _, n := range found {
				if !yield(n, nil) {
					return
				}
			}
		}
	}
}

// digitCount searches digit count k with its specialization and reports it.
func (f *Finder) digitCount(k int, bound *uint256.Int) ([]uint256.Int, error) {
	spec := f.profile.For(k)
	start := time.Now()

	res, scanned, err := freezeAndSplit(k, bound, spec, f.workers)
	if err != nil {
		return nil, err
	}

	stats := DigitCountStats{
		DigitCount:     k,
		Specialization: spec,
		Scanned:        scanned,
		Found:          len(res),
		Elapsed:        time.Since(start),
	}
	f.logger.Debug("digit count searched",
		"digits", k,
		"frozen", spec.Frozen,
		"parallel", spec.Parallel,
		"scanned", scanned,
		"found", len(res),
		"elapsed", stats.Elapsed,
	)
	if f.observer != nil {
		f.observer.ObserveDigitCount(stats)
	}
	return res, nil
}

var defaultFinder = func() *Finder {
	f, err := NewFinder()
	if err != nil {
		panic(err)
	}
	return f
}()

// Find returns every Disarium number in [0, bound] using DefaultProfile.
func Find(bound *uint256.Int) ([]uint256.Int, error) {
	return defaultFinder.Find(bound)
}

// FindForDigitCount returns the Disarium numbers with exactly k digits using
// DefaultProfile.
func FindForDigitCount(k int) ([]uint256.Int, error) {
	return defaultFinder.FindForDigitCount(k)
}

// FindUint64 is Find for bounds and results that fit in a uint64.
func FindUint64(bound uint64) ([]uint64, error) {
	res, err := defaultFinder.Find(uint256.NewInt(bound))
	if err != nil {
		return nil, err
	}
	out := make([]uint64, len(res))
	for i := range res {
		out[i] = res[i].Uint64()
	}
	return out, nil
}
