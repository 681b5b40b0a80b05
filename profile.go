package disarium

import (
	"bytes"
	"os"
	"slices"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Specialization selects how one digit count is searched. Any combination is
// correct; the values only trade range narrowing against the number of
// sub-ranges and goroutines.
type Specialization struct {
	// Frozen is the number of low-order digits held fixed per sub-range.
	// Digit counts <= Frozen are scanned without freezing.
	Frozen int `json:"frozen" yaml:"frozen" validate:"gte=0,lte=8"`

	// Parallel is how many of the frozen digits select a goroutine;
	// 10^Parallel tasks are started, 0 means serial.
	Parallel int `json:"parallel" yaml:"parallel" validate:"gte=0,ltefield=Frozen"`

	// Width is the digit array width, 0 meaning the digit count itself.
	Width int `json:"width" yaml:"width" validate:"gte=0,lte=32"`
}

// width resolves Width for digit count k.
func (s Specialization) width(k int) int {
	if s.Width == 0 {
		return k
	}
	return s.Width
}

// Profile maps digit counts to specializations. The specialization for digit
// count k comes from the tier with the greatest key <= k.
//
// Thread Safety: Safe to read concurrently. Not safe to modify after passing
// it to a Finder.
type Profile struct {
	// Tiers is keyed by the first digit count a specialization applies to.
	Tiers map[int]Specialization `json:"tiers" yaml:"tiers" validate:"min=1,dive"`

	// Workers caps concurrently running tasks, 0 meaning GOMAXPROCS.
	Workers int `json:"workers" yaml:"workers" validate:"gte=0"`
}

// DefaultProfile returns the built-in tuning.
func DefaultProfile() Profile {
	return Profile{
		Tiers: map[int]Specialization{
			1:  {Frozen: 0, Parallel: 0},
			6:  {Frozen: 2, Parallel: 0},
			9:  {Frozen: 3, Parallel: 1},
			12: {Frozen: 4, Parallel: 2},
			16: {Frozen: 5, Parallel: 2},
		},
	}
}

// For returns the specialization for digit count k. Digit counts below every
// tier get the zero Specialization (plain scan).
func (p Profile) For(k int) Specialization {
	best := 0
	var spec Specialization
	for key, s := range p.Tiers {
		if key <= k && key > best {
			best, spec = key, s
		}
	}
	return spec
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks field ranges, tier keys and that every explicit Width
// covers all digit counts its tier applies to.
func (p Profile) Validate() (err error) {
	defer ProfileError.WrapP(&err)

	if err := validate.Struct(p); err != nil {
		return err
	}

	keys := make([]int, 0, len(p.Tiers))
	for k := range p.Tiers {
		if k < 1 || k > MaxDigits {
			return Error.New("tier %d outside 1..%d", k, MaxDigits)
		}
		keys = append(keys, k)
	}
	slices.Sort(keys)

	for i, k := range keys {
		s := p.Tiers[k]
		if s.Width == 0 {
			continue
		}
		last := MaxDigits
		if i+1 < len(keys) {
			last = keys[i+1] - 1
		}
		if s.Width < last {
			return Error.New("tier %d: width %d cannot hold %d digits", k, s.Width, last)
		}
	}
	return nil
}

// LoadProfile reads a YAML profile from path and validates it. Unknown
// fields are rejected.
//
//	workers: 8
//	tiers:
//	  1: {frozen: 0}
//	  7: {frozen: 3, parallel: 1}
func LoadProfile(path string) (p Profile, err error) {
	defer Error.WrapP(&err)

	data, err := os.ReadFile(path)
	if err != nil {
		return Profile{}, err
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil {
		return Profile{}, ProfileError.New("%s: %v", path, err)
	}

	if err := p.Validate(); err != nil {
		return Profile{}, err
	}
	return p, nil
}
