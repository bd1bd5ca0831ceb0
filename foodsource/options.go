// Package: abcvrp/foodsource
//
// options.go: functional options for New.
//
// Contract:
//   • Options are functional (type Option func(*settings)).
//   • Option constructors validate and PANIC on meaningless values; the
//     config package validates untrusted input before building options.
//   • Zero options yield defaultSettings().

package foodsource

import (
	"fmt"
	"math"
	"strings"
)

// DefaultTrialLimit is the exhaustion threshold used when WithTrialLimit is absent.
// Colonies have been tuned with both 10 and 20; pass the limit explicitly to pin one.
const DefaultTrialLimit = 10

// ShuffleMode selects the permutation procedure used by Randomize.
type ShuffleMode uint8

const (
	// ShuffleBiased swaps every interior position with a position drawn from the
	// whole interior (self-swaps allowed). The distribution is not uniform.
	ShuffleBiased ShuffleMode = iota

	// ShuffleUniform runs Fisher–Yates restricted to the interior.
	ShuffleUniform
)

// String returns the configuration name of m.
func (m ShuffleMode) String() string {
	switch m {
	case ShuffleBiased:
		return "biased"
	case ShuffleUniform:
		return "uniform"
	default:
		return fmt.Sprintf("ShuffleMode(%d)", uint8(m))
	}
}

// ParseShuffleMode maps "biased"/"uniform" (case-insensitive) to a ShuffleMode.
// The empty string maps to ShuffleBiased.
func ParseShuffleMode(s string) (ShuffleMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "biased":
		return ShuffleBiased, nil
	case "uniform":
		return ShuffleUniform, nil
	default:
		return 0, fmt.Errorf("ParseShuffleMode(%q): %w", s, ErrUnknownShuffle)
	}
}

// settings is the resolved configuration of a FoodSource.
type settings struct {
	trialLimit int
	shuffle    ShuffleMode
	tolerance  float64
	observer   Observer
}

func defaultSettings() settings {
	return settings{
		trialLimit: DefaultTrialLimit,
		shuffle:    ShuffleBiased,
	}
}

// Option customizes a FoodSource at construction.
type Option func(*settings)

// WithTrialLimit sets the exhaustion threshold: IsExhausted is true once trial > n.
// Panics if n < 0.
func WithTrialLimit(n int) Option {
	if n < 0 {
		panic("foodsource: WithTrialLimit(n<0)")
	}
	return func(s *settings) { s.trialLimit = n }
}

// WithShuffle selects the Randomize procedure. Panics on an unknown mode.
func WithShuffle(m ShuffleMode) Option {
	if m != ShuffleBiased && m != ShuffleUniform {
		panic("foodsource: WithShuffle(unknown mode)")
	}
	return func(s *settings) { s.shuffle = m }
}

// WithFitnessTolerance makes CompareTo treat fitness values closer than eps as equal.
// The default 0 compares exactly. Panics if eps is negative, infinite or NaN.
//
// A positive tolerance makes "equal" non-transitive; sorts stay well defined
// only while the population's fitness values are separated by more than eps
// or clustered within it.
func WithFitnessTolerance(eps float64) Option {
	if eps < 0 || math.IsNaN(eps) || math.IsInf(eps, 0) {
		panic("foodsource: WithFitnessTolerance(eps<0, Inf or NaN)")
	}
	return func(s *settings) { s.tolerance = eps }
}

// WithObserver attaches o to receive an Event after every Exploit and Randomize.
// Panics on nil.
func WithObserver(o Observer) Option {
	if o == nil {
		panic("foodsource: WithObserver(nil)")
	}
	return func(s *settings) { s.observer = o }
}
