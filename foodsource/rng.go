// Package foodsource: random streams for Exploit and Randomize.
//
// Every food source draws from the *rand.Rand its caller passes in. A nil rng
// means "use my own stream": a generator keyed by the food source id, created
// on first use and kept for the source's lifetime, so a colony that never
// passes an rng still replays identically for the same ids.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. A colony running bees in parallel
//     gives each food source its own stream (DeriveRand(base, uint64(id))).
package foodsource

import "math/rand"

// defaultRNGSeed replaces seed 0 and parents the per-id streams.
const defaultRNGSeed int64 = 1

// SplitMix64 constants.
const (
	mixGamma = 0x9e3779b97f4a7c15
	mixMul1  = 0xbf58476d1ce4e5b9
	mixMul2  = 0x94d049bb133111eb
)

// NewRand returns the colony's base generator. Seed 0 maps to defaultRNGSeed.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}
	return rand.New(rand.NewSource(seed))
}

// streamSeed mixes a parent seed with a food source id so that consecutive
// ids start from unrelated states.
func streamSeed(parent int64, id uint64) int64 {
	z := uint64(parent) ^ (id + mixGamma) + mixGamma
	z = (z ^ (z >> 30)) * mixMul1
	z = (z ^ (z >> 27)) * mixMul2
	return int64(z ^ (z >> 31))
}

// DeriveRand returns the stream of food source id. With base == nil the
// parent is defaultRNGSeed, which is what randOrOwn uses. Otherwise one value
// is drawn from base, so a colony seeding its bees from a single NewRand
// gives every source a distinct, reproducible stream.
func DeriveRand(base *rand.Rand, id uint64) *rand.Rand {
	parent := defaultRNGSeed
	if base != nil {
		parent = base.Int63()
	}
	return rand.New(rand.NewSource(streamSeed(parent, id)))
}

// randOrOwn returns rng, or f's own id-keyed stream when rng is nil.
func (f *FoodSource) randOrOwn(rng *rand.Rand) *rand.Rand {
	if rng != nil {
		return rng
	}
	if f.rng == nil {
		f.rng = DeriveRand(nil, uint64(f.id))
	}
	return f.rng
}
