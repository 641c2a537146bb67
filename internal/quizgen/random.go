package quizgen

import (
	"math/rand/v2"
	"time"
)

// RandomSource is the randomness consumed by the synthesizer: one uniform draw
// per shape choice and coin flip, plus shuffles of distractors and options.
// *rand.Rand from math/rand/v2 satisfies it.
type RandomSource interface {
	Float64() float64
	Shuffle(n int, swap func(i, j int))
}

// RandomFactory creates a fresh source for one draft. Sources are not shared
// between drafts, so no locking is needed.
type RandomFactory func() RandomSource

// NewSeededSource returns a deterministic PCG source.
func NewSeededSource(seed uint64) RandomSource {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// TimeSeededFactory seeds every draft from the wall clock.
func TimeSeededFactory() RandomFactory {
	return func() RandomSource {
		now := uint64(time.Now().UnixNano())
		return rand.New(rand.NewPCG(now, now>>1))
	}
}

// SeededFactory makes every draft replay the same sequence. A zero seed
// falls back to TimeSeededFactory.
func SeededFactory(seed uint64) RandomFactory {
	if seed == 0 {
		return TimeSeededFactory()
	}
	return func() RandomSource {
		return NewSeededSource(seed)
	}
}
