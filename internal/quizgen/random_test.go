package quizgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// sequenceSource replays fixed draws and never reorders on Shuffle.
type sequenceSource struct {
	floats []float64
	next   int
}

func newSequenceSource(floats ...float64) *sequenceSource {
	return &sequenceSource{floats: floats}
}

func (s *sequenceSource) Float64() float64 {
	if len(s.floats) == 0 {
		return 0
	}
	v := s.floats[s.next%len(s.floats)]
	s.next++
	return v
}

func (s *sequenceSource) Shuffle(int, func(i, j int)) {}

func TestSeededFactory_Replays(t *testing.T) {
	f := SeededFactory(42)
	a, b := f(), f()
	for i := 0; i < 5; i++ {
		assert.Equal(t, a.Float64(), b.Float64())
	}
}

func TestSeededFactory_ZeroIsTimeSeeded(t *testing.T) {
	src := SeededFactory(0)()
	v := src.Float64()
	assert.GreaterOrEqual(t, v, 0.0)
	assert.Less(t, v, 1.0)
}
