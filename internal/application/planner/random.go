package planner

import (
	"math/rand"
	"time"
)

// RandomSource supplies uniform random indexes for recipe picks.
// Injecting it keeps selection reproducible under test.
type RandomSource interface {
	// Intn returns a uniform value in [0, n). n must be positive.
	Intn(n int) int
}

type mathRandSource struct {
	rng *rand.Rand
}

// NewRandomSource returns the production random source, seeded from
// the clock.
func NewRandomSource() RandomSource {
	return &mathRandSource{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

func (s *mathRandSource) Intn(n int) int {
	return s.rng.Intn(n)
}
