package ranking

import (
	"math/rand/v2"
	"sync"
)

const (
	DefaultJitterMax = 20
	maxScore         = 100
)

// Jitter adds bounded random variance to display scores in demo mode.
type Jitter struct {
	mu  sync.Mutex
	rng *rand.Rand
	max int
}

// NewJitter returns a jitter adding [0, max) to a score. The same seed yields the
// same sequence. A non-positive max means DefaultJitterMax.
func NewJitter(seed uint64, max int) *Jitter {
	if max <= 0 {
		max = DefaultJitterMax
	}
	return &Jitter{
		rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		max: max,
	}
}

// Apply returns score plus the next variance, clamped to 100.
func (j *Jitter) Apply(score int) int {
	if j == nil {
		return score
	}

	j.mu.Lock()
	delta := j.rng.IntN(j.max)
	j.mu.Unlock()

	return min(score+delta, maxScore)
}
