package quiz

import "math/rand/v2"

// NewShuffler returns a PCG generator seeded with seed; zero picks a random
// seed so every run gets a fresh permutation.
func NewShuffler(seed uint64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(seed, seed))
}
