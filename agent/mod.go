package agent

import (
	"golang.org/x/exp/rand"
	"lukechampine.com/frand"
)

// RandomSeed draws a seed from the system's secure generator.
func RandomSeed() uint64 {
	return frand.Uint64n(1<<63 - 1)
}

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
