package shared

import (
	"math/rand"
	"time"
)

// RandSource abstracts the randomness used for normal-phase template
// selection so tests can seed it deterministically. *rand.Rand satisfies it.
type RandSource interface {
	Intn(n int) int
}

// NewSystemRand returns a RandSource seeded from the system clock
func NewSystemRand() RandSource {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}
