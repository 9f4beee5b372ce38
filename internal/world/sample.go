package world

import (
	"fmt"
	"math/rand"
)

// maxSampleAttempts bounds every rejection loop in the package.
const maxSampleAttempts = 1000

// sampleUntil draws uniform indices in [0, n) until accept returns true.
// It returns the accepted index and the number of draws taken, or
// ErrSampleExhausted after maxSampleAttempts rejected draws.
func sampleUntil(rng *rand.Rand, n int, accept func(int) bool) (int, int, error) {
	if n <= 0 {
		return -1, 0, fmt.Errorf("sample from empty range: %w", ErrSampleExhausted)
	}
	for draws := 1; draws <= maxSampleAttempts; draws++ {
		i := rng.Intn(n)
		if accept(i) {
			return i, draws, nil
		}
	}
	return -1, maxSampleAttempts, fmt.Errorf("no acceptable index in [0,%d) after %d draws: %w",
		n, maxSampleAttempts, ErrSampleExhausted)
}
