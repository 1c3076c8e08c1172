// Package shuffle provides an in-place Fisher–Yates shuffle used to
// randomize answer order so the correct option never sits in a fixed
// position. Fairness is the only requirement; the randomness is not
// cryptographically secure.
package shuffle

import (
	"math/rand"
	"sync"
	"time"
)

var (
	rngMu sync.Mutex
	rng   = rand.New(rand.NewSource(time.Now().UnixNano()))
)

// Shuffle permutes items in place using the Fisher–Yates algorithm and
// returns the same slice for chaining. Slices of length 0 or 1 are
// returned untouched.
func Shuffle[T any](items []T) []T {
	rngMu.Lock()
	defer rngMu.Unlock()
	return WithRand(rng, items)
}

// WithRand is Shuffle with an explicit random source, so callers (and
// tests) can get reproducible permutations.
func WithRand[T any](r *rand.Rand, items []T) []T {
	for i := len(items) - 1; i >= 1; i-- {
		j := r.Intn(i + 1)
		items[i], items[j] = items[j], items[i]
	}
	return items
}
