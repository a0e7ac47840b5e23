package testutil

import (
	"math"
	"math/rand"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Ints returns n pseudo-random values in [0, limit).
// Locks only once per call (preferred over calling Intn in a loop).
func (r *RNG) Ints(n, limit int) []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]int, n)
	for i := range out {
		out[i] = r.rand.Intn(limit)
	}
	return out
}

// FillInts fills dst with pseudo-random values in [0, limit).
func (r *RNG) FillInts(dst []int, limit int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range dst {
		dst[i] = r.rand.Intn(limit)
	}
}

// Index returns a valid index into a sequence of the given size.
// size must be positive.
func (r *RNG) Index(size int) int {
	return r.Intn(size)
}

// OutOfRange returns an index outside [0, size): either negative or at
// least size, with equal probability.
func (r *RNG) OutOfRange(size int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.rand.Intn(2) == 0 {
		return -1 - r.rand.Intn(math.MaxInt32)
	}
	return size + r.rand.Intn(math.MaxInt32)
}

// Strings returns n pseudo-random lowercase strings of length 1..maxLen.
func (r *RNG) Strings(n, maxLen int) []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, n)
	for i := range out {
		b := make([]byte, 1+r.rand.Intn(maxLen))
		for j := range b {
			b[j] = byte('a' + r.rand.Intn(26))
		}
		out[i] = string(b)
	}
	return out
}

// Reversed returns a reversed copy of s.
func Reversed[T any](s []T) []T {
	out := make([]T, len(s))
	for i, v := range s {
		out[len(s)-1-i] = v
	}
	return out
}
