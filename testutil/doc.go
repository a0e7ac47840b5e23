// Package testutil provides testing utilities for fixedarray.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded RNG for randomized property tests and helpers for
// building expected element sequences.
//
// # Random Values
//
//	rng := testutil.NewRNG(seed)
//	vals := rng.Ints(6, 1000)   // six values in [0, 1000)
//	i := rng.Index(6)           // valid index into a 6-element array
//	j := rng.OutOfRange(6)      // index outside [0, 6)
//
// # Expected Sequences
//
//	want := testutil.Reversed([]int{1, 2, 3}) // [3 2 1]
package testutil
