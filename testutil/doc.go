// Package testutil provides testing utilities for vec2101010.
//
// This package is intended for use in tests and benchmarks only.
// It provides deterministic generators for component tuples and raw words.
//
// # Random Generation
//
//	rng := testutil.NewRNG(seed)
//	comps := rng.UniformComponents(1000)     // [x, y, z, w] in [0, 1)
//	wild := rng.UniformRangeComponents(1000) // [x, y, z, w] in [-1, 2)
//	words := rng.RawWords(1000)              // arbitrary uint32 patterns
package testutil
