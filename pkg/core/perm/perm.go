// Package perm shuffles grid cells with a seeded, reproducible generator.
//
// The generator is math/rand/v2's ChaCha8, a counter-based stream cipher
// generator whose output is fixed by its 32-byte seed. The uint64 seed is
// written little-endian into the first 8 bytes of that seed; the remaining
// bytes are zero. The same seed therefore yields the same permutation on
// every run, platform and process.
//
// The shuffle is an explicit Fisher–Yates pass rather than rand.Shuffle so
// the exact sequence of draws is part of this package's contract.
package perm

import (
	"encoding/binary"
	"math/rand/v2"
	"slices"
)

// NewRand returns the generator used by [Shuffle] for seed.
func NewRand(seed uint64) *rand.Rand {
	var key [32]byte
	binary.LittleEndian.PutUint64(key[:8], seed)
	return rand.New(rand.NewChaCha8(key))
}

// Shuffle returns a permutation of items determined by seed.
// The input slice is not modified.
func Shuffle[T any](items []T, seed uint64) []T {
	out := slices.Clone(items)
	FisherYates(out, NewRand(seed))
	return out
}

// FisherYates permutes s in place: for i from len(s)-1 down to 1 it swaps
// s[i] with s[j], j drawn uniformly from [0, i].
func FisherYates[T any](s []T, rng *rand.Rand) {
	for i := len(s) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		s[i], s[j] = s[j], s[i]
	}
}
