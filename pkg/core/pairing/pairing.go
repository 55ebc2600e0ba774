// Package pairing splits a permutation into the pairs a sheet is built on.
package pairing

import (
	"github.com/matzehuels/connections/pkg/core/grid"
	"github.com/matzehuels/connections/pkg/errors"
)

// Pair links two grid cells. A is drawn from the first half of the
// permutation, B from the second.
type Pair struct {
	A grid.Cell `toml:"a" json:"a"`
	B grid.Cell `toml:"b" json:"b"`
}

// Split zips the first half of perm with the second half positionally:
// pair i is (perm[i], perm[i+len(perm)/2]). An odd-length permutation is
// rejected rather than truncated.
func Split(perm []grid.Cell) ([]Pair, error) {
	if len(perm)%2 != 0 {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "cannot pair %d cells: count is odd", len(perm))
	}
	half := len(perm) / 2
	pairs := make([]Pair, half)
	for i := range pairs {
		pairs[i] = Pair{A: perm[i], B: perm[i+half]}
	}
	return pairs, nil
}

// Zip returns how many pairs a page can fill when n items are available for
// them: the shorter of the two lengths. Surplus pairs stay empty and surplus
// items are ignored; neither is an error.
func Zip(pairs []Pair, n int) int {
	return max(0, min(len(pairs), n))
}
