package perm

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func identity(n int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = i
	}
	return s
}

func TestShuffleDeterministic(t *testing.T) {
	in := identity(16)
	first := Shuffle(in, 11)
	for range 5 {
		if diff := cmp.Diff(first, Shuffle(in, 11)); diff != "" {
			t.Fatalf("Shuffle(seed=11) not stable (-first +again):\n%s", diff)
		}
	}
}

// The permutation for a seed is fixed across processes and releases; a
// change to the key layout or the draw sequence must show up here.
func TestShuffleGolden(t *testing.T) {
	want := []int{4, 7, 3, 14, 0, 1, 6, 15, 5, 11, 10, 9, 8, 2, 12, 13}
	if diff := cmp.Diff(want, Shuffle(identity(16), 11)); diff != "" {
		t.Errorf("Shuffle(seed=11) (-want +got):\n%s", diff)
	}
}

func TestShuffleIsPermutation(t *testing.T) {
	in := identity(16)
	out := Shuffle(in, 11)

	sorted := slices.Clone(out)
	slices.Sort(sorted)
	if diff := cmp.Diff(in, sorted); diff != "" {
		t.Errorf("Shuffle() lost or duplicated elements (-want +got):\n%s", diff)
	}
}

func TestShuffleDoesNotMutateInput(t *testing.T) {
	in := identity(16)
	_ = Shuffle(in, 7)
	if diff := cmp.Diff(identity(16), in); diff != "" {
		t.Errorf("Shuffle() modified its input (-want +got):\n%s", diff)
	}
}

func TestShuffleSeedsDiffer(t *testing.T) {
	in := identity(16)
	distinct := 0
	base := Shuffle(in, 1)
	for seed := uint64(2); seed < 10; seed++ {
		if !slices.Equal(base, Shuffle(in, seed)) {
			distinct++
		}
	}
	// 16! orderings; collisions among a handful of seeds would mean the seed is ignored.
	if distinct == 0 {
		t.Error("all seeds produced the same permutation")
	}
}

func TestShuffleEdgeSizes(t *testing.T) {
	if got := Shuffle([]int{}, 3); len(got) != 0 {
		t.Errorf("Shuffle(empty) = %v", got)
	}
	if got := Shuffle([]int{42}, 3); !slices.Equal(got, []int{42}) {
		t.Errorf("Shuffle([42]) = %v", got)
	}
}

func TestNewRandStream(t *testing.T) {
	a, b := NewRand(11), NewRand(11)
	for i := range 32 {
		if x, y := a.Uint64(), b.Uint64(); x != y {
			t.Fatalf("draw %d differs: %d != %d", i, x, y)
		}
	}
}
