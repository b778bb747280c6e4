package fifteen

import (
	"math/rand/v2"
)

// Initializer provides the starting layout: a permutation of 1..width²-1
// written row-major, followed by the blank.
type Initializer interface {
	Permutation() []int
}

// RandomInitializer shuffles the tiles once and repairs odd shuffles.
type RandomInitializer struct {
	rng         *rand.Rand
	width       int
	permutation []int
}

// NewRandomInitializer returns an initializer for a board of the given width.
func NewRandomInitializer(rng *rand.Rand, width int) *RandomInitializer {
	return &RandomInitializer{rng: rng, width: width}
}

// Permutation returns the same even permutation on every call.
func (r *RandomInitializer) Permutation() []int {
	if r.permutation == nil {
		n := r.width*r.width - 1
		perm := make([]int, n)
		for i := range perm {
			perm[i] = i + 1
		}
		r.rng.Shuffle(n, func(i, j int) { perm[i], perm[j] = perm[j], perm[i] })

		if !IsEven(perm) {
			MakeEven(perm)
		}
		r.permutation = perm
	}

	out := make([]int, len(r.permutation))
	copy(out, r.permutation)
	return out
}

// FixedInitializer hands out a fixed layout.
type FixedInitializer []int

func (f FixedInitializer) Permutation() []int {
	out := make([]int, len(f))
	copy(out, f)
	return out
}
