package fifteen

import (
	"fmt"

	"github.com/wricardo/coursework/game/board"
)

// inversions counts the pairs i < j with perm[i] > perm[j].
func inversions(perm []int) int {
	n := 0
	for i := 0; i < len(perm); i++ {
		for j := i + 1; j < len(perm); j++ {
			if perm[i] > perm[j] {
				n++
			}
		}
	}
	return n
}

// IsEven reports whether perm has an even number of inversions.
func IsEven(perm []int) bool {
	return inversions(perm)%2 == 0
}

// MakeEven swaps the first out-of-order pair found by scanning i ascending
// and, for each i, j ascending from i+1. One swap flips the parity, so an odd
// permutation becomes even. perm is modified in place.
func MakeEven(perm []int) {
	for i := 0; i < len(perm)-1; i++ {
		for j := i + 1; j < len(perm); j++ {
			if perm[i] > perm[j] {
				perm[i], perm[j] = perm[j], perm[i]
				return
			}
		}
	}
}

// Solvable reports whether the layout on b can be reached from the solved
// layout. The blank counts as tile width²; each slide is one transposition
// and moves the blank one step, so inversion parity plus the blank's distance
// from the bottom-right corner stays even on every reachable layout.
func Solvable(b *board.Values[int]) (bool, error) {
	w := b.Width()
	blankValue := w * w

	seq := make([]int, 0, w*w)
	var blank board.Cell
	blanks := 0
	for _, c := range b.AllCells() {
		v, ok, err := b.Get(c)
		if err != nil {
			return false, err
		}
		if !ok {
			blank = c
			blanks++
			v = blankValue
		}
		seq = append(seq, v)
	}
	if blanks != 1 {
		return false, fmt.Errorf("%w: expected exactly one blank, found %d", board.ErrInvalidConfiguration, blanks)
	}

	distance := (w - blank.Row) + (w - blank.Col)
	return (inversions(seq)+distance)%2 == 0, nil
}
