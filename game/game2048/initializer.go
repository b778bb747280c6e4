package game2048

import (
	"math/rand/v2"

	"github.com/wricardo/coursework/game/board"
)

// DefaultFourProbability is the chance that a spawned tile is a 4.
const DefaultFourProbability = 0.1

// Initializer picks where the next tile goes and its value. ok is false when
// nothing can be placed.
type Initializer interface {
	NextValue(b *board.Values[int]) (cell board.Cell, value int, ok bool)
}

// RandomInitializer places a 2 or a 4 on a uniformly chosen empty cell.
type RandomInitializer struct {
	rng             *rand.Rand
	fourProbability float64
}

// NewRandomInitializer returns an initializer drawing from rng. A negative
// fourProbability selects DefaultFourProbability.
func NewRandomInitializer(rng *rand.Rand, fourProbability float64) *RandomInitializer {
	if fourProbability < 0 {
		fourProbability = DefaultFourProbability
	}
	return &RandomInitializer{rng: rng, fourProbability: fourProbability}
}

func (r *RandomInitializer) NextValue(b *board.Values[int]) (board.Cell, int, bool) {
	empty := b.Filter(board.IsEmpty[int]())
	if len(empty) == 0 {
		return board.Cell{}, 0, false
	}

	cell := empty[r.rng.IntN(len(empty))]
	value := 2
	if r.rng.Float64() < r.fourProbability {
		value = 4
	}
	return cell, value, true
}
