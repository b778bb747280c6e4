package engine

import (
	"fmt"

	"github.com/wricardo/coursework/game/board"
)

// Game is what a driver (CLI, UI, test harness) needs from a puzzle.
type Game interface {
	// Lifecycle
	Initialize() error

	// Status, computed from the current board
	CanMove() bool
	HasWon() bool

	// ProcessMove applies one move and reports whether the board changed.
	ProcessMove(d board.Direction) (bool, error)

	// Board access
	ValueAt(i, j int) (int, bool, error)
	Width() int
}

// BulkMove applies moves in order and returns whether each one changed the
// board. It stops after the move that wins the game.
func BulkMove(g Game, moves []board.Direction) ([]bool, error) {
	results := make([]bool, 0, len(moves))

	for idx, d := range moves {
		if g.HasWon() {
			break
		}

		moved, err := g.ProcessMove(d)
		if err != nil {
			return results, fmt.Errorf("move %d (%s): %w", idx+1, d, err)
		}
		results = append(results, moved)
	}

	return results, nil
}

// Snapshot returns the board row by row; 0 marks an empty cell.
func Snapshot(g Game) ([][]int, error) {
	w := g.Width()
	rows := make([][]int, w)
	for i := 1; i <= w; i++ {
		rows[i-1] = make([]int, w)
		for j := 1; j <= w; j++ {
			v, ok, err := g.ValueAt(i, j)
			if err != nil {
				return nil, err
			}
			if ok {
				rows[i-1][j-1] = v
			}
		}
	}
	return rows, nil
}
