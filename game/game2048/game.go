package game2048

import (
	"fmt"

	"github.com/wricardo/coursework/game/board"
)

const (
	DefaultWidth  = 4
	DefaultTarget = 2048
)

// Game is a 2048 board together with the initializer that spawns tiles.
// Winning and losing are derived from the board on every query.
type Game struct {
	board       *board.Values[int]
	initializer Initializer
	target      int
}

// Option customises a Game.
type Option func(*settings)

type settings struct {
	width  int
	target int
}

// WithWidth sets the board width (default 4).
func WithWidth(width int) Option {
	return func(s *settings) { s.width = width }
}

// WithTarget sets the winning tile (default 2048).
func WithTarget(target int) Option {
	return func(s *settings) { s.target = target }
}

// New creates a game with an empty board.
func New(initializer Initializer, opts ...Option) (*Game, error) {
	s := settings{width: DefaultWidth, target: DefaultTarget}
	for _, opt := range opts {
		opt(&s)
	}

	if initializer == nil {
		return nil, fmt.Errorf("%w: initializer is required", board.ErrInvalidConfiguration)
	}
	if s.target < 2 {
		return nil, fmt.Errorf("%w: target tile must be at least 2, got %d", board.ErrInvalidConfiguration, s.target)
	}

	b, err := board.NewValues[int](s.width)
	if err != nil {
		return nil, err
	}

	return &Game{board: b, initializer: initializer, target: s.target}, nil
}

// Board exposes the underlying value board.
func (g *Game) Board() *board.Values[int] {
	return g.board
}

// Width returns the board width.
func (g *Game) Width() int {
	return g.board.Width()
}

// Target returns the winning tile value.
func (g *Game) Target() int {
	return g.target
}

// Initialize places the two starting tiles.
func (g *Game) Initialize() error {
	for range 2 {
		if err := AddNewValue(g.board, g.initializer); err != nil {
			return err
		}
	}
	return nil
}

// CanMove reports whether any cell is empty. A full board with a possible
// merge still reports false.
func (g *Game) CanMove() bool {
	return g.board.Any(board.IsEmpty[int]())
}

// HasWon reports whether the target tile is on the board.
func (g *Game) HasWon() bool {
	return g.board.Any(board.Equals(g.target))
}

// ProcessMove slides every line toward d and spawns one tile if anything
// changed. It reports whether the board changed.
func (g *Game) ProcessMove(d board.Direction) (bool, error) {
	moved, err := MoveValues(g.board, d)
	if err != nil {
		return false, err
	}
	if moved {
		if err := AddNewValue(g.board, g.initializer); err != nil {
			return true, err
		}
	}
	return moved, nil
}

// ValueAt returns the tile at (i, j).
func (g *Game) ValueAt(i, j int) (int, bool, error) {
	return g.board.ValueAt(i, j)
}

// AddNewValue asks initializer for a tile and stores it. Nothing happens when
// the initializer has no placement.
func AddNewValue(b *board.Values[int], initializer Initializer) error {
	cell, value, ok := initializer.NextValue(b)
	if !ok {
		return nil
	}
	if err := b.Set(cell, value); err != nil {
		return fmt.Errorf("place new tile at %v: %w", cell, err)
	}
	return nil
}

// MoveValuesInLine applies merge-and-slide to the cells of line, front first,
// and reports whether any value changed.
func MoveValuesInLine(b *board.Values[int], line []board.Cell) (bool, error) {
	values := make([]*int, len(line))
	for i, c := range line {
		v, ok, err := b.Get(c)
		if err != nil {
			return false, err
		}
		if ok {
			values[i] = &v
		}
	}

	merged := MoveAndMergeEqual(values, func(v int) int { return v * 2 })

	changed := false
	for i, c := range line {
		before, after := values[i], merged[i]
		if (before == nil) != (after == nil) || (before != nil && *before != *after) {
			changed = true
		}

		var err error
		if after != nil {
			err = b.Set(c, *after)
		} else {
			err = b.Clear(c)
		}
		if err != nil {
			return changed, err
		}
	}
	return changed, nil
}

// MoveValues moves every row or column of b toward d and reports whether the
// board changed. Unknown directions leave the board untouched.
func MoveValues(b *board.Values[int], d board.Direction) (bool, error) {
	w := b.Width()
	var lines [][]board.Cell

	for k := 1; k <= w; k++ {
		switch d {
		case board.Up:
			lines = append(lines, b.Column(board.Span(1, w), k))
		case board.Down:
			lines = append(lines, b.Column(board.Span(w, 1), k))
		case board.Left:
			lines = append(lines, b.Row(k, board.Span(1, w)))
		case board.Right:
			lines = append(lines, b.Row(k, board.Span(w, 1)))
		}
	}

	moved := false
	for _, line := range lines {
		changed, err := MoveValuesInLine(b, line)
		if err != nil {
			return moved, err
		}
		moved = moved || changed
	}
	return moved, nil
}
