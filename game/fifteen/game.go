package fifteen

import (
	"errors"
	"fmt"

	"github.com/wricardo/coursework/game/board"
)

const DefaultWidth = 4

var (
	ErrNotInitialized = errors.New("game is not initialized")
	ErrNoBlank        = errors.New("board has no blank cell")
)

// Game is a Game of Fifteen board together with its starting layout.
type Game struct {
	board       *board.Values[int]
	initializer Initializer
	initialized bool
}

// Option customises a Game.
type Option func(*settings)

type settings struct {
	width int
}

// WithWidth sets the board width (default 4).
func WithWidth(width int) Option {
	return func(s *settings) { s.width = width }
}

// New creates a game with an empty board; call Initialize to lay out tiles.
func New(initializer Initializer, opts ...Option) (*Game, error) {
	s := settings{width: DefaultWidth}
	for _, opt := range opts {
		opt(&s)
	}

	if initializer == nil {
		return nil, fmt.Errorf("%w: initializer is required", board.ErrInvalidConfiguration)
	}
	if s.width < 2 {
		return nil, fmt.Errorf("%w: width must be at least 2, got %d", board.ErrInvalidConfiguration, s.width)
	}

	b, err := board.NewValues[int](s.width)
	if err != nil {
		return nil, err
	}
	return &Game{board: b, initializer: initializer}, nil
}

// Board exposes the underlying value board.
func (g *Game) Board() *board.Values[int] {
	return g.board
}

// Width returns the board width.
func (g *Game) Width() int {
	return g.board.Width()
}

// Initialize writes the initializer's permutation row-major and leaves the
// last cell blank. The board is untouched if the permutation is invalid.
func (g *Game) Initialize() error {
	perm := g.initializer.Permutation()
	if err := validatePermutation(perm, g.Width()*g.Width()-1); err != nil {
		return err
	}

	for idx, c := range g.board.AllCells() {
		var err error
		if idx < len(perm) {
			err = g.board.Set(c, perm[idx])
		} else {
			err = g.board.Clear(c)
		}
		if err != nil {
			return err
		}
	}
	g.initialized = true
	return nil
}

func validatePermutation(perm []int, n int) error {
	if len(perm) != n {
		return fmt.Errorf("%w: permutation must have %d values, got %d", board.ErrInvalidConfiguration, n, len(perm))
	}
	seen := make([]bool, n+1)
	for _, v := range perm {
		if v < 1 || v > n {
			return fmt.Errorf("%w: permutation value %d outside 1..%d", board.ErrInvalidConfiguration, v, n)
		}
		if seen[v] {
			return fmt.Errorf("%w: permutation value %d repeated", board.ErrInvalidConfiguration, v)
		}
		seen[v] = true
	}
	return nil
}

// CanMove is always true: the blank has a neighbour on any board of width 2
// or more.
func (g *Game) CanMove() bool {
	return true
}

// HasWon reports whether the tiles read 1..width²-1 row-major with the blank
// last.
func (g *Game) HasWon() bool {
	cells := g.board.AllCells()
	last := len(cells) - 1
	for idx, c := range cells {
		v, ok, err := g.board.Get(c)
		if err != nil {
			return false
		}
		if idx == last {
			return !ok
		}
		if !ok || v != idx+1 {
			return false
		}
	}
	return false
}

// ProcessMove slides the tile on the d.Opposite() side of the blank into it.
// It reports false when there is no such tile.
func (g *Game) ProcessMove(d board.Direction) (bool, error) {
	if !g.initialized {
		return false, ErrNotInitialized
	}
	blank, ok := g.board.Find(board.IsEmpty[int]())
	if !ok {
		return false, ErrNoBlank
	}

	from, ok := g.board.Neighbor(blank, d.Opposite())
	if !ok {
		return false, nil
	}

	var run []board.Cell
	if from.Col == blank.Col {
		run = g.board.Column(board.Span(blank.Row, from.Row), blank.Col)
	} else {
		run = g.board.Row(blank.Row, board.Span(blank.Col, from.Col))
	}

	if err := shiftTowardFront(g.board, run); err != nil {
		return false, err
	}
	return true, nil
}

// shiftTowardFront moves each value in run one cell toward run[0] and clears
// the last cell. run[0] must be the blank.
func shiftTowardFront(b *board.Values[int], run []board.Cell) error {
	for k := 0; k < len(run)-1; k++ {
		v, ok, err := b.Get(run[k+1])
		if err != nil {
			return err
		}
		if err := b.Put(run[k], v, ok); err != nil {
			return err
		}
	}
	return b.Clear(run[len(run)-1])
}

// ValueAt returns the tile at (i, j).
func (g *Game) ValueAt(i, j int) (int, bool, error) {
	return g.board.ValueAt(i, j)
}
