package fifteen

import (
	"errors"
	"fmt"

	"github.com/wricardo/coursework/game/board"
)

// DefaultSearchLimit bounds the layouts Solve visits. It covers every
// solvable 3x3 layout.
const DefaultSearchLimit = 200_000

// maxSolveWidth keeps every tile value within one byte of the search key.
const maxSolveWidth = 16

var (
	ErrUnsolvable  = errors.New("layout cannot reach the solved state")
	ErrSearchLimit = errors.New("search limit reached")
)

// tiles is a row-major copy of the board; 0 marks the blank.
type tiles []byte

func (l tiles) key() string { return string(l) }

func readTiles(b *board.Values[int]) (tiles, error) {
	cells := b.AllCells()
	out := make(tiles, len(cells))
	for idx, c := range cells {
		v, ok, err := b.Get(c)
		if err != nil {
			return nil, err
		}
		if ok {
			out[idx] = byte(v)
		}
	}
	return out, nil
}

func solvedTiles(n int) tiles {
	out := make(tiles, n)
	for i := range n - 1 {
		out[i] = byte(i + 1)
	}
	return out
}

// Solve finds a shortest move sequence that wins g from its current layout
// using breadth-first search over at most limit layouts. A limit of zero or
// less uses DefaultSearchLimit. The game itself is not modified.
func Solve(g *Game, limit int) ([]board.Direction, error) {
	if limit <= 0 {
		limit = DefaultSearchLimit
	}
	if w := g.Width(); w > maxSolveWidth {
		return nil, fmt.Errorf("%w: solver supports widths up to %d, got %d", board.ErrInvalidConfiguration, maxSolveWidth, w)
	}

	solvable, err := Solvable(g.board)
	if err != nil {
		return nil, err
	}
	if !solvable {
		return nil, ErrUnsolvable
	}

	start, err := readTiles(g.board)
	if err != nil {
		return nil, err
	}
	goal := solvedTiles(len(start)).key()
	if start.key() == goal {
		return []board.Direction{}, nil
	}

	sq := g.board.Square()
	w := sq.Width()

	type queueItem struct {
		state tiles
		blank board.Cell
		path  []board.Direction
	}

	blankIdx := 0
	for idx, v := range start {
		if v == 0 {
			blankIdx = idx
		}
	}
	blank, _ := sq.CellOrNone(blankIdx/w+1, blankIdx%w+1)

	queue := []queueItem{{state: start, blank: blank, path: []board.Direction{}}}
	visited := map[string]bool{start.key(): true}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, d := range board.Directions() {
			from, ok := sq.Neighbor(current.blank, d.Opposite())
			if !ok {
				continue
			}

			next := make(tiles, len(current.state))
			copy(next, current.state)
			bi := (current.blank.Row-1)*w + current.blank.Col - 1
			fi := (from.Row-1)*w + from.Col - 1
			next[bi], next[fi] = next[fi], 0

			k := next.key()
			if visited[k] {
				continue
			}

			path := append(append([]board.Direction{}, current.path...), d)
			if k == goal {
				return path, nil
			}

			if len(visited) >= limit {
				return nil, fmt.Errorf("%w: visited %d layouts", ErrSearchLimit, len(visited))
			}
			visited[k] = true
			queue = append(queue, queueItem{state: next, blank: from, path: path})
		}
	}

	return nil, ErrUnsolvable
}
