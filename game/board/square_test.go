package board

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestNewSquare_CellCount(t *testing.T) {
	for width := 1; width <= 6; width++ {
		sq, err := NewSquare(width)
		if err != nil {
			t.Fatalf("NewSquare(%d) failed: %v", width, err)
		}

		cells := sq.AllCells()
		if len(cells) != width*width {
			t.Fatalf("Expected %d cells for width %d, got %d", width*width, width, len(cells))
		}

		seen := make(map[Cell]bool)
		for idx, c := range cells {
			if seen[c] {
				t.Fatalf("Cell %v returned twice", c)
			}
			seen[c] = true

			wantRow, wantCol := idx/width+1, idx%width+1
			if c.Row != wantRow || c.Col != wantCol {
				t.Errorf("Expected cell %d to be (%d, %d), got %v", idx, wantRow, wantCol, c)
			}
		}
	}
}

func TestNewSquare_InvalidWidth(t *testing.T) {
	for _, width := range []int{0, -1, -10} {
		_, err := NewSquare(width)
		if !errors.Is(err, ErrInvalidConfiguration) {
			t.Errorf("Expected ErrInvalidConfiguration for width %d, got %v", width, err)
		}
	}
}

func TestSquare_CellOutOfRange(t *testing.T) {
	sq, _ := NewSquare(3)

	tests := []struct {
		name string
		i, j int
		axis string
		bad  int
	}{
		{"row too small", 0, 1, "row", 0},
		{"row too large", 4, 1, "row", 4},
		{"column too small", 2, 0, "column", 0},
		{"column too large", 2, 5, "column", 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := sq.Cell(tt.i, tt.j)
			if !errors.Is(err, ErrOutOfRange) {
				t.Fatalf("Expected ErrOutOfRange, got %v", err)
			}

			var rangeErr *OutOfRangeError
			if !errors.As(err, &rangeErr) {
				t.Fatalf("Expected *OutOfRangeError, got %T", err)
			}
			if rangeErr.Axis != tt.axis || rangeErr.Index != tt.bad || rangeErr.Min != 1 || rangeErr.Max != 3 {
				t.Errorf("Unexpected error details: %+v", rangeErr)
			}

			if _, ok := sq.CellOrNone(tt.i, tt.j); ok {
				t.Error("Expected CellOrNone to report no cell")
			}
		})
	}
}

func TestSquare_RowAndColumnOrder(t *testing.T) {
	sq, _ := NewSquare(4)

	row := sq.Row(2, Span(4, 1))
	want := []Cell{{2, 4}, {2, 3}, {2, 2}, {2, 1}}
	assertCells(t, row, want)

	col := sq.Column(Span(1, 3), 4)
	want = []Cell{{1, 4}, {2, 4}, {3, 4}}
	assertCells(t, col, want)

	// Indices past the edge are skipped rather than failing.
	col = sq.Column(Span(3, 6), 1)
	want = []Cell{{3, 1}, {4, 1}}
	assertCells(t, col, want)
}

func TestSquare_Neighbor(t *testing.T) {
	sq, _ := NewSquare(3)
	center, _ := sq.Cell(2, 2)

	tests := []struct {
		dir  Direction
		want Cell
	}{
		{Up, Cell{1, 2}},
		{Down, Cell{3, 2}},
		{Left, Cell{2, 1}},
		{Right, Cell{2, 3}},
	}
	for _, tt := range tests {
		got, ok := sq.Neighbor(center, tt.dir)
		if !ok || got != tt.want {
			t.Errorf("Neighbor(%v, %v) = %v, %v; want %v", center, tt.dir, got, ok, tt.want)
		}
	}

	corner, _ := sq.Cell(1, 1)
	if _, ok := sq.Neighbor(corner, Up); ok {
		t.Error("Expected no neighbour above the top row")
	}
	if _, ok := sq.Neighbor(corner, Left); ok {
		t.Error("Expected no neighbour left of the first column")
	}
	if _, ok := sq.Neighbor(center, Direction(42)); ok {
		t.Error("Expected no neighbour for an unknown direction")
	}
}

func TestSquare_NeighborInverse(t *testing.T) {
	sq, _ := NewSquare(4)
	for _, c := range sq.AllCells() {
		for _, d := range Directions() {
			n, ok := sq.Neighbor(c, d)
			if !ok {
				continue
			}
			back, ok := sq.Neighbor(n, d.Opposite())
			if !ok || back != c {
				t.Errorf("Expected neighbour of %v %v then %v to return, got %v", c, d, d.Opposite(), back)
			}
		}
	}
}

func TestParseDirection(t *testing.T) {
	tests := map[string]Direction{
		"up": Up, "U": Up, " down ": Down, "d": Down, "LEFT": Left, "l": Left, "Right": Right, "r": Right,
	}
	for in, want := range tests {
		got, err := ParseDirection(in)
		if err != nil || got != want {
			t.Errorf("ParseDirection(%q) = %v, %v; want %v", in, got, err, want)
		}
	}

	if _, err := ParseDirection("north"); !errors.Is(err, ErrUnknownDirection) {
		t.Errorf("Expected ErrUnknownDirection, got %v", err)
	}
}

func TestDirection_Text(t *testing.T) {
	data, err := json.Marshal([]Direction{Up, Left})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(data) != `["up","left"]` {
		t.Errorf("Expected [\"up\",\"left\"], got %s", data)
	}

	var back []Direction
	if err := json.Unmarshal([]byte(`["D","right"]`), &back); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if len(back) != 2 || back[0] != Down || back[1] != Right {
		t.Errorf("Expected [down right], got %v", back)
	}

	if _, err := json.Marshal(Direction(9)); !errors.Is(err, ErrUnknownDirection) {
		t.Errorf("Expected ErrUnknownDirection, got %v", err)
	}
}

func assertCells(t *testing.T, got, want []Cell) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("Expected %d cells, got %d (%v)", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Cell %d: expected %v, got %v", i, want[i], got[i])
		}
	}
}
