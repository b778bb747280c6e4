package board

import "fmt"

// Cell is a 1-based (row, column) coordinate.
type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d, %d)", c.Row, c.Col)
}

// Range is an inclusive progression of indices. From may be greater than To,
// in which case the range is walked downwards.
type Range struct {
	From int
	To   int
}

// Span returns the inclusive range from..to.
func Span(from, to int) Range {
	return Range{From: from, To: to}
}

// Indices lists the range in traversal order.
func (r Range) Indices() []int {
	step := 1
	n := r.To - r.From
	if n < 0 {
		step = -1
		n = -n
	}
	out := make([]int, 0, n+1)
	for i := r.From; ; i += step {
		out = append(out, i)
		if i == r.To {
			break
		}
	}
	return out
}

// Square is a width x width grid of cells. The width never changes after
// construction.
type Square struct {
	width int
	cells [][]Cell
}

// NewSquare creates a square board of the given width.
func NewSquare(width int) (*Square, error) {
	if width < 1 {
		return nil, fmt.Errorf("%w: board width must be positive, got %d", ErrInvalidConfiguration, width)
	}

	cells := make([][]Cell, width)
	for i := range width {
		row := make([]Cell, width)
		for j := range width {
			row[j] = Cell{Row: i + 1, Col: j + 1}
		}
		cells[i] = row
	}

	return &Square{width: width, cells: cells}, nil
}

// Width returns the number of rows (and columns).
func (s *Square) Width() int {
	return s.width
}

func (s *Square) inRange(n int) bool {
	return n >= 1 && n <= s.width
}

// Cell returns the cell at (i, j) or an *OutOfRangeError.
func (s *Square) Cell(i, j int) (Cell, error) {
	if !s.inRange(i) {
		return Cell{}, &OutOfRangeError{Axis: "row", Index: i, Min: 1, Max: s.width}
	}
	if !s.inRange(j) {
		return Cell{}, &OutOfRangeError{Axis: "column", Index: j, Min: 1, Max: s.width}
	}
	return s.cells[i-1][j-1], nil
}

// CellOrNone returns the cell at (i, j) and false when it is off the board.
func (s *Square) CellOrNone(i, j int) (Cell, bool) {
	if !s.inRange(i) || !s.inRange(j) {
		return Cell{}, false
	}
	return s.cells[i-1][j-1], true
}

// AllCells returns every cell in row-major order.
func (s *Square) AllCells() []Cell {
	out := make([]Cell, 0, s.width*s.width)
	for _, row := range s.cells {
		out = append(out, row...)
	}
	return out
}

// Row returns the cells of row i in the order cols is traversed.
// Columns outside the board are skipped.
func (s *Square) Row(i int, cols Range) []Cell {
	var out []Cell
	for _, j := range cols.Indices() {
		if c, ok := s.CellOrNone(i, j); ok {
			out = append(out, c)
		}
	}
	return out
}

// Column returns the cells of column j in the order rows is traversed.
// Rows outside the board are skipped.
func (s *Square) Column(rows Range, j int) []Cell {
	var out []Cell
	for _, i := range rows.Indices() {
		if c, ok := s.CellOrNone(i, j); ok {
			out = append(out, c)
		}
	}
	return out
}

// Neighbor returns the adjacent cell in direction d, if it is on the board.
func (s *Square) Neighbor(c Cell, d Direction) (Cell, bool) {
	di, dj, ok := d.offset()
	if !ok {
		return Cell{}, false
	}
	return s.CellOrNone(c.Row+di, c.Col+dj)
}
