package board

// Predicate is evaluated against the value of a cell; ok is false when the
// cell is empty.
type Predicate[T any] func(v T, ok bool) bool

// IsEmpty matches cells without a value.
func IsEmpty[T any]() Predicate[T] {
	return func(_ T, ok bool) bool { return !ok }
}

// Equals matches cells holding want.
func Equals[T comparable](want T) Predicate[T] {
	return func(v T, ok bool) bool { return ok && v == want }
}

// Values maps the cells of a Square to optional values of type T.
type Values[T any] struct {
	square *Square
	values map[Cell]T
}

// NewValues creates an empty value board of the given width.
func NewValues[T any](width int) (*Values[T], error) {
	sq, err := NewSquare(width)
	if err != nil {
		return nil, err
	}
	return &Values[T]{square: sq, values: make(map[Cell]T, width*width)}, nil
}

// Square returns the underlying coordinate board.
func (b *Values[T]) Square() *Square { return b.square }

func (b *Values[T]) Width() int { return b.square.Width() }

func (b *Values[T]) Cell(i, j int) (Cell, error) { return b.square.Cell(i, j) }

func (b *Values[T]) CellOrNone(i, j int) (Cell, bool) { return b.square.CellOrNone(i, j) }

func (b *Values[T]) AllCells() []Cell { return b.square.AllCells() }

func (b *Values[T]) Row(i int, cols Range) []Cell { return b.square.Row(i, cols) }

func (b *Values[T]) Column(rows Range, j int) []Cell { return b.square.Column(rows, j) }

func (b *Values[T]) Neighbor(c Cell, d Direction) (Cell, bool) { return b.square.Neighbor(c, d) }

// resolve re-checks c against the board so hand-built cells are validated.
func (b *Values[T]) resolve(c Cell) (Cell, error) {
	return b.square.Cell(c.Row, c.Col)
}

// Get returns the value stored at c; ok is false for an empty cell.
func (b *Values[T]) Get(c Cell) (v T, ok bool, err error) {
	c, err = b.resolve(c)
	if err != nil {
		return v, false, err
	}
	v, ok = b.values[c]
	return v, ok, nil
}

// ValueAt is Get addressed by coordinates.
func (b *Values[T]) ValueAt(i, j int) (T, bool, error) {
	return b.Get(Cell{Row: i, Col: j})
}

// Set stores v at c.
func (b *Values[T]) Set(c Cell, v T) error {
	c, err := b.resolve(c)
	if err != nil {
		return err
	}
	b.values[c] = v
	return nil
}

// Clear empties c.
func (b *Values[T]) Clear(c Cell) error {
	c, err := b.resolve(c)
	if err != nil {
		return err
	}
	delete(b.values, c)
	return nil
}

// Put stores v at c when ok is true and clears c otherwise.
func (b *Values[T]) Put(c Cell, v T, ok bool) error {
	if ok {
		return b.Set(c, v)
	}
	return b.Clear(c)
}

func (b *Values[T]) lookup(c Cell) (T, bool) {
	v, ok := b.values[c]
	return v, ok
}

// Filter returns the cells, in row-major order, whose value satisfies p.
func (b *Values[T]) Filter(p Predicate[T]) []Cell {
	var out []Cell
	for _, c := range b.square.AllCells() {
		if p(b.lookup(c)) {
			out = append(out, c)
		}
	}
	return out
}

// Find returns the first cell in row-major order whose value satisfies p.
func (b *Values[T]) Find(p Predicate[T]) (Cell, bool) {
	for _, c := range b.square.AllCells() {
		if p(b.lookup(c)) {
			return c, true
		}
	}
	return Cell{}, false
}

// Any reports whether some cell satisfies p.
func (b *Values[T]) Any(p Predicate[T]) bool {
	_, ok := b.Find(p)
	return ok
}

// All reports whether every cell satisfies p.
func (b *Values[T]) All(p Predicate[T]) bool {
	for _, c := range b.square.AllCells() {
		if !p(b.lookup(c)) {
			return false
		}
	}
	return true
}
