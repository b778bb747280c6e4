// Package board provides the square grid shared by the puzzle games.
//
// The board package implements:
//   - A fixed-width square of 1-based cells (Square)
//   - Row and column projections in either traversal order
//   - Neighbour lookup in the four directions
//   - A typed value layer over the square (Values)
//
// Core Types:
//
// Square owns the cells of a width x width grid. Cells are plain values, so a
// Cell built by hand with valid coordinates is interchangeable with one handed
// out by the board. Values[T] composes one Square and maps each cell to an
// optional value of type T; a cell without a value is empty.
//
// Usage:
//
//	b, err := board.NewValues[int](4)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	cell, err := b.Cell(1, 2)
//	if err != nil {
//		log.Fatal(err)
//	}
//	_ = b.Set(cell, 2)
//
//	empty := b.Filter(board.IsEmpty[int]())
//
// Errors:
//
// Coordinates outside 1..width fail with an *OutOfRangeError that matches
// ErrOutOfRange. Callers probing the edges use CellOrNone instead. A width
// below one fails with ErrInvalidConfiguration.
package board
