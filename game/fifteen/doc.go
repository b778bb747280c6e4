// Package fifteen implements the Game of Fifteen (the 15-puzzle).
//
// The board holds the tiles 1..width²-1 and one blank. A move names the
// direction a tile travels into the blank: Up takes the tile below the blank,
// Left the tile to its right, and so on. A move with no such tile is a no-op.
//
// Starting layouts come from an Initializer. RandomInitializer shuffles the
// tiles and, when the shuffle is odd, repairs it with MakeEven so the puzzle
// is solvable.
//
// Solve runs a breadth-first search for the shortest winning sequence. It is
// practical for 3x3 boards; larger boards usually hit the search limit.
package fifteen
