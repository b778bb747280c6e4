// Package game2048 implements the 2048 sliding-tile game on a board.Values.
//
// A move slides every row or column toward one edge, merging each pair of
// equal neighbours once, and spawns one new tile through the Initializer
// when the board changed. HasWon and CanMove are computed from the board
// each time they are called; no win or loss state is stored.
package game2048
