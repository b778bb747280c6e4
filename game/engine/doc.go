// Package engine defines the surface that drivers use to play the puzzle
// games, independent of which game is behind it.
//
// The engine package provides:
//   - The Game interface implemented by game2048.Game and fifteen.Game
//   - Move parsing from compact ("UDLR") or word ("up, left") notation
//   - Bulk moves that stop once the game is won
//   - A plain-text rendering of the board
//
// Usage:
//
//	moves, err := engine.ParseMoves("up,up,left")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	results, err := engine.BulkMove(game, moves)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	text, _ := engine.Render(game)
//	fmt.Print(text)
package engine
