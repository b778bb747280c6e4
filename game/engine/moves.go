package engine

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/wricardo/coursework/game/board"
)

// ParseMoves reads a move list. Words may be separated by commas or
// whitespace ("up, left down"); a single token made only of the letters
// U, D, L and R is read one letter per move ("UULR").
func ParseMoves(s string) ([]board.Direction, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})

	if len(fields) == 1 && isCompact(fields[0]) {
		fields = strings.Split(fields[0], "")
	}

	moves := make([]board.Direction, 0, len(fields))
	for _, f := range fields {
		d, err := board.ParseDirection(f)
		if err != nil {
			return nil, fmt.Errorf("parse moves: %w", err)
		}
		moves = append(moves, d)
	}
	return moves, nil
}

func isCompact(s string) bool {
	if len(s) < 2 {
		return false
	}
	for _, r := range strings.ToUpper(s) {
		if !strings.ContainsRune("UDLR", r) {
			return false
		}
	}
	return true
}
