// Package mastermind scores Mastermind guesses against a secret.
package mastermind

import (
	"errors"
	"fmt"
)

var ErrLengthMismatch = errors.New("secret and guess lengths differ")

// Evaluation is the score of one guess.
type Evaluation struct {
	RightPosition int `json:"right_position"`
	WrongPosition int `json:"wrong_position"`
}

// Evaluate compares guess with secret letter by letter. Exact matches count as
// right positions; the remaining guess letters each claim at most one unused
// secret letter elsewhere as a wrong position.
func Evaluate(secret, guess string) (Evaluation, error) {
	s, g := []rune(secret), []rune(guess)
	if len(s) != len(g) {
		return Evaluation{}, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(s), len(g))
	}

	var eval Evaluation
	used := make([]bool, len(s))
	for i := range g {
		if s[i] == g[i] {
			eval.RightPosition++
			used[i] = true
		}
	}

	for i, r := range g {
		if s[i] == r {
			continue
		}
		for j, candidate := range s {
			if !used[j] && candidate == r {
				eval.WrongPosition++
				used[j] = true
				break
			}
		}
	}
	return eval, nil
}
