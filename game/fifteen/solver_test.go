package fifteen

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/wricardo/coursework/game/board"
)

func applyMoves(t *testing.T, g *Game, moves []board.Direction) {
	t.Helper()
	for _, d := range moves {
		changed, err := g.ProcessMove(d)
		if err != nil {
			t.Fatalf("ProcessMove(%s) failed: %v", d, err)
		}
		if !changed {
			t.Fatalf("Expected move %s to change the board", d)
		}
	}
}

func newSmallGame(t *testing.T, perm []int) *Game {
	t.Helper()
	g, err := New(FixedInitializer(perm), WithWidth(3))
	if err != nil {
		t.Fatalf("Failed to create game: %v", err)
	}
	if err := g.Initialize(); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	return g
}

func TestSolve_AlreadySolved(t *testing.T) {
	g := newSmallGame(t, identity(8))
	moves, err := Solve(g, 0)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	if len(moves) != 0 {
		t.Errorf("Expected no moves, got %v", moves)
	}
}

func TestSolve_UndoesShortScramble(t *testing.T) {
	g := newSmallGame(t, identity(8))
	applyMoves(t, g, []board.Direction{board.Down, board.Right, board.Down})
	before := layout(t, g)

	moves, err := Solve(g, 0)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	if len(moves) != 3 {
		t.Errorf("Expected a 3-move solution, got %v", moves)
	}

	after := layout(t, g)
	for i := range before {
		if before[i] != after[i] {
			t.Fatal("Expected Solve to leave the game untouched")
		}
	}

	applyMoves(t, g, moves)
	if !g.HasWon() {
		t.Errorf("Expected solution %v to win", moves)
	}
}

func TestSolve_RandomLayout(t *testing.T) {
	rng := rand.New(rand.NewPCG(11, 11))
	g, err := New(NewRandomInitializer(rng, 3), WithWidth(3))
	if err != nil {
		t.Fatalf("Failed to create game: %v", err)
	}
	if err := g.Initialize(); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}

	moves, err := Solve(g, 0)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	applyMoves(t, g, moves)
	if !g.HasWon() {
		t.Error("Expected solution to win")
	}
}

func TestSolve_Unsolvable(t *testing.T) {
	g := newSmallGame(t, []int{2, 1, 3, 4, 5, 6, 7, 8})
	if _, err := Solve(g, 0); !errors.Is(err, ErrUnsolvable) {
		t.Errorf("Expected ErrUnsolvable, got %v", err)
	}
}

func TestSolve_SearchLimit(t *testing.T) {
	g := newSmallGame(t, []int{8, 7, 6, 5, 4, 3, 2, 1})
	if _, err := Solve(g, 5); !errors.Is(err, ErrSearchLimit) {
		t.Errorf("Expected ErrSearchLimit, got %v", err)
	}
}

func TestSolve_WidthLimit(t *testing.T) {
	tests := []struct {
		width   int
		wantErr bool
	}{
		{16, false},
		{17, true},
	}

	for _, tt := range tests {
		g, err := New(FixedInitializer(identity(tt.width*tt.width-1)), WithWidth(tt.width))
		if err != nil {
			t.Fatalf("New failed: %v", err)
		}
		if err := g.Initialize(); err != nil {
			t.Fatalf("Initialize failed: %v", err)
		}

		moves, err := Solve(g, 0)
		if tt.wantErr {
			if !errors.Is(err, board.ErrInvalidConfiguration) {
				t.Errorf("Width %d: expected ErrInvalidConfiguration, got %v", tt.width, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("Width %d: Solve failed: %v", tt.width, err)
		}
		if len(moves) != 0 {
			t.Errorf("Width %d: expected no moves for a solved board, got %v", tt.width, moves)
		}
	}
}
