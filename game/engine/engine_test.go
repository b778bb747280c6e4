package engine

import (
	"errors"
	"testing"

	"github.com/wricardo/coursework/game/board"
	"github.com/wricardo/coursework/game/fifteen"
	"github.com/wricardo/coursework/game/game2048"
)

var (
	_ Game = (*game2048.Game)(nil)
	_ Game = (*fifteen.Game)(nil)
)

func solvedFifteen(t *testing.T) *fifteen.Game {
	t.Helper()
	perm := make([]int, 15)
	for i := range perm {
		perm[i] = i + 1
	}
	g, err := fifteen.New(fifteen.FixedInitializer(perm))
	if err != nil {
		t.Fatalf("Failed to create game: %v", err)
	}
	if err := g.Initialize(); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	return g
}

func TestBulkMove_StopsWhenWon(t *testing.T) {
	g := solvedFifteen(t)

	moves := []board.Direction{board.Down, board.Up, board.Down, board.Down}
	results, err := BulkMove(g, moves)
	if err != nil {
		t.Fatalf("BulkMove failed: %v", err)
	}

	// The game starts solved, so nothing runs.
	if len(results) != 0 {
		t.Fatalf("Expected no moves on a won game, got %v", results)
	}
}

func TestBulkMove_RecordsEachMove(t *testing.T) {
	g := solvedFifteen(t)
	if _, err := g.ProcessMove(board.Down); err != nil {
		t.Fatalf("ProcessMove failed: %v", err)
	}

	moves := []board.Direction{board.Left, board.Up, board.Down}
	results, err := BulkMove(g, moves)
	if err != nil {
		t.Fatalf("BulkMove failed: %v", err)
	}

	// Left has no tile to pull, Up solves the puzzle, Down is never applied.
	want := []bool{false, true}
	if len(results) != len(want) {
		t.Fatalf("Expected %d results, got %v", len(want), results)
	}
	for i := range want {
		if results[i] != want[i] {
			t.Errorf("Result %d: expected %v, got %v", i, want[i], results[i])
		}
	}
	if !g.HasWon() {
		t.Error("Expected game to be won")
	}
}

type failingGame struct{ Game }

func (failingGame) HasWon() bool { return false }
func (failingGame) ProcessMove(board.Direction) (bool, error) {
	return false, errors.New("boom")
}

func TestBulkMove_PropagatesErrors(t *testing.T) {
	_, err := BulkMove(failingGame{}, []board.Direction{board.Up})
	if err == nil || err.Error() != "move 1 (up): boom" {
		t.Errorf("Expected wrapped error, got %v", err)
	}
}

func TestParseMoves(t *testing.T) {
	tests := []struct {
		in   string
		want []board.Direction
	}{
		{"UDLR", []board.Direction{board.Up, board.Down, board.Left, board.Right}},
		{"ulrd", []board.Direction{board.Up, board.Left, board.Right, board.Down}},
		{"up, left  down", []board.Direction{board.Up, board.Left, board.Down}},
		{"right", []board.Direction{board.Right}},
		{"up", []board.Direction{board.Up}},
		{"d", []board.Direction{board.Down}},
		{"", []board.Direction{}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseMoves(tt.in)
			if err != nil {
				t.Fatalf("ParseMoves(%q) failed: %v", tt.in, err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("Expected %v, got %v", tt.want, got)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Move %d: expected %v, got %v", i, tt.want[i], got[i])
				}
			}
		})
	}
}

func TestParseMoves_Invalid(t *testing.T) {
	for _, in := range []string{"UDX", "up, sideways", "north"} {
		if _, err := ParseMoves(in); !errors.Is(err, board.ErrUnknownDirection) {
			t.Errorf("ParseMoves(%q): expected ErrUnknownDirection, got %v", in, err)
		}
	}
}

func TestRender(t *testing.T) {
	g := solvedFifteen(t)
	got, err := Render(g)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	want := " 1  2  3  4\n" +
		" 5  6  7  8\n" +
		" 9 10 11 12\n" +
		"13 14 15  .\n"
	if got != want {
		t.Errorf("Unexpected rendering:\n%s\nwant:\n%s", got, want)
	}
}

func TestSnapshot(t *testing.T) {
	g := solvedFifteen(t)
	rows, err := Snapshot(g)
	if err != nil {
		t.Fatalf("Snapshot failed: %v", err)
	}
	if rows[3][3] != 0 || rows[0][0] != 1 || rows[2][1] != 10 {
		t.Errorf("Unexpected snapshot: %v", rows)
	}
}
