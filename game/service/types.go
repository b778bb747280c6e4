package service

import (
	"github.com/wricardo/coursework/game/board"
	"github.com/wricardo/coursework/game/config"
	"github.com/wricardo/coursework/game/engine"
)

// Stop reason codes reported by Play.
const (
	StopWon   = "won"
	StopStuck = "stuck"
)

// PlayResult contains the outcome of replaying a move sequence
type PlayResult struct {
	Preset *config.Preset `json:"preset"`
	Seed   uint64         `json:"seed"`

	// Summary
	MovesExecuted  int    `json:"moves_executed"`
	RequestedMoves int    `json:"requested_moves"`
	StopReasonCode string `json:"stop_reason_code,omitempty"` // won|stuck
	StoppedOnMove  int    `json:"stopped_on_move,omitempty"`  // 1-based index of the first move not applied

	// Final status
	Won     bool    `json:"won"`
	CanMove bool    `json:"can_move"`
	Board   [][]int `json:"board"`

	// Per-step compact trace
	Steps []StepInfo `json:"steps,omitempty"`

	Game engine.Game `json:"-"`
}

// StepInfo is a compact record for each executed move
type StepInfo struct {
	Idx     int    `json:"idx"`
	Dir     string `json:"dir"`
	Changed bool   `json:"changed"`
	Won     bool   `json:"won,omitempty"`
}

// SolveResult is a starting layout and a shortest sequence that wins it
type SolveResult struct {
	Preset *config.Preset    `json:"preset"`
	Seed   uint64            `json:"seed"`
	Board  [][]int           `json:"board"`
	Moves  []board.Direction `json:"moves"`
	Game   engine.Game       `json:"-"`
}
