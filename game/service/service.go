package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/rs/zerolog"

	"github.com/wricardo/coursework/game/board"
	"github.com/wricardo/coursework/game/config"
	"github.com/wricardo/coursework/game/engine"
	"github.com/wricardo/coursework/game/fifteen"
	"github.com/wricardo/coursework/game/game2048"
)

// ConfigManager handles preset loading
type ConfigManager interface {
	LoadConfig(name string) (*config.Preset, error)
	ListConfigs() ([]*config.ConfigInfo, error)
	GetDefault(kind config.Kind) *config.Preset
}

// Service builds and plays games from presets.
type Service struct {
	configs ConfigManager
	logger  zerolog.Logger
}

// New creates a service backed by configs.
func New(configs ConfigManager, logger zerolog.Logger) *Service {
	return &Service{
		configs: configs,
		logger:  logger.With().Str("component", "service").Logger(),
	}
}

// resolvePreset loads a preset by id. Game names fall back to built-in presets.
func (s *Service) resolvePreset(presetID string) (*config.Preset, error) {
	switch kind := config.Kind(presetID); kind {
	case config.Kind2048, config.KindFifteen:
		return s.configs.GetDefault(kind), nil
	}

	preset, err := s.configs.LoadConfig(presetID)
	if err == nil {
		return preset, nil
	}
	if errors.Is(err, config.ErrConfigNotFound) {
		available, listErr := s.configs.ListConfigs()
		if listErr == nil && len(available) > 0 {
			var ids []string
			for _, cfg := range available {
				ids = append(ids, cfg.ConfigID)
			}
			return nil, fmt.Errorf("preset '%s' not found, available presets: %v: %w", presetID, ids, err)
		}
	}
	return nil, fmt.Errorf("failed to load preset %s: %w", presetID, err)
}

// Preset resolves presetID the same way NewGame does, without building a game.
func (s *Service) Preset(presetID string) (*config.Preset, error) {
	return s.resolvePreset(presetID)
}

// seedFor picks the explicit seed, then the preset seed, then a random one.
func seedFor(preset *config.Preset, seed *uint64) uint64 {
	switch {
	case seed != nil:
		return *seed
	case preset.Seed != nil:
		return *preset.Seed
	default:
		return rand.Uint64()
	}
}

// Build creates an uninitialized engine for preset using the given seed.
func Build(preset *config.Preset, seed uint64) (engine.Game, error) {
	rng := rand.New(rand.NewPCG(seed, seed))

	switch preset.Kind() {
	case config.Kind2048:
		initializer := game2048.NewRandomInitializer(rng, preset.Probability())
		g, err := game2048.New(initializer, game2048.WithWidth(preset.Width), game2048.WithTarget(preset.Target))
		if err != nil {
			return nil, err
		}
		return g, nil
	case config.KindFifteen:
		initializer := fifteen.NewRandomInitializer(rng, preset.Width)
		g, err := fifteen.New(initializer, fifteen.WithWidth(preset.Width))
		if err != nil {
			return nil, err
		}
		return g, nil
	}
	return nil, fmt.Errorf("%w: unknown game %q", config.ErrInvalidConfig, preset.Game)
}

// NewGame builds and initializes the game described by presetID.
// A nil seed uses the preset seed, or a random one when the preset has none.
func (s *Service) NewGame(ctx context.Context, presetID string, seed *uint64) (engine.Game, *config.Preset, uint64, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, 0, err
	}

	preset, err := s.resolvePreset(presetID)
	if err != nil {
		return nil, nil, 0, err
	}

	used := seedFor(preset, seed)
	game, err := Build(preset, used)
	if err != nil {
		return nil, nil, 0, fmt.Errorf("failed to build game: %w", err)
	}
	if err := game.Initialize(); err != nil {
		return nil, nil, 0, fmt.Errorf("failed to initialize game: %w", err)
	}

	s.logger.Info().
		Str("preset", presetID).
		Str("game", string(preset.Game)).
		Int("width", preset.Width).
		Uint64("seed", used).
		Msg("game created")
	return game, preset, used, nil
}

// Play creates a game and applies moves in order. It stops early once the
// game is won or can no longer move, and aborts when ctx is done.
func (s *Service) Play(ctx context.Context, presetID string, seed *uint64, moves []board.Direction) (*PlayResult, error) {
	game, preset, used, err := s.NewGame(ctx, presetID, seed)
	if err != nil {
		return nil, err
	}

	result := &PlayResult{
		Preset:         preset,
		Seed:           used,
		RequestedMoves: len(moves),
		Steps:          make([]StepInfo, 0, len(moves)),
		Game:           game,
	}

	for i, d := range moves {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("play interrupted after %d moves: %w", result.MovesExecuted, err)
		}
		if game.HasWon() {
			result.StopReasonCode = StopWon
			result.StoppedOnMove = i + 1
			break
		}
		if !game.CanMove() {
			result.StopReasonCode = StopStuck
			result.StoppedOnMove = i + 1
			break
		}

		changed, err := game.ProcessMove(d)
		if err != nil {
			return nil, fmt.Errorf("move %d (%s): %w", i+1, d, err)
		}
		result.MovesExecuted++

		step := StepInfo{Idx: i + 1, Dir: d.String(), Changed: changed, Won: game.HasWon()}
		result.Steps = append(result.Steps, step)
		s.logger.Debug().
			Int("idx", step.Idx).
			Str("dir", step.Dir).
			Bool("changed", step.Changed).
			Msg("move applied")
	}

	result.Won = game.HasWon()
	result.CanMove = game.CanMove()
	result.Board, err = engine.Snapshot(game)
	if err != nil {
		return nil, fmt.Errorf("failed to snapshot board: %w", err)
	}

	s.logger.Debug().
		Int("executed", result.MovesExecuted).
		Int("requested", result.RequestedMoves).
		Str("stop_reason", result.StopReasonCode).
		Bool("won", result.Won).
		Msg("play finished")
	return result, nil
}

// ErrNoSolver is returned when asked to solve a game that has no solver.
var ErrNoSolver = errors.New("only fifteen presets can be solved")

// Solve builds the game described by presetID and searches for the shortest
// winning move sequence from its starting layout.
func (s *Service) Solve(ctx context.Context, presetID string, seed *uint64, limit int) (*SolveResult, error) {
	game, preset, used, err := s.NewGame(ctx, presetID, seed)
	if err != nil {
		return nil, err
	}

	puzzle, ok := game.(*fifteen.Game)
	if !ok {
		return nil, fmt.Errorf("%w: preset %s is a %s preset", ErrNoSolver, presetID, preset.Game)
	}

	start, err := engine.Snapshot(game)
	if err != nil {
		return nil, fmt.Errorf("failed to snapshot board: %w", err)
	}

	moves, err := fifteen.Solve(puzzle, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to solve preset %s: %w", presetID, err)
	}

	s.logger.Debug().Str("preset", presetID).Int("moves", len(moves)).Msg("solved")
	return &SolveResult{Preset: preset, Seed: used, Board: start, Moves: moves, Game: game}, nil
}
