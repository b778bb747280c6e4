// Package service provides the orchestration layer between presets and game engines.
//
// The service package implements:
//   - Building 2048 and Game of Fifteen engines from presets
//   - Deterministic seeding of the random initializers
//   - Replaying move sequences with a per-step trace
//   - Stop reasons for games that are won or stuck
//
// Core Interfaces:
//
// ConfigManager supplies presets; *config.Manager satisfies it.
//
// Usage:
//
//	configs, err := config.NewManager("configs", logger)
//	if err != nil {
//		log.Fatal(err)
//	}
//	svc := service.New(configs, logger)
//
//	moves, _ := engine.ParseMoves("LLUR")
//	result, err := svc.Play(ctx, "2048", &seed, moves)
//
// Presets named after a game ("2048", "fifteen") fall back to the built-in
// defaults when the config directory has no file for them.
package service
