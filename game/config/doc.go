// Package config manages game presets for the puzzle games.
//
// The config package handles:
//   - Loading presets from YAML or JSON files in a config directory
//   - Preset validation, reporting every problem at once
//   - Built-in defaults for each game
//   - Preset discovery and listing
//
// Preset Format:
//
// A preset is a file named <id>.yaml, <id>.yml or <id>.json:
//
//	name: Classic 2048
//	description: Standard 4x4 board
//	game: "2048"
//	width: 4
//	target: 2048
//	four_probability: 0.1
//	seed: 7
//
// Omitted fields take their defaults: width 4, target 2048 and
// four_probability 0.1 for 2048. Fifteen presets only use width and seed.
//
// Usage:
//
//	manager, err := config.NewManager("configs", logger)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	preset, err := manager.LoadConfig("2048-mini")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	presets, err := manager.ListConfigs()
package config
