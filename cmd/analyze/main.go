// Command analyze prints quick, human-readable heuristics about the game
// presets in the project's configs directory. It summarizes board sizes,
// the largest tile a 2048 board can hold, the fewest spawns needed to reach
// the target and the size of a fifteen puzzle's state space.
package main

import (
	"fmt"
	"math/big"
	"os"

	"github.com/rs/zerolog"

	"github.com/wricardo/coursework/game/config"
	"github.com/wricardo/coursework/game/fifteen"
)

// Analysis is the report for one preset.
type Analysis struct {
	Lines    []string
	Warnings []string
}

func main() {
	configDir := "configs"
	if len(os.Args) > 1 {
		configDir = os.Args[1]
	} else if dir := os.Getenv("CONFIG_DIR"); dir != "" {
		configDir = dir
	}

	manager, err := config.NewManager(configDir, zerolog.Nop())
	if err != nil {
		fmt.Printf("Error opening configs: %v\n", err)
		os.Exit(1)
	}
	configs, err := manager.ListConfigs()
	if err != nil {
		fmt.Printf("Error listing configs: %v\n", err)
		os.Exit(1)
	}

	for _, info := range configs {
		fmt.Printf("\n=== Analyzing %s ===\n", info.Filename)
		preset, err := manager.LoadConfig(info.ConfigID)
		if err != nil {
			fmt.Printf("Error loading preset: %v\n", err)
			continue
		}

		analysis := analyzePreset(preset)
		for _, line := range analysis.Lines {
			fmt.Println(line)
		}
		for _, w := range analysis.Warnings {
			fmt.Printf("⚠️  %s\n", w)
		}
		if len(analysis.Warnings) == 0 {
			fmt.Println("✅ No problems found")
		}
	}
}

func analyzePreset(p *config.Preset) Analysis {
	var a Analysis
	cells := p.Width * p.Width
	a.Lines = append(a.Lines,
		fmt.Sprintf("Name: %s", p.Name),
		fmt.Sprintf("Game: %s", p.Game),
		fmt.Sprintf("Board: %d x %d (%d cells)", p.Width, p.Width, cells),
	)

	switch p.Kind() {
	case config.Kind2048:
		analyze2048(p, cells, &a)
	case config.KindFifteen:
		analyzeFifteen(p, cells, &a)
	}
	return a
}

// analyze2048 bounds the game by tile sums: every spawn adds 2 or 4 to the
// board total, and a board of n cells holds at most a 2^n tile, or
// 2^(n+1) when fours spawn.
func analyze2048(p *config.Preset, cells int, a *Analysis) {
	prob := p.Probability()
	largestSpawn := 2
	if prob > 0 {
		largestSpawn = 4
	}

	maxTile := new(big.Int).Lsh(big.NewInt(int64(largestSpawn)), uint(cells-1))
	minSpawns := (p.Target + largestSpawn - 1) / largestSpawn

	a.Lines = append(a.Lines,
		fmt.Sprintf("Target: %d", p.Target),
		fmt.Sprintf("Four probability: %.2f (expected spawn %.2f)", prob, 2+2*prob),
		fmt.Sprintf("Largest possible tile: %s", maxTile),
		fmt.Sprintf("Fewest spawns to reach target: %d", minSpawns),
	)

	if maxTile.Cmp(big.NewInt(int64(p.Target))) < 0 {
		a.Warnings = append(a.Warnings, fmt.Sprintf("CRITICAL: target %d can never appear on a %dx%d board", p.Target, p.Width, p.Width))
	}
	if prob == 1 && p.Target <= 4 {
		a.Warnings = append(a.Warnings, "every game is won before the first move")
	}
}

// analyzeFifteen counts the solvable layouts: half of all (n)! arrangements.
func analyzeFifteen(p *config.Preset, cells int, a *Analysis) {
	layouts := new(big.Int).MulRange(1, int64(cells))
	layouts.Rsh(layouts, 1)

	a.Lines = append(a.Lines, fmt.Sprintf("Solvable layouts: %s", layouts))
	if p.Seed != nil {
		a.Lines = append(a.Lines, fmt.Sprintf("Fixed seed: %d", *p.Seed))
	}

	if layouts.Cmp(big.NewInt(fifteen.DefaultSearchLimit)) > 0 {
		a.Warnings = append(a.Warnings, fmt.Sprintf("%s layouts exceed the solver limit of %d; solve may give up", layouts, fifteen.DefaultSearchLimit))
	}
}
