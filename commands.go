package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/wricardo/coursework/game/config"
	"github.com/wricardo/coursework/game/engine"
	"github.com/wricardo/coursework/game/fifteen"
	"github.com/wricardo/coursework/mastermind"
	"github.com/wricardo/coursework/nicestring"
	"github.com/wricardo/coursework/rational"
	"github.com/wricardo/coursework/taxipark"
)

// gameCommand plays one game kind from a preset.
func gameCommand(kind config.Kind, usage string) *cli.Command {
	return &cli.Command{
		Name:  string(kind),
		Usage: usage,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "preset", Aliases: []string{"p"}, Value: string(kind), Usage: "preset id in the config directory"},
			&cli.Int64Flag{Name: "seed", Aliases: []string{"s"}, Usage: "random seed (defaults to the preset seed, then a random one)"},
			&cli.StringFlag{Name: "moves", Aliases: []string{"m"}, Usage: `moves such as "up,left" or "UULR"`},
			&cli.BoolFlag{Name: "json", Usage: "print the result as JSON"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			seed, err := seedFlag(cmd)
			if err != nil {
				return err
			}

			moves, err := engine.ParseMoves(cmd.String("moves"))
			if err != nil {
				return err
			}

			svc := initializeService(cmd)
			preset, err := svc.Preset(cmd.String("preset"))
			if err != nil {
				return err
			}
			if preset.Game != kind {
				return fmt.Errorf("%w: preset %q is a %s preset", errUsage, cmd.String("preset"), preset.Game)
			}

			result, err := svc.Play(ctx, cmd.String("preset"), seed, moves)
			if err != nil {
				return err
			}

			out := writer(cmd)
			if cmd.Bool("json") {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(result)
			}

			rendered, err := engine.Render(result.Game)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "preset: %s (width %d, seed %d)\n", result.Preset.Name, result.Preset.Width, result.Seed)
			fmt.Fprint(out, rendered)
			fmt.Fprintf(out, "moves: %d/%d\n", result.MovesExecuted, result.RequestedMoves)
			if result.StopReasonCode != "" {
				fmt.Fprintf(out, "stopped: %s before move %d\n", result.StopReasonCode, result.StoppedOnMove)
			}
			fmt.Fprintf(out, "won: %t\n", result.Won)
			return nil
		},
	}
}

// seedFlag reads the optional --seed flag.
func seedFlag(cmd *cli.Command) (*uint64, error) {
	if !cmd.IsSet("seed") {
		return nil, nil
	}
	v := cmd.Int64("seed")
	if v < 0 {
		return nil, fmt.Errorf("%w: seed must not be negative", errUsage)
	}
	u := uint64(v)
	return &u, nil
}

func solveCommand() *cli.Command {
	return &cli.Command{
		Name:  "solve",
		Usage: "find the shortest solution of a fifteen preset",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "preset", Aliases: []string{"p"}, Value: "eight", Usage: "fifteen preset id in the config directory"},
			&cli.Int64Flag{Name: "seed", Aliases: []string{"s"}, Usage: "random seed (defaults to the preset seed, then a random one)"},
			&cli.Int64Flag{Name: "limit", Value: fifteen.DefaultSearchLimit, Usage: "maximum layouts to visit"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			seed, err := seedFlag(cmd)
			if err != nil {
				return err
			}

			result, err := initializeService(cmd).Solve(ctx, cmd.String("preset"), seed, int(cmd.Int64("limit")))
			if err != nil {
				return err
			}

			var sb strings.Builder
			for _, d := range result.Moves {
				sb.WriteString(strings.ToUpper(d.String()[:1]))
			}

			out := writer(cmd)
			fmt.Fprintf(out, "preset: %s (width %d, seed %d)\n", result.Preset.Name, result.Preset.Width, result.Seed)
			for _, row := range result.Board {
				fmt.Fprintln(out, row)
			}
			fmt.Fprintf(out, "solution (%d moves): %s\n", len(result.Moves), sb.String())
			return nil
		},
	}
}

func mastermindCommand() *cli.Command {
	return &cli.Command{
		Name:      "mastermind",
		Usage:     "score a guess against a secret",
		ArgsUsage: "SECRET GUESS",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.NArg() != 2 {
				return fmt.Errorf("%w: expected SECRET and GUESS", errUsage)
			}
			eval, err := mastermind.Evaluate(cmd.Args().Get(0), cmd.Args().Get(1))
			if err != nil {
				return err
			}
			fmt.Fprintf(writer(cmd), "right position: %d\nwrong position: %d\n", eval.RightPosition, eval.WrongPosition)
			return nil
		},
	}
}

func niceCommand() *cli.Command {
	return &cli.Command{
		Name:      "nice",
		Usage:     "check whether words are nice",
		ArgsUsage: "WORD...",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.NArg() == 0 {
				return fmt.Errorf("%w: expected at least one WORD", errUsage)
			}
			out := writer(cmd)
			for _, word := range cmd.Args().Slice() {
				verdict := "not nice"
				if nicestring.IsNice(word) {
					verdict = "nice"
				}
				fmt.Fprintf(out, "%s: %s\n", word, verdict)
			}
			return nil
		},
	}
}

func rationalCommand() *cli.Command {
	return &cli.Command{
		Name:      "rational",
		Usage:     "evaluate A OP B where OP is one of + - x / cmp",
		ArgsUsage: "A OP B",
		// "-" and negative operands are arguments, not flags.
		SkipFlagParsing: true,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.NArg() != 3 {
				return fmt.Errorf("%w: expected A OP B", errUsage)
			}
			a, err := rational.Parse(cmd.Args().Get(0))
			if err != nil {
				return err
			}
			b, err := rational.Parse(cmd.Args().Get(2))
			if err != nil {
				return err
			}

			var result string
			switch op := cmd.Args().Get(1); op {
			case "+":
				result = a.Add(b).String()
			case "-":
				result = a.Sub(b).String()
			case "x", "*":
				result = a.Mul(b).String()
			case "/":
				q, err := a.Div(b)
				if err != nil {
					return err
				}
				result = q.String()
			case "cmp":
				result = fmt.Sprint(a.Cmp(b))
			default:
				return fmt.Errorf("%w: unknown operator %q", errUsage, op)
			}
			fmt.Fprintln(writer(cmd), result)
			return nil
		},
	}
}

func taxiCommand() *cli.Command {
	return &cli.Command{
		Name:  "taxi",
		Usage: "query a taxi park loaded from JSON",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "file", Aliases: []string{"f"}, Required: true, Usage: "taxi park JSON file"},
			&cli.StringFlag{Name: "query", Aliases: []string{"q"}, Required: true, Usage: "fake-drivers, faithful, frequent, smart, period or pareto"},
			&cli.Int64Flag{Name: "min", Value: 1, Usage: "minimum trips for the faithful query"},
			&cli.StringFlag{Name: "driver", Usage: "driver for the frequent query"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			f, err := os.Open(cmd.String("file"))
			if err != nil {
				return fmt.Errorf("failed to open taxi park: %w", err)
			}
			defer f.Close()

			park, err := taxipark.LoadPark(f)
			if err != nil {
				return err
			}

			out := writer(cmd)
			switch q := cmd.String("query"); q {
			case "fake-drivers":
				printLines(out, park.FakeDrivers())
			case "faithful":
				printLines(out, park.FaithfulPassengers(int(cmd.Int64("min"))))
			case "frequent":
				if cmd.String("driver") == "" {
					return fmt.Errorf("%w: --driver is required for the frequent query", errUsage)
				}
				printLines(out, park.FrequentPassengers(taxipark.Driver(cmd.String("driver"))))
			case "smart":
				printLines(out, park.SmartPassengers())
			case "period":
				period, ok := park.MostFrequentTripDurationPeriod()
				if !ok {
					fmt.Fprintln(out, "no trips")
					return nil
				}
				fmt.Fprintln(out, period)
			case "pareto":
				fmt.Fprintln(out, park.CheckParetoPrinciple())
			default:
				return fmt.Errorf("%w: unknown query %q", errUsage, q)
			}
			return nil
		},
	}
}

func printLines[T ~string](out io.Writer, items []T) {
	for _, item := range items {
		fmt.Fprintln(out, item)
	}
}

func configsCommand() *cli.Command {
	return &cli.Command{
		Name:  "configs",
		Usage: "inspect game presets",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "list the valid presets",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					manager, err := configManager(cmd)
					if err != nil {
						return err
					}
					configs, err := manager.ListConfigs()
					if err != nil {
						return err
					}

					out := writer(cmd)
					fmt.Fprintf(out, "%-16s %-8s %-6s %s\n", "ID", "GAME", "WIDTH", "NAME")
					for _, c := range configs {
						fmt.Fprintf(out, "%-16s %-8s %-6d %s\n", c.ConfigID, c.Game, c.Width, c.Name)
					}
					return nil
				},
			},
			{
				Name:  "validate",
				Usage: "validate every preset file",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					manager, err := configManager(cmd)
					if err != nil {
						return err
					}
					results, err := manager.ValidateAll()
					if err != nil {
						return err
					}

					out := writer(cmd)
					invalid := 0
					for _, r := range results {
						fmt.Fprintf(out, "\n%s %s\n", strings.Repeat("=", 20), r.File)
						if r.Valid {
							fmt.Fprintln(out, "✅ VALID")
							continue
						}
						invalid++
						fmt.Fprintln(out, "❌ INVALID")
						for _, e := range r.Errors {
							fmt.Fprintln(out, "  ❌ "+e)
						}
					}

					fmt.Fprintf(out, "\n%s\n", strings.Repeat("=", 40))
					if invalid > 0 {
						return fmt.Errorf("%d of %d presets have errors", invalid, len(results))
					}
					fmt.Fprintln(out, "✅ All presets are valid!")
					return nil
				},
			},
		},
	}
}
