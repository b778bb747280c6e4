// Command coursework runs the coursework exercises from the command line.
//
// Subcommands:
//  1. "2048" and "fifteen" – build a game from a preset, replay a move sequence and print the board
//     ("solve" searches for the shortest win of a fifteen preset)
//  2. "mastermind", "nice", "rational", "taxi" – the standalone exercises
//  3. "configs" – list and validate the game presets in the config directory
//
// Global flags control the config directory and logging. A .env file in the
// working directory is loaded first, so CONFIG_DIR and LOG_LEVEL can live there.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/wricardo/coursework/game/config"
	"github.com/wricardo/coursework/game/service"
)

// Version information
const (
	Version = "1.0.0"
	AppName = "coursework"
)

// main loads the environment, builds the command tree and runs it.
func main() {
	// Load .env file if it exists (ignore error if not found)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "Warning: Error loading .env file: %v\n", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newApp(os.Stdout).Run(ctx, os.Args); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

// newApp builds the root command writing its results to out.
func newApp(out io.Writer) *cli.Command {
	return &cli.Command{
		Name:    AppName,
		Usage:   "Kotlin-course exercises: 2048, Game of Fifteen, Mastermind, nice strings, taxi park, rationals",
		Version: Version,
		Writer:  out,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config-dir",
				Usage:   "directory containing game presets",
				Value:   "configs",
				Sources: cli.EnvVars("CONFIG_DIR"),
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "log level (trace, debug, info, warn, error)",
				Value:   "info",
				Sources: cli.EnvVars("LOG_LEVEL"),
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "enable debug logging",
			},
		},
		Before: setupLogging,
		Commands: []*cli.Command{
			gameCommand(config.Kind2048, "play 2048 with a move sequence"),
			gameCommand(config.KindFifteen, "play the Game of Fifteen with a move sequence"),
			solveCommand(),
			mastermindCommand(),
			niceCommand(),
			rationalCommand(),
			taxiCommand(),
			configsCommand(),
		},
	}
}

// setupLogging configures the global zerolog logger from the root flags.
func setupLogging(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	level, err := zerolog.ParseLevel(cmd.String("log-level"))
	if err != nil {
		return ctx, fmt.Errorf("invalid log level %q: %w", cmd.String("log-level"), err)
	}
	if cmd.Bool("debug") {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	log.Debug().Str("version", Version).Str("config_dir", cmd.String("config-dir")).Msg("starting")
	return ctx, nil
}

// configManager opens the config directory named by the root flags.
func configManager(cmd *cli.Command) (*config.Manager, error) {
	return config.NewManager(cmd.Root().String("config-dir"), log.Logger)
}

// initializeService wires the game service. Without a config directory only
// the built-in presets are available.
func initializeService(cmd *cli.Command) *service.Service {
	manager, err := configManager(cmd)
	if err != nil {
		log.Warn().Err(err).Msg("using built-in presets only")
		return service.New(config.Builtin{}, log.Logger)
	}
	return service.New(manager, log.Logger)
}

// writer returns where command results go.
func writer(cmd *cli.Command) io.Writer {
	if w := cmd.Root().Writer; w != nil {
		return w
	}
	return os.Stdout
}

var errUsage = errors.New("invalid usage")
