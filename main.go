// Command partyboard plays a two-player party board game in the console.
//
// It loads a level file, traces the circular path from the start cell and
// plays a fixed number of ticks, alternating between Alice and Bob. Each turn
// rolls a die and moves the active player, collecting or losing coins and
// stars on special cells.
//
// Flags, a YAML config file and PARTY_* environment variables (optionally
// from a .env file) control the seed, path strategy, movement variant, glyph
// theme, log level and headless mode.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"

	"github.com/wricardo/party-board-game/game/config"
	"github.com/wricardo/party-board-game/game/engine"
	"github.com/wricardo/party-board-game/game/render"
	"github.com/wricardo/party-board-game/game/session"
	"github.com/wricardo/party-board-game/transport/console"
)

// Version information
const (
	Version = "1.0.0"
	AppName = "partyboard"
)

var errUsage = errors.New("expected exactly one level file argument")

// main loads .env, runs the command and exits non-zero on failure.
func main() {
	log.SetOutput(os.Stderr)

	// Load .env file if it exists
	if err := config.LoadEnvFiles(); err != nil {
		log.Warnf("Error loading .env file: %v", err)
	}

	if err := newCommand(os.Stdin, os.Stdout).Run(context.Background(), os.Args); err != nil {
		log.Errorf("%s: %v", AppName, err)
		os.Exit(1)
	}
}

// newCommand builds the CLI. Input and output are injected so tests can drive it.
func newCommand(in io.Reader, out io.Writer) *cli.Command {
	return &cli.Command{
		Name:      AppName,
		Usage:     "turn-based party board game simulator",
		Version:   Version,
		ArgsUsage: "<level-file>",
		Writer:    out,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "YAML configuration file",
				Sources: cli.EnvVars("PARTY_CONFIG"),
			},
			&cli.Uint64Flag{
				Name:  "seed",
				Usage: "random seed for the whole run, 0 seeds from the clock",
			},
			&cli.StringFlag{
				Name:  "path-strategy",
				Usage: "path construction: reachability or boundary",
			},
			&cli.StringFlag{
				Name:  "movement",
				Usage: "movement variant: path or walk",
			},
			&cli.StringFlag{
				Name:  "theme",
				Usage: "glyph theme: emoji, ascii or an INI theme file",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "diagnostic log level (debug, info, warn, error)",
			},
			&cli.BoolFlag{
				Name:  "headless",
				Usage: "acknowledge every prompt automatically",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 1 {
				return errUsage
			}

			cfg, err := config.Load(cmd.String("config"))
			if err != nil {
				return err
			}
			applyFlags(cmd, cfg)
			if err := cfg.Validate(); err != nil {
				return err
			}

			return run(ctx, cfg, cmd.Args().First(), in, out)
		},
	}
}

// applyFlags overrides configuration values with explicitly set flags
func applyFlags(cmd *cli.Command, cfg *config.Config) {
	if cmd.IsSet("seed") {
		cfg.Seed = cmd.Uint64("seed")
	}
	if cmd.IsSet("path-strategy") {
		cfg.PathStrategy = cmd.String("path-strategy")
	}
	if cmd.IsSet("movement") {
		cfg.Movement = cmd.String("movement")
	}
	if cmd.IsSet("theme") {
		cfg.Theme = cmd.String("theme")
	}
	if cmd.IsSet("log-level") {
		cfg.LogLevel = cmd.String("log-level")
	}
	if cmd.IsSet("headless") {
		cfg.Headless = cmd.Bool("headless")
	}
}

// run loads the level, builds the board and plays the session to completion
func run(ctx context.Context, cfg *config.Config, levelPath string, in io.Reader, out io.Writer) error {
	log.SetLevel(cfg.Level())

	level, err := engine.LoadLevel(levelPath)
	if err != nil {
		return fmt.Errorf("failed to load level: %w", err)
	}

	strategy, err := cfg.Strategy()
	if err != nil {
		return err
	}

	board, err := engine.NewBoard(level, strategy)
	switch {
	case errors.Is(err, engine.ErrNoCircularPath):
		log.WithError(err).WithField("cells", board.PathLen()).Warn("Continuing with partial path")
	case err != nil:
		return fmt.Errorf("failed to build board: %w", err)
	}

	theme, err := render.ResolveTheme(cfg.Theme)
	if err != nil {
		return err
	}

	movement, err := cfg.MovementMode()
	if err != nil {
		return err
	}

	var input session.InputProvider = console.AutoInput{}
	if !cfg.Headless {
		input = console.NewReader(in, out)
	}

	opts := []session.Option{session.WithMovement(movement)}
	if cfg.Seed != 0 {
		opts = append(opts, session.WithSeed(cfg.Seed))
	}

	game, err := session.New(board, input, render.New(out, theme), opts...)
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}

	log.WithFields(log.Fields{
		"session":  game.ID,
		"level":    levelPath,
		"strategy": cfg.PathStrategy,
		"movement": movement,
		"path_len": board.PathLen(),
	}).Info("Starting game")

	return game.Run(ctx)
}
