// Command mmsim runs the exploration loop over every maze diagram matching
// a glob, printing each maze, its ground-truth step map and the moves the
// navigator makes.
//
// Usage:
//
//	mmsim [-config mmsim.toml] [-glob 'assets/*.txt'] [-max-steps n] [-random n -seed s]
//
// With -random, n generated mazes are explored after the diagrams.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/katalvlaran/micromouse/maze"
	"github.com/katalvlaran/micromouse/mazegen"
	"github.com/katalvlaran/micromouse/mazetext"
	"github.com/katalvlaran/micromouse/navigator"
	"github.com/katalvlaran/micromouse/stepmap"
	"github.com/rs/zerolog"
)

func main() {
	configPath := flag.String("config", "", "path to a TOML config file")
	pattern := flag.String("glob", "", "maze diagrams to simulate (overrides config)")
	maxSteps := flag.Int("max-steps", -1, "move ceiling per maze, 0 for none (overrides config)")
	random := flag.Int("random", -1, "number of generated mazes to explore (overrides config)")
	seed := flag.Uint64("seed", 0, "seed for generated mazes (overrides config when set)")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if *pattern != "" {
		cfg.Glob = *pattern
	}
	if *maxSteps >= 0 {
		cfg.MaxSteps = *maxSteps
	}
	if *random >= 0 {
		cfg.Random = *random
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}

	logger := initLogger(cfg.LogLevel)
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	code := run(ctx, cfg, os.Stdout, logger)
	stop()
	os.Exit(code)
}

func initLogger(level zerolog.Level) zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}
	return zerolog.New(output).Level(level).With().Timestamp().Str("app", "mmsim").Logger()
}

// run simulates every matching maze in name order, then cfg.Random
// generated mazes, and returns the process exit code. It stops at the
// first maze that fails to load or solve.
func run(ctx context.Context, cfg config, out io.Writer, logger zerolog.Logger) int {
	files, err := filepath.Glob(cfg.Glob)
	if err != nil {
		logger.Error().Err(err).Str("glob", cfg.Glob).Msg("bad glob")
		return 2
	}
	if len(files) == 0 && cfg.Random == 0 {
		logger.Warn().Str("glob", cfg.Glob).Msg("no maze files")
		return 0
	}
	sort.Strings(files)
	logger.Info().Strs("files", files).Int("random", cfg.Random).Msg("simulating")

	for _, file := range files {
		doc, err := mazetext.ParseFile(file)
		if err != nil {
			logger.Error().Err(err).Msg("load maze")
			return 1
		}
		if !explore(ctx, cfg, file, doc, out, logger) {
			return 1
		}
	}

	rng := mazegen.NewRand(cfg.Seed)
	for i := 0; i < cfg.Random; i++ {
		m, err := mazegen.Wilson(rng)
		if err != nil {
			logger.Error().Err(err).Msg("generate maze")
			return 1
		}
		doc := &mazetext.Document{
			Maze:     m,
			Goal:     maze.Position{Row: m.Rows()/2 - 1, Col: m.Cols()/2 - 1},
			Start:    m.Start(),
			HasStart: true,
		}
		name := fmt.Sprintf("random #%d (seed %d)", i+1, cfg.Seed)
		if !explore(ctx, cfg, name, doc, out, logger) {
			return 1
		}
	}
	return 0
}

// explore prints one maze with its ground-truth step map and runs the
// navigator over it.
func explore(ctx context.Context, cfg config, name string, doc *mazetext.Document, out io.Writer, logger zerolog.Logger) bool {
	for line := range doc.Maze.Lines(doc.Goal) {
		fmt.Fprintln(out, line)
	}
	fmt.Fprintln(out, name)

	if cfg.ShowStepMap {
		truth := stepmap.NewFor(doc.Maze)
		truth.Calc(doc.Maze, stepmap.UnexploredAsPresent, doc.Goal)
		if err := truth.Display(out); err != nil {
			logger.Error().Err(err).Msg("display step map")
			return false
		}
	}
	return simulate(ctx, cfg, doc, out, logger.With().Str("maze", name).Logger())
}

// simulate explores one maze and reports whether the goal was reached.
func simulate(ctx context.Context, cfg config, doc *mazetext.Document, out io.Writer, logger zerolog.Logger) bool {
	runLog := logger.With().
		Str("run", uuid.NewString()).
		Stringer("goal", doc.Goal).
		Logger()

	opts := []navigator.Option{
		navigator.WithLogger(runLog),
		navigator.WithMaxSteps(cfg.MaxSteps),
		navigator.WithOnMove(func(mv navigator.Move) {
			fmt.Fprintf(out, "d: %v, x: %d, y: %d\n", mv.Direction, mv.To.Col, mv.To.Row)
		}),
	}
	if cfg.UnexploredLocal {
		opts = append(opts, navigator.WithUnexploredLocal())
	}
	nav, err := navigator.New(doc.Maze, doc.Goal, opts...)
	if err != nil {
		runLog.Error().Err(err).Msg("create navigator")
		return false
	}

	res, err := nav.Run(ctx)
	switch {
	case err == nil:
		fmt.Fprintf(out, "Reached the goal in %d moves.\n", len(res.Moves))
		printLocal(out, nav.Local(), doc.Goal)
		return true
	case errors.Is(err, navigator.ErrUnreachable):
		fmt.Fprintln(out, "Cannot reach the goal!")
	default:
		runLog.Error().Err(err).Int("moves", len(res.Moves)).Msg("simulation stopped")
	}
	return false
}

func printLocal(out io.Writer, local *maze.Maze, goal maze.Position) {
	for line := range local.Lines(goal) {
		fmt.Fprintln(out, line)
	}
}
