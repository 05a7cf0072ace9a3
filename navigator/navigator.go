package navigator

import (
	"context"
	"fmt"

	"github.com/katalvlaran/micromouse/maze"
	"github.com/katalvlaran/micromouse/stepmap"
)

// Navigator explores a true maze towards a goal, keeping its own belief
// of the walls it has seen.
type Navigator struct {
	truth *maze.Maze
	local *maze.Maze
	steps *stepmap.StepMap
	goal  maze.Position
	pos   maze.Position
	opts  Options
}

// New prepares a navigator on the start cell of truth. The local maze has
// the same size and start as truth; the start cell's true walls are
// sensed immediately.
func New(truth *maze.Maze, goal maze.Position, opts ...Option) (*Navigator, error) {
	if truth == nil {
		return nil, ErrNilMaze
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !truth.InBounds(goal.Row, goal.Col) {
		return nil, fmt.Errorf("%w: %v in %dx%d", ErrGoalOutOfRange, goal, truth.Rows(), truth.Cols())
	}

	mopts := []maze.Option{maze.WithOptions(truth.Options())}
	if o.UnexploredLocal {
		mopts = append(mopts, maze.WithUnexplored())
	}
	local, err := maze.New(mopts...)
	if err != nil {
		return nil, fmt.Errorf("navigator: local maze: %w", err)
	}

	n := &Navigator{
		truth: truth,
		local: local,
		steps: stepmap.NewFor(truth),
		goal:  goal,
		pos:   truth.Start(),
		opts:  o,
	}
	n.sense(n.pos)
	return n, nil
}

// Position returns the current cell.
func (n *Navigator) Position() maze.Position { return n.pos }

// Goal returns the goal cell.
func (n *Navigator) Goal() maze.Position { return n.goal }

// Arrived reports whether the navigator is on the goal.
func (n *Navigator) Arrived() bool { return n.pos == n.goal }

// Local returns a snapshot of the local belief maze.
func (n *Navigator) Local() *maze.Maze { return n.local.Clone() }

// StepMap returns the step map of the most recent plan. It is overwritten
// by the next Step.
func (n *Navigator) StepMap() *stepmap.StepMap { return n.steps }

// sense copies the true walls of p into the local maze.
func (n *Navigator) sense(p maze.Position) {
	cell := n.truth.Cell(p.Row, p.Col)
	for _, d := range maze.Directions {
		n.local.SetWall(p.Row, p.Col, d, cell.Wall(d))
	}
}

// Step runs one sense-plan-act iteration. It returns ErrArrived on the
// goal and ErrUnreachable, without moving, when no path is known.
func (n *Navigator) Step() (Move, error) {
	if n.Arrived() {
		return Move{}, ErrArrived
	}

	n.steps.Calc(n.local, stepmap.UnexploredAsAbsent, n.goal)
	n.opts.OnPlan(n.pos, n.steps)

	d, ok := n.steps.NextDirection(n.local, n.pos)
	if !ok {
		n.opts.Logger.Warn().
			Stringer("at", n.pos).
			Stringer("goal", n.goal).
			Msg("goal unreachable")
		return Move{}, fmt.Errorf("%w: at %v", ErrUnreachable, n.pos)
	}

	mv := Move{
		From:      n.pos,
		To:        n.pos.Step(d),
		Direction: d,
		StepValue: n.steps.At(n.pos.Row, n.pos.Col),
	}
	n.pos = mv.To
	n.sense(n.pos)

	n.opts.Logger.Debug().
		Stringer("dir", d).
		Int("row", mv.To.Row).
		Int("col", mv.To.Col).
		Uint16("step", mv.StepValue).
		Msg("move")
	n.opts.OnMove(mv)
	return mv, nil
}

// Run steps until the goal is reached. It returns the moves made so far
// together with ErrUnreachable, ErrStepLimit or ctx.Err() when it stops
// early. ctx is checked between moves only.
func (n *Navigator) Run(ctx context.Context) (Result, error) {
	var res Result
	for !n.Arrived() {
		select {
		case <-ctx.Done():
			return res, ctx.Err()
		default:
		}
		if n.opts.MaxSteps > 0 && len(res.Moves) >= n.opts.MaxSteps {
			return res, fmt.Errorf("%w: %d moves", ErrStepLimit, len(res.Moves))
		}

		mv, err := n.Step()
		if err != nil {
			return res, err
		}
		res.Moves = append(res.Moves, mv)
	}
	res.Reached = true
	n.opts.Logger.Info().
		Stringer("goal", n.goal).
		Int("moves", len(res.Moves)).
		Msg("goal reached")
	return res, nil
}
