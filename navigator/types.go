package navigator

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/micromouse/maze"
	"github.com/katalvlaran/micromouse/stepmap"
	"github.com/rs/zerolog"
)

// Sentinel errors for navigation.
var (
	// ErrNilMaze is returned when the true maze is nil.
	ErrNilMaze = errors.New("navigator: maze is nil")

	// ErrGoalOutOfRange is returned when the goal lies outside the maze.
	ErrGoalOutOfRange = errors.New("navigator: goal out of range")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("navigator: invalid option supplied")

	// ErrUnreachable reports that no path to the goal exists under the
	// current knowledge. The navigator does not move when it is returned.
	ErrUnreachable = errors.New("navigator: goal unreachable with current knowledge")

	// ErrArrived is returned by Step when the navigator is already on the goal.
	ErrArrived = errors.New("navigator: already at goal")

	// ErrStepLimit is returned by Run when the move ceiling is reached.
	ErrStepLimit = errors.New("navigator: step limit reached")
)

// Move records one executed move.
type Move struct {
	From, To  maze.Position
	Direction maze.Direction
	// StepValue is the step-map value of From when the move was decided.
	StepValue uint16
}

// Result summarizes a Run.
type Result struct {
	// Reached is true when the navigator ended on the goal.
	Reached bool
	// Moves lists every executed move in order.
	Moves []Move
}

// Path returns the visited positions, starting with the first From.
func (r Result) Path() []maze.Position {
	if len(r.Moves) == 0 {
		return nil
	}
	path := make([]maze.Position, 0, len(r.Moves)+1)
	path = append(path, r.Moves[0].From)
	for _, mv := range r.Moves {
		path = append(path, mv.To)
	}
	return path
}

// Option configures a Navigator via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks of a Navigator.
type Options struct {
	// MaxSteps, if > 0, caps the number of moves Run may execute.
	MaxSteps int

	// UnexploredLocal starts the local maze with Unexplored interior
	// walls instead of Absent ones.
	UnexploredLocal bool

	// Logger receives per-move debug events and outcome events.
	Logger zerolog.Logger

	// OnPlan is called after every step-map recomputation.
	OnPlan func(at maze.Position, s *stepmap.StepMap)

	// OnMove is called after every executed move, once the new cell has
	// been sensed.
	OnMove func(mv Move)

	err error
}

// DefaultOptions returns options with no step ceiling, a disabled logger
// and no-op hooks.
func DefaultOptions() Options {
	return Options{
		Logger: zerolog.Nop(),
		OnPlan: func(maze.Position, *stepmap.StepMap) {},
		OnMove: func(Move) {},
	}
}

// WithMaxSteps caps the number of moves Run may execute.
//
//	n > 0:  stop with ErrStepLimit after n moves
//	n == 0: no limit
//	n < 0:  invalid option → ErrOptionViolation
func WithMaxSteps(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxSteps cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxSteps = n
	}
}

// WithUnexploredLocal starts the local maze with Unexplored interior walls.
func WithUnexploredLocal() Option {
	return func(o *Options) {
		o.UnexploredLocal = true
	}
}

// WithLogger sets the logger used for move and outcome events.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// WithOnPlan registers a callback run after each step-map recomputation.
// The step map must not be retained; it is overwritten on the next step.
func WithOnPlan(fn func(at maze.Position, s *stepmap.StepMap)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnPlan = fn
		}
	}
}

// WithOnMove registers a callback run after each move.
func WithOnMove(fn func(mv Move)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnMove = fn
		}
	}
}
