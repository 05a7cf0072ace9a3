package maze

import "fmt"

// Option configures maze construction via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation by New.
type Option func(*Options)

// Options holds the construction parameters of a Maze.
type Options struct {
	// Rows and Cols are the grid dimensions.
	Rows, Cols int

	// Start is the fixed start cell.
	Start Position

	// Heading is the direction the robot faces on the start cell; the
	// start cell is open only on this side.
	Heading Direction

	// Unexplored initializes interior walls as Unexplored instead of
	// Absent. Border and start walls are Present either way.
	Unexplored bool

	err error
}

// DefaultOptions returns a 16×16 maze with the start in the south-west
// corner facing North.
func DefaultOptions() Options {
	return Options{
		Rows:    DefaultSize,
		Cols:    DefaultSize,
		Start:   Position{Row: DefaultSize - 1, Col: 0},
		Heading: North,
	}
}

// WithSize sets the grid dimensions. The start cell is not moved; combine
// with WithStart when shrinking below the default start coordinate.
func WithSize(rows, cols int) Option {
	return func(o *Options) {
		if rows < 1 || rows > MaxSize || cols < 1 || cols > MaxSize {
			o.err = fmt.Errorf("%w: %w: %dx%d", ErrOptionViolation, ErrBadSize, rows, cols)
			return
		}
		o.Rows, o.Cols = rows, cols
	}
}

// WithStart sets the start cell and the heading the robot has on it.
func WithStart(p Position, heading Direction) Option {
	return func(o *Options) {
		if !heading.Valid() {
			o.err = fmt.Errorf("%w: %w: %v", ErrOptionViolation, ErrBadDirection, heading)
			return
		}
		o.Start, o.Heading = p, heading
	}
}

// WithUnexplored marks every interior wall Unexplored, which suits a
// belief maze that is filled in by sensing.
func WithUnexplored() Option {
	return func(o *Options) {
		o.Unexplored = true
	}
}

// WithOptions copies every field of src, typically taken from
// another maze's Options().
func WithOptions(src Options) Option {
	return func(o *Options) {
		o.Rows, o.Cols = src.Rows, src.Cols
		o.Start, o.Heading = src.Start, src.Heading
		o.Unexplored = src.Unexplored
	}
}

func (o Options) validate() error {
	if o.err != nil {
		return o.err
	}
	if o.Rows < 1 || o.Rows > MaxSize || o.Cols < 1 || o.Cols > MaxSize {
		return fmt.Errorf("%w: %dx%d", ErrBadSize, o.Rows, o.Cols)
	}
	if !o.Heading.Valid() {
		return fmt.Errorf("%w: %v", ErrBadDirection, o.Heading)
	}
	if o.Start.Row < 0 || o.Start.Row >= o.Rows || o.Start.Col < 0 || o.Start.Col >= o.Cols {
		return fmt.Errorf("%w: %v in %dx%d", ErrStartOutOfRange, o.Start, o.Rows, o.Cols)
	}
	return nil
}
