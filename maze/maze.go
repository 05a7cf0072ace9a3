package maze

import (
	"fmt"
	"strings"
)

// Maze is a rows×cols grid of cells with mirrored wall state.
// Cells are stored row-major in a single slice.
type Maze struct {
	rows, cols int
	start      Position
	heading    Direction
	unexplored bool
	cells      []Cell
}

// New builds a maze whose walls are all Absent (or Unexplored, see
// WithUnexplored) except the border walls and
// the non-forward sides of the start cell.
// Returns ErrOptionViolation, ErrBadSize, ErrBadDirection or
// ErrStartOutOfRange for invalid options.
func New(opts ...Option) (*Maze, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.validate(); err != nil {
		return nil, err
	}

	m := &Maze{
		rows:       o.Rows,
		cols:       o.Cols,
		start:      o.Start,
		heading:    o.Heading,
		unexplored: o.Unexplored,
		cells:      make([]Cell, o.Rows*o.Cols),
	}
	if o.Unexplored {
		for i := range m.cells {
			m.cells[i] = Cell{North: Unexplored, East: Unexplored, South: Unexplored, West: Unexplored}
		}
	}
	for c := 0; c < m.cols; c++ {
		m.cells[m.index(0, c)].North = Present
		m.cells[m.index(m.rows-1, c)].South = Present
	}
	for r := 0; r < m.rows; r++ {
		m.cells[m.index(r, 0)].West = Present
		m.cells[m.index(r, m.cols-1)].East = Present
	}

	// The start cell is walled off except for the front.
	for _, t := range [...]DirectionOfTravel{Right, Left, Backward} {
		m.SetWallRelative(o.Start.Row, o.Start.Col, o.Heading, t, Present)
	}

	return m, nil
}

// MustNew is like New but panics on invalid options.
func MustNew(opts ...Option) *Maze {
	m, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return m
}

// Rows returns the number of rows.
func (m *Maze) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Maze) Cols() int { return m.cols }

// Start returns the start cell.
func (m *Maze) Start() Position { return m.start }

// Heading returns the heading on the start cell.
func (m *Maze) Heading() Direction { return m.heading }

// Options returns the options the maze was built with.
func (m *Maze) Options() Options {
	return Options{Rows: m.rows, Cols: m.cols, Start: m.start, Heading: m.heading, Unexplored: m.unexplored}
}

// InBounds reports whether (row,col) lies within the grid.
func (m *Maze) InBounds(row, col int) bool {
	return row >= 0 && row < m.rows && col >= 0 && col < m.cols
}

func (m *Maze) index(row, col int) int {
	if !m.InBounds(row, col) {
		panic(fmt.Sprintf("maze: cell (%d,%d) out of range %dx%d", row, col, m.rows, m.cols))
	}
	return row*m.cols + col
}

// Cell returns a copy of the cell at (row,col).
// Panics if the coordinate is out of range.
func (m *Maze) Cell(row, col int) Cell {
	return m.cells[m.index(row, col)]
}

// Neighbor returns the cell adjacent to (row,col) in direction d, or
// false when (row,col) is on the grid edge in that direction.
func (m *Maze) Neighbor(row, col int, d Direction) (Cell, bool) {
	p, ok := m.NeighborPosition(Position{Row: row, Col: col}, d)
	if !ok {
		return Cell{}, false
	}
	return m.cells[m.index(p.Row, p.Col)], true
}

// NeighborPosition returns the coordinate adjacent to p in direction d,
// or false when that coordinate would fall outside the grid.
func (m *Maze) NeighborPosition(p Position, d Direction) (Position, bool) {
	m.index(p.Row, p.Col)
	n := p.Step(d)
	if !m.InBounds(n.Row, n.Col) {
		return Position{}, false
	}
	return n, true
}

// SetWall writes w on side d of (row,col) and mirrors it onto the
// neighbor's opposite side. Writes toward the outside of the grid are
// ignored, so border walls stay Present.
func (m *Maze) SetWall(row, col int, d Direction, w Wall) {
	n, ok := m.NeighborPosition(Position{Row: row, Col: col}, d)
	if !ok {
		return
	}
	m.cells[m.index(row, col)].set(d, w)
	m.cells[m.index(n.Row, n.Col)].set(Opposite(d), w)
}

// SetWallRelative resolves travel against facing and delegates to SetWall.
func (m *Maze) SetWallRelative(row, col int, facing Direction, travel DirectionOfTravel, w Wall) {
	m.SetWall(row, col, ToAbsolute(facing, travel), w)
}

// Clone returns an independent copy of m.
func (m *Maze) Clone() *Maze {
	c := *m
	c.cells = make([]Cell, len(m.cells))
	copy(c.cells, m.cells)
	return &c
}

// String renders the maze without a goal marker.
func (m *Maze) String() string {
	var sb strings.Builder
	for line := range m.Lines(Position{Row: -1, Col: -1}) {
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	return sb.String()
}
