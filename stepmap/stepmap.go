package stepmap

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/micromouse/maze"
)

// Unreached marks a cell with no known path to the goal. It is one below
// the uint16 maximum so that Unreached+1 cannot wrap.
const Unreached uint16 = 0xFFFE

// Mode selects how Unexplored walls are treated during relaxation.
type Mode uint8

const (
	// UnexploredAsAbsent lets the flood cross Unexplored walls.
	UnexploredAsAbsent Mode = iota
	// UnexploredAsPresent blocks the flood at Unexplored walls.
	UnexploredAsPresent
)

// Passable reports whether a wall in state w may be crossed under mode.
func (mode Mode) Passable(w maze.Wall) bool {
	switch mode {
	case UnexploredAsAbsent:
		return w == maze.Absent || w == maze.Unexplored
	default:
		return w == maze.Absent
	}
}

func (mode Mode) String() string {
	switch mode {
	case UnexploredAsAbsent:
		return "UnexploredAsAbsent"
	case UnexploredAsPresent:
		return "UnexploredAsPresent"
	default:
		return fmt.Sprintf("Mode(%d)", uint8(mode))
	}
}

// StepMap is a rows×cols grid of distances to a goal cell.
type StepMap struct {
	rows, cols int
	dist       []uint16
}

// New returns a step map of the given size with every cell Unreached.
func New(rows, cols int) *StepMap {
	s := &StepMap{}
	s.reset(rows, cols)
	return s
}

// NewFor returns a step map sized to m.
func NewFor(m *maze.Maze) *StepMap {
	return New(m.Rows(), m.Cols())
}

func (s *StepMap) reset(rows, cols int) {
	if s.rows != rows || s.cols != cols || len(s.dist) != rows*cols {
		s.rows, s.cols = rows, cols
		s.dist = make([]uint16, rows*cols)
	}
	for i := range s.dist {
		s.dist[i] = Unreached
	}
}

// Rows returns the number of rows.
func (s *StepMap) Rows() int { return s.rows }

// Cols returns the number of columns.
func (s *StepMap) Cols() int { return s.cols }

func (s *StepMap) index(row, col int) int {
	if row < 0 || row >= s.rows || col < 0 || col >= s.cols {
		panic(fmt.Sprintf("stepmap: cell (%d,%d) out of range %dx%d", row, col, s.rows, s.cols))
	}
	return row*s.cols + col
}

// At returns the distance stored for (row,col).
// Panics if the coordinate is out of range.
func (s *StepMap) At(row, col int) uint16 {
	return s.dist[s.index(row, col)]
}

// Reachable reports whether (row,col) holds a real distance.
func (s *StepMap) Reachable(row, col int) bool {
	return s.At(row, col) != Unreached
}

// Neighbor returns the distance of the cell next to (row,col) in
// direction d, or false at the grid edge.
func (s *StepMap) Neighbor(row, col int, d maze.Direction) (uint16, bool) {
	s.index(row, col)
	n := maze.Position{Row: row, Col: col}.Step(d)
	if n.Row < 0 || n.Row >= s.rows || n.Col < 0 || n.Col >= s.cols {
		return 0, false
	}
	return s.dist[s.index(n.Row, n.Col)], true
}

// Calc recomputes the whole map for goal against m under mode and returns
// the number of relaxation passes it took, the last one being the pass
// that changed nothing. The map is resized to m if needed.
// Panics if goal lies outside m.
func (s *StepMap) Calc(m *maze.Maze, mode Mode, goal maze.Position) int {
	s.reset(m.Rows(), m.Cols())
	s.dist[s.index(goal.Row, goal.Col)] = 0

	passes := 0
	for updated := true; updated; {
		updated = false
		passes++
		for r := 0; r < s.rows; r++ {
			for c := 0; c < s.cols; c++ {
				if s.relax(m, mode, r, c) {
					updated = true
				}
			}
		}
	}
	return passes
}

// relax lowers (r,c) to 1 + its best crossable neighbor and reports
// whether the value changed.
func (s *StepMap) relax(m *maze.Maze, mode Mode, r, c int) bool {
	i := s.index(r, c)
	cell := m.Cell(r, c)
	changed := false
	for _, d := range maze.Directions {
		if !mode.Passable(cell.Wall(d)) {
			continue
		}
		nd, ok := s.Neighbor(r, c, d)
		if !ok {
			continue
		}
		if int(s.dist[i]) > int(nd)+1 {
			s.dist[i] = nd + 1
			changed = true
		}
	}
	return changed
}

// NextDirection returns the side of p to move through: among the sides
// whose wall is Absent in m, the one whose neighbor has the smallest
// value, scanning maze.Directions and keeping the first minimum.
// Unexplored sides are never chosen. Returns false when p is Unreached or
// no open side leads to a reached neighbor.
func (s *StepMap) NextDirection(m *maze.Maze, p maze.Position) (maze.Direction, bool) {
	if !s.Reachable(p.Row, p.Col) {
		return maze.North, false
	}
	cell := m.Cell(p.Row, p.Col)
	best, found := Unreached, false
	dir := maze.North
	for _, d := range maze.Directions {
		if cell.Wall(d) != maze.Absent {
			continue
		}
		v, ok := s.Neighbor(p.Row, p.Col, d)
		if !ok {
			continue
		}
		if v < best {
			best, dir, found = v, d, true
		}
	}
	return dir, found
}

// Display writes the map as hexadecimal values, one row per line, each
// value centered in a four-character column.
func (s *StepMap) Display(w io.Writer) error {
	var sb strings.Builder
	for r := 0; r < s.rows; r++ {
		for c := 0; c < s.cols; c++ {
			sb.WriteString(center(fmt.Sprintf("%X", s.At(r, c)), 4))
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

func (s *StepMap) String() string {
	var sb strings.Builder
	_ = s.Display(&sb)
	return sb.String()
}

func center(v string, width int) string {
	pad := width - len(v)
	if pad <= 0 {
		return v
	}
	left := pad / 2
	return strings.Repeat(" ", left) + v + strings.Repeat(" ", pad-left)
}
