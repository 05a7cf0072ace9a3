package maze

import (
	"iter"
	"strings"
)

// Lines yields the maze as an ASCII diagram, one line per iteration:
//
//	+---+---+
//	| G     |
//	+   +---+
//	| S |   |
//	+---+---+
//
// Unexplored walls are drawn as " . " and ":". The start cell is marked
// "S" and goal "G" (goal wins when both coincide). Every call returns a
// fresh sequence; lines are built only as they are consumed.
func (m *Maze) Lines(goal Position) iter.Seq[string] {
	return func(yield func(string) bool) {
		for r := 0; r < m.rows; r++ {
			if !yield(m.horizontalLine(r, North)) {
				return
			}
			if !yield(m.verticalLine(r, goal)) {
				return
			}
		}
		yield(m.horizontalLine(m.rows-1, South))
	}
}

func (m *Maze) horizontalLine(row int, side Direction) string {
	var sb strings.Builder
	sb.Grow(m.cols*4 + 1)
	for c := 0; c < m.cols; c++ {
		sb.WriteByte('+')
		switch m.Cell(row, c).Wall(side) {
		case Present:
			sb.WriteString("---")
		case Unexplored:
			sb.WriteString(" . ")
		default:
			sb.WriteString("   ")
		}
	}
	sb.WriteByte('+')
	return sb.String()
}

func (m *Maze) verticalLine(row int, goal Position) string {
	var sb strings.Builder
	sb.Grow(m.cols*4 + 1)
	for c := 0; c < m.cols; c++ {
		sb.WriteByte(verticalGlyph(m.Cell(row, c).West))
		switch (Position{Row: row, Col: c}) {
		case goal:
			sb.WriteString(" G ")
		case m.start:
			sb.WriteString(" S ")
		default:
			sb.WriteString("   ")
		}
	}
	sb.WriteByte(verticalGlyph(m.Cell(row, m.cols-1).East))
	return sb.String()
}

func verticalGlyph(w Wall) byte {
	switch w {
	case Present:
		return '|'
	case Unexplored:
		return ':'
	default:
		return ' '
	}
}
