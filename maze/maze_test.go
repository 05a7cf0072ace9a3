package maze

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// checkMirrored asserts that every interior wall agrees with the facing
// wall of its neighbor.
func checkMirrored(t *testing.T, m *Maze) {
	t.Helper()
	for r := 0; r < m.Rows(); r++ {
		for c := 0; c < m.Cols(); c++ {
			for _, d := range Directions {
				n, ok := m.Neighbor(r, c, d)
				if !ok {
					continue
				}
				if got, want := m.Cell(r, c).Wall(d), n.Wall(Opposite(d)); got != want {
					t.Fatalf("(%d,%d).%v = %v; neighbor.%v = %v", r, c, d, got, Opposite(d), want)
				}
			}
		}
	}
}

func isBorder(m *Maze, r, c int, d Direction) bool {
	_, ok := m.NeighborPosition(Position{Row: r, Col: c}, d)
	return !ok
}

// TestNew_Defaults checks the 16×16 default layout: border walls, the
// start cell walls and nothing else.
func TestNew_Defaults(t *testing.T) {
	m, err := New()
	require.NoError(t, err)
	assert.Equal(t, DefaultSize, m.Rows())
	assert.Equal(t, DefaultSize, m.Cols())
	assert.Equal(t, Position{Row: 15, Col: 0}, m.Start())
	assert.Equal(t, North, m.Heading())

	for r := 0; r < m.Rows(); r++ {
		for c := 0; c < m.Cols(); c++ {
			for _, d := range Directions {
				w := m.Cell(r, c).Wall(d)
				switch {
				case isBorder(m, r, c, d):
					assert.Equal(t, Present, w, "border (%d,%d).%v", r, c, d)
				case r == 15 && c == 0 && d == East, r == 15 && c == 1 && d == West:
					assert.Equal(t, Present, w, "start wall (%d,%d).%v", r, c, d)
				default:
					assert.Equal(t, Absent, w, "interior (%d,%d).%v", r, c, d)
				}
			}
		}
	}
	checkMirrored(t, m)
}

// TestNew_StartHeadings verifies that only the forward side of the start
// cell stays open, whatever the heading.
func TestNew_StartHeadings(t *testing.T) {
	for _, h := range Directions {
		t.Run(h.String(), func(t *testing.T) {
			m := MustNew(WithSize(3, 3), WithStart(Position{Row: 1, Col: 1}, h))
			cell := m.Cell(1, 1)
			for _, d := range Directions {
				want := Present
				if d == h {
					want = Absent
				}
				assert.Equal(t, want, cell.Wall(d), "side %v", d)
			}
			checkMirrored(t, m)
		})
	}
}

// TestNew_Errors verifies option validation.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name string
		opts []Option
		err  error
	}{
		{"ZeroRows", []Option{WithSize(0, 4)}, ErrBadSize},
		{"TooWide", []Option{WithSize(4, MaxSize+1)}, ErrOptionViolation},
		{"StartOutside", []Option{WithSize(4, 4)}, ErrStartOutOfRange},
		{"NegativeStart", []Option{WithStart(Position{Row: -1, Col: 0}, North)}, ErrStartOutOfRange},
		{"BadHeading", []Option{WithStart(Position{}, Direction(7))}, ErrBadDirection},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(tc.opts...)
			if !errors.Is(err, tc.err) {
				t.Errorf("New error = %v; want %v", err, tc.err)
			}
		})
	}
}

// TestSetWall_Mirrors checks that writes reach both sides of the wall and
// that the whole grid stays symmetric after many mutations.
func TestSetWall_Mirrors(t *testing.T) {
	m := MustNew()
	m.SetWall(5, 5, East, Present)
	assert.Equal(t, Present, m.Cell(5, 5).East)
	assert.Equal(t, Present, m.Cell(5, 6).West)

	m.SetWall(5, 5, North, Unexplored)
	assert.Equal(t, Unexplored, m.Cell(4, 5).South)

	m.SetWall(5, 6, West, Absent)
	assert.Equal(t, Absent, m.Cell(5, 5).East)

	walls := []Wall{Present, Absent, Unexplored}
	i := 0
	for r := 0; r < m.Rows(); r += 3 {
		for c := 0; c < m.Cols(); c += 2 {
			for _, d := range Directions {
				m.SetWall(r, c, d, walls[i%len(walls)])
				i++
			}
		}
	}
	checkMirrored(t, m)
}

// TestSetWall_BorderIgnored ensures writes toward the outside are no-ops.
func TestSetWall_BorderIgnored(t *testing.T) {
	m := MustNew()
	before := m.Clone()

	m.SetWall(0, 3, North, Absent)
	m.SetWall(3, 0, West, Absent)
	m.SetWall(15, 3, South, Absent)
	m.SetWall(3, 15, East, Unexplored)

	assert.Equal(t, before.cells, m.cells)
}

// TestSetWallRelative resolves heading-relative sides.
func TestSetWallRelative(t *testing.T) {
	m := MustNew()
	m.SetWallRelative(7, 7, South, Right, Present) // West
	assert.Equal(t, Present, m.Cell(7, 7).West)
	assert.Equal(t, Present, m.Cell(7, 6).East)

	m.SetWallRelative(7, 7, East, Left, Present) // North
	assert.Equal(t, Present, m.Cell(6, 7).South)
	checkMirrored(t, m)
}

// TestNeighbor covers edges and interior lookups.
func TestNeighbor(t *testing.T) {
	m := MustNew(WithSize(2, 3), WithStart(Position{Row: 1, Col: 0}, North))
	m.SetWall(0, 1, South, Present)

	_, ok := m.Neighbor(0, 0, North)
	assert.False(t, ok)
	_, ok = m.Neighbor(1, 2, East)
	assert.False(t, ok)

	n, ok := m.Neighbor(0, 1, South)
	require.True(t, ok)
	assert.Equal(t, Present, n.North)

	p, ok := m.NeighborPosition(Position{Row: 0, Col: 1}, West)
	require.True(t, ok)
	assert.Equal(t, Position{Row: 0, Col: 0}, p)
}

// TestCell_OutOfRangePanics documents the coordinate contract.
func TestCell_OutOfRangePanics(t *testing.T) {
	m := MustNew(WithSize(2, 2), WithStart(Position{}, East))
	assert.Panics(t, func() { m.Cell(2, 0) })
	assert.Panics(t, func() { m.Cell(0, -1) })
	assert.Panics(t, func() { m.SetWall(5, 5, North, Present) })
	assert.Panics(t, func() { _ = Cell{}.Wall(Direction(9)) })
}

// TestWithUnexplored checks the belief-maze initialization.
func TestWithUnexplored(t *testing.T) {
	m := MustNew(WithSize(3, 3), WithStart(Position{Row: 2, Col: 0}, North), WithUnexplored())
	assert.Equal(t, Unexplored, m.Cell(1, 1).North)
	assert.Equal(t, Present, m.Cell(0, 1).North)
	assert.Equal(t, Present, m.Cell(2, 0).East)
	assert.Equal(t, Unexplored, m.Cell(2, 0).North)
	assert.True(t, m.Options().Unexplored)
	checkMirrored(t, m)
}

// TestClone_Independent ensures clones do not share cells.
func TestClone_Independent(t *testing.T) {
	m := MustNew()
	c := m.Clone()
	c.SetWall(4, 4, South, Present)
	assert.Equal(t, Absent, m.Cell(4, 4).South)
	assert.Equal(t, Present, c.Cell(4, 4).South)
	assert.Equal(t, m.Options(), c.Options())
}
