package mazetext

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/micromouse/maze"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pos(r, c int) maze.Position { return maze.Position{Row: r, Col: c} }

// TestParseFile_DeadEnd loads a 3×3 diagram with wide segments.
func TestParseFile_DeadEnd(t *testing.T) {
	doc, err := ParseFile(filepath.Join("testdata", "dead_end.txt"))
	require.NoError(t, err)
	m := doc.Maze

	assert.Equal(t, 3, m.Rows())
	assert.Equal(t, 3, m.Cols())
	assert.Equal(t, pos(0, 2), doc.Goal)
	assert.True(t, doc.HasStart)
	assert.Equal(t, pos(2, 0), doc.Start)
	assert.Equal(t, maze.North, m.Heading())

	assert.Equal(t, maze.Present, m.Cell(1, 1).North)
	assert.Equal(t, maze.Present, m.Cell(0, 2).South)
	assert.Equal(t, maze.Absent, m.Cell(0, 0).South)
	assert.Equal(t, maze.Present, m.Cell(2, 1).West)
	assert.Equal(t, maze.Absent, m.Cell(1, 1).South)
	assert.Equal(t, maze.Absent, m.Cell(0, 1).East)
}

// TestParse_CountsSegments checks one wall write per drawn segment.
func TestParse_CountsSegments(t *testing.T) {
	raw, err := os.ReadFile(filepath.Join("testdata", "dead_end.txt"))
	require.NoError(t, err)

	p := &parser{}
	require.NoError(t, p.read(strings.NewReader(string(raw))))
	require.NoError(t, p.layout())
	for i, line := range p.lines {
		if i%2 == 0 {
			require.NoError(t, p.horizontal(i, line))
		} else {
			require.NoError(t, p.vertical(i, line))
		}
	}
	drawn := strings.Count(string(raw), "---") + strings.Count(string(raw), "|")
	assert.Len(t, p.walls, drawn)
	assert.Equal(t, 15, drawn)
}

// TestParseFile_Compact loads a diagram with one-character segments.
func TestParseFile_Compact(t *testing.T) {
	doc, err := ParseFile(filepath.Join("testdata", "compact.txt"))
	require.NoError(t, err)
	m := doc.Maze
	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 2, m.Cols())
	assert.Equal(t, pos(0, 1), doc.Goal)
	assert.Equal(t, pos(1, 0), doc.Start)
	assert.Equal(t, maze.Present, m.Cell(1, 1).North)
	assert.Equal(t, maze.Present, m.Cell(1, 0).East)
	assert.Equal(t, maze.Absent, m.Cell(0, 0).East)
}

// TestParse_RoundTrip parses what Maze.Lines renders.
func TestParse_RoundTrip(t *testing.T) {
	m := maze.MustNew(maze.WithSize(4, 5), maze.WithStart(pos(3, 0), maze.North))
	m.SetWall(0, 1, maze.South, maze.Present)
	m.SetWall(2, 2, maze.East, maze.Present)
	m.SetWall(3, 3, maze.North, maze.Present)
	m.SetWall(1, 4, maze.West, maze.Present)
	goal := pos(1, 2)

	var sb strings.Builder
	for line := range m.Lines(goal) {
		sb.WriteString(line + "\n")
	}
	doc, err := Parse(strings.NewReader(sb.String()))
	require.NoError(t, err)
	assert.Equal(t, goal, doc.Goal)
	assert.Equal(t, m.String(), doc.Maze.String())
	assert.Equal(t, m.Options(), doc.Maze.Options())
}

// TestParse_NoStartMarker falls back to the south-west corner.
func TestParse_NoStartMarker(t *testing.T) {
	doc, err := Parse(strings.NewReader("+---+---+\n|     G |\n+---+---+\n"))
	require.NoError(t, err)
	assert.False(t, doc.HasStart)
	assert.Equal(t, pos(0, 0), doc.Start)
	assert.Equal(t, maze.North, doc.Maze.Heading())
	assert.Equal(t, maze.Present, doc.Maze.Cell(0, 0).East, "start cell walled except forward")
}

// TestParse_OptionsOverride lets callers pick the start heading.
func TestParse_OptionsOverride(t *testing.T) {
	doc, err := ParseFile(filepath.Join("testdata", "dead_end.txt"), maze.WithStart(pos(2, 0), maze.East))
	require.NoError(t, err)
	assert.Equal(t, maze.East, doc.Maze.Heading())
	assert.Equal(t, maze.Present, doc.Maze.Cell(2, 0).North)
}

// TestParse_Errors covers malformed diagrams.
func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name      string
		in        string
		err       error
		line, col int
	}{
		{"Empty", "\n  \n", ErrEmpty, 0, 0},
		{"BadPillar", "x---+\n| G |\n+---+\n", ErrSyntax, 1, 1},
		{"MixedSegment", "+-x-+\n| G |\n+---+\n", ErrSyntax, 1, 3},
		{"BadSegment", "+---+\n| G |\n+===+\n", ErrSyntax, 3, 2},
		{"BadInterior", "+---+\n| X |\n+---+\n", ErrSyntax, 2, 3},
		{"BadVertical", "+---+\n# G |\n+---+\n", ErrSyntax, 2, 1},
		{"Overlong", "+---+\n| G |   |\n+---+\n", ErrSyntax, 2, 6},
		{"Unclosed", "+---+\n| G |\n", ErrSyntax, 3, 0},
		{"TwoGoals", "+---+---+\n| G   G |\n+---+---+\n", ErrSyntax, 2, 7},
		{"TwoMarkers", "+---+\n|GS |\n+---+\n", ErrSyntax, 2, 3},
		{"NoSegment", "++\n", ErrSyntax, 1, 2},
		{"SinglePillar", "+---\n", ErrSyntax, 1, 0},
		{"Ragged", "+---+-\n| G |\n+---+\n", ErrSyntax, 1, 0},
		{"NoGoal", "+---+\n|   |\n+---+\n", ErrNoGoal, 0, 0},
		{"TooWide", "+" + strings.Repeat("-+", maze.MaxSize+1) + "\n|G\n+\n", maze.ErrBadSize, 0, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tc.in))
			require.ErrorIs(t, err, tc.err)
			var se *SyntaxError
			if errors.As(err, &se) {
				assert.Equal(t, tc.line, se.Line, "line")
				assert.Equal(t, tc.col, se.Col, "col")
				assert.NotEmpty(t, se.Error())
			}
		})
	}
}

// TestParseFile_Missing wraps the open error.
func TestParseFile_Missing(t *testing.T) {
	_, err := ParseFile(filepath.Join("testdata", "nope.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

// TestParseFile_Assets loads the bundled 16×16 mazes.
func TestParseFile_Assets(t *testing.T) {
	paths, err := filepath.Glob(filepath.Join("..", "assets", "*.txt"))
	require.NoError(t, err)
	require.NotEmpty(t, paths)
	for _, path := range paths {
		t.Run(filepath.Base(path), func(t *testing.T) {
			doc, err := ParseFile(path)
			require.NoError(t, err)
			assert.Equal(t, maze.DefaultSize, doc.Maze.Rows())
			assert.Equal(t, maze.DefaultSize, doc.Maze.Cols())
			assert.Equal(t, pos(7, 7), doc.Goal)
			assert.Equal(t, pos(15, 0), doc.Start)
			assert.Equal(t, maze.North, doc.Maze.Heading())
		})
	}
}
