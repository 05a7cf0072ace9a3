package maze

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestLines_Unexplored shows partially known walls.
func TestLines_Unexplored(t *testing.T) {
	m := MustNew(WithSize(1, 2), WithStart(Position{Row: 0, Col: 0}, East), WithUnexplored())
	var got []string
	for l := range m.Lines(Position{Row: 0, Col: 1}) {
		got = append(got, l)
	}
	assert.Equal(t, []string{
		"+---+---+",
		"| S : G |",
		"+---+---+",
	}, got)
}

// TestLines_StopEarly checks that consumers may stop and restart.
func TestLines_StopEarly(t *testing.T) {
	m := MustNew()
	n := 0
	for range m.Lines(Position{Row: 7, Col: 7}) {
		n++
		if n == 3 {
			break
		}
	}
	assert.Equal(t, 3, n)

	total := 0
	for range m.Lines(Position{Row: 7, Col: 7}) {
		total++
	}
	assert.Equal(t, 2*DefaultSize+1, total)
	assert.Equal(t, total, strings.Count(m.String(), "\n"))
	assert.Contains(t, m.String(), "| S |")
}
