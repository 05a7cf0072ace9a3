package mazegen

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/katalvlaran/micromouse/maze"
)

var (
	// ErrNilRand is returned when Wilson is called without a random source.
	ErrNilRand = errors.New("mazegen: nil random source")

	// ErrDisconnected indicates the start cell's closed sides leave part
	// of the grid unreachable, so no spanning tree exists.
	ErrDisconnected = errors.New("mazegen: start cell splits the grid")
)

// NewRand returns a deterministic source for seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// carver holds the state of one generation run.
type carver struct {
	m     *maze.Maze
	rng   *rand.Rand
	start maze.Position
	front maze.Direction
}

// Wilson returns a perfect maze built with opts: all interior walls start
// Present and exactly rows·cols−1 of them are opened so that every cell
// is reachable from every other along a single path.
//
// The result never contains Unexplored walls, even if opts ask for them.
func Wilson(rng *rand.Rand, opts ...maze.Option) (*maze.Maze, error) {
	if rng == nil {
		return nil, ErrNilRand
	}
	m, err := maze.New(opts...)
	if err != nil {
		return nil, err
	}
	for r := 0; r < m.Rows(); r++ {
		for c := 0; c < m.Cols(); c++ {
			m.SetWall(r, c, maze.East, maze.Present)
			m.SetWall(r, c, maze.South, maze.Present)
		}
	}

	n := m.Rows() * m.Cols()
	if n == 1 {
		return m, nil
	}

	g := &carver{m: m, rng: rng, start: m.Start(), front: m.Heading()}
	if reached := g.reachable(); reached != n {
		return nil, fmt.Errorf("%w: %d of %d cells reachable from %v", ErrDisconnected, reached, n, g.start)
	}

	inTree := make([]bool, n)
	next := make([]maze.Direction, n)
	inTree[g.index(g.start)] = true

	for _, i := range rng.Perm(n) {
		if inTree[i] {
			continue
		}
		// Walk until the tree is hit, remembering only the last exit
		// taken from each cell. Overwriting erases loops.
		p := g.position(i)
		for !inTree[g.index(p)] {
			d := g.randomExit(p)
			next[g.index(p)] = d
			p, _ = m.NeighborPosition(p, d)
		}
		p = g.position(i)
		for !inTree[g.index(p)] {
			inTree[g.index(p)] = true
			d := next[g.index(p)]
			m.SetWall(p.Row, p.Col, d, maze.Absent)
			p, _ = m.NeighborPosition(p, d)
		}
	}
	return m, nil
}

// MustWilson is like Wilson but panics on error.
func MustWilson(rng *rand.Rand, opts ...maze.Option) *maze.Maze {
	m, err := Wilson(rng, opts...)
	if err != nil {
		panic(err)
	}
	return m
}

func (g *carver) index(p maze.Position) int { return p.Row*g.m.Cols() + p.Col }

func (g *carver) position(i int) maze.Position {
	return maze.Position{Row: i / g.m.Cols(), Col: i % g.m.Cols()}
}

// allowed reports whether the edge leaving p toward d may be carved.
func (g *carver) allowed(p maze.Position, d maze.Direction) (maze.Position, bool) {
	n, ok := g.m.NeighborPosition(p, d)
	if !ok {
		return maze.Position{}, false
	}
	if p == g.start && d != g.front {
		return maze.Position{}, false
	}
	if n == g.start && d != maze.Opposite(g.front) {
		return maze.Position{}, false
	}
	return n, true
}

func (g *carver) randomExit(p maze.Position) maze.Direction {
	var exits [4]maze.Direction
	k := 0
	for _, d := range maze.Directions {
		if _, ok := g.allowed(p, d); ok {
			exits[k] = d
			k++
		}
	}
	return exits[g.rng.IntN(k)]
}

// reachable counts the cells connected to the start over carvable edges.
func (g *carver) reachable() int {
	seen := make([]bool, g.m.Rows()*g.m.Cols())
	queue := []maze.Position{g.start}
	seen[g.index(g.start)] = true
	count := 0
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		count++
		for _, d := range maze.Directions {
			n, ok := g.allowed(p, d)
			if !ok || seen[g.index(n)] {
				continue
			}
			seen[g.index(n)] = true
			queue = append(queue, n)
		}
	}
	return count
}
