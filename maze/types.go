package maze

import (
	"errors"
	"fmt"
)

// Sentinel errors for maze construction.
var (
	// ErrBadSize indicates a requested dimension outside [1, MaxSize].
	ErrBadSize = errors.New("maze: dimensions out of range")
	// ErrStartOutOfRange indicates a start position outside the grid.
	ErrStartOutOfRange = errors.New("maze: start position out of range")
	// ErrBadDirection indicates a value that is not a compass direction.
	ErrBadDirection = errors.New("maze: invalid direction")
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("maze: invalid option supplied")
)

const (
	// DefaultSize is the side length of a classic micromouse maze.
	DefaultSize = 16
	// MaxSize bounds each dimension so that every true distance
	// (at most rows*cols-1) stays below a uint16 sentinel.
	MaxSize = 255
)

// Wall is the state of one side of a cell.
type Wall uint8

const (
	// Absent means the side can be crossed.
	Absent Wall = iota
	// Present means the side is blocked.
	Present
	// Unexplored means the state has not been observed yet.
	Unexplored
)

func (w Wall) String() string {
	switch w {
	case Absent:
		return "Absent"
	case Present:
		return "Present"
	case Unexplored:
		return "Unexplored"
	default:
		return fmt.Sprintf("Wall(%d)", uint8(w))
	}
}

// Direction is an absolute compass direction.
type Direction uint8

const (
	North Direction = iota
	East
	South
	West
)

// Directions is the enumeration order used for relaxation and move
// tie-breaking: East, West, South, North.
var Directions = [4]Direction{East, West, South, North}

// Valid reports whether d is one of the four compass directions.
func (d Direction) Valid() bool { return d <= West }

func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	default:
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
}

// DirectionOfTravel is a direction relative to the current heading.
type DirectionOfTravel uint8

const (
	Forward DirectionOfTravel = iota
	Right
	Backward
	Left
)

func (t DirectionOfTravel) String() string {
	switch t {
	case Forward:
		return "Forward"
	case Right:
		return "Right"
	case Backward:
		return "Backward"
	case Left:
		return "Left"
	default:
		return fmt.Sprintf("DirectionOfTravel(%d)", uint8(t))
	}
}

// Position addresses a cell by row and column.
type Position struct {
	Row, Col int
}

// Step returns the position one cell away in direction d.
// The result is not bounds-checked.
func (p Position) Step(d Direction) Position {
	dx, dy := ToVector(d)
	return Position{Row: p.Row + dy, Col: p.Col + dx}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Cell holds the four walls of a single maze cell.
type Cell struct {
	North, East, South, West Wall
}

// Wall returns the wall on side d.
func (c Cell) Wall(d Direction) Wall {
	switch d {
	case North:
		return c.North
	case East:
		return c.East
	case South:
		return c.South
	case West:
		return c.West
	}
	panic(fmt.Sprintf("maze: %v is not a direction", d))
}

func (c *Cell) set(d Direction, w Wall) {
	switch d {
	case North:
		c.North = w
	case East:
		c.East = w
	case South:
		c.South = w
	case West:
		c.West = w
	default:
		panic(fmt.Sprintf("maze: %v is not a direction", d))
	}
}
