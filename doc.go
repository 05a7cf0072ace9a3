// Package micromouse is the navigation core of a micromouse maze solver:
// a wall-accurate grid model, a flood-fill step map and the exploration
// loop that drives a robot through an initially unknown maze.
//
// Packages:
//
//	maze/      - Maze, Cell, Wall and the heading algebra (ToAbsolute, ToRelative, ToVector)
//	stepmap/   - flood-fill distance field with two traversal modes and the move decision
//	navigator/ - sense-plan-act loop over a true maze and a local belief maze
//	mazetext/  - ASCII diagram loader ("+---+" / "|   |" with G and S markers)
//	mazegen/   - random perfect mazes (Wilson's algorithm) for simulation
//	cmd/mmsim  - simulator that runs the navigator over diagrams and generated mazes
//
// Quick ASCII example (3×3, start S facing North, goal G):
//
//	+---+---+---+
//	|         G |
//	+   +---+---+
//	|           |
//	+   +   +   +
//	| S |       |
//	+---+---+---+
//
// Everything is single-threaded and synchronous. The step map is rebuilt
// from scratch for every decision.
//
//	go run ./cmd/mmsim -glob 'assets/*.txt'
package micromouse
