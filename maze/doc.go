// Package maze models a micromouse maze as a fixed-size grid of cells,
// each carrying four wall slots, together with the heading algebra used to
// translate robot-relative moves into compass directions.
//
// What:
//
//   - Maze stores rows×cols cells in a flat row-major slice.
//   - Wall is tri-state: Absent, Present, Unexplored.
//   - SetWall keeps wall state mirrored: writing the east wall of (r,c)
//     also writes the west wall of (r,c+1).
//   - Border walls are Present from construction and cannot be removed.
//   - The start cell is walled on every side except the one it faces.
//   - ToAbsolute / ToRelative convert between Direction and DirectionOfTravel
//     for a given heading; they are inverse bijections per heading.
//   - Lines renders the maze as the ASCII diagram read by package mazetext.
//
// Why:
//
//   - Ground-truth mazes and the robot's partial belief share one model.
//   - Symmetric wall writes remove a whole class of "one side updated" bugs
//     from the planner.
//
// Coordinates:
//
//	Position{Row, Col}; row 0 is the northern edge, col 0 the western edge.
//	ToVector(East) = (+1, 0), ToVector(South) = (0, +1) as (dx, dy).
//
// Defaults:
//
//   - 16×16 grid.
//   - Start at the south-west corner (row 15, col 0) facing North.
//
// Errors:
//
//   - ErrBadSize:          rows or cols outside [1, MaxSize].
//   - ErrStartOutOfRange:  start position lies outside the grid.
//   - ErrBadDirection:     heading is not one of North/East/South/West.
//   - ErrOptionViolation:  wraps any of the above when raised by an Option.
//
// Out-of-range coordinates passed to Cell, SetWall and friends are a
// programming error and panic.
package maze
