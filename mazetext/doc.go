// Package mazetext loads mazes from the ASCII diagrams produced by
// maze.Maze.Lines and used for micromouse competition archives:
//
//	+---+---+---+        +-+-+-+
//	|         G |        |    G|
//	+   +---+---+   or   + +-+-+
//	| S |       |        |S|   |
//	+---+---+---+        +-+-+-+
//
// Horizontal lines alternate pillars '+' with segments of '-' (wall) or
// ' ' (open); vertical lines alternate '|' or ' ' with cell interiors that
// are blank or carry one marker, 'G' for the goal and 'S' for the start.
// The segment width is taken from the first line and the maze dimensions
// from the line count, up to maze.MaxSize in each direction. Trailing
// spaces may be trimmed.
//
// Each '-' or '|' results in exactly one maze.Maze.SetWall call with
// maze.Present; open segments cause no call. The start cell gets the
// heading of its first open side in North, East, South, West order.
//
// Errors:
//
//   - ErrEmpty:   the input holds no diagram.
//   - ErrSyntax:  wrapped by *SyntaxError for an unexpected character.
//   - ErrNoGoal:  no 'G' marker was found.
package mazetext
