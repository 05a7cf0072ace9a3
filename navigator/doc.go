// Package navigator explores an initially unknown maze with the
// sense-plan-act loop of a micromouse.
//
// The Navigator owns two mazes: the true maze it is solving and a local
// belief maze that starts with only the border and start walls. Each Step:
//
//  1. recomputes a stepmap.StepMap for the goal against the local maze
//     in stepmap.UnexploredAsAbsent mode;
//  2. stops with ErrUnreachable if the current cell is Unreached;
//  3. otherwise moves through the open side leading to the smallest
//     neighbor value (tie order East, West, South, North);
//  4. copies the true walls of the new cell into the local maze, which
//     also fixes the mirrored sides of its neighbors.
//
// Run repeats Step until the goal is reached or no path remains. Neither
// the flood fill nor the move loop has an intrinsic cap; use WithMaxSteps
// or a cancellable context when embedding the loop in a bounded system.
//
// Errors:
//
//   - ErrNilMaze:         the true maze is nil.
//   - ErrGoalOutOfRange:  the goal lies outside the maze.
//   - ErrOptionViolation: an invalid Option was supplied.
//   - ErrUnreachable:     the goal cannot be reached with current knowledge.
//   - ErrArrived:         Step was called while already on the goal.
//   - ErrStepLimit:       Run hit the WithMaxSteps ceiling.
//
// A Navigator is not safe for concurrent use.
package navigator
