// Package stepmap computes flood-fill distance fields ("step maps") over a
// maze.Maze and picks the next move from them.
//
// What:
//
//   - Calc resets every cell to Unreached, seeds the goal with 0 and runs
//     full-grid relaxation passes until a pass changes nothing.
//   - A cell's value becomes 1 + the smallest value among the neighbors it
//     can cross to under the active Mode.
//   - NextDirection picks the open side (wall Absent) leading to the
//     smallest neighbor value, scanning East, West, South, North and
//     keeping the first minimum.
//
// Modes:
//
//   - UnexploredAsAbsent:  Absent and Unexplored walls are crossable. Used
//     while exploring so the planner heads for unconfirmed openings.
//   - UnexploredAsPresent: only Absent walls are crossable. Used once the
//     maze is known, or against a ground-truth maze.
//
// Invariants after Calc:
//
//   - At(goal) == 0.
//   - Every reachable cell equals 1 + min(crossable neighbors).
//   - Unreachable cells keep Unreached, which exceeds any true distance
//     (rows*cols-1 for at most maze.MaxSize×maze.MaxSize cells).
//
// Complexity:
//
//   - Each pass is O(R·C·4); the number of passes is bounded by the
//     longest shortest path plus one, so Calc is O((R·C)²) worst case and
//     far less on real mazes.
//   - Memory: O(R·C) uint16 values.
//
// The map is recomputed from scratch on every call; there is no
// incremental update.
package stepmap
