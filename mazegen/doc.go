// Package mazegen builds random ground-truth mazes for simulation.
//
// What:
//
//   - Wilson carves a perfect maze (a uniform spanning tree of the grid)
//     with loop-erased random walks.
//   - The start cell keeps its three closed sides; only its front is ever
//     opened, so every generated maze is a legal starting position.
//
// Why:
//
//   - Hand-drawn diagrams cover a handful of layouts. Random trees give the
//     navigator a steady supply of dead ends to back out of.
//
// Complexity:
//
//   - Expected O(rows·cols·log(rows·cols)) walk steps, O(rows·cols) memory.
//
// Errors:
//
//   - ErrNilRand if no random source is given.
//   - ErrDisconnected if the sealed start cell splits the grid (a 1×N
//     strip started mid-way, or a start facing the border).
//   - Option errors from maze.New are returned unchanged.
package mazegen
