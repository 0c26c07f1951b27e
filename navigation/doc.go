// Package navigation implements A* search over a rectangular grid of cells.
//
// A Grid holds topology: its size, the blocked cells and the start and goal.
// Searches keep their bookkeeping in a per-run table indexed by position, so
// the grid is never mutated by FindPath and may be searched repeatedly.
// Stepper exposes the same search one settlement at a time for display.
package navigation
