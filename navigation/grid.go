package navigation

import (
	"fmt"
	"math"
)

// Neighbor offsets in row-major order: (dRow, dCol)
var neighborOffsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Grid is a rows x columns lattice with blocked cells and optional endpoints.
// It holds topology only; per-run bookkeeping lives in a Stepper, so one grid
// can serve any number of searches. Edits must not overlap a running search.
type Grid struct {
	rows, cols int
	blocked    []bool // Flat, row*cols + col

	start, goal       Point
	hasStart, hasGoal bool
}

// NewGrid creates a grid with no walls and no endpoints
func NewGrid(rows, columns int) (*Grid, error) {
	if rows <= 0 || columns <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, rows, columns)
	}
	if columns > math.MaxInt/rows {
		return nil, fmt.Errorf("%w: %dx%d cells overflow", ErrInvalidSize, rows, columns)
	}
	return &Grid{
		rows:    rows,
		cols:    columns,
		blocked: make([]bool, rows*columns),
	}, nil
}

// Rows returns the row count
func (g *Grid) Rows() int { return g.rows }

// Columns returns the column count
func (g *Grid) Columns() int { return g.cols }

// InBounds reports whether p lies in [0,rows) x [0,columns)
func (g *Grid) InBounds(p Point) bool {
	return p.Row >= 0 && p.Col >= 0 && p.Row < g.rows && p.Col < g.cols
}

func (g *Grid) index(p Point) int {
	return p.Row*g.cols + p.Col
}

func (g *Grid) point(idx int) Point {
	return Point{Row: idx / g.cols, Col: idx % g.cols}
}

func (g *Grid) checkBounds(row, col int) (Point, error) {
	p := Point{Row: row, Col: col}
	if !g.InBounds(p) {
		return p, fmt.Errorf("%w: (%d,%d) outside %dx%d", ErrOutOfBounds, row, col, g.rows, g.cols)
	}
	return p, nil
}

// MarkBlocked adds the cell to the blocked set
func (g *Grid) MarkBlocked(row, col int) error {
	p, err := g.checkBounds(row, col)
	if err != nil {
		return err
	}
	g.blocked[g.index(p)] = true
	return nil
}

// Unblock removes the cell from the blocked set
func (g *Grid) Unblock(row, col int) error {
	p, err := g.checkBounds(row, col)
	if err != nil {
		return err
	}
	g.blocked[g.index(p)] = false
	return nil
}

// IsBlocked reports whether p is blocked; out-of-bounds positions are not
func (g *Grid) IsBlocked(p Point) bool {
	if !g.InBounds(p) {
		return false
	}
	return g.blocked[g.index(p)]
}

// Blocked returns blocked positions in row-major order
func (g *Grid) Blocked() []Point {
	var out []Point
	for idx, b := range g.blocked {
		if b {
			out = append(out, g.point(idx))
		}
	}
	return out
}

// SetStart designates the start cell. Blocked cells are accepted.
func (g *Grid) SetStart(row, col int) error {
	p, err := g.checkBounds(row, col)
	if err != nil {
		return err
	}
	g.start, g.hasStart = p, true
	return nil
}

// SetGoal designates the goal cell. Blocked cells are accepted.
func (g *Grid) SetGoal(row, col int) error {
	p, err := g.checkBounds(row, col)
	if err != nil {
		return err
	}
	g.goal, g.hasGoal = p, true
	return nil
}

// ClearStart unsets the start cell
func (g *Grid) ClearStart() { g.hasStart = false }

// ClearGoal unsets the goal cell
func (g *Grid) ClearGoal() { g.hasGoal = false }

// Start returns the start cell and whether it is set
func (g *Grid) Start() (Point, bool) { return g.start, g.hasStart }

// Goal returns the goal cell and whether it is set
func (g *Grid) Goal() (Point, bool) { return g.goal, g.hasGoal }

// Clear removes all walls and both endpoints
func (g *Grid) Clear() {
	clear(g.blocked)
	g.hasStart = false
	g.hasGoal = false
}

// Clone returns an independent copy
func (g *Grid) Clone() *Grid {
	c := *g
	c.blocked = make([]bool, len(g.blocked))
	copy(c.blocked, g.blocked)
	return &c
}

// Neighbors returns in-bounds cells adjacent to p: all 8 surrounding cells
// with allowDiagonal, the 4 orthogonal ones otherwise. Order is row-major.
func (g *Grid) Neighbors(p Point, allowDiagonal bool) []Point {
	return g.appendNeighbors(make([]Point, 0, 8), p, allowDiagonal)
}

func (g *Grid) appendNeighbors(dst []Point, p Point, allowDiagonal bool) []Point {
	for _, d := range neighborOffsets {
		if !allowDiagonal && d[0] != 0 && d[1] != 0 {
			continue
		}
		n := Point{Row: p.Row + d[0], Col: p.Col + d[1]}
		if g.InBounds(n) {
			dst = append(dst, n)
		}
	}
	return dst
}
