package navigation

// Point is a grid position addressed by row and column
type Point struct {
	Row, Col int
}

// unsetHeuristic is the estimate of a cell not yet evaluated against a goal
const unsetHeuristic = 1<<30 - 1

// Cell is the search bookkeeping record of one grid position.
// Two cells refer to the same location iff their Pos values are equal; the
// cost fields and the predecessor never take part in identity.
type Cell struct {
	Pos Point

	G int // Steps from start
	H int // Estimate to goal
	F int // G + H, ordering key

	Prev    Point // Predecessor on the best path found so far
	HasPrev bool
}

// NewCell returns a cell at p with empty bookkeeping
func NewCell(p Point) Cell {
	return Cell{
		Pos: p,
		H:   unsetHeuristic,
		F:   unsetHeuristic,
	}
}

// ComputeHeuristic sets H to the distance to goal and refreshes F.
// Manhattan distance is used for 4-connected movement, Chebyshev for 8-connected.
func (c *Cell) ComputeHeuristic(goal Point, allowDiagonal bool) {
	if allowDiagonal {
		c.H = Chebyshev(c.Pos, goal)
	} else {
		c.H = Manhattan(c.Pos, goal)
	}
	c.F = c.G + c.H
}

// Before reports whether c is explored ahead of o: lower F first, and among
// equal F the cell farther from the start
func (c *Cell) Before(o *Cell) bool {
	if c.F != o.F {
		return c.F < o.F
	}
	return c.G > o.G
}

// SameAs reports positional equality
func (c *Cell) SameAs(o *Cell) bool {
	return c.Pos == o.Pos
}

// Manhattan returns |Δrow| + |Δcol|
func Manhattan(a, b Point) int {
	return abs(a.Row-b.Row) + abs(a.Col-b.Col)
}

// Chebyshev returns max(|Δrow|, |Δcol|)
func Chebyshev(a, b Point) int {
	dr, dc := abs(a.Row-b.Row), abs(a.Col-b.Col)
	if dr > dc {
		return dr
	}
	return dc
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
