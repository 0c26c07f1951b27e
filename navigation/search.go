package navigation

// Result is the outcome of a search. A missing path is a normal outcome,
// reported with Found false and a nil Path.
type Result struct {
	Path  []Point // Start to goal inclusive
	Trace []Point // Settled cells in settlement order
	Found bool
}

// FindPath runs A* from the grid's start to its goal.
//
// Frontier cells are settled by lowest F, then highest G; remaining ties keep
// the order the frontier already had. Each expansion resets the cost of every
// open neighbor to the expanded cell's cost plus one, but a cell keeps the
// predecessor of its first discovery (greedy-first-touch), so on obstructed
// grids the returned path is not always the shortest one. Step costs are 1
// for every move, diagonal ones included.
func (g *Grid) FindPath(allowDiagonal bool) (Result, error) {
	s, err := NewStepper(g, allowDiagonal)
	if err != nil {
		return Result{}, err
	}
	for !s.Step().Done {
	}
	return s.Result(), nil
}
