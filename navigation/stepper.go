package navigation

import (
	"fmt"
	"slices"
)

// CellState is the membership of a position during a search
type CellState uint8

const (
	StateUnseen CellState = iota
	StateFrontier
	StateSettled
)

// Step describes the outcome of one Stepper.Step call
type Step struct {
	Current Point // Cell settled by this call, valid if Settled
	Settled bool
	Index   int // Number of cells settled so far
	Done    bool
	Found   bool
	Path    []Point // Start to goal inclusive, set once the goal is settled
}

// Stepper runs the search one settlement at a time for animated display.
// It owns the bookkeeping table and never writes to the grid.
type Stepper struct {
	grid          *Grid
	start, goal   Point
	allowDiagonal bool

	cells    []Cell
	state    []CellState
	rank     []int
	frontier minHeap

	// Rank counters: appended cells and cells whose cost fell take nextRank,
	// cells whose cost rose take frontRank
	nextRank, frontRank int

	trace []Point
	path  []Point
	done  bool
	found bool

	// Reusable per-expansion buffers
	neighbors  []Point
	candidates []int
	raised     []heapEntry
	lowered    []heapEntry
}

// NewStepper prepares a search over g from its start to its goal
func NewStepper(g *Grid, allowDiagonal bool) (*Stepper, error) {
	start, okStart := g.Start()
	goal, okGoal := g.Goal()
	if !okStart || !okGoal {
		return nil, fmt.Errorf("%w: start set=%t, goal set=%t", ErrMissingEndpoint, okStart, okGoal)
	}

	size := g.rows * g.cols
	s := &Stepper{
		grid:          g,
		start:         start,
		goal:          goal,
		allowDiagonal: allowDiagonal,
		cells:         make([]Cell, size),
		state:         make([]CellState, size),
		rank:          make([]int, size),
		frontier:      newMinHeap(size, size/4+1),
		frontRank:     -1,
		neighbors:     make([]Point, 0, 8),
		candidates:    make([]int, 0, 8),
		raised:        make([]heapEntry, 0, 8),
		lowered:       make([]heapEntry, 0, 8),
	}
	for idx := range s.cells {
		s.cells[idx] = NewCell(g.point(idx))
	}

	startIdx := g.index(start)
	sc := &s.cells[startIdx]
	sc.G = 0
	sc.ComputeHeuristic(goal, allowDiagonal)
	s.pushFrontier(startIdx)

	return s, nil
}

func (s *Stepper) entry(idx int) heapEntry {
	c := &s.cells[idx]
	return heapEntry{idx: idx, f: c.F, g: c.G, rank: s.rank[idx]}
}

func (s *Stepper) pushFrontier(idx int) {
	s.rank[idx] = s.nextRank
	s.nextRank++
	s.frontier.push(s.entry(idx))
	s.state[idx] = StateFrontier
}

// Step settles the best frontier cell and expands it
func (s *Stepper) Step() Step {
	if s.done {
		return s.finished()
	}
	if s.frontier.Len() == 0 {
		s.done = true
		return s.finished()
	}

	e := s.frontier.pop()
	current := &s.cells[e.idx]
	s.state[e.idx] = StateSettled
	s.trace = append(s.trace, current.Pos)

	if current.Pos == s.goal {
		s.done = true
		s.found = true
		s.path = s.reconstruct()
		step := s.finished()
		step.Current = current.Pos
		step.Settled = true
		return step
	}

	s.expand(e.idx)

	return Step{
		Current: current.Pos,
		Settled: true,
		Index:   len(s.trace),
	}
}

// expand evaluates the unblocked, unsettled neighbors of the cell at idx.
// Every such neighbor takes cost current.G+1. Unseen ones also take current
// as predecessor and join the frontier; cells already on the frontier keep the
// predecessor of their first discovery and are only re-keyed.
// Blocking is checked for neighbors only, never for the cell being expanded,
// so a blocked start is still explored.
func (s *Stepper) expand(idx int) {
	current := &s.cells[idx]
	nextG := current.G + 1

	s.neighbors = s.grid.appendNeighbors(s.neighbors[:0], current.Pos, s.allowDiagonal)
	s.candidates = s.candidates[:0]
	s.raised = s.raised[:0]
	s.lowered = s.lowered[:0]
	for _, n := range s.neighbors {
		nIdx := s.grid.index(n)
		if s.grid.blocked[nIdx] {
			continue
		}
		c := &s.cells[nIdx]

		switch s.state[nIdx] {
		case StateSettled:
			continue

		case StateFrontier:
			if c.G == nextG {
				continue
			}
			old := s.entry(nIdx)
			if nextG > c.G {
				s.raised = append(s.raised, old)
			} else {
				s.lowered = append(s.lowered, old)
			}
			c.G = nextG
			c.ComputeHeuristic(s.goal, s.allowDiagonal)

		default:
			c.G = nextG
			c.ComputeHeuristic(s.goal, s.allowDiagonal)
			c.Prev, c.HasPrev = current.Pos, true
			s.candidates = append(s.candidates, nIdx)
		}
	}

	// A re-keyed cell keeps its place relative to the cells that already hold
	// its new key: ahead of them when its cost rose, behind them when it fell.
	// Re-keyed cells sharing a side keep their previous relative order.
	slices.SortFunc(s.raised, func(a, b heapEntry) int { return b.compare(a) })
	for _, e := range s.raised {
		s.rank[e.idx] = s.frontRank
		s.frontRank--
		s.frontier.update(s.entry(e.idx))
	}
	slices.SortFunc(s.lowered, heapEntry.compare)
	for _, e := range s.lowered {
		s.rank[e.idx] = s.nextRank
		s.nextRank++
		s.frontier.update(s.entry(e.idx))
	}

	// Discovery order within one expansion follows priority
	slices.SortStableFunc(s.candidates, func(a, b int) int {
		ca, cb := &s.cells[a], &s.cells[b]
		switch {
		case ca.Before(cb):
			return -1
		case cb.Before(ca):
			return 1
		}
		return 0
	})
	for _, nIdx := range s.candidates {
		s.pushFrontier(nIdx)
	}
}

// reconstruct follows predecessors from goal back to start and reverses
func (s *Stepper) reconstruct() []Point {
	path := []Point{s.goal}
	cur := s.goal
	for cur != s.start {
		c := &s.cells[s.grid.index(cur)]
		if !c.HasPrev {
			break
		}
		cur = c.Prev
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

func (s *Stepper) finished() Step {
	return Step{
		Done:  true,
		Found: s.found,
		Index: len(s.trace),
		Path:  slices.Clone(s.path),
	}
}

// Done reports whether the search has terminated
func (s *Stepper) Done() bool { return s.done }

// Found reports whether the goal was reached
func (s *Stepper) Found() bool { return s.found }

// Trace returns settled cells in settlement order
func (s *Stepper) Trace() []Point { return slices.Clone(s.trace) }

// Path returns the found path, nil before or without success
func (s *Stepper) Path() []Point { return slices.Clone(s.path) }

// State returns the membership of p; out-of-bounds positions are unseen
func (s *Stepper) State(p Point) CellState {
	if !s.grid.InBounds(p) {
		return StateUnseen
	}
	return s.state[s.grid.index(p)]
}

// Cell returns the bookkeeping record of p
func (s *Stepper) Cell(p Point) (Cell, bool) {
	if !s.grid.InBounds(p) {
		return Cell{}, false
	}
	return s.cells[s.grid.index(p)], true
}

// Frontier returns frontier positions in row-major order
func (s *Stepper) Frontier() []Point {
	out := make([]Point, 0, s.frontier.Len())
	for idx, st := range s.state {
		if st == StateFrontier {
			out = append(out, s.grid.point(idx))
		}
	}
	return out
}

// Result returns the outcome so far
func (s *Stepper) Result() Result {
	return Result{
		Path:  s.Path(),
		Trace: s.Trace(),
		Found: s.found,
	}
}
