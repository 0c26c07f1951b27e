package maze

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/lixenwraith/astar-grid/navigation"
)

// Cell types
const (
	Wall    = true
	Passage = false
)

type Config struct {
	Rows, Columns int

	// Braiding: 0.0 (Perfect Maze/Tree) to 1.0 (No dead ends/Graph).
	// Higher values add cycles. Constraints (No Plazas/Pillars) take precedence.
	Braiding float64

	// If true, the outer boundary is set to Passage.
	RemoveBorders bool

	Start *navigation.Point // Optional (nil = Automatic)
	Goal  *navigation.Point // Optional (nil = Automatic)
	Seed  int64             // Optional (0 = Random)
}

type Result struct {
	Rows, Columns int
	Layout        [][]bool // Layout[row][col], Wall or Passage
	Start, Goal   navigation.Point
	Solution      []navigation.Point // nil if the goal is isolated
}

// Generate carves a maze filling a rows x columns grid.
// Carving works on the largest odd sub-rectangle; any remaining last row or
// column stays Wall so the layout always matches the requested size.
func Generate(cfg Config) (Result, error) {
	if cfg.Rows <= 0 || cfg.Columns <= 0 {
		return Result{}, fmt.Errorf("%w: %dx%d", navigation.ErrInvalidSize, cfg.Rows, cfg.Columns)
	}

	layout := make([][]bool, cfg.Rows)
	for r := range layout {
		layout[r] = make([]bool, cfg.Columns)
		for c := range layout[r] {
			layout[r][c] = Wall
		}
	}

	// Carve area rounded DOWN to odd, at least 3 if the grid allows
	rows := carveSize(cfg.Rows)
	cols := carveSize(cfg.Columns)

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	startDef := navigation.Point{Row: 1, Col: 1}
	goalDef := navigation.Point{Row: rows - 2, Col: cols - 2}
	if cfg.RemoveBorders {
		// Jailbreak: start in the middle, goal on the right edge
		startDef = navigation.Point{Row: (rows / 2) | 1, Col: (cols / 2) | 1}
		goalDef = navigation.Point{Row: (rows / 2) | 1, Col: cols - 1}
	}
	if rows < 3 || cols < 3 {
		startDef = navigation.Point{}
		goalDef = navigation.Point{Row: cfg.Rows - 1, Col: cfg.Columns - 1}
	}

	start := resolvePoint(cfg.Rows, cfg.Columns, cfg.Start, startDef)
	goal := resolvePoint(cfg.Rows, cfg.Columns, cfg.Goal, goalDef)

	if rows >= 3 && cols >= 3 {
		area := make([][]bool, rows)
		for r := range area {
			area[r] = layout[r][:cols]
		}
		recursiveBacktracker(area, start, rng)

		// Must run before braiding so edge rooms count their outside exits
		if cfg.RemoveBorders {
			stripBorders(area)
		}
		if cfg.Braiding > 0 {
			applySmartBraiding(area, cfg.Braiding, rng)
		}
	} else {
		// Too thin to carve rooms: a single open corridor
		for r := range layout {
			for c := range layout[r] {
				layout[r][c] = Passage
			}
		}
	}

	forceOpen(layout, start)
	forceOpen(layout, goal)

	res := Result{
		Rows:    cfg.Rows,
		Columns: cfg.Columns,
		Layout:  layout,
		Start:   start,
		Goal:    goal,
	}

	g, err := res.Grid()
	if err != nil {
		return Result{}, err
	}
	solved, err := g.FindPath(false)
	if err != nil {
		return Result{}, err
	}
	if solved.Found {
		res.Solution = solved.Path
	}

	return res, nil
}

// Walls returns wall positions in row-major order
func (res Result) Walls() []navigation.Point {
	var walls []navigation.Point
	for r, row := range res.Layout {
		for c, isWall := range row {
			if isWall {
				walls = append(walls, navigation.Point{Row: r, Col: c})
			}
		}
	}
	return walls
}

// Apply marks the maze walls and endpoints on g, which must match its size
func (res Result) Apply(g *navigation.Grid) error {
	if g.Rows() != res.Rows || g.Columns() != res.Columns {
		return fmt.Errorf("%w: maze %dx%d on grid %dx%d",
			navigation.ErrInvalidSize, res.Rows, res.Columns, g.Rows(), g.Columns())
	}
	for _, w := range res.Walls() {
		if err := g.MarkBlocked(w.Row, w.Col); err != nil {
			return err
		}
	}
	if err := g.SetStart(res.Start.Row, res.Start.Col); err != nil {
		return err
	}
	return g.SetGoal(res.Goal.Row, res.Goal.Col)
}

// Grid builds a fresh navigation grid holding the maze
func (res Result) Grid() (*navigation.Grid, error) {
	g, err := navigation.NewGrid(res.Rows, res.Columns)
	if err != nil {
		return nil, err
	}
	if err := res.Apply(g); err != nil {
		return nil, err
	}
	return g, nil
}

// --- Core Algorithms ---

func recursiveBacktracker(grid [][]bool, start navigation.Point, rng *rand.Rand) {
	rows, cols := len(grid), len(grid[0])

	// Carving only visits odd rooms; snap an even start onto one
	origin := navigation.Point{Row: clampOdd(start.Row, rows), Col: clampOdd(start.Col, cols)}

	stack := []navigation.Point{origin}
	grid[origin.Row][origin.Col] = Passage

	dirs := []navigation.Point{{Row: -2}, {Row: 2}, {Col: -2}, {Col: 2}}

	for len(stack) > 0 {
		curr := stack[len(stack)-1]
		candidates := make([]navigation.Point, 0, 4)

		for _, d := range dirs {
			nr, nc := curr.Row+d.Row, curr.Col+d.Col
			// Leave 1 cell border for walls
			if nr > 0 && nr < rows-1 && nc > 0 && nc < cols-1 {
				if grid[nr][nc] == Wall {
					candidates = append(candidates, d)
				}
			}
		}

		if len(candidates) > 0 {
			d := candidates[rng.Intn(len(candidates))]
			grid[curr.Row+d.Row/2][curr.Col+d.Col/2] = Passage
			next := navigation.Point{Row: curr.Row + d.Row, Col: curr.Col + d.Col}
			grid[next.Row][next.Col] = Passage
			stack = append(stack, next)
		} else {
			stack = stack[:len(stack)-1]
		}
	}
}

func applySmartBraiding(grid [][]bool, probability float64, rng *rand.Rand) {
	rows, cols := len(grid), len(grid[0])
	ortho := []navigation.Point{{Row: -1}, {Row: 1}, {Col: -1}, {Col: 1}}

	// Iterate over odd rooms
	for r := 1; r < rows-1; r += 2 {
		for c := 1; c < cols-1; c += 2 {
			if grid[r][c] == Wall {
				continue
			}

			// Dead end: exactly one Passage neighbor
			exits := 0
			for _, d := range ortho {
				if grid[r+d.Row][c+d.Col] == Passage {
					exits++
				}
			}
			if exits != 1 || rng.Float64() >= probability {
				continue
			}

			candidates := make([]navigation.Point, 0, 4)
			for _, d := range ortho {
				nr, nc := r+2*d.Row, c+2*d.Col // Target room
				wr, wc := r+d.Row, c+d.Col     // Intervening wall
				if nr < 0 || nr >= rows || nc < 0 || nc >= cols {
					continue
				}
				if grid[nr][nc] == Passage && grid[wr][wc] == Wall && canSafelyRemoveWall(grid, wr, wc) {
					candidates = append(candidates, navigation.Point{Row: wr, Col: wc})
				}
			}

			if len(candidates) > 0 {
				w := candidates[rng.Intn(len(candidates))]
				grid[w.Row][w.Col] = Passage
			}
		}
	}
}

// canSafelyRemoveWall reports whether opening grid[r][c] avoids
// plazas (2x2 passages) and pillars (isolated walls)
func canSafelyRemoveWall(grid [][]bool, r, c int) bool {
	rows, cols := len(grid), len(grid[0])

	// Out of bounds reads as Wall
	isP := func(tr, tc int) bool {
		if tr < 0 || tr >= rows || tc < 0 || tc >= cols {
			return false
		}
		return grid[tr][tc] == Passage
	}

	// Plazas: the four 2x2 quadrants containing (r,c)
	for _, q := range [4][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}} {
		if isP(r+q[0], c) && isP(r, c+q[1]) && isP(r+q[0], c+q[1]) {
			return false
		}
	}

	// Pillars: an orthogonal wall neighbor must keep another wall connection
	ortho := []navigation.Point{{Row: -1}, {Row: 1}, {Col: -1}, {Col: 1}}
	for _, d := range ortho {
		nr, nc := r+d.Row, c+d.Col
		if nr < 0 || nr >= rows || nc < 0 || nc >= cols || grid[nr][nc] != Wall {
			continue
		}

		wallConnections := 0
		for _, d2 := range ortho {
			nnr, nnc := nr+d2.Row, nc+d2.Col
			// (r,c) is about to become Passage
			if nnr == r && nnc == c {
				continue
			}
			if nnr >= 0 && nnr < rows && nnc >= 0 && nnc < cols && grid[nnr][nnc] == Wall {
				wallConnections++
			}
		}
		if wallConnections == 0 {
			return false
		}
	}

	return true
}

func stripBorders(grid [][]bool) {
	rows, cols := len(grid), len(grid[0])
	for c := 0; c < cols; c++ {
		grid[0][c] = Passage
		grid[rows-1][c] = Passage
	}
	for r := 0; r < rows; r++ {
		grid[r][0] = Passage
		grid[r][cols-1] = Passage
	}
}

// --- Helpers ---

func carveSize(n int) int {
	if n%2 == 0 {
		return n - 1 // Round down to stay within bounds
	}
	return n
}

func clampOdd(v, n int) int {
	if v < 1 {
		return 1
	}
	if v > n-2 {
		v = n - 2
	}
	if v%2 == 0 {
		v--
	}
	return v
}

func resolvePoint(rows, cols int, p *navigation.Point, def navigation.Point) navigation.Point {
	if p != nil {
		def = *p
	}
	def.Row = min(max(def.Row, 0), rows-1)
	def.Col = min(max(def.Col, 0), cols-1)
	return def
}

// forceOpen opens p and, if it is sealed in, one orthogonal neighbor
func forceOpen(grid [][]bool, p navigation.Point) {
	rows, cols := len(grid), len(grid[0])
	grid[p.Row][p.Col] = Passage

	dirs := []navigation.Point{{Row: -1}, {Row: 1}, {Col: -1}, {Col: 1}}
	for _, d := range dirs {
		nr, nc := p.Row+d.Row, p.Col+d.Col
		if nr >= 0 && nr < rows && nc >= 0 && nc < cols && grid[nr][nc] == Passage {
			return
		}
	}
	for _, d := range dirs {
		nr, nc := p.Row+d.Row, p.Col+d.Col
		if nr >= 0 && nr < rows && nc >= 0 && nc < cols {
			grid[nr][nc] = Passage
			return
		}
	}
}
