package maze

import (
	"errors"
	"slices"
	"testing"

	"github.com/lixenwraith/astar-grid/navigation"
)

func TestGenerateDimensions(t *testing.T) {
	sizes := [][2]int{{11, 11}, {10, 10}, {15, 9}, {20, 40}}
	for _, s := range sizes {
		res, err := Generate(Config{Rows: s[0], Columns: s[1], Seed: 7})
		if err != nil {
			t.Fatalf("Generate(%dx%d): %v", s[0], s[1], err)
		}
		if res.Rows != s[0] || res.Columns != s[1] {
			t.Errorf("Expected %dx%d, got %dx%d", s[0], s[1], res.Rows, res.Columns)
		}
		if len(res.Layout) != s[0] {
			t.Fatalf("Expected %d layout rows, got %d", s[0], len(res.Layout))
		}
		for r, row := range res.Layout {
			if len(row) != s[1] {
				t.Fatalf("Row %d: expected %d columns, got %d", r, s[1], len(row))
			}
		}
	}
}

func TestGenerateEvenSizeKeepsOuterWall(t *testing.T) {
	res, err := Generate(Config{Rows: 10, Columns: 10, Seed: 3})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	for c := 0; c < 10; c++ {
		if res.Layout[9][c] != Wall {
			t.Errorf("Expected wall at (9,%d)", c)
		}
	}
	for r := 0; r < 10; r++ {
		if res.Layout[r][9] != Wall {
			t.Errorf("Expected wall at (%d,9)", r)
		}
	}
}

func TestGenerateSolvable(t *testing.T) {
	for _, braid := range []float64{0, 0.5, 1} {
		res, err := Generate(Config{Rows: 21, Columns: 31, Braiding: braid, Seed: 11})
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if res.Start != (navigation.Point{Row: 1, Col: 1}) {
			t.Errorf("Expected default start (1,1), got %v", res.Start)
		}
		if res.Goal != (navigation.Point{Row: 19, Col: 29}) {
			t.Errorf("Expected default goal (19,29), got %v", res.Goal)
		}
		if res.Solution == nil {
			t.Fatalf("braid=%.1f: expected a solution", braid)
		}
		if res.Solution[0] != res.Start || res.Solution[len(res.Solution)-1] != res.Goal {
			t.Errorf("Solution endpoints %v..%v", res.Solution[0], res.Solution[len(res.Solution)-1])
		}
		for _, p := range res.Solution {
			if res.Layout[p.Row][p.Col] == Wall {
				t.Errorf("Solution crosses wall at %v", p)
			}
		}
	}
}

func TestGenerateSeedDeterminism(t *testing.T) {
	cfg := Config{Rows: 15, Columns: 25, Braiding: 0.3, Seed: 99}
	a, _ := Generate(cfg)
	b, _ := Generate(cfg)

	if !slices.Equal(a.Walls(), b.Walls()) {
		t.Error("Expected identical walls for identical seeds")
	}
	if !slices.Equal(a.Solution, b.Solution) {
		t.Error("Expected identical solutions for identical seeds")
	}
}

func TestGenerateRemoveBorders(t *testing.T) {
	res, err := Generate(Config{Rows: 11, Columns: 11, RemoveBorders: true, Seed: 5})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	for i := 0; i < 11; i++ {
		if res.Layout[0][i] != Passage || res.Layout[10][i] != Passage ||
			res.Layout[i][0] != Passage || res.Layout[i][10] != Passage {
			t.Fatalf("Expected open border at index %d", i)
		}
	}
	if res.Goal.Col != 10 {
		t.Errorf("Expected goal on right edge, got %v", res.Goal)
	}
	if res.Solution == nil {
		t.Error("Expected a solution with open borders")
	}
}

func TestGenerateThinGrid(t *testing.T) {
	res, err := Generate(Config{Rows: 1, Columns: 5})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(res.Walls()) != 0 {
		t.Errorf("Expected open corridor, got walls %v", res.Walls())
	}
	if len(res.Solution) != 5 {
		t.Errorf("Expected 5-cell solution, got %v", res.Solution)
	}
}

func TestGenerateInvalidSize(t *testing.T) {
	if _, err := Generate(Config{Rows: 0, Columns: 4}); !errors.Is(err, navigation.ErrInvalidSize) {
		t.Errorf("Expected ErrInvalidSize, got %v", err)
	}
}

func TestApply(t *testing.T) {
	res, _ := Generate(Config{Rows: 9, Columns: 9, Seed: 1})

	g, _ := navigation.NewGrid(9, 9)
	if err := res.Apply(g); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if !slices.Equal(g.Blocked(), res.Walls()) {
		t.Error("Expected grid walls to match maze walls")
	}
	if s, ok := g.Start(); !ok || s != res.Start {
		t.Errorf("Expected start %v, got %v", res.Start, s)
	}

	found, err := g.FindPath(false)
	if err != nil {
		t.Fatalf("FindPath: %v", err)
	}
	if !slices.Equal(found.Path, res.Solution) {
		t.Errorf("Expected applied grid to reproduce the solution")
	}

	small, _ := navigation.NewGrid(5, 5)
	if err := res.Apply(small); !errors.Is(err, navigation.ErrInvalidSize) {
		t.Errorf("Expected ErrInvalidSize on mismatched grid, got %v", err)
	}
}
