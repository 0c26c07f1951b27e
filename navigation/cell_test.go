package navigation

import (
	"math/rand"
	"testing"
)

func TestNewCellDefaults(t *testing.T) {
	c := NewCell(Point{Row: 3, Col: 4})

	if c.Pos != (Point{Row: 3, Col: 4}) {
		t.Errorf("Expected position (3,4), got %v", c.Pos)
	}
	if c.G != 0 {
		t.Errorf("Expected G 0, got %d", c.G)
	}
	if c.H != unsetHeuristic || c.F != unsetHeuristic {
		t.Errorf("Expected unset heuristic, got H=%d F=%d", c.H, c.F)
	}
	if c.HasPrev {
		t.Error("Expected no predecessor")
	}
}

func TestCellIdentityIsPositional(t *testing.T) {
	a := NewCell(Point{Row: 4, Col: 4})
	b := NewCell(Point{Row: 4, Col: 4})
	b.G, b.H, b.F = 7, 2, 9
	b.Prev, b.HasPrev = Point{Row: 4, Col: 3}, true

	if !a.SameAs(&b) {
		t.Error("Expected cells at the same position to be equal")
	}

	tests := []Point{{Row: 3, Col: 4}, {Row: 4, Col: 5}, {Row: 0, Col: 7}}
	for _, p := range tests {
		o := NewCell(p)
		if a.SameAs(&o) {
			t.Errorf("Expected (4,4) and %v to differ", p)
		}
	}
}

func TestComputeHeuristic(t *testing.T) {
	tests := []struct {
		name     string
		from, to Point
		g        int
		diagonal bool
		wantH    int
	}{
		{"manhattan", Point{0, 0}, Point{3, 4}, 0, false, 7},
		{"chebyshev", Point{0, 0}, Point{3, 4}, 0, true, 4},
		{"manhattan reversed", Point{5, 1}, Point{2, 3}, 2, false, 5},
		{"chebyshev reversed", Point{5, 1}, Point{2, 3}, 2, true, 3},
		{"same cell", Point{2, 2}, Point{2, 2}, 4, true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCell(tt.from)
			c.G = tt.g
			c.ComputeHeuristic(tt.to, tt.diagonal)
			if c.H != tt.wantH {
				t.Errorf("Expected H %d, got %d", tt.wantH, c.H)
			}
			if c.F != tt.g+tt.wantH {
				t.Errorf("Expected F %d, got %d", tt.g+tt.wantH, c.F)
			}
		})
	}
}

func TestCellOrdering(t *testing.T) {
	mk := func(g, h int) *Cell {
		c := NewCell(Point{})
		c.G, c.H, c.F = g, h, g+h
		return &c
	}

	// Lower F first
	if !mk(1, 2).Before(mk(1, 3)) {
		t.Error("Expected lower F to sort first")
	}
	if mk(3, 3).Before(mk(1, 2)) {
		t.Error("Expected higher F to sort last")
	}

	// Equal F: deeper cell first
	deep, shallow := mk(4, 1), mk(2, 3)
	if !deep.Before(shallow) {
		t.Error("Expected larger G to win an F tie")
	}
	if shallow.Before(deep) {
		t.Error("Expected smaller G to lose an F tie")
	}

	// Full tie is not strictly ordered
	a, b := mk(2, 2), mk(2, 2)
	if a.Before(b) || b.Before(a) {
		t.Error("Expected equal cells to be unordered")
	}
}

func TestHeapOrdering(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	h := newMinHeap(200, 0)
	for i := 0; i < 200; i++ {
		h.push(heapEntry{idx: i, f: rng.Intn(10), g: rng.Intn(5), rank: i})
	}

	prev := h.pop()
	for h.Len() > 0 {
		e := h.pop()
		if e.less(prev) {
			t.Fatalf("Heap order violated: %+v popped after %+v", e, prev)
		}
		prev = e
	}
}

func TestHeapTieBreak(t *testing.T) {
	h := newMinHeap(4, 4)
	h.push(heapEntry{idx: 0, f: 5, g: 1, rank: 0})
	h.push(heapEntry{idx: 1, f: 5, g: 3, rank: 1})
	h.push(heapEntry{idx: 2, f: 5, g: 3, rank: 2})
	h.push(heapEntry{idx: 3, f: 4, g: 0, rank: 3})

	want := []int{3, 1, 2, 0}
	for i, w := range want {
		if got := h.pop().idx; got != w {
			t.Errorf("Pop %d: expected idx %d, got %d", i, w, got)
		}
	}
}

func TestHeapUpdate(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	h := newMinHeap(100, 0)
	keys := make([]heapEntry, 100)
	for i := range keys {
		keys[i] = heapEntry{idx: i, f: rng.Intn(20), g: rng.Intn(5), rank: i}
		h.push(keys[i])
	}

	// Move keys both ways, then check pops still come out ordered
	for i := 0; i < 100; i += 3 {
		keys[i].f = rng.Intn(20)
		keys[i].rank = -i
		h.update(keys[i])
	}
	h.update(heapEntry{idx: 99, f: -1}) // Pops first
	first := h.pop()
	if first.idx != 99 {
		t.Fatalf("Expected re-keyed idx 99 first, got %+v", first)
	}
	if h.slot[99] != -1 {
		t.Error("Expected popped entry to leave the slot table")
	}
	h.update(heapEntry{idx: 99, f: -5}) // Absent, ignored

	prev := h.pop()
	if prev.idx == 99 {
		t.Fatal("Expected absent update ignored")
	}
	seen := 2
	for h.Len() > 0 {
		e := h.pop()
		if e.less(prev) {
			t.Fatalf("Heap order violated after update: %+v popped after %+v", e, prev)
		}
		if e.f != keys[e.idx].f || e.rank != keys[e.idx].rank {
			t.Fatalf("Stale key for idx %d: %+v", e.idx, e)
		}
		prev = e
		seen++
	}
	if seen != 100 {
		t.Errorf("Expected 100 pops, got %d", seen)
	}
}
