package navigation

// --- Min-heap for the A* frontier ---

// heapEntry snapshots the ordering key of a frontier cell
type heapEntry struct {
	idx  int // Flat grid index (row*cols + col)
	f    int
	g    int
	rank int // Place among cells with an equal key, lower first
}

// less mirrors Cell.Before and falls back to rank
func (a heapEntry) less(b heapEntry) bool {
	if a.f != b.f {
		return a.f < b.f
	}
	if a.g != b.g {
		return a.g > b.g
	}
	return a.rank < b.rank
}

func (a heapEntry) compare(b heapEntry) int {
	switch {
	case a.less(b):
		return -1
	case b.less(a):
		return 1
	}
	return 0
}

// minHeap tracks the slot of every member so keys can change in place
type minHeap struct {
	entries []heapEntry
	slot    []int // slot[idx] indexes entries, -1 when idx is absent
}

func newMinHeap(cells, capacity int) minHeap {
	slot := make([]int, cells)
	for i := range slot {
		slot[i] = -1
	}
	return minHeap{
		entries: make([]heapEntry, 0, capacity),
		slot:    slot,
	}
}

func (h *minHeap) Len() int { return len(h.entries) }

func (h *minHeap) push(e heapEntry) {
	h.entries = append(h.entries, e)
	i := len(h.entries) - 1
	h.slot[e.idx] = i
	h.up(i)
}

func (h *minHeap) pop() heapEntry {
	e := h.entries[0]
	last := len(h.entries) - 1
	h.swap(0, last)
	h.entries = h.entries[:last]
	h.slot[e.idx] = -1
	if last > 0 {
		h.down(0)
	}
	return e
}

// update replaces the key of a member and restores heap order
func (h *minHeap) update(e heapEntry) {
	i := h.slot[e.idx]
	if i < 0 {
		return
	}
	h.entries[i] = e
	if !h.down(i) {
		h.up(i)
	}
}

func (h *minHeap) swap(i, j int) {
	h.entries[i], h.entries[j] = h.entries[j], h.entries[i]
	h.slot[h.entries[i].idx] = i
	h.slot[h.entries[j].idx] = j
}

// Sift up
func (h *minHeap) up(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !h.entries[i].less(h.entries[parent]) {
			break
		}
		h.swap(i, parent)
		i = parent
	}
}

// Sift down, reports whether the entry moved
func (h *minHeap) down(i0 int) bool {
	i := i0
	n := len(h.entries)
	for {
		left := 2*i + 1
		if left >= n {
			break
		}
		smallest := left
		if right := left + 1; right < n && h.entries[right].less(h.entries[left]) {
			smallest = right
		}
		if !h.entries[smallest].less(h.entries[i]) {
			break
		}
		h.swap(i, smallest)
		i = smallest
	}
	return i > i0
}
