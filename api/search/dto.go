// Package searchapi exposes path searches over HTTP.
package searchapi

import (
	"cmp"
	"slices"

	"github.com/lixenwraith/astar-grid/navigation"
)

// PointDTO is a cell position on the wire.
type PointDTO struct {
	Row    int `json:"row"`
	Column int `json:"column"`
}

// SearchRequest describes one grid and the search to run on it.
// Start and goal are optional so their absence reaches the engine.
type SearchRequest struct {
	Rows          int        `json:"rows"`
	Columns       int        `json:"columns"`
	Blocked       []PointDTO `json:"blocked"`
	Start         *PointDTO  `json:"start"`
	Goal          *PointDTO  `json:"goal"`
	AllowDiagonal bool       `json:"allowDiagonal"`
}

// SearchResponse carries the outcome of a search.
type SearchResponse struct {
	ID     string     `json:"id"`
	Found  bool       `json:"found"`
	Path   []PointDTO `json:"path"`
	Trace  []PointDTO `json:"trace"`
	Cached bool       `json:"cached"`
}

// normalized returns a copy with blocked cells sorted and deduplicated,
// so requests naming the same grid share a cache key.
func (r SearchRequest) normalized() SearchRequest {
	out := r
	out.Blocked = slices.Clone(r.Blocked)
	slices.SortFunc(out.Blocked, func(a, b PointDTO) int {
		return cmp.Or(cmp.Compare(a.Row, b.Row), cmp.Compare(a.Column, b.Column))
	})
	out.Blocked = slices.Compact(out.Blocked)
	return out
}

// grid builds the navigation grid the request describes
func (r SearchRequest) grid() (*navigation.Grid, error) {
	g, err := navigation.NewGrid(r.Rows, r.Columns)
	if err != nil {
		return nil, err
	}
	for _, b := range r.Blocked {
		if err := g.MarkBlocked(b.Row, b.Column); err != nil {
			return nil, err
		}
	}
	if r.Start != nil {
		if err := g.SetStart(r.Start.Row, r.Start.Column); err != nil {
			return nil, err
		}
	}
	if r.Goal != nil {
		if err := g.SetGoal(r.Goal.Row, r.Goal.Column); err != nil {
			return nil, err
		}
	}
	return g, nil
}

func toDTOs(points []navigation.Point) []PointDTO {
	dtos := make([]PointDTO, len(points))
	for i, p := range points {
		dtos[i] = PointDTO{Row: p.Row, Column: p.Col}
	}
	return dtos
}
