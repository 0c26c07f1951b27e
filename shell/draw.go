package shell

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/astar-grid/navigation"
	"github.com/lixenwraith/astar-grid/palette"
)

const title = "A* ALGORITHM DEMONSTRATION"

func pathStatus(steps, explored int) string {
	return fmt.Sprintf("Path found: %d steps, %d cells explored", steps, explored)
}

func (s *Shell) draw() {
	s.screen.SetStyle(palette.Style(s.pal.BG, s.pal.FG))
	s.screen.Clear()

	if s.mode == modeMenu {
		s.drawMenu()
	} else {
		s.drawGrid()
	}

	s.screen.Show()
}

func (s *Shell) text(x, y int, str string, style tcell.Style) {
	for _, r := range str {
		s.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

func (s *Shell) drawMenu() {
	base := palette.Style(s.pal.BG, s.pal.FG)
	selected := base.Reverse(true)

	s.text(2, 1, title, base.Bold(true))
	s.text(2, 3, "Please enter the size of the grid :", base)

	labels := []string{"Height", "Width"}
	values := []int{s.menuRows, s.menuCols}
	for i := range labels {
		style := base
		if i == s.menuField {
			style = selected
		}
		s.text(4, 5+i, fmt.Sprintf("%-7s< %2d >", labels[i]+" :", values[i]), style)
	}

	s.text(2, 8, "up/down select, left/right change, enter launch, q quit", base)
	if s.status != "" {
		s.text(2, 10, s.status, base)
	}
}

// cellStyle picks the color of p; endpoints win over walls, the path over exploration
func (s *Shell) cellStyle(p navigation.Point, onPath map[navigation.Point]bool) (rune, tcell.Style) {
	bg := s.pal.BG
	mark := ' '

	switch {
	case s.isStart(p):
		bg = s.pal.Start
		mark = 'S'
	case s.isGoal(p):
		bg = s.pal.Goal
		mark = 'G'
	case s.grid.IsBlocked(p):
		bg = s.pal.Wall
	case onPath[p]:
		bg = s.pal.Path
	case s.stepper != nil:
		switch s.stepper.State(p) {
		case navigation.StateSettled:
			bg = s.pal.Explored
		case navigation.StateFrontier:
			mark = '·'
		}
	}
	return mark, palette.Style(bg, s.pal.Wall)
}

func (s *Shell) isStart(p navigation.Point) bool {
	start, ok := s.grid.Start()
	return ok && start == p
}

func (s *Shell) isGoal(p navigation.Point) bool {
	goal, ok := s.grid.Goal()
	return ok && goal == p
}

func (s *Shell) drawGrid() {
	base := palette.Style(s.pal.BG, s.pal.FG)
	s.text(gridOriginX, 0, title, base.Bold(true))

	onPath := make(map[navigation.Point]bool, len(s.path))
	for _, p := range s.path {
		onPath[p] = true
	}

	rows, cols := s.grid.Rows(), s.grid.Columns()
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			p := navigation.Point{Row: r, Col: c}
			mark, style := s.cellStyle(p, onPath)
			x := gridOriginX + c*cellWidth
			y := gridOriginY + r
			s.screen.SetContent(x, y, mark, nil, style)
			s.screen.SetContent(x+1, y, ' ', nil, style)
		}
	}

	y := gridOriginY + rows + 1
	diag := "off"
	if s.diagonal {
		diag = "on"
	}
	s.text(gridOriginX, y, fmt.Sprintf("Diagonal movement: %s   Palette: %s", diag, s.pal.Name), base)
	s.text(gridOriginX, y+1, "L-click walls  R-click start/goal  M-click clear  space find path", base)
	s.text(gridOriginX, y+2, "d diagonal  r restart  c clear  g maze  p palette  esc menu  q quit", base)
	if s.status != "" {
		s.text(gridOriginX, y+4, s.status, base.Bold(true))
	}
}
