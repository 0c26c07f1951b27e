package shell

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/astar-grid/config"
	"github.com/lixenwraith/astar-grid/navigation"
	"github.com/lixenwraith/astar-grid/palette"
)

// handleEvent applies one event; false means quit
func (s *Shell) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyCtrlC || (ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
			return false
		}
		if s.mode == modeMenu {
			s.handleMenuKey(ev)
		} else {
			s.handleGridKey(ev)
		}

	case *tcell.EventMouse:
		if s.mode == modeGrid {
			s.handleMouse(ev)
		}

	case *tcell.EventResize:
		s.screen.Sync()
	}
	return true
}

func (s *Shell) handleMenuKey(ev *tcell.EventKey) {
	field := &s.menuRows
	if s.menuField == 1 {
		field = &s.menuCols
	}

	switch ev.Key() {
	case tcell.KeyUp, tcell.KeyDown, tcell.KeyTab:
		s.menuField = 1 - s.menuField
	case tcell.KeyLeft:
		*field = max(*field-1, config.MinMenuSize)
	case tcell.KeyRight:
		*field = min(*field+1, config.MaxMenuSize)
	case tcell.KeyEnter:
		s.openGrid()
	}
}

func (s *Shell) handleGridKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape:
		s.resetSearch()
		s.mode = modeMenu
		s.status = ""
		return
	case tcell.KeyEnter:
		s.launch()
		return
	case tcell.KeyRune:
	default:
		return
	}

	switch ev.Rune() {
	case ' ':
		if s.stepper != nil && !s.stepper.Done() {
			s.finishSearch()
		} else {
			s.launch()
		}
	case 'd':
		s.diagonal = !s.diagonal
	case 'r':
		s.resetSearch()
		s.status = ""
	case 'c':
		s.clearGrid()
	case 'g':
		s.generateMaze()
	case 'p':
		s.pal = palette.Next(s.pal)
	}
}

// cellAt maps screen coordinates to a grid cell
func (s *Shell) cellAt(x, y int) (navigation.Point, bool) {
	if s.grid == nil || x < gridOriginX || y < gridOriginY {
		return navigation.Point{}, false
	}
	p := navigation.Point{Row: y - gridOriginY, Col: (x - gridOriginX) / cellWidth}
	return p, s.grid.InBounds(p)
}

func (s *Shell) isEndpoint(p navigation.Point) bool {
	return s.isStart(p) || s.isGoal(p)
}

// handleMouse edits the grid.
// Left click toggles a wall and dragging repeats the first click's action;
// right click places start then goal, or removes an endpoint; middle click clears.
func (s *Shell) handleMouse(ev *tcell.EventMouse) {
	buttons := ev.Buttons()
	if buttons&tcell.Button1 == 0 {
		s.dragging = false
	}
	if s.generated {
		return
	}

	p, ok := s.cellAt(ev.Position())

	switch {
	case buttons&tcell.Button1 != 0:
		if !ok {
			return
		}
		if !s.dragging {
			s.dragging = true
			s.toggleWall(p)
			return
		}
		s.paint(p)

	case buttons&tcell.Button2 != 0:
		if ok {
			s.toggleEndpoint(p)
		}

	case buttons&tcell.Button3 != 0:
		s.clearGrid()
	}
}

func (s *Shell) toggleWall(p navigation.Point) {
	if s.isEndpoint(p) {
		return
	}
	if s.grid.IsBlocked(p) {
		_ = s.grid.Unblock(p.Row, p.Col)
		s.eraseMode = true
		return
	}
	_ = s.grid.MarkBlocked(p.Row, p.Col)
	s.eraseMode = false
}

func (s *Shell) paint(p navigation.Point) {
	if s.isEndpoint(p) {
		return
	}
	if s.eraseMode {
		_ = s.grid.Unblock(p.Row, p.Col)
	} else {
		_ = s.grid.MarkBlocked(p.Row, p.Col)
	}
}

func (s *Shell) toggleEndpoint(p navigation.Point) {
	start, hasStart := s.grid.Start()
	goal, hasGoal := s.grid.Goal()

	switch {
	case hasStart && start == p:
		s.grid.ClearStart()
	case hasGoal && goal == p:
		s.grid.ClearGoal()
	case s.grid.IsBlocked(p):
	case !hasStart:
		_ = s.grid.SetStart(p.Row, p.Col)
	case !hasGoal:
		_ = s.grid.SetGoal(p.Row, p.Col)
	}
}
