// Package shell is the interactive terminal front end: a size menu followed
// by an editable grid on which searches are animated.
package shell

import (
	"log"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/astar-grid/config"
	"github.com/lixenwraith/astar-grid/maze"
	"github.com/lixenwraith/astar-grid/navigation"
	"github.com/lixenwraith/astar-grid/palette"
)

const (
	frameInterval = 16 * time.Millisecond // ~60 FPS
	gridOriginX   = 2
	gridOriginY   = 2
	cellWidth     = 2 // Terminal columns per grid cell
)

type mode int

const (
	modeMenu mode = iota
	modeGrid
)

// Cues receives search outcomes for audible feedback
type Cues interface {
	PlayFound()
	PlayNoPath()
}

type noCues struct{}

func (noCues) PlayFound()  {}
func (noCues) PlayNoPath() {}

// Shell owns the screen and the grid being edited
type Shell struct {
	screen tcell.Screen
	cues   Cues
	pal    palette.Palette
	rng    *rand.Rand

	mode mode

	// Menu state
	menuRows, menuCols int
	menuField          int // 0 = height, 1 = width

	// Grid state
	grid      *navigation.Grid
	diagonal  bool
	dragging  bool
	eraseMode bool
	generated bool // Search started; editing locked until reset

	stepper     *navigation.Stepper
	stepDelay   time.Duration
	lastStep    time.Time
	path        []navigation.Point
	searchStart time.Time

	status string
}

// New creates a shell drawing on screen. The screen must already be initialized.
func New(screen tcell.Screen, cfg config.Config, cues Cues) *Shell {
	pal, err := palette.ByName(cfg.Palette)
	if err != nil {
		log.Printf("[SHELL] [WARN] %v, using %s", err, palette.All[0].Name)
		pal = palette.All[0]
	}
	if cues == nil {
		cues = noCues{}
	}

	return &Shell{
		screen:    screen,
		cues:      cues,
		pal:       pal,
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
		mode:      modeMenu,
		menuRows:  cfg.Rows,
		menuCols:  cfg.Columns,
		diagonal:  cfg.Diagonal,
		stepDelay: time.Duration(cfg.StepDelayMs) * time.Millisecond,
	}
}

// Run processes events until the user quits
func (s *Shell) Run() {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)
	go s.pollEvents(eventChan, done)

	s.draw()
	for {
		select {
		case ev, ok := <-eventChan:
			if !ok || !s.handleEvent(ev) {
				return
			}
			s.draw()

		case now := <-ticker.C:
			if s.advance(now) {
				s.draw()
			}
		}
	}
}

// pollEvents forwards screen events until the screen finalizes or done closes
func (s *Shell) pollEvents(events chan<- tcell.Event, done <-chan struct{}) {
	defer close(events)
	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

// openGrid leaves the menu with a fresh grid of the chosen size
func (s *Shell) openGrid() {
	g, err := navigation.NewGrid(s.menuRows, s.menuCols)
	if err != nil {
		s.status = err.Error()
		return
	}
	s.grid = g
	s.resetSearch()
	s.mode = modeGrid
	s.status = ""
	log.Printf("[SHELL] [INFO] opened %dx%d grid", s.menuRows, s.menuCols)
}

// launch starts an animated search when both endpoints are placed
func (s *Shell) launch() {
	if s.generated {
		return
	}
	st, err := navigation.NewStepper(s.grid, s.diagonal)
	if err != nil {
		s.status = "Place a start and a goal with right click first"
		return
	}
	s.generated = true
	s.stepper = st
	s.path = nil
	s.searchStart = time.Now()
	s.status = "Searching..."
	if s.stepDelay == 0 {
		s.finishSearch()
	}
}

// advance performs due animation steps and reports whether anything changed
func (s *Shell) advance(now time.Time) bool {
	if s.stepper == nil || s.stepper.Done() {
		return false
	}
	if now.Sub(s.lastStep) < s.stepDelay {
		return false
	}
	s.lastStep = now
	if s.stepper.Step().Done {
		s.complete()
	}
	return true
}

// finishSearch runs the remaining steps at once
func (s *Shell) finishSearch() {
	if s.stepper == nil {
		return
	}
	for !s.stepper.Step().Done {
	}
	s.complete()
}

func (s *Shell) complete() {
	res := s.stepper.Result()
	log.Printf("[SHELL] [INFO] search finished in %v: found=%t explored=%d diagonal=%t",
		time.Since(s.searchStart), res.Found, len(res.Trace), s.diagonal)

	if res.Found {
		s.path = res.Path
		s.status = pathStatus(len(res.Path)-1, len(res.Trace))
		s.cues.PlayFound()
		return
	}
	s.status = "No path found! There is no path to the destination."
	s.cues.PlayNoPath()
}

// resetSearch discards the search overlay and unlocks editing
func (s *Shell) resetSearch() {
	s.generated = false
	s.stepper = nil
	s.path = nil
	s.dragging = false
}

// clearGrid removes walls and endpoints
func (s *Shell) clearGrid() {
	if s.generated {
		return
	}
	s.grid.Clear()
	s.status = ""
}

// generateMaze replaces the layout with a random maze
func (s *Shell) generateMaze() {
	if s.generated {
		return
	}
	res, err := maze.Generate(maze.Config{
		Rows:     s.grid.Rows(),
		Columns:  s.grid.Columns(),
		Braiding: 0.2,
		Seed:     s.rng.Int63() | 1,
	})
	if err != nil {
		s.status = err.Error()
		return
	}
	s.grid.Clear()
	if err := res.Apply(s.grid); err != nil {
		s.status = err.Error()
		return
	}
	s.status = "Maze generated"
}
