package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"runtime/debug"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/astar-grid/audio"
	"github.com/lixenwraith/astar-grid/config"
	"github.com/lixenwraith/astar-grid/shell"
)

func main() {
	cfg := config.Load()

	// Logging to the terminal would corrupt the screen
	log.SetOutput(io.Discard)
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}

	// Ensure terminal is reset even if the shell crashes
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\nASTAR-GRID CRASHED: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()

	screen.EnableMouse()
	screen.HideCursor()

	player := audio.NewPlayer(cfg.AudioEnabled, cfg.MasterVolume)
	if err := player.Initialize(); err != nil {
		// Non-fatal, the shell runs without sound
		log.Printf("[APP] [WARN] audio initialization failed: %v", err)
	}
	defer player.Cleanup()

	log.Printf("[APP] [INFO] starting with %dx%d menu, palette %s", cfg.Rows, cfg.Columns, cfg.Palette)
	shell.New(screen, cfg, player).Run()
	log.Printf("[APP] [INFO] exiting")
}
