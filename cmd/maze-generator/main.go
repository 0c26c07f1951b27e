package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/lixenwraith/astar-grid/maze"
	"github.com/lixenwraith/astar-grid/navigation"
)

func main() {
	reader := bufio.NewReader(os.Stdin)

	for {
		fmt.Println("\n=== MAZE GENERATOR / A* SOLVER ===")

		rows := getInt(reader, "Rows [Odd prefered] (default 19): ", 19)
		cols := getInt(reader, "Columns [Odd prefered] (default 35): ", 35)
		braid := getFloat(reader, "Braiding Factor [0.0 - 1.0] (default 0.2): ", 0.2)

		fmt.Print("Mode: Jailbreak (Remove Borders)? [y/N]: ")
		jailStr, _ := reader.ReadString('\n')
		jailMode := strings.ToLower(strings.TrimSpace(jailStr)) == "y"

		fmt.Print("Allow diagonal movement? [y/N]: ")
		diagStr, _ := reader.ReadString('\n')
		diagonal := strings.ToLower(strings.TrimSpace(diagStr)) == "y"

		fmt.Println("\nGenerating...")
		startT := time.Now()
		res, err := maze.Generate(maze.Config{
			Rows:          rows,
			Columns:       cols,
			Braiding:      braid,
			RemoveBorders: jailMode,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Generation failed: %v\n", err)
			continue
		}
		fmt.Printf("Done in %v\n", time.Since(startT))

		g, err := res.Grid()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Grid setup failed: %v\n", err)
			continue
		}

		startT = time.Now()
		found, err := g.FindPath(diagonal)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Search failed: %v\n", err)
			continue
		}
		fmt.Printf("Searched in %v, %d cells explored\n", time.Since(startT), len(found.Trace))

		if found.Found {
			fmt.Printf("Path Length: %d steps\n", len(found.Path)-1)
		} else {
			fmt.Println("Status: Unsolvable (Isolated Start/Goal)")
		}

		draw(res, found)

		fmt.Print("\nGenerate another? [Y/n]: ")
		cont, _ := reader.ReadString('\n')
		if strings.ToLower(strings.TrimSpace(cont)) == "n" {
			break
		}
	}
}

func draw(res maze.Result, found navigation.Result) {
	pathMap := make(map[navigation.Point]bool, len(found.Path))
	for _, p := range found.Path {
		pathMap[p] = true
	}
	exploredMap := make(map[navigation.Point]bool, len(found.Trace))
	for _, p := range found.Trace {
		exploredMap[p] = true
	}

	var sb strings.Builder
	for r, row := range res.Layout {
		for c, isWall := range row {
			p := navigation.Point{Row: r, Col: c}

			switch {
			case p == res.Start:
				sb.WriteString("S")
			case p == res.Goal:
				sb.WriteString("G")
			case isWall:
				sb.WriteString("█")
			case pathMap[p]:
				sb.WriteString("•")
			case exploredMap[p]:
				sb.WriteString("·")
			default:
				sb.WriteString(" ")
			}
		}
		sb.WriteByte('\n')
	}
	fmt.Print(sb.String())
}

// --- Input Helpers ---

func getInt(r *bufio.Reader, prompt string, def int) int {
	fmt.Print(prompt)
	s, _ := r.ReadString('\n')
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil || v <= 0 {
		return def
	}
	return v
}

func getFloat(r *bufio.Reader, prompt string, def float64) float64 {
	fmt.Print(prompt)
	s, _ := r.ReadString('\n')
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return def
	}
	// Clamp
	if v < 0.0 {
		return 0.0
	}
	if v > 1.0 {
		return 1.0
	}
	return v
}
