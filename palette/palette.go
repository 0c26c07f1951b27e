// Package palette defines the color themes of the terminal shell
package palette

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Palette is one color theme
type Palette struct {
	Name     string
	FG       tcell.Color // Text and labels
	BG       tcell.Color // Empty cells and background
	Wall     tcell.Color
	Start    tcell.Color
	Goal     tcell.Color
	Path     tcell.Color
	Explored tcell.Color
}

// Built-in palettes, in cycling order
var All = []Palette{
	{
		Name:     "default",
		FG:       tcell.GetColor("#D2D4C8"),
		BG:       tcell.GetColor("#8B2635"),
		Wall:     tcell.GetColor("#2E3532"),
		Start:    tcell.GetColor("#E0E2DB"),
		Goal:     tcell.GetColor("#D3EFBD"),
		Path:     tcell.ColorDarkGreen,
		Explored: tcell.ColorPink,
	},
	{
		Name:     "steel",
		FG:       tcell.GetColor("#EDF2F4"),
		BG:       tcell.GetColor("#8D99AE"),
		Wall:     tcell.GetColor("#2B2D42"),
		Start:    tcell.GetColor("#E0E2DB"),
		Goal:     tcell.GetColor("#D3EFBD"),
		Path:     tcell.GetColor("#D90429"),
		Explored: tcell.GetColor("#F68D99"),
	},
	{
		Name:     "energy",
		FG:       tcell.GetColor("#EDF5E1"),
		BG:       tcell.GetColor("#5CDB95"),
		Wall:     tcell.GetColor("#05386B"),
		Start:    tcell.GetColor("#E0E2DB"),
		Goal:     tcell.GetColor("#D3EFBD"),
		Path:     tcell.GetColor("#4987AB"),
		Explored: tcell.GetColor("#DEF3CE"),
	},
}

// ByName returns the palette with the given case-insensitive name
func ByName(name string) (Palette, error) {
	for _, p := range All {
		if strings.EqualFold(p.Name, name) {
			return p, nil
		}
	}
	return Palette{}, fmt.Errorf("unknown palette %q", name)
}

// Next returns the palette after p in cycling order
func Next(p Palette) Palette {
	for i := range All {
		if All[i].Name == p.Name {
			return All[(i+1)%len(All)]
		}
	}
	return All[0]
}

// Style returns a cell style filled with bg
func Style(bg, fg tcell.Color) tcell.Style {
	return tcell.StyleDefault.Background(bg).Foreground(fg)
}
