package palette

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestByName(t *testing.T) {
	for _, name := range []string{"default", "STEEL", "Energy"} {
		p, err := ByName(name)
		if err != nil {
			t.Errorf("ByName(%q): %v", name, err)
			continue
		}
		if p.Wall == tcell.ColorDefault || p.BG == tcell.ColorDefault {
			t.Errorf("Palette %q has unset colors", p.Name)
		}
	}

	if _, err := ByName("neon"); err == nil {
		t.Error("Expected error for unknown palette")
	}
}

func TestNextCycles(t *testing.T) {
	p := All[0]
	for i := 1; i <= len(All); i++ {
		p = Next(p)
		if want := All[i%len(All)].Name; p.Name != want {
			t.Errorf("Step %d: expected %q, got %q", i, want, p.Name)
		}
	}

	if Next(Palette{Name: "missing"}).Name != All[0].Name {
		t.Error("Expected unknown palette to restart the cycle")
	}
}

func TestDefaultColors(t *testing.T) {
	p, _ := ByName("default")
	if p.BG != tcell.NewHexColor(0x8B2635) {
		t.Errorf("Expected background #8B2635, got %v", p.BG)
	}
	if p.Explored != tcell.ColorPink {
		t.Errorf("Expected pink explored cells, got %v", p.Explored)
	}
}
