package render

import (
	"math"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func newTestScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Expected simulation screen to init, got %v", err)
	}
	screen.SetSize(w, h)
	return screen
}

func bgAt(t *testing.T, screen tcell.SimulationScreen, x, y int) tcell.Color {
	t.Helper()
	cells, w, h := screen.GetContents()
	if x < 0 || x >= w || y < 0 || y >= h {
		t.Fatalf("Cell (%d,%d) out of %dx%d buffer", x, y, w, h)
	}
	_, bg, _ := cells[y*w+x].Style.Decompose()
	return bg
}

func TestFillRectCoversCells(t *testing.T) {
	screen := newTestScreen(t, 10, 6)
	ctx := NewTerminalContext(screen)

	ctx.SetFill("red")
	ctx.FillRect(2, 1, 3, 2)

	for y := 1; y <= 2; y++ {
		for x := 2; x <= 4; x++ {
			if got := bgAt(t, screen, x, y); got != tcell.ColorRed {
				t.Errorf("Expected cell (%d,%d) to be red, got %v", x, y, got)
			}
		}
	}
	for _, p := range [][2]int{{1, 1}, {5, 1}, {2, 0}, {2, 3}} {
		if got := bgAt(t, screen, p[0], p[1]); got == tcell.ColorRed {
			t.Errorf("Expected cell (%d,%d) to stay unfilled", p[0], p[1])
		}
	}
}

func TestTranslateOffsetsFill(t *testing.T) {
	screen := newTestScreen(t, 10, 6)
	ctx := NewTerminalContext(screen)

	ctx.SetFill("blue")
	ctx.Translate(4, 2)
	ctx.FillRect(0, 0, 1, 1)

	if got := bgAt(t, screen, 4, 2); got != tcell.ColorBlue {
		t.Errorf("Expected translated cell (4,2) to be blue, got %v", got)
	}
	if got := bgAt(t, screen, 0, 0); got == tcell.ColorBlue {
		t.Error("Expected origin to stay unfilled after translate")
	}
}

func TestSaveRestoreScopesTransform(t *testing.T) {
	screen := newTestScreen(t, 10, 6)
	ctx := NewTerminalContext(screen)

	ctx.SetFill("green")
	ctx.Save()
	ctx.Translate(5, 5)
	ctx.Restore()
	ctx.FillRect(0, 0, 1, 1)

	if got := bgAt(t, screen, 0, 0); got != tcell.ColorGreen {
		t.Errorf("Expected restore to drop the translation, cell (0,0) got %v", got)
	}
	if got := bgAt(t, screen, 5, 5); got == tcell.ColorGreen {
		t.Error("Expected cell (5,5) to stay unfilled after restore")
	}
}

func TestRestoreOnEmptyStackIsNoOp(t *testing.T) {
	screen := newTestScreen(t, 10, 6)
	ctx := NewTerminalContext(screen)

	ctx.Restore()
	ctx.SetFill("red")
	ctx.FillRect(0, 0, 1, 1)

	if got := bgAt(t, screen, 0, 0); got != tcell.ColorRed {
		t.Errorf("Expected drawing to work after stray restore, got %v", got)
	}
}

func TestFillRectClipsToScreen(t *testing.T) {
	screen := newTestScreen(t, 10, 6)
	ctx := NewTerminalContext(screen)

	ctx.SetFill("red")
	ctx.FillRect(-5, -5, 100, 100)

	if got := bgAt(t, screen, 0, 0); got != tcell.ColorRed {
		t.Errorf("Expected clipped fill to cover (0,0), got %v", got)
	}
	if got := bgAt(t, screen, 9, 5); got != tcell.ColorRed {
		t.Errorf("Expected clipped fill to cover (9,5), got %v", got)
	}

	// Entirely offscreen draws nothing and must not scan huge ranges
	ctx.FillRect(1e9, 1e9, 10, 10)
	ctx.FillRect(0, 0, -3, 5)
}

func TestRotatedFillKeepsRectShape(t *testing.T) {
	screen := newTestScreen(t, 9, 9)
	ctx := NewTerminalContext(screen)

	// A 3x1 bar centered at (4.5,4.5), rotated a quarter turn, lands as
	// a 1x3 vertical bar on the same center
	ctx.SetFill("red")
	ctx.Translate(4.5, 4.5)
	ctx.Rotate(math.Pi / 2)
	ctx.FillRect(-1.5, -0.5, 3, 1)

	for _, p := range [][2]int{{4, 3}, {4, 4}, {4, 5}} {
		if got := bgAt(t, screen, p[0], p[1]); got != tcell.ColorRed {
			t.Errorf("Expected rotated bar to cover (%d,%d), got %v", p[0], p[1], got)
		}
	}
	for _, p := range [][2]int{{3, 4}, {5, 4}, {4, 2}, {4, 6}} {
		if got := bgAt(t, screen, p[0], p[1]); got == tcell.ColorRed {
			t.Errorf("Expected cell (%d,%d) outside the rotated bar", p[0], p[1])
		}
	}
}

func TestSetFillParsesHex(t *testing.T) {
	screen := newTestScreen(t, 4, 4)
	ctx := NewTerminalContext(screen)

	ctx.SetFill("#00ff00")
	ctx.FillRect(1, 1, 1, 1)

	want := tcell.GetColor("#00ff00")
	if got := bgAt(t, screen, 1, 1); got != want {
		t.Errorf("Expected hex fill %v, got %v", want, got)
	}
}

func TestTerminalSize(t *testing.T) {
	screen := newTestScreen(t, 20, 10)
	ctx := NewTerminalContext(screen)

	w, h := ctx.Size()
	if w != 20 || h != 10 {
		t.Errorf("Expected size 20x10, got %vx%v", w, h)
	}
}
