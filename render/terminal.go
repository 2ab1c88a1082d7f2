package render

import (
	"math"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// TerminalContext draws on a tcell screen, one world unit per cell.
// Rects become runs of background-colored cells. It satisfies Context.
type TerminalContext struct {
	screen tcell.Screen
	cur    state
	stack  []state
}

type state struct {
	m    xform
	fill tcell.Color
}

// NewTerminalContext wraps an initialized tcell screen
func NewTerminalContext(screen tcell.Screen) *TerminalContext {
	return &TerminalContext{
		screen: screen,
		cur:    state{m: identity(), fill: tcell.ColorWhite},
	}
}

func (t *TerminalContext) Save() {
	t.stack = append(t.stack, t.cur)
}

func (t *TerminalContext) Restore() {
	n := len(t.stack)
	if n == 0 {
		return
	}
	t.cur = t.stack[n-1]
	t.stack = t.stack[:n-1]
}

func (t *TerminalContext) Translate(x, y float64) {
	t.cur.m = t.cur.m.translate(x, y)
}

func (t *TerminalContext) Rotate(rad float64) {
	t.cur.m = t.cur.m.rotate(rad)
}

// SetFill accepts W3C color names and #rrggbb strings, tcell's own
// color vocabulary
func (t *TerminalContext) SetFill(color string) {
	t.cur.fill = tcell.GetColor(strings.ToLower(color))
}

// FillRect fills the rect in the current transformed frame. Axis-aligned
// fills map directly to cell runs; rotated fills sample cell centers
// through the inverse transform so the shape stays a rect on screen.
func (t *TerminalContext) FillRect(x, y, w, h float64) {
	if w <= 0 || h <= 0 {
		return
	}
	sw, sh := t.screen.Size()
	if sw <= 0 || sh <= 0 {
		return
	}
	style := tcell.StyleDefault.Background(t.cur.fill)

	if t.cur.m.axisAligned() {
		x0, y0 := t.cur.m.apply(x, y)
		t.fillCells(x0, y0, x0+w, y0+h, sw, sh, style)
		return
	}

	// Bounding box of the transformed corners, then keep the cells whose
	// centers land inside the rect
	cx := [4]float64{}
	cy := [4]float64{}
	cx[0], cy[0] = t.cur.m.apply(x, y)
	cx[1], cy[1] = t.cur.m.apply(x+w, y)
	cx[2], cy[2] = t.cur.m.apply(x, y+h)
	cx[3], cy[3] = t.cur.m.apply(x+w, y+h)
	minX, maxX := cx[0], cx[0]
	minY, maxY := cy[0], cy[0]
	for i := 1; i < 4; i++ {
		minX = math.Min(minX, cx[i])
		maxX = math.Max(maxX, cx[i])
		minY = math.Min(minY, cy[i])
		maxY = math.Max(maxY, cy[i])
	}

	inv, ok := t.cur.m.invert()
	if !ok {
		return
	}
	ix0 := clampIndex(math.Floor(minX), sw)
	ix1 := clampIndex(math.Ceil(maxX)+1, sw)
	iy0 := clampIndex(math.Floor(minY), sh)
	iy1 := clampIndex(math.Ceil(maxY)+1, sh)
	for cyi := iy0; cyi < iy1; cyi++ {
		for cxi := ix0; cxi < ix1; cxi++ {
			lx, ly := inv.apply(float64(cxi)+0.5, float64(cyi)+0.5)
			if lx >= x && lx < x+w && ly >= y && ly < y+h {
				t.screen.SetContent(cxi, cyi, ' ', nil, style)
			}
		}
	}
}

func (t *TerminalContext) fillCells(x0, y0, x1, y1 float64, sw, sh int, style tcell.Style) {
	ix0 := clampIndex(cellEdge(x0), sw)
	iy0 := clampIndex(cellEdge(y0), sh)
	ix1 := clampIndex(cellEdge(x1), sw)
	iy1 := clampIndex(cellEdge(y1), sh)
	for cy := iy0; cy < iy1; cy++ {
		for cx := ix0; cx < ix1; cx++ {
			t.screen.SetContent(cx, cy, ' ', nil, style)
		}
	}
}

// cellEdge maps a world coordinate to the first cell whose center lies
// at or beyond it, so a [2,5) rect fills exactly cells 2..4
func cellEdge(v float64) float64 {
	return math.Ceil(v - 0.5)
}

// clampIndex limits a cell coordinate to [0, limit], NaN collapses to 0
func clampIndex(v float64, limit int) int {
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	if v >= float64(limit) {
		return limit
	}
	return int(v)
}

func (t *TerminalContext) Size() (float64, float64) {
	w, h := t.screen.Size()
	return float64(w), float64(h)
}

// Clear erases the screen for the next frame
func (t *TerminalContext) Clear() {
	t.screen.Clear()
}

// Show flushes drawn cells to the terminal
func (t *TerminalContext) Show() {
	t.screen.Show()
}
