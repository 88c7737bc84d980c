package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"

	"chartdeck/internal/chart"
)

// The chart engine works on the braille microgrid: one terminal cell
// spans 2 engine units horizontally and 4 vertically, which makes
// engine units roughly square on screen.
const (
	microX = 2
	microY = 4
)

// sectorNudge is the radial offset, in engine units, applied to the
// hovered pie/donut slice at draw time.
const sectorNudge = 5.0

// hoverLift is how far the hovered element's color is blended toward
// white.
const hoverLift = 0.3

// lower eighth blocks for fractional bar tops; index = filled eighths
var eighths = []rune{' ', '▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// cellCanvas is a w×h grid of runes with an optional foreground color
// per cell.
type cellCanvas struct {
	w, h  int
	runes [][]rune
	color [][]string // hex foreground, "" for the default style
}

func newCellCanvas(w, h int) *cellCanvas {
	c := &cellCanvas{
		w:     w,
		h:     h,
		runes: make([][]rune, h),
		color: make([][]string, h),
	}
	for y := range c.runes {
		c.runes[y] = make([]rune, w)
		for x := range c.runes[y] {
			c.runes[y][x] = ' '
		}
		c.color[y] = make([]string, w)
	}
	return c
}

func (c *cellCanvas) set(x, y int, r rune, col string) {
	if x < 0 || x >= c.w || y < 0 || y >= c.h {
		return
	}
	c.runes[y][x] = r
	c.color[y][x] = col
}

func (c *cellCanvas) writeString(x, y int, s, col string) {
	for _, r := range s {
		c.set(x, y, r, col)
		x++
	}
}

// overlayBraille composites non-empty braille cells onto the canvas.
func (c *cellCanvas) overlayBraille(b *brailleBuf) {
	for y := 0; y < c.h && y < b.h; y++ {
		for x := 0; x < c.w && x < b.w; x++ {
			if b.m[y][x] != 0 {
				c.set(x, y, rune(0x2800+int(b.m[y][x])), b.color[y][x])
			}
		}
	}
}

// render joins the grid into styled lines, batching runs of one color
// to keep the ANSI output small.
func (c *cellCanvas) render() string {
	var sb strings.Builder
	for y := 0; y < c.h; y++ {
		x := 0
		for x < c.w {
			col := c.color[y][x]
			start := x
			for x < c.w && c.color[y][x] == col {
				x++
			}
			run := string(c.runes[y][start:x])
			if col == "" {
				sb.WriteString(run)
			} else {
				sb.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(col)).Render(run))
			}
		}
		if y < c.h-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// brailleBuf is a high-resolution 2x4-per-cell dot buffer for crisp
// lines and fills.
type brailleBuf struct {
	w, h  int        // in cells
	m     [][]uint8  // per-cell 8-bit dot mask
	color [][]string // last color written to a cell wins
}

func newBrailleBuf(w, h int) *brailleBuf {
	b := &brailleBuf{w: w, h: h, m: make([][]uint8, h), color: make([][]string, h)}
	for i := range b.m {
		b.m[i] = make([]uint8, w)
		b.color[i] = make([]string, w)
	}
	return b
}

// setPixel sets a micro-pixel at micro coords (2x4 per cell)
func (b *brailleBuf) setPixel(mx, my int, col string) {
	if mx < 0 || my < 0 {
		return
	}
	cx, rx := mx/2, mx%2
	cy, ry := my/4, my%4
	if cy >= b.h || cx >= b.w {
		return
	}
	var bit uint8
	if rx == 0 {
		switch ry {
		case 0:
			bit = 0x01
		case 1:
			bit = 0x02
		case 2:
			bit = 0x04
		case 3:
			bit = 0x40
		}
	} else {
		switch ry {
		case 0:
			bit = 0x08
		case 1:
			bit = 0x10
		case 2:
			bit = 0x20
		case 3:
			bit = 0x80
		}
	}
	b.m[cy][cx] |= bit
	b.color[cy][cx] = col
}

// drawLineMicro draws a line on the microgrid using Bresenham
func (b *brailleBuf) drawLineMicro(x0, y0, x1, y1 int, col string) {
	dx := abs(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -abs(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		b.setPixel(x0, y0, col)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// drawFrame rasterizes the engine's primitives onto the canvas. The
// hovered index only affects styling here; the geometry table stays
// untouched.
func drawFrame(cv *cellCanvas, f chart.Frame, t chart.Table, hovered int) {
	drawGrid(cv, f, t)
	drawXLabels(cv, f)
	switch t.Type {
	case chart.Bar:
		drawBars(cv, f, hovered)
	case chart.Line:
		br := newBrailleBuf(cv.w, cv.h)
		drawSegments(br, f, hovered)
		cv.overlayBraille(br)
		markSample(cv, f, hovered)
	case chart.Area:
		br := newBrailleBuf(cv.w, cv.h)
		fillArea(br, f, t)
		drawSegments(br, f, hovered)
		cv.overlayBraille(br)
		markSample(cv, f, hovered)
	case chart.Pie, chart.Donut:
		drawSectors(cv, f, t, hovered)
	}
}

func drawGrid(cv *cellCanvas, f chart.Frame, t chart.Table) {
	left := int(math.Round(t.Plot.X / microX))
	right := int(math.Round((t.Plot.X + t.Plot.W) / microX))
	for _, g := range f.Grid {
		row := int(math.Round(g.Y / microY))
		for x := left; x < right; x++ {
			cv.set(x, row, '─', gridHex)
		}
		label := fmt.Sprintf("%.4g", g.Value)
		cv.writeString(left-len([]rune(label))-1, row, label, dimHex)
	}
}

func drawXLabels(cv *cellCanvas, f chart.Frame) {
	nextFree := 0
	for _, l := range f.XLabels {
		row := int(math.Round(l.Y/microY)) + 1
		runes := []rune(l.Text)
		x := int(math.Round(l.X/microX)) - len(runes)/2
		if x < nextFree {
			continue // keep labels from running into each other
		}
		cv.writeString(x, row, l.Text, dimHex)
		nextFree = x + len(runes) + 1
	}
}

func drawBars(cv *cellCanvas, f chart.Frame, hovered int) {
	for _, b := range f.Bars {
		if b.Rect.W <= 0 || b.Rect.H <= 0 {
			continue
		}
		col := b.Color
		if b.Index == hovered {
			col = brighten(col, hoverLift)
		}
		x0 := int(math.Round(b.Rect.X / microX))
		x1 := int(math.Round((b.Rect.X+b.Rect.W)/microX)) - 1
		if x1 < x0 {
			x1 = x0
		}
		topF := b.Rect.Y / microY
		topCell := int(math.Floor(topF))
		bottom := int(math.Ceil((b.Rect.Y+b.Rect.H)/microY)) - 1
		frac := float64(topCell) + 1 - topF // top-cell coverage, 0..1
		for x := x0; x <= x1; x++ {
			for y := topCell + 1; y <= bottom; y++ {
				cv.set(x, y, '█', col)
			}
			if e := int(math.Round(frac * 8)); e > 0 {
				if e > 8 {
					e = 8
				}
				cv.set(x, topCell, eighths[e], col)
			}
		}
	}
}

func drawSegments(br *brailleBuf, f chart.Frame, hovered int) {
	for _, s := range f.Segments {
		col := s.Color
		if hovered >= 0 && (s.Index == hovered || s.Index+1 == hovered) {
			col = brighten(col, hoverLift)
		}
		br.drawLineMicro(
			int(math.Round(s.From.X)), int(math.Round(s.From.Y)),
			int(math.Round(s.To.X)), int(math.Round(s.To.Y)), col)
	}
}

// fillArea shades the region between the sampled line and the baseline,
// column by column on the microgrid.
func fillArea(br *brailleBuf, f chart.Frame, t chart.Table) {
	base := int(math.Round(t.Plot.Y+t.Plot.H)) - 1
	for _, s := range f.Segments {
		x0 := int(math.Round(s.From.X))
		x1 := int(math.Round(s.To.X))
		if x1 <= x0 {
			continue
		}
		for x := x0; x <= x1; x++ {
			frac := float64(x-x0) / float64(x1-x0)
			top := int(math.Round(s.From.Y + (s.To.Y-s.From.Y)*frac))
			for y := top; y <= base; y++ {
				br.setPixel(x, y, s.Color)
			}
		}
	}
}

// markSample overlays a marker on the hovered line/area sample,
// mirroring the hover circle of a map viewer.
func markSample(cv *cellCanvas, f chart.Frame, hovered int) {
	if hovered < 0 || hovered >= len(f.Points) {
		return
	}
	p := f.Points[hovered]
	cv.set(int(p.Pt.X)/microX, int(p.Pt.Y)/microY, '●', brighten(p.Color, hoverLift))
}

// drawSectors samples each cell centre against the engine's own
// hit-test, so the drawn pie and the pointer behavior can never
// disagree. The hovered slice is tested against a radially nudged
// position, which draws it slightly pulled out of the circle.
func drawSectors(cv *cellCanvas, f chart.Frame, t chart.Table, hovered int) {
	if t.Radius <= 0 || len(f.Sectors) == 0 {
		return
	}
	var nx, ny float64
	if hovered >= 0 && hovered < len(f.Sectors) {
		s := f.Sectors[hovered]
		mid := (s.Start + s.End) / 2
		nx = math.Cos(mid) * sectorNudge
		ny = math.Sin(mid) * sectorNudge
	}
	for cy := 0; cy < cv.h; cy++ {
		for cx := 0; cx < cv.w; cx++ {
			ex := float64(cx)*microX + 1
			ey := float64(cy)*microY + 2
			if hovered >= 0 {
				if idx, ok := chart.Locate(ex-nx, ey-ny, t); ok && idx == hovered {
					cv.set(cx, cy, '█', brighten(f.Sectors[hovered].Color, hoverLift))
					continue
				}
			}
			idx, ok := chart.Locate(ex, ey, t)
			if !ok || idx == hovered {
				continue // background, or vacated by the nudge
			}
			cv.set(cx, cy, '█', f.Sectors[idx].Color)
		}
	}
}

// drawTooltip paints a bordered box with the given lines at cell (x, y).
func drawTooltip(cv *cellCanvas, x, y int, lines []string) {
	w := 0
	for _, l := range lines {
		if n := len([]rune(l)); n > w {
			w = n
		}
	}
	cv.set(x, y, '╭', borderHex)
	cv.set(x+w+3, y, '╮', borderHex)
	cv.set(x, y+len(lines)+1, '╰', borderHex)
	cv.set(x+w+3, y+len(lines)+1, '╯', borderHex)
	for i := 0; i < w+2; i++ {
		cv.set(x+1+i, y, '─', borderHex)
		cv.set(x+1+i, y+len(lines)+1, '─', borderHex)
	}
	for i, l := range lines {
		cv.set(x, y+1+i, '│', borderHex)
		cv.writeString(x+2, y+1+i, padRight(l, w), "")
		cv.set(x+w+3, y+1+i, '│', borderHex)
	}
}

func padRight(s string, n int) string {
	if d := n - len([]rune(s)); d > 0 {
		return s + strings.Repeat(" ", d)
	}
	return s
}

// brighten blends a hex color toward white for hover feedback.
// Unparseable colors pass through unchanged.
func brighten(hex string, amt float64) string {
	c, err := colorful.Hex(hex)
	if err != nil {
		return hex
	}
	return c.BlendLuv(colorful.Color{R: 1, G: 1, B: 1}, amt).Hex()
}
