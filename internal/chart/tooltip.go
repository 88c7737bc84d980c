package chart

// Positioner computes tooltip origins clamped to the viewport. It
// remembers the last placement so repeated hits on the same index do
// not move the box while the pointer wanders inside one element.
type Positioner struct {
	Offset  float64 // gap between pointer and box
	Padding float64 // viewport inset the box must stay within

	lastIndex int
	lastX     float64
	lastY     float64
	placed    bool
}

func NewPositioner() *Positioner {
	return &Positioner{Offset: 2, Padding: 1, lastIndex: -1}
}

// Place returns the top-left origin for a w×h tooltip after a hit on
// index with the pointer at (px, py). The box is kept fully inside the
// viewport inset by Padding. An unchanged index returns the previous
// placement untouched.
func (p *Positioner) Place(index int, px, py, w, h, viewW, viewH float64) (float64, float64) {
	if p.placed && index == p.lastIndex {
		return p.lastX, p.lastY
	}
	x := clampf(px+p.Offset, p.Padding, viewW-p.Padding-w)
	y := clampf(py-p.Offset-h, p.Padding, viewH-p.Padding-h)
	p.lastIndex = index
	p.lastX, p.lastY = x, y
	p.placed = true
	return x, y
}

// Reset forgets the previous placement, e.g. when the pointer leaves
// the chart or the dataset changes.
func (p *Positioner) Reset() {
	p.placed = false
	p.lastIndex = -1
}

func clampf(v, lo, hi float64) float64 {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
