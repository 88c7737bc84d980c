package chart

import "math"

type Point struct {
	X float64
	Y float64
}

type Rect struct {
	X float64
	Y float64
	W float64
	H float64
}

func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Entry is the derived pixel-space shape for one data point. Which
// fields carry meaning depends on the table's chart type.
type Entry struct {
	Index int

	Bar Rect // bar bounds

	Pt Point // line/area sample

	Start float64 // sector start angle, radians, clockwise from 12 o'clock
	End   float64
	Inner float64
	Outer float64
}

// Table maps data indexes to pixel-space geometry, one entry per point
// in series order. It is rebuilt whole whenever series, type, or
// dimensions change and never mutated in place, so a reader always
// sees a consistent snapshot.
type Table struct {
	Type    Type
	Plot    Rect
	Entries []Entry

	Slot float64 // bar slot width
	Step float64 // line/area x distance between samples

	Center Point
	Radius float64
	cum    []float64 // cumulative sweeps from the start angle

	RangeMin float64
	RangeMax float64
}

// sectorStart is 12 o'clock in screen coordinates: y grows downward,
// so angles from math.Atan2 increase clockwise.
const sectorStart = -math.Pi / 2

// donutHole is the inner radius as a fraction of the outer radius.
const donutHole = 0.4

// Compute derives the geometry table for a series under a config. It
// never fails: invalid dimensions clamp to an empty plot and an empty
// series yields an empty table.
func Compute(series Series, cfg Config) Table {
	t := Table{Type: cfg.Type, Plot: plotRect(cfg)}
	if len(series) == 0 {
		return t
	}
	switch cfg.Type {
	case Bar:
		computeBars(&t, series)
	case Line, Area:
		computeSamples(&t, series)
	case Pie, Donut:
		computeSectors(&t, series, cfg.Type == Donut)
	}
	return t
}

func plotRect(cfg Config) Rect {
	w := math.Max(cfg.Width, 0)
	h := math.Max(cfg.Height, 0)
	m := cfg.Margins
	r := Rect{X: m.Left, Y: m.Top, W: w - m.Left - m.Right, H: h - m.Top - m.Bottom}
	if r.W < 0 {
		r.W = 0
	}
	if r.H < 0 {
		r.H = 0
	}
	return r
}

// valueRange scans the series for [min, max]; includeZero forces the
// range to contain zero (bar charts measure from a zero baseline).
func valueRange(series Series, includeZero bool) (float64, float64) {
	lo := math.Inf(1)
	hi := math.Inf(-1)
	for _, p := range series {
		v := sanitize(p.Value)
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if includeZero {
		lo = math.Min(0, lo)
	}
	return lo, hi
}

// normalized maps v into [0,1] over the range. A zero-width range
// fills the whole extent rather than dividing by zero.
func normalized(v, lo, hi float64) float64 {
	if hi-lo == 0 {
		return 1
	}
	return (v - lo) / (hi - lo)
}

func computeBars(t *Table, series Series) {
	n := len(series)
	lo, hi := valueRange(series, true)
	t.RangeMin, t.RangeMax = lo, hi
	t.Slot = t.Plot.W / float64(n)
	t.Entries = make([]Entry, n)
	for i, p := range series {
		bh := normalized(sanitize(p.Value), lo, hi) * t.Plot.H
		t.Entries[i] = Entry{
			Index: i,
			Bar: Rect{
				X: t.Plot.X + float64(i)*t.Slot + 0.1*t.Slot,
				Y: t.Plot.Y + t.Plot.H - bh,
				W: t.Slot * 0.8,
				H: bh,
			},
		}
	}
}

func computeSamples(t *Table, series Series) {
	n := len(series)
	lo, hi := valueRange(series, false)
	t.RangeMin, t.RangeMax = lo, hi
	t.Entries = make([]Entry, n)
	if n == 1 {
		t.Step = t.Plot.W
		t.Entries[0] = Entry{Index: 0, Pt: Point{
			X: t.Plot.X + t.Plot.W/2,
			Y: t.Plot.Y + t.Plot.H - normalized(sanitize(series[0].Value), lo, hi)*t.Plot.H,
		}}
		return
	}
	t.Step = t.Plot.W / float64(n-1)
	for i, p := range series {
		t.Entries[i] = Entry{Index: i, Pt: Point{
			X: t.Plot.X + float64(i)*t.Step,
			Y: t.Plot.Y + t.Plot.H - normalized(sanitize(p.Value), lo, hi)*t.Plot.H,
		}}
	}
}

func computeSectors(t *Table, series Series, donut bool) {
	n := len(series)
	t.Center = Point{X: t.Plot.X + t.Plot.W/2, Y: t.Plot.Y + t.Plot.H/2}
	t.Radius = math.Min(t.Plot.W, t.Plot.H) / 2
	inner := 0.0
	if donut {
		inner = t.Radius * donutHole
	}
	// Negative values carry no angular meaning; clamp before the walk.
	sum := 0.0
	vals := make([]float64, n)
	for i, p := range series {
		v := math.Max(sanitize(p.Value), 0)
		vals[i] = v
		sum += v
	}
	t.Entries = make([]Entry, n)
	t.cum = make([]float64, n)
	off := 0.0
	for i := range series {
		sweep := 2 * math.Pi / float64(n) // uniform when everything is zero
		if sum > 0 {
			sweep = vals[i] / sum * 2 * math.Pi
		}
		t.Entries[i] = Entry{
			Index: i,
			Start: sectorStart + off,
			End:   sectorStart + off + sweep,
			Inner: inner,
			Outer: t.Radius,
		}
		off += sweep
		t.cum[i] = off
	}
	// Close the circle exactly; the last sector absorbs float rounding.
	t.cum[n-1] = 2 * math.Pi
	t.Entries[n-1].End = sectorStart + 2*math.Pi
}
