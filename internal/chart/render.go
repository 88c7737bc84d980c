package chart

// maxLabelRunes bounds x-axis labels before ellipsis truncation.
const maxLabelRunes = 8

// BarPrim is a filled rectangle for one bar.
type BarPrim struct {
	Index int
	Rect  Rect
	Color string
}

// PointPrim marks one line/area sample.
type PointPrim struct {
	Index int
	Pt    Point
	Color string
}

// SegmentPrim connects sample Index to Index+1.
type SegmentPrim struct {
	Index int
	From  Point
	To    Point
	Color string
}

// SectorPrim is one pie/donut slice.
type SectorPrim struct {
	Index int
	Start float64
	End   float64
	Inner float64
	Outer float64
	Color string
}

// GridLine is a horizontal value-axis reference line.
type GridLine struct {
	Y     float64
	Value float64
}

// AxisLabel is a truncated x-axis label anchored at X (centered by the
// host) on the row below the plot.
type AxisLabel struct {
	Index int
	X     float64
	Y     float64
	Text  string
}

// Frame is the ordered set of drawable primitives for one render pass.
// The host rasterizes it onto whatever surface it owns; hover feedback
// is applied at draw time and never feeds back into the geometry.
type Frame struct {
	Bars     []BarPrim
	Points   []PointPrim
	Segments []SegmentPrim
	Area     []Point // closed polygon down to the baseline (area charts)
	Sectors  []SectorPrim
	Grid     []GridLine
	XLabels  []AxisLabel
}

// RenderFrame turns a geometry table into drawable primitives with
// colors resolved against the palette.
func RenderFrame(t Table, series Series, cfg Config) Frame {
	var f Frame
	switch t.Type {
	case Bar, Line, Area:
		if cfg.ShowGrid && t.Plot.W > 0 && t.Plot.H > 0 {
			for _, frac := range []float64{0, 0.25, 0.5, 0.75, 1} {
				f.Grid = append(f.Grid, GridLine{
					Y:     t.Plot.Y + t.Plot.H - frac*t.Plot.H,
					Value: t.RangeMin + frac*(t.RangeMax-t.RangeMin),
				})
			}
		}
	}
	if len(t.Entries) != len(series) {
		return f
	}
	labelY := t.Plot.Y + t.Plot.H
	for i, e := range t.Entries {
		color := PointColor(series[i], i, cfg.Palette)
		label := TruncateLabel(series[i].Label)
		switch t.Type {
		case Bar:
			f.Bars = append(f.Bars, BarPrim{Index: i, Rect: e.Bar, Color: color})
			f.XLabels = append(f.XLabels, AxisLabel{Index: i, X: e.Bar.X + e.Bar.W/2, Y: labelY, Text: label})
		case Line, Area:
			f.Points = append(f.Points, PointPrim{Index: i, Pt: e.Pt, Color: color})
			if i > 0 {
				f.Segments = append(f.Segments, SegmentPrim{Index: i - 1, From: t.Entries[i-1].Pt, To: e.Pt, Color: color})
			}
			f.XLabels = append(f.XLabels, AxisLabel{Index: i, X: e.Pt.X, Y: labelY, Text: label})
		case Pie, Donut:
			f.Sectors = append(f.Sectors, SectorPrim{
				Index: i, Start: e.Start, End: e.End,
				Inner: e.Inner, Outer: e.Outer, Color: color,
			})
		}
	}
	if t.Type == Area && len(t.Entries) > 0 {
		base := t.Plot.Y + t.Plot.H
		f.Area = make([]Point, 0, len(t.Entries)+2)
		for _, e := range t.Entries {
			f.Area = append(f.Area, e.Pt)
		}
		f.Area = append(f.Area,
			Point{X: t.Entries[len(t.Entries)-1].Pt.X, Y: base},
			Point{X: t.Entries[0].Pt.X, Y: base},
		)
	}
	return f
}

// TruncateLabel shortens display labels past 8 runes with an ellipsis.
func TruncateLabel(s string) string {
	r := []rune(s)
	if len(r) <= maxLabelRunes {
		return s
	}
	return string(r[:maxLabelRunes]) + "…"
}
